package types

import "encoding/json"

// Descriptor is a Decoder's pure metadata: identification, a popularity
// score used by the search priority function, and the tags used for
// tag-affinity boosting (§4.4(d)).
type Descriptor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
	Popularity  float64  `json:"popularity"` // in [0,1]
}

// HasTag reports whether the descriptor carries the given tag.
func (d Descriptor) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Decoder is the polymorphic extension point of §4.1 and §6: a named,
// side-effect-free transformation from one text form to another.
// Implementations must be value-like and hold no mutable state so that a
// Descriptor's Attempt can run concurrently across the search engine's
// worker pool without synchronization.
type Decoder interface {
	Identify() Descriptor
	// Attempt executes one decoding step against text, classifying each
	// resulting candidate with checker. It never blocks and never mutates
	// global state; a non-decodable input yields a CrackResult with
	// UnencryptedText == nil and Success == false.
	Attempt(text Text, checker Checker) CrackResult
}

// CrackResult is the record of one decoder attempt on one input (§3).
type CrackResult struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Link            string   `json:"link"`
	Tags            []string `json:"tags"`
	Input           Text     `json:"input"`
	UnencryptedText []Text   `json:"unencrypted_text,omitempty"`
	Success         bool     `json:"success"`
	CheckerName     string   `json:"checker_name,omitempty"`
	CheckerDesc     string   `json:"checker_description,omitempty"`
}

// FromDescriptor fills in a CrackResult's metadata fields from d, leaving
// Input/UnencryptedText/Success/Checker* for the caller to set.
func FromDescriptor(d Descriptor, input Text) CrackResult {
	return CrackResult{
		Name:        d.Name,
		Description: d.Description,
		Link:        d.Link,
		Tags:        d.Tags,
		Input:       input,
	}
}

// MarshalText renders a CrackResult to its self-describing cache form: a
// JSON object. This is what the Knowledge Store persists as one element
// of a CacheRow's path array (§6 schema: "path JSON NOT NULL").
func (c CrackResult) MarshalText() ([]byte, error) {
	// plain has CrackResult's fields but not this method, so json.Marshal
	// encodes it as an object instead of calling MarshalText again.
	type plain CrackResult
	return json.Marshal(plain(c))
}

// UnmarshalCrackResult parses one JSON-encoded CrackResult, the inverse
// of MarshalText, used when rehydrating a CacheRow's path on cache hit.
func UnmarshalCrackResult(data []byte) (CrackResult, error) {
	var c CrackResult
	err := json.Unmarshal(data, &c)
	return c, err
}
