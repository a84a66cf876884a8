package checkers

import (
	"encoding/json"

	"github.com/RenTrieu/Ares/internal/types"
)

// JSON is a cheap structural sub-checker: valid, non-scalar JSON is
// almost never an accidental byproduct of a wrong decode, so it is
// treated as identified plaintext. It uses stdlib encoding/json — a
// syntax validity check has no meaningful "engine" choice to make, and
// the JSON produced still needs to interoperate with the Knowledge
// Store's JSON column (§6), so there is no benefit to a third-party
// parser here.
type JSON struct{}

// NewJSON returns a ready JSON checker.
func NewJSON() *JSON { return &JSON{} }

func (j *JSON) Identify() (name, description string) {
	return "JSON", "valid, non-scalar JSON is identified as plaintext"
}

func (j *JSON) Classify(text types.Text) types.CheckResult {
	trimmed := string(text)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return types.Negative(text, "JSON")
	}
	var v interface{}
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return types.Negative(text, "JSON")
	}
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return types.CheckResult{
			IsIdentified: true,
			Text:         text,
			CheckerName:  "JSON",
			CheckerDesc:  "valid, non-scalar JSON is identified as plaintext",
			Description:  "parsed as valid JSON",
		}
	default:
		return types.Negative(text, "JSON")
	}
}
