// Package decoders implements the Decoder Registry (spec §4.1): a
// statically-populated collection of reversible text transformations,
// each described by a types.Descriptor and a pure Attempt function.
package decoders

import (
	"sort"
	"sync"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/types"
)

// Registry holds the decoders known to one search, ordered by
// popularity (highest first) as the algorithm sketch in §4.4 requires
// ("for d in decoders in popularity order").
type Registry struct {
	mu      sync.RWMutex
	decoders []types.Decoder
}

// NewRegistry builds a registry pre-populated with the builtin decoder
// families enumerated in §4.1: binary-to-text encodings, classical
// ciphers, URL/HTML encoding, Morse, and Brainfuck.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, d := range builtins() {
		r.Register(d)
	}
	return r
}

// Register adds d to the registry and re-sorts by popularity descending,
// satisfying §6's "new decoders are added to the registry at compile
// time or through a startup-time registration call".
func (r *Registry) Register(d types.Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders = append(r.decoders, d)
	sort.SliceStable(r.decoders, func(i, j int) bool {
		return r.decoders[i].Identify().Popularity > r.decoders[j].Identify().Popularity
	})
	logging.Get(logging.CategoryDecoders).Debugw("registered decoder", "name", d.Identify().Name)
}

// All returns the registered decoders in popularity order. The returned
// slice is a private copy; mutating it does not affect the registry.
func (r *Registry) All() []types.Decoder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Decoder, len(r.decoders))
	copy(out, r.decoders)
	return out
}

func builtins() []types.Decoder {
	return []types.Decoder{
		base64Decoder{},
		base32Decoder{},
		base58Decoder{},
		base62Decoder{},
		base91Decoder{},
		base65536Decoder{},
		base16Decoder{},
		base10Decoder{},
		base2Decoder{},
		base8Decoder{},
		caesarDecoder{},
		atbashDecoder{},
		vigenereDecoder{},
		railfenceDecoder{},
		substitutionDecoder{},
		urlDecoder{},
		htmlEntityDecoder{},
		morseDecoder{},
		brainfuckDecoder{},
	}
}
