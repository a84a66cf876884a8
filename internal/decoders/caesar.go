package decoders

import (
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type caesarDecoder struct{}

func (caesarDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Caesar",
		Description: "Try every Caesar/ROT shift (1-25) against the input",
		Link:        "https://en.wikipedia.org/wiki/Caesar_cipher",
		Tags:        []string{"classical-cipher", "rotation"},
		Popularity:  0.45,
	}
}

// Attempt emits all 25 non-identity shifts as separate candidates (§4.1,
// §9): the search engine, not this decoder, decides which (if any) are
// plaintext.
func (c caesarDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := c.Identify()
	cr := reject(d, text)

	if !hasLetters(string(text)) {
		return cr
	}

	candidates := make([]types.Text, 0, 25)
	for shift := 1; shift <= 25; shift++ {
		candidates = append(candidates, types.Text(caesarShift(string(text), shift)))
	}
	candidates = filterCandidates(text, candidates)
	if len(candidates) == 0 {
		return cr
	}
	return classifyMany(cr, candidates, checker)
}

func caesarShift(s string, shift int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+rune(shift))%26)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+rune(shift))%26)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasLetters(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
