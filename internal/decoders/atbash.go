package decoders

import (
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type atbashDecoder struct{}

func (atbashDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Atbash",
		Description: "Atbash cipher decode the input (A<->Z substitution)",
		Link:        "https://en.wikipedia.org/wiki/Atbash",
		Tags:        []string{"classical-cipher", "substitution"},
		Popularity:  0.2,
	}
}

func (a atbashDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := a.Identify()
	cr := reject(d, text)

	if !hasLetters(string(text)) {
		return cr
	}
	candidate := types.Text(atbash(string(text)))
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

func atbash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('z' - (r - 'a'))
		case r >= 'A' && r <= 'Z':
			b.WriteRune('Z' - (r - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
