package decoders

import (
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type vigenereDecoder struct{}

func (vigenereDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Vigenere",
		Description: "Try a dictionary of common keys against the input as a Vigenere cipher",
		Link:        "https://en.wikipedia.org/wiki/Vigen%C3%A8re_cipher",
		Tags:        []string{"classical-cipher", "polyalphabetic"},
		Popularity:  0.15,
	}
}

// commonVigenereKeys is a small, fixed dictionary of keys worth trying
// blind. Full key recovery (Kasiski/Friedman analysis) is cryptanalytic
// key recovery and explicitly out of scope (§1 Non-goals); this decoder
// only ever emits candidates, it never "solves" for the key.
var commonVigenereKeys = []string{"key", "secret", "password", "cipher", "vigenere"}

func (v vigenereDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := v.Identify()
	cr := reject(d, text)

	if !hasLetters(string(text)) {
		return cr
	}

	candidates := make([]types.Text, 0, len(commonVigenereKeys))
	for _, key := range commonVigenereKeys {
		candidates = append(candidates, types.Text(vigenereDecrypt(string(text), key)))
	}
	candidates = filterCandidates(text, candidates)
	if len(candidates) == 0 {
		return cr
	}
	return classifyMany(cr, candidates, checker)
}

func vigenereDecrypt(s, key string) string {
	key = strings.ToLower(key)
	if key == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	ki := 0
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			shift := rune(key[ki%len(key)]) - 'a'
			b.WriteRune('a' + mod26(r-'a'-shift))
			ki++
		case r >= 'A' && r <= 'Z':
			shift := rune(key[ki%len(key)]) - 'a'
			b.WriteRune('A' + mod26(r-'A'-shift))
			ki++
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mod26(x rune) rune {
	x %= 26
	if x < 0 {
		x += 26
	}
	return x
}
