package decoders

import (
	"sort"
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type substitutionDecoder struct{}

func (substitutionDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Substitution",
		Description: "Heuristic monoalphabetic substitution decode via letter-frequency matching",
		Link:        "https://en.wikipedia.org/wiki/Substitution_cipher",
		Tags:        []string{"classical-cipher", "substitution"},
		Popularity:  0.1,
	}
}

// englishFrequencyOrder is English letters ranked most- to
// least-frequent (the classic ETAOIN SHRDLU ordering), used to build a
// best-guess substitution key by mapping the ciphertext's own letter
// frequency rank onto it. This is a heuristic, not key recovery: it
// produces one plausible candidate, it does not prove a mapping correct
// (cryptanalytic key recovery is out of scope, §1 Non-goals).
const englishFrequencyOrder = "etaoinshrdlcumwfgypbvkjxqz"

func (sub substitutionDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := sub.Identify()
	cr := reject(d, text)

	if !hasLetters(string(text)) || len(text) < 20 {
		return cr
	}
	mapping := frequencyMapping(string(text))
	candidate := types.Text(applyMapping(string(text), mapping))
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

func frequencyMapping(s string) map[byte]byte {
	var counts [26]int
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			counts[r-'a']++
		}
	}
	order := make([]int, 26)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	mapping := make(map[byte]byte, 26)
	for rank, letterIdx := range order {
		cipherLetter := byte('a' + letterIdx)
		mapping[cipherLetter] = englishFrequencyOrder[rank]
	}
	return mapping
}

func applyMapping(s string, mapping map[byte]byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteByte(mapping[byte(r)])
		case r >= 'A' && r <= 'Z':
			lower := mapping[byte(r-'A'+'a')]
			b.WriteByte(lower - 'a' + 'A')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
