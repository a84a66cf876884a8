package decoders

import (
	"strconv"
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type base8Decoder struct{}

func (base8Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base8",
		Description: "Octal decode the input (space-separated byte groups)",
		Link:        "https://en.wikipedia.org/wiki/Octal",
		Tags:        []string{"base", "binary-to-text", "base8"},
		Popularity:  0.25,
	}
}

func (b base8Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	groups := strings.Fields(trimmed(string(text)))
	if len(groups) == 0 {
		return cr
	}
	out := make([]byte, 0, len(groups))
	for _, g := range groups {
		v, err := strconv.ParseUint(g, 8, 32)
		if err != nil || v > 255 {
			return cr
		}
		out = append(out, byte(v))
	}
	candidate := types.Text(out)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}
