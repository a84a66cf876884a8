package decoders

import (
	"strconv"
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type base10Decoder struct{}

func (base10Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base10",
		Description: "Decimal decode the input (space-separated byte values)",
		Link:        "https://en.wikipedia.org/wiki/Decimal",
		Tags:        []string{"base", "binary-to-text", "base10"},
		Popularity:  0.2,
	}
}

func (b base10Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	groups := strings.Fields(trimmed(string(text)))
	if len(groups) == 0 {
		return cr
	}
	out := make([]byte, 0, len(groups))
	for _, g := range groups {
		v, err := strconv.ParseUint(g, 10, 32)
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
