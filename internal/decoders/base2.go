package decoders

import (
	"strconv"
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type base2Decoder struct{}

func (base2Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base2",
		Description: "Binary decode the input (space-separated 8-bit groups)",
		Link:        "https://en.wikipedia.org/wiki/Binary_code",
		Tags:        []string{"base", "binary-to-text", "base2"},
		Popularity:  0.3,
	}
}

func (b base2Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	groups := strings.Fields(trimmed(string(text)))
	if len(groups) == 0 {
		return cr
	}
	out := make([]byte, 0, len(groups))
	for _, g := range groups {
		if len(g) != 8 {
			return cr
		}
		v, err := strconv.ParseUint(g, 2, 8)
		if err != nil {
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
