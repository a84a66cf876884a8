package decoders

import (
	"encoding/hex"
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type base16Decoder struct{}

func (base16Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base16",
		Description: "Base16 (hexadecimal) decode the input",
		Link:        "https://en.wikipedia.org/wiki/Hexadecimal",
		Tags:        []string{"base", "binary-to-text", "base16"},
		Popularity:  0.4,
	}
}

func (b base16Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	s := trimmed(string(text))
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	out, err := hex.DecodeString(s)
	if err != nil || len(out) == 0 {
		return cr
	}
	candidate := types.Text(out)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}
