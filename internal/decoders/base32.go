package decoders

import (
	"encoding/base32"

	"github.com/RenTrieu/Ares/internal/types"
)

type base32Decoder struct{}

func (base32Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base32",
		Description: "Base32 decode the input",
		Link:        "https://en.wikipedia.org/wiki/Base32",
		Tags:        []string{"base", "binary-to-text", "base32"},
		Popularity:  0.5,
	}
}

func (b base32Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	s := trimmed(string(text))
	encodings := []*base32.Encoding{
		base32.StdEncoding,
		base32.HexEncoding,
		base32.StdEncoding.WithPadding(base32.NoPadding),
	}
	for _, enc := range encodings {
		out, err := enc.DecodeString(s)
		if err != nil || len(out) == 0 {
			continue
		}
		candidate := types.Text(out)
		if checkStringSuccess(candidate, text) {
			return classifyOne(cr, candidate, checker)
		}
	}
	return cr
}
