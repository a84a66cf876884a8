package decoders

import (
	"encoding/base64"

	"github.com/RenTrieu/Ares/internal/types"
)

type base64Decoder struct{}

func (base64Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base64",
		Description: "Base64 decode the input",
		Link:        "https://en.wikipedia.org/wiki/Base64",
		Tags:        []string{"base", "binary-to-text", "base64"},
		Popularity:  0.8,
	}
}

func (b base64Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	s := trimmed(string(text))
	decoded, err := tryBase64(s)
	if err != nil {
		return cr
	}
	candidate := types.Text(decoded)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

// tryBase64 attempts standard, then URL-safe, encodings, each with and
// without padding, matching the leniency real-world ciphertext exhibits.
func tryBase64(s string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		out, err := enc.DecodeString(s)
		if err == nil && len(out) > 0 {
			return out, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
