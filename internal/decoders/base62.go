package decoders

import (
	"math/big"

	"github.com/RenTrieu/Ares/internal/types"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type base62Decoder struct{}

func (base62Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base62",
		Description: "Base62 decode the input",
		Link:        "https://en.wikipedia.org/wiki/Binary-to-text_encoding",
		Tags:        []string{"base", "binary-to-text", "base62"},
		Popularity:  0.2,
	}
}

func (b base62Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	out, err := base62Decode(trimmed(string(text)))
	if err != nil || len(out) == 0 {
		return cr
	}
	candidate := types.Text(out)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

var base62Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i, c := range base62Alphabet {
		idx[byte(c)] = int8(i)
	}
	return idx
}()

func base62Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, errEmptyInput
	}
	result := big.NewInt(0)
	base := big.NewInt(62)
	for i := 0; i < len(s); i++ {
		v := base62Index[s[i]]
		if v == -1 {
			return nil, errInvalidAlphabet
		}
		result.Mul(result, base)
		result.Add(result, big.NewInt(int64(v)))
	}
	decoded := result.Bytes()

	leadingZeros := 0
	for i := 0; i < len(s) && s[i] == '0'; i++ {
		leadingZeros++
	}
	out := make([]byte, leadingZeros+len(decoded))
	copy(out[leadingZeros:], decoded)
	return out, nil
}
