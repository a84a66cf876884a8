package decoders

import (
	"math/big"

	"github.com/RenTrieu/Ares/internal/types"
)

// base58Alphabet is the Bitcoin base58 alphabet (no 0, O, I, l).
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

type base58Decoder struct{}

func (base58Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base58",
		Description: "Base58 (Bitcoin alphabet) decode the input",
		Link:        "https://en.wikipedia.org/wiki/Binary-to-text_encoding#Base58",
		Tags:        []string{"base", "binary-to-text", "base58"},
		Popularity:  0.35,
	}
}

func (b base58Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	out, err := base58Decode(trimmed(string(text)))
	if err != nil || len(out) == 0 {
		return cr
	}
	candidate := types.Text(out)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

var base58Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i, c := range base58Alphabet {
		idx[byte(c)] = int8(i)
	}
	return idx
}()

func base58Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, errEmptyInput
	}
	result := big.NewInt(0)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		v := base58Index[s[i]]
		if v == -1 {
			return nil, errInvalidAlphabet
		}
		result.Mul(result, base)
		result.Add(result, big.NewInt(int64(v)))
	}

	decoded := result.Bytes()

	// Leading '1's encode leading zero bytes.
	leadingZeros := 0
	for i := 0; i < len(s) && s[i] == '1'; i++ {
		leadingZeros++
	}

	out := make([]byte, leadingZeros+len(decoded))
	copy(out[leadingZeros:], decoded)
	return out, nil
}
