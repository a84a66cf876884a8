package decoders

import "github.com/RenTrieu/Ares/internal/types"

// base91Alphabet is the basE91 alphabet (Joachim Henke's scheme).
const base91Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""

type base91Decoder struct{}

func (base91Decoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Base91",
		Description: "basE91 decode the input",
		Link:        "http://base91.sourceforge.net/",
		Tags:        []string{"base", "binary-to-text", "base91"},
		Popularity:  0.3,
	}
}

func (b base91Decoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := b.Identify()
	cr := reject(d, text)

	out, err := base91Decode(string(text))
	if err != nil || len(out) == 0 {
		return cr
	}
	candidate := types.Text(out)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

var base91Index = func() [256]int16 {
	var idx [256]int16
	for i := range idx {
		idx[i] = -1
	}
	for i, c := range base91Alphabet {
		idx[byte(c)] = int16(i)
	}
	return idx
}()

// base91Decode implements the bit-packing basE91 decoder: each pair of
// alphabet digits contributes 13 or 14 bits to a running bit queue, from
// which output bytes are drained 8 bits at a time.
func base91Decode(s string) ([]byte, error) {
	var out []byte
	var ebq uint64
	en := 0
	ev := -1

	for i := 0; i < len(s); i++ {
		v := base91Index[s[i]]
		if v < 0 {
			continue // skip characters outside the alphabet (whitespace, etc.)
		}
		if ev < 0 {
			ev = int(v)
			continue
		}
		ev += int(v) * 91
		ebq |= uint64(ev) << uint(en)
		if ev&8191 > 88 {
			en += 13
		} else {
			en += 14
		}
		for en >= 8 {
			out = append(out, byte(ebq&255))
			ebq >>= 8
			en -= 8
		}
		ev = -1
	}
	if ev != -1 {
		out = append(out, byte((ebq|uint64(ev)<<uint(en))&255))
	}
	if len(out) == 0 {
		return nil, errEmptyInput
	}
	return out, nil
}
