package decoders

import "github.com/RenTrieu/Ares/internal/types"

type railfenceDecoder struct{}

func (railfenceDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Railfence",
		Description: "Try rail-fence decoding with 2 through 10 rails",
		Link:        "https://en.wikipedia.org/wiki/Rail_fence_cipher",
		Tags:        []string{"classical-cipher", "transposition"},
		Popularity:  0.1,
	}
}

func (rf railfenceDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := rf.Identify()
	cr := reject(d, text)

	if len(text) < 2 {
		return cr
	}

	candidates := make([]types.Text, 0, 9)
	for rails := 2; rails <= 10; rails++ {
		candidates = append(candidates, types.Text(railfenceDecode(string(text), rails)))
	}
	candidates = filterCandidates(text, candidates)
	if len(candidates) == 0 {
		return cr
	}
	return classifyMany(cr, candidates, checker)
}

// railfenceDecode reverses a rail-fence transposition with the given
// rail count: compute the zig-zag row index for every position, then
// read characters back off in that row order.
func railfenceDecode(s string, rails int) string {
	n := len(s)
	if rails < 2 || n == 0 {
		return s
	}
	pattern := make([]int, n)
	row, dir := 0, 1
	for i := 0; i < n; i++ {
		pattern[i] = row
		if row == 0 {
			dir = 1
		} else if row == rails-1 {
			dir = -1
		}
		row += dir
	}

	// Count how many characters land on each rail, then slice the input
	// into per-rail runs in the order the ciphertext was written (rail 0
	// first, rail 1 next, ...).
	counts := make([]int, rails)
	for _, r := range pattern {
		counts[r]++
	}
	rows := make([][]byte, rails)
	pos := 0
	runes := []byte(s)
	for r := 0; r < rails; r++ {
		rows[r] = runes[pos : pos+counts[r]]
		pos += counts[r]
	}

	out := make([]byte, n)
	idx := make([]int, rails)
	for i := 0; i < n; i++ {
		r := pattern[i]
		out[i] = rows[r][idx[r]]
		idx[r]++
	}
	return string(out)
}
