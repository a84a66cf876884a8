package decoders

import (
	"errors"
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

// Shared decode errors for the hand-rolled codec families (base58,
// base62, base91) that have no standard library support, and for the
// Brainfuck interpreter.
var (
	errEmptyInput         = errors.New("decoders: empty input")
	errInvalidAlphabet    = errors.New("decoders: character outside alphabet")
	errBrainfuckUnmatched = errors.New("decoders: unmatched brainfuck bracket")
	errBrainfuckBudget    = errors.New("decoders: brainfuck step budget exceeded")
)

// checkStringSuccess implements the trivial-rejection contract of §4.1:
// a decoded candidate must differ non-trivially from the input — empty,
// byte-identical to the input, invalid UTF-8, or containing control
// bytes (Text.Printable) is rejected. It does not by itself classify the
// candidate as plaintext; that is the checker pipeline's job.
func checkStringSuccess(candidate, input types.Text) bool {
	if candidate == "" {
		return false
	}
	if candidate == input {
		return false
	}
	if !candidate.Valid() {
		return false
	}
	if !candidate.Printable() {
		return false
	}
	return true
}

// filterCandidates keeps only the candidates that pass checkStringSuccess
// against input, preserving order — used by multi-output decoders
// (Caesar's 25 shifts) so a no-op shift never reaches the engine.
func filterCandidates(input types.Text, candidates []types.Text) []types.Text {
	out := make([]types.Text, 0, len(candidates))
	for _, c := range candidates {
		if checkStringSuccess(c, input) {
			out = append(out, c)
		}
	}
	return out
}

// reject builds the "non-decodable input" CrackResult of §4.1: no
// unencrypted text, success false, but metadata still populated so the
// caller knows what was tried.
func reject(d types.Descriptor, input types.Text) types.CrackResult {
	cr := types.FromDescriptor(d, input)
	return cr
}

// classifyOne runs checker against a single candidate and, if accepted,
// fills in the success/checker fields of cr (the one-candidate case of
// §3's CrackResult.success invariant).
func classifyOne(cr types.CrackResult, candidate types.Text, checker types.Checker) types.CrackResult {
	cr.UnencryptedText = []types.Text{candidate}
	if checker == nil {
		return cr
	}
	result := checker.Classify(candidate)
	if result.IsIdentified {
		cr.Success = true
		cr.CheckerName = result.CheckerName
		cr.CheckerDesc = result.CheckerDesc
	}
	return cr
}

// classifyMany runs checker against each candidate of a multi-output
// decoder (§9 "do not flatten inside the decoder"), marking success true
// if ANY candidate was accepted — the search engine still enqueues every
// candidate as a separate child regardless of this flag; it exists so a
// CrackResult on its own reports whether the attempt, as a whole, found
// something.
func classifyMany(cr types.CrackResult, candidates []types.Text, checker types.Checker) types.CrackResult {
	cr.UnencryptedText = candidates
	if checker == nil || len(candidates) == 0 {
		return cr
	}
	for _, c := range candidates {
		result := checker.Classify(c)
		if result.IsIdentified {
			cr.Success = true
			cr.CheckerName = result.CheckerName
			cr.CheckerDesc = result.CheckerDesc
			return cr
		}
	}
	return cr
}

// trimmed returns s with leading/trailing ASCII whitespace removed —
// several wire-format decoders (Base-family, Morse) are tolerant of
// surrounding whitespace the way the upstream encoders never produce but
// copy-pasted ciphertext often picks up.
func trimmed(s string) string {
	return strings.TrimSpace(s)
}
