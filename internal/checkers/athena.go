// Package checkers implements the Checker Pipeline (spec §4.2): Athena,
// the composite classifier that chains cheap statistical gates in front
// of expensive linguistic analyzers, plus its sub-checkers.
package checkers

import (
	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/types"
)

// minLength is the default length gate of §4.2 step 1.
const minLength = 2

// Athena is the composite checker. It runs its sub-checkers in the
// fixed order mandated by §4.2, short-circuiting on the first positive:
// length gate, regex checkers, JSON, format identifier, English/gibberish.
type Athena struct {
	regex    *Regex
	format   *FormatIdentifier
	english  *English
	json     *JSON
	minLen   int
}

// NewAthena builds the composite checker for the given configuration:
// sensitivity tunes the English sub-checker, and extraPatterns are the
// user-supplied regex_list entries (§3).
func NewAthena(cfg AthenaConfig) *Athena {
	return &Athena{
		regex:   NewRegex(cfg.ExtraPatterns),
		format:  NewFormatIdentifier(),
		english: NewEnglish(cfg.Sensitivity, cfg.Neural),
		json:    NewJSON(),
		minLen:  minLength,
	}
}

// AthenaConfig carries the knobs Athena's sub-checkers need, translated
// from types.Configuration by the caller.
type AthenaConfig struct {
	Sensitivity   types.Sensitivity
	ExtraPatterns []string
	Neural        NeuralClassifier // optional, may be nil (§4.2.4, offline mode)
}

// FormatHinter exposes the Format Identifier sub-checker as a
// search.StructuralHinter, so the engine's priority scorer can apply the
// structural bonus of §4.4(c) without Athena importing the search
// package.
func (a *Athena) FormatHinter() *FormatIdentifier {
	return a.format
}

func (a *Athena) Identify() (name, description string) {
	return "Athena", "composite checker chaining cheap gates before expensive linguistic analysis"
}

// Classify runs the fixed pipeline order of §4.2. A candidate that is
// too short is rejected immediately unless the Format Identifier still
// matches it (the stated exception to the length gate).
func (a *Athena) Classify(text types.Text) types.CheckResult {
	log := logging.Get(logging.CategoryCheckers)

	if len(text) < a.minLen {
		if r := a.format.Classify(text); r.IsIdentified {
			log.Debugw("short candidate rescued by format identifier", "text", string(text))
			return r
		}
		return types.Negative(text, "Athena")
	}

	if r := a.regex.Classify(text); r.IsIdentified {
		return r
	}
	if r := a.json.Classify(text); r.IsIdentified {
		return r
	}
	if r := a.format.Classify(text); r.IsIdentified {
		return r
	}
	if r := a.english.Classify(text); r.IsIdentified {
		return r
	}
	return types.Negative(text, "Athena")
}
