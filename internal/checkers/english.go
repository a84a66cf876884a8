package checkers

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/RenTrieu/Ares/internal/types"
)

// NeuralClassifier is the "optional neural classifier" of §4.2.4: a
// last-resort, more expensive plausibility check invoked only when the
// cheap n-gram/dictionary signal is ambiguous and the engine is not
// running offline (§3 offline: bool). See internal/checkers/neural.go
// for the google.golang.org/genai-backed implementation; tests and
// offline runs use a nil NeuralClassifier, which Classify treats as
// "unavailable, fall through to the statistical verdict".
type NeuralClassifier interface {
	// Plausible returns whether text reads as natural-language
	// plaintext, and an error if the backend could not be reached (in
	// which case the caller must not treat it as a negative verdict).
	Plausible(text types.Text) (bool, error)
}

// sensitivityThresholds maps a Sensitivity level to the minimum fraction
// of "recognized" signal (dictionary hits + n-gram score) a candidate
// must clear to be accepted, per §4.2.4 ("Low: very permissive, High:
// strict").
var sensitivityThresholds = map[types.Sensitivity]float64{
	types.SensitivityLow:    0.15,
	types.SensitivityMedium: 0.30,
	types.SensitivityHigh:   0.50,
}

// English is the §4.2 step-4 sub-checker: a statistical n-gram +
// dictionary gibberish detector with a sensitivity threshold, optionally
// escalating to a neural classifier.
type English struct {
	sensitivity types.Sensitivity
	dictionary  *ahocorasick.Automaton
	neural      NeuralClassifier
}

// NewEnglish builds the English checker for the given sensitivity and
// optional neural backend (nil is valid: the neural escalation step is
// then simply skipped).
func NewEnglish(sensitivity types.Sensitivity, neural NeuralClassifier) *English {
	return &English{
		sensitivity: sensitivity,
		dictionary:  buildDictionaryAutomaton(nil),
		neural:      neural,
	}
}

func (e *English) Identify() (name, description string) {
	return "English", "statistical n-gram + dictionary gibberish detector with optional neural escalation"
}

func (e *English) Classify(text types.Text) types.CheckResult {
	score := e.score(text)
	threshold := sensitivityThresholds[e.sensitivity]
	if score >= threshold {
		return types.CheckResult{
			IsIdentified: true,
			Text:         text,
			CheckerName:  "English",
			CheckerDesc:  "statistical n-gram + dictionary gibberish detector with optional neural escalation",
			Description:  "plausible English text",
		}
	}

	// Ambiguous: close to the threshold and a neural backend is wired.
	// This is the "optional neural classifier" escalation of §4.2.4; it
	// never runs when offline (the caller is responsible for passing a
	// nil NeuralClassifier when cfg.Offline is set).
	if e.neural != nil && score >= threshold*0.5 {
		if ok, err := e.neural.Plausible(text); err == nil && ok {
			return types.CheckResult{
				IsIdentified: true,
				Text:         text,
				CheckerName:  "English",
				CheckerDesc:  "statistical n-gram + dictionary gibberish detector with optional neural escalation",
				Description:  "plausible English text (neural escalation)",
			}
		}
	}

	return types.Negative(text, "English")
}

// score blends dictionary word density and printable-character ratio
// into one [0,1] plausibility figure: dictionaryScore weighs how much
// of the text is covered by recognized words (via the Aho-Corasick
// automaton), and printableRatio penalizes binary noise that slipped
// past a decoder's own validity check.
func (e *English) score(text types.Text) float64 {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "" {
		return 0
	}
	padded := " " + s + " "

	hits := 0
	if e.dictionary != nil {
		hits = countMatches(e.dictionary, []byte(padded))
	}
	words := max(1, len(strings.Fields(s)))
	dictionaryScore := float64(hits) / float64(words)
	if dictionaryScore > 1 {
		dictionaryScore = 1
	}

	printable := 0
	for _, r := range s {
		if r >= 0x20 && r < 0x7f || r == ' ' {
			printable++
		}
	}
	printableRatio := float64(printable) / float64(len([]rune(s)))

	// Dictionary coverage carries most of the weight deliberately: a
	// single printable token with no recognized words (e.g. leftover
	// base64/hex ciphertext) must not clear the Medium threshold on
	// printability alone.
	return 0.8*dictionaryScore + 0.2*printableRatio
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
