package checkers

import (
	"strconv"

	"github.com/coregx/coregex"

	"github.com/RenTrieu/Ares/internal/types"
)

// builtinRegexPatterns are the "built-in set" named in §4.2 step 2:
// common token formats worth recognizing directly as plaintext.
var builtinRegexPatterns = map[string]string{
	"email": `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
	"url":   `https?://[^\s]+`,
	"ipv4":  `\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`,
}

// compiledPattern pairs a coregex.Regex with the human-readable name it
// was compiled from, for CheckResult.Description.
type compiledPattern struct {
	name string
	re   *coregex.Regex
}

// Regex is the §4.2 "Regex checkers" sub-checker: any user-supplied
// pattern (Configuration.RegexList) or the built-in token-format set.
// It is backed by coregx/coregex rather than stdlib regexp because the
// composite runs on every candidate child the search engine produces —
// potentially thousands of times per second (§4.2) — and coregex's
// DFA/prefilter engine avoids backtracking cost on that hot path.
type Regex struct {
	patterns []compiledPattern
}

// NewRegex compiles the builtin patterns plus any user-supplied
// extraPatterns; a pattern that fails to compile is skipped rather than
// aborting construction (a bad user regex must not disable the whole
// checker).
func NewRegex(extraPatterns []string) *Regex {
	r := &Regex{}
	for name, pat := range builtinRegexPatterns {
		if re, err := coregex.Compile(pat); err == nil {
			r.patterns = append(r.patterns, compiledPattern{name: name, re: re})
		}
	}
	for i, pat := range extraPatterns {
		if re, err := coregex.Compile(pat); err == nil {
			r.patterns = append(r.patterns, compiledPattern{name: userPatternName(i), re: re})
		}
	}
	return r
}

func userPatternName(i int) string {
	return "user-regex-" + strconv.Itoa(i)
}

func (r *Regex) Identify() (name, description string) {
	return "Regex", "matches against built-in token formats and user-supplied regex_list patterns"
}

func (r *Regex) Classify(text types.Text) types.CheckResult {
	data := []byte(text)
	for _, p := range r.patterns {
		if p.re.Match(data) {
			return types.CheckResult{
				IsIdentified: true,
				Text:         text,
				CheckerName:  "Regex",
				CheckerDesc:  "matches against built-in token formats and user-supplied regex_list patterns",
				Description:  "matched pattern: " + p.name,
			}
		}
	}
	return types.Negative(text, "Regex")
}
