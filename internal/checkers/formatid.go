package checkers

import (
	"github.com/coregx/coregex"

	"github.com/RenTrieu/Ares/internal/types"
)

// formatSpec is one named entry in the Format-Identifier catalog
// (§4.2 step 3): a name and the regex that recognizes it.
type formatSpec struct {
	name    string
	pattern string
}

// builtinFormats is the initial catalog supplementing the distilled spec
// (SPEC_FULL.md §12): common hash/token/address formats concrete enough
// for the "partial match" structural bonus (§4.4(c)) to have real
// targets.
var builtinFormats = []formatSpec{
	{"SHA-256 hex", `\b[a-fA-F0-9]{64}\b`},
	{"MD5 hex", `\b[a-fA-F0-9]{32}\b`},
	{"JWT", `^eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`},
	{"Bitcoin address", `\b[13][a-km-zA-HJ-NP-Z1-9]{25,34}\b`},
	{"UUID", `\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`},
	{"IPv4", `\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`},
}

type compiledFormat struct {
	name string
	re   *coregex.Regex
}

// FormatIdentifier is the §4.2 step-3 sub-checker: a catalog of named
// patterns where a match is immediate identification, regardless of
// English plausibility.
type FormatIdentifier struct {
	formats []compiledFormat
}

// NewFormatIdentifier compiles the builtin catalog.
func NewFormatIdentifier() *FormatIdentifier {
	f := &FormatIdentifier{}
	for _, spec := range builtinFormats {
		if re, err := coregex.Compile(spec.pattern); err == nil {
			f.formats = append(f.formats, compiledFormat{name: spec.name, re: re})
		}
	}
	return f
}

func (f *FormatIdentifier) Identify() (name, description string) {
	return "Format-Identifier", "matches against a catalog of named structural formats"
}

func (f *FormatIdentifier) Classify(text types.Text) types.CheckResult {
	data := []byte(text)
	for _, cf := range f.formats {
		if cf.re.Match(data) {
			return types.CheckResult{
				IsIdentified: true,
				Text:         text,
				CheckerName:  "Format-Identifier",
				CheckerDesc:  "matches against a catalog of named structural formats",
				Description:  "identified as " + cf.name,
			}
		}
	}
	return types.Negative(text, "Format-Identifier")
}

// PartialMatch is the "structural bonus" signal used by the search
// engine's priority function (§4.4(c)). It is a cheap proxy for "we may
// be close to a hash-like format": text is 16 to 128 bytes long and more
// than 90% of its characters are hex digits. It does not run the catalog
// patterns, so text that fully matches one also reports true.
func (f *FormatIdentifier) PartialMatch(text types.Text) bool {
	n := len(text)
	return n >= 16 && n <= 128 && isHexLike(string(text))
}

func isHexLike(s string) bool {
	hex := 0
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') {
			hex++
		}
	}
	return len(s) > 0 && float64(hex)/float64(len(s)) > 0.9
}
