package checkers

import "github.com/coregx/ahocorasick"

// commonEnglishWords seeds the dictionary the English checker scans
// against. A production build would load a full word list from disk;
// this core ships a compact high-frequency seed so the checker works
// standalone, matching the spirit of the teacher's embedded-default
// pattern (internal/core/intent_defaults.go ships default facts inline
// rather than requiring an external data file at first run).
var commonEnglishWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this",
	"but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know",
	"take", "people", "into", "year", "your", "good", "some", "could",
	"them", "see", "other", "than", "then", "now", "look", "only",
	"come", "its", "over", "think", "also", "back", "after", "use",
	"two", "how", "our", "work", "first", "well", "way", "even", "new",
	"want", "because", "any", "these", "give", "day", "most", "us",
	"hello", "world", "quick", "brown", "fox", "jumps", "lazy", "dog",
}

// buildDictionaryAutomaton compiles commonEnglishWords (plus any extra
// words) into a coregx/ahocorasick Automaton so the English checker can
// scan a candidate against the entire dictionary in one linear pass
// instead of len(words) separate substring searches.
func buildDictionaryAutomaton(extra []string) *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, w := range commonEnglishWords {
		builder.AddPattern([]byte(" " + w + " "))
	}
	for _, w := range extra {
		builder.AddPattern([]byte(" " + w + " "))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// countMatches walks auto's matches over haystack one at a time via
// Find(haystack, at), resuming at each match's trailing space so that
// space can also open the next word's " word " pattern — the Automaton
// exposes single-match lookup (IsMatch/Find), not a bulk FindAll, so
// counting total hits means driving that loop ourselves.
func countMatches(auto *ahocorasick.Automaton, haystack []byte) int {
	if auto == nil {
		return 0
	}
	count := 0
	at := 0
	for at < len(haystack) {
		m := auto.Find(haystack, at)
		if m == nil {
			break
		}
		count++
		if m.End <= at {
			at++ // guard against a zero-width match stalling the loop
			continue
		}
		at = m.End - 1 // every pattern ends in the space the next word starts with
	}
	return count
}
