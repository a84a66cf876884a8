package search

import "github.com/RenTrieu/Ares/internal/types"

// StructuralHinter is satisfied by the checker pipeline's
// Format-Identifier sub-checker: it reports whether a candidate is
// "close" to a known structural format without fully matching it, the
// signal §4.4(c) calls the structural bonus. Declared locally (rather
// than importing internal/checkers) per the §9 design note preferring a
// narrow capability interface over a hard dependency on one checker
// implementation.
type StructuralHinter interface {
	PartialMatch(text types.Text) bool
}

// Scorer computes the priority §4.4 describes as "any monotone
// combination of popularity, depth, and tag-affinity satisfying §4.4's
// ordering bullets" (§9 Open Question 3) — this is the conforming
// combination this implementation chose.
type Scorer struct {
	hinter StructuralHinter
}

// NewScorer builds a Scorer. hinter may be nil, in which case the
// structural bonus term is simply never applied.
func NewScorer(hinter StructuralHinter) *Scorer {
	return &Scorer{hinter: hinter}
}

const (
	depthPenaltyPerLevel = 0.05
	structuralBonus      = 0.25
	tagAffinityBonus     = 0.15
)

// Score computes a child node's priority: popularity of the decoder
// that produced it (a), a depth penalty (b), a structural bonus when
// the Format-Identifier sees a partial match (c), and a tag-affinity
// bonus when lastSuccessTags and the producing decoder's own tags overlap,
// representing "after one successful Base64 decode, other Base-family
// decoders receive a small priority boost" (d).
func (s *Scorer) Score(popularity float64, depth int, text types.Text, producerTags, lastSuccessTags []string) float64 {
	score := popularity
	score -= depthPenaltyPerLevel * float64(depth)

	if s.hinter != nil && s.hinter.PartialMatch(text) {
		score += structuralBonus
	}

	if tagsOverlap(producerTags, lastSuccessTags) {
		score += tagAffinityBonus
	}

	return score
}

func tagsOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
