package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenTrieu/Ares/internal/types"
)

func TestQueue_DequeuesHighestPriorityFirst(t *testing.T) {
	q := NewQueue(0)
	q.Enqueue(types.SearchNode{Text: "low", Priority: 0.1})
	q.Enqueue(types.SearchNode{Text: "high", Priority: 0.9})
	q.Enqueue(types.SearchNode{Text: "mid", Priority: 0.5})

	n, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, types.Text("high"), n.Text)

	n, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, types.Text("mid"), n.Text)

	n, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, types.Text("low"), n.Text)
}

func TestQueue_TiesBreakFIFO(t *testing.T) {
	q := NewQueue(0)
	q.Enqueue(types.SearchNode{Text: "first", Priority: 1})
	q.Enqueue(types.SearchNode{Text: "second", Priority: 1})

	n, _ := q.Dequeue()
	assert.Equal(t, types.Text("first"), n.Text)
	n, _ = q.Dequeue()
	assert.Equal(t, types.Text("second"), n.Text)
}

func TestQueue_EmptyDequeue(t *testing.T) {
	q := NewQueue(0)
	_, ok := q.Dequeue()
	assert.False(t, ok)
}

func TestQueue_EvictsLowestOnOverflow(t *testing.T) {
	q := NewQueue(2)
	q.Enqueue(types.SearchNode{Text: "low", Priority: 0.1})
	q.Enqueue(types.SearchNode{Text: "high", Priority: 0.9})
	q.Enqueue(types.SearchNode{Text: "higher", Priority: 1.0}) // should evict "low"

	assert.Equal(t, 2, q.Len())
	n, _ := q.Dequeue()
	assert.Equal(t, types.Text("higher"), n.Text)
	n, _ = q.Dequeue()
	assert.Equal(t, types.Text("high"), n.Text)
}

func TestDedup_InsertIfAbsent(t *testing.T) {
	d := NewDedup()
	assert.True(t, d.InsertIfAbsent("a"))
	assert.False(t, d.InsertIfAbsent("a"))
	assert.True(t, d.InsertIfAbsent("b"))
	assert.Equal(t, 2, d.Len())
}

type stubHinter struct{ match bool }

func (s stubHinter) PartialMatch(types.Text) bool { return s.match }

func TestScorer_StructuralBonusApplied(t *testing.T) {
	scorer := NewScorer(stubHinter{match: true})
	withBonus := scorer.Score(0.5, 0, "x", nil, nil)

	scorerNoBonus := NewScorer(stubHinter{match: false})
	withoutBonus := scorerNoBonus.Score(0.5, 0, "x", nil, nil)

	assert.Greater(t, withBonus, withoutBonus)
}

func TestScorer_DepthPenaltyReducesScore(t *testing.T) {
	scorer := NewScorer(nil)
	shallow := scorer.Score(0.5, 1, "x", nil, nil)
	deep := scorer.Score(0.5, 5, "x", nil, nil)
	assert.Greater(t, shallow, deep)
}

func TestScorer_TagAffinityBonus(t *testing.T) {
	scorer := NewScorer(nil)
	withOverlap := scorer.Score(0.5, 1, "x", []string{"base-family"}, []string{"base-family"})
	withoutOverlap := scorer.Score(0.5, 1, "x", []string{"base-family"}, []string{"classical-cipher"})
	assert.Greater(t, withOverlap, withoutOverlap)
}
