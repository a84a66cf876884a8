package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/RenTrieu/Ares/internal/timer"
	"github.com/RenTrieu/Ares/internal/types"
)

// reverseDecoder is a single-step fake decoder used only by this test:
// it reverses its input string, standing in for a real decoder without
// pulling in the internal/decoders package, so the test controls every
// candidate the engine sees.
type reverseDecoder struct{}

func (reverseDecoder) Identify() types.Descriptor {
	return types.Descriptor{Name: "Reverse", Popularity: 1, Tags: []string{"test"}}
}

func (reverseDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	runes := []rune(string(text))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	candidate := types.Text(string(runes))
	cr := types.FromDescriptor(reverseDecoder{}.Identify(), text)
	cr.UnencryptedText = []types.Text{candidate}
	result := checker.Classify(candidate)
	if result.IsIdentified {
		cr.Success = true
		cr.CheckerName = result.CheckerName
	}
	return cr
}

type fakeRegistry struct{ decoders []types.Decoder }

func (f fakeRegistry) All() []types.Decoder { return f.decoders }

// exactChecker accepts a single fixed plaintext, rejecting everything
// else — enough determinism to drive the engine to a known Solution.
type exactChecker struct{ want types.Text }

func (exactChecker) Identify() (string, string) { return "Exact", "matches one fixed string" }
func (e exactChecker) Classify(text types.Text) types.CheckResult {
	if text == e.want {
		return types.CheckResult{IsIdentified: true, Text: text, CheckerName: "Exact"}
	}
	return types.Negative(text, "Exact")
}

func newTestEngine(want types.Text) *Engine {
	registry := fakeRegistry{decoders: []types.Decoder{reverseDecoder{}}}
	checker := exactChecker{want: want}
	clock := timer.New()
	scorer := NewScorer(nil)
	return New(registry, checker, nil, nil, nil, clock, scorer)
}

func TestEngine_FindsSolutionThroughOneDecoderStep(t *testing.T) {
	defer goleak.VerifyNone(t)

	input := types.Text("dlrow olleh") // reverse of "hello world"
	e := newTestEngine("hello world")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := types.Configuration{Timeout: 2 * time.Second, Workers: 2}
	sol, err := e.Search(ctx, input, cfg)
	require.NoError(t, err)
	assert.Equal(t, types.Text("hello world"), sol.Plaintext)
	require.Len(t, sol.Path, 1)
	assert.Equal(t, "Reverse", sol.Path[0].Name)
}

func TestEngine_ExhaustedWhenNoSolutionReachable(t *testing.T) {
	defer goleak.VerifyNone(t)

	input := types.Text("never matches anything")
	e := newTestEngine("unreachable target")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := types.Configuration{Timeout: 2 * time.Second, Workers: 2, MaxDepth: 2}
	_, err := e.Search(ctx, input, cfg)
	assert.Error(t, err)
}

func TestEngine_RejectsEmptyInput(t *testing.T) {
	defer goleak.VerifyNone(t)

	e := newTestEngine("anything")
	_, err := e.Search(context.Background(), "", types.Configuration{})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}
