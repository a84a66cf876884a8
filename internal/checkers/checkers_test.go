package checkers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenTrieu/Ares/internal/timer"
	"github.com/RenTrieu/Ares/internal/types"
)

func newTestClock() *timer.Clock {
	c := timer.New()
	c.Start()
	return c
}

func TestFormatIdentifier_MatchesUUID(t *testing.T) {
	f := NewFormatIdentifier()
	r := f.Classify(types.Text("123e4567-e89b-12d3-a456-426614174000"))
	require.True(t, r.IsIdentified)
	assert.Contains(t, r.Description, "UUID")
}

func TestFormatIdentifier_RejectsPlainWord(t *testing.T) {
	f := NewFormatIdentifier()
	r := f.Classify(types.Text("hello"))
	assert.False(t, r.IsIdentified)
}

func TestRegex_BuiltinEmailPattern(t *testing.T) {
	r := NewRegex(nil)
	res := r.Classify(types.Text("contact us at test@example.com please"))
	assert.True(t, res.IsIdentified)
}

func TestRegex_ExtraPattern(t *testing.T) {
	r := NewRegex([]string{`^ARES-\d+$`})
	res := r.Classify(types.Text("ARES-42"))
	assert.True(t, res.IsIdentified)
}

func TestJSON_Classify(t *testing.T) {
	j := NewJSON()
	assert.True(t, j.Classify(types.Text(`{"a":1}`)).IsIdentified)
	assert.False(t, j.Classify(types.Text(`not json`)).IsIdentified)
}

func TestEnglish_AcceptsDictionaryRichText(t *testing.T) {
	e := NewEnglish(types.SensitivityMedium, nil)
	res := e.Classify(types.Text("the quick brown fox jumps over the lazy dog"))
	assert.True(t, res.IsIdentified)
}

func TestEnglish_RejectsGibberish(t *testing.T) {
	e := NewEnglish(types.SensitivityHigh, nil)
	res := e.Classify(types.Text("xqzwplkjhfvbnmzxqqpwoeiruty"))
	assert.False(t, res.IsIdentified)
}

type stubNeural struct {
	plausible bool
	err       error
}

func (s stubNeural) Plausible(types.Text) (bool, error) { return s.plausible, s.err }

func TestEnglish_NeuralEscalation(t *testing.T) {
	e := NewEnglish(types.SensitivityHigh, stubNeural{plausible: true})
	// Score lands above half the High threshold but below the threshold
	// itself, so Classify must escalate to the neural classifier and
	// accept on its say-so.
	res := e.Classify(types.Text("the xqq zrp vvv"))
	assert.True(t, res.IsIdentified)
	assert.Contains(t, res.Description, "neural")
}

func TestAthena_ShortCandidateRejectedUnlessFormatMatch(t *testing.T) {
	a := NewAthena(AthenaConfig{Sensitivity: types.SensitivityMedium})
	assert.False(t, a.Classify(types.Text("a")).IsIdentified)
}

func TestAthena_PipelineOrder_RegexWinsOverEnglish(t *testing.T) {
	a := NewAthena(AthenaConfig{Sensitivity: types.SensitivityMedium})
	res := a.Classify(types.Text("reach me at person@example.com for the quick brown fox"))
	require.True(t, res.IsIdentified)
	assert.Equal(t, "Regex", res.CheckerName)
}

func TestHuman_DisabledAlwaysConfirms(t *testing.T) {
	h := NewHuman(false, false, nil, nil, nil)
	assert.True(t, h.Confirm(types.CheckResult{Text: "x"}))
}

type stubPrompter struct {
	yes bool
	err error
}

func (s stubPrompter) Confirm(types.CheckResult) (bool, error) { return s.yes, s.err }

type stubRecorder struct{ calls int }

func (s *stubRecorder) InsertFailedDecode(string, types.CheckResult) error {
	s.calls++
	return nil
}

func TestHuman_NoAnswerRecordsFailedDecode(t *testing.T) {
	rec := &stubRecorder{}
	h := NewHuman(true, false, stubPrompter{yes: false}, rec, newTestClock())
	ok := h.Confirm(types.CheckResult{Text: "candidate", CheckerDesc: "English"})
	assert.False(t, ok)
	assert.Equal(t, 1, rec.calls)
}

func TestHuman_PromptErrorTreatedAsNo(t *testing.T) {
	rec := &stubRecorder{}
	h := NewHuman(true, false, stubPrompter{yes: true, err: errors.New("boom")}, rec, newTestClock())
	ok := h.Confirm(types.CheckResult{Text: "candidate", CheckerDesc: "English"})
	assert.False(t, ok)
}

func TestHuman_DedupesSamePrompt(t *testing.T) {
	rec := &stubRecorder{}
	h := NewHuman(true, false, stubPrompter{yes: false}, rec, newTestClock())
	result := types.CheckResult{Text: "candidate", CheckerDesc: "English"}
	h.Confirm(result)
	h.Confirm(result)
	assert.Equal(t, 1, rec.calls, "second identical prompt should not re-record")
}
