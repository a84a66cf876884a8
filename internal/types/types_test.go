package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfiguration_WithDefaults(t *testing.T) {
	cfg := Configuration{}.WithDefaults()
	assert.Equal(t, 20, cfg.MaxDepth)
	assert.Equal(t, 100_000, cfg.MaxQueueSize)
}

func TestConfiguration_WithDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := Configuration{MaxDepth: 5, MaxQueueSize: 10}.WithDefaults()
	assert.Equal(t, 5, cfg.MaxDepth)
	assert.Equal(t, 10, cfg.MaxQueueSize)
}

func TestParseSensitivity(t *testing.T) {
	s, ok := ParseSensitivity("High")
	assert.True(t, ok)
	assert.Equal(t, SensitivityHigh, s)

	s, ok = ParseSensitivity("bogus")
	assert.False(t, ok)
	assert.Equal(t, SensitivityMedium, s)
}

func TestText_ValidAndPrintable(t *testing.T) {
	assert.True(t, Text("hello").Valid())
	assert.True(t, Text("hello").Printable())
	assert.False(t, Text("\x00\x01").Printable())
}

func TestNewStoreError_NilIsNil(t *testing.T) {
	assert.Nil(t, NewStoreError(nil))
}

func TestCrackResult_MarshalUnmarshalRoundTrip(t *testing.T) {
	cr := CrackResult{Name: "Base64", Success: true, UnencryptedText: []Text{"hello"}}
	raw, err := cr.MarshalText()
	assert.NoError(t, err)

	got, err := UnmarshalCrackResult(raw)
	assert.NoError(t, err)
	assert.Equal(t, cr.Name, got.Name)
	assert.Equal(t, cr.Success, got.Success)
}
