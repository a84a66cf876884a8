package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenTrieu/Ares/internal/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_EmptyPathFallsBackToMemory(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, "sqlite", s.Driver())
}

func TestCache_InsertAndReadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	row := types.CacheRow{
		EncodedText: "aGVsbG8=",
		DecodedText: "hello",
		Path: []types.CrackResult{
			{Name: "Base64", Success: true},
		},
		Successful:      true,
		ExecutionTimeMS: 42,
	}
	require.NoError(t, s.InsertCache(row))

	got, ok, err := s.ReadCache("aGVsbG8=")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", got.DecodedText)
	assert.True(t, got.Successful)
	require.Len(t, got.Path, 1)
	assert.Equal(t, "Base64", got.Path[0].Name)
}

func TestCache_ReadMiss(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.ReadCache("never inserted")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFailedDecodes_IsFailedUnder(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.InsertFailedDecode("plaintext candidate", types.CheckResult{CheckerName: "English"}))

	failed, err := s.IsFailedUnder("plaintext candidate", "English")
	require.NoError(t, err)
	assert.True(t, failed)

	failed, err = s.IsFailedUnder("plaintext candidate", "Regex")
	require.NoError(t, err)
	assert.False(t, failed, "a veto under one checker must not apply under a different checker")

	failed, err = s.IsFailedUnder("never recorded", "English")
	require.NoError(t, err)
	assert.False(t, failed)
}
