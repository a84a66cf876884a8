package ares

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_SearchDecodesNestedBase64(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ares.sqlite")
	engine, err := New(Configuration{Timeout: 5 * time.Second}, Options{DatabasePath: dbPath})
	require.NoError(t, err)
	defer engine.Close()

	// base64("base64(\"hello world\")") - a two-layer chain (§8 worked
	// example category).
	outer := "YUdWc2JHOGdkMjl5YkdRPQ=="

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sol, err := engine.Search(ctx, Text(outer), Configuration{Timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, Text("hello world"), sol.Plaintext)
	assert.Equal(t, 2, len(sol.Path))
}

func TestEngine_SearchRejectsEmptyInput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ares.sqlite")
	engine, err := New(Configuration{}, Options{DatabasePath: dbPath})
	require.NoError(t, err)
	defer engine.Close()

	_, err = engine.Search(context.Background(), "", Configuration{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
