package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_ElapsedAdvancesWhileRunning(t *testing.T) {
	c := New()
	c.Start()
	time.Sleep(5 * time.Millisecond)
	assert.Greater(t, c.Elapsed(), time.Duration(0))
}

func TestClock_ElapsedConstantWhilePaused(t *testing.T) {
	c := New()
	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Pause()
	first := c.Elapsed()
	time.Sleep(5 * time.Millisecond)
	second := c.Elapsed()
	assert.Equal(t, first, second)
}

func TestClock_NestedPauseRequiresMatchingResumes(t *testing.T) {
	c := New()
	c.Start()
	c.Pause()
	c.Pause()
	assert.True(t, c.Paused())
	c.Resume()
	assert.True(t, c.Paused(), "still paused after only one of two Resumes")
	c.Resume()
	assert.False(t, c.Paused())
}

func TestClock_Reset(t *testing.T) {
	c := New()
	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Reset()
	assert.Equal(t, time.Duration(0), c.Elapsed())
	assert.False(t, c.Paused())
}
