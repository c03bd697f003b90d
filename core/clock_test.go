package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCoarseClock(t *testing.T) {
	clock := CoarseClock()
	// Allow the ticker to fire at least once
	time.Sleep(2 * time.Millisecond)

	got := clock()
	now := time.Now()

	diff := now.Sub(got)
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, 5*time.Millisecond, "coarse clock drifted")
}

func TestCoarseClock_Idempotent(t *testing.T) {
	CoarseClock()
	CoarseClock()
	clock := CoarseClock()

	require.False(t, clock().IsZero())
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock()
	require.False(t, got.Before(before))
}
