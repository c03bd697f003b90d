package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the instant stamped on a record.
type Clock func() time.Time

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// SystemClock reads the wall clock on every call.
func SystemClock() time.Time {
	return time.Now()
}

// CoarseClock starts, once per process, a goroutine that caches
// time.Now() every 500µs and returns a Clock reading that cache. The
// goroutine runs for the lifetime of the process.
func CoarseClock() Clock {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
	return coarseTime
}

func coarseTime() time.Time {
	return *coarseNow.Load()
}
