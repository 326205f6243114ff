package headset

import "time"

// Clock reads the wall clock. Tests substitute a fake to exercise the connect timeout without
// waiting for it.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type systemClock struct{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// SystemClock is the real wall clock.
var SystemClock Clock = systemClock{}

// Sleep returns a yield hook that pauses for d between connection polls.
func Sleep(d time.Duration) func() {
	return func() {
		time.Sleep(d)
	}
}
