package concurrency

import (
	"time"
)

// Throttle limits how often a job runs. Unforced calls run when MinInterval
// has passed since the last successful run, forced calls when
// MinForcedInterval has. Callers serialise access.
type Throttle struct {
	MinInterval       time.Duration
	MinForcedInterval time.Duration

	now     func() time.Time
	lastRun time.Time
}

func NewThrottle(minInterval time.Duration, minForcedInterval time.Duration) *Throttle {
	return &Throttle{
		MinInterval:       minInterval,
		MinForcedInterval: minForcedInterval,
		now:               time.Now,
	}
}

// WithClock swaps the time source, used by tests.
func (t *Throttle) WithClock(now func() time.Time) *Throttle {
	t.now = now
	return t
}

// Do runs job unless throttled. ran reports whether job was called; the
// timestamp only moves when job succeeds.
func (t *Throttle) Do(force bool, job func() error) (ran bool, err error) {
	limit := t.MinInterval
	if force {
		limit = t.MinForcedInterval
	}

	if !t.lastRun.IsZero() && t.now().Sub(t.lastRun) < limit {
		return false, nil
	}

	if err := job(); err != nil {
		return true, err
	}
	t.lastRun = t.now()

	return true, nil
}
