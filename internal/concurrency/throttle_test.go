package concurrency_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/lightify/internal/concurrency"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newThrottle() (*concurrency.Throttle, *fakeClock) {
	clock := &fakeClock{t: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)}
	return concurrency.NewThrottle(10*time.Second, 100*time.Millisecond).WithClock(clock.now), clock
}

func Test_Throttle(t *testing.T) {

	t.Run("unforced twice within interval: should run once", func(t *testing.T) {
		// arrange
		th, clock := newThrottle()
		calls := 0
		job := func() error { calls++; return nil }

		// act
		ran1, _ := th.Do(false, job)
		clock.advance(9 * time.Second)
		ran2, _ := th.Do(false, job)

		// assert
		assert.True(t, ran1)
		assert.False(t, ran2)
		assert.Equal(t, 1, calls)
	})

	t.Run("unforced after interval: should run again", func(t *testing.T) {
		th, clock := newThrottle()
		calls := 0
		job := func() error { calls++; return nil }

		_, _ = th.Do(false, job)
		clock.advance(10 * time.Second)
		ran, _ := th.Do(false, job)

		assert.True(t, ran)
		assert.Equal(t, 2, calls)
	})

	t.Run("forced twice within 100ms: should run once, then again after 100ms", func(t *testing.T) {
		th, clock := newThrottle()
		calls := 0
		job := func() error { calls++; return nil }

		_, _ = th.Do(true, job)
		clock.advance(50 * time.Millisecond)
		ran, _ := th.Do(true, job)
		assert.False(t, ran)
		assert.Equal(t, 1, calls)

		clock.advance(50 * time.Millisecond)
		ran, _ = th.Do(true, job)
		assert.True(t, ran)
		assert.Equal(t, 2, calls)
	})

	t.Run("forced shortly after unforced: should use the forced floor", func(t *testing.T) {
		th, clock := newThrottle()
		calls := 0
		job := func() error { calls++; return nil }

		_, _ = th.Do(false, job)
		clock.advance(200 * time.Millisecond)
		ran, _ := th.Do(true, job)

		assert.True(t, ran)
		assert.Equal(t, 2, calls)
	})

	t.Run("failed job: should return the error and not start the interval", func(t *testing.T) {
		th, _ := newThrottle()
		calls := 0
		failing := func() error { calls++; return errors.New("bridge gone") }

		ran, err := th.Do(false, failing)
		assert.True(t, ran)
		assert.EqualError(t, err, "bridge gone")

		ran, err = th.Do(false, failing)
		assert.True(t, ran)
		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})
}
