package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newPolledScheduler(step func()) (*Scheduler, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewScheduler(TickInterval, step)
	s.clock = clock.Now
	return s, clock
}

func TestPollDoesNothingWhenStopped(t *testing.T) {
	ticks := 0
	s, clock := newPolledScheduler(func() { ticks++ })

	assert.False(t, s.Poll(clock.Now()))
	assert.False(t, s.Poll(clock.Advance(time.Second)))
	assert.Equal(t, 0, ticks)
}

func TestPollTicksImmediatelyThenAtInterval(t *testing.T) {
	ticks := 0
	s, clock := newPolledScheduler(func() { ticks++ })

	s.Start()
	assert.True(t, s.Running())
	assert.True(t, s.Poll(clock.Now()))
	assert.Equal(t, 1, ticks)

	assert.False(t, s.Poll(clock.Advance(50*time.Millisecond)))
	assert.False(t, s.Poll(clock.Advance(49*time.Millisecond)))
	assert.Equal(t, 1, ticks)

	assert.True(t, s.Poll(clock.Advance(time.Millisecond)))
	assert.Equal(t, 2, ticks)
}

func TestPollRunsAtMostOneTickPerCall(t *testing.T) {
	ticks := 0
	s, clock := newPolledScheduler(func() { ticks++ })

	s.Start()
	s.Poll(clock.Now())
	assert.True(t, s.Poll(clock.Advance(10*time.Second)))
	assert.Equal(t, 2, ticks)
}

func TestStopPreventsNextTick(t *testing.T) {
	ticks := 0
	s, clock := newPolledScheduler(func() { ticks++ })

	s.Start()
	s.Poll(clock.Now())
	s.Stop()
	assert.False(t, s.Running())
	assert.False(t, s.Poll(clock.Advance(time.Second)))
	assert.Equal(t, 1, ticks)
}

func TestStopFromInsideTick(t *testing.T) {
	var s *Scheduler
	ticks := 0
	s, clock := newPolledScheduler(func() {
		ticks++
		s.Stop()
	})

	s.Start()
	assert.True(t, s.Poll(clock.Now()))
	assert.False(t, s.Poll(clock.Advance(time.Second)))
	assert.Equal(t, 1, ticks)
}

func TestRunStopsWhenStepStops(t *testing.T) {
	var s *Scheduler
	ticks := 0
	s = NewScheduler(time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			s.Stop()
		}
	})

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 3, ticks)
	assert.False(t, s.Running())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	s := NewScheduler(time.Millisecond, func() {
		ticks++
		if ticks == 2 {
			cancel()
		}
	})

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, ticks)
	assert.False(t, s.Running())
}
