package sim

import (
	"context"
	"time"
)

// TickInterval is the delay between the end of one tick and the start of the next
const TickInterval = 100 * time.Millisecond

// Scheduler runs a step function repeatedly while started.
// Stopping clears the running flag so no further tick is scheduled; a tick in progress always completes.
// It is not safe for concurrent use: Start and Stop must be called from the goroutine driving it.
type Scheduler struct {
	step     func()
	interval time.Duration
	running  bool
	nextTick time.Time
	clock    func() time.Time
}

func NewScheduler(interval time.Duration, step func()) *Scheduler {
	return &Scheduler{step: step, interval: interval, clock: time.Now}
}

// Start arms the scheduler; the first tick is due immediately
func (s *Scheduler) Start() {
	s.running = true
	s.nextTick = time.Time{}
}

func (s *Scheduler) Stop() {
	s.running = false
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Poll runs at most one tick if the scheduler is running and the tick is due.
// It is meant for hosts that call back once per frame.
func (s *Scheduler) Poll(now time.Time) bool {
	if !s.running || now.Before(s.nextTick) {
		return false
	}
	s.step()
	s.nextTick = s.clock().Add(s.interval)
	return true
}

// Run ticks until the scheduler is stopped or ctx is done.
// Each tick is scheduled only after the previous one returns.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-timer.C:
			if !s.running {
				return nil
			}
			s.step()
			if !s.running {
				return nil
			}
			timer.Reset(s.interval)
		}
	}
}
