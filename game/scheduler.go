package game

import "time"

// Scheduler models a single-threaded host event loop: repeating timers plus
// "run before next repaint" callbacks. The host drives it by calling Advance
// and RunFrames from its own loop, so callbacks never run concurrently.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	frames []*FrameRequest
}

// Timer is a repeating callback created by Every
type Timer struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

// Stop cancels the timer. Safe to call more than once.
func (t *Timer) Stop() {
	t.stopped = true
}

// Active reports whether the timer will fire again
func (t *Timer) Active() bool {
	return !t.stopped
}

// FrameRequest is a pending one-shot frame callback
type FrameRequest struct {
	fn        func()
	cancelled bool
}

// Cancel drops the request if it has not run yet
func (f *FrameRequest) Cancel() {
	f.cancelled = true
}

// NewScheduler creates a scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's clock
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every runs fn each interval, first after one full interval has elapsed
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	t := &Timer{interval: interval, next: s.now + interval, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// RequestFrame queues fn for the next RunFrames call
func (s *Scheduler) RequestFrame(fn func()) *FrameRequest {
	f := &FrameRequest{fn: fn}
	s.frames = append(s.frames, f)
	return f
}

// Advance moves the clock forward and fires every timer that came due,
// once per elapsed interval, in creation order.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt

	due := append([]*Timer(nil), s.timers...)
	for _, t := range due {
		for !t.stopped && t.next <= s.now {
			t.next += t.interval
			t.fn()
		}
	}

	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = truncate(s.timers, live)
}

// RunFrames runs the frame callbacks queued before this call and returns
// how many ran. Callbacks requested while running wait for the next call.
func (s *Scheduler) RunFrames() int {
	queued := s.frames
	s.frames = nil

	ran := 0
	for _, f := range queued {
		if f.cancelled {
			continue
		}
		f.cancelled = true
		f.fn()
		ran++
	}
	return ran
}

// PendingFrames returns the number of live frame requests
func (s *Scheduler) PendingFrames() int {
	n := 0
	for _, f := range s.frames {
		if !f.cancelled {
			n++
		}
	}
	return n
}

// ActiveTimers returns the number of timers that have not been stopped
func (s *Scheduler) ActiveTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
