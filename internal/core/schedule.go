package core

import "time"

// Scheduler runs callbacks on a simulated clock, one logical thread, no
// preemption. Every callback is tagged with the generation current when it
// was scheduled; Bump starts a new generation and stale callbacks are dropped
// instead of run.
type Scheduler struct {
	now   time.Duration
	gen   uint64
	seq   uint64
	queue []scheduled
}

type scheduled struct {
	due time.Duration
	gen uint64
	seq uint64
	fn  func()
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Generation returns the current generation number.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// After schedules fn to run once the clock reaches Now()+d.
// Callbacks due at the same instant run in scheduling order.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.queue = append(s.queue, scheduled{
		due: s.now + d,
		gen: s.gen,
		seq: s.seq,
		fn:  fn,
	})
}

// Bump invalidates every pending callback.
func (s *Scheduler) Bump() {
	s.gen++
}

// Pending returns the number of callbacks of the current generation
// still waiting to run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, e := range s.queue {
		if e.gen == s.gen {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and runs every callback that became
// due, earliest first. Callbacks scheduled while running are picked up if
// they are already due. Returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d > 0 {
		s.now += d
	}

	ran := 0
	for {
		i := s.nextDue()
		if i < 0 {
			return ran
		}
		e := s.queue[i]
		s.queue = append(s.queue[:i], s.queue[i+1:]...)

		if e.gen != s.gen {
			continue
		}
		e.fn()
		ran++
	}
}

// nextDue returns the index of the earliest due entry, or -1.
func (s *Scheduler) nextDue() int {
	best := -1
	for i, e := range s.queue {
		if e.due > s.now {
			continue
		}
		if best < 0 || e.due < s.queue[best].due ||
			(e.due == s.queue[best].due && e.seq < s.queue[best].seq) {
			best = i
		}
	}
	return best
}
