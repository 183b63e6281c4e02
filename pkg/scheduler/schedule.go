package scheduler

import "sync"

// Schedule tracks how many outstanding tasks were submitted under it. A
// Schedule is safe to submit to from multiple goroutines and to wait on
// from exactly the goroutines that care about its completion.
type Schedule struct {
	mu      sync.Mutex
	cond    *sync.Cond
	counter int32
}

// NewSchedule returns a fresh, empty Schedule.
func NewSchedule() *Schedule {
	s := &Schedule{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *Schedule) increment() {
	s.mu.Lock()
	s.counter++
	s.mu.Unlock()
}

// completionEdge runs the same bookkeeping a worker and a drain-side
// execution both perform after a task finishes: decrement, and on the
// transition to zero, wake every waiter.
func (s *Schedule) completionEdge() {
	s.mu.Lock()
	s.counter--
	reachedZero := s.counter == 0
	s.mu.Unlock()
	if reachedZero {
		s.cond.Broadcast()
	}
}

func (s *Schedule) pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter != 0
}

// Wait blocks the calling goroutine until every task submitted under s
// has completed. While waiting, the caller helps the pool drain: it pops
// one task at a time (high priority first) and runs it in-thread with
// WorkerID 0 before checking again. A spurious wake from Broadcast is
// benign — the loop simply re-checks the counter. Wait panics if p has not
// been initialized, the same programmer-error disposition Submit uses.
func (s *Schedule) Wait(p *Pool) {
	if p.WorkerCount() == 0 {
		panic("scheduler: Wait called on an uninitialized pool")
	}
	for s.pending() {
		if t, ok := p.popForDrain(); ok {
			t.work(MainThreadWorkerID)
			t.schedule.completionEdge()
			p.metrics().TaskCompleted()
			continue
		}

		s.mu.Lock()
		if s.counter != 0 {
			s.cond.Wait()
		}
		s.mu.Unlock()
	}
}
