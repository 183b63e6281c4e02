package scheduler

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"platformops/internal/metrics"
	"platformops/internal/platformlog"
)

// Config configures a Pool at construction. Logger and Metrics are both
// optional; a nil value disables the corresponding instrumentation.
type Config struct {
	Logger  *platformlog.Logger
	Metrics *metrics.Collector
}

// Pool is a fixed-size set of worker goroutines draining a high-priority
// and a normal-priority FIFO queue under one shared lock, plus the
// bookkeeping needed for tag-based cancellation and Schedule completion.
type Pool struct {
	mu   sync.Mutex
	wake *sync.Cond

	high   *doublylinkedlist.List
	normal *doublylinkedlist.List

	workerCount   uint16
	stopRequested bool
	wg            sync.WaitGroup

	logger           *platformlog.Logger
	metricsCollector *metrics.Collector
}

// NewPool constructs an uninitialized Pool. Call Initialize before
// submitting or draining anything.
func NewPool(cfg Config) *Pool {
	p := &Pool{
		high:             doublylinkedlist.New(),
		normal:           doublylinkedlist.New(),
		logger:           cfg.Logger,
		metricsCollector: cfg.Metrics,
	}
	p.wake = sync.NewCond(&p.mu)
	return p
}

func (p *Pool) metrics() *metrics.Collector {
	return p.metricsCollector
}

// Initialize spawns workerCount workers, each with a 1-based WorkerID. A
// count of 0 picks DefaultWorkerCount(). Initialize may be called again
// after Terminate to restart the pool with a different worker count.
func (p *Pool) Initialize(workerCount uint8) error {
	p.mu.Lock()
	if p.workerCount != 0 {
		p.mu.Unlock()
		return fmt.Errorf("scheduler: pool is already initialized")
	}

	effective := workerCount
	if effective == 0 {
		effective = DefaultWorkerCount()
	}
	p.workerCount = uint16(effective)
	p.stopRequested = false
	p.mu.Unlock()

	p.wg.Add(int(effective))
	for i := uint8(0); i < effective; i++ {
		id := WorkerID(i + 1)
		go p.workerLoop(id)
	}

	if p.logger != nil {
		p.logger.Info("scheduler pool initialized", platformlog.Field{Key: "worker_count", Value: effective})
	}
	return nil
}

// Terminate requests every worker to stop, wakes them, waits for all to
// exit, and clears the pool so Initialize can be called again.
func (p *Pool) Terminate() {
	p.mu.Lock()
	p.stopRequested = true
	p.mu.Unlock()
	p.wake.Broadcast()

	p.wg.Wait()

	p.mu.Lock()
	p.workerCount = 0
	p.high.Clear()
	p.normal.Clear()
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Info("scheduler pool terminated")
	}
}

// WorkerCount returns the number of workers currently running, 0 before
// Initialize or after Terminate.
func (p *Pool) WorkerCount() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workerCount
}

// Submit enqueues work under tag and priority, crediting sched with one
// more outstanding task before the enqueue becomes visible to workers.
// Submit panics if the pool has not been initialized — this is the
// programmer-error disposition the rest of this module's API uses for
// misuse of an exported precondition.
func (p *Pool) Submit(work func(WorkerID), tag uint64, sched *Schedule, priority Priority) {
	p.mu.Lock()
	if p.workerCount == 0 {
		p.mu.Unlock()
		panic("scheduler: Submit called on an uninitialized pool")
	}
	p.mu.Unlock()

	sched.increment()

	t := &task{tag: tag, schedule: sched, work: work}

	p.mu.Lock()
	if priority == High {
		p.high.Add(t)
	} else {
		p.normal.Add(t)
	}
	p.mu.Unlock()

	p.metrics().TaskSubmitted(priority.String())
	p.wake.Signal()
}

// CancelTag removes every not-yet-running task tagged tag from both
// queues. Tasks already popped into a worker run to completion
// regardless. Each removal credits its Schedule's completion edge
// exactly once, so a task cancelled here is never double-decremented by
// a worker that might otherwise have picked it up.
func (p *Pool) CancelTag(tag uint64) {
	p.mu.Lock()
	removedBySchedule := make(map[*Schedule]int)
	total := 0
	for _, q := range []*doublylinkedlist.List{p.high, p.normal} {
		kept := make([]interface{}, 0, q.Size())
		q.Each(func(_ int, v interface{}) {
			t := v.(*task)
			if t.tag == tag {
				removedBySchedule[t.schedule]++
				total++
			} else {
				kept = append(kept, v)
			}
		})
		q.Clear()
		q.Add(kept...)
	}
	p.mu.Unlock()

	for sched, n := range removedBySchedule {
		for i := 0; i < n; i++ {
			sched.completionEdge()
		}
	}
	p.metrics().TasksCancelled(total)
}

// RunDetached starts work on a fresh goroutine, independent of the pool
// and of any Schedule.
func RunDetached(work func()) {
	go work()
}

func (p *Pool) popLocked() *task {
	if p.high.Size() > 0 {
		v, _ := p.high.Get(0)
		p.high.Remove(0)
		return v.(*task)
	}
	if p.normal.Size() > 0 {
		v, _ := p.normal.Get(0)
		p.normal.Remove(0)
		return v.(*task)
	}
	return nil
}

// popForDrain is the Schedule.Wait-side queue pop: it takes the lock
// itself rather than requiring a worker's already-held lock.
func (p *Pool) popForDrain() (*task, bool) {
	p.mu.Lock()
	t := p.popLocked()
	p.mu.Unlock()
	return t, t != nil
}

func (p *Pool) workerLoop(id WorkerID) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.high.Size() == 0 && p.normal.Size() == 0 && !p.stopRequested {
			p.wake.Wait()
		}

		if p.high.Size() == 0 && p.normal.Size() == 0 && p.stopRequested {
			p.mu.Unlock()
			return
		}

		t := p.popLocked()
		p.mu.Unlock()

		if t == nil {
			// defensive only: the lock is held from the checks above through
			// popLocked, so at least one queue is non-empty here
			continue
		}

		p.metrics().WorkerStarted()
		t.work(id)
		p.metrics().WorkerIdled()

		t.schedule.completionEdge()
		p.metrics().TaskCompleted()
	}
}
