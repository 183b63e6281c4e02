package process

import (
	"os"
	"sync/atomic"
)

// Handle is an owned reference to a spawned child process. Its PID and
// running flag are atomics so any goroutine can observe them lock-free
// while the supervising goroutine mutates them.
type Handle struct {
	pid     atomic.Int64
	running atomic.Bool
	proc    atomic.Pointer[os.Process]
}

// PID returns the child's process ID, or 0 before it has been assigned.
func (h *Handle) PID() int64 {
	return h.pid.Load()
}

// Active reports whether the supervising goroutine is still running a
// real child: running alone isn't enough, since a Handle briefly exists
// with running set before a PID has been assigned.
func (h *Handle) Active() bool {
	return h.running.Load() && h.pid.Load() != 0
}

func (h *Handle) setPID(pid int) {
	h.pid.Store(int64(pid))
}

func (h *Handle) setProcess(p *os.Process) {
	h.proc.Store(p)
}

func (h *Handle) setRunning(running bool) {
	h.running.Store(running)
}
