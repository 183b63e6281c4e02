package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"platformops/pkg/ioframe"
)

// CurrentPID returns the calling process's own PID.
func CurrentPID() int {
	return os.Getpid()
}

// SpawnSync launches cmd with args tokenized by tokenizeArgs, joins its
// stdout and stderr into a single pipe, and reads that pipe through a
// LineFramer, invoking onLine per complete line as they arrive. It waits
// for the child and returns its exit code — matching os.ProcessState's
// ExitCode semantics: the code exec status reports when the process
// exited normally, or -1 if it was terminated by a signal or never ran.
//
// Cancelling ctx kills the child the same way TerminateProcess does, via
// exec.CommandContext — this layers on top of, and does not replace,
// the explicit TerminateProcess path.
func SpawnSync(ctx context.Context, cmd, args string, onLine func(line string)) (int, error) {
	tokens := tokenizeArgs(args)
	c := exec.CommandContext(ctx, cmd, tokens...)

	r, w, err := os.Pipe()
	if err != nil {
		return -1, fmt.Errorf("process: failed to create output pipe for %s: %w", cmd, err)
	}
	c.Stdout = w
	c.Stderr = w

	if err := c.Start(); err != nil {
		r.Close()
		w.Close()
		return -1, fmt.Errorf("process: failed to start %s: %w", cmd, err)
	}
	w.Close()

	framer := ioframe.New(onLine)
	_, copyErr := io.Copy(framer, r)
	r.Close()
	framer.Flush()

	waitErr := c.Wait()
	exitCode := -1
	if c.ProcessState != nil {
		exitCode = c.ProcessState.ExitCode()
	}
	if copyErr != nil {
		return exitCode, fmt.Errorf("process: failed to read output from %s: %w", cmd, copyErr)
	}
	if waitErr != nil {
		if _, isExit := waitErr.(*exec.ExitError); !isExit {
			return exitCode, fmt.Errorf("process: %s did not run to completion: %w", cmd, waitErr)
		}
	}
	return exitCode, nil
}

// SpawnAsync runs SpawnSync's logic on a background goroutine and returns
// immediately with a Handle whose PID becomes available as soon as the
// child is started. onFinish, if non-nil, is invoked with the exit code
// and error once the child has been reaped. Cancelling ctx kills the
// child, same as SpawnSync.
func SpawnAsync(ctx context.Context, cmd, args string, onLine func(line string), onFinish func(exitCode int, err error)) (*Handle, error) {
	h := &Handle{}
	h.setRunning(true)

	tokens := tokenizeArgs(args)
	c := exec.CommandContext(ctx, cmd, tokens...)

	r, w, err := os.Pipe()
	if err != nil {
		h.setRunning(false)
		return nil, fmt.Errorf("process: failed to create output pipe for %s: %w", cmd, err)
	}
	c.Stdout = w
	c.Stderr = w

	if err := c.Start(); err != nil {
		r.Close()
		w.Close()
		h.setRunning(false)
		return nil, fmt.Errorf("process: failed to start %s: %w", cmd, err)
	}
	w.Close()

	h.setPID(c.Process.Pid)
	h.setProcess(c.Process)

	go func() {
		framer := ioframe.New(onLine)
		_, copyErr := io.Copy(framer, r)
		r.Close()
		framer.Flush()

		waitErr := c.Wait()
		exitCode := -1
		if c.ProcessState != nil {
			exitCode = c.ProcessState.ExitCode()
		}
		h.setRunning(false)

		if onFinish == nil {
			return
		}
		if copyErr != nil {
			onFinish(exitCode, fmt.Errorf("process: failed to read output from %s: %w", cmd, copyErr))
			return
		}
		if waitErr != nil {
			if _, isExit := waitErr.(*exec.ExitError); !isExit {
				onFinish(exitCode, fmt.Errorf("process: %s did not run to completion: %w", cmd, waitErr))
				return
			}
		}
		onFinish(exitCode, nil)
	}()

	return h, nil
}

// TerminateProcess kills the child owned by h. Inactive handles and a
// zero PID are silent no-ops. Termination does not wait for the
// supervising goroutine to observe exit; h remains live until it does.
func TerminateProcess(h *Handle) error {
	if h == nil || !h.Active() {
		return nil
	}
	if h.PID() == 0 {
		return nil
	}
	p := h.proc.Load()
	if p == nil {
		return nil
	}
	if err := p.Kill(); err != nil {
		return fmt.Errorf("process: failed to terminate pid %d: %w", h.PID(), err)
	}
	return nil
}
