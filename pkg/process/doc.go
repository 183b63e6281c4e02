// Package process spawns child processes and captures their combined
// stdout/stderr as a stream of complete lines.
//
// It is built on os/exec.Cmd rather than hand-rolled fork/exec or
// CreateProcess: os/exec already gives a single cross-platform primitive
// for launching with arguments, redirecting combined output through a
// pipe, waiting, reading the exit code, and killing — everything the
// supervisor in this package needs.
package process
