// Package scheduler implements a tagged priority work pool: a fixed set
// of worker goroutines draining two FIFO queues (high, then normal
// priority), plus a caller-assisted drain path that lets the submitting
// goroutine help finish a Schedule instead of only blocking on it.
package scheduler
