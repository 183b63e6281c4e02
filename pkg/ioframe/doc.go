// Package ioframe turns a raw byte stream into newline-delimited callback
// invocations, normalizing CR, LF, and CRLF terminators.
//
// It is the shared building block behind the process supervisor's output
// capture (pkg/process) but has no dependency on it — anything that reads
// lines out of an arbitrary byte stream can use it.
package ioframe
