// Package fileio implements blocking text/binary file reads and writes,
// exclusive-create semantics, and executable-path normalization on top of
// os.OpenFile.
//
// os.File is already the native handle on every supported GOOS, so the
// "opaque native handle" that native_open hands back elsewhere in this
// domain is simply a *os.File here; NativeCloseFile treats a nil handle
// the way the original treats its sentinel invalid handle — a no-op.
package fileio
