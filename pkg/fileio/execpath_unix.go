//go:build unix

package fileio

import "strings"

// NormalizeExecutablePath strips a trailing ".exe" extension if present,
// then prefixes "./" when path is relative and does not already start
// with "./" or "../" — matching how a POSIX shell distinguishes a bare
// command name (looked up on PATH) from a path to a specific file.
func NormalizeExecutablePath(path string) string {
	path = strings.TrimSuffix(path, ".exe")

	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return path
	}
	return "./" + path
}
