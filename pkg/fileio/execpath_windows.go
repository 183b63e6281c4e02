//go:build windows

package fileio

import "path/filepath"

// NormalizeExecutablePath appends ".exe" iff path has no extension
// already, matching how Windows' CreateProcess resolves a bare module
// name.
func NormalizeExecutablePath(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".exe"
	}
	return path
}
