package fileio

import (
	"errors"
	"fmt"
	"os"
)

// ErrAlreadyExists is wrapped into the error returned by WriteTextFile and
// WriteBinaryFile when overwrite is false and the target path exists.
var ErrAlreadyExists = errors.New("file already exists")

// FileAccess mirrors the access modes native_open accepts.
type FileAccess int

const (
	AccessRead FileAccess = iota
	AccessWrite
	AccessReadWrite
)

// FileMode selects create/open disposition, matching the mode table in
// nativeFlags' documentation exactly.
type FileMode int

const (
	OpenExisting FileMode = iota
	OpenAlways
	CreateNew
	CreateAlways
	TruncateExisting
)

// ReadTextFile reads path and returns its contents as a string. An empty
// or zero-length file returns "" successfully, not an error.
func ReadTextFile(path string) (string, error) {
	data, err := ReadBinaryFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBinaryFile reads path in full. An empty or zero-length file returns
// an empty, non-nil slice successfully.
func ReadBinaryFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: failed to read %s: %w", path, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// WriteTextFile writes content to path, honoring overwrite the same way
// WriteBinaryFile does. Returns the number of bytes written.
func WriteTextFile(path, content string, overwrite bool) (int, error) {
	return WriteBinaryFile(path, []byte(content), overwrite)
}

// WriteBinaryFile writes data to path. When overwrite is false, an
// existing file at path causes the call to fail with an error wrapping
// ErrAlreadyExists, so callers can match with errors.Is. Its message begins
// with "File already exists: {path}" but is not exactly that text: the
// wrapped sentinel's own text follows, as in
// "File already exists: {path}: file already exists". When overwrite is true the file is
// truncated and rewritten. Returns the number of bytes actually written.
func WriteBinaryFile(path string, data []byte, overwrite bool) (int, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if !overwrite && errors.Is(err, os.ErrExist) {
			return 0, fmt.Errorf("File already exists: %s: %w", path, ErrAlreadyExists)
		}
		return 0, fmt.Errorf("fileio: failed to open %s for writing: %w", path, err)
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return n, fmt.Errorf("fileio: failed to write %s: %w", path, err)
	}
	return n, nil
}

// NativeOpenFile opens path with the given access and disposition, mapping
// to the platform's native flag combination via nativeFlags. perms is a
// POSIX-style mode and is ignored on Windows.
func NativeOpenFile(path string, access FileAccess, mode FileMode, perms os.FileMode) (*os.File, error) {
	flags, err := nativeFlags(access, mode)
	if err != nil {
		return nil, fmt.Errorf("fileio: %w", err)
	}

	f, err := os.OpenFile(path, flags, perms)
	if err != nil {
		return nil, fmt.Errorf("fileio: failed to open %s: %w", path, err)
	}
	return f, nil
}

// NativeCloseFile closes handle. A nil handle — the sentinel "invalid
// handle" in this domain — is a no-op.
func NativeCloseFile(handle *os.File) error {
	if handle == nil {
		return nil
	}
	return handle.Close()
}
