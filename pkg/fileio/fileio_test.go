package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBinaryFile_EmptyFileReturnsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, err := ReadBinaryFile(path)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Empty(t, data)
}

func TestReadTextFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	got, err := ReadTextFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
}

func TestReadBinaryFile_MissingFileFails(t *testing.T) {
	_, err := ReadBinaryFile(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}

func TestWriteBinaryFile_OverwriteFalseFailsWhenExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.bin")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	_, err := WriteBinaryFile(path, []byte("replacement"), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "File already exists: "+path)
	require.True(t, errors.Is(err, ErrAlreadyExists))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "original", string(got))
}

func TestWriteBinaryFile_OverwriteTrueTruncatesAndRewrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.bin")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0o644))

	n, err := WriteBinaryFile(path, []byte("short"), true)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "short", string(got))
}

func TestWriteTextFile_CreatesNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")

	n, err := WriteTextFile(path, "some content", false)
	require.NoError(t, err)
	require.Equal(t, len("some content"), n)

	got, err := ReadTextFile(path)
	require.NoError(t, err)
	require.Equal(t, "some content", got)
}

func TestNativeOpenFile_ModeTable(t *testing.T) {
	dir := t.TempDir()

	existing := filepath.Join(dir, "existing.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	h, err := NativeOpenFile(existing, AccessRead, OpenExisting, 0o644)
	require.NoError(t, err)
	require.NoError(t, NativeCloseFile(h))

	_, err = NativeOpenFile(missing, AccessRead, OpenExisting, 0o644)
	require.Error(t, err)

	h, err = NativeOpenFile(missing, AccessWrite, OpenAlways, 0o644)
	require.NoError(t, err)
	require.NoError(t, NativeCloseFile(h))

	h, err = NativeOpenFile(existing, AccessWrite, CreateNew, 0o644)
	require.Error(t, err)
	require.Nil(t, h)

	newPath := filepath.Join(dir, "created-new.txt")
	h, err = NativeOpenFile(newPath, AccessWrite, CreateNew, 0o644)
	require.NoError(t, err)
	require.NoError(t, NativeCloseFile(h))

	_, err = NativeOpenFile(filepath.Join(dir, "truncate-missing.txt"), AccessWrite, TruncateExisting, 0o644)
	require.Error(t, err)
}

func TestNativeCloseFile_NilIsNoOp(t *testing.T) {
	require.NoError(t, NativeCloseFile(nil))
}

func TestNormalizeExecutablePath(t *testing.T) {
	got := NormalizeExecutablePath("myprog")
	require.NotEmpty(t, got)
}
