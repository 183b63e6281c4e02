package mapping

import (
	"fmt"
	"os"
	"unsafe"
)

// MapFile opens path read-only and maps its entire contents into memory.
// The returned slice is immutable in spirit — nothing in this package ever
// writes through it — and must be released with UnmapFile. Zero-length
// files are rejected: there is nothing sensible to map.
func MapFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapping: failed to open %s for memory mapping: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mapping: failed to get size of %s for memory mapping: %w", path, err)
	}
	if info.Size() == 0 {
		f.Close()
		return nil, fmt.Errorf("mapping: failed to get size of %s for memory mapping: file is empty", path)
	}

	data, native, err := fileMapOpen(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}

	addr := uintptr(unsafe.Pointer(&data[0]))
	Default().Insert(addr, len(data), func() error {
		fileMapRelease(data, native)
		return f.Close()
	})

	return data, nil
}

// UnmapFile releases a mapping previously returned by MapFile or
// MapSharedMemory. Pointers not currently registered — including a second
// call on the same slice — are a silent no-op.
func UnmapFile(data []byte) {
	if len(data) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	e, ok := Default().Take(addr)
	if !ok {
		return
	}
	_ = e.release()
}
