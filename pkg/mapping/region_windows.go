//go:build windows

package mapping

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// regionMap mirrors the POSIX mmap path using CreateFileMapping +
// MapViewOfFile. The returned native value is the HANDLE of the file
// mapping object, which must be closed after UnmapViewOfFile — a detail
// the registry's release closure for file maps keeps straight for us, and
// which Region keeps straight here for the scoped-region case.
func regionMap(f *os.File, offset int64, size int) (data []byte, native any, err error) {
	h := windows.Handle(f.Fd())

	mapping, err := windows.CreateFileMapping(h, nil, windows.PAGE_READWRITE, 0, 0, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping: CreateFileMapping failed: %w", err)
	}

	offsetHigh := uint32(offset >> 32)
	offsetLow := uint32(offset & 0xFFFFFFFF)

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_WRITE, offsetHigh, offsetLow, uintptr(size))
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, nil, fmt.Errorf("mapping: MapViewOfFile failed (offset=%d, size=%d): %w", offset, size, err)
	}

	data = unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return data, mapping, nil
}

func regionUnmap(data []byte, native any) {
	if len(data) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	_ = windows.UnmapViewOfFile(addr)
	if mapping, ok := native.(windows.Handle); ok {
		windows.CloseHandle(mapping)
	}
}

func regionFlush(data []byte, _ any) error {
	if len(data) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	if err := windows.FlushViewOfFile(addr, uintptr(len(data))); err != nil {
		return fmt.Errorf("mapping: FlushViewOfFile failed: %w", err)
	}
	return nil
}
