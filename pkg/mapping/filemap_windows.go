//go:build windows

package mapping

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func fileMapOpen(f *os.File, size int64) (data []byte, native any, err error) {
	h := windows.Handle(f.Fd())

	mapping, err := windows.CreateFileMapping(h, nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping: failed to memory map %s: %w", f.Name(), err)
	}

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, 0)
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, nil, fmt.Errorf("mapping: failed to memory map %s: %w", f.Name(), err)
	}

	data = unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size))
	return data, mapping, nil
}

func fileMapRelease(data []byte, native any) {
	if len(data) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	windows.UnmapViewOfFile(addr)
	if mapping, ok := native.(windows.Handle); ok {
		windows.CloseHandle(mapping)
	}
}
