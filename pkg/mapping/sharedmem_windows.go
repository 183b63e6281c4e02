//go:build windows

package mapping

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// sharedMemOpen creates or opens a pagefile-backed named file mapping.
// CreateFileMapping already implements create-or-open semantics by name —
// calling it again with an existing name returns a handle to the existing
// object instead of ERROR_ALREADY_EXISTS being fatal — so a single call
// serves both the owner and non-owner paths; there is no separate
// OpenFileMapping step to keep in sync with it.
func sharedMemOpen(name string, size int, isOwner bool) (data []byte, native any, err error) {
	wname, werr := windows.UTF16PtrFromString(name)
	if werr != nil {
		return nil, nil, fmt.Errorf("mapping: invalid shared memory name '%s': %w", name, werr)
	}

	sizeHigh := uint32(uint64(size) >> 32)
	sizeLow := uint32(uint64(size) & 0xFFFFFFFF)

	mapping, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE, sizeHigh, sizeLow, wname)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping: failed to %s shared memory '%s': %w", ownerWord(isOwner), name, err)
	}

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, nil, fmt.Errorf("mapping: failed to map view of shared memory '%s': %w", name, err)
	}

	data = unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return data, mapping, nil
}

func sharedMemRelease(data []byte, native any) {
	if len(data) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	windows.UnmapViewOfFile(addr)
	if mapping, ok := native.(windows.Handle); ok {
		windows.CloseHandle(mapping)
	}
}

// sharedMemUnlink is a no-op on Windows: named file mapping objects have no
// separate name table to unlink from.
func sharedMemUnlink(string) {}
