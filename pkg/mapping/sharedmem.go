package mapping

import (
	"fmt"
	"unsafe"
)

// MapSharedMemory creates (isOwner) or opens a named shared-memory region
// and maps it read-write. The same region, opened under the same name and
// size by a non-owner, observes exactly what the owner wrote.
//
// Release with UnmapFile — the registry does not distinguish a shared
// mapping's release path from a file mapping's, only the platform-specific
// release closure captured at map time differs.
func MapSharedMemory(name string, size int, isOwner bool) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mapping: invalid shared memory size %d", size)
	}

	data, native, err := sharedMemOpen(name, size, isOwner)
	if err != nil {
		return nil, err
	}

	addr := uintptr(unsafe.Pointer(&data[0]))
	Default().Insert(addr, len(data), func() error {
		sharedMemRelease(data, native)
		return nil
	})

	return data, nil
}

// UnlinkSharedMemory removes the name->segment association on POSIX
// (shm_unlink) so that once every mapper has unmapped, the backing storage
// is reclaimed. On Windows this is a no-op by design: a named file mapping
// object's lifetime is tied to open handles, not to a name table, so there
// is nothing to unlink.
func UnlinkSharedMemory(name string) {
	if name == "" {
		return
	}
	sharedMemUnlink(name)
}

func ownerWord(isOwner bool) string {
	if isOwner {
		return "owner"
	}
	return "consumer"
}
