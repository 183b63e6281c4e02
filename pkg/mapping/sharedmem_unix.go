//go:build unix

package mapping

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// shmDir is where named shared memory segments live on POSIX, matching
// the external interface's documented layout.
const shmDir = "/dev/shm/"

func sharedMemOpen(name string, size int, isOwner bool) (data []byte, native any, err error) {
	path := shmDir + name

	flags := unix.O_RDWR
	if isOwner {
		flags |= unix.O_CREAT | unix.O_TRUNC
	}

	fd, err := unix.Open(path, flags, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping: failed to %s shared memory '%s': %w", ownerWord(isOwner), name, err)
	}

	if isOwner {
		if err := unix.Ftruncate(fd, int64(size)); err != nil {
			unix.Close(fd)
			unix.Unlink(path)
			return nil, nil, fmt.Errorf("mapping: failed to truncate shared memory '%s': %w", name, err)
		}
	}

	data, err = unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, nil, fmt.Errorf("mapping: failed to mmap shared memory '%s': %w", name, err)
	}

	return data, fd, nil
}

func sharedMemRelease(data []byte, native any) {
	_ = unix.Munmap(data)
	if fd, ok := native.(int); ok {
		unix.Close(fd)
	}
}

func sharedMemUnlink(name string) {
	_ = unix.Unlink(shmDir + name)
}
