//go:build unix

package mapping

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// regionMap establishes a writable MAP_SHARED mapping over fd, advising
// the kernel the access pattern will be sequential — the same hint the
// original implementation emits on POSIX for both file maps and scoped
// regions.
func regionMap(f *os.File, offset int64, size int) (data []byte, native any, err error) {
	data, err = unix.Mmap(int(f.Fd()), offset, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping: mmap failed: %w", err)
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return data, nil, nil
}

func regionUnmap(data []byte, _ any) {
	_ = unix.Munmap(data)
}

func regionFlush(data []byte, _ any) error {
	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("mapping: msync failed: %w", err)
	}
	return nil
}
