//go:build unix

package mapping

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func fileMapOpen(f *os.File, size int64) (data []byte, native any, err error) {
	data, err = unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping: failed to memory map %s: %w", f.Name(), err)
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return data, nil, nil
}

func fileMapRelease(data []byte, _ any) {
	_ = unix.Munmap(data)
}
