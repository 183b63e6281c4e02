//go:build windows

package fileio

import (
	"fmt"
	"os"
)

// nativeFlags mirrors fileio_unix.go's table exactly. Go's os.O_* flags
// already carry their CreateFile-equivalent semantics on Windows through
// the runtime's syscall layer, so no separate CreateFile disposition
// mapping is needed here.
func nativeFlags(access FileAccess, mode FileMode) (int, error) {
	var flags int
	switch access {
	case AccessRead:
		flags = os.O_RDONLY
	case AccessWrite:
		flags = os.O_WRONLY
	case AccessReadWrite:
		flags = os.O_RDWR
	default:
		return 0, fmt.Errorf("invalid file access %d", access)
	}

	switch mode {
	case OpenExisting:
	case OpenAlways:
		flags |= os.O_CREATE
	case CreateNew:
		flags |= os.O_CREATE | os.O_EXCL
	case CreateAlways:
		flags |= os.O_CREATE | os.O_TRUNC
	case TruncateExisting:
		flags |= os.O_TRUNC
	default:
		return 0, fmt.Errorf("invalid file mode %d", mode)
	}

	return flags, nil
}
