//go:build unix

package fileio

import (
	"fmt"
	"os"
)

// nativeFlags maps (access, mode) to the os.O_* combination that
// reproduces the mode table exactly: OpenExisting never creates,
// OpenAlways creates without truncating, CreateNew creates exclusively,
// CreateAlways always truncates, TruncateExisting truncates but never
// creates.
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
