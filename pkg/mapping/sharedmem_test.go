package mapping

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func uniqueSegmentName(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("platformops-test-%s", uuid.NewString())
}

func TestMapSharedMemory_OwnerWritesAreVisibleToNonOwner(t *testing.T) {
	name := uniqueSegmentName(t)
	defer UnlinkSharedMemory(name)

	owner, err := MapSharedMemory(name, 32, true)
	require.NoError(t, err)
	defer UnmapFile(owner)

	copy(owner, []byte("shared-memory-payload"))

	consumer, err := MapSharedMemory(name, 32, false)
	require.NoError(t, err)
	defer UnmapFile(consumer)

	require.Equal(t, owner[:len("shared-memory-payload")], consumer[:len("shared-memory-payload")])
}

func TestMapSharedMemory_RejectsNonPositiveSize(t *testing.T) {
	_, err := MapSharedMemory(uniqueSegmentName(t), 0, true)
	require.Error(t, err)

	_, err = MapSharedMemory(uniqueSegmentName(t), -1, true)
	require.Error(t, err)
}

func TestUnlinkSharedMemory_EmptyNameIsNoOp(t *testing.T) {
	UnlinkSharedMemory("")
}
