package mapping

import (
	"fmt"
	"os"
	"sync"
)

// Region is an exclusively-owned, writable mapping over a region of an
// already-open file. It is move-only: the embedded mutex already makes
// go vet's copylocks check reject copying a Region by value, so ownership
// transfer goes through Take (pointer to pointer) instead of assignment.
//
// The zero value is a valid, unmapped Region. Destruction has no Go
// equivalent — callers must call Unmap (or defer it) when done; there is
// no finalizer, to keep release timing deterministic the way the original
// RAII destructor made it.
type Region struct {
	mu     sync.Mutex
	data   []byte
	native any
}

// Map extends f to cover offset+size if it is currently shorter, then
// establishes a writable shared mapping over that span. Any existing
// mapping owned by this Region is released first.
func (r *Region) Map(f *os.File, offset int64, size int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.data != nil {
		regionUnmap(r.data, r.native)
		r.data, r.native = nil, nil
	}

	if f == nil {
		return fmt.Errorf("mapping: invalid file handle provided to Map")
	}
	if size <= 0 {
		return fmt.Errorf("mapping: cannot map region of size 0")
	}

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("mapping: failed to stat file: %w", err)
	}
	end := offset + int64(size)
	if info.Size() < end {
		if err := f.Truncate(end); err != nil {
			return fmt.Errorf("mapping: failed to extend file for mapping: %w", err)
		}
	}

	data, native, err := regionMap(f, offset, size)
	if err != nil {
		return err
	}
	r.data, r.native = data, native
	return nil
}

// Unmap releases the view (and, on Windows, the mapping object it came
// from). The underlying file handle is caller-owned and is never touched
// here. Unmap on an already-unmapped Region is a no-op.
func (r *Region) Unmap() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return
	}
	regionUnmap(r.data, r.native)
	r.data, r.native = nil, nil
}

// Flush syncs dirty pages to the backing file. It is a no-op when unmapped.
func (r *Region) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil
	}
	return regionFlush(r.data, r.native)
}

// Ptr returns the mapped bytes, or nil when unmapped. Ptr's result aliases
// OS-managed memory: it is only valid for as long as the Region stays
// mapped, exactly like the C pointer it replaces.
func (r *Region) Ptr() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// Size returns the mapped size in bytes, 0 when unmapped.
func (r *Region) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

// Valid reports whether the Region currently owns a live mapping.
func (r *Region) Valid() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data != nil
}

// Take transfers ownership of src's mapping into dst, unmapping whatever
// dst currently owns first and leaving src unmapped — the Go expression of
// move-assignment for a type that cannot be copied by value.
func (dst *Region) Take(src *Region) {
	if dst == src {
		return
	}
	dst.mu.Lock()
	defer dst.mu.Unlock()
	src.mu.Lock()
	defer src.mu.Unlock()

	if dst.data != nil {
		regionUnmap(dst.data, dst.native)
	}
	dst.data, dst.native = src.data, src.native
	src.data, src.native = nil, nil
}
