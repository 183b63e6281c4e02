package mapping

import "testing"

func TestRegistry_InsertTakeContains(t *testing.T) {
	r := NewRegistry()
	const addr uintptr = 0x1000

	if r.Contains(addr) {
		t.Fatalf("fresh registry should not contain %#x", addr)
	}

	released := false
	r.Insert(addr, 64, func() error {
		released = true
		return nil
	})

	if !r.Contains(addr) {
		t.Fatalf("expected %#x to be registered", addr)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	e, ok := r.Take(addr)
	if !ok {
		t.Fatalf("Take() reported missing entry for %#x", addr)
	}
	if err := e.release(); err != nil {
		t.Fatalf("release() error = %v", err)
	}
	if !released {
		t.Fatalf("release closure was not invoked")
	}

	if r.Contains(addr) {
		t.Fatalf("%#x should have been removed by Take", addr)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after Take", r.Len())
	}
}

func TestRegistry_TakeAbsentIsNoOp(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Take(0xdeadbeef)
	if ok {
		t.Fatalf("Take on an absent pointer should report false")
	}
}

func TestRegistry_DuplicateInsertPanics(t *testing.T) {
	r := NewRegistry()
	r.Insert(1, 1, func() error { return nil })

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic inserting a duplicate address")
		}
	}()
	r.Insert(1, 1, func() error { return nil })
}
