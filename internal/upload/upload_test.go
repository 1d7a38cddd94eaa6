package upload

import "testing"

func newTestAllocator() *Allocator {
	return NewAllocator(func(size uint64) (*Context, error) {
		return &Context{Size: size, Data: make([]byte, size)}, nil
	})
}

func TestAllocateFloorsAtMinStagingSize(t *testing.T) {
	a := newTestAllocator()
	ctx, err := a.Allocate(128)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if ctx.Size != 64*1024 {
		t.Fatalf("Size = %d, want the 64KiB floor", ctx.Size)
	}
}

func TestAllocateRoundsUpToPowerOfTwo(t *testing.T) {
	a := newTestAllocator()
	ctx, err := a.Allocate(70000)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if ctx.Size != 131072 {
		t.Fatalf("Size = %d, want 131072", ctx.Size)
	}
}

func TestAllocateReusesSignaledContext(t *testing.T) {
	a := newTestAllocator()
	first, err := a.Allocate(1024)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	MarkSubmitted(first, 1, func() uint64 { return 1 })
	second, err := a.Allocate(1024)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second != first {
		t.Fatal("expected the signaled context to be reused rather than a new one created")
	}
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Len())
	}
}

func TestAllocateSkipsUnsignaledContext(t *testing.T) {
	a := newTestAllocator()
	first, err := a.Allocate(1024)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	MarkSubmitted(first, 5, func() uint64 { return 0 })
	second, err := a.Allocate(1024)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second == first {
		t.Fatal("expected a new context since the first is still in flight")
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
}

func TestAllocateSkipsTooSmallContext(t *testing.T) {
	a := newTestAllocator()
	first, err := a.Allocate(1024)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	MarkSubmitted(first, 1, func() uint64 { return 1 })
	second, err := a.Allocate(1 << 20)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second == first {
		t.Fatal("expected a new larger context rather than reuse of an undersized one")
	}
}
