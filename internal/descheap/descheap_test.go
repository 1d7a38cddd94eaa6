package descheap

import "testing"

type fakeHeap struct {
	capacity uint32
	slots    []uint32
}

func newFakeHeapFactory() (CreateHeap, *[]*fakeHeap) {
	var created []*fakeHeap
	create := func(capacity uint32, shaderVisible bool) (any, any, error) {
		cpu := &fakeHeap{capacity: capacity, slots: make([]uint32, capacity)}
		created = append(created, cpu)
		if !shaderVisible {
			return cpu, nil, nil
		}
		gpu := &fakeHeap{capacity: capacity, slots: make([]uint32, capacity)}
		created = append(created, gpu)
		return cpu, gpu, nil
	}
	return create, &created
}

func copyFake(dstHeap any, dstIndex uint32, srcHeap any, srcIndex uint32) {
	dst := dstHeap.(*fakeHeap)
	src := srcHeap.(*fakeHeap)
	dst.slots[dstIndex] = src.slots[srcIndex]
}

func TestAllocateLinearScan(t *testing.T) {
	create, _ := newFakeHeapFactory()
	a, err := New(8, false, create, copyFake)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first, err := a.Allocate(2)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if first != 0 {
		t.Fatalf("first = %d, want 0", first)
	}
	second, err := a.Allocate(3)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second != 2 {
		t.Fatalf("second = %d, want 2", second)
	}
	if a.Allocated() != 5 {
		t.Fatalf("Allocated() = %d, want 5", a.Allocated())
	}
}

func TestAllocateReusesReleasedRange(t *testing.T) {
	create, _ := newFakeHeapFactory()
	a, err := New(4, false, create, copyFake)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first, _ := a.Allocate(2)
	a.Release(first, 2)
	second, err := a.Allocate(2)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second != first {
		t.Fatalf("second = %d, want reuse of released base %d", second, first)
	}
}

func TestAllocateGrowsAndCopiesLiveDescriptors(t *testing.T) {
	create, heaps := newFakeHeapFactory()
	a, err := New(2, false, create, copyFake)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	base, err := a.Allocate(2)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	firstCPU := (*heaps)[0]
	firstCPU.slots[base] = 0xAAAA
	firstCPU.slots[base+1] = 0xBBBB

	if _, err := a.Allocate(4); err != nil {
		t.Fatalf("Allocate (should trigger grow): %v", err)
	}
	if a.Capacity() < 6 {
		t.Fatalf("Capacity() = %d, want >= 6 after growth", a.Capacity())
	}
	newCPU := a.CPUHeap().(*fakeHeap)
	if newCPU == firstCPU {
		t.Fatal("expected grow to replace the CPU heap")
	}
	if newCPU.slots[base] != 0xAAAA || newCPU.slots[base+1] != 0xBBBB {
		t.Fatalf("grow did not preserve live descriptors at their original indices")
	}
}

func TestCopyToShaderVisible(t *testing.T) {
	create, _ := newFakeHeapFactory()
	a, err := New(4, true, create, copyFake)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	base, err := a.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	a.CPUHeap().(*fakeHeap).slots[base] = 42
	a.CopyToShaderVisible(base, 1)
	if got := a.GPUHeap().(*fakeHeap).slots[base]; got != 42 {
		t.Fatalf("GPU heap slot = %d, want 42", got)
	}
}

func TestReleaseLowersSearchStart(t *testing.T) {
	create, _ := newFakeHeapFactory()
	a, err := New(4, false, create, copyFake)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Allocate(2)
	a.Release(0, 2)
	base, err := a.Allocate(1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if base != 0 {
		t.Fatalf("base = %d, want 0 (search should restart from the released gap)", base)
	}
}
