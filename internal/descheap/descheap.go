// Package descheap implements the D3D12-class descriptor allocator from
// spec.md §4.3: one allocator per descriptor type (RTV/DSV/shader-resource/
// sampler), each owning a CPU-visible heap and, for shader-visible types, a
// paired GPU-visible heap. Allocation is a linear free-list scan with
// geometric (power-of-two) growth and descriptor re-copy on grow.
//
// Only hal/dx12 uses this: spec.md §4.3 scopes it to "the D3D12-class
// backend only" — Vulkan's descriptor-set model has no equivalent heap to
// manage.
package descheap

import "sync"

// CopyDescriptor copies one native descriptor from a source heap slot to a
// destination heap slot. Supplied by the owning backend: only it knows the
// native descriptor representation and size.
type CopyDescriptor func(dstHeap any, dstIndex uint32, srcHeap any, srcIndex uint32)

// CreateHeap allocates a native heap (CPU-visible, and for shader-visible
// types a paired GPU-visible heap) of the given descriptor capacity.
// Returns the CPU heap and, if shaderVisible, the GPU heap; the GPU heap is
// nil otherwise.
type CreateHeap func(capacity uint32, shaderVisible bool) (cpuHeap, gpuHeap any, err error)

// Allocator is one descriptor type's CPU/GPU heap pair plus free-list
// bookkeeping (spec.md §4.3).
type Allocator struct {
	mu            sync.Mutex
	shaderVisible bool
	create        CreateHeap
	copyFn        CopyDescriptor

	cpuHeap     any
	gpuHeap     any
	capacity    uint32
	free        []bool // true = free
	searchStart uint32
	allocated   uint32
}

// New builds an allocator with an initial capacity (rounded up to the next
// power of two, minimum 1).
func New(initialCapacity uint32, shaderVisible bool, create CreateHeap, copyFn CopyDescriptor) (*Allocator, error) {
	cap := nextPow2(initialCapacity)
	if cap == 0 {
		cap = 1
	}
	cpu, gpu, err := create(cap, shaderVisible)
	if err != nil {
		return nil, err
	}
	free := make([]bool, cap, cap*2)
	for i := range free {
		free[i] = true
	}
	return &Allocator{
		shaderVisible: shaderVisible,
		create:        create,
		copyFn:        copyFn,
		cpuHeap:       cpu,
		gpuHeap:       gpu,
		capacity:      cap,
		free:          free,
		searchStart:   0,
	}, nil
}

func nextPow2(v uint32) uint32 {
	if v == 0 {
		return 0
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}

// runFreeFrom returns the first base at or after start whose count
// consecutive slots are all free, and false if there is none.
func (a *Allocator) runFreeFrom(start uint32, count uint32) (uint32, bool) {
	n := uint32(len(a.free))
	if count == 0 {
		return start, true
	}
	for i := start; i+count <= n; i++ {
		ok := true
		for j := uint32(0); j < count; j++ {
			if !a.free[i+j] {
				ok = false
				i += j // skip past the occupied slot on the next outer increment
				break
			}
		}
		if ok {
			return i, true
		}
	}
	return 0, false
}

// Allocate reserves count contiguous descriptor slots, growing the heap
// (doubling capacity to the next power of two covering current+count,
// re-copying existing descriptors) if no run is free (spec.md §4.3).
func (a *Allocator) Allocate(count uint32) (uint32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if base, ok := a.runFreeFrom(a.searchStart, count); ok {
		a.markUsed(base, count)
		return base, nil
	}
	// Fall back to scanning from the start in case searchStart skipped a
	// usable earlier gap left by an intervening release.
	if base, ok := a.runFreeFrom(0, count); ok {
		a.markUsed(base, count)
		return base, nil
	}
	if err := a.grow(a.capacity + count); err != nil {
		return 0, err
	}
	base, ok := a.runFreeFrom(a.searchStart, count)
	if !ok {
		base, ok = a.runFreeFrom(0, count)
	}
	if !ok {
		return 0, errOutOfMemory
	}
	a.markUsed(base, count)
	return base, nil
}

func (a *Allocator) markUsed(base, count uint32) {
	for i := uint32(0); i < count; i++ {
		a.free[base+i] = false
	}
	a.allocated += count
	a.searchStart = base + count
}

// grow doubles capacity until it covers min, reallocates both heaps, and
// copies descriptors from the old heap(s) at their original indices
// (spec.md §4.3: "reallocates both heaps, copies descriptors from the old
// CPU (and shader-visible) heap, and retries").
func (a *Allocator) grow(min uint32) error {
	newCap := a.capacity
	if newCap == 0 {
		newCap = 1
	}
	for newCap < min {
		newCap *= 2
	}
	newCPU, newGPU, err := a.create(newCap, a.shaderVisible)
	if err != nil {
		return errOutOfMemory
	}
	for i := uint32(0); i < a.capacity; i++ {
		if a.free[i] {
			continue
		}
		a.copyFn(newCPU, i, a.cpuHeap, i)
		if a.shaderVisible {
			a.copyFn(newGPU, i, a.gpuHeap, i)
		}
	}
	newFree := make([]bool, newCap)
	copy(newFree, a.free)
	for i := a.capacity; i < newCap; i++ {
		newFree[i] = true
	}
	a.cpuHeap, a.gpuHeap, a.capacity, a.free = newCPU, newGPU, newCap, newFree
	return nil
}

// Release clears count slots starting at base and lowers searchStart if
// the released run precedes it, so the next Allocate prefers reusing the
// gap (spec.md §4.3).
func (a *Allocator) Release(base, count uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := uint32(0); i < count; i++ {
		if base+i < uint32(len(a.free)) {
			a.free[base+i] = true
		}
	}
	a.allocated -= count
	if base < a.searchStart {
		a.searchStart = base
	}
}

// CopyToShaderVisible copies count descriptors from the CPU heap to the
// paired GPU-visible heap at the same index (spec.md §4.3).
func (a *Allocator) CopyToShaderVisible(index, count uint32) {
	if !a.shaderVisible {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := uint32(0); i < count; i++ {
		a.copyFn(a.gpuHeap, index+i, a.cpuHeap, index+i)
	}
}

// CPUHeap and GPUHeap expose the native heap handles for binding calls.
func (a *Allocator) CPUHeap() any { a.mu.Lock(); defer a.mu.Unlock(); return a.cpuHeap }
func (a *Allocator) GPUHeap() any { a.mu.Lock(); defer a.mu.Unlock(); return a.gpuHeap }

// Capacity and Allocated report current heap size and live-slot count.
func (a *Allocator) Capacity() uint32 { a.mu.Lock(); defer a.mu.Unlock(); return a.capacity }
func (a *Allocator) Allocated() uint32 { a.mu.Lock(); defer a.mu.Unlock(); return a.allocated }

type outOfMemoryError struct{}

func (outOfMemoryError) Error() string { return "descheap: out of memory" }

var errOutOfMemory error = outOfMemoryError{}

// ErrOutOfMemory is returned by Allocate when reallocation fails (spec.md
// §4.3: "Fails with OutOfMemory only if reallocation fails").
var ErrOutOfMemory = errOutOfMemory
