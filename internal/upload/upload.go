// Package upload implements the copy/upload allocator described in
// spec.md §4.4: a free-list of transfer contexts, each a persistently
// mapped staging buffer plus a pair of command-list slots, reused once the
// fence that guarded their last use has signalled. Both the Vulkan-class
// and D3D12-class backends embed one of these; the Null backend has no
// need for it since it executes copies synchronously against host memory.
package upload

import "sync"

// minContextSize is the allocator's floor: even a one-byte request gets a
// 64 KiB staging buffer, matching spec.md §4.4's "minimum 64 KiB".
const minContextSize = 64 * 1024

// Context is one reusable transfer unit: a staging buffer plus whatever a
// backend needs to record and submit a copy (native command list handles
// are opaque to this package and stored by the caller alongside it).
type Context struct {
	Size   uint64
	Data   []byte // persistently-mapped staging memory
	Native any    // backend-specific payload (command lists, native buffer handle, ...)

	fenceValue uint64
	signaled   func() uint64 // returns the guarding fence's current signalled value
}

// MappedPointer exposes the staging buffer for the caller to memcpy into
// before submitting.
func (c *Context) MappedPointer() []byte { return c.Data }

// Allocator is the device-owned pool from spec.md §4.4. Create is called
// to manufacture a fresh Context when no free one is large enough; it is
// supplied by the owning backend since only it knows how to build native
// command lists and a mapped staging buffer.
type Allocator struct {
	mu      sync.Mutex
	ctxs    []*Context
	Create  func(size uint64) (*Context, error)
}

// NewAllocator builds an empty pool. create must return a Context whose
// Data slice is exactly size bytes and persistently mapped.
func NewAllocator(create func(size uint64) (*Context, error)) *Allocator {
	return &Allocator{Create: create}
}

// nextPow2 rounds v up to the next power of two, matching the growth rule
// shared with the D3D12-class descriptor allocator (spec.md §4.3/§4.4 both
// specify "next power of two").
func nextPow2(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// Allocate implements spec.md §4.4 step 1/2: under lock, reuse any context
// whose fence has already signalled and whose capacity suffices; otherwise
// create a fresh one sized to the next power of two (floor 64 KiB).
func (a *Allocator) Allocate(size uint64) (*Context, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, c := range a.ctxs {
		if c.Size < size {
			continue
		}
		if c.signaled != nil && c.signaled() < c.fenceValue {
			continue
		}
		return c, nil
	}
	capSize := nextPow2(size)
	if capSize < minContextSize {
		capSize = minContextSize
	}
	c, err := a.Create(capSize)
	if err != nil {
		return nil, err
	}
	a.ctxs = append(a.ctxs, c)
	return c, nil
}

// MarkSubmitted records the fence value a just-submitted context must wait
// for before it may be reused, and the predicate that reports the fence's
// current value (spec.md §4.4's submit step: "the context returns to the
// free list" once its work has retired).
func MarkSubmitted(c *Context, fenceValue uint64, signaled func() uint64) {
	c.fenceValue = fenceValue
	c.signaled = signaled
}

// Len reports how many contexts the pool currently holds, for tests that
// assert reuse instead of unbounded growth.
func (a *Allocator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.ctxs)
}
