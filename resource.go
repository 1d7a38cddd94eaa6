package rhi

import "sync/atomic"

// baseResource implements the refcounted-object protocol shared by every
// GPU handle type (spec.md §3): an atomic count starting at 1, plus a
// mutable diagnostic label. Release of the last reference is the caller's
// responsibility to detect (via release()'s return value) and forward to
// the owning Device's deferred-destruction deque (spec.md §4.2) — this
// type only tracks the count, since only the concrete wrapper knows how to
// free its native handle.
type baseResource struct {
	refCount atomic.Int64
	label    atomic.Value // string
}

func newBaseResource(label string) baseResource {
	var b baseResource
	b.refCount.Store(1)
	b.label.Store(label)
	return b
}

// Label returns the resource's diagnostic label.
func (b *baseResource) Label() string {
	if v, ok := b.label.Load().(string); ok {
		return v
	}
	return ""
}

// SetLabel updates the resource's diagnostic label. Purely diagnostic;
// does not affect behavior (spec.md §3).
func (b *baseResource) SetLabel(label string) { b.label.Store(label) }

// addRef increments the count and returns the new value.
func (b *baseResource) addRef() int64 { return b.refCount.Add(1) }

// release decrements the count and returns the new value. A return of 0
// means the caller must now schedule native destruction; any other call
// after that point is a use-after-release bug in the application, not
// something this type guards against (spec.md has no "double release"
// detection requirement, and hal resources are not reentrant-safe to begin
// with).
func (b *baseResource) release() int64 { return b.refCount.Add(-1) }

// RefCount reports the resource's current reference count, for
// diagnostics and tests.
func (b *baseResource) RefCount() int64 { return b.refCount.Load() }
