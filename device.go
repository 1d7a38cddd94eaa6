package rhi

import (
	"sync"
	"sync/atomic"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/internal/errs"
	"github.com/nullgfx/rhi/internal/snatch"
)

// deferredEntry is one released-but-not-yet-freed native resource, keyed
// by the frameCount it was released at (spec.md §4.2).
type deferredEntry struct {
	releaseFrame uint64
	free         func()
}

// Device is a logical GPU device: the resource factory and the owner of
// per-type Queues, the deferred-destruction deque, and the error-scope
// stack (spec.md §3).
//
// Safe for concurrent use: resource creation holds the snatch lock's read
// side, Destroy takes its write side, and the deferred-destruction deque
// and frame counters are guarded by their own mutex (spec.md §5's
// device -> queue -> copy-allocator -> descriptor-allocator lock
// ordering; Device itself sits above all of them).
type Device struct {
	adapter *Adapter

	snatchLock *snatch.SnatchLock
	halDevice  *snatch.Snatchable[hal.Device]

	maxFramesInFlight uint32

	mu         sync.Mutex
	frameCount uint64
	frameIndex uint32

	queues map[hal.QueueType]*Queue

	deferredMu sync.Mutex
	deferred   []deferredEntry

	errScopes *errs.ErrorScopeManager

	poisoned  atomic.Bool
	destroyed atomic.Bool
}

// Adapter returns the adapter this device was opened on.
func (d *Device) Adapter() *Adapter { return d.adapter }

// MaxFramesInFlight returns the device's frame-pipelining depth.
func (d *Device) MaxFramesInFlight() uint32 { return d.maxFramesInFlight }

// FrameCount returns the monotonic frame counter (spec.md §3).
func (d *Device) FrameCount() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frameCount
}

// FrameIndex returns frameCount mod maxFramesInFlight (spec.md §3).
func (d *Device) FrameIndex() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frameIndex
}

// Poisoned reports whether an unrecoverable backend error has marked the
// device lost (spec.md §7).
func (d *Device) Poisoned() bool { return d.poisoned.Load() }

func (d *Device) poison() {
	if d.poisoned.CompareAndSwap(false, true) {
		hal.Logger().Error("rhi: device poisoned", "reason", "unrecoverable backend error")
	}
}

// Queue returns the Queue for t, or nil if the adapter does not expose
// that queue type.
func (d *Device) Queue(t hal.QueueType) *Queue { return d.queues[t] }

// raw returns the underlying hal.Device while guard is held, or nil if the
// device has already been snatched for destruction.
func (d *Device) raw(guard *snatch.SnatchGuard) hal.Device {
	p := d.halDevice.Get(guard)
	if p == nil {
		return nil
	}
	return *p
}

// withDevice runs fn with a read guard over the live hal.Device, returning
// ErrDeviceDestroyed / ErrDeviceLost instead of calling fn if the device is
// gone or poisoned.
func (d *Device) withDevice(fn func(hal.Device) error) error {
	if d.poisoned.Load() {
		return ErrDeviceLost
	}
	guard := d.snatchLock.Read()
	defer guard.Release()
	hd := d.raw(guard)
	if hd == nil {
		return ErrDeviceDestroyed
	}
	return fn(hd)
}

// scheduleDestroy appends free to the deferred-destruction deque, stamped
// with the current frameCount (spec.md §4.2's "(nativeHandle, allocation?,
// frameCount)" entry).
func (d *Device) scheduleDestroy(free func()) {
	d.mu.Lock()
	frame := d.frameCount
	d.mu.Unlock()

	d.deferredMu.Lock()
	d.deferred = append(d.deferred, deferredEntry{releaseFrame: frame, free: free})
	d.deferredMu.Unlock()
}

// sweep frees every deferred entry whose frameCount - releaseFrame >=
// maxFramesInFlight, or every entry when force is true (device shutdown or
// WaitIdle), per spec.md §4.2.
func (d *Device) sweep(force bool) {
	d.mu.Lock()
	frameCount := d.frameCount
	d.mu.Unlock()

	for {
		d.deferredMu.Lock()
		var due []deferredEntry
		remaining := d.deferred[:0]
		for _, e := range d.deferred {
			if force || frameCount-e.releaseFrame >= uint64(d.maxFramesInFlight) {
				due = append(due, e)
			} else {
				remaining = append(remaining, e)
			}
		}
		d.deferred = remaining
		d.deferredMu.Unlock()
		if len(due) == 0 {
			return
		}
		// Free outside the lock: a free may release a dependent resource,
		// which schedules a new entry.
		for _, e := range due {
			e.free()
		}
	}
}

// PendingDestructionCount reports how many entries are still queued for
// destruction, for tests asserting spec.md §8 property 6 ("After
// device.waitIdle, the deferred-destruction queue is empty").
func (d *Device) PendingDestructionCount() int {
	d.deferredMu.Lock()
	defer d.deferredMu.Unlock()
	return len(d.deferred)
}

// CommitFrame rotates the frame index and retires expired deferred
// resources, per spec.md §4.11:
//  1. Signal each queue's per-frame fence.
//  2. Reset each queue's command-buffer counter.
//  3. Increment frameCount; update frameIndex.
//  4. If frameCount >= maxFramesInFlight, wait the now-current frame's
//     fence on every queue before returning.
//  5. Reset those fences. SignalFrameFence already overwrites a queue's
//     per-frame fence value on its next call rather than requiring an
//     explicit reset in between, so hal.Queue has no separate reset entry
//     point for this step; a backend whose native fence type needs an
//     explicit reset (e.g. a Win32 event-based fence) does it inside its
//     own WaitFrameFence before returning.
//  6. Run the deferred-destruction sweep.
//  7. Return the new frameCount.
func (d *Device) CommitFrame() (uint64, error) {
	if d.poisoned.Load() {
		return d.FrameCount(), ErrDeviceLost
	}

	d.mu.Lock()
	for _, q := range d.queues {
		q.hal.SignalFrameFence(d.frameIndex)
	}
	for _, q := range d.queues {
		q.hal.ResetCommandBufferCounter()
	}
	d.frameCount++
	d.frameIndex = uint32(d.frameCount % uint64(d.maxFramesInFlight))
	frameCount := d.frameCount
	frameIndex := d.frameIndex
	mustWait := frameCount >= uint64(d.maxFramesInFlight)
	d.mu.Unlock()

	if mustWait {
		for _, q := range d.queues {
			if err := q.hal.WaitFrameFence(frameIndex); err != nil {
				d.poison()
				return frameCount, ErrDeviceLost
			}
		}
	}

	d.sweep(false)
	return frameCount, nil
}

// WaitIdle blocks until every queue has drained, then forces the
// deferred-destruction sweep regardless of frame age (spec.md §4.11).
func (d *Device) WaitIdle() error {
	err := d.withDevice(func(hd hal.Device) error {
		if err := hd.WaitIdle(); err != nil {
			d.poison()
			return ErrDeviceLost
		}
		return nil
	})
	if err != nil {
		return err
	}
	d.sweep(true)
	return nil
}

// Destroy waits the device idle, frees every outstanding deferred
// resource, and destroys the underlying hal.Device. Safe to call more
// than once; only the first call has effect.
func (d *Device) Destroy() {
	if d.destroyed.Swap(true) {
		return
	}
	_ = d.WaitIdle()

	guard := d.snatchLock.Write()
	hdp := d.halDevice.Snatch(guard)
	guard.Release()

	d.sweep(true)

	if hdp != nil {
		(*hdp).Destroy()
	}
}

// PushErrorScope pushes a new error scope onto the device's scope stack
// (spec.md §7).
func (d *Device) PushErrorScope(filter ErrorFilter) { d.errScopes.Push(filter) }

// PopErrorScope pops the most recently pushed error scope and returns the
// error it captured, or nil.
func (d *Device) PopErrorScope() *GPUError {
	e, err := d.errScopes.Pop()
	if err != nil {
		hal.Logger().Warn("rhi: PopErrorScope", "error", err)
		return nil
	}
	return e
}

func (d *Device) reportError(err error) {
	if err != nil {
		d.errScopes.Report(err)
	}
}
