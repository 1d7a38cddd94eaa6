package rhi

import "github.com/nullgfx/rhi/hal"

// Queue wraps one hal.Queue, exposing command buffer acquisition and
// submission through the wrapper types instead of raw hal handles.
type Queue struct {
	device    *Device
	hal       hal.Queue
	queueType hal.QueueType
}

// Type returns the queue's type (graphics, compute, or copy).
func (q *Queue) Type() hal.QueueType { return q.hal.Type() }

// AcquireCommandBuffer returns the next recycled CommandEncoder for the
// device's current frame index (spec.md §4.5).
func (q *Queue) AcquireCommandBuffer() (*CommandEncoder, error) {
	var enc hal.CommandEncoder
	err := q.device.withDevice(func(hal.Device) error {
		var err error
		enc, err = q.hal.AcquireCommandBuffer(q.device.FrameIndex())
		return err
	})
	if err != nil {
		hal.Logger().Error("rhi: AcquireCommandBuffer failed", "error", err)
		return nil, err
	}
	return &CommandEncoder{device: q.device, queue: q, hal: enc}, nil
}

// Submit ends and submits buffers in array order within one native
// submission call (spec.md §4.5). Every buffer must have been acquired
// from this queue; a mismatch is ErrInvalidOperation and nothing is
// submitted.
func (q *Queue) Submit(buffers ...*CommandBuffer) error {
	queueType := q.Type()
	halBufs := make([]hal.CommandBuffer, len(buffers))
	for i, b := range buffers {
		if b == nil || b.hal == nil {
			return q.device.invalid("Queue.Submit", "buffers", "nil or already-submitted command buffer")
		}
		if b.queueType != queueType {
			return q.device.invalid("Queue.Submit", "buffers", "command buffer acquired from a different queue type")
		}
		halBufs[i] = b.hal
	}
	err := q.device.withDevice(func(hal.Device) error {
		return q.hal.Submit(halBufs)
	})
	if err != nil {
		hal.Logger().Error("rhi: Submit failed", "error", err)
		q.device.poison()
		return err
	}
	for _, b := range buffers {
		b.hal = nil
	}
	return nil
}

// GetTimestampPeriod returns the number of nanoseconds per timestamp tick
// for this queue.
func (q *Queue) GetTimestampPeriod() float32 { return q.hal.GetTimestampPeriod() }

// ResolveQueryResults copies count raw query results starting at first out
// of heap into dst at offset, for CPU or GPU readback (spec.md §4.12). Like
// the upload allocator, the copy is guaranteed visible to every queue, not
// only the one ResolveQueryResults was issued on.
func (q *Queue) ResolveQueryResults(heap *QueryHeap, first, count uint32, dst *Buffer, offset uint64) error {
	if heap == nil || dst == nil {
		return q.device.invalid("Queue.ResolveQueryResults", "heap/dst", "nil query heap or destination buffer")
	}
	err := q.device.withDevice(func(hal.Device) error {
		return q.hal.ResolveQueryResults(heap.halHeap(), first, count, dst.halBuffer(), offset)
	})
	if err != nil {
		hal.Logger().Error("rhi: ResolveQueryResults failed", "error", err)
		return err
	}
	return nil
}
