package null

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/nullgfx/rhi/hal"
)

// Queue is the null backend's hal.Queue: command buffers are recycled per
// frame index, fences are plain atomic counters signaled synchronously
// (there is no asynchronous GPU timeline to wait on).
type Queue struct {
	queueType hal.QueueType

	mu          sync.Mutex
	buffers     []*CommandEncoder // recycled per-frame encoders
	nextIdx     int
	frameFences [hal.GPUMaxInflightFrames]atomic.Uint64
	nextFence   atomic.Uint64
}

func newQueue(t hal.QueueType) *Queue {
	return &Queue{queueType: t}
}

func (q *Queue) Type() hal.QueueType { return q.queueType }

func (q *Queue) AcquireCommandBuffer(frameIndex uint32) (hal.CommandEncoder, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.nextIdx < len(q.buffers) {
		enc := q.buffers[q.nextIdx]
		q.nextIdx++
		enc.reset(frameIndex)
		return enc, nil
	}
	enc := newCommandEncoder(q.queueType, frameIndex)
	q.buffers = append(q.buffers, enc)
	q.nextIdx++
	return enc, nil
}

func (q *Queue) ResetCommandBufferCounter() {
	q.mu.Lock()
	q.nextIdx = 0
	q.mu.Unlock()
}

// Submit ends nothing itself (encoders are already ended by the caller via
// CommandEncoder.End before being handed to Submit, per hal.CommandBuffer
// being the post-End artifact); it performs the recorded copies/draws
// immediately (the null backend executes synchronously) and presents any
// surfaces the contributing encoders acquired, in array order.
func (q *Queue) Submit(buffers []hal.CommandBuffer) error {
	for _, cb := range buffers {
		nb, ok := cb.(*recordedBuffer)
		if !ok {
			return hal.ErrInvalidOperation
		}
		if nb.queueType != q.queueType {
			return hal.ErrInvalidOperation
		}
		nb.execute()
		for _, p := range nb.pendingPresents {
			if _, err := p.Present(q); err != nil {
				return err
			}
		}
	}
	return nil
}

func (q *Queue) SignalFrameFence(frameIndex uint32) uint64 {
	v := q.nextFence.Add(1)
	q.frameFences[frameIndex%hal.GPUMaxInflightFrames].Store(v)
	return v
}

func (q *Queue) WaitFrameFence(frameIndex uint32) error {
	// Synchronous backend: by the time Submit returns, all work has
	// already executed, so the fence has already reached its value.
	return nil
}

// ResolveQueryResults copies count raw 64-bit query results starting at
// first out of heap into dst at offset (spec.md §4.12). The null backend
// holds query results in host memory already, so this is a direct copy
// rather than a cross-queue wait; real backends still owe the same
// all-queues-visible guarantee the upload allocator gives createBuffer.
func (q *Queue) ResolveQueryResults(heap hal.QueryHeap, first, count uint32, dst hal.Buffer, offset uint64) error {
	h, ok := heap.(*queryHeap)
	if !ok {
		return hal.ErrInvalidOperation
	}
	b, ok := dst.(*Buffer)
	if !ok {
		return hal.ErrInvalidOperation
	}
	if uint64(first)+uint64(count) > uint64(len(h.results)) {
		return hal.ErrInvalidOperation
	}
	out := b.raw()
	if offset+uint64(count)*8 > uint64(len(out)) {
		return hal.ErrInvalidOperation
	}
	for i := uint32(0); i < count; i++ {
		binary.LittleEndian.PutUint64(out[offset+uint64(i)*8:], h.results[first+i])
	}
	return nil
}

func (q *Queue) GetTimestampPeriod() float32 { return 1.0 }
