//go:build windows

package dx12

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/nullgfx/rhi/hal"
)

// Queue is the D3D12-class hal.Queue, standing in for an
// ID3D12CommandQueue. Command buffers are recycled per frame index
// (spec.md §4.5); fences are modeled as atomic counters since this
// condensed backend executes submitted work synchronously rather than
// against ID3D12Fence's asynchronous GPU timeline.
type Queue struct {
	queueType hal.QueueType

	mu          sync.Mutex
	buffers     []*CommandEncoder
	nextIdx     int
	frameFences [hal.GPUMaxInflightFrames]atomic.Uint64
	nextFence   atomic.Uint64
}

func newQueue(t hal.QueueType) *Queue { return &Queue{queueType: t} }

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

// Submit executes each buffer's recorded ops (via ExecuteCommandLists
// ordering) then presents any surfaces its encoders acquired, matching
// spec.md §4.5's ordering guarantee.
func (q *Queue) Submit(buffers []hal.CommandBuffer) error {
	for _, cb := range buffers {
		rb, ok := cb.(*recordedBuffer)
		if !ok {
			return hal.ErrInvalidOperation
		}
		if rb.queueType != q.queueType {
			return hal.ErrInvalidOperation
		}
		rb.execute()
		for _, p := range rb.pendingPresents {
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

func (q *Queue) WaitFrameFence(frameIndex uint32) error { return nil }

// ResolveQueryResults copies count raw 64-bit query results starting at
// first out of heap into dst at offset (spec.md §4.12), equivalent to a
// readback of an ID3D12QueryHeap's result buffer, with the same
// all-queues-visible guarantee the upload allocator gives
// createBuffer/createTexture's initial-data path.
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
