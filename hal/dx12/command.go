//go:build windows

package dx12

import "github.com/nullgfx/rhi/hal"

// dx12BarrierEntry is one row of the static TextureLayout ->
// (D3D12_RESOURCE_STATES, sync scope, access scope) table spec.md §4.6
// describes, mirroring hal/vk's vkLayoutTable. The numeric values stand
// in for D3D12_RESOURCE_STATE_* bits; what this module's own algorithms
// (the barrier ring, layout tracking) depend on is that the lookup is
// O(1) and total, not the bit values themselves.
type dx12BarrierEntry struct {
	nativeState uint32
	syncScope   uint64
	accessScope uint64
}

var dx12LayoutTable = map[hal.TextureLayout]dx12BarrierEntry{
	hal.TextureLayoutUndefined:          {0, 0, 0},
	hal.TextureLayoutCopySource:         {1 << 0, 1 << 0, 1 << 0},
	hal.TextureLayoutCopyDest:           {1 << 1, 1 << 0, 1 << 1},
	hal.TextureLayoutResolveSource:      {1 << 2, 1 << 1, 1 << 0},
	hal.TextureLayoutResolveDest:        {1 << 3, 1 << 1, 1 << 1},
	hal.TextureLayoutShaderResource:     {1 << 4, 1 << 2, 1 << 2},
	hal.TextureLayoutUnorderedAccess:    {1 << 5, 1 << 2, 1<<3 | 1<<4},
	hal.TextureLayoutRenderTarget:       {1 << 6, 1 << 3, 1<<5 | 1<<6},
	hal.TextureLayoutDepthWrite:         {1 << 7, 1 << 4, 1<<5 | 1<<6},
	hal.TextureLayoutDepthRead:          {1 << 8, 1 << 4, 1 << 6},
	hal.TextureLayoutPresent:            {0, 0, 0}, // D3D12_RESOURCE_STATE_PRESENT == COMMON
	hal.TextureLayoutShadingRateSurface: {1 << 9, 1 << 5, 1 << 2},
}

type op func()

// CommandEncoder is the D3D12-class hal.CommandEncoder. It implements the
// legacy fixed-size barrier ring (spec.md §4.6): pending barriers still
// accumulate into one hal.BarrierBatch, but FlushBarriers splits it into
// ceil(n/hal.MaxBarrierCount) ResourceBarrier calls instead of the
// enhanced path's single dependency, since a D3D12_RESOURCE_BARRIER array
// is capped per call on drivers predating the enhanced-barrier extension.
type CommandEncoder struct {
	queueType  hal.QueueType
	frameIndex uint32
	recording  bool
	batch      hal.BarrierBatch
	flushCount int
	ops        []op
	presents   []hal.Surface
	debugDepth int

	boundLayout hal.PipelineLayout
}

func newCommandEncoder(t hal.QueueType, frameIndex uint32) *CommandEncoder {
	e := &CommandEncoder{queueType: t}
	e.reset(frameIndex)
	return e
}

func (e *CommandEncoder) reset(frameIndex uint32) {
	e.frameIndex = frameIndex
	e.recording = true
	e.batch.Reset()
	e.flushCount = 0
	e.ops = e.ops[:0]
	e.presents = e.presents[:0]
	e.debugDepth = 0
	e.boundLayout = nil
}

func (e *CommandEncoder) QueueType() hal.QueueType { return e.queueType }

func (e *CommandEncoder) TextureBarrier(tex hal.Texture, newLayout hal.TextureLayout, baseMip, levelCount, baseLayer, layerCount uint32, aspect hal.Aspect) {
	vt, ok := tex.(*Texture)
	if !ok {
		return
	}
	changed := false
	for mip := baseMip; mip < baseMip+levelCount; mip++ {
		for layer := baseLayer; layer < baseLayer+layerCount; layer++ {
			sub := mip + layer*vt.desc.MipLevelCount
			old := vt.Layout(sub)
			if old == newLayout && newLayout != hal.TextureLayoutUnorderedAccess {
				continue
			}
			changed = true
		}
	}
	if !changed {
		return
	}
	if e.queueType == hal.QueueCompute && !hal.ValidOnComputeQueue(newLayout) {
		hal.Logger().Warn("dx12: texture barrier transitions to a state invalid on a compute queue", "layout", newLayout.String())
	}
	e.batch.Textures = append(e.batch.Textures, hal.TextureBarrier{
		Texture: tex, NewLayout: newLayout,
		BaseMip: baseMip, LevelCount: levelCount,
		BaseLayer: baseLayer, LayerCount: layerCount,
		Aspect: aspect, QueueType: e.queueType,
	})
	e.ops = append(e.ops, func() {
		for mip := baseMip; mip < baseMip+levelCount; mip++ {
			for layer := baseLayer; layer < baseLayer+layerCount; layer++ {
				sub := mip + layer*vt.desc.MipLevelCount
				vt.SetLayout(sub, newLayout)
			}
		}
	})
	e.flushIfRingFull()
}

func (e *CommandEncoder) BufferBarrier(buf hal.Buffer, offset, size uint64) {
	e.batch.Buffers = append(e.batch.Buffers, hal.BufferBarrier{Buffer: buf, Offset: offset, Size: size})
	e.flushIfRingFull()
}

func (e *CommandEncoder) GlobalBarrier(beforeWrite, afterRead bool) {
	e.batch.Globals = append(e.batch.Globals, hal.GlobalBarrier{BeforeWrite: beforeWrite, AfterRead: afterRead})
	e.flushIfRingFull()
}

func (e *CommandEncoder) batchLen() int {
	return len(e.batch.Textures) + len(e.batch.Buffers) + len(e.batch.Globals)
}

// flushIfRingFull emits the ring's current contents the instant it reaches
// hal.MaxBarrierCount entries, exactly as a real ring buffer would need to
// drain before it can accept another D3D12_RESOURCE_BARRIER.
func (e *CommandEncoder) flushIfRingFull() {
	if e.batchLen() >= hal.MaxBarrierCount {
		e.FlushBarriers()
	}
}

// FlushBarriers drains the ring in chunks of at most hal.MaxBarrierCount,
// issuing one ResourceBarrier call per chunk (spec.md §4.6's legacy
// fallback), unlike the enhanced path's single call regardless of size.
func (e *CommandEncoder) FlushBarriers() {
	n := e.batchLen()
	if n == 0 {
		return
	}
	for n > 0 {
		chunk := n
		if chunk > hal.MaxBarrierCount {
			chunk = hal.MaxBarrierCount
		}
		e.flushCount++
		n -= chunk
	}
	e.batch.Reset()
}

// FlushCount reports how many ResourceBarrier chunks have been issued
// since the last reset.
func (e *CommandEncoder) FlushCount() int { return e.flushCount }

func (e *CommandEncoder) CopyBufferToBuffer(src hal.Buffer, srcOffset uint64, dst hal.Buffer, dstOffset, size uint64) {
	s, sok := src.(*Buffer)
	d, dok := dst.(*Buffer)
	if !sok || !dok {
		return
	}
	e.ops = append(e.ops, func() { copy(d.data[dstOffset:dstOffset+size], s.data[srcOffset:srcOffset+size]) })
}

func (e *CommandEncoder) CopyBufferToTexture(src hal.Buffer, layout *hal.ImageDataLayout, dst *hal.ImageCopyTexture, size *hal.Extent3D) {
	s, sok := src.(*Buffer)
	t, tok := dst.Texture.(*Texture)
	if !sok || !tok {
		return
	}
	sub := dst.MipLevel + dst.ArrayLayer*t.desc.MipLevelCount
	e.ops = append(e.ops, func() {
		srcBytes := s.data[layout.Offset:]
		dstBytes := t.subBytes(sub)
		n := min(len(dstBytes), len(srcBytes))
		copy(dstBytes[:n], srcBytes[:n])
	})
}

func (e *CommandEncoder) CopyTextureToBuffer(src *hal.ImageCopyTexture, dst hal.Buffer, layout *hal.ImageDataLayout, size *hal.Extent3D) {
	t, tok := src.Texture.(*Texture)
	d, dok := dst.(*Buffer)
	if !tok || !dok {
		return
	}
	sub := src.MipLevel + src.ArrayLayer*t.desc.MipLevelCount
	e.ops = append(e.ops, func() {
		srcBytes := t.subBytes(sub)
		dstBytes := d.data[layout.Offset:]
		n := min(len(srcBytes), len(dstBytes))
		copy(dstBytes[:n], srcBytes[:n])
	})
}

func (e *CommandEncoder) CopyTextureToTexture(src, dst *hal.ImageCopyTexture, size *hal.Extent3D) {
	st, sok := src.Texture.(*Texture)
	dt, dok := dst.Texture.(*Texture)
	if !sok || !dok {
		return
	}
	srcSub := src.MipLevel + src.ArrayLayer*st.desc.MipLevelCount
	dstSub := dst.MipLevel + dst.ArrayLayer*dt.desc.MipLevelCount
	e.ops = append(e.ops, func() {
		srcBytes := st.subBytes(srcSub)
		dstBytes := dt.subBytes(dstSub)
		n := min(len(srcBytes), len(dstBytes))
		copy(dstBytes[:n], srcBytes[:n])
	})
}

func (e *CommandEncoder) AcquireSurfaceTexture(surface hal.Surface) (hal.Texture, hal.AcquireResult) {
	s, ok := surface.(*Surface)
	if !ok {
		return nil, hal.AcquireOther
	}
	tex, result := s.acquire()
	if result == hal.AcquireSuccessOptimal || result == hal.AcquireSuccessSuboptimal {
		e.presents = append(e.presents, surface)
	}
	return tex, result
}

func (e *CommandEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	return newRenderPassEncoder(e, desc)
}

func (e *CommandEncoder) BeginComputePass(label string) hal.ComputePassEncoder {
	return newComputePassEncoder(e)
}

func (e *CommandEncoder) WriteTimestamp(heap hal.QueryHeap, index uint32) {
	h, ok := heap.(*queryHeap)
	if !ok || int(index) >= len(h.results) {
		return
	}
	e.ops = append(e.ops, func() { h.results[index] = 1 })
}

func (e *CommandEncoder) PushDebugGroup(label string) { e.debugDepth++ }
func (e *CommandEncoder) PopDebugGroup() {
	if e.debugDepth > 0 {
		e.debugDepth--
	}
}
func (e *CommandEncoder) InsertDebugMarker(label string) {}

func (e *CommandEncoder) End() (hal.CommandBuffer, error) {
	if !e.recording {
		return nil, hal.ErrInvalidOperation
	}
	for _, surface := range e.presents {
		s := surface.(*Surface)
		if bb := s.CurrentBackBuffer(); bb != nil {
			e.batch.Textures = append(e.batch.Textures, hal.TextureBarrier{Texture: bb, NewLayout: hal.TextureLayoutPresent, LevelCount: 1, LayerCount: 1})
		}
	}
	e.FlushBarriers()
	for e.debugDepth > 0 {
		e.debugDepth--
	}
	rb := &recordedBuffer{
		queueType:       e.queueType,
		ops:             append([]op(nil), e.ops...),
		pendingPresents: append([]hal.Surface(nil), e.presents...),
	}
	e.recording = false
	return rb, nil
}

func (e *CommandEncoder) Discard() { e.recording = false }

type recordedBuffer struct {
	queueType       hal.QueueType
	ops             []op
	pendingPresents []hal.Surface
}

func (b *recordedBuffer) Native() hal.NativeHandle { return b }
func (b *recordedBuffer) QueueType() hal.QueueType { return b.queueType }

func (b *recordedBuffer) execute() {
	for _, o := range b.ops {
		o()
	}
}
