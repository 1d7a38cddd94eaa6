package null

import (
	"github.com/nullgfx/rhi/hal"
)

type op func()

// CommandEncoder is the null backend's hal.CommandEncoder. Recorded
// operations are buffered as closures and executed in order when the
// resulting CommandBuffer is submitted, so barrier/copy/draw ordering
// matches what a real backend would observe even though nothing here talks
// to a GPU.
type CommandEncoder struct {
	queueType          hal.QueueType
	frameIndex         uint32
	recording          bool
	batch              hal.BarrierBatch
	barrierSubmissions int
	ops                []op
	presents           []hal.Surface
	debugDepth         int
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
	e.barrierSubmissions = 0
	e.ops = e.ops[:0]
	e.presents = e.presents[:0]
	e.debugDepth = 0
}

func (e *CommandEncoder) QueueType() hal.QueueType { return e.queueType }

func (e *CommandEncoder) TextureBarrier(tex hal.Texture, newLayout hal.TextureLayout, baseMip, levelCount, baseLayer, layerCount uint32, aspect hal.Aspect) {
	nt, ok := tex.(*Texture)
	if !ok {
		return
	}
	changed := false
	for mip := baseMip; mip < baseMip+levelCount; mip++ {
		for layer := baseLayer; layer < baseLayer+layerCount; layer++ {
			sub := mip + layer*nt.desc.MipLevelCount
			old := nt.Layout(sub)
			if old == newLayout && newLayout != hal.TextureLayoutUnorderedAccess {
				continue
			}
			changed = true
		}
	}
	if !changed {
		return
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
				sub := mip + layer*nt.desc.MipLevelCount
				nt.SetLayout(sub, newLayout)
			}
		}
	})
	if len(e.batch.Textures) >= hal.MaxBarrierCount {
		e.FlushBarriers()
	}
}

func (e *CommandEncoder) BufferBarrier(buf hal.Buffer, offset, size uint64) {
	e.batch.Buffers = append(e.batch.Buffers, hal.BufferBarrier{Buffer: buf, Offset: offset, Size: size})
}

func (e *CommandEncoder) GlobalBarrier(beforeWrite, afterRead bool) {
	e.batch.Globals = append(e.batch.Globals, hal.GlobalBarrier{BeforeWrite: beforeWrite, AfterRead: afterRead})
}

// FlushBarriers emits the accumulated batch as one native submission and
// clears it. Tracking how many times this has been called lets tests
// assert S6's coalescing property.
func (e *CommandEncoder) FlushBarriers() {
	if e.batch.Empty() {
		return
	}
	e.barrierSubmissions++
	e.batch.Reset()
}

// BarrierSubmissions reports how many FlushBarriers calls have actually
// emitted a non-empty batch since the last reset, for S6-style assertions.
func (e *CommandEncoder) BarrierSubmissions() int { return e.barrierSubmissions }

func (e *CommandEncoder) CopyBufferToBuffer(src hal.Buffer, srcOffset uint64, dst hal.Buffer, dstOffset, size uint64) {
	s, sok := src.(*Buffer)
	d, dok := dst.(*Buffer)
	if !sok || !dok {
		return
	}
	e.ops = append(e.ops, func() {
		copy(d.data[dstOffset:dstOffset+size], s.data[srcOffset:srcOffset+size])
	})
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
		n := len(dstBytes)
		if len(srcBytes) < n {
			n = len(srcBytes)
		}
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
		n := len(srcBytes)
		if len(dstBytes) < n {
			n = len(dstBytes)
		}
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
		n := len(srcBytes)
		if len(dstBytes) < n {
			n = len(dstBytes)
		}
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
			e.batch.Textures = append(e.batch.Textures, hal.TextureBarrier{
				Texture: bb, NewLayout: hal.TextureLayoutPresent, LevelCount: 1, LayerCount: 1,
			})
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

// recordedBuffer is the immutable hal.CommandBuffer produced by End.
type recordedBuffer struct {
	queueType       hal.QueueType
	ops             []op
	pendingPresents []hal.Surface
}

func (b *recordedBuffer) Native() hal.NativeHandle  { return b }
func (b *recordedBuffer) QueueType() hal.QueueType  { return b.queueType }

func (b *recordedBuffer) execute() {
	for _, o := range b.ops {
		o()
	}
}
