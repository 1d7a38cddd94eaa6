package rhi

import "github.com/nullgfx/rhi/hal"

// CommandEncoder records commands into a single CommandBuffer. Not safe for
// concurrent use by multiple goroutines (spec.md §5).
type CommandEncoder struct {
	device *Device
	queue  *Queue
	hal    hal.CommandEncoder
}

// QueueType returns the queue type this encoder was acquired from.
func (e *CommandEncoder) QueueType() hal.QueueType { return e.hal.QueueType() }

// TextureBarrier records a transition of one texture subresource range
// (spec.md §4.6).
func (e *CommandEncoder) TextureBarrier(tex *Texture, newLayout hal.TextureLayout, baseMip, levelCount, baseLayer, layerCount uint32, aspect hal.Aspect) {
	e.hal.TextureBarrier(tex.halTexture(), newLayout, baseMip, levelCount, baseLayer, layerCount, aspect)
}

// BufferBarrier records a buffer read/write hazard transition.
func (e *CommandEncoder) BufferBarrier(buf *Buffer, offset, size uint64) {
	e.hal.BufferBarrier(buf.halBuffer(), offset, size)
}

// GlobalBarrier records a full-pipeline memory barrier.
func (e *CommandEncoder) GlobalBarrier(beforeWrite, afterRead bool) {
	e.hal.GlobalBarrier(beforeWrite, afterRead)
}

// FlushBarriers emits all pending barriers.
func (e *CommandEncoder) FlushBarriers() { e.hal.FlushBarriers() }

// CopyBufferToBuffer records a buffer-to-buffer copy.
func (e *CommandEncoder) CopyBufferToBuffer(src *Buffer, srcOffset uint64, dst *Buffer, dstOffset, size uint64) {
	e.hal.CopyBufferToBuffer(src.halBuffer(), srcOffset, dst.halBuffer(), dstOffset, size)
}

// ImageCopyTexture addresses one texture subresource as a copy endpoint.
type ImageCopyTexture struct {
	Texture    *Texture
	MipLevel   uint32
	ArrayLayer uint32
	Aspect     hal.Aspect
	X, Y, Z    uint32
}

func (c *ImageCopyTexture) toHAL() *hal.ImageCopyTexture {
	return &hal.ImageCopyTexture{
		Texture:    c.Texture.halTexture(),
		MipLevel:   c.MipLevel,
		ArrayLayer: c.ArrayLayer,
		Aspect:     c.Aspect,
		X:          c.X,
		Y:          c.Y,
		Z:          c.Z,
	}
}

// CopyBufferToTexture records a buffer-to-texture copy.
func (e *CommandEncoder) CopyBufferToTexture(src *Buffer, layout *hal.ImageDataLayout, dst *ImageCopyTexture, size *hal.Extent3D) {
	e.hal.CopyBufferToTexture(src.halBuffer(), layout, dst.toHAL(), size)
}

// CopyTextureToBuffer records a texture-to-buffer copy.
func (e *CommandEncoder) CopyTextureToBuffer(src *ImageCopyTexture, dst *Buffer, layout *hal.ImageDataLayout, size *hal.Extent3D) {
	e.hal.CopyTextureToBuffer(src.toHAL(), dst.halBuffer(), layout, size)
}

// CopyTextureToTexture records a texture-to-texture copy.
func (e *CommandEncoder) CopyTextureToTexture(src, dst *ImageCopyTexture, size *hal.Extent3D) {
	e.hal.CopyTextureToTexture(src.toHAL(), dst.toHAL(), size)
}

// AcquireSurfaceTexture waits on the surface's acquire primitive, marks the
// surface for presentation on submit, and returns the current backbuffer
// texture wrapped as a surface-owned Texture (spec.md §4.6).
func (e *CommandEncoder) AcquireSurfaceTexture(s *Surface) (*Texture, hal.AcquireResult) {
	ht, result := e.hal.AcquireSurfaceTexture(s.hal)
	if ht == nil {
		return nil, result
	}
	return s.wrapBackbuffer(ht), result
}

// BeginRenderPass begins a render pass recorded into this encoder.
func (e *CommandEncoder) BeginRenderPass(desc *RenderPassDescriptor) *RenderPassEncoder {
	return &RenderPassEncoder{device: e.device, hal: e.hal.BeginRenderPass(desc.toHAL())}
}

// BeginComputePass begins a compute pass recorded into this encoder.
func (e *CommandEncoder) BeginComputePass(label string) *ComputePassEncoder {
	return &ComputePassEncoder{device: e.device, hal: e.hal.BeginComputePass(label)}
}

// WriteTimestamp writes a GPU timestamp into heap at index.
func (e *CommandEncoder) WriteTimestamp(heap *QueryHeap, index uint32) {
	e.hal.WriteTimestamp(heap.halHeap(), index)
}

func (e *CommandEncoder) PushDebugGroup(label string)  { e.hal.PushDebugGroup(label) }
func (e *CommandEncoder) PopDebugGroup()               { e.hal.PopDebugGroup() }
func (e *CommandEncoder) InsertDebugMarker(label string) { e.hal.InsertDebugMarker(label) }

// End closes recording and returns the immutable CommandBuffer ready for
// Queue.Submit.
func (e *CommandEncoder) End() (*CommandBuffer, error) {
	cb, err := e.hal.End()
	if err != nil {
		hal.Logger().Error("rhi: CommandEncoder.End failed", "error", err)
		return nil, err
	}
	return &CommandBuffer{hal: cb, queueType: cb.QueueType()}, nil
}

// Discard cancels encoding without producing a CommandBuffer.
func (e *CommandEncoder) Discard() { e.hal.Discard() }

// CommandBuffer is the immutable result of CommandEncoder.End, ready for
// Queue.Submit. A CommandBuffer submitted on a queue other than the one
// that acquired its encoder is an ErrInvalidOperation (spec.md §4.5).
type CommandBuffer struct {
	hal       hal.CommandBuffer
	queueType hal.QueueType
}

// Native returns the backend-native command buffer handle.
func (b *CommandBuffer) Native() hal.NativeHandle { return b.hal.Native() }
