package hal

// CommandBuffer is the result of CommandEncoder.End: an immutable, ordered
// list of recorded commands ready for Queue.Submit. A CommandBuffer
// submitted on a queue other than the one that acquired its encoder is an
// ErrInvalidOperation.
type CommandBuffer interface {
	Native() NativeHandle
	QueueType() QueueType
}

// ImageCopyTexture addresses one texture subresource as a copy endpoint.
type ImageCopyTexture struct {
	Texture    Texture
	MipLevel   uint32
	ArrayLayer uint32
	Aspect     Aspect
	X, Y, Z    uint32
}

// ImageDataLayout describes the memory layout of linear buffer data used in
// a buffer<->texture copy.
type ImageDataLayout struct {
	Offset       uint64
	BytesPerRow  uint32
	RowsPerImage uint32
}

// Extent3D is a copy region's size in texels.
type Extent3D struct {
	Width, Height, DepthOrArrayLayers uint32
}

// ColorAttachment is one render pass color target.
type ColorAttachment struct {
	View       TextureView
	Texture    Texture
	MipLevel   uint32
	ArrayLayer uint32
	Load       LoadAction
	Store      StoreAction
	ClearColor [4]float32
}

// DepthStencilAttachment is a render pass's optional depth/stencil target.
type DepthStencilAttachment struct {
	View            TextureView
	Texture         Texture
	MipLevel        uint32
	ArrayLayer      uint32
	DepthLoad       LoadAction
	DepthStore      StoreAction
	StencilLoad     LoadAction
	StencilStore    StoreAction
	ClearDepth      float32
	ClearStencil    uint32
	DepthReadOnly   bool
}

// ShadingRateAttachment is a render pass's optional variable-rate-shading
// surface (spec.md §1(e)).
type ShadingRateAttachment struct {
	View    TextureView
	Texture Texture
	TileSize uint32
}

// RenderPassDescriptor configures CommandEncoder.BeginRenderPass.
type RenderPassDescriptor struct {
	Label          string
	ColorTargets   []ColorAttachment
	DepthStencil   *DepthStencilAttachment
	ShadingRate    *ShadingRateAttachment
}

// CommandEncoder records commands into a single CommandBuffer. Not safe for
// concurrent use by multiple goroutines (spec.md §5: recording to one
// command buffer is single-threaded).
type CommandEncoder interface {
	QueueType() QueueType

	// TextureBarrier records a transition of one texture subresource range.
	// Backends look up tex.Layout(subresource), skip if equal to newLayout,
	// and otherwise batch a transition; UnorderedAccess->UnorderedAccess
	// emits a UAV/execution barrier instead (spec.md §4.6).
	TextureBarrier(tex Texture, newLayout TextureLayout, baseMip, levelCount, baseLayer, layerCount uint32, aspect Aspect)

	// BufferBarrier records a buffer read/write hazard transition.
	BufferBarrier(buf Buffer, offset, size uint64)

	// GlobalBarrier records a full-pipeline memory barrier.
	GlobalBarrier(beforeWrite, afterRead bool)

	// FlushBarriers emits all pending barriers as one batched dependency
	// (enhanced path) or as many batches as MaxBarrierCount requires
	// (legacy fallback).
	FlushBarriers()

	CopyBufferToBuffer(src Buffer, srcOffset uint64, dst Buffer, dstOffset, size uint64)
	CopyBufferToTexture(src Buffer, layout *ImageDataLayout, dst *ImageCopyTexture, size *Extent3D)
	CopyTextureToBuffer(src *ImageCopyTexture, dst Buffer, layout *ImageDataLayout, size *Extent3D)
	CopyTextureToTexture(src *ImageCopyTexture, dst *ImageCopyTexture, size *Extent3D)

	// AcquireSurfaceTexture waits on the surface's acquire primitive
	// (bounded 1s), marks the surface for presentation on submit, and
	// returns the current backbuffer texture (spec.md §4.6).
	AcquireSurfaceTexture(surface Surface) (Texture, AcquireResult)

	BeginRenderPass(desc *RenderPassDescriptor) RenderPassEncoder
	BeginComputePass(label string) ComputePassEncoder

	WriteTimestamp(heap QueryHeap, index uint32)

	PushDebugGroup(label string)
	PopDebugGroup()
	InsertDebugMarker(label string)

	// End closes recording: emits trailing Present barriers for any
	// pending surfaces, flushes barriers, closes any open debug-group
	// nesting, and returns the immutable CommandBuffer.
	End() (CommandBuffer, error)

	// Discard cancels encoding without producing a CommandBuffer.
	Discard()
}

// RenderPassEncoder is the command surface within one render pass
// (spec.md §4.7).
type RenderPassEncoder interface {
	SetViewport(vp []Viewport)
	SetScissorRect(sc []ScissorRect)
	SetBlendColor(r, g, b, a float32)
	SetStencilReference(ref uint32)
	SetVertexBuffer(slot uint32, buf Buffer, offset uint64)
	SetIndexBuffer(buf Buffer, format IndexFormat, offset uint64)
	SetPipeline(p RenderPipeline)
	SetPushConstants(rangeIndex int, data []byte)
	SetShadingRate(rate uint32)

	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
	DrawIndirect(buf Buffer, offset uint64)
	DrawIndexedIndirect(buf Buffer, offset uint64)
	MultiDrawIndirect(buf Buffer, offset uint64, maxCount uint32, countBuf Buffer, countOffset uint64)
	MultiDrawIndexedIndirect(buf Buffer, offset uint64, maxCount uint32, countBuf Buffer, countOffset uint64)

	BeginOcclusionQuery(index uint32)
	EndOcclusionQuery(index uint32)

	PushDebugGroup(label string)
	PopDebugGroup()
	InsertDebugMarker(label string)

	End()
}

// ComputePassEncoder is the command surface within one compute pass
// (spec.md §4.8).
type ComputePassEncoder interface {
	SetPipeline(p ComputePipeline)
	SetPushConstants(rangeIndex int, data []byte)
	Dispatch(x, y, z uint32)
	DispatchIndirect(buf Buffer, offset uint64)

	PushDebugGroup(label string)
	PopDebugGroup()
	InsertDebugMarker(label string)

	End()
}

// SurfaceTexture wraps the backbuffer returned by AcquireSurfaceTexture
// together with its acquisition index, used by Queue.Submit's present step.
type SurfaceTexture struct {
	Texture Texture
	Index   uint32
}

// Surface is a presentable swapchain bound to a platform native window.
type Surface interface {
	// Configure (re)creates the swapchain. Idempotent: waits the device
	// idle, releases old backbuffers, creates the new swapchain before
	// destroying the old one, recreates per-image sync primitives
	// (spec.md §4.10).
	Configure(device Device, cfg *SurfaceConfiguration) error

	Unconfigure()

	CurrentFormat() uint32 // pixelformat.Format
	Width() uint32
	Height() uint32

	// CurrentBackBuffer returns the texture at currentBackBufferIndex.
	CurrentBackBuffer() Texture

	Present(queue Queue) (AcquireResult, error)
}
