package hal

import "github.com/nullgfx/rhi/pixelformat"

// NativeHandle is an opaque native-object identifier a backend hands back
// for a created resource. The rhi package never inspects it; it is only
// threaded through to the deferred-destruction queue.
type NativeHandle any

// Buffer is a backend-created GPU buffer. MappedPointer is non-nil only for
// MemoryUpload/MemoryReadback buffers (spec.md §3's Buffer invariant).
type Buffer interface {
	Native() NativeHandle
	Size() uint64
	Usage() BufferUsage
	MemoryType() MemoryType
	MappedPointer() []byte
	DeviceAddress() uint64
}

// Texture is a backend-created GPU texture with per-subresource layout
// tracking (spec.md §3).
type Texture interface {
	Native() NativeHandle
	Format() pixelformat.Format
	Dimension() TextureDimension
	Width() uint32
	Height() uint32
	DepthOrArrayLayers() uint32
	MipLevelCount() uint32
	SampleCount() uint32
	NumSubResources() uint32
	Layout(subResource uint32) TextureLayout
	SetLayout(subResource uint32, layout TextureLayout)
}

// TextureView is a lazily-created, cached view into a Texture subresource
// range (spec.md §9 design note).
type TextureView interface {
	Native() NativeHandle
}

// Sampler is an immutable texture sampler.
type Sampler interface {
	Native() NativeHandle
}

// BindGroupLayout declares a set of binding slots.
type BindGroupLayout interface {
	Native() NativeHandle
}

// BindGroup binds concrete resources to a BindGroupLayout's slots.
type BindGroup interface {
	Native() NativeHandle
}

// PipelineLayout carries push-constant ranges (and, optionally, bind group
// layouts) shared by one or more pipelines (spec.md §4.9).
type PipelineLayout interface {
	Native() NativeHandle
	PushConstantOffset(rangeIndex int) uint32
	PushConstantSize(rangeIndex int) uint32
}

// ShaderModule is a compiled or pre-compiled shader program.
type ShaderModule interface {
	Native() NativeHandle
}

// ComputePipeline binds a single compute shader stage.
type ComputePipeline interface {
	Native() NativeHandle
	Layout() PipelineLayout
}

// RenderPipeline bundles the fixed-function and programmable state of one
// draw configuration (spec.md §4.9).
type RenderPipeline interface {
	Native() NativeHandle
	Layout() PipelineLayout
}

// QueryHeap is a device-owned pool of query slots (spec.md §4.12).
type QueryHeap interface {
	Native() NativeHandle
	Type() QueryType
	Count() uint32
}

// Fence is a backend synchronization primitive with a monotonically
// increasing signaled value.
type Fence interface {
	Native() NativeHandle
}
