package hal

// Backend is the factory for one backend variant's Instance. Backends
// register themselves globally at init() time via RegisterBackendFactory.
type Backend interface {
	Variant() Variant
	CreateInstance(desc *InstanceDescriptor) (Instance, error)
}

// ExposedAdapter bundles an enumerated Adapter with its immutable info and
// feature set, as returned by Instance.EnumerateAdapters.
type ExposedAdapter struct {
	Adapter  Adapter
	Info     AdapterInfo
	Features FeatureSet
	Limits   Limits
}

// Instance is a backend's entry point for adapter enumeration and surface
// creation.
type Instance interface {
	// EnumerateAdapters enumerates available physical GPUs. surfaceHint, if
	// non-nil, restricts results to adapters compatible with that surface.
	EnumerateAdapters(surfaceHint Surface) []ExposedAdapter

	// CreateSurface wraps an opaque platform native-window handle (spec.md
	// §6's "native surface handle") as a Surface. The RHI never interprets
	// the handle itself; it is forwarded to the backend's native swapchain
	// creation call.
	CreateSurface(nativeHandle any) (Surface, error)

	Destroy()
}

// Adapter represents one physical or virtual GPU.
type Adapter interface {
	Info() AdapterInfo
	Features() FeatureSet
	Limits() Limits

	// SurfaceCapabilities returns capabilities for a surface, or nil if this
	// adapter cannot present to it.
	SurfaceCapabilities(surface Surface) *SurfaceCapabilities

	// Open opens a logical device with the requested features/limits,
	// creating one Queue per type the adapter exposes.
	Open(desc *DeviceDescriptor) (Device, error)

	Destroy()
}

// SurfaceCapabilities describes what a Surface supports on a given Adapter.
type SurfaceCapabilities struct {
	MinImageCount uint32
	MaxImageCount uint32
	Formats       []uint32 // pixelformat.Format values
	PresentModes  []PresentMode
}

// Device is a logical GPU device: the resource factory and the owner of
// per-type Queues (spec.md §3's Device data model).
type Device interface {
	Queue(t QueueType) (Queue, bool)
	QueueTypes() []QueueType

	CreateBuffer(desc *BufferDescriptor) (Buffer, error)
	DestroyBuffer(b Buffer)

	CreateTexture(desc *TextureDescriptor) (Texture, error)
	DestroyTexture(t Texture)

	CreateTextureView(t Texture, desc *TextureViewDescriptor) (TextureView, error)

	CreateSampler(desc *SamplerDescriptor) (Sampler, error)
	DestroySampler(s Sampler)

	CreateBindGroupLayout(desc *BindGroupLayoutDescriptor) (BindGroupLayout, error)
	DestroyBindGroupLayout(l BindGroupLayout)

	CreateBindGroup(desc *BindGroupDescriptor) (BindGroup, error)
	DestroyBindGroup(g BindGroup)

	CreatePipelineLayout(desc *PipelineLayoutDescriptor) (PipelineLayout, error)
	DestroyPipelineLayout(l PipelineLayout)

	CreateShaderModule(desc *ShaderModuleDescriptor) (ShaderModule, error)
	DestroyShaderModule(m ShaderModule)

	CreateComputePipeline(desc *ComputePipelineDescriptor) (ComputePipeline, error)
	DestroyComputePipeline(p ComputePipeline)

	CreateRenderPipeline(desc *RenderPipelineDescriptor) (RenderPipeline, error)
	DestroyRenderPipeline(p RenderPipeline)

	CreateQueryHeap(desc *QueryHeapDescriptor) (QueryHeap, error)
	DestroyQueryHeap(h QueryHeap)

	WaitIdle() error
	Destroy()
}

// Queue handles command submission, per-frame fences, and presentation for
// one QueueType.
type Queue interface {
	Type() QueueType

	// AcquireCommandBuffer returns the next recycled CommandEncoder for
	// frameIndex, reset and ready to record (spec.md §4.5).
	AcquireCommandBuffer(frameIndex uint32) (CommandEncoder, error)

	// Submit ends and submits buffers in array order within one native
	// submission call, then presents any surfaces those buffers acquired
	// (spec.md §4.5's ordering guarantee).
	Submit(buffers []CommandBuffer) error

	// SignalFrameFence signals this queue's fence for frameIndex with a
	// fresh monotonically increasing value, returning that value.
	SignalFrameFence(frameIndex uint32) uint64

	// WaitFrameFence blocks until frameIndex's fence reaches the value last
	// returned by SignalFrameFence for it.
	WaitFrameFence(frameIndex uint32) error

	// ResetCommandBufferCounter resets the per-frame acquisition cursor to 0
	// (spec.md §4.11 commitFrame step 2).
	ResetCommandBufferCounter()

	// ResolveQueryResults copies count raw query results starting at first
	// out of heap into dst at offset, for CPU or GPU readback (spec.md
	// §4.12). Like the upload allocator (spec.md §4.4), it guarantees the
	// copy is visible to every queue, not just the one it was issued on.
	ResolveQueryResults(heap QueryHeap, first, count uint32, dst Buffer, offset uint64) error

	GetTimestampPeriod() float32
}
