package hal

import "github.com/nullgfx/rhi/pixelformat"

// InstanceDescriptor configures Backend.CreateInstance.
type InstanceDescriptor struct {
	Validation ValidationMode
}

// DeviceDescriptor configures Adapter.Open.
type DeviceDescriptor struct {
	RequiredFeatures FeatureSet
	RequiredLimits   Limits
	MaxFramesInFlight uint32
}

// BufferDescriptor configures Device.CreateBuffer.
type BufferDescriptor struct {
	Label       string
	Size        uint64
	Usage       BufferUsage
	MemoryType  MemoryType
	InitialData []byte
}

// TextureDescriptor configures Device.CreateTexture.
type TextureDescriptor struct {
	Label              string
	Dimension          TextureDimension
	Format             pixelformat.Format
	Usage              TextureUsage
	Width              uint32
	Height             uint32
	DepthOrArrayLayers uint32
	MipLevelCount      uint32
	SampleCount        uint32
	InitialData        []byte
	InitialLayout      TextureLayout
}

// NumSubResources returns mipLevelCount * depthOrArrayLayers, multiplied by
// 6 for cube textures per the spec's adopted convention that the public
// DepthOrArrayLayers field counts cubes, not faces (spec.md §9 Open Question 2).
func (d *TextureDescriptor) NumSubResources() uint32 {
	n := d.MipLevelCount * d.DepthOrArrayLayers
	if d.Dimension == TextureDimensionCube {
		n *= 6
	}
	return n
}

// SubResourceIndex computes mip + arrayLayer*mipLevelCount per spec.md §3.
func (d *TextureDescriptor) SubResourceIndex(mip, arrayLayer uint32) uint32 {
	return mip + arrayLayer*d.MipLevelCount
}

// TextureViewDescriptor configures Device.CreateTextureView.
type TextureViewDescriptor struct {
	Format         pixelformat.Format
	Dimension      TextureDimension
	Aspect         Aspect
	BaseMipLevel   uint32
	MipLevelCount  uint32
	BaseArrayLayer uint32
	ArrayLayerCount uint32
}

// Hash returns a stable key for the texture's per-view cache (spec.md §4.9
// design note: "cached view map per texture").
func (d *TextureViewDescriptor) Hash() uint64 {
	h := uint64(d.Format)
	h = h*1099511628211 ^ uint64(d.Dimension)
	h = h*1099511628211 ^ uint64(d.Aspect)
	h = h*1099511628211 ^ uint64(d.BaseMipLevel)
	h = h*1099511628211 ^ uint64(d.MipLevelCount)
	h = h*1099511628211 ^ uint64(d.BaseArrayLayer)
	h = h*1099511628211 ^ uint64(d.ArrayLayerCount)
	return h
}

// SamplerDescriptor configures Device.CreateSampler.
type SamplerDescriptor struct {
	Label         string
	MinFilter     bool // true = linear, false = nearest
	MagFilter     bool
	MipFilter     bool
	AddressModeU  uint32
	AddressModeV  uint32
	AddressModeW  uint32
	LODMinClamp   float32
	LODMaxClamp   float32
	MaxAnisotropy uint32
	Compare       CompareFunc
	CompareEnable bool
}

// BindGroupLayoutEntry declares one binding slot (spec.md §9 Open Question 1:
// the descriptor protocol is declared but not wired by every backend).
type BindGroupLayoutEntry struct {
	Binding         uint32
	VisibilityStage uint32
	Kind            uint32 // uniform-buffer, storage-buffer, sampled-texture, sampler, ...
	ArraySize       uint32
}

// BindGroupLayoutDescriptor configures Device.CreateBindGroupLayout.
type BindGroupLayoutDescriptor struct {
	Label   string
	Entries []BindGroupLayoutEntry
}

// BindGroupEntry binds one resource to a layout slot.
type BindGroupEntry struct {
	Binding uint32
	Buffer  Buffer
	Texture Texture
	Sampler Sampler
	Offset  uint64
	Size    uint64
}

// BindGroupDescriptor configures Device.CreateBindGroup.
type BindGroupDescriptor struct {
	Label   string
	Layout  BindGroupLayout
	Entries []BindGroupEntry
}

// PushConstantRange declares one addressable push-constant range. Offsets
// are computed by the pipeline layout as a prefix sum over declared sizes
// (spec.md §4.9).
type PushConstantRange struct {
	Size uint32
}

// PipelineLayoutDescriptor configures Device.CreatePipelineLayout. Only
// push-constant ranges are required to be wired by every backend; bind
// group layouts are carried but optional (spec.md §9 Open Question 1).
type PipelineLayoutDescriptor struct {
	Label              string
	BindGroupLayouts   []BindGroupLayout
	PushConstantRanges []PushConstantRange
}

// ShaderStage identifies which programmable stage a ShaderModule targets.
type ShaderStage uint32

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
	ShaderStageCompute
)

// ShaderModuleDescriptor configures Device.CreateShaderModule. SPIRV is
// accepted as pre-compiled bytecode; WGSL is accepted as source text and
// cross-compiled by backends that need a different IR (hal/vk via naga).
type ShaderModuleDescriptor struct {
	Label      string
	Stage      ShaderStage
	EntryPoint string
	SPIRV      []byte
	WGSL       string
}

// ComputePipelineDescriptor configures Device.CreateComputePipeline.
type ComputePipelineDescriptor struct {
	Label  string
	Layout PipelineLayout
	Shader ShaderModule
}

// ColorTargetState is one render-pipeline color attachment's format and
// blend configuration.
type ColorTargetState struct {
	Format          pixelformat.Format
	BlendEnable     bool
	SrcColorFactor  BlendFactor
	DstColorFactor  BlendFactor
	ColorOp         BlendOp
	SrcAlphaFactor  BlendFactor
	DstAlphaFactor  BlendFactor
	AlphaOp         BlendOp
	WriteMask       ColorWriteMask
}

// StencilFaceState is the per-face stencil test/update configuration.
type StencilFaceState struct {
	Compare     CompareFunc
	FailOp      StencilOp
	DepthFailOp StencilOp
	PassOp      StencilOp
}

// DepthStencilState is a render pipeline's depth/stencil test configuration.
type DepthStencilState struct {
	Format            pixelformat.Format
	DepthWriteEnabled bool
	DepthCompare      CompareFunc
	Front             StencilFaceState
	Back              StencilFaceState
	StencilReadMask   uint32
	StencilWriteMask  uint32
	DepthBoundsEnable bool
}

// RasterizerState configures primitive rasterization.
type RasterizerState struct {
	FillMode               FillMode
	CullMode               CullMode
	FrontFace              FrontFace
	DepthBias              int32
	DepthBiasSlopeScale    float32
	DepthBiasClamp         float32
	DepthClipMode          DepthClipMode
	ConservativeRaster     bool
}

// MultisampleState configures MSAA.
type MultisampleState struct {
	SampleCount           uint32
	SampleMask            uint32
	AlphaToCoverageEnable bool
}

// VertexAttribute describes one shader input within a vertex buffer.
type VertexAttribute struct {
	Format         pixelformat.VertexFormat
	Offset         uint32
	ShaderLocation uint32
}

// VertexBufferLayout describes one bound vertex buffer's stride and attributes.
type VertexBufferLayout struct {
	Stride   uint32
	StepMode VertexStepMode
	Attributes []VertexAttribute
}

// GPUMaxColorAttachments bounds RenderPipelineDescriptor.ColorTargets (spec.md
// §6 GPU_MAX_COLOR_ATTACHMENTS).
const GPUMaxColorAttachments = 8

// GPUMaxVertexBufferBindings bounds RenderPipelineDescriptor.VertexBuffers
// (spec.md §6 GPU_MAX_VERTEX_BUFFER_BINDINGS).
const GPUMaxVertexBufferBindings = 8

// RenderPipelineDescriptor configures Device.CreateRenderPipeline.
type RenderPipelineDescriptor struct {
	Label               string
	Layout              PipelineLayout
	VertexShader        ShaderModule
	FragmentShader      ShaderModule
	ColorTargets        []ColorTargetState
	DepthStencil        *DepthStencilState
	Rasterizer          RasterizerState
	Multisample         MultisampleState
	Topology            PrimitiveTopology
	PatchControlPoints  uint32
	VertexBuffers       []VertexBufferLayout
}

// QueryHeapDescriptor configures Device.CreateQueryHeap (spec.md §4.12,
// supplemented since spec.md names QueryHeap but does not detail it).
type QueryHeapDescriptor struct {
	Label string
	Type  QueryType
	Count uint32
}

// SurfaceConfiguration configures Surface.Configure (spec.md §4.10).
type SurfaceConfiguration struct {
	Format      pixelformat.Format
	Width       uint32
	Height      uint32
	PresentMode PresentMode
}

// Viewport is ABI-identical to the native Vulkan/D3D12 viewport structure,
// using D3D-convention top-left origin; Vulkan-class backends negate y and
// height internally (spec.md §4.7, §9).
type Viewport struct {
	X, Y, Width, Height   float32
	MinDepth, MaxDepth    float32
}

// ScissorRect is ABI-identical to the native scissor-rect structure.
type ScissorRect struct {
	X, Y, Width, Height int32
}

// DispatchIndirectCommand is ABI-identical to the native indirect-dispatch
// argument structure (spec.md §6).
type DispatchIndirectCommand struct {
	X, Y, Z uint32
}

// DrawIndirectCommand is ABI-identical to the native indirect-draw argument
// structure.
type DrawIndirectCommand struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

// DrawIndexedIndirectCommand is ABI-identical to the native indexed
// indirect-draw argument structure.
type DrawIndexedIndirectCommand struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	FirstInstance uint32
}

const (
	// GPUMaxInflightFrames is spec.md §6's GPU_MAX_INFLIGHT_FRAMES.
	GPUMaxInflightFrames = 3
	// GPUWholeSize is spec.md §6's GPU_WHOLE_SIZE.
	GPUWholeSize = ^uint64(0)
	// GPULODClampNone is spec.md §6's GPU_LOD_CLAMP_NONE.
	GPULODClampNone float32 = 1000.0
)
