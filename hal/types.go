package hal

// Variant identifies a backend implementation.
type Variant uint32

const (
	VariantUndefined Variant = iota
	VariantNull
	VariantVulkan
	VariantD3D12
	VariantMetal
	VariantWebGPU

	variantForce32 Variant = 0x7fffffff
)

func (v Variant) String() string {
	switch v {
	case VariantNull:
		return "null"
	case VariantVulkan:
		return "vulkan"
	case VariantD3D12:
		return "d3d12"
	case VariantMetal:
		return "metal"
	case VariantWebGPU:
		return "webgpu"
	default:
		return "undefined"
	}
}

// AdapterType classifies the physical nature of an adapter.
type AdapterType uint32

const (
	AdapterTypeDiscrete AdapterType = iota
	AdapterTypeIntegrated
	AdapterTypeCPU
	AdapterTypeVirtual
	AdapterTypeOther

	adapterTypeForce32 AdapterType = 0x7fffffff
)

// AdapterVendor identifies the silicon vendor by a stable enum, with a PCI
// vendor ID mapping supplementing spec.md's bare "vendor enum" mention
// (grounded in original_source's agpuGPUAdapterVendorFromID/ToID pair).
type AdapterVendor uint32

const (
	AdapterVendorUnknown AdapterVendor = iota
	AdapterVendorNVIDIA
	AdapterVendorAMD
	AdapterVendorIntel
	AdapterVendorARM
	AdapterVendorQualcomm
	AdapterVendorImgTec
	AdapterVendorMSFT
	AdapterVendorApple
	AdapterVendorMesa
	AdapterVendorBroadcom

	adapterVendorForce32 AdapterVendor = 0x7fffffff
)

var vendorPCIIDs = map[AdapterVendor]uint32{
	AdapterVendorNVIDIA:   0x10DE,
	AdapterVendorAMD:      0x1002,
	AdapterVendorIntel:    0x8086,
	AdapterVendorARM:      0x13B5,
	AdapterVendorQualcomm: 0x5143,
	AdapterVendorImgTec:   0x1010,
	AdapterVendorMSFT:     0x1414,
	AdapterVendorApple:    0x106B,
	AdapterVendorBroadcom: 0x14E4,
}

// VendorFromPCIID maps a PCI vendor ID to the closed AdapterVendor enum,
// returning AdapterVendorUnknown for anything not in the table (Mesa has no
// stable PCI ID of its own: it fronts other vendors' hardware).
func VendorFromPCIID(id uint32) AdapterVendor {
	for v, pci := range vendorPCIIDs {
		if pci == id {
			return v
		}
	}
	return AdapterVendorUnknown
}

// PCIID returns the PCI vendor ID for v, or 0 if v has none (Mesa, Unknown).
func (v AdapterVendor) PCIID() uint32 { return vendorPCIIDs[v] }

// PowerPreference steers adapter selection in Instance.RequestAdapter.
type PowerPreference uint32

const (
	PowerPreferenceNone PowerPreference = iota
	PowerPreferenceLowPower
	PowerPreferenceHighPerformance
)

// ValidationMode configures a backend's native validation layer.
type ValidationMode uint32

const (
	ValidationDisabled ValidationMode = iota
	ValidationEnabled
	ValidationVerbose
	ValidationGPU
)

// Feature is a bit in the closed GPUFeature set an adapter may support.
type Feature uint64

const (
	FeatureDepthClipControl Feature = 1 << iota
	FeatureTimestampQuery
	FeaturePipelineStatisticsQuery
	FeatureTextureCompressionBC
	FeatureTextureCompressionETC2
	FeatureTextureCompressionASTC
	FeatureTextureCompressionASTCHDR
	FeatureIndirectFirstInstance
	FeatureMultiDrawIndirect
	FeatureMultiDrawIndirectCount
	FeatureMeshShader
	FeatureRayTracing
	FeatureVariableRateShading
	FeatureConservativeRasterization
	FeatureShaderFloat16
	FeatureDescriptorIndexing
)

// FeatureSet is a bitmask of Feature values.
type FeatureSet uint64

// Has reports whether every bit in want is set in fs.
func (fs FeatureSet) Has(want Feature) bool { return fs&FeatureSet(want) == FeatureSet(want) }

// ShadingRateTier mirrors the D3D12/Vulkan variable-rate-shading tier
// negotiation spec.md §1(e) requires backends to expose.
type ShadingRateTier uint32

const (
	ShadingRateTierNone ShadingRateTier = iota
	ShadingRateTier1
	ShadingRateTier2
)

// ConservativeRasterTier mirrors D3D12's conservative-rasterization tiers.
type ConservativeRasterTier uint32

const (
	ConservativeRasterTierNone ConservativeRasterTier = iota
	ConservativeRasterTier1
	ConservativeRasterTier2
	ConservativeRasterTier3
)

// ShaderModel is a (major, minor) HLSL/SPIR-V-equivalent shader model, e.g.
// 6.0 .. 6.9 per the original header's GPUShaderModel.
type ShaderModel struct {
	Major, Minor uint8
}

// DriverVersion is the four-component driver version quadruple spec.md §3
// requires on Adapter info.
type DriverVersion struct {
	A, B, C, D uint32
}

// Limits is the adapter's negotiable resource-size and stage limits.
type Limits struct {
	MaxTextureDimension1D        uint32
	MaxTextureDimension2D        uint32
	MaxTextureDimension3D        uint32
	MaxTextureArrayLayers        uint32
	MaxPushConstantSize          uint32
	MaxComputeWorkgroupSizeX     uint32
	MaxComputeWorkgroupSizeY     uint32
	MaxComputeWorkgroupSizeZ     uint32
	MaxComputeWorkgroupsPerDim   uint32
	MaxComputeInvocationsPerWG   uint32
	MaxViewports                 uint32
	MaxViewportDimensions        [2]uint32
	MaxColorAttachments          uint32
	MaxVertexBufferBindings      uint32
	MaxBufferSize                uint64
	MinUniformBufferOffsetAlign  uint32
	MinStorageBufferOffsetAlign  uint32
	ConservativeRasterTier       ConservativeRasterTier
	VariableRateShadingTier      ShadingRateTier
}

// AdapterInfo is immutable adapter metadata.
type AdapterInfo struct {
	Name          string
	Vendor        AdapterVendor
	DeviceID      uint32
	DriverVersion DriverVersion
	DriverInfo    string
	Type          AdapterType
	ShaderModel   ShaderModel
}

// QueueType identifies the four submission queue kinds the device data
// model (spec.md §3) enumerates. Not every adapter exposes every type.
type QueueType uint32

const (
	QueueGraphics QueueType = iota
	QueueCompute
	QueueCopy
	QueueVideoDecode

	numQueueTypes = int(QueueVideoDecode) + 1
)

func (t QueueType) String() string {
	switch t {
	case QueueGraphics:
		return "graphics"
	case QueueCompute:
		return "compute"
	case QueueCopy:
		return "copy"
	case QueueVideoDecode:
		return "video-decode"
	default:
		return "unknown"
	}
}

// NumQueueTypes is the number of QueueType members, for sizing per-type arrays.
func NumQueueTypes() int { return numQueueTypes }

// MemoryType classifies where a Buffer's backing allocation lives and how
// the CPU may access it, per spec.md §3's Buffer invariant.
type MemoryType uint32

const (
	MemoryPrivate MemoryType = iota
	MemoryUpload
	MemoryReadback
)

// BufferUsage is a bitmask of ways a Buffer may be used.
type BufferUsage uint32

const (
	BufferUsageCopySrc BufferUsage = 1 << iota
	BufferUsageCopyDst
	BufferUsageVertex
	BufferUsageIndex
	BufferUsageUniform
	BufferUsageStorage
	BufferUsageIndirect
	BufferUsageQueryResolve
)

// TextureDimension is the logical shape of a Texture.
type TextureDimension uint32

const (
	TextureDimension1D TextureDimension = iota
	TextureDimension2D
	TextureDimension3D
	TextureDimensionCube
)

// TextureUsage is a bitmask of ways a Texture may be used.
type TextureUsage uint32

const (
	TextureUsageCopySrc TextureUsage = 1 << iota
	TextureUsageCopyDst
	TextureUsageShaderResource
	TextureUsageUnorderedAccess
	TextureUsageRenderTarget
	TextureUsageDepthStencil
	TextureUsageShadingRate
)

// PresentMode is the swapchain's presentation timing policy.
type PresentMode uint32

const (
	PresentModeFifo PresentMode = iota
	PresentModeFifoRelaxed
	PresentModeImmediate
	PresentModeMailbox
)

// LoadAction is a render-pass attachment's load behavior.
type LoadAction uint32

const (
	LoadActionLoad LoadAction = iota
	LoadActionClear
	LoadActionDiscard
)

// StoreAction is a render-pass attachment's store behavior.
type StoreAction uint32

const (
	StoreActionStore StoreAction = iota
	StoreActionDiscard
)

// PrimitiveTopology selects how vertices assemble into primitives.
type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList PrimitiveTopology = iota
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyPatchList
)

// IndexFormat selects the index buffer's element width.
type IndexFormat uint32

const (
	IndexFormatUint16 IndexFormat = iota
	IndexFormatUint32
)

// FillMode selects wireframe vs. solid rasterization.
type FillMode uint32

const (
	FillModeSolid FillMode = iota
	FillModeWireframe
)

// CullMode selects triangle-face culling.
type CullMode uint32

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

// FrontFace selects the winding order considered front-facing.
type FrontFace uint32

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// DepthClipMode controls whether fragments outside the depth range clip or clamp.
type DepthClipMode uint32

const (
	DepthClipModeClip DepthClipMode = iota
	DepthClipModeClamp
)

// CompareFunc is a depth/stencil comparison function.
type CompareFunc uint32

const (
	CompareFuncNever CompareFunc = iota
	CompareFuncLess
	CompareFuncEqual
	CompareFuncLessEqual
	CompareFuncGreater
	CompareFuncNotEqual
	CompareFuncGreaterEqual
	CompareFuncAlways
)

// StencilOp is a stencil-buffer update operation.
type StencilOp uint32

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementClamp
	StencilOpDecrementClamp
	StencilOpInvert
	StencilOpIncrementWrap
	StencilOpDecrementWrap
)

// BlendFactor is one operand of a blend equation.
type BlendFactor uint32

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOp combines the source and destination blend terms.
type BlendOp uint32

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// ColorWriteMask is a bitmask of color channels a draw call may write.
type ColorWriteMask uint32

const (
	ColorWriteRed ColorWriteMask = 1 << iota
	ColorWriteGreen
	ColorWriteBlue
	ColorWriteAlpha
	ColorWriteAll = ColorWriteRed | ColorWriteGreen | ColorWriteBlue | ColorWriteAlpha
)

// VertexStepMode selects per-vertex or per-instance advancement.
type VertexStepMode uint32

const (
	VertexStepModeVertex VertexStepMode = iota
	VertexStepModeInstance
)

// QueryType identifies what a QueryHeap's slots record.
type QueryType uint32

const (
	QueryTypeOcclusion QueryType = iota
	QueryTypeTimestamp
	QueryTypePipelineStatistics
)

// AcquireResult is the outcome of Surface.AcquireTexture / CommandEncoder's
// surface-acquire protocol (spec.md §4.6).
type AcquireResult uint32

const (
	AcquireSuccessOptimal AcquireResult = iota
	AcquireSuccessSuboptimal
	AcquireTimeout
	AcquireOutdated
	AcquireLost
	AcquireOutOfMemory
	AcquireOther
)
