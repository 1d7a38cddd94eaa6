package hal

// TextureLayout is the closed enum of states a texture subresource can be
// in, per spec.md §3. Every texture tracks one TextureLayout per
// subresource; barriers transition between them.
type TextureLayout uint32

const (
	TextureLayoutUndefined TextureLayout = iota
	TextureLayoutCopySource
	TextureLayoutCopyDest
	TextureLayoutResolveSource
	TextureLayoutResolveDest
	TextureLayoutShaderResource
	TextureLayoutUnorderedAccess
	TextureLayoutRenderTarget
	TextureLayoutDepthWrite
	TextureLayoutDepthRead
	TextureLayoutPresent
	TextureLayoutShadingRateSurface

	textureLayoutForce32 TextureLayout = 0x7fffffff
)

func (l TextureLayout) String() string {
	switch l {
	case TextureLayoutUndefined:
		return "undefined"
	case TextureLayoutCopySource:
		return "copy-source"
	case TextureLayoutCopyDest:
		return "copy-dest"
	case TextureLayoutResolveSource:
		return "resolve-source"
	case TextureLayoutResolveDest:
		return "resolve-dest"
	case TextureLayoutShaderResource:
		return "shader-resource"
	case TextureLayoutUnorderedAccess:
		return "unordered-access"
	case TextureLayoutRenderTarget:
		return "render-target"
	case TextureLayoutDepthWrite:
		return "depth-write"
	case TextureLayoutDepthRead:
		return "depth-read"
	case TextureLayoutPresent:
		return "present"
	case TextureLayoutShadingRateSurface:
		return "shading-rate-surface"
	default:
		return "unknown"
	}
}

// computeQueueLayouts is the subset of layouts valid for a barrier recorded
// on a compute queue (spec.md §4.6): transitions outside this set are an
// assertion failure in debug builds and undefined behavior in release.
var computeQueueLayouts = map[TextureLayout]bool{
	TextureLayoutUnorderedAccess: true,
	TextureLayoutShaderResource:  true,
	TextureLayoutCopySource:      true,
	TextureLayoutCopyDest:        true,
}

// ValidOnComputeQueue reports whether l is one of the four layouts a
// compute-queue barrier may legally transition to or from.
func ValidOnComputeQueue(l TextureLayout) bool { return computeQueueLayouts[l] }

// MaxBarrierCount bounds the legacy fixed-size barrier ring a D3D12-class
// backend falls back to when the enhanced batched-barrier path is
// unavailable (spec.md §4.6's kMaxBarrierCount).
const MaxBarrierCount = 16

// Aspect is the plane(s) of a texture a barrier or view addresses.
type Aspect uint32

const (
	AspectColor Aspect = 1 << iota
	AspectDepth
	AspectStencil
)

// TextureBarrier describes one texture subresource-range transition.
type TextureBarrier struct {
	Texture      Texture
	OldLayout    TextureLayout
	NewLayout    TextureLayout
	BaseMip      uint32
	LevelCount   uint32
	BaseLayer    uint32
	LayerCount   uint32
	Aspect       Aspect
	QueueType    QueueType
}

// BufferBarrier describes a buffer read/write hazard transition.
type BufferBarrier struct {
	Buffer Buffer
	Offset uint64
	Size   uint64
}

// GlobalBarrier is a full-pipeline memory barrier with no specific resource.
type GlobalBarrier struct {
	BeforeWrite bool
	AfterRead   bool
}

// BarrierBatch accumulates the three barrier vectors the enhanced tracking
// path batches into a single dependency (spec.md §4.6).
type BarrierBatch struct {
	Textures []TextureBarrier
	Buffers  []BufferBarrier
	Globals  []GlobalBarrier
}

// Empty reports whether the batch has nothing pending.
func (b *BarrierBatch) Empty() bool {
	return len(b.Textures) == 0 && len(b.Buffers) == 0 && len(b.Globals) == 0
}

// Reset clears the batch for reuse without reallocating backing arrays.
func (b *BarrierBatch) Reset() {
	b.Textures = b.Textures[:0]
	b.Buffers = b.Buffers[:0]
	b.Globals = b.Globals[:0]
}
