package null

import (
	"sync/atomic"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

var nextHandle atomic.Uint64

func newHandle() hal.NativeHandle {
	return nextHandle.Add(1)
}

// Buffer is a host-memory-backed hal.Buffer.
type Buffer struct {
	handle     hal.NativeHandle
	size       uint64
	usage      hal.BufferUsage
	memType    hal.MemoryType
	data       []byte
	deviceAddr uint64
}

func newBuffer(desc *hal.BufferDescriptor) *Buffer {
	b := &Buffer{
		handle:     newHandle(),
		size:       desc.Size,
		usage:      desc.Usage,
		memType:    desc.MemoryType,
		data:       make([]byte, desc.Size),
		deviceAddr: nextHandle.Add(1) << 16,
	}
	if len(desc.InitialData) > 0 {
		copy(b.data, desc.InitialData)
	}
	return b
}

func (b *Buffer) Native() hal.NativeHandle { return b.handle }
func (b *Buffer) Size() uint64             { return b.size }
func (b *Buffer) Usage() hal.BufferUsage   { return b.usage }
func (b *Buffer) MemoryType() hal.MemoryType { return b.memType }

// MappedPointer returns the buffer's backing slice for Upload/Readback
// buffers (persistently mapped), or nil for MemoryPrivate buffers, matching
// spec.md §3's `mapped != null iff memoryType in {upload, readback}`.
func (b *Buffer) MappedPointer() []byte {
	if b.memType == hal.MemoryPrivate {
		return nil
	}
	return b.data
}

func (b *Buffer) DeviceAddress() uint64 { return b.deviceAddr }

// raw exposes the backing array unconditionally, used internally by copy
// commands regardless of memory type (a real backend would stage through
// the upload allocator instead).
func (b *Buffer) raw() []byte { return b.data }

// Texture is a host-memory-backed hal.Texture: one []byte per subresource.
type Texture struct {
	handle     hal.NativeHandle
	desc       hal.TextureDescriptor
	subLayouts []hal.TextureLayout
	subData    [][]byte
}

func newTexture(desc *hal.TextureDescriptor) *Texture {
	n := desc.NumSubResources()
	t := &Texture{
		handle:     newHandle(),
		desc:       *desc,
		subLayouts: make([]hal.TextureLayout, n),
		subData:    make([][]byte, n),
	}
	for i := range t.subLayouts {
		t.subLayouts[i] = hal.TextureLayoutUndefined
	}
	info := pixelformat.SurfaceInfo(desc.Format, desc.Width, desc.Height)
	for i := range t.subData {
		t.subData[i] = make([]byte, info.SlicePitch)
	}
	if len(desc.InitialData) > 0 && len(t.subData) > 0 {
		copy(t.subData[0], desc.InitialData)
	}
	if desc.InitialLayout != hal.TextureLayoutUndefined {
		for i := range t.subLayouts {
			t.subLayouts[i] = desc.InitialLayout
		}
	}
	return t
}

func (t *Texture) Native() hal.NativeHandle            { return t.handle }
func (t *Texture) Format() pixelformat.Format           { return t.desc.Format }
func (t *Texture) Dimension() hal.TextureDimension      { return t.desc.Dimension }
func (t *Texture) Width() uint32                        { return t.desc.Width }
func (t *Texture) Height() uint32                       { return t.desc.Height }
func (t *Texture) DepthOrArrayLayers() uint32           { return t.desc.DepthOrArrayLayers }
func (t *Texture) MipLevelCount() uint32                { return t.desc.MipLevelCount }
func (t *Texture) SampleCount() uint32                  { return t.desc.SampleCount }
func (t *Texture) NumSubResources() uint32              { return t.desc.NumSubResources() }

func (t *Texture) Layout(subResource uint32) hal.TextureLayout {
	if int(subResource) >= len(t.subLayouts) {
		return hal.TextureLayoutUndefined
	}
	return t.subLayouts[subResource]
}

func (t *Texture) SetLayout(subResource uint32, layout hal.TextureLayout) {
	if int(subResource) >= len(t.subLayouts) {
		return
	}
	t.subLayouts[subResource] = layout
}

func (t *Texture) subBytes(subResource uint32) []byte {
	if int(subResource) >= len(t.subData) {
		return nil
	}
	return t.subData[subResource]
}

// TextureView, Sampler, BindGroupLayout, BindGroup, PipelineLayout,
// ShaderModule, ComputePipeline, RenderPipeline, QueryHeap, Fence all share
// the same trivial shape in the null backend: a handle plus whatever
// metadata their interface requires.

type textureView struct{ handle hal.NativeHandle }

func (v *textureView) Native() hal.NativeHandle { return v.handle }

type sampler struct{ handle hal.NativeHandle }

func (s *sampler) Native() hal.NativeHandle { return s.handle }

type bindGroupLayout struct{ handle hal.NativeHandle }

func (l *bindGroupLayout) Native() hal.NativeHandle { return l.handle }

type bindGroup struct{ handle hal.NativeHandle }

func (g *bindGroup) Native() hal.NativeHandle { return g.handle }

type pipelineLayout struct {
	handle  hal.NativeHandle
	offsets []uint32
	sizes   []uint32
}

func newPipelineLayout(desc *hal.PipelineLayoutDescriptor) *pipelineLayout {
	l := &pipelineLayout{handle: newHandle()}
	var offset uint32
	for _, r := range desc.PushConstantRanges {
		l.offsets = append(l.offsets, offset)
		l.sizes = append(l.sizes, r.Size)
		offset += r.Size
	}
	return l
}

func (l *pipelineLayout) Native() hal.NativeHandle { return l.handle }

func (l *pipelineLayout) PushConstantOffset(rangeIndex int) uint32 {
	if rangeIndex < 0 || rangeIndex >= len(l.offsets) {
		return 0
	}
	return l.offsets[rangeIndex]
}

func (l *pipelineLayout) PushConstantSize(rangeIndex int) uint32 {
	if rangeIndex < 0 || rangeIndex >= len(l.sizes) {
		return 0
	}
	return l.sizes[rangeIndex]
}

type shaderModule struct{ handle hal.NativeHandle }

func (m *shaderModule) Native() hal.NativeHandle { return m.handle }

type computePipeline struct {
	handle hal.NativeHandle
	layout hal.PipelineLayout
}

func (p *computePipeline) Native() hal.NativeHandle  { return p.handle }
func (p *computePipeline) Layout() hal.PipelineLayout { return p.layout }

type renderPipeline struct {
	handle hal.NativeHandle
	layout hal.PipelineLayout
}

func (p *renderPipeline) Native() hal.NativeHandle  { return p.handle }
func (p *renderPipeline) Layout() hal.PipelineLayout { return p.layout }

type queryHeap struct {
	handle    hal.NativeHandle
	queryType hal.QueryType
	count     uint32
	results   []uint64
}

func (h *queryHeap) Native() hal.NativeHandle { return h.handle }
func (h *queryHeap) Type() hal.QueryType      { return h.queryType }
func (h *queryHeap) Count() uint32            { return h.count }

type fence struct {
	handle hal.NativeHandle
	value  atomic.Uint64
}

func (f *fence) Native() hal.NativeHandle { return f.handle }
