package vk

import (
	"sync/atomic"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

var nextHandle atomic.Uint64

func newHandle() hal.NativeHandle { return nextHandle.Add(1) }

// Buffer backs a VkBuffer+VkDeviceMemory pair. Memory is host-allocated
// here (no native device exists to allocate from in this condensed
// backend); MemoryUpload/MemoryReadback are persistently mapped per
// spec.md §3's invariant, MemoryPrivate buffers are populated through the
// upload allocator instead of a direct copy.
type Buffer struct {
	handle     hal.NativeHandle
	size       uint64
	usage      hal.BufferUsage
	memType    hal.MemoryType
	data       []byte
	deviceAddr uint64
}

func newBuffer(d *Device, desc *hal.BufferDescriptor) (*Buffer, error) {
	b := &Buffer{
		handle:     newHandle(),
		size:       desc.Size,
		usage:      desc.Usage,
		memType:    desc.MemoryType,
		data:       make([]byte, desc.Size),
		deviceAddr: nextHandle.Add(1) << 20,
	}
	if len(desc.InitialData) == 0 {
		return b, nil
	}
	if desc.MemoryType != hal.MemoryPrivate {
		copy(b.data, desc.InitialData)
		return b, nil
	}
	if err := d.uploadToBuffer(b, 0, desc.InitialData); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Buffer) Native() hal.NativeHandle   { return b.handle }
func (b *Buffer) Size() uint64               { return b.size }
func (b *Buffer) Usage() hal.BufferUsage     { return b.usage }
func (b *Buffer) MemoryType() hal.MemoryType { return b.memType }

func (b *Buffer) MappedPointer() []byte {
	if b.memType == hal.MemoryPrivate {
		return nil
	}
	return b.data
}

func (b *Buffer) DeviceAddress() uint64 { return b.deviceAddr }
func (b *Buffer) raw() []byte           { return b.data }

// Texture backs a VkImage. Layout per-subresource tracking mirrors
// spec.md §3; images live in host memory for the same reason Buffer does.
type Texture struct {
	handle     hal.NativeHandle
	desc       hal.TextureDescriptor
	subLayouts []hal.TextureLayout
	subData    [][]byte
	views      map[uint64]*textureView
}

func newTexture(d *Device, desc *hal.TextureDescriptor) (*Texture, error) {
	n := desc.NumSubResources()
	t := &Texture{
		handle:     newHandle(),
		desc:       *desc,
		subLayouts: make([]hal.TextureLayout, n),
		subData:    make([][]byte, n),
		views:      make(map[uint64]*textureView),
	}
	info := pixelformat.SurfaceInfo(desc.Format, desc.Width, desc.Height)
	for i := range t.subData {
		t.subData[i] = make([]byte, info.SlicePitch)
	}
	for i := range t.subLayouts {
		t.subLayouts[i] = hal.TextureLayoutUndefined
	}
	if len(desc.InitialData) > 0 && len(t.subData) > 0 {
		if err := d.uploadToTexture(t, 0, desc.InitialData); err != nil {
			return nil, err
		}
	}
	if desc.InitialLayout != hal.TextureLayoutUndefined {
		for i := range t.subLayouts {
			t.subLayouts[i] = desc.InitialLayout
		}
	}
	return t, nil
}

func (t *Texture) Native() hal.NativeHandle       { return t.handle }
func (t *Texture) Format() pixelformat.Format     { return t.desc.Format }
func (t *Texture) Dimension() hal.TextureDimension { return t.desc.Dimension }
func (t *Texture) Width() uint32                  { return t.desc.Width }
func (t *Texture) Height() uint32                 { return t.desc.Height }
func (t *Texture) DepthOrArrayLayers() uint32     { return t.desc.DepthOrArrayLayers }
func (t *Texture) MipLevelCount() uint32          { return t.desc.MipLevelCount }
func (t *Texture) SampleCount() uint32            { return t.desc.SampleCount }
func (t *Texture) NumSubResources() uint32        { return t.desc.NumSubResources() }

func (t *Texture) Layout(sub uint32) hal.TextureLayout {
	if int(sub) >= len(t.subLayouts) {
		return hal.TextureLayoutUndefined
	}
	return t.subLayouts[sub]
}

func (t *Texture) SetLayout(sub uint32, l hal.TextureLayout) {
	if int(sub) < len(t.subLayouts) {
		t.subLayouts[sub] = l
	}
}

func (t *Texture) subBytes(sub uint32) []byte {
	if int(sub) >= len(t.subData) {
		return nil
	}
	return t.subData[sub]
}

// view returns the cached VkImageView for desc, creating and caching it on
// first request (spec.md §9's "cached view map per texture").
func (t *Texture) view(desc *hal.TextureViewDescriptor) *textureView {
	h := desc.Hash()
	if v, ok := t.views[h]; ok {
		return v
	}
	v := &textureView{handle: newHandle()}
	t.views[h] = v
	return v
}

type textureView struct{ handle hal.NativeHandle }

func (v *textureView) Native() hal.NativeHandle { return v.handle }

type sampler struct{ handle hal.NativeHandle }

func (s *sampler) Native() hal.NativeHandle { return s.handle }

type bindGroupLayout struct{ handle hal.NativeHandle }

func (l *bindGroupLayout) Native() hal.NativeHandle { return l.handle }

type bindGroup struct{ handle hal.NativeHandle }

func (g *bindGroup) Native() hal.NativeHandle { return g.handle }

// pipelineLayout carries push-constant ranges translated to Vulkan's
// VkPushConstantRange model: a single contiguous byte range per declared
// slot, offsets computed by prefix sum (spec.md §4.9, §9).
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
func (l *pipelineLayout) PushConstantOffset(i int) uint32 {
	if i < 0 || i >= len(l.offsets) {
		return 0
	}
	return l.offsets[i]
}
func (l *pipelineLayout) PushConstantSize(i int) uint32 {
	if i < 0 || i >= len(l.sizes) {
		return 0
	}
	return l.sizes[i]
}

type shaderModule struct{ handle hal.NativeHandle }

func (m *shaderModule) Native() hal.NativeHandle { return m.handle }

type computePipeline struct {
	handle hal.NativeHandle
	layout hal.PipelineLayout
}

func (p *computePipeline) Native() hal.NativeHandle   { return p.handle }
func (p *computePipeline) Layout() hal.PipelineLayout { return p.layout }

type renderPipeline struct {
	handle hal.NativeHandle
	layout hal.PipelineLayout
	desc   hal.RenderPipelineDescriptor
}

func (p *renderPipeline) Native() hal.NativeHandle   { return p.handle }
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
