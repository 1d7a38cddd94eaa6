//go:build windows

package dx12

import (
	"sync/atomic"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

var nextHandle atomic.Uint64

func newHandle() hal.NativeHandle { return nextHandle.Add(1) }

// Buffer backs an ID3D12Resource in a COMMITTED heap. As with hal/vk,
// there is no native device behind this condensed backend to allocate
// from, so the resource's bytes live in host memory; MemoryUpload and
// MemoryReadback buffers are persistently mapped (D3D12's Map/Unmap with
// a nil read-range), MemoryPrivate buffers go through the upload
// allocator and its internal descriptor-less copy queue.
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

// Texture backs an ID3D12Resource of dimension TEXTURE1D/2D/3D. Per-
// subresource layout tracking stands in for D3D12_RESOURCE_STATES, one
// entry per (mip, array slice) exactly as spec.md §3 describes.
type Texture struct {
	handle     hal.NativeHandle
	desc       hal.TextureDescriptor
	subLayouts []hal.TextureLayout
	subData    [][]byte
	views      map[uint64]*textureView
	rtvIndex   int
	dsvIndex   int
	srvIndex   int
}

func newTexture(d *Device, desc *hal.TextureDescriptor) (*Texture, error) {
	n := desc.NumSubResources()
	t := &Texture{
		handle:     newHandle(),
		desc:       *desc,
		subLayouts: make([]hal.TextureLayout, n),
		subData:    make([][]byte, n),
		views:      make(map[uint64]*textureView),
		rtvIndex:   -1,
		dsvIndex:   -1,
		srvIndex:   -1,
	}
	info := pixelformat.SurfaceInfo(desc.Format, desc.Width, desc.Height)
	for i := range t.subData {
		t.subData[i] = make([]byte, info.SlicePitch)
	}
	for i := range t.subLayouts {
		t.subLayouts[i] = hal.TextureLayoutUndefined
	}
	if d != nil {
		if desc.Usage&hal.TextureUsageRenderTarget != 0 {
			if idx, err := d.rtvHeap.Allocate(1); err == nil {
				t.rtvIndex = int(idx)
			}
		}
		if desc.Usage&hal.TextureUsageDepthStencil != 0 {
			if idx, err := d.dsvHeap.Allocate(1); err == nil {
				t.dsvIndex = int(idx)
			}
		}
		if desc.Usage&hal.TextureUsageShaderResource != 0 {
			if idx, err := d.cbvSrvUavHeap.Allocate(1); err == nil {
				t.srvIndex = int(idx)
			}
		}
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

func (t *Texture) Native() hal.NativeHandle        { return t.handle }
func (t *Texture) Format() pixelformat.Format      { return t.desc.Format }
func (t *Texture) Dimension() hal.TextureDimension { return t.desc.Dimension }
func (t *Texture) Width() uint32                   { return t.desc.Width }
func (t *Texture) Height() uint32                  { return t.desc.Height }
func (t *Texture) DepthOrArrayLayers() uint32      { return t.desc.DepthOrArrayLayers }
func (t *Texture) MipLevelCount() uint32           { return t.desc.MipLevelCount }
func (t *Texture) SampleCount() uint32             { return t.desc.SampleCount }
func (t *Texture) NumSubResources() uint32         { return t.desc.NumSubResources() }

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

// view returns the cached view for desc, creating it on first request.
// No new heap slot is allocated: every view of t refers to the texture's
// own SRV slot in the CBV/SRV/UAV heap (-1 when t has no shader-resource
// usage).
func (t *Texture) view(desc *hal.TextureViewDescriptor) *textureView {
	h := desc.Hash()
	if v, ok := t.views[h]; ok {
		return v
	}
	v := &textureView{handle: newHandle(), heapIndex: t.srvIndex}
	t.views[h] = v
	return v
}

type textureView struct {
	handle    hal.NativeHandle
	heapIndex int
}

func (v *textureView) Native() hal.NativeHandle { return v.handle }

type sampler struct {
	handle    hal.NativeHandle
	heapIndex int
}

func (s *sampler) Native() hal.NativeHandle { return s.handle }

type bindGroupLayout struct{ handle hal.NativeHandle }

func (l *bindGroupLayout) Native() hal.NativeHandle { return l.handle }

// bindGroup holds the base index of its descriptor-table range within the
// device's shader-visible CBV/SRV/UAV heap, populated by Device.CreateBindGroup
// via descheap.Allocator.CopyToShaderVisible.
type bindGroup struct {
	handle hal.NativeHandle
	base   int
	count  int
}

func (g *bindGroup) Native() hal.NativeHandle { return g.handle }

// pipelineLayout carries push-constant ranges translated to D3D12 root
// constants: one root parameter per declared slot, offsets computed by
// prefix sum in bytes (spec.md §4.9, §9).
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

type shaderModule struct {
	handle hal.NativeHandle
	hlsl   string
}

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
