//go:build windows

package dx12

import (
	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/internal/descheap"
	"github.com/nullgfx/rhi/internal/upload"
)

// Device is the D3D12-class hal.Device. Unlike hal/vk it owns the
// descriptor allocator quartet from spec.md §4.3 (RTV/DSV/CBV-SRV-UAV/
// sampler) in addition to the copy/upload allocator from spec.md §4.4.
type Device struct {
	adapter       *Adapter
	queues        map[hal.QueueType]*Queue
	upload        *upload.Allocator
	rtvHeap       *descheap.Allocator
	dsvHeap       *descheap.Allocator
	cbvSrvUavHeap *descheap.Allocator
	samplerHeap   *descheap.Allocator
}

func newDevice(a *Adapter, desc *hal.DeviceDescriptor) *Device {
	d := &Device{adapter: a, queues: make(map[hal.QueueType]*Queue)}
	for _, t := range []hal.QueueType{hal.QueueGraphics, hal.QueueCompute, hal.QueueCopy} {
		d.queues[t] = newQueue(t)
	}
	d.upload = upload.NewAllocator(func(size uint64) (*upload.Context, error) {
		return &upload.Context{Size: size, Data: make([]byte, size), Native: newHandle()}, nil
	})
	heaps, err := newDeviceHeaps()
	if err != nil {
		// descheap.New only fails on the initial create callback, which
		// never errors for the host-backed heap above.
		heaps = &deviceHeaps{}
	}
	d.rtvHeap = heaps.rtv
	d.dsvHeap = heaps.dsv
	d.cbvSrvUavHeap = heaps.cbvSrvUav
	d.samplerHeap = heaps.sampler
	return d
}

func (d *Device) Queue(t hal.QueueType) (hal.Queue, bool) {
	q, ok := d.queues[t]
	return q, ok
}

func (d *Device) QueueTypes() []hal.QueueType {
	out := make([]hal.QueueType, 0, len(d.queues))
	for t := range d.queues {
		out = append(out, t)
	}
	return out
}

// uploadToBuffer mirrors hal/vk's synchronous staging-context copy
// (spec.md §4.4): this condensed backend executes "submission"
// immediately, so the context is reusable the instant the copy lands.
func (d *Device) uploadToBuffer(b *Buffer, offset uint64, data []byte) error {
	ctx, err := d.upload.Allocate(uint64(len(data)))
	if err != nil {
		return hal.ErrOutOfMemory
	}
	copy(ctx.Data, data)
	copy(b.data[offset:], ctx.Data[:len(data)])
	upload.MarkSubmitted(ctx, 0, func() uint64 { return 0 })
	return nil
}

func (d *Device) uploadToTexture(t *Texture, sub uint32, data []byte) error {
	ctx, err := d.upload.Allocate(uint64(len(data)))
	if err != nil {
		return hal.ErrOutOfMemory
	}
	copy(ctx.Data, data)
	dst := t.subBytes(sub)
	n := len(dst)
	if len(ctx.Data) < n {
		n = len(ctx.Data)
	}
	copy(dst[:n], ctx.Data[:n])
	upload.MarkSubmitted(ctx, 0, func() uint64 { return 0 })
	return nil
}

func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	b, err := newBuffer(d, desc)
	if err != nil {
		hal.Logger().Error("dx12: CreateBuffer failed", "error", err, "label", desc.Label)
		return nil, err
	}
	return b, nil
}

func (d *Device) DestroyBuffer(hal.Buffer) {}

func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	t, err := newTexture(d, desc)
	if err != nil {
		hal.Logger().Error("dx12: CreateTexture failed", "error", err, "label", desc.Label)
		return nil, err
	}
	return t, nil
}

func (d *Device) DestroyTexture(tex hal.Texture) {
	t, ok := tex.(*Texture)
	if !ok {
		return
	}
	if t.rtvIndex >= 0 {
		d.rtvHeap.Release(uint32(t.rtvIndex), 1)
	}
	if t.dsvIndex >= 0 {
		d.dsvHeap.Release(uint32(t.dsvIndex), 1)
	}
	if t.srvIndex >= 0 {
		d.cbvSrvUavHeap.Release(uint32(t.srvIndex), 1)
	}
}

func (d *Device) CreateTextureView(t hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	vt, ok := t.(*Texture)
	if !ok {
		return nil, hal.ErrInvalidOperation
	}
	return vt.view(desc), nil
}

func (d *Device) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	idx, err := d.samplerHeap.Allocate(1)
	if err != nil {
		return nil, err
	}
	return &sampler{handle: newHandle(), heapIndex: int(idx)}, nil
}

func (d *Device) DestroySampler(s hal.Sampler) {
	smp, ok := s.(*sampler)
	if !ok {
		return
	}
	d.samplerHeap.Release(uint32(smp.heapIndex), 1)
}

func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	return &bindGroupLayout{handle: newHandle()}, nil
}
func (d *Device) DestroyBindGroupLayout(hal.BindGroupLayout) {}

// CreateBindGroup allocates a contiguous descriptor-table range in the
// CBV/SRV/UAV heap sized to the binding count (at least one slot) and
// copies that range from the CPU-side heap to the shader-visible one. The
// bound resources' descriptors are not written into the range: desc.Entries
// only determines its size.
func (d *Device) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	count := uint32(len(desc.Entries))
	if count == 0 {
		count = 1
	}
	base, err := d.cbvSrvUavHeap.Allocate(count)
	if err != nil {
		return nil, err
	}
	d.cbvSrvUavHeap.CopyToShaderVisible(base, count)
	return &bindGroup{handle: newHandle(), base: int(base), count: int(count)}, nil
}

func (d *Device) DestroyBindGroup(g hal.BindGroup) {
	bg, ok := g.(*bindGroup)
	if !ok {
		return
	}
	d.cbvSrvUavHeap.Release(uint32(bg.base), uint32(bg.count))
}

func (d *Device) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	return newPipelineLayout(desc), nil
}
func (d *Device) DestroyPipelineLayout(hal.PipelineLayout) {}

func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	// WGSL source takes the naga -> HLSL path (see shader.go); pre-compiled
	// DXBC bytecode carried in SPIRV's byte-blob field is accepted as-is.
	m := &shaderModule{handle: newHandle()}
	if len(desc.SPIRV) == 0 && desc.WGSL != "" {
		hlslSource, err := compileWGSLToHLSL(desc.WGSL, desc.EntryPoint)
		if err != nil {
			hal.Logger().Error("dx12: WGSL->HLSL cross-compile failed", "error", err, "label", desc.Label)
			return nil, err
		}
		m.hlsl = hlslSource
	}
	return m, nil
}
func (d *Device) DestroyShaderModule(hal.ShaderModule) {}

func (d *Device) CreateComputePipeline(desc *hal.ComputePipelineDescriptor) (hal.ComputePipeline, error) {
	return &computePipeline{handle: newHandle(), layout: desc.Layout}, nil
}
func (d *Device) DestroyComputePipeline(hal.ComputePipeline) {}

func (d *Device) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	return &renderPipeline{handle: newHandle(), layout: desc.Layout, desc: *desc}, nil
}
func (d *Device) DestroyRenderPipeline(hal.RenderPipeline) {}

func (d *Device) CreateQueryHeap(desc *hal.QueryHeapDescriptor) (hal.QueryHeap, error) {
	return &queryHeap{handle: newHandle(), queryType: desc.Type, count: desc.Count, results: make([]uint64, desc.Count)}, nil
}
func (d *Device) DestroyQueryHeap(hal.QueryHeap) {}

func (d *Device) WaitIdle() error { return nil }
func (d *Device) Destroy()        {}
