package vk

import (
	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/internal/upload"
)

// Device is the Vulkan-class hal.Device. It owns one Queue per type the
// adapter exposes and the copy/upload allocator from spec.md §4.4; unlike
// hal/dx12 it has no descriptor heap allocator, since spec.md §4.3 scopes
// that component to the D3D12-class backend only.
type Device struct {
	adapter *Adapter
	queues  map[hal.QueueType]*Queue
	upload  *upload.Allocator
}

func newDevice(a *Adapter, desc *hal.DeviceDescriptor) *Device {
	d := &Device{adapter: a, queues: make(map[hal.QueueType]*Queue)}
	for _, t := range []hal.QueueType{hal.QueueGraphics, hal.QueueCompute, hal.QueueCopy} {
		d.queues[t] = newQueue(t)
	}
	d.upload = upload.NewAllocator(func(size uint64) (*upload.Context, error) {
		return &upload.Context{Size: size, Data: make([]byte, size), Native: newHandle()}, nil
	})
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

// uploadToBuffer implements spec.md §4.4's upload path for a private-memory
// buffer's initial data: acquire a staging context, memcpy into it, and
// (since this condensed backend executes "submission" synchronously)
// immediately copy through to the destination, marking the context
// reusable right away.
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
		hal.Logger().Error("vk: CreateBuffer failed", "error", err, "label", desc.Label)
		return nil, err
	}
	return b, nil
}

func (d *Device) DestroyBuffer(hal.Buffer) {}

func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	t, err := newTexture(d, desc)
	if err != nil {
		hal.Logger().Error("vk: CreateTexture failed", "error", err, "label", desc.Label)
		return nil, err
	}
	return t, nil
}

func (d *Device) DestroyTexture(hal.Texture) {}

func (d *Device) CreateTextureView(t hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	vt, ok := t.(*Texture)
	if !ok {
		return nil, hal.ErrInvalidOperation
	}
	return vt.view(desc), nil
}

func (d *Device) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	return &sampler{handle: newHandle()}, nil
}
func (d *Device) DestroySampler(hal.Sampler) {}

func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	return &bindGroupLayout{handle: newHandle()}, nil
}
func (d *Device) DestroyBindGroupLayout(hal.BindGroupLayout) {}

func (d *Device) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	return &bindGroup{handle: newHandle()}, nil
}
func (d *Device) DestroyBindGroup(hal.BindGroup) {}

func (d *Device) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	return newPipelineLayout(desc), nil
}
func (d *Device) DestroyPipelineLayout(hal.PipelineLayout) {}

func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	// WGSL source is cross-compiled to SPIR-V via naga; pre-compiled SPIRV
	// bytecode is accepted as-is (spec.md §4.9's ShaderModuleDescriptor).
	if len(desc.SPIRV) == 0 && desc.WGSL != "" {
		if _, err := compileWGSLToSPIRV(desc.WGSL, desc.EntryPoint); err != nil {
			hal.Logger().Error("vk: WGSL->SPIR-V cross-compile failed", "error", err, "label", desc.Label)
			return nil, err
		}
	}
	return &shaderModule{handle: newHandle()}, nil
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
