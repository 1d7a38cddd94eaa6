package null

import "github.com/nullgfx/rhi/hal"

// Device is the null backend's hal.Device: every creation call succeeds
// immediately and allocates real host memory; destruction frees it
// immediately (the null backend has no in-flight-GPU-work concept of its
// own, so rhi's deferred-destruction sweep is still exercised even though
// the underlying free is synchronous).
type Device struct {
	queues map[hal.QueueType]*Queue
}

func newDevice() *Device {
	d := &Device{queues: make(map[hal.QueueType]*Queue)}
	for _, t := range []hal.QueueType{hal.QueueGraphics, hal.QueueCompute, hal.QueueCopy} {
		d.queues[t] = newQueue(t)
	}
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

func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	return newBuffer(desc), nil
}

func (d *Device) DestroyBuffer(hal.Buffer) {}

func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	return newTexture(desc), nil
}

func (d *Device) DestroyTexture(hal.Texture) {}

func (d *Device) CreateTextureView(t hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	return &textureView{handle: newHandle()}, nil
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
	return &shaderModule{handle: newHandle()}, nil
}

func (d *Device) DestroyShaderModule(hal.ShaderModule) {}

func (d *Device) CreateComputePipeline(desc *hal.ComputePipelineDescriptor) (hal.ComputePipeline, error) {
	return &computePipeline{handle: newHandle(), layout: desc.Layout}, nil
}

func (d *Device) DestroyComputePipeline(hal.ComputePipeline) {}

func (d *Device) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	return &renderPipeline{handle: newHandle(), layout: desc.Layout}, nil
}

func (d *Device) DestroyRenderPipeline(hal.RenderPipeline) {}

func (d *Device) CreateQueryHeap(desc *hal.QueryHeapDescriptor) (hal.QueryHeap, error) {
	return &queryHeap{handle: newHandle(), queryType: desc.Type, count: desc.Count, results: make([]uint64, desc.Count)}, nil
}

func (d *Device) DestroyQueryHeap(hal.QueryHeap) {}

func (d *Device) WaitIdle() error { return nil }

func (d *Device) Destroy() {}
