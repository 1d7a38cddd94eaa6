package rhi

import "github.com/nullgfx/rhi/hal"

// PipelineLayoutDescriptor configures Device.CreatePipelineLayout. Only
// push-constant ranges are required to be wired by every backend; bind
// group layouts are carried but optional (spec.md §9 Open Question 1).
type PipelineLayoutDescriptor struct {
	Label              string
	BindGroupLayouts   []*BindGroupLayout
	PushConstantRanges []hal.PushConstantRange
}

// PipelineLayout carries push-constant ranges (and, optionally, bind group
// layouts) shared by one or more pipelines (spec.md §4.9).
type PipelineLayout struct {
	baseResource
	device           *Device
	hal              hal.PipelineLayout
	bindGroupLayouts []*BindGroupLayout
}

// CreatePipelineLayout creates a pipeline layout, holding a strong
// reference to every bind group layout it declares for its lifetime.
func (d *Device) CreatePipelineLayout(desc *PipelineLayoutDescriptor) (*PipelineLayout, error) {
	if desc == nil {
		return nil, d.invalid("Device.CreatePipelineLayout", "desc", "descriptor is nil")
	}
	halLayouts := make([]hal.BindGroupLayout, len(desc.BindGroupLayouts))
	for i, l := range desc.BindGroupLayouts {
		halLayouts[i] = l.halLayout()
	}
	var out *PipelineLayout
	err := d.withDevice(func(hd hal.Device) error {
		hl, err := hd.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
			Label:              desc.Label,
			BindGroupLayouts:   halLayouts,
			PushConstantRanges: desc.PushConstantRanges,
		})
		if err != nil {
			hal.Logger().Error("rhi: CreatePipelineLayout failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		for _, l := range desc.BindGroupLayouts {
			l.addRef()
		}
		out = &PipelineLayout{
			baseResource:     newBaseResource(desc.Label),
			device:           d,
			hal:              hl,
			bindGroupLayouts: append([]*BindGroupLayout(nil), desc.BindGroupLayouts...),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PushConstantOffset returns the byte offset of push-constant range i,
// computed by the backend as a prefix sum over declared sizes.
func (l *PipelineLayout) PushConstantOffset(i int) uint32 { return l.hal.PushConstantOffset(i) }

// PushConstantSize returns the declared byte size of push-constant range i.
func (l *PipelineLayout) PushConstantSize(i int) uint32 { return l.hal.PushConstantSize(i) }

func (l *PipelineLayout) halLayout() hal.PipelineLayout {
	if l == nil {
		return nil
	}
	return l.hal
}

// AddRef increments the reference count and returns the new value.
func (l *PipelineLayout) AddRef() int64 { return l.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred and every held bind group layout reference is released.
func (l *PipelineLayout) Release() int64 {
	n := l.release()
	if n == 0 {
		hl := l.hal
		dev := l.device
		bgls := l.bindGroupLayouts
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyPipelineLayout(hl)
				return nil
			})
			for _, bgl := range bgls {
				bgl.Release()
			}
		})
	}
	return n
}

// ShaderModule is a compiled or pre-compiled shader program.
type ShaderModule struct {
	baseResource
	device *Device
	hal    hal.ShaderModule
}

// CreateShaderModule creates a shader module from WGSL source or
// pre-compiled SPIR-V bytecode.
func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (*ShaderModule, error) {
	if desc == nil {
		return nil, d.invalid("Device.CreateShaderModule", "desc", "descriptor is nil")
	}
	var out *ShaderModule
	err := d.withDevice(func(hd hal.Device) error {
		hm, err := hd.CreateShaderModule(desc)
		if err != nil {
			hal.Logger().Error("rhi: CreateShaderModule failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		out = &ShaderModule{baseResource: newBaseResource(desc.Label), device: d, hal: hm}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *ShaderModule) halModule() hal.ShaderModule {
	if m == nil {
		return nil
	}
	return m.hal
}

// AddRef increments the reference count and returns the new value.
func (m *ShaderModule) AddRef() int64 { return m.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred to the owning device's deque.
func (m *ShaderModule) Release() int64 {
	n := m.release()
	if n == 0 {
		hm := m.hal
		dev := m.device
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyShaderModule(hm)
				return nil
			})
		})
	}
	return n
}

// ComputePipelineDescriptor configures Device.CreateComputePipeline.
type ComputePipelineDescriptor struct {
	Label  string
	Layout *PipelineLayout
	Shader *ShaderModule
}

// ComputePipeline binds a single compute shader stage. Holds a strong
// reference to its PipelineLayout (spec.md §4.9).
type ComputePipeline struct {
	baseResource
	device *Device
	hal    hal.ComputePipeline
	layout *PipelineLayout
}

// CreateComputePipeline creates a compute pipeline.
func (d *Device) CreateComputePipeline(desc *ComputePipelineDescriptor) (*ComputePipeline, error) {
	if desc == nil || desc.Layout == nil || desc.Shader == nil {
		return nil, d.invalid("Device.CreateComputePipeline", "desc", "descriptor, layout, or shader is nil")
	}
	var out *ComputePipeline
	err := d.withDevice(func(hd hal.Device) error {
		hp, err := hd.CreateComputePipeline(&hal.ComputePipelineDescriptor{
			Label:  desc.Label,
			Layout: desc.Layout.hal,
			Shader: desc.Shader.hal,
		})
		if err != nil {
			hal.Logger().Error("rhi: CreateComputePipeline failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		desc.Layout.addRef()
		out = &ComputePipeline{baseResource: newBaseResource(desc.Label), device: d, hal: hp, layout: desc.Layout}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ComputePipeline) Layout() *PipelineLayout { return p.layout }

func (p *ComputePipeline) halPipeline() hal.ComputePipeline {
	if p == nil {
		return nil
	}
	return p.hal
}

// AddRef increments the reference count and returns the new value.
func (p *ComputePipeline) AddRef() int64 { return p.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred and the held layout reference is released.
func (p *ComputePipeline) Release() int64 {
	n := p.release()
	if n == 0 {
		hp := p.hal
		dev := p.device
		layout := p.layout
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyComputePipeline(hp)
				return nil
			})
			layout.Release()
		})
	}
	return n
}

// RenderPipelineDescriptor configures Device.CreateRenderPipeline (spec.md
// §4.9): up to GPU_MAX_COLOR_ATTACHMENTS color targets, an optional
// depth-stencil target, rasterizer/multisample/topology state, and a
// vertex layout of up to GPU_MAX_VERTEX_BUFFER_BINDINGS buffers.
type RenderPipelineDescriptor struct {
	Label              string
	Layout             *PipelineLayout
	VertexShader       *ShaderModule
	FragmentShader     *ShaderModule
	ColorTargets       []hal.ColorTargetState
	DepthStencil       *hal.DepthStencilState
	Rasterizer         hal.RasterizerState
	Multisample        hal.MultisampleState
	Topology           hal.PrimitiveTopology
	PatchControlPoints uint32
	VertexBuffers      []hal.VertexBufferLayout
}

func (desc *RenderPipelineDescriptor) toHAL() *hal.RenderPipelineDescriptor {
	return &hal.RenderPipelineDescriptor{
		Label:              desc.Label,
		Layout:             desc.Layout.halLayout(),
		VertexShader:       desc.VertexShader.halModule(),
		FragmentShader:     desc.FragmentShader.halModule(),
		ColorTargets:       desc.ColorTargets,
		DepthStencil:       desc.DepthStencil,
		Rasterizer:         desc.Rasterizer,
		Multisample:        desc.Multisample,
		Topology:           desc.Topology,
		PatchControlPoints: desc.PatchControlPoints,
		VertexBuffers:      desc.VertexBuffers,
	}
}

// RenderPipeline bundles the fixed-function and programmable state of one
// draw configuration. Holds a strong reference to its PipelineLayout
// (spec.md §4.9).
type RenderPipeline struct {
	baseResource
	device *Device
	hal    hal.RenderPipeline
	layout *PipelineLayout
}

// CreateRenderPipeline creates a render pipeline exceeding
// hal.GPUMaxColorAttachments color targets or hal.GPUMaxVertexBufferBindings
// vertex buffers is a validation error rather than a silent clamp.
func (d *Device) CreateRenderPipeline(desc *RenderPipelineDescriptor) (*RenderPipeline, error) {
	if desc == nil || desc.Layout == nil {
		return nil, d.invalid("Device.CreateRenderPipeline", "desc", "descriptor or layout is nil")
	}
	if len(desc.ColorTargets) > hal.GPUMaxColorAttachments {
		return nil, d.invalid("Device.CreateRenderPipeline", "ColorTargets", "exceeds GPU_MAX_COLOR_ATTACHMENTS")
	}
	if len(desc.VertexBuffers) > hal.GPUMaxVertexBufferBindings {
		return nil, d.invalid("Device.CreateRenderPipeline", "VertexBuffers", "exceeds GPU_MAX_VERTEX_BUFFER_BINDINGS")
	}
	var out *RenderPipeline
	err := d.withDevice(func(hd hal.Device) error {
		hp, err := hd.CreateRenderPipeline(desc.toHAL())
		if err != nil {
			hal.Logger().Error("rhi: CreateRenderPipeline failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		desc.Layout.addRef()
		out = &RenderPipeline{baseResource: newBaseResource(desc.Label), device: d, hal: hp, layout: desc.Layout}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *RenderPipeline) Layout() *PipelineLayout { return p.layout }

func (p *RenderPipeline) halPipeline() hal.RenderPipeline {
	if p == nil {
		return nil
	}
	return p.hal
}

// AddRef increments the reference count and returns the new value.
func (p *RenderPipeline) AddRef() int64 { return p.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred and the held layout reference is released.
func (p *RenderPipeline) Release() int64 {
	n := p.release()
	if n == 0 {
		hp := p.hal
		dev := p.device
		layout := p.layout
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyRenderPipeline(hp)
				return nil
			})
			layout.Release()
		})
	}
	return n
}
