package rhi

import "github.com/nullgfx/rhi/hal"

// BindGroupLayout declares a set of binding slots. Retained per spec.md §9
// Open Question 1: the descriptor protocol is declared but not required to
// be wired by every backend (hal/null validates and no-ops; hal/vk,
// hal/dx12 wire it to descriptor sets/heaps).
type BindGroupLayout struct {
	baseResource
	device *Device
	hal    hal.BindGroupLayout
}

// CreateBindGroupLayout creates a bind group layout.
func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (*BindGroupLayout, error) {
	if desc == nil {
		return nil, d.invalid("Device.CreateBindGroupLayout", "desc", "descriptor is nil")
	}
	var out *BindGroupLayout
	err := d.withDevice(func(hd hal.Device) error {
		hl, err := hd.CreateBindGroupLayout(desc)
		if err != nil {
			hal.Logger().Error("rhi: CreateBindGroupLayout failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		out = &BindGroupLayout{baseResource: newBaseResource(desc.Label), device: d, hal: hl}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (l *BindGroupLayout) halLayout() hal.BindGroupLayout {
	if l == nil {
		return nil
	}
	return l.hal
}

// AddRef increments the reference count and returns the new value.
func (l *BindGroupLayout) AddRef() int64 { return l.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred to the owning device's deque.
func (l *BindGroupLayout) Release() int64 {
	n := l.release()
	if n == 0 {
		hl := l.hal
		dev := l.device
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyBindGroupLayout(hl)
				return nil
			})
		})
	}
	return n
}

// BindGroupEntry binds one concrete resource to a BindGroupLayout slot.
type BindGroupEntry struct {
	Binding uint32
	Buffer  *Buffer
	Texture *Texture
	Sampler *Sampler
	Offset  uint64
	Size    uint64
}

func (e BindGroupEntry) toHAL() hal.BindGroupEntry {
	return hal.BindGroupEntry{
		Binding: e.Binding,
		Buffer:  e.Buffer.halBuffer(),
		Texture: e.Texture.halTexture(),
		Sampler: e.Sampler.halSampler(),
		Offset:  e.Offset,
		Size:    e.Size,
	}
}

// BindGroupDescriptor configures Device.CreateBindGroup.
type BindGroupDescriptor struct {
	Label   string
	Layout  *BindGroupLayout
	Entries []BindGroupEntry
}

// BindGroup binds concrete resources to a BindGroupLayout's slots.
type BindGroup struct {
	baseResource
	device *Device
	hal    hal.BindGroup
	layout *BindGroupLayout
}

// CreateBindGroup creates a bind group, holding a strong reference to its
// layout for the bind group's lifetime (spec.md §3's uniform lifetime
// protocol applied to the declared descriptor-binding surface).
func (d *Device) CreateBindGroup(desc *BindGroupDescriptor) (*BindGroup, error) {
	if desc == nil || desc.Layout == nil {
		return nil, d.invalid("Device.CreateBindGroup", "desc", "descriptor or layout is nil")
	}
	halEntries := make([]hal.BindGroupEntry, len(desc.Entries))
	for i, e := range desc.Entries {
		halEntries[i] = e.toHAL()
	}
	var out *BindGroup
	err := d.withDevice(func(hd hal.Device) error {
		hg, err := hd.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:   desc.Label,
			Layout:  desc.Layout.hal,
			Entries: halEntries,
		})
		if err != nil {
			hal.Logger().Error("rhi: CreateBindGroup failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		desc.Layout.addRef()
		out = &BindGroup{baseResource: newBaseResource(desc.Label), device: d, hal: hg, layout: desc.Layout}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (g *BindGroup) Layout() *BindGroupLayout { return g.layout }

// AddRef increments the reference count and returns the new value.
func (g *BindGroup) AddRef() int64 { return g.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred and the held layout reference is released.
func (g *BindGroup) Release() int64 {
	n := g.release()
	if n == 0 {
		hg := g.hal
		dev := g.device
		layout := g.layout
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyBindGroup(hg)
				return nil
			})
			layout.Release()
		})
	}
	return n
}
