package rhi

import (
	"sync"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

// Texture is a reference-counted GPU texture with per-subresource layout
// tracking (spec.md §3). A texture obtained as a surface's current
// backbuffer is surfaceOwned: its lifetime is driven by Surface.Configure
// reconfiguration, not by the application's refcount, since the surface
// itself owns the swapchain images (spec.md §4.10).
type Texture struct {
	baseResource
	device       *Device
	hal          hal.Texture
	surfaceOwned bool

	viewMu sync.Mutex
	views  map[uint64]*TextureView
}

// CreateTexture creates a GPU texture, uploading desc.InitialData and
// transitioning to desc.InitialLayout through the backend's copy/upload
// allocator when non-empty (spec.md §4.4).
func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (*Texture, error) {
	if desc == nil {
		return nil, d.invalid("Device.CreateTexture", "desc", "descriptor is nil")
	}
	var out *Texture
	err := d.withDevice(func(hd hal.Device) error {
		ht, err := hd.CreateTexture(desc)
		if err != nil {
			hal.Logger().Error("rhi: CreateTexture failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		out = &Texture{baseResource: newBaseResource(desc.Label), device: d, hal: ht}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Texture) Native() hal.NativeHandle           { return t.hal.Native() }
func (t *Texture) Format() pixelformat.Format         { return t.hal.Format() }
func (t *Texture) Dimension() hal.TextureDimension    { return t.hal.Dimension() }
func (t *Texture) Width() uint32                      { return t.hal.Width() }
func (t *Texture) Height() uint32                     { return t.hal.Height() }
func (t *Texture) DepthOrArrayLayers() uint32         { return t.hal.DepthOrArrayLayers() }
func (t *Texture) MipLevelCount() uint32              { return t.hal.MipLevelCount() }
func (t *Texture) SampleCount() uint32                { return t.hal.SampleCount() }
func (t *Texture) NumSubResources() uint32            { return t.hal.NumSubResources() }
func (t *Texture) Layout(subResource uint32) hal.TextureLayout { return t.hal.Layout(subResource) }

// halTexture exposes the underlying hal.Texture for command-encoding calls
// elsewhere in this package. Returns nil for a nil *Texture so optional
// attachment fields convert cleanly.
func (t *Texture) halTexture() hal.Texture {
	if t == nil {
		return nil
	}
	return t.hal
}

// AddRef increments the reference count and returns the new value.
func (t *Texture) AddRef() int64 { return t.addRef() }

// Release decrements the reference count; at zero (and only for textures
// the application created, not a surface's backbuffer) native destruction
// is scheduled on the owning device's deferred-destruction deque.
func (t *Texture) Release() int64 {
	n := t.release()
	if n == 0 && !t.surfaceOwned {
		ht := t.hal
		dev := t.device
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyTexture(ht)
				return nil
			})
		})
	}
	return n
}

// CreateView returns a cached view for desc, creating and caching it on
// first request (spec.md §9's "cached view map per texture"). Views do
// not participate in the texture's reference count; they are invalidated
// in bulk when the texture itself is destroyed.
func (t *Texture) CreateView(desc *hal.TextureViewDescriptor) (*TextureView, error) {
	if desc == nil {
		desc = &hal.TextureViewDescriptor{}
	}
	key := desc.Hash()

	t.viewMu.Lock()
	if t.views == nil {
		t.views = make(map[uint64]*TextureView)
	}
	if v, ok := t.views[key]; ok {
		t.viewMu.Unlock()
		return v, nil
	}
	t.viewMu.Unlock()

	var hv hal.TextureView
	err := t.device.withDevice(func(hd hal.Device) error {
		var err error
		hv, err = hd.CreateTextureView(t.hal, desc)
		return err
	})
	if err != nil {
		hal.Logger().Error("rhi: CreateTextureView failed", "error", err)
		return nil, err
	}

	v := &TextureView{device: t.device, texture: t, hal: hv}
	t.viewMu.Lock()
	t.views[key] = v
	t.viewMu.Unlock()
	return v, nil
}

// TextureView is a lazily-created, cached view into a Texture subresource
// range. It has no reference count of its own: its lifetime is tied to
// the Texture that created it (spec.md §9).
type TextureView struct {
	device  *Device
	texture *Texture
	hal     hal.TextureView
}

func (v *TextureView) Texture() *Texture { return v.texture }

func (v *TextureView) halView() hal.TextureView {
	if v == nil {
		return nil
	}
	return v.hal
}
