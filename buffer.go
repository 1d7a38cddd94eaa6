package rhi

import "github.com/nullgfx/rhi/hal"

// Buffer is a reference-counted GPU buffer (spec.md §3). MappedPointer is
// non-nil only for MemoryUpload/MemoryReadback buffers.
type Buffer struct {
	baseResource
	device *Device
	hal    hal.Buffer
}

// CreateBuffer creates a GPU buffer, uploading desc.InitialData through
// the backend's copy/upload allocator when non-empty (spec.md §4.4).
func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (*Buffer, error) {
	if desc == nil {
		return nil, d.invalid("Device.CreateBuffer", "desc", "descriptor is nil")
	}
	var out *Buffer
	err := d.withDevice(func(hd hal.Device) error {
		hb, err := hd.CreateBuffer(desc)
		if err != nil {
			hal.Logger().Error("rhi: CreateBuffer failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		out = &Buffer{baseResource: newBaseResource(desc.Label), device: d, hal: hb}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Buffer) Size() uint64              { return b.hal.Size() }
func (b *Buffer) Usage() hal.BufferUsage    { return b.hal.Usage() }
func (b *Buffer) MemoryType() hal.MemoryType { return b.hal.MemoryType() }
func (b *Buffer) MappedPointer() []byte     { return b.hal.MappedPointer() }
func (b *Buffer) DeviceAddress() uint64     { return b.hal.DeviceAddress() }

// halBuffer exposes the underlying hal.Buffer for command-encoding calls
// elsewhere in this package.
func (b *Buffer) halBuffer() hal.Buffer {
	if b == nil {
		return nil
	}
	return b.hal
}

// AddRef increments the reference count and returns the new value.
func (b *Buffer) AddRef() int64 { return b.addRef() }

// Release decrements the reference count; at zero, native destruction is
// scheduled on the owning device's deferred-destruction deque rather than
// performed immediately (spec.md §4.2). Returns the new count.
func (b *Buffer) Release() int64 {
	n := b.release()
	if n == 0 {
		hb := b.hal
		dev := b.device
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyBuffer(hb)
				return nil
			})
		})
	}
	return n
}
