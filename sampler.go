package rhi

import "github.com/nullgfx/rhi/hal"

// Sampler is a reference-counted, immutable texture sampler.
type Sampler struct {
	baseResource
	device *Device
	hal    hal.Sampler
}

// CreateSampler creates an immutable texture sampler.
func (d *Device) CreateSampler(desc *hal.SamplerDescriptor) (*Sampler, error) {
	if desc == nil {
		desc = &hal.SamplerDescriptor{}
	}
	var out *Sampler
	err := d.withDevice(func(hd hal.Device) error {
		hs, err := hd.CreateSampler(desc)
		if err != nil {
			hal.Logger().Error("rhi: CreateSampler failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		out = &Sampler{baseResource: newBaseResource(desc.Label), device: d, hal: hs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Sampler) halSampler() hal.Sampler {
	if s == nil {
		return nil
	}
	return s.hal
}

// AddRef increments the reference count and returns the new value.
func (s *Sampler) AddRef() int64 { return s.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred to the owning device's deque.
func (s *Sampler) Release() int64 {
	n := s.release()
	if n == 0 {
		hs := s.hal
		dev := s.device
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroySampler(hs)
				return nil
			})
		})
	}
	return n
}
