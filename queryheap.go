package rhi

import "github.com/nullgfx/rhi/hal"

// QueryHeap is a reference-counted pool of query slots (spec.md §4.12).
type QueryHeap struct {
	baseResource
	device *Device
	hal    hal.QueryHeap
}

// CreateQueryHeap creates a pool of desc.Count query slots of desc.Type.
// Fails with ErrFeatureNotSupported if desc.Type requires an adapter
// feature (Timestamp -> FeatureTimestampQuery, PipelineStatistics ->
// FeaturePipelineStatisticsQuery) that was not enabled when the device was
// opened (spec.md §4.12).
func (d *Device) CreateQueryHeap(desc *hal.QueryHeapDescriptor) (*QueryHeap, error) {
	if desc == nil {
		return nil, d.invalid("Device.CreateQueryHeap", "desc", "descriptor is nil")
	}
	switch desc.Type {
	case hal.QueryTypeTimestamp:
		if !d.adapter.HasFeature(hal.FeatureTimestampQuery) {
			d.reportError(hal.ErrFeatureNotSupported)
			hal.Logger().Error("rhi: CreateQueryHeap failed", "label", desc.Label, "error", hal.ErrFeatureNotSupported)
			return nil, hal.ErrFeatureNotSupported
		}
	case hal.QueryTypePipelineStatistics:
		if !d.adapter.HasFeature(hal.FeaturePipelineStatisticsQuery) {
			d.reportError(hal.ErrFeatureNotSupported)
			hal.Logger().Error("rhi: CreateQueryHeap failed", "label", desc.Label, "error", hal.ErrFeatureNotSupported)
			return nil, hal.ErrFeatureNotSupported
		}
	}
	var out *QueryHeap
	err := d.withDevice(func(hd hal.Device) error {
		hh, err := hd.CreateQueryHeap(desc)
		if err != nil {
			hal.Logger().Error("rhi: CreateQueryHeap failed", "label", desc.Label, "error", err)
			d.reportError(err)
			return err
		}
		out = &QueryHeap{baseResource: newBaseResource(desc.Label), device: d, hal: hh}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (h *QueryHeap) Native() hal.NativeHandle { return h.hal.Native() }
func (h *QueryHeap) Type() hal.QueryType      { return h.hal.Type() }
func (h *QueryHeap) Count() uint32            { return h.hal.Count() }

func (h *QueryHeap) halHeap() hal.QueryHeap {
	if h == nil {
		return nil
	}
	return h.hal
}

// AddRef increments the reference count and returns the new value.
func (h *QueryHeap) AddRef() int64 { return h.addRef() }

// Release decrements the reference count; at zero, native destruction is
// deferred to the owning device's deque.
func (h *QueryHeap) Release() int64 {
	n := h.release()
	if n == 0 {
		hh := h.hal
		dev := h.device
		dev.scheduleDestroy(func() {
			_ = dev.withDevice(func(hd hal.Device) error {
				hd.DestroyQueryHeap(hh)
				return nil
			})
		})
	}
	return n
}
