package null

import "github.com/nullgfx/rhi/hal"

// Instance is the null backend's hal.Instance: always exactly one adapter.
type Instance struct{}

func (i *Instance) EnumerateAdapters(surfaceHint hal.Surface) []hal.ExposedAdapter {
	a := &Adapter{}
	return []hal.ExposedAdapter{{
		Adapter:  a,
		Info:     a.Info(),
		Features: a.Features(),
		Limits:   a.Limits(),
	}}
}

func (i *Instance) CreateSurface(nativeHandle any) (hal.Surface, error) {
	return newSurface(), nil
}

func (i *Instance) Destroy() {}

// API is the null backend's hal.Backend.
type API struct{}

func (API) Variant() hal.Variant { return hal.VariantNull }

func (API) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error) {
	return &Instance{}, nil
}
