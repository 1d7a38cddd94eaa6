package rhi

import (
	"github.com/nullgfx/rhi/hal"
)

// NewFactory requires at least one backend package to be registered first.
// Applications blank-import the backend(s) they want:
//
//	import (
//	    _ "github.com/nullgfx/rhi/hal/vk"     // Vulkan-class
//	    _ "github.com/nullgfx/rhi/hal/dx12"   // D3D12-class
//	    _ "github.com/nullgfx/rhi/hal/null"   // headless, for tests
//	)
//
// FactoryDescriptor configures NewFactory (spec.md §4.11).
type FactoryDescriptor struct {
	// PreferredBackend selects a specific backend, or hal.VariantUndefined
	// to pick the first available in the order D3D12 -> Metal -> Vulkan ->
	// WebGPU -> Null.
	PreferredBackend hal.Variant
	Validation       hal.ValidationMode
}

// Factory is the backend-typed root of the RHI: a regular owned object
// threaded through the API, never a package-level singleton (spec.md §9's
// "global mutable state is explicitly avoided").
type Factory struct {
	variant  hal.Variant
	backend  hal.Backend
	instance hal.Instance
}

// NewFactory creates a Factory for desc.PreferredBackend (or the default
// selection order when Undefined), blank desc meaning VariantUndefined
// with validation disabled.
func NewFactory(desc *FactoryDescriptor) (*Factory, error) {
	if desc == nil {
		desc = &FactoryDescriptor{}
	}
	backend, err := resolveBackend(desc.PreferredBackend)
	if err != nil {
		hal.Logger().Error("rhi: no backend available", "error", err)
		return nil, ErrNoBackends
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Validation: desc.Validation})
	if err != nil {
		hal.Logger().Error("rhi: CreateInstance failed", "backend", backend.Variant(), "error", err)
		return nil, err
	}
	return &Factory{variant: backend.Variant(), backend: backend, instance: instance}, nil
}

func resolveBackend(v hal.Variant) (hal.Backend, error) {
	if v == hal.VariantUndefined {
		return hal.SelectBestBackend()
	}
	return hal.CreateBackend(v)
}

// Backend reports which Variant this Factory was created for.
func (f *Factory) Backend() hal.Variant { return f.variant }

// EnumerateAdapters enumerates every adapter the backend's instance
// exposes. surfaceHint, if non-nil, restricts results to adapters
// compatible with that surface.
func (f *Factory) EnumerateAdapters(surfaceHint *Surface) []*Adapter {
	var hint hal.Surface
	if surfaceHint != nil {
		hint = surfaceHint.hal
	}
	exposed := f.instance.EnumerateAdapters(hint)
	out := make([]*Adapter, len(exposed))
	for i, e := range exposed {
		out[i] = &Adapter{factory: f, hal: e.Adapter, info: e.Info, features: e.Features, limits: e.Limits}
	}
	return out
}

// RequestAdapterOptions configures Factory.RequestAdapter.
type RequestAdapterOptions struct {
	PowerPreference   hal.PowerPreference
	CompatibleSurface *Surface
}

// RequestAdapter returns a discrete-first adapter when PowerPreference is
// HighPerformance, integrated-first when LowPower, and the first
// enumerated adapter otherwise (spec.md §4.11).
func (f *Factory) RequestAdapter(opts *RequestAdapterOptions) (*Adapter, error) {
	var hint *Surface
	pref := hal.PowerPreferenceNone
	if opts != nil {
		pref = opts.PowerPreference
		hint = opts.CompatibleSurface
	}
	adapters := f.EnumerateAdapters(hint)
	if len(adapters) == 0 {
		return nil, ErrNoAdapters
	}
	return pickAdapter(adapters, pref), nil
}

func pickAdapter(adapters []*Adapter, pref hal.PowerPreference) *Adapter {
	switch pref {
	case hal.PowerPreferenceHighPerformance:
		if a := firstOfType(adapters, hal.AdapterTypeDiscrete); a != nil {
			return a
		}
	case hal.PowerPreferenceLowPower:
		if a := firstOfType(adapters, hal.AdapterTypeIntegrated); a != nil {
			return a
		}
	}
	return adapters[0]
}

func firstOfType(adapters []*Adapter, t hal.AdapterType) *Adapter {
	for _, a := range adapters {
		if a.info.Type == t {
			return a
		}
	}
	return nil
}

// CreateSurface wraps an opaque platform native-window handle as a
// Surface (spec.md §6's native surface handle). The RHI never interprets
// the handle; it is forwarded verbatim to the backend.
func (f *Factory) CreateSurface(nativeHandle any) (*Surface, error) {
	hs, err := f.instance.CreateSurface(nativeHandle)
	if err != nil {
		return nil, err
	}
	return &Surface{factory: f, hal: hs}, nil
}

// Destroy releases the factory's backend instance.
func (f *Factory) Destroy() {
	if f.instance != nil {
		f.instance.Destroy()
		f.instance = nil
	}
}
