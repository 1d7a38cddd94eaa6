//go:build windows

package dx12

import (
	"fmt"

	"github.com/nullgfx/rhi/hal"
)

// API is the D3D12-class hal.Backend.
type API struct{}

func (API) Variant() hal.Variant { return hal.VariantD3D12 }

func (API) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error) {
	ld, err := loadOnce()
	if err != nil {
		return nil, fmt.Errorf("dx12: %w", err)
	}
	v := hal.ValidationDisabled
	if desc != nil {
		v = desc.Validation
	}
	if v != hal.ValidationDisabled {
		if err := ld.enableDebugLayer(); err != nil {
			hal.Logger().Warn("dx12: debug layer unavailable", "error", err)
		}
	}
	return &Instance{loader: ld, validation: v}, nil
}

// Instance is the D3D12-class hal.Instance: the DXGI factory used for
// adapter enumeration and swapchain creation.
type Instance struct {
	loader     *loader
	validation hal.ValidationMode
}

func (i *Instance) EnumerateAdapters(surfaceHint hal.Surface) []hal.ExposedAdapter {
	adapters := enumerateDXGIAdapters(i.loader)
	out := make([]hal.ExposedAdapter, 0, len(adapters))
	for _, ad := range adapters {
		a := &Adapter{instance: i, dxgi: ad}
		out = append(out, hal.ExposedAdapter{
			Adapter:  a,
			Info:     a.Info(),
			Features: a.Features(),
			Limits:   a.Limits(),
		})
	}
	return out
}

func (i *Instance) CreateSurface(nativeHandle any) (hal.Surface, error) {
	return newSurface(nativeHandle), nil
}

func (i *Instance) Destroy() {}
