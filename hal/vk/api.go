package vk

import (
	"fmt"

	"github.com/nullgfx/rhi/hal"
)

// API is the Vulkan-class hal.Backend.
type API struct{}

func (API) Variant() hal.Variant { return hal.VariantVulkan }

func (API) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error) {
	ld, err := loadOnce()
	if err != nil {
		return nil, fmt.Errorf("vk: %w", err)
	}
	v := hal.ValidationDisabled
	if desc != nil {
		v = desc.Validation
	}
	return &Instance{loader: ld, validation: v}, nil
}

// Instance is the Vulkan-class hal.Instance: one loaded Vulkan loader.
// EnumerateAdapters lists what enumeratePhysicalDevices returns, which is
// always empty.
type Instance struct {
	loader     *loader
	validation hal.ValidationMode
}

func (i *Instance) EnumerateAdapters(surfaceHint hal.Surface) []hal.ExposedAdapter {
	physicalDevices := enumeratePhysicalDevices(i.loader)
	out := make([]hal.ExposedAdapter, 0, len(physicalDevices))
	for _, pd := range physicalDevices {
		a := &Adapter{instance: i, physical: pd}
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

func (i *Instance) Destroy() {
	// The global loader is process-wide and shared across Instances
	// (vulkan-1.dll/libvulkan.so is reference-counted by the OS loader
	// itself), so Destroy does not call loader.close() here; the last
	// Instance's finalizer is not relied upon for correctness.
}
