// Command rhi-info probes every registered backend and prints adapter
// info, limits, and features for the first adapter each one exposes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nullgfx/rhi"
	"github.com/nullgfx/rhi/hal"

	_ "github.com/nullgfx/rhi/hal/dx12"
	_ "github.com/nullgfx/rhi/hal/null"
	_ "github.com/nullgfx/rhi/hal/vk"
)

func main() {
	variant := flag.String("backend", "", "probe only this backend variant (d3d12, vulkan, null); default probes all registered")
	flag.Parse()

	variants := hal.RegisteredVariants()
	if *variant != "" {
		v, ok := parseVariant(*variant)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown backend %q\n", *variant)
			os.Exit(1)
		}
		variants = []hal.Variant{v}
	}
	if len(variants) == 0 {
		fmt.Fprintln(os.Stderr, "no backends registered")
		os.Exit(1)
	}

	failed := false
	for _, v := range variants {
		if err := probe(v); err != nil {
			fmt.Printf("%-8s FAILED: %v\n", v, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func parseVariant(s string) (hal.Variant, bool) {
	switch s {
	case "d3d12":
		return hal.VariantD3D12, true
	case "vulkan":
		return hal.VariantVulkan, true
	case "metal":
		return hal.VariantMetal, true
	case "webgpu":
		return hal.VariantWebGPU, true
	case "null":
		return hal.VariantNull, true
	default:
		return hal.VariantUndefined, false
	}
}

func probe(v hal.Variant) error {
	factory, err := rhi.NewFactory(&rhi.FactoryDescriptor{PreferredBackend: v})
	if err != nil {
		return fmt.Errorf("NewFactory: %w", err)
	}
	defer factory.Destroy()

	adapters := factory.EnumerateAdapters(nil)
	fmt.Printf("%-8s %d adapter(s)\n", v, len(adapters))
	if len(adapters) == 0 {
		return nil
	}

	a := adapters[0]
	info := a.Info()
	fmt.Printf("  name:    %s\n", info.Name)
	fmt.Printf("  vendor:  %v\n", info.Vendor)
	fmt.Printf("  driver:  %s\n", info.DriverInfo)
	fmt.Printf("  type:    %v\n", info.Type)
	fmt.Printf("  limits:  maxTextureDim2D=%d maxColorAttachments=%d maxVertexBuffers=%d\n",
		a.Limits().MaxTextureDimension2D, a.Limits().MaxColorAttachments, a.Limits().MaxVertexBufferBindings)
	fmt.Printf("  features present: %s\n", featureSummary(a.Features()))

	device, err := a.RequestDevice(&rhi.DeviceDescriptor{})
	if err != nil {
		return fmt.Errorf("RequestDevice: %w", err)
	}
	defer device.Destroy()
	fmt.Printf("  device:  opened, maxFramesInFlight=%d\n", device.MaxFramesInFlight())
	return nil
}

func featureSummary(fs hal.FeatureSet) string {
	if fs == 0 {
		return "(none)"
	}
	return fmt.Sprintf("0x%x", uint64(fs))
}
