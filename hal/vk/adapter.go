package vk

import (
	"github.com/nullgfx/rhi/hal"
)

// physicalDevice is the subset of VkPhysicalDeviceProperties an Adapter
// reports (spec.md §3's Adapter info).
type physicalDevice struct {
	handle      uint64
	name        string
	vendorPCIID uint32
	deviceID    uint32
	driverA     uint32
	adapterType hal.AdapterType
}

// enumeratePhysicalDevices reports no physical devices on any host. It
// only checks that vkEnumeratePhysicalDevices resolves through the loaded
// vkGetInstanceProcAddr; no VkInstance is created and neither
// vkEnumeratePhysicalDevices nor vkGetPhysicalDeviceProperties is called.
func enumeratePhysicalDevices(ld *loader) []physicalDevice {
	if ld == nil || ld.procAddr(0, "vkEnumeratePhysicalDevices") == nil {
		return nil
	}
	// No VkInstance exists to enumerate against, so the list is empty.
	return nil
}

// Adapter implements hal.Adapter for one Vulkan physical device.
type Adapter struct {
	instance *Instance
	physical physicalDevice
}

func (a *Adapter) Info() hal.AdapterInfo {
	return hal.AdapterInfo{
		Name:     a.physical.name,
		Vendor:   hal.VendorFromPCIID(a.physical.vendorPCIID),
		DeviceID: a.physical.deviceID,
		Type:     a.physical.adapterType,
	}
}

func (a *Adapter) Features() hal.FeatureSet {
	return hal.FeatureSet(hal.FeatureTimestampQuery | hal.FeaturePipelineStatisticsQuery |
		hal.FeatureTextureCompressionBC | hal.FeatureTextureCompressionETC2 |
		hal.FeatureTextureCompressionASTC | hal.FeatureIndirectFirstInstance |
		hal.FeatureMultiDrawIndirect | hal.FeatureDepthClipControl)
}

func (a *Adapter) Limits() hal.Limits {
	return hal.Limits{
		MaxTextureDimension1D:      16384,
		MaxTextureDimension2D:      16384,
		MaxTextureDimension3D:      2048,
		MaxTextureArrayLayers:      2048,
		MaxPushConstantSize:        128, // VkPhysicalDeviceLimits::maxPushConstantsSize lower bound
		MaxComputeWorkgroupSizeX:   1024,
		MaxComputeWorkgroupSizeY:   1024,
		MaxComputeWorkgroupSizeZ:   64,
		MaxComputeWorkgroupsPerDim: 65535,
		MaxComputeInvocationsPerWG: 1024,
		MaxViewports:               16,
		MaxViewportDimensions:      [2]uint32{16384, 16384},
		MaxColorAttachments:        hal.GPUMaxColorAttachments,
		MaxVertexBufferBindings:    hal.GPUMaxVertexBufferBindings,
		MaxBufferSize:              1 << 31,
	}
}

func (a *Adapter) SurfaceCapabilities(surface hal.Surface) *hal.SurfaceCapabilities {
	if _, ok := surface.(*Surface); !ok {
		return nil
	}
	return &hal.SurfaceCapabilities{
		MinImageCount: 2,
		MaxImageCount: 8,
		PresentModes: []hal.PresentMode{
			hal.PresentModeFifo, hal.PresentModeFifoRelaxed,
			hal.PresentModeImmediate, hal.PresentModeMailbox,
		},
	}
}

func (a *Adapter) Open(desc *hal.DeviceDescriptor) (hal.Device, error) {
	return newDevice(a, desc), nil
}

func (a *Adapter) Destroy() {}
