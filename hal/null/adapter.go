package null

import "github.com/nullgfx/rhi/hal"

// Adapter is the null backend's single always-available pseudo-GPU.
type Adapter struct{}

func (a *Adapter) Info() hal.AdapterInfo {
	return hal.AdapterInfo{
		Name:   "Null Adapter",
		Vendor: hal.AdapterVendorUnknown,
		Type:   hal.AdapterTypeCPU,
	}
}

func (a *Adapter) Features() hal.FeatureSet {
	return hal.FeatureSet(hal.FeatureTimestampQuery | hal.FeaturePipelineStatisticsQuery |
		hal.FeatureIndirectFirstInstance | hal.FeatureMultiDrawIndirect)
}

func (a *Adapter) Limits() hal.Limits {
	return hal.Limits{
		MaxTextureDimension1D:      16384,
		MaxTextureDimension2D:      16384,
		MaxTextureDimension3D:      2048,
		MaxTextureArrayLayers:      2048,
		MaxPushConstantSize:        256,
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
		MaxImageCount: hal.GPUMaxInflightFrames,
		PresentModes:  []hal.PresentMode{hal.PresentModeFifo, hal.PresentModeFifoRelaxed, hal.PresentModeImmediate, hal.PresentModeMailbox},
	}
}

func (a *Adapter) Open(desc *hal.DeviceDescriptor) (hal.Device, error) {
	return newDevice(), nil
}

func (a *Adapter) Destroy() {}
