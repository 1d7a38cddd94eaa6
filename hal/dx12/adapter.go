//go:build windows

package dx12

import (
	"github.com/nullgfx/rhi/hal"
)

// dxgiAdapter is the subset of DXGI_ADAPTER_DESC1 an Adapter reports
// (spec.md §3's Adapter info).
type dxgiAdapter struct {
	handle        uint64
	name          string
	vendorPCIID   uint32
	deviceID      uint32
	dedicatedVRAM uint64
	adapterType   hal.AdapterType
}

// enumerateDXGIAdapters returns no adapters on any host. It only checks
// that CreateDXGIFactory2 resolves in the loaded dxgi.dll; no DXGI factory
// is created, IDXGIFactory2::EnumAdapters1 is not called and no
// DXGI_ADAPTER_DESC1 is read.
func enumerateDXGIAdapters(ld *loader) []dxgiAdapter {
	if ld == nil || ld.createDXGIFactory2 == nil || ld.createDXGIFactory2.Find() != nil {
		return nil
	}
	return nil
}

// Adapter implements hal.Adapter for one DXGI adapter / D3D12 device.
type Adapter struct {
	instance *Instance
	dxgi     dxgiAdapter
}

func (a *Adapter) Info() hal.AdapterInfo {
	return hal.AdapterInfo{
		Name:     a.dxgi.name,
		Vendor:   hal.VendorFromPCIID(a.dxgi.vendorPCIID),
		DeviceID: a.dxgi.deviceID,
		Type:     a.dxgi.adapterType,
	}
}

func (a *Adapter) Features() hal.FeatureSet {
	return hal.FeatureSet(hal.FeatureTimestampQuery | hal.FeaturePipelineStatisticsQuery |
		hal.FeatureTextureCompressionBC | hal.FeatureIndirectFirstInstance |
		hal.FeatureMultiDrawIndirect | hal.FeatureDepthClipControl)
}

func (a *Adapter) Limits() hal.Limits {
	return hal.Limits{
		MaxTextureDimension1D:      16384,
		MaxTextureDimension2D:      16384,
		MaxTextureDimension3D:      2048,
		MaxTextureArrayLayers:      2048,
		MaxPushConstantSize:        256, // D3D12 root constants: 64 DWORDs
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
		MaxImageCount: 16, // DXGI_MAX_SWAP_CHAIN_BUFFERS
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
