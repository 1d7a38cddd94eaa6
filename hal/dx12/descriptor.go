//go:build windows

package dx12

import (
	"github.com/nullgfx/rhi/internal/descheap"
)

// nativeHeap stands in for an ID3D12DescriptorHeap. There is no real D3D12
// device behind this condensed backend to allocate one from, so a heap is
// just its descriptor stride and capacity; CopyToShaderVisible and
// Device.CreateBindGroup operate against this host-tracked shape exactly
// as they would against the real COM object.
type nativeHeap struct {
	capacity uint32
	stride   uint32
}

func createHostHeap(descriptorStride uint32) descheap.CreateHeap {
	return func(capacity uint32, shaderVisible bool) (cpuHeap, gpuHeap any, err error) {
		cpu := &nativeHeap{capacity: capacity, stride: descriptorStride}
		if !shaderVisible {
			return cpu, nil, nil
		}
		gpu := &nativeHeap{capacity: capacity, stride: descriptorStride}
		return cpu, gpu, nil
	}
}

// copyHostDescriptor is the CopyDescriptor callback used by every heap this
// device owns: there is no native descriptor payload to move, only the
// slot bookkeeping descheap.Allocator already performs under its lock, so
// this is a no-op hook kept for parity with a real CopyDescriptorsSimple
// call site.
func copyHostDescriptor(dstHeap any, dstIndex uint32, srcHeap any, srcIndex uint32) {}

// deviceHeaps bundles the four descriptor-type allocators spec.md §4.3
// requires of a D3D12-class device: RTV, DSV, CBV/SRV/UAV (shader
// visible), and sampler (shader visible).
type deviceHeaps struct {
	rtv       *descheap.Allocator
	dsv       *descheap.Allocator
	cbvSrvUav *descheap.Allocator
	sampler   *descheap.Allocator
}

func newDeviceHeaps() (*deviceHeaps, error) {
	rtv, err := descheap.New(64, false, createHostHeap(32), copyHostDescriptor)
	if err != nil {
		return nil, err
	}
	dsv, err := descheap.New(32, false, createHostHeap(32), copyHostDescriptor)
	if err != nil {
		return nil, err
	}
	cbvSrvUav, err := descheap.New(1024, true, createHostHeap(32), copyHostDescriptor)
	if err != nil {
		return nil, err
	}
	samplerHeap, err := descheap.New(128, true, createHostHeap(16), copyHostDescriptor)
	if err != nil {
		return nil, err
	}
	return &deviceHeaps{rtv: rtv, dsv: dsv, cbvSrvUav: cbvSrvUav, sampler: samplerHeap}, nil
}
