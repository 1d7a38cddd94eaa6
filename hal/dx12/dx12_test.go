//go:build windows

package dx12

import (
	"testing"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

func newTestDevice() *Device {
	return newDevice(&Adapter{}, &hal.DeviceDescriptor{})
}

func TestPipelineLayoutPushConstantPrefixSum(t *testing.T) {
	l := newPipelineLayout(&hal.PipelineLayoutDescriptor{
		PushConstantRanges: []hal.PushConstantRange{
			{Size: 32}, {Size: 16},
		},
	})
	if got := l.PushConstantOffset(0); got != 0 {
		t.Errorf("PushConstantOffset(0) = %d, want 0", got)
	}
	if got := l.PushConstantOffset(1); got != 32 {
		t.Errorf("PushConstantOffset(1) = %d, want 32", got)
	}
}

func TestLegacyBarrierRingSplitsIntoChunks(t *testing.T) {
	d := newTestDevice()
	texAny, err := d.CreateTexture(&hal.TextureDescriptor{
		Dimension:          hal.TextureDimension2D,
		Format:             pixelformat.RGBA8Unorm,
		Usage:              hal.TextureUsageShaderResource,
		Width:              64,
		Height:             64,
		DepthOrArrayLayers: 1,
		MipLevelCount:      20,
		SampleCount:        1,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	tex := texAny.(hal.Texture)

	enc := newCommandEncoder(hal.QueueGraphics, 0)
	for mip := uint32(0); mip < 20; mip++ {
		enc.TextureBarrier(tex, hal.TextureLayoutShaderResource, mip, 1, 0, 1, hal.AspectColor)
	}
	enc.FlushBarriers()
	// 20 barriers over a 16-entry ring: one automatic flush once the ring
	// fills at 16, one more for the trailing 4 on FlushBarriers.
	if got := enc.FlushCount(); got != 2 {
		t.Fatalf("FlushCount() = %d, want 2", got)
	}
}

func TestDescriptorHeapAllocationOnTextureCreate(t *testing.T) {
	d := newTestDevice()
	texAny, err := d.CreateTexture(&hal.TextureDescriptor{
		Dimension:          hal.TextureDimension2D,
		Format:             pixelformat.RGBA8Unorm,
		Usage:              hal.TextureUsageRenderTarget,
		Width:              64,
		Height:             64,
		DepthOrArrayLayers: 1,
		MipLevelCount:      1,
		SampleCount:        1,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	tex := texAny.(*Texture)
	if tex.rtvIndex < 0 {
		t.Fatal("expected a render-target texture to receive an RTV heap slot")
	}
	before := d.rtvHeap.Allocated()
	d.DestroyTexture(tex)
	after := d.rtvHeap.Allocated()
	if after != before-1 {
		t.Fatalf("rtvHeap.Allocated() after destroy = %d, want %d", after, before-1)
	}
}

func TestCreateBindGroupAllocatesShaderVisibleRange(t *testing.T) {
	d := newTestDevice()
	g, err := d.CreateBindGroup(&hal.BindGroupDescriptor{
		Entries: []hal.BindGroupEntry{{}, {}, {}},
	})
	if err != nil {
		t.Fatalf("CreateBindGroup: %v", err)
	}
	bg := g.(*bindGroup)
	if bg.count != 3 {
		t.Fatalf("count = %d, want 3", bg.count)
	}
	if d.cbvSrvUavHeap.Allocated() < 3 {
		t.Fatalf("cbvSrvUavHeap.Allocated() = %d, want >= 3", d.cbvSrvUavHeap.Allocated())
	}
	d.DestroyBindGroup(g)
}
