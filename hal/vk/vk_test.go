package vk

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
			{Size: 16}, {Size: 48}, {Size: 4},
		},
	})
	wantOffsets := []uint32{0, 16, 64}
	wantSizes := []uint32{16, 48, 4}
	for i := range wantOffsets {
		if got := l.PushConstantOffset(i); got != wantOffsets[i] {
			t.Errorf("PushConstantOffset(%d) = %d, want %d", i, got, wantOffsets[i])
		}
		if got := l.PushConstantSize(i); got != wantSizes[i] {
			t.Errorf("PushConstantSize(%d) = %d, want %d", i, got, wantSizes[i])
		}
	}
}

func TestEnhancedBarrierPathCoalescesIntoOneFlush(t *testing.T) {
	d := newTestDevice()
	texAny, err := d.CreateTexture(&hal.TextureDescriptor{
		Dimension:          hal.TextureDimension2D,
		Format:             pixelformat.RGBA8Unorm,
		Usage:              hal.TextureUsageShaderResource,
		Width:              64,
		Height:             64,
		DepthOrArrayLayers: 1,
		MipLevelCount:      4,
		SampleCount:        1,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	tex := texAny.(hal.Texture)

	enc := newCommandEncoder(hal.QueueGraphics, 0)
	for mip := uint32(0); mip < 4; mip++ {
		enc.TextureBarrier(tex, hal.TextureLayoutShaderResource, mip, 1, 0, 1, hal.AspectColor)
	}
	enc.FlushBarriers()
	if got := enc.FlushCount(); got != 1 {
		t.Fatalf("FlushCount() = %d, want 1 (enhanced path batches regardless of barrier count)", got)
	}
}

func TestTextureBarrierSkipsNoOpTransition(t *testing.T) {
	d := newTestDevice()
	texAny, _ := d.CreateTexture(&hal.TextureDescriptor{
		Dimension:          hal.TextureDimension2D,
		Format:             pixelformat.RGBA8Unorm,
		Usage:              hal.TextureUsageShaderResource,
		Width:              16,
		Height:             16,
		DepthOrArrayLayers: 1,
		MipLevelCount:      1,
		SampleCount:        1,
		InitialLayout:      hal.TextureLayoutShaderResource,
	})
	tex := texAny.(hal.Texture)

	enc := newCommandEncoder(hal.QueueGraphics, 0)
	enc.TextureBarrier(tex, hal.TextureLayoutShaderResource, 0, 1, 0, 1, hal.AspectColor)
	enc.FlushBarriers()
	if got := enc.FlushCount(); got != 0 {
		t.Fatalf("FlushCount() = %d, want 0 for a same-layout transition", got)
	}
}

func TestUploadToPrivateBufferRoundTrips(t *testing.T) {
	d := newTestDevice()
	data := []byte{1, 2, 3, 4}
	bufAny, err := d.CreateBuffer(&hal.BufferDescriptor{
		Size:        4,
		Usage:       hal.BufferUsageCopyDst,
		MemoryType:  hal.MemoryPrivate,
		InitialData: data,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	buf := bufAny.(*Buffer)
	for i, want := range data {
		if buf.data[i] != want {
			t.Fatalf("buf.data[%d] = %d, want %d", i, buf.data[i], want)
		}
	}
}
