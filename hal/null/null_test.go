package null

import (
	"testing"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

func openDevice(t *testing.T) hal.Device {
	t.Helper()
	backend, err := hal.CreateBackend(hal.VariantNull)
	if err != nil {
		t.Fatalf("CreateBackend: %v", err)
	}
	inst, err := backend.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	adapters := inst.EnumerateAdapters(nil)
	if len(adapters) != 1 {
		t.Fatalf("want 1 adapter, got %d", len(adapters))
	}
	dev, err := adapters[0].Adapter.Open(&hal.DeviceDescriptor{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return dev
}

func TestUploadRoundTrip(t *testing.T) {
	dev := openDevice(t)
	red := make([]byte, 512*512*4)
	for i := 0; i < len(red); i += 4 {
		red[i], red[i+1], red[i+2], red[i+3] = 255, 0, 0, 255
	}
	tex, err := dev.CreateTexture(&hal.TextureDescriptor{
		Dimension:          hal.TextureDimension2D,
		Format:             pixelformat.RGBA8Unorm,
		Usage:              hal.TextureUsageCopySrc | hal.TextureUsageCopyDst,
		Width:              512,
		Height:             512,
		DepthOrArrayLayers: 1,
		MipLevelCount:      1,
		SampleCount:        1,
		InitialData:        red,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	readback, err := dev.CreateBuffer(&hal.BufferDescriptor{
		Size:       512 * 512 * 4,
		Usage:      hal.BufferUsageCopyDst,
		MemoryType: hal.MemoryReadback,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}

	q, _ := dev.Queue(hal.QueueCopy)
	enc, err := q.AcquireCommandBuffer(0)
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	enc.CopyTextureToBuffer(
		&hal.ImageCopyTexture{Texture: tex},
		readback,
		&hal.ImageDataLayout{BytesPerRow: 512 * 4, RowsPerImage: 512},
		&hal.Extent3D{Width: 512, Height: 512, DepthOrArrayLayers: 1},
	)
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit([]hal.CommandBuffer{cb}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := dev.WaitIdle(); err != nil {
		t.Fatalf("WaitIdle: %v", err)
	}

	mapped := readback.MappedPointer()
	if mapped == nil {
		t.Fatal("readback buffer not mapped")
	}
	if mapped[0] != 255 || mapped[1] != 0 || mapped[2] != 0 || mapped[3] != 255 {
		t.Fatalf("first pixel = %v, want (255,0,0,255)", mapped[:4])
	}
}

func TestTrivialFrame(t *testing.T) {
	dev := openDevice(t)
	q, ok := dev.Queue(hal.QueueGraphics)
	if !ok {
		t.Fatal("no graphics queue")
	}
	enc, err := q.AcquireCommandBuffer(0)
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	rp := enc.BeginRenderPass(&hal.RenderPassDescriptor{})
	rp.End()
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit([]hal.CommandBuffer{cb}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

func TestBarrierCoalescing(t *testing.T) {
	dev := openDevice(t)
	q, _ := dev.Queue(hal.QueueGraphics)
	enc, err := q.AcquireCommandBuffer(0)
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	ce := enc.(*CommandEncoder)
	for i := 0; i < 10; i++ {
		tex, err := dev.CreateTexture(&hal.TextureDescriptor{
			Dimension: hal.TextureDimension2D, Format: pixelformat.RGBA8Unorm,
			Width: 4, Height: 4, DepthOrArrayLayers: 1, MipLevelCount: 1, SampleCount: 1,
		})
		if err != nil {
			t.Fatalf("CreateTexture: %v", err)
		}
		ce.TextureBarrier(tex, hal.TextureLayoutShaderResource, 0, 1, 0, 1, hal.AspectColor)
	}
	if _, err := enc.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if got := ce.BarrierSubmissions(); got != 1 {
		t.Fatalf("BarrierSubmissions = %d, want 1 (enhanced path batches all 10 into one)", got)
	}
}

func TestDeferredDestructionHandleStability(t *testing.T) {
	dev := openDevice(t)
	buf, err := dev.CreateBuffer(&hal.BufferDescriptor{Size: 1 << 20, Usage: hal.BufferUsageStorage, MemoryType: hal.MemoryPrivate})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if buf.Size() != 1<<20 {
		t.Fatalf("Size = %d, want %d", buf.Size(), 1<<20)
	}
	dev.DestroyBuffer(buf)
}

func TestSurfaceResize(t *testing.T) {
	dev := openDevice(t)
	backend, _ := hal.CreateBackend(hal.VariantNull)
	inst, _ := backend.CreateInstance(&hal.InstanceDescriptor{})
	surf, err := inst.CreateSurface(nil)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	if err := surf.Configure(dev, &hal.SurfaceConfiguration{
		Format: pixelformat.BGRA8UnormSrgb, Width: 800, Height: 600, PresentMode: hal.PresentModeFifo,
	}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if surf.Width() != 800 || surf.Height() != 600 {
		t.Fatalf("got %dx%d, want 800x600", surf.Width(), surf.Height())
	}
	if err := surf.Configure(dev, &hal.SurfaceConfiguration{
		Format: pixelformat.BGRA8UnormSrgb, Width: 1280, Height: 720, PresentMode: hal.PresentModeFifo,
	}); err != nil {
		t.Fatalf("Configure (resize): %v", err)
	}
	bb := surf.CurrentBackBuffer()
	if bb.Width() != 1280 || bb.Height() != 720 {
		t.Fatalf("backbuffer = %dx%d, want 1280x720", bb.Width(), bb.Height())
	}
}

func TestSurfaceConfigureZeroArea(t *testing.T) {
	dev := openDevice(t)
	backend, _ := hal.CreateBackend(hal.VariantNull)
	inst, _ := backend.CreateInstance(&hal.InstanceDescriptor{})
	surf, _ := inst.CreateSurface(nil)
	err := surf.Configure(dev, &hal.SurfaceConfiguration{Format: pixelformat.BGRA8UnormSrgb, Width: 0, Height: 600})
	if err != hal.ErrZeroArea {
		t.Fatalf("err = %v, want ErrZeroArea", err)
	}
}
