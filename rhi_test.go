package rhi_test

import (
	"encoding/binary"
	"testing"

	"github.com/nullgfx/rhi"
	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"

	_ "github.com/nullgfx/rhi/hal/null"
)

// openTestDevice wires a Factory -> Adapter -> Device on the headless Null
// backend, the path every seed scenario in this file exercises.
func openTestDevice(t *testing.T, maxFramesInFlight uint32) (*rhi.Factory, *rhi.Device) {
	t.Helper()
	factory, err := rhi.NewFactory(&rhi.FactoryDescriptor{PreferredBackend: hal.VariantNull})
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	adapter, err := factory.RequestAdapter(nil)
	if err != nil {
		factory.Destroy()
		t.Fatalf("RequestAdapter: %v", err)
	}
	device, err := adapter.RequestDevice(&rhi.DeviceDescriptor{MaxFramesInFlight: maxFramesInFlight})
	if err != nil {
		factory.Destroy()
		t.Fatalf("RequestDevice: %v", err)
	}
	return factory, device
}

// S1 — Trivial frame: empty render pass, submit, commitFrame. frameCount
// must read 1 and nothing outstanding remains.
func TestTrivialFrame(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	q := device.Queue(hal.QueueGraphics)
	if q == nil {
		t.Fatal("no graphics queue")
	}
	enc, err := q.AcquireCommandBuffer()
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	rp := enc.BeginRenderPass(&rhi.RenderPassDescriptor{})
	rp.End()
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	frameCount, err := device.CommitFrame()
	if err != nil {
		t.Fatalf("CommitFrame: %v", err)
	}
	if frameCount != 1 {
		t.Fatalf("frameCount = %d, want 1", frameCount)
	}
	if n := device.PendingDestructionCount(); n != 0 {
		t.Fatalf("PendingDestructionCount = %d, want 0", n)
	}
}

// S2 — Upload round-trip: a solid-red 512x512 texture copied to a readback
// buffer must read (255,0,0,255) at the first pixel.
func TestUploadRoundTrip(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	red := make([]byte, 512*512*4)
	for i := 0; i < len(red); i += 4 {
		red[i], red[i+1], red[i+2], red[i+3] = 255, 0, 0, 255
	}
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
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
	defer tex.Release()

	readback, err := device.CreateBuffer(&hal.BufferDescriptor{
		Size:       512 * 512 * 4,
		Usage:      hal.BufferUsageCopyDst,
		MemoryType: hal.MemoryReadback,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer readback.Release()

	q := device.Queue(hal.QueueCopy)
	enc, err := q.AcquireCommandBuffer()
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	enc.CopyTextureToBuffer(
		&rhi.ImageCopyTexture{Texture: tex},
		readback,
		&hal.ImageDataLayout{BytesPerRow: 512 * 4, RowsPerImage: 512},
		&hal.Extent3D{Width: 512, Height: 512, DepthOrArrayLayers: 1},
	)
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := device.WaitIdle(); err != nil {
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

// S3 — Swapchain resize: reconfiguring a surface must update its reported
// backbuffer dimensions with no device loss.
func TestSwapchainResize(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	surf, err := factory.CreateSurface(nil)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}

	if err := surf.Configure(device, &hal.SurfaceConfiguration{
		Format: pixelformat.BGRA8UnormSrgb, Width: 800, Height: 600, PresentMode: hal.PresentModeFifo,
	}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if surf.Width() != 800 || surf.Height() != 600 {
		t.Fatalf("got %dx%d, want 800x600", surf.Width(), surf.Height())
	}

	q := device.Queue(hal.QueueGraphics)
	for i := 0; i < 1; i++ {
		renderOneFrame(t, device, q, surf)
	}

	if err := surf.Configure(device, &hal.SurfaceConfiguration{
		Format: pixelformat.BGRA8UnormSrgb, Width: 1280, Height: 720, PresentMode: hal.PresentModeFifo,
	}); err != nil {
		t.Fatalf("Configure (resize): %v", err)
	}

	bb := surf.CurrentBackBufferTexture()
	if bb.Width() != 1280 || bb.Height() != 720 {
		t.Fatalf("backbuffer = %dx%d, want 1280x720", bb.Width(), bb.Height())
	}

	for i := 0; i < 3; i++ {
		renderOneFrame(t, device, q, surf)
	}

	if device.Poisoned() {
		t.Fatal("device unexpectedly poisoned")
	}
	if err := device.WaitIdle(); err != nil {
		t.Fatalf("WaitIdle: %v", err)
	}
	if n := device.PendingDestructionCount(); n != 0 {
		t.Fatalf("PendingDestructionCount = %d, want 0 after WaitIdle", n)
	}
}

func renderOneFrame(t *testing.T, device *rhi.Device, q *rhi.Queue, surf *rhi.Surface) {
	t.Helper()
	enc, err := q.AcquireCommandBuffer()
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	bb, _ := enc.AcquireSurfaceTexture(surf)
	rp := enc.BeginRenderPass(&rhi.RenderPassDescriptor{
		ColorTargets: []rhi.ColorAttachment{{Texture: bb, Load: hal.LoadActionClear, Store: hal.StoreActionStore}},
	})
	rp.End()
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := surf.Present(q); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if _, err := device.CommitFrame(); err != nil {
		t.Fatalf("CommitFrame: %v", err)
	}
}

// S4 — Deferred destruction: a released buffer's native handle must outlive
// maxFramesInFlight-1 commits and be gone after the one that crosses the
// threshold (spec.md §4.2).
func TestDeferredDestruction(t *testing.T) {
	factory, device := openTestDevice(t, 3)
	defer factory.Destroy()
	defer device.Destroy()

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Size: 1 << 20, Usage: hal.BufferUsageStorage, MemoryType: hal.MemoryPrivate,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if n := buf.Release(); n != 0 {
		t.Fatalf("Release = %d, want 0", n)
	}

	if _, err := device.CommitFrame(); err != nil {
		t.Fatalf("CommitFrame: %v", err)
	}
	if _, err := device.CommitFrame(); err != nil {
		t.Fatalf("CommitFrame: %v", err)
	}
	if n := device.PendingDestructionCount(); n != 1 {
		t.Fatalf("PendingDestructionCount = %d, want 1 (still within maxFramesInFlight)", n)
	}

	if _, err := device.CommitFrame(); err != nil {
		t.Fatalf("CommitFrame: %v", err)
	}
	if n := device.PendingDestructionCount(); n != 0 {
		t.Fatalf("PendingDestructionCount = %d, want 0 (handle freed)", n)
	}
}

// S5 — Indirect draw: a passthrough render pipeline driven by drawIndirect
// with a {vertexCount:3, instanceCount:1} argument buffer must record and
// submit without error through the full public pipeline-creation path.
func TestIndirectDraw(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	layout, err := device.CreatePipelineLayout(&rhi.PipelineLayoutDescriptor{Label: "passthrough"})
	if err != nil {
		t.Fatalf("CreatePipelineLayout: %v", err)
	}
	defer layout.Release()

	vs, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{Label: "vs", Stage: hal.ShaderStageVertex, EntryPoint: "main", WGSL: "vertex-passthrough"})
	if err != nil {
		t.Fatalf("CreateShaderModule(vs): %v", err)
	}
	defer vs.Release()
	fs, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{Label: "fs", Stage: hal.ShaderStageFragment, EntryPoint: "main", WGSL: "fragment-passthrough"})
	if err != nil {
		t.Fatalf("CreateShaderModule(fs): %v", err)
	}
	defer fs.Release()

	pipeline, err := device.CreateRenderPipeline(&rhi.RenderPipelineDescriptor{
		Label:          "passthrough",
		Layout:         layout,
		VertexShader:   vs,
		FragmentShader: fs,
		Topology:       hal.PrimitiveTopologyTriangleList,
	})
	if err != nil {
		t.Fatalf("CreateRenderPipeline: %v", err)
	}
	defer pipeline.Release()

	indirect := make([]byte, 16)
	indirect[0] = 3 // vertexCount = 3, little-endian uint32
	indirect[4] = 1 // instanceCount = 1
	indirectBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Size: 16, Usage: hal.BufferUsageIndirect, MemoryType: hal.MemoryUpload, InitialData: indirect,
	})
	if err != nil {
		t.Fatalf("CreateBuffer(indirect): %v", err)
	}
	defer indirectBuf.Release()

	q := device.Queue(hal.QueueGraphics)
	enc, err := q.AcquireCommandBuffer()
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	rp := enc.BeginRenderPass(&rhi.RenderPassDescriptor{})
	rp.SetPipeline(pipeline)
	rp.DrawIndirect(indirectBuf, 0)
	rp.End()
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

// S6 — Barrier coalescing: 10 distinct-texture barriers within one command
// buffer with no intervening commands must record and submit as a single
// logical unit (exact batching is a hal.CommandEncoder-internal guarantee,
// covered directly in hal/null's own test suite).
func TestBarrierCoalescing(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	q := device.Queue(hal.QueueGraphics)
	enc, err := q.AcquireCommandBuffer()
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}

	textures := make([]*rhi.Texture, 10)
	for i := range textures {
		tex, err := device.CreateTexture(&hal.TextureDescriptor{
			Dimension: hal.TextureDimension2D, Format: pixelformat.RGBA8Unorm,
			Width: 4, Height: 4, DepthOrArrayLayers: 1, MipLevelCount: 1, SampleCount: 1,
		})
		if err != nil {
			t.Fatalf("CreateTexture[%d]: %v", i, err)
		}
		defer tex.Release()
		textures[i] = tex
		enc.TextureBarrier(tex, hal.TextureLayoutShaderResource, 0, 1, 0, 1, hal.AspectColor)
	}
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

// Property 5: addRef/release leaves a resource's observable state unchanged,
// and the native handle is freed once the releasing frame falls
// maxFramesInFlight commits behind.
func TestAddRefReleaseRoundTrip(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{Size: 256, Usage: hal.BufferUsageStorage, MemoryType: hal.MemoryPrivate})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	wantSize := buf.Size()
	if n := buf.AddRef(); n != 2 {
		t.Fatalf("AddRef = %d, want 2", n)
	}
	if n := buf.Release(); n != 1 {
		t.Fatalf("Release = %d, want 1", n)
	}
	if buf.Size() != wantSize {
		t.Fatalf("Size changed after addRef/release round trip: %d != %d", buf.Size(), wantSize)
	}
	buf.Release()

	for i := 0; i < 2; i++ {
		device.CommitFrame()
	}
	if n := device.PendingDestructionCount(); n != 0 {
		t.Fatalf("PendingDestructionCount = %d, want 0", n)
	}
}

// S7 — Query round-trip: a timestamp written inside a command buffer must
// be resolvable into a readback buffer after the work that wrote it has
// retired (spec.md §4.12).
func TestQueryRoundTrip(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	heap, err := device.CreateQueryHeap(&hal.QueryHeapDescriptor{
		Label: "timestamps", Type: hal.QueryTypeTimestamp, Count: 2,
	})
	if err != nil {
		t.Fatalf("CreateQueryHeap: %v", err)
	}
	defer heap.Release()

	q := device.Queue(hal.QueueGraphics)
	enc, err := q.AcquireCommandBuffer()
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	enc.WriteTimestamp(heap, 1)
	cb, err := enc.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := q.Submit(cb); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := device.WaitIdle(); err != nil {
		t.Fatalf("WaitIdle: %v", err)
	}

	readback, err := device.CreateBuffer(&hal.BufferDescriptor{
		Size: 16, Usage: hal.BufferUsageCopyDst, MemoryType: hal.MemoryReadback,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer readback.Release()

	if err := q.ResolveQueryResults(heap, 0, 2, readback, 0); err != nil {
		t.Fatalf("ResolveQueryResults: %v", err)
	}

	mapped := readback.MappedPointer()
	if mapped == nil {
		t.Fatal("readback buffer not mapped")
	}
	slot0 := binary.LittleEndian.Uint64(mapped[0:8])
	slot1 := binary.LittleEndian.Uint64(mapped[8:16])
	if slot0 != 0 {
		t.Fatalf("slot 0 = %d, want 0 (never written)", slot0)
	}
	if slot1 == 0 {
		t.Fatal("slot 1 = 0, want nonzero (written by WriteTimestamp)")
	}
}

// Error scopes: a validation failure inside a pushed scope is captured by
// PopErrorScope rather than surfacing through OnUncapturedError.
func TestErrorScopeCapturesValidationFailure(t *testing.T) {
	factory, device := openTestDevice(t, 2)
	defer factory.Destroy()
	defer device.Destroy()

	device.PushErrorScope(rhi.ErrorFilterValidation)
	if _, err := device.CreateBuffer(nil); err == nil {
		t.Fatal("CreateBuffer(nil) unexpectedly succeeded")
	}
	gpuErr := device.PopErrorScope()
	if gpuErr == nil {
		t.Fatal("PopErrorScope returned nil, want a captured validation error")
	}
	if gpuErr.Filter != rhi.ErrorFilterValidation {
		t.Fatalf("Filter = %v, want ErrorFilterValidation", gpuErr.Filter)
	}
}
