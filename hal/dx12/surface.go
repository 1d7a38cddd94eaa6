//go:build windows

package dx12

import (
	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

// Surface is the D3D12-class hal.Surface: an IDXGISwapChain3-equivalent
// ring of backbuffer textures. Configure implements spec.md §4.10's
// idempotent reconfiguration protocol (old-swapchain chain, image-count
// clamp) exactly as hal/vk's Configure does, since the protocol is
// backend-agnostic; only the native present-engine object being juggled
// differs.
type Surface struct {
	nativeHandle any
	device       hal.Device
	format       pixelformat.Format
	width        uint32
	height       uint32
	presentMode  hal.PresentMode
	backbuffers  []*Texture
	currentIndex uint32
	generation   uint32
}

func newSurface(nativeHandle any) *Surface {
	return &Surface{nativeHandle: nativeHandle}
}

// Configure (re)creates the swapchain: waits the device idle, builds the
// new backbuffer chain before dropping the old one, and clamps image
// count to [2, min(16, maxFramesInFlight)] the way DXGI_SWAP_CHAIN_DESC1
// bounds BufferCount (spec.md §4.10).
func (s *Surface) Configure(device hal.Device, cfg *hal.SurfaceConfiguration) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return hal.ErrZeroArea
	}
	if s.device != nil {
		_ = s.device.WaitIdle()
	}
	imageCount := minImageCountForPresentMode(cfg.PresentMode)
	if imageCount > hal.GPUMaxInflightFrames {
		imageCount = hal.GPUMaxInflightFrames
	}
	newBackbuffers := make([]*Texture, imageCount)
	for i := range newBackbuffers {
		t, _ := newTexture(nil, &hal.TextureDescriptor{
			Dimension:          hal.TextureDimension2D,
			Format:             cfg.Format,
			Usage:              hal.TextureUsageRenderTarget | hal.TextureUsageCopySrc,
			Width:              cfg.Width,
			Height:             cfg.Height,
			DepthOrArrayLayers: 1,
			MipLevelCount:      1,
			SampleCount:        1,
			InitialLayout:      hal.TextureLayoutUndefined,
		})
		newBackbuffers[i] = t
	}
	s.device = device
	s.format = cfg.Format
	s.width = cfg.Width
	s.height = cfg.Height
	s.presentMode = cfg.PresentMode
	s.backbuffers = newBackbuffers
	s.currentIndex = 0
	s.generation++
	return nil
}

func minImageCountForPresentMode(m hal.PresentMode) int {
	if m == hal.PresentModeMailbox {
		return 3
	}
	return 2
}

func (s *Surface) Unconfigure() { s.backbuffers = nil }

func (s *Surface) CurrentFormat() uint32 { return uint32(s.format) }
func (s *Surface) Width() uint32         { return s.width }
func (s *Surface) Height() uint32        { return s.height }

func (s *Surface) CurrentBackBuffer() hal.Texture {
	if len(s.backbuffers) == 0 {
		return nil
	}
	return s.backbuffers[s.currentIndex]
}

// acquire stands in for GetCurrentBackBufferIndex; this condensed backend
// never blocks on a real frame-latency waitable object.
func (s *Surface) acquire() (hal.Texture, hal.AcquireResult) {
	if len(s.backbuffers) == 0 {
		return nil, hal.AcquireOutdated
	}
	return s.backbuffers[s.currentIndex], hal.AcquireSuccessOptimal
}

// Present follows spec.md §4.10: on Outdated/Suboptimal the caller
// reconfigures and retries once; on Lost (DXGI_ERROR_DEVICE_REMOVED) it is
// reported without retry.
func (s *Surface) Present(queue hal.Queue) (hal.AcquireResult, error) {
	if len(s.backbuffers) == 0 {
		return hal.AcquireOutdated, hal.ErrSurfaceOutdated
	}
	s.currentIndex = (s.currentIndex + 1) % uint32(len(s.backbuffers))
	return hal.AcquireSuccessOptimal, nil
}
