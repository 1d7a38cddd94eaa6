package null

import (
	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

// Surface is the null backend's in-memory swapchain: a fixed ring of
// host-backed textures rotated through on Present, with no real platform
// window behind it (the "native handle" passed to CreateSurface is
// ignored).
type Surface struct {
	device       hal.Device
	format       pixelformat.Format
	width        uint32
	height       uint32
	presentMode  hal.PresentMode
	backbuffers  []*Texture
	currentIndex uint32
}

func newSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Configure(device hal.Device, cfg *hal.SurfaceConfiguration) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return hal.ErrZeroArea
	}
	s.device = device
	s.format = cfg.Format
	s.width = cfg.Width
	s.height = cfg.Height
	s.presentMode = cfg.PresentMode

	imageCount := minImageCountForPresentMode(cfg.PresentMode)
	if imageCount > hal.GPUMaxInflightFrames {
		imageCount = hal.GPUMaxInflightFrames
	}
	backbuffers := make([]*Texture, imageCount)
	for i := range backbuffers {
		backbuffers[i] = newTexture(&hal.TextureDescriptor{
			Dimension:     hal.TextureDimension2D,
			Format:        cfg.Format,
			Usage:         hal.TextureUsageRenderTarget | hal.TextureUsageCopySrc,
			Width:         cfg.Width,
			Height:        cfg.Height,
			DepthOrArrayLayers: 1,
			MipLevelCount: 1,
			SampleCount:   1,
			InitialLayout: hal.TextureLayoutUndefined,
		})
	}
	s.backbuffers = backbuffers
	s.currentIndex = 0
	return nil
}

func minImageCountForPresentMode(m hal.PresentMode) int {
	switch m {
	case hal.PresentModeMailbox:
		return 3
	default:
		return 2
	}
}

func (s *Surface) Unconfigure() {
	s.backbuffers = nil
}

func (s *Surface) CurrentFormat() uint32 { return uint32(s.format) }
func (s *Surface) Width() uint32         { return s.width }
func (s *Surface) Height() uint32        { return s.height }

func (s *Surface) CurrentBackBuffer() hal.Texture {
	if len(s.backbuffers) == 0 {
		return nil
	}
	return s.backbuffers[s.currentIndex]
}

// acquire is called from CommandEncoder.AcquireSurfaceTexture.
func (s *Surface) acquire() (hal.Texture, hal.AcquireResult) {
	if len(s.backbuffers) == 0 {
		return nil, hal.AcquireOutdated
	}
	return s.backbuffers[s.currentIndex], hal.AcquireSuccessOptimal
}

func (s *Surface) Present(queue hal.Queue) (hal.AcquireResult, error) {
	if len(s.backbuffers) == 0 {
		return hal.AcquireOutdated, hal.ErrSurfaceOutdated
	}
	s.currentIndex = (s.currentIndex + 1) % uint32(len(s.backbuffers))
	return hal.AcquireSuccessOptimal, nil
}
