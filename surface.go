package rhi

import (
	"sync"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/pixelformat"
)

// Surface is a presentable swapchain bound to a platform native window
// (spec.md §4.10). Backbuffer textures are surface-owned: CreateSurface
// never allocates one; Configure (re)creates the swapchain and invalidates
// any previously wrapped backbuffers.
type Surface struct {
	factory *Factory
	hal     hal.Surface
	device  *Device

	mu       sync.Mutex
	wrappers map[hal.NativeHandle]*Texture
}

// Configure (re)creates the swapchain for device, waiting it idle first and
// releasing any previously wrapped backbuffer textures (spec.md §4.10).
func (s *Surface) Configure(device *Device, cfg *hal.SurfaceConfiguration) error {
	if device == nil {
		return errInvalid("Surface.Configure", "device", "device is nil")
	}
	if cfg == nil {
		return device.invalid("Surface.Configure", "cfg", "configuration is nil")
	}
	err := device.withDevice(func(hd hal.Device) error {
		return s.hal.Configure(hd, cfg)
	})
	if err != nil {
		hal.Logger().Error("rhi: Surface.Configure failed", "error", err)
		return err
	}
	s.device = device
	s.mu.Lock()
	s.wrappers = nil
	s.mu.Unlock()
	return nil
}

// Unconfigure tears down the swapchain.
func (s *Surface) Unconfigure() {
	s.hal.Unconfigure()
	s.mu.Lock()
	s.wrappers = nil
	s.mu.Unlock()
}

func (s *Surface) CurrentFormat() pixelformat.Format { return pixelformat.Format(s.hal.CurrentFormat()) }
func (s *Surface) Width() uint32                      { return s.hal.Width() }
func (s *Surface) Height() uint32                     { return s.hal.Height() }

// CurrentBackBufferTexture returns the texture at the swapchain's current
// backbuffer index, wrapped as a surface-owned Texture.
func (s *Surface) CurrentBackBufferTexture() *Texture {
	ht := s.hal.CurrentBackBuffer()
	if ht == nil {
		return nil
	}
	return s.wrapBackbuffer(ht)
}

// wrapBackbuffer returns the cached surface-owned Texture wrapper for ht,
// creating one on first request. Backbuffer textures never schedule native
// destruction on Release: the swapchain owns them (spec.md §4.10).
func (s *Surface) wrapBackbuffer(ht hal.Texture) *Texture {
	key := ht.Native()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wrappers == nil {
		s.wrappers = make(map[hal.NativeHandle]*Texture)
	}
	if t, ok := s.wrappers[key]; ok {
		return t
	}
	t := &Texture{baseResource: newBaseResource(""), device: s.device, hal: ht, surfaceOwned: true}
	s.wrappers[key] = t
	return t
}

// Present submits the surface's pending backbuffer to queue for display
// (spec.md §4.6's acquire/submit/present ordering).
func (s *Surface) Present(queue *Queue) (hal.AcquireResult, error) {
	var result hal.AcquireResult
	err := queue.device.withDevice(func(hal.Device) error {
		var err error
		result, err = s.hal.Present(queue.hal)
		return err
	})
	if err != nil {
		hal.Logger().Error("rhi: Surface.Present failed", "error", err)
	}
	return result, err
}
