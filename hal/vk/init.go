package vk

import "github.com/nullgfx/rhi/hal"

func init() {
	hal.RegisterBackendFactory(hal.VariantVulkan, func() (hal.Backend, error) {
		return API{}, nil
	})
}
