package null

import "github.com/nullgfx/rhi/hal"

func init() {
	hal.RegisterBackendFactory(hal.VariantNull, func() (hal.Backend, error) {
		return API{}, nil
	})
}
