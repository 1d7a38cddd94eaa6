//go:build windows

package dx12

import "github.com/nullgfx/rhi/hal"

func init() {
	hal.RegisterBackendFactory(hal.VariantD3D12, func() (hal.Backend, error) {
		return API{}, nil
	})
}
