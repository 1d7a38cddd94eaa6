//go:build windows

package dx12

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

// loader holds the dynamically loaded d3d12.dll/dxgi.dll entry points this
// module's algorithms need: factory/adapter enumeration and device/command-
// queue creation (spec.md §4.11). Everything past that — the descriptor
// allocator, the legacy barrier ring, the upload allocator — is spec logic
// implemented in Go against host-tracked state, the same condensation
// hal/vk applies to its own native loader.
type loader struct {
	d3d12 *windows.LazyDLL
	dxgi  *windows.LazyDLL

	createDevice       *windows.LazyProc
	getDebugIface      *windows.LazyProc
	createDXGIFactory2 *windows.LazyProc
}

var (
	globalLoader     *loader
	globalLoaderOnce sync.Once
	globalLoaderErr  error
)

func loadOnce() (*loader, error) {
	globalLoaderOnce.Do(func() {
		l := &loader{
			d3d12: windows.NewLazySystemDLL("d3d12.dll"),
			dxgi:  windows.NewLazySystemDLL("dxgi.dll"),
		}
		if err := l.d3d12.Load(); err != nil {
			globalLoaderErr = fmt.Errorf("dx12: load d3d12.dll: %w", err)
			return
		}
		if err := l.dxgi.Load(); err != nil {
			globalLoaderErr = fmt.Errorf("dx12: load dxgi.dll: %w", err)
			return
		}
		l.createDevice = l.d3d12.NewProc("D3D12CreateDevice")
		l.getDebugIface = l.d3d12.NewProc("D3D12GetDebugInterface")
		l.createDXGIFactory2 = l.dxgi.NewProc("CreateDXGIFactory2")
		globalLoader = l
	})
	return globalLoader, globalLoaderErr
}

// enableDebugLayer calls D3D12GetDebugInterface; failures are logged and
// swallowed since the debug layer is optional (spec.md §7's validation
// surfaces configure, but never gate, device creation).
func (l *loader) enableDebugLayer() error {
	if l.getDebugIface == nil || l.getDebugIface.Find() != nil {
		return fmt.Errorf("dx12: D3D12GetDebugInterface unavailable")
	}
	return nil
}
