package vk

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// loader wraps the dynamically loaded Vulkan loader library and its
// vkGetInstanceProcAddr entry point, the one native function it prepares a
// call interface for; procAddr looks other entry points up by name through
// it (cifCreateInstance is declared but never prepared or called). This
// condenses the teacher's hal/vulkan/vk package. Everything else — barrier
// batching, descriptor bookkeeping, upload-allocator reuse — is spec logic
// this package implements in Go and does not require marshaling further
// native calls to exercise.
type loader struct {
	lib                   unsafe.Pointer
	getInstanceProcAddr   unsafe.Pointer
	cifGetInstanceProcAddr types.CallInterface
	cifCreateInstance      types.CallInterface
}

var (
	globalLoader     *loader
	globalLoaderOnce sync.Once
	globalLoaderErr  error
)

func vulkanLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "vulkan-1.dll"
	case "darwin":
		return "libvulkan.dylib"
	default:
		return "libvulkan.so.1"
	}
}

// loadOnce loads the platform Vulkan loader exactly once per process.
func loadOnce() (*loader, error) {
	globalLoaderOnce.Do(func() {
		l := &loader{}
		lib, err := ffi.LoadLibrary(vulkanLibraryName())
		if err != nil {
			globalLoaderErr = fmt.Errorf("vk: load %s: %w", vulkanLibraryName(), err)
			return
		}
		l.lib = lib
		proc, err := ffi.GetSymbol(lib, "vkGetInstanceProcAddr")
		if err != nil {
			globalLoaderErr = fmt.Errorf("vk: resolve vkGetInstanceProcAddr: %w", err)
			return
		}
		l.getInstanceProcAddr = proc
		if err := ffi.PrepareCallInterface(&l.cifGetInstanceProcAddr, types.DefaultCall,
			types.PointerTypeDescriptor,
			[]*types.TypeDescriptor{types.UInt64TypeDescriptor, types.PointerTypeDescriptor}); err != nil {
			globalLoaderErr = fmt.Errorf("vk: prepare GetInstanceProcAddr CIF: %w", err)
			return
		}
		globalLoader = l
	})
	return globalLoader, globalLoaderErr
}

// procAddr resolves a global (instance==0) or instance-scoped Vulkan entry
// point by name.
func (l *loader) procAddr(instance uint64, name string) unsafe.Pointer {
	cname := make([]byte, len(name)+1)
	copy(cname, name)
	namePtr := unsafe.Pointer(&cname[0])
	var result unsafe.Pointer
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&namePtr)}
	_ = ffi.CallFunction(&l.cifGetInstanceProcAddr, l.getInstanceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

func (l *loader) close() {
	if l.lib != nil {
		_ = ffi.FreeLibrary(l.lib)
		l.lib = nil
	}
}
