package vk

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/spirv"

	"github.com/nullgfx/rhi/hal"
)

// compileWGSLToSPIRV cross-compiles a WGSL shader module to SPIR-V via
// naga (Vulkan consumes SPIR-V natively; hal/dx12 instead cross-compiles
// WGSL to HLSL through naga's hlsl back end).
func compileWGSLToSPIRV(source string, entryPoint string) ([]byte, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("vk: WGSL parse error: %w", err)
	}
	module, err := naga.Lower(ast)
	if err != nil {
		return nil, fmt.Errorf("vk: WGSL lower error: %w", err)
	}
	code, err := spirv.Compile(module, spirv.Options{EntryPoint: entryPoint})
	if err != nil {
		return nil, fmt.Errorf("vk: SPIR-V compile error for entry point %q: %w", entryPoint, err)
	}
	return code, nil
}
