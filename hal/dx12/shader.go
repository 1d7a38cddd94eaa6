//go:build windows

package dx12

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/hlsl"

	"github.com/nullgfx/rhi/hal"
)

// compileWGSLToHLSL cross-compiles a WGSL shader module to HLSL via naga,
// mirroring the teacher's WGSL -> naga IR -> HLSL -> D3DCompile pipeline.
// The final D3DCompile step (HLSL source to DXBC bytecode through
// d3dcompiler_47.dll) needs a live COM blob round trip this condensed
// backend does not perform, the same simplification hal/vk applies to
// vkCreateInstance; the HLSL text this function returns is what a real
// D3DCompile call would be handed.
func compileWGSLToHLSL(source string, entryPoint string) (string, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return "", fmt.Errorf("dx12: WGSL parse error: %w", err)
	}
	module, err := naga.Lower(ast)
	if err != nil {
		return "", fmt.Errorf("dx12: WGSL lower error: %w", err)
	}
	hlslSource, _, err := hlsl.Compile(module, hlsl.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("dx12: HLSL compile error for entry point %q: %w", entryPoint, err)
	}
	return hlslSource, nil
}

func shaderStageTarget(stage hal.ShaderStage) string {
	switch stage {
	case hal.ShaderStageVertex:
		return "vs_5_1"
	case hal.ShaderStageFragment:
		return "ps_5_1"
	case hal.ShaderStageCompute:
		return "cs_5_1"
	default:
		return "vs_5_1"
	}
}
