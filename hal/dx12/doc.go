//go:build windows

// Package dx12 is the D3D12-class hal.Backend: the only backend that owns
// a descriptor allocator (spec.md §4.3) since Vulkan's descriptor-set
// model needs none, and the only one that falls back to the legacy
// fixed-size barrier ring (spec.md §4.6) when the enhanced batched path
// is unavailable on a given driver.
package dx12
