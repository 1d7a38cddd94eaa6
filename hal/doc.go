// Package hal defines the backend-agnostic hardware abstraction layer for
// the rendering hardware interface: interfaces and shared types that a
// Vulkan-class backend, a D3D12-class backend, and the conformant Null
// backend all implement identically.
//
// The HAL is organized top-down:
//
//  1. Backend   - factory for an Instance, registered by variant
//  2. Instance  - entry point for adapter enumeration and surface creation
//  3. Adapter   - physical GPU: info, limits, feature queries, device opening
//  4. Device    - resource factory, owner of the per-type queues, idle wait
//  5. Queue     - per-type (graphics/compute/copy) submission and present
//  6. CommandEncoder/CommandBuffer - command recording and barrier batching
//
// hal intentionally knows nothing about reference counting, deferred
// destruction or frame pacing: those live in the rhi package, which is the
// one public entry point applications use. The copy/upload allocator lives
// in internal/upload and is used by the hal/vk and hal/dx12 devices. hal is
// an internal implementation detail shared by every backend package.
package hal
