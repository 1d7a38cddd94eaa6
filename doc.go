// Package rhi is the public entry point for the rendering hardware
// interface: a backend-agnostic GPU API multiplexed over a Vulkan-class
// backend (hal/vk), a D3D12-class backend (hal/dx12), and a conformant
// headless Null backend (hal/null), per spec.md.
//
// Applications obtain a Factory for a chosen backend, enumerate Adapters,
// request a Device, retrieve per-type Queues, create Surfaces from a
// native window handle, and each frame: acquire command buffers from
// queues, record passes, submit, and call Device.CommitFrame.
//
// rhi adds three things hal intentionally does not have: the reference-
// counted resource-lifetime protocol with frame-indexed deferred
// destruction (spec.md §3/§4.2), device-wide error scopes, and
// snatch-lock-guarded access to the underlying hal.Device so that a
// concurrent Device.Destroy cannot race a resource creation call.
package rhi
