// Package vk is the Vulkan-class hal.Backend: a conformant implementation
// of spec.md's RHI against a Vulkan-family native API. It loads the
// platform Vulkan loader dynamically via goffi (physical devices are not
// enumerated, so its Instance reports no hal.Adapter), and implements the
// enhanced batched-barrier path
// (spec.md §4.6) with the public top-left-origin Viewport negated to
// Vulkan's bottom-left convention (spec.md §9).
package vk
