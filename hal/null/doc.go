// Package null implements the conformant headless backend: every hal
// interface backed by real host memory instead of a native graphics API.
// It exists so the rhi package's reference counting, deferred destruction
// and frame-pacing logic, and the hal barrier-batching contract, are
// exercised end-to-end (seed scenarios S1-S6) without a GPU. It does not
// use the internal/upload allocator.
package null
