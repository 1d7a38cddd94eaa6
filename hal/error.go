package hal

import "errors"

// Sentinel errors representing the closed error-kind set from spec.md §7.
// Every backend returns these (wrapped with %w via fmt.Errorf where extra
// context helps) rather than inventing backend-specific error types.
var (
	// ErrInvalidOperation indicates a precondition violation: a null
	// argument, begin-twice, submitting a foreign command buffer.
	ErrInvalidOperation = errors.New("hal: invalid operation")

	// ErrOutOfMemory indicates a native allocation failed.
	ErrOutOfMemory = errors.New("hal: out of memory")

	// ErrDeviceLost indicates the underlying device was removed or poisoned.
	// The device cannot be recovered; a new one must be requested.
	ErrDeviceLost = errors.New("hal: device lost")

	// ErrSurfaceLost indicates a surface's native swapchain failed
	// unrecoverably; the RHI reports this to the application without retry.
	ErrSurfaceLost = errors.New("hal: surface lost")

	// ErrSurfaceOutdated indicates the surface configuration is stale
	// (resize, display change); Surface.Configure must be called again.
	ErrSurfaceOutdated = errors.New("hal: surface outdated")

	// ErrTimeout indicates an acquire operation exceeded its 1s bound.
	ErrTimeout = errors.New("hal: timeout")

	// ErrZeroArea indicates a surface configure request with zero width or height.
	ErrZeroArea = errors.New("hal: surface width and height must be non-zero")

	// ErrBackendNotFound indicates no factory is registered for a Variant.
	ErrBackendNotFound = errors.New("hal: backend not found")

	// ErrFeatureNotSupported indicates an operation required an adapter
	// Feature that was not enabled when the device was opened.
	ErrFeatureNotSupported = errors.New("hal: feature not supported")
)
