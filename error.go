package rhi

import (
	"errors"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/internal/errs"
)

// Sentinel errors re-exported from hal, per spec.md §7's closed error-kind
// set.
var (
	ErrInvalidOperation    = hal.ErrInvalidOperation
	ErrOutOfMemory         = hal.ErrOutOfMemory
	ErrDeviceLost          = hal.ErrDeviceLost
	ErrSurfaceLost         = hal.ErrSurfaceLost
	ErrSurfaceOutdated     = hal.ErrSurfaceOutdated
	ErrTimeout             = hal.ErrTimeout
	ErrFeatureNotSupported = hal.ErrFeatureNotSupported
)

// Public API sentinel errors.
var (
	// ErrReleased is returned when operating on a resource whose refcount
	// has already reached zero.
	ErrReleased = errors.New("rhi: resource already released")

	// ErrNoAdapters is returned when a backend's instance enumerates no
	// adapters at all.
	ErrNoAdapters = errors.New("rhi: no adapters available")

	// ErrNoBackends is returned by NewFactory when no backend is registered
	// for the requested (or, for Undefined, any) Variant.
	ErrNoBackends = errors.New("rhi: no backends registered (import a backend package)")

	// ErrDeviceDestroyed is returned by any Device operation once
	// Device.Destroy has completed or the snatch lock has taken the
	// underlying hal.Device.
	ErrDeviceDestroyed = errs.ErrDeviceDestroyed
)

// GPUError and ErrorFilter are re-exported from internal/errs so callers
// of Device.PushErrorScope/PopErrorScope never need to import it directly.
type GPUError = errs.GPUError
type ErrorFilter = errs.ErrorFilter

const (
	ErrorFilterValidation  = errs.ErrorFilterValidation
	ErrorFilterOutOfMemory = errs.ErrorFilterOutOfMemory
	ErrorFilterInternal    = errs.ErrorFilterInternal
)

// errInvalid builds a *errs.ValidationError and logs it at warn, per
// spec.md §7's policy that non-creating validation failures log and
// return without effect rather than panic.
func errInvalid(resource, field, message string) error {
	e := errs.NewValidationError(resource, field, message)
	hal.Logger().Warn("rhi: validation error", "error", e)
	return e
}

// invalid is errInvalid plus reporting to dev's error-scope stack, so a
// validation failure surfaced from within a PushErrorScope(ErrorFilterValidation)
// block is captured by PopErrorScope instead of only being logged (spec.md §7).
func (d *Device) invalid(resource, field, message string) error {
	e := errInvalid(resource, field, message)
	d.reportError(e)
	return e
}
