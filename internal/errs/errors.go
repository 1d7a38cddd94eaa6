// Package errs carries the typed validation-error and error-scope
// machinery shared by every rhi resource constructor, adapted from the
// teacher's core/error.go and core/error_scope.go and generalized from its
// ID-registry vocabulary to rhi's resource names/fields.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that are not backend-specific (hal already
// defines the backend-facing sentinels this package's errors wrap).
var (
	ErrAlreadyDestroyed = errors.New("rhi: resource already destroyed")
	ErrDeviceDestroyed  = errors.New("rhi: device destroyed")
)

// ValidationError represents a non-creating validation failure: logged and
// returned without effect, never panicked (spec.md §7's policy).
type ValidationError struct {
	Resource string
	Field    string
	Message  string
	Cause    error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Resource, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// NewValidationError builds a ValidationError with a literal message.
func NewValidationError(resource, field, message string) *ValidationError {
	return &ValidationError{Resource: resource, Field: field, Message: message}
}

// NewValidationErrorf builds a ValidationError with a formatted message.
func NewValidationErrorf(resource, field, format string, args ...any) *ValidationError {
	return &ValidationError{Resource: resource, Field: field, Message: fmt.Sprintf(format, args...)}
}

// LimitError reports a request exceeding an adapter/device limit.
type LimitError struct {
	Resource string
	Field    string
	Requested, Limit uint64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s.%s: requested %d exceeds limit %d", e.Resource, e.Field, e.Requested, e.Limit)
}

// FeatureError reports use of a GPUFeature the device was not opened with.
type FeatureError struct {
	Resource string
	Feature  string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s requires unsupported feature %s", e.Resource, e.Feature)
}

// CreateBufferError wraps a backend construction failure with the field
// that failed validation before the backend was even called, when known.
type CreateBufferError struct {
	Message string
	Cause   error
}

func (e *CreateBufferError) Error() string { return "CreateBuffer: " + e.Message }
func (e *CreateBufferError) Unwrap() error { return e.Cause }
