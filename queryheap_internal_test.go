package rhi

import (
	"testing"

	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/internal/errs"
)

// CreateQueryHeap must refuse a query type whose adapter feature is not
// enabled, before ever reaching the HAL (spec.md §4.12). Built as an
// internal test since it needs to fabricate an Adapter with a feature set
// the null backend never advertises on its own.
func TestCreateQueryHeapGatesOnAdapterFeatures(t *testing.T) {
	adapter := &Adapter{features: 0}
	device := &Device{
		adapter:   adapter,
		errScopes: errs.NewErrorScopeManager(func(*errs.GPUError) {}),
	}

	_, err := device.CreateQueryHeap(&hal.QueryHeapDescriptor{Type: hal.QueryTypeTimestamp, Count: 1})
	if err != hal.ErrFeatureNotSupported {
		t.Fatalf("CreateQueryHeap(Timestamp) with no features = %v, want ErrFeatureNotSupported", err)
	}

	_, err = device.CreateQueryHeap(&hal.QueryHeapDescriptor{Type: hal.QueryTypePipelineStatistics, Count: 1})
	if err != hal.ErrFeatureNotSupported {
		t.Fatalf("CreateQueryHeap(PipelineStatistics) with no features = %v, want ErrFeatureNotSupported", err)
	}
}
