package rhi

import (
	"github.com/nullgfx/rhi/hal"
	"github.com/nullgfx/rhi/internal/errs"
	"github.com/nullgfx/rhi/internal/snatch"
)

// Adapter represents one physical or virtual GPU, with immutable info,
// limits, and a feature-support predicate (spec.md §3).
type Adapter struct {
	factory  *Factory
	hal      hal.Adapter
	info     hal.AdapterInfo
	features hal.FeatureSet
	limits   hal.Limits
}

// Info returns the adapter's immutable metadata.
func (a *Adapter) Info() hal.AdapterInfo { return a.info }

// Features returns the adapter's supported feature bitmask.
func (a *Adapter) Features() hal.FeatureSet { return a.features }

// HasFeature reports whether the adapter supports every bit in f.
func (a *Adapter) HasFeature(f hal.Feature) bool { return a.features.Has(f) }

// Limits returns the adapter's negotiable resource limits.
func (a *Adapter) Limits() hal.Limits { return a.limits }

// SurfaceCapabilities returns capabilities for surface on this adapter, or
// nil if the adapter cannot present to it.
func (a *Adapter) SurfaceCapabilities(surface *Surface) *hal.SurfaceCapabilities {
	if surface == nil {
		return nil
	}
	return a.hal.SurfaceCapabilities(surface.hal)
}

// DeviceDescriptor configures Adapter.RequestDevice.
type DeviceDescriptor struct {
	RequiredFeatures hal.FeatureSet
	RequiredLimits   hal.Limits
	// MaxFramesInFlight bounds the device's frame pipelining depth
	// (spec.md §6 GPU_MAX_INFLIGHT_FRAMES); 0 selects the default.
	MaxFramesInFlight uint32
	// OnUncapturedError receives errors that no open error scope
	// captures (spec.md §7).
	OnUncapturedError func(*GPUError)
}

// RequestDevice opens a logical Device on this adapter, per spec.md §4.11:
// one Queue is retrieved for every QueueType the adapter exposes.
func (a *Adapter) RequestDevice(desc *DeviceDescriptor) (*Device, error) {
	if desc == nil {
		desc = &DeviceDescriptor{}
	}
	maxFrames := desc.MaxFramesInFlight
	if maxFrames == 0 {
		maxFrames = hal.GPUMaxInflightFrames
	}
	for _, want := range featureBits(desc.RequiredFeatures) {
		if !a.features.Has(want) {
			err := &errs.FeatureError{Resource: "Device", Feature: featureName(want)}
			hal.Logger().Error("rhi: RequestDevice", "error", err)
			return nil, err
		}
	}

	halDev, err := a.hal.Open(&hal.DeviceDescriptor{
		RequiredFeatures:  desc.RequiredFeatures,
		RequiredLimits:    desc.RequiredLimits,
		MaxFramesInFlight: maxFrames,
	})
	if err != nil {
		hal.Logger().Error("rhi: Adapter.Open failed", "error", err)
		return nil, err
	}

	d := &Device{
		adapter:           a,
		snatchLock:        snatch.NewSnatchLock(),
		halDevice:         snatch.NewSnatchable(halDev),
		maxFramesInFlight: maxFrames,
		queues:            make(map[hal.QueueType]*Queue),
	}
	d.errScopes = errs.NewErrorScopeManager(func(e *errs.GPUError) {
		if desc.OnUncapturedError != nil {
			desc.OnUncapturedError(e)
			return
		}
		hal.Logger().Warn("rhi: uncaptured GPU error", "filter", e.Filter, "error", e.Cause)
	})
	for _, t := range halDev.QueueTypes() {
		hq, ok := halDev.Queue(t)
		if !ok {
			continue
		}
		d.queues[t] = &Queue{device: d, hal: hq, queueType: t}
	}
	return d, nil
}

// featureBits decomposes a FeatureSet into its individual set Feature bits.
func featureBits(fs hal.FeatureSet) []hal.Feature {
	var out []hal.Feature
	for i := 0; i < 64; i++ {
		bit := hal.Feature(1) << uint(i)
		if fs.Has(bit) {
			out = append(out, bit)
		}
	}
	return out
}

// Destroy releases the adapter's native handle.
func (a *Adapter) Destroy() { a.hal.Destroy() }

// featureName maps a single Feature bit to a diagnostic name for
// FeatureError messages (hal.Feature carries no String method of its own).
func featureName(f hal.Feature) string {
	switch f {
	case hal.FeatureDepthClipControl:
		return "depth-clip-control"
	case hal.FeatureTimestampQuery:
		return "timestamp-query"
	case hal.FeaturePipelineStatisticsQuery:
		return "pipeline-statistics-query"
	case hal.FeatureTextureCompressionBC:
		return "texture-compression-bc"
	case hal.FeatureTextureCompressionETC2:
		return "texture-compression-etc2"
	case hal.FeatureTextureCompressionASTC:
		return "texture-compression-astc"
	case hal.FeatureTextureCompressionASTCHDR:
		return "texture-compression-astc-hdr"
	case hal.FeatureIndirectFirstInstance:
		return "indirect-first-instance"
	case hal.FeatureMultiDrawIndirect:
		return "multi-draw-indirect"
	case hal.FeatureMultiDrawIndirectCount:
		return "multi-draw-indirect-count"
	case hal.FeatureMeshShader:
		return "mesh-shader"
	case hal.FeatureRayTracing:
		return "ray-tracing"
	case hal.FeatureVariableRateShading:
		return "variable-rate-shading"
	case hal.FeatureConservativeRasterization:
		return "conservative-rasterization"
	case hal.FeatureShaderFloat16:
		return "shader-float16"
	case hal.FeatureDescriptorIndexing:
		return "descriptor-indexing"
	default:
		return "unknown-feature"
	}
}
