package rhi

import "github.com/nullgfx/rhi/hal"

// ComputePassEncoder is the command surface within one compute pass
// (spec.md §4.8).
type ComputePassEncoder struct {
	device *Device
	hal    hal.ComputePassEncoder
}

func (e *ComputePassEncoder) SetPipeline(p *ComputePipeline) { e.hal.SetPipeline(p.halPipeline()) }

func (e *ComputePassEncoder) SetPushConstants(rangeIndex int, data []byte) {
	e.hal.SetPushConstants(rangeIndex, data)
}

func (e *ComputePassEncoder) Dispatch(x, y, z uint32) { e.hal.Dispatch(x, y, z) }

func (e *ComputePassEncoder) DispatchIndirect(buf *Buffer, offset uint64) {
	e.hal.DispatchIndirect(buf.halBuffer(), offset)
}

func (e *ComputePassEncoder) PushDebugGroup(label string)    { e.hal.PushDebugGroup(label) }
func (e *ComputePassEncoder) PopDebugGroup()                 { e.hal.PopDebugGroup() }
func (e *ComputePassEncoder) InsertDebugMarker(label string) { e.hal.InsertDebugMarker(label) }

// End closes the compute pass.
func (e *ComputePassEncoder) End() { e.hal.End() }
