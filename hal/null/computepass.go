package null

import "github.com/nullgfx/rhi/hal"

type computePassEncoder struct {
	parent       *CommandEncoder
	pipeline     hal.ComputePipeline
	DispatchCount int
}

func newComputePassEncoder(parent *CommandEncoder) *computePassEncoder {
	return &computePassEncoder{parent: parent}
}

func (e *computePassEncoder) SetPipeline(p hal.ComputePipeline) { e.pipeline = p }

func (e *computePassEncoder) SetPushConstants(rangeIndex int, data []byte) {}

func (e *computePassEncoder) Dispatch(x, y, z uint32) { e.DispatchCount++ }

func (e *computePassEncoder) DispatchIndirect(buf hal.Buffer, offset uint64) {
	e.DispatchCount++
}

func (e *computePassEncoder) PushDebugGroup(label string)   {}
func (e *computePassEncoder) PopDebugGroup()                {}
func (e *computePassEncoder) InsertDebugMarker(label string) {}

func (e *computePassEncoder) End() {}
