package null

import "github.com/nullgfx/rhi/hal"

// renderPassEncoder is the null backend's hal.RenderPassEncoder. State
// changes are recorded but have no rasterization effect; draw calls only
// validate arguments and record bookkeeping so higher layers (and tests)
// can assert the command stream shape without a rasterizer.
type renderPassEncoder struct {
	parent   *CommandEncoder
	pipeline hal.RenderPipeline

	DrawCount        int
	LastVertexCount  uint32
	LastInstanceCount uint32
}

func newRenderPassEncoder(parent *CommandEncoder, desc *hal.RenderPassDescriptor) *renderPassEncoder {
	for _, ct := range desc.ColorTargets {
		if ct.Texture != nil {
			parent.TextureBarrier(ct.Texture, hal.TextureLayoutRenderTarget, ct.MipLevel, 1, ct.ArrayLayer, 1, hal.AspectColor)
		}
	}
	if desc.DepthStencil != nil && desc.DepthStencil.Texture != nil {
		layout := hal.TextureLayoutDepthWrite
		if desc.DepthStencil.DepthReadOnly {
			layout = hal.TextureLayoutDepthRead
		}
		parent.TextureBarrier(desc.DepthStencil.Texture, layout, desc.DepthStencil.MipLevel, 1, desc.DepthStencil.ArrayLayer, 1, hal.AspectDepth|hal.AspectStencil)
	}
	if desc.ShadingRate != nil && desc.ShadingRate.Texture != nil {
		parent.TextureBarrier(desc.ShadingRate.Texture, hal.TextureLayoutShadingRateSurface, 0, 1, 0, 1, hal.AspectColor)
	}
	parent.FlushBarriers()
	return &renderPassEncoder{parent: parent}
}

func (e *renderPassEncoder) SetViewport(vp []hal.Viewport)     {}
func (e *renderPassEncoder) SetScissorRect(sc []hal.ScissorRect) {}
func (e *renderPassEncoder) SetBlendColor(r, g, b, a float32)  {}
func (e *renderPassEncoder) SetStencilReference(ref uint32)    {}
func (e *renderPassEncoder) SetVertexBuffer(slot uint32, buf hal.Buffer, offset uint64) {}
func (e *renderPassEncoder) SetIndexBuffer(buf hal.Buffer, format hal.IndexFormat, offset uint64) {}

func (e *renderPassEncoder) SetPipeline(p hal.RenderPipeline) { e.pipeline = p }

func (e *renderPassEncoder) SetPushConstants(rangeIndex int, data []byte) {}

func (e *renderPassEncoder) SetShadingRate(rate uint32) {}

func (e *renderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	e.DrawCount++
	e.LastVertexCount = vertexCount
	e.LastInstanceCount = instanceCount
}

func (e *renderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	e.DrawCount++
	e.LastVertexCount = indexCount
	e.LastInstanceCount = instanceCount
}

func (e *renderPassEncoder) DrawIndirect(buf hal.Buffer, offset uint64) {
	b, ok := buf.(*Buffer)
	if !ok || offset+16 > uint64(len(b.data)) {
		return
	}
	cmd := decodeDrawIndirect(b.data[offset : offset+16])
	e.DrawCount++
	e.LastVertexCount = cmd.VertexCount
	e.LastInstanceCount = cmd.InstanceCount
}

func (e *renderPassEncoder) DrawIndexedIndirect(buf hal.Buffer, offset uint64) {
	e.DrawCount++
}

func (e *renderPassEncoder) MultiDrawIndirect(buf hal.Buffer, offset uint64, maxCount uint32, countBuf hal.Buffer, countOffset uint64) {
	count := maxCount
	if countBuf != nil {
		if cb, ok := countBuf.(*Buffer); ok && countOffset+4 <= uint64(len(cb.data)) {
			c := decodeUint32(cb.data[countOffset : countOffset+4])
			if c < count {
				count = c
			}
		}
	}
	for i := uint32(0); i < count; i++ {
		e.DrawIndirect(buf, offset+uint64(i)*16)
	}
}

func (e *renderPassEncoder) MultiDrawIndexedIndirect(buf hal.Buffer, offset uint64, maxCount uint32, countBuf hal.Buffer, countOffset uint64) {
	count := maxCount
	if countBuf != nil {
		if cb, ok := countBuf.(*Buffer); ok && countOffset+4 <= uint64(len(cb.data)) {
			c := decodeUint32(cb.data[countOffset : countOffset+4])
			if c < count {
				count = c
			}
		}
	}
	for i := uint32(0); i < count; i++ {
		e.DrawIndexedIndirect(buf, offset+uint64(i)*20)
	}
}

func (e *renderPassEncoder) BeginOcclusionQuery(index uint32) {}
func (e *renderPassEncoder) EndOcclusionQuery(index uint32)   {}

func (e *renderPassEncoder) PushDebugGroup(label string)   {}
func (e *renderPassEncoder) PopDebugGroup()                {}
func (e *renderPassEncoder) InsertDebugMarker(label string) {}

func (e *renderPassEncoder) End() {}

func decodeUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func decodeDrawIndirect(b []byte) hal.DrawIndirectCommand {
	return hal.DrawIndirectCommand{
		VertexCount:   decodeUint32(b[0:4]),
		InstanceCount: decodeUint32(b[4:8]),
		FirstVertex:   decodeUint32(b[8:12]),
		FirstInstance: decodeUint32(b[12:16]),
	}
}
