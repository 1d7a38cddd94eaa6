package rhi

import "github.com/nullgfx/rhi/hal"

// ColorAttachment is one render pass color target.
type ColorAttachment struct {
	View       *TextureView
	Texture    *Texture
	MipLevel   uint32
	ArrayLayer uint32
	Load       hal.LoadAction
	Store      hal.StoreAction
	ClearColor [4]float32
}

func (a ColorAttachment) toHAL() hal.ColorAttachment {
	return hal.ColorAttachment{
		View:       a.View.halView(),
		Texture:    a.Texture.halTexture(),
		MipLevel:   a.MipLevel,
		ArrayLayer: a.ArrayLayer,
		Load:       a.Load,
		Store:      a.Store,
		ClearColor: a.ClearColor,
	}
}

// DepthStencilAttachment is a render pass's optional depth/stencil target.
type DepthStencilAttachment struct {
	View          *TextureView
	Texture       *Texture
	MipLevel      uint32
	ArrayLayer    uint32
	DepthLoad     hal.LoadAction
	DepthStore    hal.StoreAction
	StencilLoad   hal.LoadAction
	StencilStore  hal.StoreAction
	ClearDepth    float32
	ClearStencil  uint32
	DepthReadOnly bool
}

func (a *DepthStencilAttachment) toHAL() *hal.DepthStencilAttachment {
	if a == nil {
		return nil
	}
	return &hal.DepthStencilAttachment{
		View:          a.View.halView(),
		Texture:       a.Texture.halTexture(),
		MipLevel:      a.MipLevel,
		ArrayLayer:    a.ArrayLayer,
		DepthLoad:     a.DepthLoad,
		DepthStore:    a.DepthStore,
		StencilLoad:   a.StencilLoad,
		StencilStore:  a.StencilStore,
		ClearDepth:    a.ClearDepth,
		ClearStencil:  a.ClearStencil,
		DepthReadOnly: a.DepthReadOnly,
	}
}

// ShadingRateAttachment is a render pass's optional variable-rate-shading
// surface (spec.md §1(e)).
type ShadingRateAttachment struct {
	View     *TextureView
	Texture  *Texture
	TileSize uint32
}

func (a *ShadingRateAttachment) toHAL() *hal.ShadingRateAttachment {
	if a == nil {
		return nil
	}
	return &hal.ShadingRateAttachment{
		View:     a.View.halView(),
		Texture:  a.Texture.halTexture(),
		TileSize: a.TileSize,
	}
}

// RenderPassDescriptor configures CommandEncoder.BeginRenderPass.
type RenderPassDescriptor struct {
	Label        string
	ColorTargets []ColorAttachment
	DepthStencil *DepthStencilAttachment
	ShadingRate  *ShadingRateAttachment
}

func (desc *RenderPassDescriptor) toHAL() *hal.RenderPassDescriptor {
	colors := make([]hal.ColorAttachment, len(desc.ColorTargets))
	for i, c := range desc.ColorTargets {
		colors[i] = c.toHAL()
	}
	return &hal.RenderPassDescriptor{
		Label:        desc.Label,
		ColorTargets: colors,
		DepthStencil: desc.DepthStencil.toHAL(),
		ShadingRate:  desc.ShadingRate.toHAL(),
	}
}

// RenderPassEncoder is the command surface within one render pass
// (spec.md §4.7).
type RenderPassEncoder struct {
	device *Device
	hal    hal.RenderPassEncoder
}

func (e *RenderPassEncoder) SetViewport(vp []hal.Viewport)       { e.hal.SetViewport(vp) }
func (e *RenderPassEncoder) SetScissorRect(sc []hal.ScissorRect) { e.hal.SetScissorRect(sc) }
func (e *RenderPassEncoder) SetBlendColor(r, g, b, a float32)    { e.hal.SetBlendColor(r, g, b, a) }
func (e *RenderPassEncoder) SetStencilReference(ref uint32)      { e.hal.SetStencilReference(ref) }

func (e *RenderPassEncoder) SetVertexBuffer(slot uint32, buf *Buffer, offset uint64) {
	e.hal.SetVertexBuffer(slot, buf.halBuffer(), offset)
}

func (e *RenderPassEncoder) SetIndexBuffer(buf *Buffer, format hal.IndexFormat, offset uint64) {
	e.hal.SetIndexBuffer(buf.halBuffer(), format, offset)
}

func (e *RenderPassEncoder) SetPipeline(p *RenderPipeline) { e.hal.SetPipeline(p.halPipeline()) }

func (e *RenderPassEncoder) SetPushConstants(rangeIndex int, data []byte) {
	e.hal.SetPushConstants(rangeIndex, data)
}

func (e *RenderPassEncoder) SetShadingRate(rate uint32) { e.hal.SetShadingRate(rate) }

func (e *RenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	e.hal.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (e *RenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	e.hal.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

func (e *RenderPassEncoder) DrawIndirect(buf *Buffer, offset uint64) {
	e.hal.DrawIndirect(buf.halBuffer(), offset)
}

func (e *RenderPassEncoder) DrawIndexedIndirect(buf *Buffer, offset uint64) {
	e.hal.DrawIndexedIndirect(buf.halBuffer(), offset)
}

func (e *RenderPassEncoder) MultiDrawIndirect(buf *Buffer, offset uint64, maxCount uint32, countBuf *Buffer, countOffset uint64) {
	e.hal.MultiDrawIndirect(buf.halBuffer(), offset, maxCount, countBuf.halBuffer(), countOffset)
}

func (e *RenderPassEncoder) MultiDrawIndexedIndirect(buf *Buffer, offset uint64, maxCount uint32, countBuf *Buffer, countOffset uint64) {
	e.hal.MultiDrawIndexedIndirect(buf.halBuffer(), offset, maxCount, countBuf.halBuffer(), countOffset)
}

func (e *RenderPassEncoder) BeginOcclusionQuery(index uint32) { e.hal.BeginOcclusionQuery(index) }
func (e *RenderPassEncoder) EndOcclusionQuery(index uint32)   { e.hal.EndOcclusionQuery(index) }

func (e *RenderPassEncoder) PushDebugGroup(label string)    { e.hal.PushDebugGroup(label) }
func (e *RenderPassEncoder) PopDebugGroup()                 { e.hal.PopDebugGroup() }
func (e *RenderPassEncoder) InsertDebugMarker(label string) { e.hal.InsertDebugMarker(label) }

// End closes the render pass.
func (e *RenderPassEncoder) End() { e.hal.End() }
