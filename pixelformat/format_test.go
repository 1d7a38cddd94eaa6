package pixelformat

import "testing"

func allFormats() []Format {
	out := make([]Format, 0, formatCount)
	for f := Format(0); f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

func TestBitsPerPixelInvariant(t *testing.T) {
	for _, f := range allFormats() {
		info := GetInfo(f)
		area := info.BlockWidth * info.BlockHeight
		if area == 0 {
			continue
		}
		want := info.BytesPerBlock * 8 / area
		if got := BitsPerPixel(f); got != want {
			t.Errorf("%s: BitsPerPixel = %d, want %d", info.Name, got, want)
		}
		// ASTC blocks are always 128 bits, so footprints such as 5x4 cannot divide evenly.
		if !IsCompressedASTC(f) && (info.BytesPerBlock*8)%area != 0 {
			t.Errorf("%s: bytesPerBlock*8 (%d) not evenly divisible by block area (%d)", info.Name, info.BytesPerBlock*8, area)
		}
	}
}

func TestSrgbInvolution(t *testing.T) {
	for _, f := range allFormats() {
		if !IsSrgb(SrgbToLinear(f)) {
			continue
		}
		t.Fatalf("%s: SrgbToLinear did not produce a linear format", GetInfo(f).Name)
	}
	for _, f := range allFormats() {
		if GetInfo(f).Kind != KindUnormSrgb {
			continue
		}
		linear := SrgbToLinear(f)
		if IsSrgb(linear) {
			t.Errorf("%s: srgbToLinear(%s) is still sRGB", GetInfo(f).Name, GetInfo(linear).Name)
		}
		back := LinearToSrgb(linear)
		if back != f {
			t.Errorf("%s: linearToSrgb(srgbToLinear(f)) = %s, want involution", GetInfo(f).Name, GetInfo(back).Name)
		}
	}
}

func TestDepthStencilPredicates(t *testing.T) {
	for _, f := range allFormats() {
		if got, want := IsDepthStencil(f), IsDepth(f) || IsStencil(f); got != want {
			t.Errorf("%s: IsDepthStencil = %v, want %v", GetInfo(f).Name, got, want)
		}
		if IsDepthOnly(f) && (!IsDepth(f) || IsStencil(f)) {
			t.Errorf("%s: IsDepthOnly true but depth/stencil predicates disagree", GetInfo(f).Name)
		}
	}
	if !IsDepthStencil(Depth24UnormStencil8) || IsDepthOnly(Depth24UnormStencil8) {
		t.Error("Depth24UnormStencil8 must be depth+stencil, not depth-only")
	}
	if !IsDepthOnly(Depth32Float) {
		t.Error("Depth32Float must be depth-only")
	}
}

func TestSurfaceInfo(t *testing.T) {
	cases := []struct {
		f    Format
		w, h uint32
	}{
		{RGBA8Unorm, 512, 512},
		{RGBA8Unorm, 1, 1},
		{BC1RGBAUnorm, 256, 256},
		{BC1RGBAUnorm, 1, 1},
		{ASTC4x4Unorm, 17, 5},
	}
	for _, c := range cases {
		res := SurfaceInfo(c.f, c.w, c.h)
		if res.SlicePitch != res.RowPitch*res.RowCount {
			t.Errorf("%s %dx%d: slicePitch %d != rowPitch*rowCount (%d*%d)", GetInfo(c.f).Name, c.w, c.h, res.SlicePitch, res.RowPitch, res.RowCount)
		}
		if res.RowPitch%BytesPerBlock(c.f) != 0 {
			t.Errorf("%s %dx%d: rowPitch %d not a multiple of bytesPerBlock %d", GetInfo(c.f).Name, c.w, c.h, res.RowPitch, BytesPerBlock(c.f))
		}
	}
}

func TestSurfaceInfoRGBA8_512(t *testing.T) {
	res := SurfaceInfo(RGBA8Unorm, 512, 512)
	if res.RowPitch != 512*4 {
		t.Errorf("rowPitch = %d, want %d", res.RowPitch, 512*4)
	}
	if res.SlicePitch != 512*4*512 {
		t.Errorf("slicePitch = %d, want %d", res.SlicePitch, 512*4*512)
	}
}

func TestVertexFormatSizes(t *testing.T) {
	if VertexFormatByteSize(VertexFormatFloat32x3) != 12 {
		t.Error("Float32x3 must be 12 bytes")
	}
	if VertexFormatComponentCount(VertexFormatFloat32x3) != 3 {
		t.Error("Float32x3 must have 3 components")
	}
}
