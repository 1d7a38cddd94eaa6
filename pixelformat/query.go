package pixelformat

// GetInfo returns the bit-exact metadata for f. Out-of-range formats return
// the Undefined entry.
func GetInfo(f Format) Info {
	if f >= formatCount {
		return infoTable[Undefined]
	}
	return infoTable[f]
}

// BlockWidth returns the compression block width in texels (1 for uncompressed formats).
func BlockWidth(f Format) uint32 { return GetInfo(f).BlockWidth }

// BlockHeight returns the compression block height in texels (1 for uncompressed formats).
func BlockHeight(f Format) uint32 { return GetInfo(f).BlockHeight }

// BytesPerBlock returns the number of bytes occupied by one compression block
// (or one texel, for uncompressed formats).
func BytesPerBlock(f Format) uint32 { return GetInfo(f).BytesPerBlock }

// KindOf returns the format's numeric interpretation.
func KindOf(f Format) Kind { return GetInfo(f).Kind }

// BitsPerPixel returns bytesPerBlock(f)*8 / (blockWidth(f)*blockHeight(f))
// in integer arithmetic. The division is exact for every format except the
// ASTC footprints whose block area does not divide 128 (5x4, 5x5, 6x5, ...),
// where the result is rounded down.
func BitsPerPixel(f Format) uint32 {
	info := GetInfo(f)
	area := info.BlockWidth * info.BlockHeight
	if area == 0 {
		return 0
	}
	return info.BytesPerBlock * 8 / area
}

// IsDepth reports whether f carries a depth aspect.
func IsDepth(f Format) bool { return GetInfo(f).Aspect&AspectDepth != 0 }

// IsStencil reports whether f carries a stencil aspect.
func IsStencil(f Format) bool { return GetInfo(f).Aspect&AspectStencil != 0 }

// IsDepthStencil reports whether f carries a depth or a stencil aspect.
func IsDepthStencil(f Format) bool { return IsDepth(f) || IsStencil(f) }

// IsDepthOnly reports whether f carries a depth aspect and no stencil aspect.
func IsDepthOnly(f Format) bool { return IsDepth(f) && !IsStencil(f) }

// IsCompressed reports whether f is any block-compressed format.
func IsCompressed(f Format) bool { return GetInfo(f).Compression != CompressionNone }

// IsCompressedBC reports whether f is a BCn format.
func IsCompressedBC(f Format) bool { return GetInfo(f).Compression == CompressionBC }

// IsCompressedETC2 reports whether f is an ETC2/EAC format.
func IsCompressedETC2(f Format) bool { return GetInfo(f).Compression == CompressionETC2 }

// IsCompressedASTC reports whether f is an ASTC (LDR or HDR) format.
func IsCompressedASTC(f Format) bool {
	c := GetInfo(f).Compression
	return c == CompressionASTC || c == CompressionASTCHDR
}

// IsInteger reports whether f stores raw integer (uint/sint) values.
func IsInteger(f Format) bool {
	k := GetInfo(f).Kind
	return k == KindUint || k == KindSint
}

// IsSrgb reports whether f is an sRGB-encoded format.
func IsSrgb(f Format) bool { return GetInfo(f).Kind == KindUnormSrgb }

// SrgbToLinear returns the linear-encoded counterpart of an sRGB format, or f
// unchanged if f has no sRGB encoding or is already linear.
func SrgbToLinear(f Format) Format {
	info := GetInfo(f)
	if info.Kind != KindUnormSrgb {
		return f
	}
	return info.SrgbPair
}

// LinearToSrgb returns the sRGB-encoded counterpart of a linear unorm format,
// or f unchanged if no sRGB counterpart is defined.
func LinearToSrgb(f Format) Format {
	info := GetInfo(f)
	if info.Kind != KindUnorm || info.SrgbPair == Undefined {
		return f
	}
	return info.SrgbPair
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// SurfaceResult bundles the row/slice pitch and row count of an image
// surface of the given pixel format and dimensions.
type SurfaceResult struct {
	RowPitch   uint32
	SlicePitch uint32
	RowCount   uint32
}

// SurfaceInfo computes the row pitch, slice pitch and row count for an image
// of format f with the given pixel dimensions, per §4.1's block-rounding rule.
func SurfaceInfo(f Format, width, height uint32) SurfaceResult {
	info := GetInfo(f)
	bw, bh := maxU32(info.BlockWidth, 1), maxU32(info.BlockHeight, 1)

	numBlocksWide := maxU32(1, (width+bw-1)/bw)
	numBlocksHigh := maxU32(1, (height+bh-1)/bh)

	rowPitch := numBlocksWide * info.BytesPerBlock
	return SurfaceResult{
		RowPitch:   rowPitch,
		SlicePitch: rowPitch * numBlocksHigh,
		RowCount:   numBlocksHigh,
	}
}
