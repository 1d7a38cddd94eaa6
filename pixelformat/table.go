package pixelformat

func bc(name string, bytesPerBlock uint32, kind Kind, srgb Format) Info {
	return Info{Name: name, BlockWidth: 4, BlockHeight: 4, BytesPerBlock: bytesPerBlock, Kind: kind, Aspect: AspectColor, Compression: CompressionBC, SrgbPair: srgb}
}

func etc2(name string, bytesPerBlock uint32, kind Kind, srgb Format) Info {
	return Info{Name: name, BlockWidth: 4, BlockHeight: 4, BytesPerBlock: bytesPerBlock, Kind: kind, Aspect: AspectColor, Compression: CompressionETC2, SrgbPair: srgb}
}

func astc(name string, bw, bh uint32, kind Kind, srgb Format) Info {
	return Info{Name: name, BlockWidth: bw, BlockHeight: bh, BytesPerBlock: 16, Kind: kind, Aspect: AspectColor, Compression: CompressionASTC, SrgbPair: srgb}
}

func astcHDR(name string, bw, bh uint32) Info {
	return Info{Name: name, BlockWidth: bw, BlockHeight: bh, BytesPerBlock: 16, Kind: KindFloat, Aspect: AspectColor, Compression: CompressionASTCHDR}
}

func plain(name string, bytesPerBlock uint32, kind Kind) Info {
	return Info{Name: name, BlockWidth: 1, BlockHeight: 1, BytesPerBlock: bytesPerBlock, Kind: kind, Aspect: AspectColor}
}

var infoTable = [formatCount]Info{
	Undefined: {Name: "undefined"},

	R8Unorm: plain("r8unorm", 1, KindUnorm),
	R8Snorm: plain("r8snorm", 1, KindSnorm),
	R8Uint:  plain("r8uint", 1, KindUint),
	R8Sint:  plain("r8sint", 1, KindSint),

	R16Unorm: plain("r16unorm", 2, KindUnorm),
	R16Snorm: plain("r16snorm", 2, KindSnorm),
	R16Uint:  plain("r16uint", 2, KindUint),
	R16Sint:  plain("r16sint", 2, KindSint),
	R16Float: plain("r16float", 2, KindFloat),

	RG8Unorm: plain("rg8unorm", 2, KindUnorm),
	RG8Snorm: plain("rg8snorm", 2, KindSnorm),
	RG8Uint:  plain("rg8uint", 2, KindUint),
	RG8Sint:  plain("rg8sint", 2, KindSint),

	B5G6R5Unorm: plain("b5g6r5unorm", 2, KindUnorm),
	BGR5A1Unorm: plain("bgr5a1unorm", 2, KindUnorm),
	BGRA4Unorm:  plain("bgra4unorm", 2, KindUnorm),

	R32Uint:  plain("r32uint", 4, KindUint),
	R32Sint:  plain("r32sint", 4, KindSint),
	R32Float: plain("r32float", 4, KindFloat),

	RG16Unorm: plain("rg16unorm", 4, KindUnorm),
	RG16Snorm: plain("rg16snorm", 4, KindSnorm),
	RG16Uint:  plain("rg16uint", 4, KindUint),
	RG16Sint:  plain("rg16sint", 4, KindSint),
	RG16Float: plain("rg16float", 4, KindFloat),

	RGBA8Unorm:     {Name: "rgba8unorm", BlockWidth: 1, BlockHeight: 1, BytesPerBlock: 4, Kind: KindUnorm, Aspect: AspectColor, SrgbPair: RGBA8UnormSrgb},
	RGBA8UnormSrgb: plain("rgba8unorm-srgb", 4, KindUnormSrgb),
	RGBA8Snorm:     plain("rgba8snorm", 4, KindSnorm),
	RGBA8Uint:      plain("rgba8uint", 4, KindUint),
	RGBA8Sint:      plain("rgba8sint", 4, KindSint),

	BGRA8Unorm:     {Name: "bgra8unorm", BlockWidth: 1, BlockHeight: 1, BytesPerBlock: 4, Kind: KindUnorm, Aspect: AspectColor, SrgbPair: BGRA8UnormSrgb},
	BGRA8UnormSrgb: plain("bgra8unorm-srgb", 4, KindUnormSrgb),

	RGB10A2Unorm:   plain("rgb10a2unorm", 4, KindUnorm),
	RGB10A2Uint:    plain("rgb10a2uint", 4, KindUint),
	RG11B10Ufloat:  plain("rg11b10ufloat", 4, KindFloat),
	RGB9E5Ufloat:   plain("rgb9e5ufloat", 4, KindFloat),

	RG32Uint:  plain("rg32uint", 8, KindUint),
	RG32Sint:  plain("rg32sint", 8, KindSint),
	RG32Float: plain("rg32float", 8, KindFloat),

	RGBA16Unorm: plain("rgba16unorm", 8, KindUnorm),
	RGBA16Snorm: plain("rgba16snorm", 8, KindSnorm),
	RGBA16Uint:  plain("rgba16uint", 8, KindUint),
	RGBA16Sint:  plain("rgba16sint", 8, KindSint),
	RGBA16Float: plain("rgba16float", 8, KindFloat),

	RGBA32Uint:  plain("rgba32uint", 16, KindUint),
	RGBA32Sint:  plain("rgba32sint", 16, KindSint),
	RGBA32Float: plain("rgba32float", 16, KindFloat),

	Depth16Unorm:         {Name: "depth16unorm", BlockWidth: 1, BlockHeight: 1, BytesPerBlock: 2, Kind: KindUnorm, Aspect: AspectDepth},
	Depth24UnormStencil8: {Name: "depth24unorm-stencil8", BlockWidth: 1, BlockHeight: 1, BytesPerBlock: 4, Kind: KindUnorm, Aspect: AspectDepth | AspectStencil},
	Depth32Float:         {Name: "depth32float", BlockWidth: 1, BlockHeight: 1, BytesPerBlock: 4, Kind: KindFloat, Aspect: AspectDepth},
	Depth32FloatStencil8: {Name: "depth32float-stencil8", BlockWidth: 1, BlockHeight: 1, BytesPerBlock: 8, Kind: KindFloat, Aspect: AspectDepth | AspectStencil},

	BC1RGBAUnorm:     bc("bc1-rgba-unorm", 8, KindUnorm, BC1RGBAUnormSrgb),
	BC1RGBAUnormSrgb: bc("bc1-rgba-unorm-srgb", 8, KindUnormSrgb, Undefined),
	BC2RGBAUnorm:     bc("bc2-rgba-unorm", 16, KindUnorm, BC2RGBAUnormSrgb),
	BC2RGBAUnormSrgb: bc("bc2-rgba-unorm-srgb", 16, KindUnormSrgb, Undefined),
	BC3RGBAUnorm:     bc("bc3-rgba-unorm", 16, KindUnorm, BC3RGBAUnormSrgb),
	BC3RGBAUnormSrgb: bc("bc3-rgba-unorm-srgb", 16, KindUnormSrgb, Undefined),
	BC4RUnorm:        bc("bc4-r-unorm", 8, KindUnorm, Undefined),
	BC4RSnorm:        bc("bc4-r-snorm", 8, KindSnorm, Undefined),
	BC5RGUnorm:       bc("bc5-rg-unorm", 16, KindUnorm, Undefined),
	BC5RGSnorm:       bc("bc5-rg-snorm", 16, KindSnorm, Undefined),
	BC6HRGBUfloat:    bc("bc6h-rgb-ufloat", 16, KindFloat, Undefined),
	BC6HRGBFloat:     bc("bc6h-rgb-float", 16, KindFloat, Undefined),
	BC7RGBAUnorm:     bc("bc7-rgba-unorm", 16, KindUnorm, BC7RGBAUnormSrgb),
	BC7RGBAUnormSrgb: bc("bc7-rgba-unorm-srgb", 16, KindUnormSrgb, Undefined),

	ETC2RGB8Unorm:       etc2("etc2-rgb8-unorm", 8, KindUnorm, ETC2RGB8UnormSrgb),
	ETC2RGB8UnormSrgb:   etc2("etc2-rgb8-unorm-srgb", 8, KindUnormSrgb, Undefined),
	ETC2RGB8A1Unorm:     etc2("etc2-rgb8a1-unorm", 8, KindUnorm, ETC2RGB8A1UnormSrgb),
	ETC2RGB8A1UnormSrgb: etc2("etc2-rgb8a1-unorm-srgb", 8, KindUnormSrgb, Undefined),
	ETC2RGBA8Unorm:      etc2("etc2-rgba8-unorm", 16, KindUnorm, ETC2RGBA8UnormSrgb),
	ETC2RGBA8UnormSrgb:  etc2("etc2-rgba8-unorm-srgb", 16, KindUnormSrgb, Undefined),
	EACR11Unorm:         etc2("eac-r11-unorm", 8, KindUnorm, Undefined),
	EACR11Snorm:         etc2("eac-r11-snorm", 8, KindSnorm, Undefined),
	EACRG11Unorm:        etc2("eac-rg11-unorm", 16, KindUnorm, Undefined),
	EACRG11Snorm:        etc2("eac-rg11-snorm", 16, KindSnorm, Undefined),

	ASTC4x4Unorm:       astc("astc4x4-unorm", 4, 4, KindUnorm, ASTC4x4UnormSrgb),
	ASTC4x4UnormSrgb:   astc("astc4x4-unorm-srgb", 4, 4, KindUnormSrgb, Undefined),
	ASTC5x4Unorm:       astc("astc5x4-unorm", 5, 4, KindUnorm, ASTC5x4UnormSrgb),
	ASTC5x4UnormSrgb:   astc("astc5x4-unorm-srgb", 5, 4, KindUnormSrgb, Undefined),
	ASTC5x5Unorm:       astc("astc5x5-unorm", 5, 5, KindUnorm, ASTC5x5UnormSrgb),
	ASTC5x5UnormSrgb:   astc("astc5x5-unorm-srgb", 5, 5, KindUnormSrgb, Undefined),
	ASTC6x5Unorm:       astc("astc6x5-unorm", 6, 5, KindUnorm, ASTC6x5UnormSrgb),
	ASTC6x5UnormSrgb:   astc("astc6x5-unorm-srgb", 6, 5, KindUnormSrgb, Undefined),
	ASTC6x6Unorm:       astc("astc6x6-unorm", 6, 6, KindUnorm, ASTC6x6UnormSrgb),
	ASTC6x6UnormSrgb:   astc("astc6x6-unorm-srgb", 6, 6, KindUnormSrgb, Undefined),
	ASTC8x5Unorm:       astc("astc8x5-unorm", 8, 5, KindUnorm, ASTC8x5UnormSrgb),
	ASTC8x5UnormSrgb:   astc("astc8x5-unorm-srgb", 8, 5, KindUnormSrgb, Undefined),
	ASTC8x6Unorm:       astc("astc8x6-unorm", 8, 6, KindUnorm, ASTC8x6UnormSrgb),
	ASTC8x6UnormSrgb:   astc("astc8x6-unorm-srgb", 8, 6, KindUnormSrgb, Undefined),
	ASTC8x8Unorm:       astc("astc8x8-unorm", 8, 8, KindUnorm, ASTC8x8UnormSrgb),
	ASTC8x8UnormSrgb:   astc("astc8x8-unorm-srgb", 8, 8, KindUnormSrgb, Undefined),
	ASTC10x5Unorm:      astc("astc10x5-unorm", 10, 5, KindUnorm, ASTC10x5UnormSrgb),
	ASTC10x5UnormSrgb:  astc("astc10x5-unorm-srgb", 10, 5, KindUnormSrgb, Undefined),
	ASTC10x6Unorm:      astc("astc10x6-unorm", 10, 6, KindUnorm, ASTC10x6UnormSrgb),
	ASTC10x6UnormSrgb:  astc("astc10x6-unorm-srgb", 10, 6, KindUnormSrgb, Undefined),
	ASTC10x8Unorm:      astc("astc10x8-unorm", 10, 8, KindUnorm, ASTC10x8UnormSrgb),
	ASTC10x8UnormSrgb:  astc("astc10x8-unorm-srgb", 10, 8, KindUnormSrgb, Undefined),
	ASTC10x10Unorm:     astc("astc10x10-unorm", 10, 10, KindUnorm, ASTC10x10UnormSrgb),
	ASTC10x10UnormSrgb: astc("astc10x10-unorm-srgb", 10, 10, KindUnormSrgb, Undefined),
	ASTC12x10Unorm:     astc("astc12x10-unorm", 12, 10, KindUnorm, ASTC12x10UnormSrgb),
	ASTC12x10UnormSrgb: astc("astc12x10-unorm-srgb", 12, 10, KindUnormSrgb, Undefined),
	ASTC12x12Unorm:     astc("astc12x12-unorm", 12, 12, KindUnorm, ASTC12x12UnormSrgb),
	ASTC12x12UnormSrgb: astc("astc12x12-unorm-srgb", 12, 12, KindUnormSrgb, Undefined),

	ASTC4x4HDR:   astcHDR("astc4x4-hdr", 4, 4),
	ASTC5x4HDR:   astcHDR("astc5x4-hdr", 5, 4),
	ASTC5x5HDR:   astcHDR("astc5x5-hdr", 5, 5),
	ASTC6x5HDR:   astcHDR("astc6x5-hdr", 6, 5),
	ASTC6x6HDR:   astcHDR("astc6x6-hdr", 6, 6),
	ASTC8x5HDR:   astcHDR("astc8x5-hdr", 8, 5),
	ASTC8x6HDR:   astcHDR("astc8x6-hdr", 8, 6),
	ASTC8x8HDR:   astcHDR("astc8x8-hdr", 8, 8),
	ASTC10x5HDR:  astcHDR("astc10x5-hdr", 10, 5),
	ASTC10x6HDR:  astcHDR("astc10x6-hdr", 10, 6),
	ASTC10x8HDR:  astcHDR("astc10x8-hdr", 10, 8),
	ASTC10x10HDR: astcHDR("astc10x10-hdr", 10, 10),
	ASTC12x10HDR: astcHDR("astc12x10-hdr", 12, 10),
	ASTC12x12HDR: astcHDR("astc12x12-hdr", 12, 12),
}

func init() {
	// Fill in back-references so the sRGB pairing is navigable from either side.
	for f, info := range infoTable {
		if info.SrgbPair != Undefined {
			srgb := infoTable[info.SrgbPair]
			srgb.SrgbPair = Format(f)
			infoTable[info.SrgbPair] = srgb
		}
	}
}
