package pixelformat

// VertexFormat identifies the layout of one vertex attribute, independent of
// the PixelFormat enum (vertex buffers are never block-compressed or
// sRGB-encoded, so they get their own small closed enum rather than reusing
// Format's ~90 members).
type VertexFormat uint32

const (
	VertexFormatUndefined VertexFormat = iota
	VertexFormatUint8x2
	VertexFormatUint8x4
	VertexFormatSint8x2
	VertexFormatSint8x4
	VertexFormatUnorm8x2
	VertexFormatUnorm8x4
	VertexFormatSnorm8x2
	VertexFormatSnorm8x4
	VertexFormatUint16x2
	VertexFormatUint16x4
	VertexFormatSint16x2
	VertexFormatSint16x4
	VertexFormatUnorm16x2
	VertexFormatUnorm16x4
	VertexFormatSnorm16x2
	VertexFormatSnorm16x4
	VertexFormatFloat16x2
	VertexFormatFloat16x4
	VertexFormatFloat32
	VertexFormatFloat32x2
	VertexFormatFloat32x3
	VertexFormatFloat32x4
	VertexFormatUint32
	VertexFormatUint32x2
	VertexFormatUint32x3
	VertexFormatUint32x4
	VertexFormatSint32
	VertexFormatSint32x2
	VertexFormatSint32x3
	VertexFormatSint32x4
	VertexFormatUnorm10_10_10_2
	VertexFormatUnorm8x4BGRA
)

type vertexInfo struct {
	byteSize       uint32
	componentCount uint32
}

var vertexTable = map[VertexFormat]vertexInfo{
	VertexFormatUint8x2:         {2, 2},
	VertexFormatUint8x4:         {4, 4},
	VertexFormatSint8x2:         {2, 2},
	VertexFormatSint8x4:         {4, 4},
	VertexFormatUnorm8x2:        {2, 2},
	VertexFormatUnorm8x4:        {4, 4},
	VertexFormatSnorm8x2:        {2, 2},
	VertexFormatSnorm8x4:        {4, 4},
	VertexFormatUint16x2:        {4, 2},
	VertexFormatUint16x4:        {8, 4},
	VertexFormatSint16x2:        {4, 2},
	VertexFormatSint16x4:        {8, 4},
	VertexFormatUnorm16x2:       {4, 2},
	VertexFormatUnorm16x4:       {8, 4},
	VertexFormatSnorm16x2:       {4, 2},
	VertexFormatSnorm16x4:       {8, 4},
	VertexFormatFloat16x2:       {4, 2},
	VertexFormatFloat16x4:       {8, 4},
	VertexFormatFloat32:         {4, 1},
	VertexFormatFloat32x2:       {8, 2},
	VertexFormatFloat32x3:       {12, 3},
	VertexFormatFloat32x4:       {16, 4},
	VertexFormatUint32:          {4, 1},
	VertexFormatUint32x2:        {8, 2},
	VertexFormatUint32x3:        {12, 3},
	VertexFormatUint32x4:        {16, 4},
	VertexFormatSint32:          {4, 1},
	VertexFormatSint32x2:        {8, 2},
	VertexFormatSint32x3:        {12, 3},
	VertexFormatSint32x4:        {16, 4},
	VertexFormatUnorm10_10_10_2: {4, 4},
	VertexFormatUnorm8x4BGRA:    {4, 4},
}

// VertexFormatByteSize returns the total byte size of one vertex attribute.
func VertexFormatByteSize(f VertexFormat) uint32 { return vertexTable[f].byteSize }

// VertexFormatComponentCount returns the number of scalar components in one
// vertex attribute.
func VertexFormatComponentCount(f VertexFormat) uint32 { return vertexTable[f].componentCount }
