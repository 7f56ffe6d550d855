package core

// GPU resource handles. Backends return their own concrete types; callers
// only pass them back, so the handles stay opaque (and comparable).
type (
	Pipeline any
	Texture  any
	Mesh     any
)

// Renderer abstraction implemented by the GL backend.
type Renderer interface {
	Init() error
	Shutdown()
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	// UpdateMesh re-uploads vertex/index data into an existing mesh. The
	// mesh must have been created large enough for the biggest batch.
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed, row-major, top-left origin
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU         string // "clamp" | "repeat"
	WrapV         string
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}
