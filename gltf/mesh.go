package gltf

// Primitive rendering modes, matching the GL enumerants.
const (
	PrimitiveModePoints        int32 = 0
	PrimitiveModeLines         int32 = 1
	PrimitiveModeLineLoop      int32 = 2
	PrimitiveModeLineStrip     int32 = 3
	PrimitiveModeTriangles     int32 = 4
	PrimitiveModeTriangleStrip int32 = 5
	PrimitiveModeTriangleFan   int32 = 6
)

// Mesh is a collection of primitives sharing morph target weights.
type Mesh struct {
	Property

	Name       string
	Primitives []MeshPrimitive
	// Weights are the default morph target weights.
	Weights []float64
}

// MeshPrimitive is a single drawable: attribute accessors plus optional
// indices, material and morph targets.
type MeshPrimitive struct {
	Property

	// Attributes maps semantic names ("POSITION", "NORMAL", "TEXCOORD_0")
	// to accessor indices.
	Attributes map[string]int32
	// Indices is the index accessor, -1 for non-indexed geometry.
	Indices int32
	// Material index, -1 for the default material.
	Material int32
	// Mode is the rendering mode; triangles when not declared.
	Mode int32
	// Targets holds per-morph-target attribute override maps.
	Targets []map[string]int32
}
