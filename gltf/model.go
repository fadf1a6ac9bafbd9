package gltf

// Asset contains metadata about the glTF asset.
type Asset struct {
	Property

	// Copyright notice, if any.
	Copyright string
	// Generator is the tool that produced the asset.
	Generator string
	// Version is the glTF version this asset targets (required, "2.0").
	Version string
	// MinVersion is the minimum glTF version required to load the asset.
	MinVersion string
}

// Scene is a set of root nodes to render together.
type Scene struct {
	Property

	Name string
	// Nodes are indices into Model.Nodes of the scene's root nodes.
	Nodes []int32
}

// Node is one element of the transform hierarchy. A node carries either a
// Matrix or a Translation/Rotation/Scale decomposition, never both.
type Node struct {
	Property

	Name     string
	Children []int32
	// Mesh, Skin and Camera are indices into the model collections, -1
	// when not set.
	Mesh   int32
	Skin   int32
	Camera int32

	// Matrix is a column-major 4x4 transform; nil when the node uses TRS.
	Matrix []float64
	// Translation, Rotation (quaternion xyzw) and Scale; nil when unset.
	Translation []float64
	Rotation    []float64
	Scale       []float64

	// Weights are morph target weights applied to the node's mesh.
	Weights []float64
}

// Buffer is a container of raw binary data.
type Buffer struct {
	Property

	Name string
	// URI locates the buffer data: external, data: URI, or empty when the
	// bytes come from a binary container chunk.
	URI        string
	ByteLength int64

	// Data holds the materialized bytes once resources are resolved.
	// Empty when resolution failed; the failure is recorded in the read
	// result.
	Data []byte
}

// BufferView is a contiguous, optionally strided slice of a buffer.
type BufferView struct {
	Property

	Name string
	// Buffer is the index of the backing buffer, -1 when not set.
	Buffer     int32
	ByteOffset int64
	ByteLength int64
	// ByteStride is the distance between elements, 0 for tightly packed.
	ByteStride int64
	// Target is the intended GPU binding point (ARRAY_BUFFER etc.), -1
	// when not declared.
	Target int32
}

// Model is the root of the typed object graph produced by a read.
type Model struct {
	Property

	Asset Asset

	ExtensionsUsed     []string
	ExtensionsRequired []string

	Accessors   []Accessor
	Animations  []Animation
	Buffers     []Buffer
	BufferViews []BufferView
	Cameras     []Camera
	Images      []Image
	Materials   []Material
	Meshes      []Mesh
	Nodes       []Node
	Samplers    []Sampler
	// Scene is the index of the default scene, -1 when not set.
	Scene    int32
	Scenes   []Scene
	Skins    []Skin
	Textures []Texture
}

// DefaultScene returns the default scene, or nil when none is declared.
func (m *Model) DefaultScene() *Scene {
	if m.Scene < 0 || int(m.Scene) >= len(m.Scenes) {
		return nil
	}
	return &m.Scenes[m.Scene]
}
