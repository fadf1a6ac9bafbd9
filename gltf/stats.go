package gltf

// ModelStats contains statistical information about a parsed model.
type ModelStats struct {
	SceneCount     int
	NodeCount      int
	MeshCount      int
	PrimitiveCount int
	AccessorCount  int
	MaterialCount  int
	TextureCount   int
	ImageCount     int
	AnimationCount int
	BufferCount    int
	// BufferBytes is the total size of all materialized buffer data.
	BufferBytes int64
	// TriangleCount is the number of triangles across all triangle-mode
	// primitives with resolvable index or position accessors.
	TriangleCount int64
}

// GetModelStats returns statistics for a parsed model.
func GetModelStats(m *Model) ModelStats {
	stats := ModelStats{}
	if m == nil {
		return stats
	}

	stats.SceneCount = len(m.Scenes)
	stats.NodeCount = len(m.Nodes)
	stats.MeshCount = len(m.Meshes)
	stats.AccessorCount = len(m.Accessors)
	stats.MaterialCount = len(m.Materials)
	stats.TextureCount = len(m.Textures)
	stats.ImageCount = len(m.Images)
	stats.AnimationCount = len(m.Animations)
	stats.BufferCount = len(m.Buffers)

	for i := range m.Buffers {
		stats.BufferBytes += int64(len(m.Buffers[i].Data))
	}

	for i := range m.Meshes {
		stats.PrimitiveCount += len(m.Meshes[i].Primitives)
		for j := range m.Meshes[i].Primitives {
			stats.TriangleCount += countTriangles(m, &m.Meshes[i].Primitives[j])
		}
	}
	return stats
}

func countTriangles(m *Model, p *MeshPrimitive) int64 {
	if p.Mode != PrimitiveModeTriangles {
		return 0
	}
	count := elementCount(m, p)
	if count <= 0 {
		return 0
	}
	return count / 3
}

// elementCount returns the number of vertices or indices the primitive
// draws, or -1 when its accessors are unresolvable.
func elementCount(m *Model, p *MeshPrimitive) int64 {
	idx := p.Indices
	if idx < 0 {
		idx = p.Attributes["POSITION"]
		if _, ok := p.Attributes["POSITION"]; !ok {
			return -1
		}
	}
	if int(idx) >= len(m.Accessors) || idx < 0 {
		return -1
	}
	return m.Accessors[idx].Count
}
