package reader

import (
	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

var accessorKnownKeys = map[string]bool{
	"bufferView": true, "byteOffset": true, "componentType": true,
	"normalized": true, "count": true, "type": true, "max": true,
	"min": true, "sparse": true, "name": true,
}

func (c *readContext) readAccessor(v jsonvalue.Value, path string) gltf.Accessor {
	a := gltf.Accessor{BufferView: -1}
	a.BufferView = c.indexField(v, "bufferView", path)
	a.ByteOffset = c.int64Field(v, "byteOffset", path, 0)
	a.ComponentType = gltf.ComponentType(c.int32Field(v, "componentType", path, 0))
	if a.ComponentType != 0 && !a.ComponentType.IsValid() {
		c.warnf(path, "unknown componentType %d", a.ComponentType)
	}
	a.Normalized = c.boolField(v, "normalized", path, false)
	a.Count = c.int64Field(v, "count", path, 0)
	a.Type = gltf.AccessorType(c.stringField(v, "type", path, ""))
	a.Max = c.float64Slice(v, "max", path)
	a.Min = c.float64Slice(v, "min", path)
	if sparse, ok := v.Get("sparse"); ok {
		if sparse.IsObject() {
			s := c.readAccessorSparse(sparse, path+"/sparse")
			a.Sparse = &s
		} else {
			c.warnf(path, "expected object for \"sparse\"; ignoring")
		}
	}
	a.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&a.Property, v, path, ParentAccessor, accessorKnownKeys)
	return a
}

var accessorSparseKnownKeys = map[string]bool{
	"count": true, "indices": true, "values": true,
}

func (c *readContext) readAccessorSparse(v jsonvalue.Value, path string) gltf.AccessorSparse {
	var s gltf.AccessorSparse
	s.Count = c.int64Field(v, "count", path, 0)
	if ind, ok := v.Get("indices"); ok && ind.IsObject() {
		p := path + "/indices"
		s.Indices.BufferView = c.indexField(ind, "bufferView", p)
		s.Indices.ByteOffset = c.int64Field(ind, "byteOffset", p, 0)
		s.Indices.ComponentType = gltf.ComponentType(c.int32Field(ind, "componentType", p, 0))
	} else {
		c.errorf(path, "missing required property \"indices\"")
	}
	if val, ok := v.Get("values"); ok && val.IsObject() {
		p := path + "/values"
		s.Values.BufferView = c.indexField(val, "bufferView", p)
		s.Values.ByteOffset = c.int64Field(val, "byteOffset", p, 0)
	} else {
		c.errorf(path, "missing required property \"values\"")
	}
	c.finishProperty(&s.Property, v, path, ParentAccessor, accessorSparseKnownKeys)
	return s
}

var meshKnownKeys = map[string]bool{
	"primitives": true, "weights": true, "name": true,
}

func (c *readContext) readMesh(v jsonvalue.Value, path string) gltf.Mesh {
	var m gltf.Mesh
	m.Primitives = readObjectArray(c, v, "primitives", path, (*readContext).readMeshPrimitive)
	m.Weights = c.float64Slice(v, "weights", path)
	m.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&m.Property, v, path, ParentMesh, meshKnownKeys)
	return m
}

var meshPrimitiveKnownKeys = map[string]bool{
	"attributes": true, "indices": true, "material": true,
	"mode": true, "targets": true,
}

func (c *readContext) readMeshPrimitive(v jsonvalue.Value, path string) gltf.MeshPrimitive {
	p := gltf.MeshPrimitive{
		Indices:  -1,
		Material: -1,
		Mode:     gltf.PrimitiveModeTriangles,
	}
	p.Attributes = c.indexMap(v, "attributes", path)
	p.Indices = c.indexField(v, "indices", path)
	p.Material = c.indexField(v, "material", path)
	p.Mode = c.int32Field(v, "mode", path, gltf.PrimitiveModeTriangles)
	if targets, ok := v.Get("targets"); ok {
		if targets.IsArray() {
			p.Targets = make([]map[string]int32, 0, targets.Len())
			for i, t := range targets.Items() {
				if !t.IsObject() {
					c.warnf(path, "morph target %d is not an object; skipping", i)
					continue
				}
				target := make(map[string]int32, t.Len())
				for _, m := range t.Members() {
					n, ok := m.Value.Int32()
					if !ok {
						c.warnf(path, "morph target %d attribute %q is not a valid index; skipping", i, m.Key)
						continue
					}
					target[m.Key] = n
				}
				p.Targets = append(p.Targets, target)
			}
		} else {
			c.warnf(path, "expected array for \"targets\"; ignoring")
		}
	}
	c.finishProperty(&p.Property, v, path, ParentMeshPrimitive, meshPrimitiveKnownKeys)
	return p
}

var skinKnownKeys = map[string]bool{
	"inverseBindMatrices": true, "skeleton": true, "joints": true, "name": true,
}

func (c *readContext) readSkin(v jsonvalue.Value, path string) gltf.Skin {
	s := gltf.Skin{InverseBindMatrices: -1, Skeleton: -1}
	s.InverseBindMatrices = c.indexField(v, "inverseBindMatrices", path)
	s.Skeleton = c.indexField(v, "skeleton", path)
	s.Joints = c.int32Slice(v, "joints", path)
	s.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&s.Property, v, path, ParentSkin, skinKnownKeys)
	return s
}
