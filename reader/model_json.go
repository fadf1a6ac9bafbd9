package reader

import (
	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

var modelKnownKeys = map[string]bool{
	"asset": true, "extensionsUsed": true, "extensionsRequired": true,
	"accessors": true, "animations": true, "buffers": true,
	"bufferViews": true, "cameras": true, "images": true,
	"materials": true, "meshes": true, "nodes": true, "samplers": true,
	"scene": true, "scenes": true, "skins": true, "textures": true,
}

// readModel reads the document root. The second return is true when the
// document is unusable and no model should be returned.
func (c *readContext) readModel(v jsonvalue.Value) (*gltf.Model, bool) {
	m := &gltf.Model{Scene: -1}

	if assetVal, ok := v.Get("asset"); ok {
		if !assetVal.IsObject() {
			c.errorf("/asset", "expected object")
			return nil, true
		}
		asset, ok := c.readAsset(assetVal, "/asset")
		if !ok {
			return nil, true
		}
		m.Asset = asset
	} else {
		// Tolerated for fragments produced by tooling: record the error
		// but still hand back what parsed.
		c.errorf("", "document has no \"asset\" object; asset.version is required")
		m.Asset = gltf.Asset{Version: "2.0"}
	}

	m.ExtensionsUsed = c.stringSlice(v, "extensionsUsed", "")
	m.ExtensionsRequired = c.stringSlice(v, "extensionsRequired", "")

	m.Accessors = readObjectArray(c, v, "accessors", "", (*readContext).readAccessor)
	m.Animations = readObjectArray(c, v, "animations", "", (*readContext).readAnimation)
	m.Buffers = readObjectArray(c, v, "buffers", "", (*readContext).readBuffer)
	m.BufferViews = readObjectArray(c, v, "bufferViews", "", (*readContext).readBufferView)
	m.Cameras = readObjectArray(c, v, "cameras", "", (*readContext).readCamera)
	m.Images = readObjectArray(c, v, "images", "", (*readContext).readImage)
	m.Materials = readObjectArray(c, v, "materials", "", (*readContext).readMaterial)
	m.Meshes = readObjectArray(c, v, "meshes", "", (*readContext).readMesh)
	m.Nodes = readObjectArray(c, v, "nodes", "", (*readContext).readNode)
	m.Samplers = readObjectArray(c, v, "samplers", "", (*readContext).readSampler)
	m.Scenes = readObjectArray(c, v, "scenes", "", (*readContext).readScene)
	m.Skins = readObjectArray(c, v, "skins", "", (*readContext).readSkin)
	m.Textures = readObjectArray(c, v, "textures", "", (*readContext).readTexture)
	m.Scene = c.indexField(v, "scene", "")

	c.finishProperty(&m.Property, v, "", ParentModel, modelKnownKeys)
	return m, false
}

var assetKnownKeys = map[string]bool{
	"copyright": true, "generator": true, "version": true, "minVersion": true,
}

// readAsset requires the version string; a missing or non-string version
// makes the whole document unusable.
func (c *readContext) readAsset(v jsonvalue.Value, path string) (gltf.Asset, bool) {
	var a gltf.Asset
	ver, ok := v.Get("version")
	if !ok {
		c.errorf(path, "missing required property \"version\"")
		return a, false
	}
	s, ok := ver.String()
	if !ok {
		c.errorf(path, "expected string for \"version\"")
		return a, false
	}
	a.Version = s
	a.Copyright = c.stringField(v, "copyright", path, "")
	a.Generator = c.stringField(v, "generator", path, "")
	a.MinVersion = c.stringField(v, "minVersion", path, "")
	c.finishProperty(&a.Property, v, path, ParentAsset, assetKnownKeys)
	return a, true
}

var sceneKnownKeys = map[string]bool{"nodes": true, "name": true}

func (c *readContext) readScene(v jsonvalue.Value, path string) gltf.Scene {
	var s gltf.Scene
	s.Nodes = c.int32Slice(v, "nodes", path)
	s.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&s.Property, v, path, ParentScene, sceneKnownKeys)
	return s
}

var nodeKnownKeys = map[string]bool{
	"camera": true, "children": true, "skin": true, "matrix": true,
	"mesh": true, "rotation": true, "scale": true, "translation": true,
	"weights": true, "name": true,
}

func (c *readContext) readNode(v jsonvalue.Value, path string) gltf.Node {
	var n gltf.Node
	n.Camera = c.indexField(v, "camera", path)
	n.Skin = c.indexField(v, "skin", path)
	n.Mesh = c.indexField(v, "mesh", path)
	n.Children = c.int32Slice(v, "children", path)
	n.Matrix = c.float64Slice(v, "matrix", path)
	if n.Matrix != nil && len(n.Matrix) != 16 {
		c.warnf(path, "\"matrix\" must have 16 elements; ignoring")
		n.Matrix = nil
	}
	n.Rotation = c.float64Slice(v, "rotation", path)
	n.Scale = c.float64Slice(v, "scale", path)
	n.Translation = c.float64Slice(v, "translation", path)
	n.Weights = c.float64Slice(v, "weights", path)
	n.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&n.Property, v, path, ParentNode, nodeKnownKeys)
	return n
}

var bufferKnownKeys = map[string]bool{
	"uri": true, "byteLength": true, "name": true,
}

func (c *readContext) readBuffer(v jsonvalue.Value, path string) gltf.Buffer {
	var b gltf.Buffer
	b.URI = c.stringField(v, "uri", path, "")
	b.ByteLength = c.int64Field(v, "byteLength", path, 0)
	b.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&b.Property, v, path, ParentBuffer, bufferKnownKeys)
	return b
}

var bufferViewKnownKeys = map[string]bool{
	"buffer": true, "byteOffset": true, "byteLength": true,
	"byteStride": true, "target": true, "name": true,
}

func (c *readContext) readBufferView(v jsonvalue.Value, path string) gltf.BufferView {
	bv := gltf.BufferView{Buffer: -1, Target: -1}
	if _, ok := v.Get("buffer"); !ok {
		c.errorf(path, "missing required property \"buffer\"")
	}
	bv.Buffer = c.indexField(v, "buffer", path)
	bv.ByteOffset = c.int64Field(v, "byteOffset", path, 0)
	bv.ByteLength = c.int64Field(v, "byteLength", path, 0)
	bv.ByteStride = c.int64Field(v, "byteStride", path, 0)
	bv.Target = c.int32Field(v, "target", path, -1)
	bv.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&bv.Property, v, path, ParentBufferView, bufferViewKnownKeys)
	return bv
}
