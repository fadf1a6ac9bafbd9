package reader

import (
	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

var dracoKnownKeys = map[string]bool{
	"bufferView": true, "attributes": true,
}

func readKHRDracoMeshCompression(c *readContext, v jsonvalue.Value, path string) any {
	if !v.IsObject() {
		c.errorf(path, "expected object")
		return nil
	}
	ext := &gltf.KHRDracoMeshCompression{BufferView: -1}
	if _, ok := v.Get("bufferView"); !ok {
		c.errorf(path, "missing required property \"bufferView\"")
	}
	ext.BufferView = c.indexField(v, "bufferView", path)
	ext.Attributes = c.indexMap(v, "attributes", path)
	c.finishProperty(&ext.Property, v, path, ParentMeshPrimitive, dracoKnownKeys)
	return ext
}

var meshoptKnownKeys = map[string]bool{
	"buffer": true, "byteOffset": true, "byteLength": true,
	"byteStride": true, "count": true, "mode": true, "filter": true,
}

func readEXTMeshoptCompression(c *readContext, v jsonvalue.Value, path string) any {
	if !v.IsObject() {
		c.errorf(path, "expected object")
		return nil
	}
	ext := &gltf.EXTMeshoptCompression{Buffer: -1, Filter: "NONE"}
	if _, ok := v.Get("buffer"); !ok {
		c.errorf(path, "missing required property \"buffer\"")
	}
	ext.Buffer = c.indexField(v, "buffer", path)
	ext.ByteOffset = c.int64Field(v, "byteOffset", path, 0)
	ext.ByteLength = c.int64Field(v, "byteLength", path, 0)
	ext.ByteStride = c.int64Field(v, "byteStride", path, 0)
	ext.Count = c.int64Field(v, "count", path, 0)
	ext.Mode = c.stringField(v, "mode", path, "")
	ext.Filter = c.stringField(v, "filter", path, "NONE")
	c.finishProperty(&ext.Property, v, path, ParentBufferView, meshoptKnownKeys)
	return ext
}

var basisuKnownKeys = map[string]bool{"source": true}

func readKHRTextureBasisU(c *readContext, v jsonvalue.Value, path string) any {
	if !v.IsObject() {
		c.errorf(path, "expected object")
		return nil
	}
	ext := &gltf.KHRTextureBasisU{Source: -1}
	ext.Source = c.indexField(v, "source", path)
	c.finishProperty(&ext.Property, v, path, ParentTexture, basisuKnownKeys)
	return ext
}

var textureTransformKnownKeys = map[string]bool{
	"offset": true, "rotation": true, "scale": true, "texCoord": true,
}

func readKHRTextureTransform(c *readContext, v jsonvalue.Value, path string) any {
	if !v.IsObject() {
		c.errorf(path, "expected object")
		return nil
	}
	ext := &gltf.KHRTextureTransform{
		Offset:   []float64{0, 0},
		Scale:    []float64{1, 1},
		TexCoord: -1,
	}
	if off := c.float64Slice(v, "offset", path); off != nil {
		ext.Offset = off
	}
	ext.Rotation = c.float64Field(v, "rotation", path, 0)
	if sc := c.float64Slice(v, "scale", path); sc != nil {
		ext.Scale = sc
	}
	ext.TexCoord = c.int64Field(v, "texCoord", path, -1)
	c.finishProperty(&ext.Property, v, path, ParentTextureInfo, textureTransformKnownKeys)
	return ext
}

func readKHRMaterialsUnlit(c *readContext, v jsonvalue.Value, path string) any {
	if !v.IsObject() {
		c.errorf(path, "expected object")
		return nil
	}
	ext := &gltf.KHRMaterialsUnlit{}
	c.finishProperty(&ext.Property, v, path, ParentMaterial, map[string]bool{})
	return ext
}

var cesiumRTCKnownKeys = map[string]bool{"center": true}

func readCesiumRTC(c *readContext, v jsonvalue.Value, path string) any {
	if !v.IsObject() {
		c.errorf(path, "expected object")
		return nil
	}
	ext := &gltf.CesiumRTC{}
	ext.Center = c.float64Slice(v, "center", path)
	if len(ext.Center) != 3 {
		c.warnf(path, "\"center\" should have 3 elements")
	}
	c.finishProperty(&ext.Property, v, path, ParentModel, cesiumRTCKnownKeys)
	return ext
}
