package reader

import (
	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

var samplerKnownKeys = map[string]bool{
	"magFilter": true, "minFilter": true, "wrapS": true, "wrapT": true, "name": true,
}

func (c *readContext) readSampler(v jsonvalue.Value, path string) gltf.Sampler {
	s := gltf.Sampler{
		MagFilter: -1,
		MinFilter: -1,
		WrapS:     gltf.WrapRepeat,
		WrapT:     gltf.WrapRepeat,
	}
	s.MagFilter = c.int32Field(v, "magFilter", path, -1)
	s.MinFilter = c.int32Field(v, "minFilter", path, -1)
	s.WrapS = c.int32Field(v, "wrapS", path, gltf.WrapRepeat)
	s.WrapT = c.int32Field(v, "wrapT", path, gltf.WrapRepeat)
	s.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&s.Property, v, path, ParentSampler, samplerKnownKeys)
	return s
}

var textureKnownKeys = map[string]bool{
	"sampler": true, "source": true, "name": true,
}

func (c *readContext) readTexture(v jsonvalue.Value, path string) gltf.Texture {
	t := gltf.Texture{Sampler: -1, Source: -1}
	t.Sampler = c.indexField(v, "sampler", path)
	t.Source = c.indexField(v, "source", path)
	t.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&t.Property, v, path, ParentTexture, textureKnownKeys)
	return t
}

var imageKnownKeys = map[string]bool{
	"uri": true, "mimeType": true, "bufferView": true, "name": true,
}

func (c *readContext) readImage(v jsonvalue.Value, path string) gltf.Image {
	img := gltf.Image{BufferView: -1}
	img.URI = c.stringField(v, "uri", path, "")
	img.MimeType = c.stringField(v, "mimeType", path, "")
	img.BufferView = c.indexField(v, "bufferView", path)
	img.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&img.Property, v, path, ParentImage, imageKnownKeys)
	return img
}

var textureInfoKnownKeys = map[string]bool{
	"index": true, "texCoord": true,
}

func (c *readContext) readTextureInfo(v jsonvalue.Value, path string) gltf.TextureInfo {
	ti := gltf.TextureInfo{Index: -1}
	if _, ok := v.Get("index"); !ok {
		c.errorf(path, "missing required property \"index\"")
	}
	ti.Index = c.indexField(v, "index", path)
	ti.TexCoord = c.int64Field(v, "texCoord", path, 0)
	c.finishProperty(&ti.Property, v, path, ParentTextureInfo, textureInfoKnownKeys)
	return ti
}

func (c *readContext) textureInfoField(obj jsonvalue.Value, key, path string) *gltf.TextureInfo {
	v, ok := obj.Get(key)
	if !ok {
		return nil
	}
	if !v.IsObject() {
		c.warnf(path, "expected object for %q; ignoring", key)
		return nil
	}
	ti := c.readTextureInfo(v, path+"/"+key)
	return &ti
}

var normalTextureKnownKeys = map[string]bool{
	"index": true, "texCoord": true, "scale": true,
}

var occlusionTextureKnownKeys = map[string]bool{
	"index": true, "texCoord": true, "strength": true,
}

var pbrKnownKeys = map[string]bool{
	"baseColorFactor": true, "baseColorTexture": true, "metallicFactor": true,
	"roughnessFactor": true, "metallicRoughnessTexture": true,
}

var materialKnownKeys = map[string]bool{
	"name": true, "pbrMetallicRoughness": true, "normalTexture": true,
	"occlusionTexture": true, "emissiveTexture": true, "emissiveFactor": true,
	"alphaMode": true, "alphaCutoff": true, "doubleSided": true,
}

func (c *readContext) readMaterial(v jsonvalue.Value, path string) gltf.Material {
	m := gltf.Material{
		AlphaMode:   gltf.AlphaModeOpaque,
		AlphaCutoff: 0.5,
	}
	m.Name = c.stringField(v, "name", path, "")

	if pbr, ok := v.Get("pbrMetallicRoughness"); ok {
		if pbr.IsObject() {
			p := path + "/pbrMetallicRoughness"
			out := gltf.PBRMetallicRoughness{
				MetallicFactor:  1,
				RoughnessFactor: 1,
			}
			out.BaseColorFactor = c.float64Slice(pbr, "baseColorFactor", p)
			out.BaseColorTexture = c.textureInfoField(pbr, "baseColorTexture", p)
			out.MetallicFactor = c.float64Field(pbr, "metallicFactor", p, 1)
			out.RoughnessFactor = c.float64Field(pbr, "roughnessFactor", p, 1)
			out.MetallicRoughnessTexture = c.textureInfoField(pbr, "metallicRoughnessTexture", p)
			c.finishProperty(&out.Property, pbr, p, ParentMaterial, pbrKnownKeys)
			m.PBRMetallicRoughness = &out
		} else {
			c.warnf(path, "expected object for \"pbrMetallicRoughness\"; ignoring")
		}
	}

	if nt, ok := v.Get("normalTexture"); ok {
		if nt.IsObject() {
			p := path + "/normalTexture"
			out := gltf.NormalTextureInfo{Scale: 1}
			out.Index = c.indexField(nt, "index", p)
			out.TexCoord = c.int64Field(nt, "texCoord", p, 0)
			out.Scale = c.float64Field(nt, "scale", p, 1)
			c.finishProperty(&out.Property, nt, p, ParentTextureInfo, normalTextureKnownKeys)
			m.NormalTexture = &out
		} else {
			c.warnf(path, "expected object for \"normalTexture\"; ignoring")
		}
	}

	if ot, ok := v.Get("occlusionTexture"); ok {
		if ot.IsObject() {
			p := path + "/occlusionTexture"
			out := gltf.OcclusionTextureInfo{Strength: 1}
			out.Index = c.indexField(ot, "index", p)
			out.TexCoord = c.int64Field(ot, "texCoord", p, 0)
			out.Strength = c.float64Field(ot, "strength", p, 1)
			c.finishProperty(&out.Property, ot, p, ParentTextureInfo, occlusionTextureKnownKeys)
			m.OcclusionTexture = &out
		} else {
			c.warnf(path, "expected object for \"occlusionTexture\"; ignoring")
		}
	}

	m.EmissiveTexture = c.textureInfoField(v, "emissiveTexture", path)
	m.EmissiveFactor = c.float64Slice(v, "emissiveFactor", path)
	m.AlphaMode = c.stringField(v, "alphaMode", path, gltf.AlphaModeOpaque)
	m.AlphaCutoff = c.float64Field(v, "alphaCutoff", path, 0.5)
	m.DoubleSided = c.boolField(v, "doubleSided", path, false)
	c.finishProperty(&m.Property, v, path, ParentMaterial, materialKnownKeys)
	return m
}
