package gltf

import (
	"github.com/HereWeG0/cesium-native/ktx2"
)

// Sampler wrap modes and filters, matching the GL enumerants.
const (
	WrapClampToEdge    int32 = 33071
	WrapMirroredRepeat int32 = 33648
	WrapRepeat         int32 = 10497

	FilterNearest              int32 = 9728
	FilterLinear               int32 = 9729
	FilterNearestMipmapNearest int32 = 9984
	FilterLinearMipmapNearest  int32 = 9985
	FilterNearestMipmapLinear  int32 = 9986
	FilterLinearMipmapLinear   int32 = 9987
)

// Sampler describes texture filtering and wrapping.
type Sampler struct {
	Property

	Name string
	// MagFilter and MinFilter are -1 when not declared, leaving the
	// choice to the renderer.
	MagFilter int32
	MinFilter int32
	WrapS     int32
	WrapT     int32
}

// Texture pairs an image with sampling state.
type Texture struct {
	Property

	Name string
	// Sampler index, -1 for repeat wrapping with auto filtering.
	Sampler int32
	// Source is the image index, -1 when supplied by an extension such as
	// KHR_texture_basisu.
	Source int32
}

// Image is a 2D image used by textures, referenced by URI or buffer view.
type Image struct {
	Property

	Name string
	// URI locates the image when it is external or inlined as a data URI.
	URI string
	// MimeType of the payload ("image/png", "image/jpeg", "image/ktx2").
	MimeType string
	// BufferView index holding the payload, -1 when URI is used instead.
	BufferView int32

	// Asset holds the decoded pixel data once resources are resolved; nil
	// when decoding was disabled or failed.
	Asset *ImageAsset
}

// ImageAsset is a decoded image: a flat pixel buffer plus the byte layout
// of any mip levels contained in it.
type ImageAsset struct {
	Width    int32
	Height   int32
	Channels int32
	// BytesPerChannel is 1 for 8-bit images.
	BytesPerChannel int32

	// PixelData holds every mip level back to back, finest level first.
	PixelData []byte

	// MipPositions locates each stored mip level inside PixelData. An
	// empty slice means only the base image is present and further levels
	// may be generated at runtime.
	MipPositions []ktx2.MipPosition
}

// TextureInfo references a texture from a material.
type TextureInfo struct {
	Property

	// Index of the texture, -1 when absent.
	Index int32
	// TexCoord selects the TEXCOORD_<n> attribute set.
	TexCoord int64
}

// NormalTextureInfo is a TextureInfo with a normal-scale factor.
type NormalTextureInfo struct {
	TextureInfo

	// Scale multiplies the sampled normal's X and Y.
	Scale float64
}

// OcclusionTextureInfo is a TextureInfo with an occlusion strength.
type OcclusionTextureInfo struct {
	TextureInfo

	// Strength scales the sampled occlusion, in [0,1].
	Strength float64
}

// PBRMetallicRoughness is the metallic-roughness material parameter set.
type PBRMetallicRoughness struct {
	Property

	// BaseColorFactor is RGBA, each in [0,1]; defaults to opaque white.
	BaseColorFactor          []float64
	BaseColorTexture         *TextureInfo
	MetallicFactor           float64
	RoughnessFactor          float64
	MetallicRoughnessTexture *TextureInfo
}

// Alpha rendering modes.
const (
	AlphaModeOpaque = "OPAQUE"
	AlphaModeMask   = "MASK"
	AlphaModeBlend  = "BLEND"
)

// Material describes the appearance of a primitive's surface.
type Material struct {
	Property

	Name string

	PBRMetallicRoughness *PBRMetallicRoughness
	NormalTexture        *NormalTextureInfo
	OcclusionTexture     *OcclusionTextureInfo
	EmissiveTexture      *TextureInfo
	// EmissiveFactor is RGB; defaults to black (no emission).
	EmissiveFactor []float64

	AlphaMode   string
	AlphaCutoff float64
	DoubleSided bool
}
