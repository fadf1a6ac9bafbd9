package gltf

// Extension name constants for the typed extensions the reader registers by
// default.
const (
	ExtensionNameKHRDracoMeshCompression = "KHR_draco_mesh_compression"
	ExtensionNameEXTMeshoptCompression   = "EXT_meshopt_compression"
	ExtensionNameKHRTextureBasisU        = "KHR_texture_basisu"
	ExtensionNameKHRTextureTransform     = "KHR_texture_transform"
	ExtensionNameKHRMaterialsUnlit       = "KHR_materials_unlit"
	ExtensionNameCesiumRTC               = "CESIUM_RTC"
)

// KHRDracoMeshCompression marks a mesh primitive whose geometry is stored
// Draco-compressed in a buffer view. Decoding is delegated to a collaborator;
// the reader only locates and routes the payload.
type KHRDracoMeshCompression struct {
	Property

	// BufferView holding the compressed payload, -1 when missing. After a
	// decode collaborator runs, this points at the decoded buffer view.
	BufferView int32
	// Attributes maps semantic names to Draco-internal attribute ids.
	Attributes map[string]int32
}

// EXTMeshoptCompression describes a meshopt-compressed buffer view: the
// view's actual data lives compressed in another buffer.
type EXTMeshoptCompression struct {
	Property

	// Buffer holding the compressed stream, -1 when missing.
	Buffer     int32
	ByteOffset int64
	ByteLength int64
	ByteStride int64
	// Count is the number of elements in the decoded stream.
	Count int64
	// Mode is "ATTRIBUTES", "TRIANGLES" or "INDICES".
	Mode string
	// Filter is "NONE", "OCTAHEDRAL", "QUATERNION" or "EXPONENTIAL".
	Filter string
}

// KHRTextureBasisU points a texture at a KTX2/Basis Universal image.
type KHRTextureBasisU struct {
	Property

	// Source is the image index of the KTX2 payload, -1 when missing.
	Source int32
}

// KHRTextureTransform applies an affine transform to texture coordinates.
type KHRTextureTransform struct {
	Property

	// Offset is UV offset, default [0,0].
	Offset []float64
	// Rotation in radians around the UV origin.
	Rotation float64
	// Scale is UV scale, default [1,1].
	Scale []float64
	// TexCoord overrides the TextureInfo's set when >= 0.
	TexCoord int64
}

// KHRMaterialsUnlit flags a material as unlit. The extension carries no
// parameters.
type KHRMaterialsUnlit struct {
	Property
}

// CesiumRTC places the model relative to a high-precision center point.
type CesiumRTC struct {
	Property

	// Center is the RTC center in ECEF coordinates.
	Center []float64
}
