package gltf

// ComponentType identifies the scalar storage type of accessor components.
// Values match the GL enumerants used by the glTF schema.
type ComponentType int32

const (
	ComponentTypeByte          ComponentType = 5120
	ComponentTypeUnsignedByte  ComponentType = 5121
	ComponentTypeShort         ComponentType = 5122
	ComponentTypeUnsignedShort ComponentType = 5123
	ComponentTypeUnsignedInt   ComponentType = 5125
	ComponentTypeFloat         ComponentType = 5126
)

// ByteSize returns the size of one component in bytes, or 0 for an
// unrecognized component type.
func (c ComponentType) ByteSize() int64 {
	switch c {
	case ComponentTypeByte, ComponentTypeUnsignedByte:
		return 1
	case ComponentTypeShort, ComponentTypeUnsignedShort:
		return 2
	case ComponentTypeUnsignedInt, ComponentTypeFloat:
		return 4
	default:
		return 0
	}
}

// IsValid reports whether c is one of the schema's component types.
func (c ComponentType) IsValid() bool {
	return c.ByteSize() != 0
}

// AccessorType is the element shape of an accessor ("SCALAR", "VEC3", ...).
type AccessorType string

const (
	AccessorTypeScalar AccessorType = "SCALAR"
	AccessorTypeVec2   AccessorType = "VEC2"
	AccessorTypeVec3   AccessorType = "VEC3"
	AccessorTypeVec4   AccessorType = "VEC4"
	AccessorTypeMat2   AccessorType = "MAT2"
	AccessorTypeMat3   AccessorType = "MAT3"
	AccessorTypeMat4   AccessorType = "MAT4"
)

// ComponentCount returns the number of components per element, or 0 for an
// unrecognized type.
func (t AccessorType) ComponentCount() int64 {
	switch t {
	case AccessorTypeScalar:
		return 1
	case AccessorTypeVec2:
		return 2
	case AccessorTypeVec3:
		return 3
	case AccessorTypeVec4:
		return 4
	case AccessorTypeMat2:
		return 4
	case AccessorTypeMat3:
		return 9
	case AccessorTypeMat4:
		return 16
	default:
		return 0
	}
}

// Accessor is a typed, strided view describing how a region of buffer bytes
// is interpreted as an array of elements.
type Accessor struct {
	Property

	Name string
	// BufferView is the index of the backing view, -1 when the accessor is
	// zero-initialized or entirely sparse.
	BufferView int32
	ByteOffset int64

	ComponentType ComponentType
	// Normalized marks integer data to be mapped to [0,1] or [-1,1].
	Normalized bool
	// Count is the number of elements, not bytes.
	Count int64
	Type  AccessorType

	// Max and Min bound each component across all elements; optional.
	Max []float64
	Min []float64

	// Sparse holds the sparse storage description, nil for dense accessors.
	Sparse *AccessorSparse
}

// ElementSize returns the tightly-packed byte size of one element.
func (a *Accessor) ElementSize() int64 {
	return a.ComponentType.ByteSize() * a.Type.ComponentCount()
}

// AccessorSparse stores a small number of deviating elements on top of a
// (possibly zero-filled) dense base.
type AccessorSparse struct {
	Property

	// Count is the number of deviating elements.
	Count   int64
	Indices AccessorSparseIndices
	Values  AccessorSparseValues
}

// AccessorSparseIndices locates the indices of the deviating elements.
type AccessorSparseIndices struct {
	Property

	// BufferView index, -1 when not set.
	BufferView    int32
	ByteOffset    int64
	ComponentType ComponentType
}

// AccessorSparseValues locates the replacement values.
type AccessorSparseValues struct {
	Property

	// BufferView index, -1 when not set.
	BufferView int32
	ByteOffset int64
}
