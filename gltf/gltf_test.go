package gltf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HereWeG0/cesium-native/jsonvalue"
)

func TestComponentTypeByteSize(t *testing.T) {
	tests := []struct {
		name      string
		component ComponentType
		expected  int64
	}{
		{"byte", ComponentTypeByte, 1},
		{"unsigned byte", ComponentTypeUnsignedByte, 1},
		{"short", ComponentTypeShort, 2},
		{"unsigned short", ComponentTypeUnsignedShort, 2},
		{"unsigned int", ComponentTypeUnsignedInt, 4},
		{"float", ComponentTypeFloat, 4},
		{"unknown", ComponentType(1234), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.component.ByteSize())
			assert.Equal(t, tt.expected != 0, tt.component.IsValid())
		})
	}
}

func TestAccessorTypeComponentCount(t *testing.T) {
	assert.Equal(t, int64(1), AccessorTypeScalar.ComponentCount())
	assert.Equal(t, int64(2), AccessorTypeVec2.ComponentCount())
	assert.Equal(t, int64(3), AccessorTypeVec3.ComponentCount())
	assert.Equal(t, int64(4), AccessorTypeVec4.ComponentCount())
	assert.Equal(t, int64(4), AccessorTypeMat2.ComponentCount())
	assert.Equal(t, int64(9), AccessorTypeMat3.ComponentCount())
	assert.Equal(t, int64(16), AccessorTypeMat4.ComponentCount())
	assert.Equal(t, int64(0), AccessorType("QUAT").ComponentCount())
}

func TestAccessorElementSize(t *testing.T) {
	a := Accessor{ComponentType: ComponentTypeFloat, Type: AccessorTypeVec3}
	assert.Equal(t, int64(12), a.ElementSize())

	a = Accessor{ComponentType: ComponentTypeUnsignedShort, Type: AccessorTypeScalar}
	assert.Equal(t, int64(2), a.ElementSize())
}

func TestPropertyExtensions(t *testing.T) {
	var p Property
	assert.False(t, p.HasExtension("CESIUM_RTC"))
	assert.Nil(t, GetExtension[CesiumRTC](&p))

	p.SetExtension("CESIUM_RTC", &CesiumRTC{Center: []float64{1, 2, 3}})
	p.SetExtension("vendor_raw", jsonvalue.NewObject(
		jsonvalue.Member{Key: "flag", Value: jsonvalue.NewBool(true)},
	))

	rtc := GetExtension[CesiumRTC](&p)
	require.NotNil(t, rtc)
	assert.Equal(t, []float64{1, 2, 3}, rtc.Center)

	// Typed extensions are not visible through the generic accessor.
	_, ok := p.GenericExtension("CESIUM_RTC")
	assert.False(t, ok)

	raw, ok := p.GenericExtension("vendor_raw")
	require.True(t, ok)
	flag, ok := raw.Get("flag")
	require.True(t, ok)
	assert.True(t, flag.BoolOr(false))
}

func TestDefaultScene(t *testing.T) {
	m := Model{Scene: -1}
	assert.Nil(t, m.DefaultScene())

	m.Scenes = []Scene{{Name: "first"}, {Name: "second"}}
	m.Scene = 1
	require.NotNil(t, m.DefaultScene())
	assert.Equal(t, "second", m.DefaultScene().Name)

	m.Scene = 5
	assert.Nil(t, m.DefaultScene())
}

func TestGetModelStats(t *testing.T) {
	m := &Model{
		Scenes:    []Scene{{}},
		Nodes:     []Node{{}, {}},
		Accessors: []Accessor{{Count: 36, ComponentType: ComponentTypeUnsignedShort, Type: AccessorTypeScalar}},
		Meshes: []Mesh{{
			Primitives: []MeshPrimitive{
				{Indices: 0, Mode: PrimitiveModeTriangles},
				{Indices: -1, Mode: PrimitiveModePoints},
			},
		}},
		Buffers: []Buffer{{Data: make([]byte, 128)}, {Data: make([]byte, 64)}},
	}

	stats := GetModelStats(m)
	assert.Equal(t, 1, stats.SceneCount)
	assert.Equal(t, 2, stats.NodeCount)
	assert.Equal(t, 1, stats.MeshCount)
	assert.Equal(t, 2, stats.PrimitiveCount)
	assert.Equal(t, 2, stats.BufferCount)
	assert.Equal(t, int64(192), stats.BufferBytes)
	assert.Equal(t, int64(12), stats.TriangleCount)
}

func TestGetModelStatsNil(t *testing.T) {
	assert.Equal(t, ModelStats{}, GetModelStats(nil))
}
