package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HereWeG0/cesium-native/gltf"
)

func TestReadAccessorsAndMeshes(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0"},
	  "accessors": [
	    {
	      "count": 4,
	      "componentType": 5121,
	      "type": "VEC2",
	      "max": [1.0, 2.2, 3.3],
	      "min": [0.0, -1.2]
	    }
	  ],
	  "meshes": [
	    {
	      "primitives": [
	        {
	          "attributes": {"POSITION": 0, "NORMAL": 1},
	          "targets": [
	            {"POSITION": 10, "NORMAL": 11}
	          ]
	        }
	      ]
	    }
	  ],
	  "surprise": {"foo": true}
	}`

	res := New().ReadModel([]byte(doc))
	require.NotNil(t, res.Model)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, SourceFormatGLTF, res.SourceFormat)
	assert.Equal(t, "2.0", res.Model.Asset.Version)

	require.Len(t, res.Model.Accessors, 1)
	accessor := res.Model.Accessors[0]
	assert.Equal(t, int64(4), accessor.Count)
	assert.Equal(t, gltf.ComponentTypeUnsignedByte, accessor.ComponentType)
	assert.Equal(t, gltf.AccessorTypeVec2, accessor.Type)
	assert.Equal(t, []float64{1.0, 2.2, 3.3}, accessor.Max)
	assert.Equal(t, []float64{0.0, -1.2}, accessor.Min)

	require.Len(t, res.Model.Meshes, 1)
	require.Len(t, res.Model.Meshes[0].Primitives, 1)
	prim := res.Model.Meshes[0].Primitives[0]
	assert.Equal(t, int32(0), prim.Attributes["POSITION"])
	assert.Equal(t, int32(1), prim.Attributes["NORMAL"])
	assert.Equal(t, gltf.PrimitiveModeTriangles, prim.Mode)
	require.Len(t, prim.Targets, 1)
	assert.Equal(t, int32(10), prim.Targets[0]["POSITION"])
	assert.Equal(t, int32(11), prim.Targets[0]["NORMAL"])
}

func TestNumericCoercion(t *testing.T) {
	// A whole-valued float is a valid integer; a fractional one is not.
	doc := `{
	  "asset": {"version": "2.0"},
	  "accessors": [
	    {"count": 4.0, "componentType": 5121.1}
	  ]
	}`

	res := New().ReadModel([]byte(doc))
	require.NotNil(t, res.Model)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "/accessors/0")
	assert.Contains(t, res.Warnings[0], "fractional")

	require.Len(t, res.Model.Accessors, 1)
	assert.Equal(t, int64(4), res.Model.Accessors[0].Count)
	assert.Equal(t, gltf.ComponentType(0), res.Model.Accessors[0].ComponentType)
}

func TestExtrasPreservedVerbatim(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0"},
	  "meshes": [
	    {
	      "primitives": [
	        {
	          "attributes": {"POSITION": 0},
	          "extras": {
	            "D": "Goodbye",
	            "E": 71,
	            "F": 2.5,
	            "nested": {"deep": [1, 2, 3]}
	          }
	        }
	      ]
	    }
	  ]
	}`

	res := New().ReadModel([]byte(doc))
	require.NotNil(t, res.Model)
	assert.Empty(t, res.Errors)

	extras := res.Model.Meshes[0].Primitives[0].Extras
	require.True(t, extras.IsObject())

	d, _ := extras.Get("D")
	assert.Equal(t, "Goodbye", d.StringOr(""))
	e, _ := extras.Get("E")
	ei, ok := e.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(71), ei)
	f, _ := extras.Get("F")
	assert.Equal(t, 2.5, f.Float64Or(0))

	nested, ok := extras.Get("nested")
	require.True(t, ok)
	deep, ok := nested.Get("deep")
	require.True(t, ok)
	assert.Equal(t, 3, deep.Len())
}

func TestUnknownPropertyCapture(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0", "favoriteColor": "orange"},
	  "pterodactyl": {"wingspan": 8.2},
	  "scenes": [{"nodes": [0], "mood": "pensive"}]
	}`

	t.Run("enabled", func(t *testing.T) {
		r := New()
		r.CaptureUnknown = true
		res := r.ReadModel([]byte(doc))
		require.NotNil(t, res.Model)

		require.Contains(t, res.Model.Unknown, "pterodactyl")
		wingspan, ok := res.Model.Unknown["pterodactyl"].Get("wingspan")
		require.True(t, ok)
		assert.Equal(t, 8.2, wingspan.Float64Or(0))

		// Capture applies inside known objects too.
		require.Contains(t, res.Model.Asset.Unknown, "favoriteColor")
		assert.Equal(t, "orange", res.Model.Asset.Unknown["favoriteColor"].StringOr(""))

		require.Len(t, res.Model.Scenes, 1)
		require.Contains(t, res.Model.Scenes[0].Unknown, "mood")
	})

	t.Run("disabled", func(t *testing.T) {
		res := New().ReadModel([]byte(doc))
		require.NotNil(t, res.Model)
		assert.Empty(t, res.Model.Unknown)
		assert.Empty(t, res.Model.Asset.Unknown)
		assert.Empty(t, res.Model.Scenes[0].Unknown)
	})
}

func TestMissingAssetStillReturnsModel(t *testing.T) {
	doc := `{"accessors": [{"count": 4, "componentType": 5121}]}`

	res := New().ReadModel([]byte(doc))
	require.NotNil(t, res.Model)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "asset")
	require.Len(t, res.Model.Accessors, 1)
	assert.Equal(t, int64(4), res.Model.Accessors[0].Count)
}

func TestAssetWithoutVersionIsFatal(t *testing.T) {
	doc := `{"asset": {"generator": "test"}, "scenes": [{}]}`

	res := New().ReadModel([]byte(doc))
	assert.Nil(t, res.Model)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "version")
}

func TestInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"asset": {`},
		{"array root", `[1, 2, 3]`},
		{"scalar root", `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().ReadModel([]byte(tt.doc))
			assert.Nil(t, res.Model)
			assert.NotEmpty(t, res.Errors)
		})
	}
}

func TestDefaultsApplied(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0"},
	  "materials": [{}],
	  "samplers": [{}],
	  "nodes": [{}],
	  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}]
	}`

	res := New().ReadModel([]byte(doc))
	require.NotNil(t, res.Model)
	assert.Empty(t, res.Errors)

	mat := res.Model.Materials[0]
	assert.Equal(t, gltf.AlphaModeOpaque, mat.AlphaMode)
	assert.Equal(t, 0.5, mat.AlphaCutoff)
	assert.False(t, mat.DoubleSided)

	sampler := res.Model.Samplers[0]
	assert.Equal(t, int32(-1), sampler.MagFilter)
	assert.Equal(t, gltf.WrapRepeat, sampler.WrapS)
	assert.Equal(t, gltf.WrapRepeat, sampler.WrapT)

	node := res.Model.Nodes[0]
	assert.Equal(t, int32(-1), node.Mesh)
	assert.Equal(t, int32(-1), node.Camera)
	assert.Equal(t, int32(-1), node.Skin)

	assert.Equal(t, int32(-1), res.Model.Scene)
	assert.Nil(t, res.Model.DefaultScene())
}

func TestFullSceneGraph(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0", "generator": "exporter 9.1"},
	  "scene": 0,
	  "scenes": [{"nodes": [0, 1], "name": "main"}],
	  "nodes": [
	    {"mesh": 0, "translation": [1, 2, 3], "name": "a"},
	    {"camera": 0, "matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1]}
	  ],
	  "cameras": [
	    {"type": "perspective", "perspective": {"yfov": 0.66, "znear": 0.01}}
	  ],
	  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}],
	  "animations": [
	    {
	      "channels": [{"sampler": 0, "target": {"node": 0, "path": "translation"}}],
	      "samplers": [{"input": 2, "output": 3}]
	    }
	  ],
	  "skins": [{"joints": [0, 1], "skeleton": 0}]
	}`

	res := New().ReadModel([]byte(doc))
	require.NotNil(t, res.Model)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)

	m := res.Model
	assert.Equal(t, "exporter 9.1", m.Asset.Generator)
	require.NotNil(t, m.DefaultScene())
	assert.Equal(t, "main", m.DefaultScene().Name)
	assert.Equal(t, []float64{1, 2, 3}, m.Nodes[0].Translation)
	require.Len(t, m.Nodes[1].Matrix, 16)

	require.Len(t, m.Cameras, 1)
	require.NotNil(t, m.Cameras[0].Perspective)
	assert.Equal(t, 0.66, m.Cameras[0].Perspective.YFov)
	assert.Nil(t, m.Cameras[0].Orthographic)

	require.Len(t, m.Animations, 1)
	anim := m.Animations[0]
	require.Len(t, anim.Channels, 1)
	assert.Equal(t, int32(0), anim.Channels[0].Target.Node)
	assert.Equal(t, "translation", anim.Channels[0].Target.Path)
	require.Len(t, anim.Samplers, 1)
	assert.Equal(t, gltf.InterpolationLinear, anim.Samplers[0].Interpolation)

	require.Len(t, m.Skins, 1)
	assert.Equal(t, []int32{0, 1}, m.Skins[0].Joints)

	assert.Equal(t, 1, gltf.GetModelStats(m).MeshCount)
}

func TestMalformedElementKeepsSiblings(t *testing.T) {
	doc := `{
	  "asset": {"version": "2.0"},
	  "bufferViews": [
	    {"byteLength": 10},
	    {"buffer": 0, "byteLength": 20}
	  ]
	}`

	res := New().ReadModel([]byte(doc))
	require.NotNil(t, res.Model)
	require.NotEmpty(t, res.Errors)
	assert.True(t, strings.HasPrefix(res.Errors[0], "/bufferViews/0"))

	// The malformed view stays in place so indices line up.
	require.Len(t, res.Model.BufferViews, 2)
	assert.Equal(t, int32(-1), res.Model.BufferViews[0].Buffer)
	assert.Equal(t, int32(0), res.Model.BufferViews[1].Buffer)
	assert.Equal(t, int64(20), res.Model.BufferViews[1].ByteLength)
}

func TestReadWithOptions(t *testing.T) {
	doc := []byte(`{"asset": {"version": "2.0"}, "unclassified": 1}`)

	t.Run("bytes source", func(t *testing.T) {
		res, err := ReadWithOptions(
			WithBytes(doc),
			WithCaptureUnknown(true),
		)
		require.NoError(t, err)
		require.NotNil(t, res.Model)
		assert.Contains(t, res.Model.Unknown, "unclassified")
	})

	t.Run("reader source", func(t *testing.T) {
		res, err := ReadWithOptions(WithReader(strings.NewReader(string(doc))))
		require.NoError(t, err)
		require.NotNil(t, res.Model)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := ReadWithOptions(WithCaptureUnknown(true))
		assert.ErrorIs(t, err, errNoSource)
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := ReadWithOptions(WithBytes(doc), WithReader(strings.NewReader("{}")))
		assert.ErrorIs(t, err, errNoSource)
	})
}

func TestResultBookkeeping(t *testing.T) {
	doc := []byte(`{"asset": {"version": "2.0"}}`)
	res := New().ReadModel(doc)
	assert.Equal(t, int64(len(doc)), res.SourceSize)
	assert.False(t, res.HasErrors())
	assert.GreaterOrEqual(t, res.LoadTime.Nanoseconds(), int64(0))
}
