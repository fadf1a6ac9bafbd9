package reader

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGLB assembles a binary container from a JSON payload and an
// optional BIN payload, padding chunks to 4-byte alignment.
func buildGLB(t *testing.T, jsonPayload, binPayload []byte) []byte {
	t.Helper()

	writeChunk := func(buf *bytes.Buffer, ctype uint32, payload []byte, pad byte) {
		padded := len(payload)
		if rem := padded % 4; rem != 0 {
			padded += 4 - rem
		}
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint32(padded)))
		require.NoError(t, binary.Write(buf, binary.LittleEndian, ctype))
		buf.Write(payload)
		for i := len(payload); i < padded; i++ {
			buf.WriteByte(pad)
		}
	}

	var body bytes.Buffer
	writeChunk(&body, chunkTypeJSON, jsonPayload, ' ')
	if binPayload != nil {
		writeChunk(&body, chunkTypeBIN, binPayload, 0)
	}

	var out bytes.Buffer
	require.NoError(t, binary.Write(&out, binary.LittleEndian, glbMagic))
	require.NoError(t, binary.Write(&out, binary.LittleEndian, glbVersion))
	require.NoError(t, binary.Write(&out, binary.LittleEndian, uint32(12+body.Len())))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestReadGLB(t *testing.T) {
	binData := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	doc := []byte(`{
	  "asset": {"version": "2.0"},
	  "buffers": [{"byteLength": 10}],
	  "bufferViews": [{"buffer": 0, "byteOffset": 2, "byteLength": 4}]
	}`)
	glb := buildGLB(t, doc, binData)

	res := New().ReadModel(glb)
	require.NotNil(t, res.Model)
	assert.Empty(t, res.Errors)
	assert.Equal(t, SourceFormatGLB, res.SourceFormat)

	require.Len(t, res.Model.Buffers, 1)
	buf := res.Model.Buffers[0]
	assert.Equal(t, "", buf.URI)
	require.GreaterOrEqual(t, len(buf.Data), 10)
	assert.Equal(t, binData, buf.Data[:10])

	viewData, err := bufferViewBytes(res.Model, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5, 6}, viewData)
}

func TestReadGLBWithoutBinChunk(t *testing.T) {
	glb := buildGLB(t, []byte(`{"asset": {"version": "2.0"}}`), nil)
	res := New().ReadModel(glb)
	require.NotNil(t, res.Model)
	assert.Empty(t, res.Errors)
	assert.Equal(t, SourceFormatGLB, res.SourceFormat)
}

func TestGLBBufferWithoutChunk(t *testing.T) {
	glb := buildGLB(t, []byte(`{
	  "asset": {"version": "2.0"},
	  "buffers": [{"byteLength": 10}]
	}`), nil)

	res := New().ReadModel(glb)
	require.NotNil(t, res.Model)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "/buffers/0")
	assert.Nil(t, res.Model.Buffers[0].Data)
}

func TestUnwrapGLBErrors(t *testing.T) {
	valid := buildGLB(t, []byte(`{"asset": {"version": "2.0"}}`), []byte{1, 2, 3, 4})

	t.Run("too short", func(t *testing.T) {
		_, _, err := unwrapGLB(valid[:8])
		assert.ErrorIs(t, err, errGLBTooShort)
	})

	t.Run("bad version", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[4:], 1)
		_, _, err := unwrapGLB(data)
		assert.ErrorIs(t, err, errGLBBadVersion)
	})

	t.Run("declared length beyond data", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[8:], uint32(len(data)+100))
		_, _, err := unwrapGLB(data)
		assert.ErrorIs(t, err, errGLBTruncated)
	})

	t.Run("chunk length beyond data", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[12:], uint32(len(data)))
		_, _, err := unwrapGLB(data)
		assert.ErrorIs(t, err, errGLBTruncated)
	})

	t.Run("bin chunk first", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[16:], chunkTypeBIN)
		_, _, err := unwrapGLB(data)
		assert.ErrorIs(t, err, errGLBNoJSONChunk)
	})
}

func TestGLBErrorSurfacesInResult(t *testing.T) {
	glb := buildGLB(t, []byte(`{"asset": {"version": "2.0"}}`), nil)
	glb = glb[:10]

	res := New().ReadModel(glb)
	assert.Nil(t, res.Model)
	assert.Equal(t, SourceFormatGLB, res.SourceFormat)
	require.NotEmpty(t, res.Errors)
}

func TestUnknownChunksSkipped(t *testing.T) {
	doc := []byte(`{"asset": {"version": "2.0"}}`)
	glb := buildGLB(t, doc, nil)

	// Append an unknown chunk type after the JSON chunk.
	var extra bytes.Buffer
	extra.Write(glb)
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	require.NoError(t, binary.Write(&extra, binary.LittleEndian, uint32(len(payload))))
	require.NoError(t, binary.Write(&extra, binary.LittleEndian, uint32(0x12345678)))
	extra.Write(payload)
	data := extra.Bytes()
	binary.LittleEndian.PutUint32(data[8:], uint32(len(data)))

	jsonChunk, binChunk, err := unwrapGLB(data)
	require.NoError(t, err)
	assert.Nil(t, binChunk)
	assert.Contains(t, string(jsonChunk), `"2.0"`)
}

func TestIsGLB(t *testing.T) {
	assert.True(t, isGLB([]byte("glTF....")))
	assert.False(t, isGLB([]byte(`{"asset": {}}`)))
	assert.False(t, isGLB(nil))
}
