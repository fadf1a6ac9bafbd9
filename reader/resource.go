package reader

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/HereWeG0/cesium-native/gltf"
)

// ByteLoader fetches the bytes behind an external (non-data) URI. The
// reader never touches the filesystem or network itself; without a loader,
// external references become errors.
type ByteLoader func(uri string) ([]byte, error)

var errEscapesBaseDir = errors.New("uri escapes the base directory")

// FileLoader returns a ByteLoader resolving URIs relative to baseDir.
// Absolute paths and paths that climb out of baseDir are rejected.
func FileLoader(baseDir string) ByteLoader {
	return func(uri string) ([]byte, error) {
		if u, err := url.PathUnescape(uri); err == nil {
			uri = u
		}
		if filepath.IsAbs(uri) {
			return nil, fmt.Errorf("%w: %s", errEscapesBaseDir, uri)
		}
		clean := filepath.Clean(filepath.FromSlash(uri))
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("%w: %s", errEscapesBaseDir, uri)
		}
		return os.ReadFile(filepath.Join(baseDir, clean))
	}
}

const dataURIPrefix = "data:"

func isDataURI(uri string) bool {
	return strings.HasPrefix(uri, dataURIPrefix)
}

// decodeDataURI returns the MIME type and payload of an RFC 2397 data URI.
// Both base64 and percent-encoded payloads are supported.
func decodeDataURI(uri string) (mimeType string, data []byte, err error) {
	rest := strings.TrimPrefix(uri, dataURIPrefix)
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return "", nil, errors.New("data uri has no comma separator")
	}
	meta, payload := rest[:comma], rest[comma+1:]

	isBase64 := false
	if strings.HasSuffix(meta, ";base64") {
		isBase64 = true
		meta = strings.TrimSuffix(meta, ";base64")
	}
	mimeType = meta
	if i := strings.IndexByte(meta, ';'); i >= 0 {
		mimeType = meta[:i]
	}

	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
		}
		return mimeType, data, nil
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid percent-encoded payload: %w", err)
	}
	return mimeType, []byte(decoded), nil
}

// resolveBuffers fills in Buffer.Data for every buffer it can: the GLB BIN
// chunk for the URI-less first buffer, decoded data URIs, and external
// URIs via the configured loader. Failures are recorded and leave the
// remaining buffers unaffected.
func (c *readContext) resolveBuffers(m *gltf.Model, binChunk []byte, cfg readConfig) {
	for i := range m.Buffers {
		buf := &m.Buffers[i]
		path := fmt.Sprintf("/buffers/%d", i)

		if buf.URI == "" {
			if i == 0 && binChunk != nil {
				if int64(len(binChunk)) < buf.ByteLength {
					c.errorf(path, "byteLength %d exceeds binary chunk size %d", buf.ByteLength, len(binChunk))
					continue
				}
				buf.Data = binChunk
			} else if binChunk == nil {
				c.errorf(path, "buffer has no uri and the document has no binary chunk")
			} else {
				c.errorf(path, "only the first buffer may refer to the binary chunk")
			}
			continue
		}

		if isDataURI(buf.URI) {
			if !cfg.decodeDataURIs {
				continue
			}
			_, data, err := decodeDataURI(buf.URI)
			if err != nil {
				c.errorf(path, "failed to decode data uri: %v", err)
				continue
			}
			buf.Data = data
		} else {
			if cfg.loadExternal == nil {
				c.errorf(path, "buffer references external uri %q but no loader is configured", buf.URI)
				continue
			}
			data, err := cfg.loadExternal(buf.URI)
			if err != nil {
				c.errorf(path, "failed to load %q: %v", buf.URI, err)
				continue
			}
			buf.Data = data
		}

		if buf.ByteLength > 0 && int64(len(buf.Data)) < buf.ByteLength {
			c.errorf(path, "byteLength %d exceeds loaded size %d", buf.ByteLength, len(buf.Data))
		}
	}
}

// bufferViewBytes slices the resolved bytes behind a buffer view.
func bufferViewBytes(m *gltf.Model, viewIndex int32) ([]byte, error) {
	if viewIndex < 0 || int(viewIndex) >= len(m.BufferViews) {
		return nil, fmt.Errorf("bufferView index %d out of range", viewIndex)
	}
	view := &m.BufferViews[viewIndex]
	if view.Buffer < 0 || int(view.Buffer) >= len(m.Buffers) {
		return nil, fmt.Errorf("buffer index %d out of range", view.Buffer)
	}
	buf := &m.Buffers[view.Buffer]
	if buf.Data == nil {
		return nil, fmt.Errorf("buffer %d has no resolved data", view.Buffer)
	}
	end := view.ByteOffset + view.ByteLength
	if view.ByteOffset < 0 || end > int64(len(buf.Data)) {
		return nil, fmt.Errorf("bufferView range [%d,%d) exceeds buffer size %d", view.ByteOffset, end, len(buf.Data))
	}
	return buf.Data[view.ByteOffset:end], nil
}

// decompressMeshData routes compressed geometry payloads to the configured
// decode collaborators. Decoded output is appended as new buffers so the
// original streams stay untouched; the referring structures are repointed.
func (c *readContext) decompressMeshData(m *gltf.Model, cfg readConfig) {
	c.decompressMeshoptViews(m, cfg)
	c.decompressDracoPrimitives(m, cfg)
}

func (c *readContext) decompressMeshoptViews(m *gltf.Model, cfg readConfig) {
	for i := range m.BufferViews {
		view := &m.BufferViews[i]
		ext := gltf.GetExtension[gltf.EXTMeshoptCompression](&view.Property)
		if ext == nil {
			continue
		}
		path := fmt.Sprintf("/bufferViews/%d", i)
		if cfg.decodeMeshopt == nil {
			c.warnf(path, "no meshopt decoder configured; buffer view left compressed")
			continue
		}
		if ext.Buffer < 0 || int(ext.Buffer) >= len(m.Buffers) {
			c.errorf(path, "meshopt buffer index %d out of range", ext.Buffer)
			continue
		}
		src := m.Buffers[ext.Buffer].Data
		if src == nil {
			c.errorf(path, "meshopt source buffer %d has no resolved data", ext.Buffer)
			continue
		}
		end := ext.ByteOffset + ext.ByteLength
		if ext.ByteOffset < 0 || end > int64(len(src)) {
			c.errorf(path, "meshopt range [%d,%d) exceeds buffer size %d", ext.ByteOffset, end, len(src))
			continue
		}
		decoded, err := cfg.decodeMeshopt(src[ext.ByteOffset:end], ext)
		if err != nil {
			c.errorf(path, "meshopt decode failed: %v", err)
			continue
		}
		m.Buffers = append(m.Buffers, gltf.Buffer{
			ByteLength: int64(len(decoded)),
			Data:       decoded,
		})
		view.Buffer = int32(len(m.Buffers) - 1)
		view.ByteOffset = 0
		view.ByteLength = int64(len(decoded))
		view.ByteStride = ext.ByteStride
	}
}

func (c *readContext) decompressDracoPrimitives(m *gltf.Model, cfg readConfig) {
	for mi := range m.Meshes {
		for pi := range m.Meshes[mi].Primitives {
			prim := &m.Meshes[mi].Primitives[pi]
			ext := gltf.GetExtension[gltf.KHRDracoMeshCompression](&prim.Property)
			if ext == nil {
				continue
			}
			path := fmt.Sprintf("/meshes/%d/primitives/%d", mi, pi)
			if cfg.decodeDraco == nil {
				c.warnf(path, "no draco decoder configured; primitive left compressed")
				continue
			}
			compressed, err := bufferViewBytes(m, ext.BufferView)
			if err != nil {
				c.errorf(path, "draco payload unavailable: %v", err)
				continue
			}
			decoded, err := cfg.decodeDraco(compressed, ext)
			if err != nil {
				c.errorf(path, "draco decode failed: %v", err)
				continue
			}
			m.Buffers = append(m.Buffers, gltf.Buffer{
				ByteLength: int64(len(decoded)),
				Data:       decoded,
			})
			m.BufferViews = append(m.BufferViews, gltf.BufferView{
				Buffer:     int32(len(m.Buffers) - 1),
				ByteLength: int64(len(decoded)),
				Target:     -1,
			})
			ext.BufferView = int32(len(m.BufferViews) - 1)
		}
	}
}
