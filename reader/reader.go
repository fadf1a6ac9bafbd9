package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
	"github.com/HereWeG0/cesium-native/ktx2"
)

// SourceFormat identifies the container the document arrived in.
type SourceFormat string

const (
	SourceFormatGLTF    SourceFormat = "gltf"
	SourceFormatGLB     SourceFormat = "glb"
	SourceFormatUnknown SourceFormat = "unknown"
)

// DracoDecoder decodes a Draco-compressed geometry payload to interleaved
// vertex data. The extension describes the attribute mapping.
type DracoDecoder func(compressed []byte, ext *gltf.KHRDracoMeshCompression) ([]byte, error)

// MeshoptDecoder decodes a meshopt-compressed stream. The extension
// carries the stream mode, filter, stride and expected element count.
type MeshoptDecoder func(compressed []byte, ext *gltf.EXTMeshoptCompression) ([]byte, error)

// Reader parses glTF and GLB documents into gltf.Model values.
//
// The zero value is not useful; call New. Configure the exported fields
// between calls, then call ReadModel, ReadFile or ReadReader. Each call
// snapshots the configuration, so a Reader may serve concurrent reads as
// long as nothing mutates it mid-flight; configuration changes apply to
// subsequent calls only.
type Reader struct {
	// CaptureUnknown stores members outside the schema in each object's
	// Unknown map instead of dropping them.
	CaptureUnknown bool

	// Extensions resolves extension names to handlers and states.
	Extensions *ExtensionRegistry

	// LoadExternal fetches external URIs. ReadFile installs a FileLoader
	// rooted at the document's directory when this is nil.
	LoadExternal ByteLoader

	// DecodeDataURIs materializes data: URIs into buffer and image data.
	DecodeDataURIs bool

	// DecodeImages decodes image payloads into ImageAssets.
	DecodeImages bool

	// TranscodeTargets selects the output format the Transcoder should
	// produce per source codec.
	TranscodeTargets ktx2.TranscodeTargets

	// Transcoder handles supercompressed or block-compressed KTX2
	// payloads. Without one, such images fail with an error.
	Transcoder ktx2.Transcoder

	// DecodeDraco handles KHR_draco_mesh_compression payloads. Without
	// one, compressed primitives are left as-is with a warning.
	DecodeDraco DracoDecoder

	// DecodeMeshopt handles EXT_meshopt_compression payloads. Without
	// one, compressed buffer views are left as-is with a warning.
	DecodeMeshopt MeshoptDecoder

	// Logger receives debug-level parse diagnostics. Defaults to no-op.
	Logger Logger
}

// New returns a Reader with the default typed extensions registered and
// data URI and image decoding enabled.
func New() *Reader {
	return &Reader{
		Extensions:     DefaultExtensions(),
		DecodeDataURIs: true,
		DecodeImages:   true,
		Logger:         NopLogger{},
	}
}

// readConfig is the per-call snapshot of a Reader's configuration.
type readConfig struct {
	capture          bool
	ext              *ExtensionRegistry
	loadExternal     ByteLoader
	decodeDataURIs   bool
	decodeImages     bool
	transcodeTargets ktx2.TranscodeTargets
	transcoder       ktx2.Transcoder
	decodeDraco      DracoDecoder
	decodeMeshopt    MeshoptDecoder
	log              Logger
}

func (r *Reader) snapshot() readConfig {
	cfg := readConfig{
		capture:          r.CaptureUnknown,
		loadExternal:     r.LoadExternal,
		decodeDataURIs:   r.DecodeDataURIs,
		decodeImages:     r.DecodeImages,
		transcodeTargets: r.TranscodeTargets,
		transcoder:       r.Transcoder,
		decodeDraco:      r.DecodeDraco,
		decodeMeshopt:    r.DecodeMeshopt,
		log:              r.Logger,
	}
	if r.Extensions != nil {
		cfg.ext = r.Extensions.Clone()
	} else {
		cfg.ext = NewExtensionRegistry()
	}
	if cfg.log == nil {
		cfg.log = NopLogger{}
	}
	return cfg
}

// Result is the outcome of reading one document. Model is nil only when
// the document was unusable; otherwise it is returned even when Errors is
// non-empty, carrying everything that parsed.
type Result struct {
	Model *gltf.Model

	// Errors describe content that could not be represented.
	Errors []string
	// Warnings describe content that was coerced or skipped.
	Warnings []string

	SourcePath   string
	SourceFormat SourceFormat
	SourceSize   int64
	LoadTime     time.Duration

	Stats gltf.ModelStats
}

// HasErrors reports whether any error diagnostics were recorded.
func (res *Result) HasErrors() bool {
	return len(res.Errors) > 0
}

// ReadModel parses a glTF or GLB document from memory. The container is
// detected from the leading bytes.
func (r *Reader) ReadModel(data []byte) *Result {
	start := time.Now()
	cfg := r.snapshot()
	res := &Result{
		SourceFormat: SourceFormatGLTF,
		SourceSize:   int64(len(data)),
	}

	jsonChunk := data
	var binChunk []byte
	if isGLB(data) {
		res.SourceFormat = SourceFormatGLB
		var err error
		jsonChunk, binChunk, err = unwrapGLB(data)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			res.LoadTime = time.Since(start)
			return res
		}
	}

	v, err := jsonvalue.Parse(jsonChunk)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("invalid document: %v", err))
		res.LoadTime = time.Since(start)
		return res
	}
	if !v.IsObject() {
		res.Errors = append(res.Errors, "document root must be a JSON object")
		res.LoadTime = time.Since(start)
		return res
	}

	c := &readContext{capture: cfg.capture, ext: cfg.ext, log: cfg.log}
	model, fatal := c.readModel(v)
	if !fatal {
		c.resolveBuffers(model, binChunk, cfg)
		c.decompressMeshData(model, cfg)
		c.resolveImages(model, cfg)
		res.Model = model
		res.Stats = gltf.GetModelStats(model)
	}
	res.Errors = append(res.Errors, c.errors...)
	res.Warnings = append(res.Warnings, c.warnings...)
	res.LoadTime = time.Since(start)

	cfg.log.Debug("document read",
		"format", string(res.SourceFormat),
		"size", res.SourceSize,
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
	)
	return res
}

// ReadFile reads a document from disk. When no external loader is
// configured, sibling resources resolve relative to the file's directory.
// The returned error covers I/O only; parse diagnostics are in the Result.
func (r *Reader) ReadFile(path string) (*Result, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rr := *r
	if rr.LoadExternal == nil {
		rr.LoadExternal = FileLoader(filepath.Dir(path))
	}
	res := rr.ReadModel(data)
	res.SourcePath = path
	res.LoadTime = time.Since(start)
	return res, nil
}

// ReadReader consumes a stream to EOF and parses it.
func (r *Reader) ReadReader(src io.Reader) (*Result, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}
	return r.ReadModel(data), nil
}
