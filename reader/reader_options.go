package reader

import (
	"errors"
	"io"

	"github.com/HereWeG0/cesium-native/ktx2"
)

// Option configures a single ReadWithOptions call.
type Option func(*readOptions) error

type readOptions struct {
	filePath string
	bytes    []byte
	stream   io.Reader
	sources  int

	reader *Reader
}

var errNoSource = errors.New("reader: exactly one of WithFilePath, WithBytes or WithReader must be provided")

// WithFilePath reads the document from a file on disk.
func WithFilePath(path string) Option {
	return func(o *readOptions) error {
		o.filePath = path
		o.sources++
		return nil
	}
}

// WithBytes reads the document from memory.
func WithBytes(data []byte) Option {
	return func(o *readOptions) error {
		o.bytes = data
		o.sources++
		return nil
	}
}

// WithReader reads the document from a stream, consuming it to EOF.
func WithReader(src io.Reader) Option {
	return func(o *readOptions) error {
		o.stream = src
		o.sources++
		return nil
	}
}

// WithCaptureUnknown toggles capture of members outside the schema.
func WithCaptureUnknown(capture bool) Option {
	return func(o *readOptions) error {
		o.reader.CaptureUnknown = capture
		return nil
	}
}

// WithExtensions replaces the extension registry for this call.
func WithExtensions(reg *ExtensionRegistry) Option {
	return func(o *readOptions) error {
		o.reader.Extensions = reg
		return nil
	}
}

// WithExtensionState sets the state of one extension name on every parent
// type for this call.
func WithExtensionState(name string, state ExtensionState) Option {
	return func(o *readOptions) error {
		o.reader.Extensions.SetExtensionState(name, state)
		return nil
	}
}

// WithByteLoader supplies the loader for external URIs.
func WithByteLoader(loader ByteLoader) Option {
	return func(o *readOptions) error {
		o.reader.LoadExternal = loader
		return nil
	}
}

// WithDataURIDecoding toggles materialization of data: URIs.
func WithDataURIDecoding(decode bool) Option {
	return func(o *readOptions) error {
		o.reader.DecodeDataURIs = decode
		return nil
	}
}

// WithImageDecoding toggles decoding of image payloads.
func WithImageDecoding(decode bool) Option {
	return func(o *readOptions) error {
		o.reader.DecodeImages = decode
		return nil
	}
}

// WithTranscoder supplies the KTX2 transcoder and its target formats.
func WithTranscoder(t ktx2.Transcoder, targets ktx2.TranscodeTargets) Option {
	return func(o *readOptions) error {
		o.reader.Transcoder = t
		o.reader.TranscodeTargets = targets
		return nil
	}
}

// WithDracoDecoder supplies the Draco geometry decoder.
func WithDracoDecoder(d DracoDecoder) Option {
	return func(o *readOptions) error {
		o.reader.DecodeDraco = d
		return nil
	}
}

// WithMeshoptDecoder supplies the meshopt stream decoder.
func WithMeshoptDecoder(d MeshoptDecoder) Option {
	return func(o *readOptions) error {
		o.reader.DecodeMeshopt = d
		return nil
	}
}

// WithLogger supplies a logger for debug diagnostics.
func WithLogger(l Logger) Option {
	return func(o *readOptions) error {
		o.reader.Logger = l
		return nil
	}
}

// ReadWithOptions reads one document with one-shot configuration. Exactly
// one source option is required.
//
//	res, err := reader.ReadWithOptions(
//	    reader.WithFilePath("model.glb"),
//	    reader.WithCaptureUnknown(true),
//	)
func ReadWithOptions(opts ...Option) (*Result, error) {
	o := &readOptions{reader: New()}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.sources != 1 {
		return nil, errNoSource
	}
	switch {
	case o.filePath != "":
		return o.reader.ReadFile(o.filePath)
	case o.stream != nil:
		return o.reader.ReadReader(o.stream)
	default:
		return o.reader.ReadModel(o.bytes), nil
	}
}
