package reader

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/ktx2"
)

// ImageResult is the outcome of decoding one standalone image payload.
type ImageResult struct {
	Image    *gltf.ImageAsset
	Errors   []string
	Warnings []string
}

// ReadImage decodes a standalone image payload (PNG, JPEG or KTX2) with
// default configuration. KTX2 payloads that need transcoding fail unless a
// Reader with a Transcoder is used instead.
func ReadImage(data []byte, targets ktx2.TranscodeTargets) ImageResult {
	r := New()
	r.TranscodeTargets = targets
	return r.ReadImage(data)
}

// ReadImage decodes a standalone image payload using the reader's
// transcoder configuration.
func (r *Reader) ReadImage(data []byte) ImageResult {
	cfg := r.snapshot()
	c := &readContext{capture: cfg.capture, ext: cfg.ext, log: cfg.log}
	asset := c.decodeImagePayload(data, "", "", cfg)
	return ImageResult{Image: asset, Errors: c.errors, Warnings: c.warnings}
}

// resolveImages locates and decodes the payload of every image. Each
// failure stays local to its image.
func (c *readContext) resolveImages(m *gltf.Model, cfg readConfig) {
	for i := range m.Images {
		img := &m.Images[i]
		path := fmt.Sprintf("/images/%d", i)

		var data []byte
		switch {
		case img.URI != "" && isDataURI(img.URI):
			if !cfg.decodeDataURIs {
				continue
			}
			mime, decoded, err := decodeDataURI(img.URI)
			if err != nil {
				c.errorf(path, "failed to decode data uri: %v", err)
				continue
			}
			if img.MimeType == "" {
				img.MimeType = mime
			}
			data = decoded
		case img.URI != "":
			if cfg.loadExternal == nil {
				c.errorf(path, "image references external uri %q but no loader is configured", img.URI)
				continue
			}
			loaded, err := cfg.loadExternal(img.URI)
			if err != nil {
				c.errorf(path, "failed to load %q: %v", img.URI, err)
				continue
			}
			data = loaded
		case img.BufferView >= 0:
			viewData, err := bufferViewBytes(m, img.BufferView)
			if err != nil {
				c.errorf(path, "image payload unavailable: %v", err)
				continue
			}
			data = viewData
		default:
			c.errorf(path, "image has no uri and no bufferView")
			continue
		}

		if !cfg.decodeImages {
			continue
		}
		img.Asset = c.decodeImagePayload(data, img.MimeType, path, cfg)
	}
}

// decodeImagePayload sniffs the payload format and decodes it to an
// ImageAsset. Format detection prefers the bytes over the declared MIME
// type.
func (c *readContext) decodeImagePayload(data []byte, mimeType, path string, cfg readConfig) *gltf.ImageAsset {
	if ktx2.IsKTX2(data) {
		return c.decodeKTX2(data, path, cfg)
	}
	if isPNG(data) || isJPEG(data) {
		return c.decodeStandardImage(data, path)
	}
	if mimeType != "" {
		c.errorf(path, "unsupported image MIME type %q", mimeType)
	} else {
		c.errorf(path, "unrecognized image format")
	}
	return nil
}

func isPNG(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
}

func isJPEG(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF
}

// decodeStandardImage decodes a PNG or JPEG payload to 8-bit RGBA. These
// formats carry a single base image, so the mip layout stays empty and
// further levels may be generated at runtime.
func (c *readContext) decodeStandardImage(data []byte, path string) *gltf.ImageAsset {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		c.errorf(path, "failed to decode image: %v", err)
		return nil
	}
	bounds := src.Bounds()
	rgba := image.NewNRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)
	return &gltf.ImageAsset{
		Width:           int32(bounds.Dx()),
		Height:          int32(bounds.Dy()),
		Channels:        4,
		BytesPerChannel: 1,
		PixelData:       rgba.Pix,
	}
}

// decodeKTX2 extracts the mip chain layout from a KTX2 container and
// assembles the pixel buffer. Supercompressed or block-compressed payloads
// are handed to the configured transcoder.
func (c *readContext) decodeKTX2(data []byte, path string, cfg readConfig) *gltf.ImageAsset {
	container, err := ktx2.Parse(data)
	if err != nil {
		c.errorf(path, "invalid ktx2 container: %v", err)
		return nil
	}

	const channels = 4
	layout := container.MipLayout(channels)
	asset := &gltf.ImageAsset{
		Width:           int32(container.PixelWidth),
		Height:          int32(container.PixelHeight),
		Channels:        channels,
		BytesPerChannel: 1,
		MipPositions:    layout,
	}

	needsTranscode := container.SupercompressionScheme != ktx2.SupercompressionNone ||
		(container.VkFormat != ktx2.VkFormatR8G8B8A8Unorm && container.VkFormat != ktx2.VkFormatR8G8B8A8Srgb)
	if needsTranscode {
		if cfg.transcoder == nil {
			c.errorf(path, "ktx2 payload requires transcoding but no transcoder is configured")
			return nil
		}
		pixels, err := cfg.transcoder(container, layout, cfg.transcodeTargets)
		if err != nil {
			c.errorf(path, "ktx2 transcode failed: %v", err)
			return nil
		}
		asset.PixelData = pixels
		return asset
	}

	if len(layout) == 0 {
		// Base image only; remaining levels are generated at runtime.
		base, err := container.LevelData(0)
		if err != nil {
			c.errorf(path, "ktx2 base level unavailable: %v", err)
			return nil
		}
		asset.PixelData = base
		return asset
	}

	pixels := make([]byte, ktx2.DecodedSize(layout))
	for i := range layout {
		level, err := container.LevelData(i)
		if err != nil {
			c.errorf(path, "ktx2 level %d unavailable: %v", i, err)
			return nil
		}
		dst := pixels[layout[i].ByteOffset:]
		n := layout[i].ByteSize
		if int64(len(level)) < n {
			n = int64(len(level))
			c.warnf(path, "ktx2 level %d holds %d bytes, expected %d", i, len(level), layout[i].ByteSize)
		}
		copy(dst, level[:n])
	}
	asset.PixelData = pixels
	return asset
}
