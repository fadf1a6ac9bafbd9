package ktx2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// identifier is the 12-byte sequence every KTX2 container starts with.
var identifier = []byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// Common errors returned by Parse.
var (
	ErrNotKTX2   = errors.New("ktx2: missing container identifier")
	ErrTruncated = errors.New("ktx2: container shorter than declared contents")
)

// Supercompression schemes from the KTX2 specification.
const (
	SupercompressionNone    uint32 = 0
	SupercompressionBasisLZ uint32 = 1
	SupercompressionZstd    uint32 = 2
	SupercompressionZLIB    uint32 = 3
)

// Vulkan format values the reader recognizes as directly usable without
// transcoding.
const (
	VkFormatUndefined     uint32 = 0
	VkFormatR8G8B8A8Unorm uint32 = 37
	VkFormatR8G8B8A8Srgb  uint32 = 43
)

// Header is the fixed-size portion of a KTX2 container, directly after the
// identifier. All fields are little-endian in the file.
type Header struct {
	VkFormat               uint32
	TypeSize               uint32
	PixelWidth             uint32
	PixelHeight            uint32
	PixelDepth             uint32
	LayerCount             uint32
	FaceCount              uint32
	LevelCount             uint32
	SupercompressionScheme uint32
}

// sectionIndex locates the metadata blocks that follow the header.
type sectionIndex struct {
	DFDByteOffset uint32
	DFDByteLength uint32
	KVDByteOffset uint32
	KVDByteLength uint32
	SGDByteOffset uint64
	SGDByteLength uint64
}

// LevelIndexEntry describes one stored mip level inside the container.
type LevelIndexEntry struct {
	// ByteOffset of the level data from the start of the container.
	ByteOffset uint64
	// ByteLength of the stored (possibly supercompressed) level data.
	ByteLength uint64
	// UncompressedByteLength of the level data once any supercompression
	// is undone. Equal to ByteLength when SupercompressionScheme is none.
	UncompressedByteLength uint64
}

// MipPosition is the byte range one mip level occupies in a decoded, flat
// pixel buffer.
type MipPosition struct {
	ByteOffset int64
	ByteSize   int64
}

// TargetFormat enumerates pixel formats a transcoder may produce.
type TargetFormat int

const (
	// TargetRGBA8 is uncompressed 8-bit RGBA, the universal fallback.
	TargetRGBA8 TargetFormat = iota
	TargetBC7
	TargetETC2
	TargetASTC
)

// TranscodeTargets names the preferred output format per source block
// class. The zero value requests uncompressed RGBA8 throughout.
type TranscodeTargets struct {
	// ETC1S is the target for ETC1S/BasisLZ encoded payloads.
	ETC1S TargetFormat
	// UASTC is the target for UASTC encoded payloads.
	UASTC TargetFormat
}

// Transcoder converts compressed container payloads into a flat pixel
// buffer matching the given layout. Implementations wrap an actual block
// transcoder (Basis Universal or similar); this package never decodes
// blocks itself.
type Transcoder func(c *Container, layout []MipPosition, targets TranscodeTargets) ([]byte, error)

// Container is a parsed KTX2 container. The level index refers to byte
// ranges within the original input, which the Container retains.
type Container struct {
	Header
	// Levels holds the stored level index, finest level first. There is
	// always at least one stored level, even when Header.LevelCount is 0.
	Levels []LevelIndexEntry

	data []byte
}

// IsKTX2 reports whether data starts with the KTX2 container identifier.
func IsKTX2(data []byte) bool {
	return len(data) >= len(identifier) && bytes.Equal(data[:len(identifier)], identifier)
}

// Parse reads the container header and level index. The level data itself
// is not copied or decoded.
func Parse(data []byte) (*Container, error) {
	if !IsKTX2(data) {
		return nil, ErrNotKTX2
	}

	r := bytes.NewReader(data[len(identifier):])

	var c Container
	if err := binary.Read(r, binary.LittleEndian, &c.Header); err != nil {
		return nil, fmt.Errorf("ktx2: reading header: %w", err)
	}
	if c.PixelWidth == 0 || c.PixelHeight == 0 {
		return nil, fmt.Errorf("ktx2: invalid pixel dimensions %dx%d", c.PixelWidth, c.PixelHeight)
	}

	var idx sectionIndex
	if err := binary.Read(r, binary.LittleEndian, &idx); err != nil {
		return nil, fmt.Errorf("ktx2: reading section index: %w", err)
	}

	// A levelCount of zero still stores exactly one level; it signals that
	// the remaining mip levels should be generated at runtime.
	stored := int(c.LevelCount)
	if stored == 0 {
		stored = 1
	}
	c.Levels = make([]LevelIndexEntry, stored)
	if err := binary.Read(r, binary.LittleEndian, c.Levels); err != nil {
		return nil, fmt.Errorf("ktx2: reading level index: %w", err)
	}
	for i, lvl := range c.Levels {
		// Checked without summing: ByteOffset+ByteLength can wrap uint64.
		if lvl.ByteOffset > uint64(len(data)) || lvl.ByteLength > uint64(len(data))-lvl.ByteOffset {
			return nil, fmt.Errorf("ktx2: level %d: %w", i, ErrTruncated)
		}
	}

	c.data = data
	return &c, nil
}

// StoredLevelCount returns the number of levels physically present in the
// container. This is 1 even for auto-mipmap containers.
func (c *Container) StoredLevelCount() int {
	return len(c.Levels)
}

// LevelData returns the raw stored bytes of level i, finest level first.
// The bytes are still supercompressed when SupercompressionScheme is not
// none.
func (c *Container) LevelData(i int) ([]byte, error) {
	if i < 0 || i >= len(c.Levels) {
		return nil, fmt.Errorf("ktx2: level %d out of range [0,%d)", i, len(c.Levels))
	}
	lvl := c.Levels[i]
	if lvl.ByteOffset > uint64(len(c.data)) || lvl.ByteLength > uint64(len(c.data))-lvl.ByteOffset {
		return nil, fmt.Errorf("ktx2: level %d: %w", i, ErrTruncated)
	}
	return c.data[lvl.ByteOffset : lvl.ByteOffset+lvl.ByteLength], nil
}

// MipLayout computes the byte ranges the container's mip levels occupy in a
// decoded pixel buffer with the given channel count, finest level first.
//
// Three shapes are possible:
//   - Header.LevelCount == 0: the container carries only a base image and
//     further levels are meant to be generated at runtime. The layout is
//     empty; callers must not treat that as "one level".
//   - Header.LevelCount == 1: one entry spanning the whole base image.
//   - Header.LevelCount == N: N entries with strictly decreasing sizes and
//     non-decreasing offsets, one per level of the mip pyramid.
func (c *Container) MipLayout(channels int32) []MipPosition {
	if c.LevelCount == 0 {
		return nil
	}

	layout := make([]MipPosition, 0, c.LevelCount)
	var offset int64
	for i := uint32(0); i < c.LevelCount; i++ {
		w := c.PixelWidth >> i
		if w == 0 {
			w = 1
		}
		h := c.PixelHeight >> i
		if h == 0 {
			h = 1
		}
		size := int64(w) * int64(h) * int64(channels)
		layout = append(layout, MipPosition{ByteOffset: offset, ByteSize: size})
		offset += size
	}
	return layout
}

// DecodedSize returns the total byte size of a pixel buffer holding every
// level of the layout.
func DecodedSize(layout []MipPosition) int64 {
	var total int64
	for _, p := range layout {
		total += p.ByteSize
	}
	return total
}
