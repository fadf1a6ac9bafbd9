package reader

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Binary glTF container constants.
const (
	glbMagic   uint32 = 0x46546C67 // "glTF"
	glbVersion uint32 = 2

	chunkTypeJSON uint32 = 0x4E4F534A // "JSON"
	chunkTypeBIN  uint32 = 0x004E4942 // "BIN\0"

	glbHeaderSize   = 12
	chunkHeaderSize = 8
)

var (
	errGLBTooShort     = errors.New("binary container shorter than its header")
	errGLBBadMagic     = errors.New("binary container has wrong magic")
	errGLBBadVersion   = errors.New("unsupported binary container version")
	errGLBTruncated    = errors.New("binary container truncated")
	errGLBNoJSONChunk  = errors.New("first chunk must be the JSON chunk")
	errGLBExtraBIN     = errors.New("binary container has more than one BIN chunk")
)

// isGLB reports whether data starts with the binary glTF magic.
func isGLB(data []byte) bool {
	return len(data) >= 4 && binary.LittleEndian.Uint32(data) == glbMagic
}

// unwrapGLB splits a binary container into its JSON chunk and optional BIN
// chunk. Both returned slices alias data. Chunks of unknown type are
// skipped.
func unwrapGLB(data []byte) (jsonChunk, binChunk []byte, err error) {
	if len(data) < glbHeaderSize {
		return nil, nil, errGLBTooShort
	}
	if binary.LittleEndian.Uint32(data) != glbMagic {
		return nil, nil, errGLBBadMagic
	}
	if version := binary.LittleEndian.Uint32(data[4:]); version != glbVersion {
		return nil, nil, fmt.Errorf("%w: %d", errGLBBadVersion, version)
	}
	total := int64(binary.LittleEndian.Uint32(data[8:]))
	if total > int64(len(data)) {
		return nil, nil, fmt.Errorf("%w: header declares %d bytes, have %d", errGLBTruncated, total, len(data))
	}
	body := data[:total]

	offset := int64(glbHeaderSize)
	first := true
	for offset < total {
		if total-offset < chunkHeaderSize {
			return nil, nil, errGLBTruncated
		}
		length := int64(binary.LittleEndian.Uint32(body[offset:]))
		ctype := binary.LittleEndian.Uint32(body[offset+4:])
		offset += chunkHeaderSize
		if length > total-offset {
			return nil, nil, fmt.Errorf("%w: chunk 0x%08X declares %d bytes past end", errGLBTruncated, ctype, length)
		}
		payload := body[offset : offset+length]
		offset += length
		// Chunks are 4-byte aligned; the declared length excludes padding.
		if pad := offset % 4; pad != 0 {
			offset += 4 - pad
			if offset > total {
				offset = total
			}
		}

		switch ctype {
		case chunkTypeJSON:
			if first {
				jsonChunk = payload
			}
		case chunkTypeBIN:
			if first {
				return nil, nil, errGLBNoJSONChunk
			}
			if binChunk != nil {
				return nil, nil, errGLBExtraBIN
			}
			binChunk = payload
		}
		if first && ctype != chunkTypeJSON {
			return nil, nil, errGLBNoJSONChunk
		}
		first = false
	}
	if jsonChunk == nil {
		return nil, nil, errGLBNoJSONChunk
	}
	return jsonChunk, binChunk, nil
}
