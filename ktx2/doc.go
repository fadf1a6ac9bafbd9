// Package ktx2 inspects KTX2 texture containers.
//
// The package parses the fixed container header and the per-level index
// table, and computes the byte layout each mip level occupies in a decoded
// pixel buffer. It performs no pixel-format transcoding itself; compressed
// payloads are handed to a Transcoder collaborator together with the
// computed layout.
package ktx2
