// Package gltf defines the typed glTF 2.0 object model.
//
// Every object type embeds Property, which carries the three side-channels
// the reader preserves alongside known fields: extensions (typed or raw),
// the verbatim extras subtree, and unknown properties captured during
// parsing. Index fields use -1 for "not set"; glTF indices are never
// negative.
//
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package gltf
