// Package cesiumnative provides tools for reading glTF 2.0 assets into a
// strongly-typed in-memory model.
//
// The library consists of four primary packages:
//
//   - jsonvalue: a generic JSON value tree with range-checked numeric access
//   - gltf: the typed glTF 2.0 object model
//   - reader: the glTF/GLB document reader with pluggable extension handling
//   - ktx2: a KTX2 texture container inspector
//
// # Quick Start
//
// Read a glTF or GLB document:
//
//	import "github.com/HereWeG0/cesium-native/reader"
//
//	r := reader.New()
//	result, err := r.ReadFile("model.glb")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Model != nil {
//		fmt.Printf("meshes: %d\n", len(result.Model.Meshes))
//	}
//	for _, w := range result.Warnings {
//		fmt.Println("warning:", w)
//	}
//
// The reader never panics on malformed documents: fatal problems (bad GLB
// container, JSON syntax errors) yield a nil Model plus error strings, while
// local problems (a fractional value for an integer field, an unresolvable
// image) are recorded as errors or warnings and the rest of the document is
// still returned.
//
// # Extensions
//
// glTF extensions attach named sub-schemas to individual object types. The
// reader resolves each extension name against a registry of typed handlers;
// names without a handler are captured verbatim as jsonvalue.Value trees, and
// individual extensions can be disabled entirely:
//
//	r := reader.New()
//	r.Extensions.SetExtensionState("KHR_draco_mesh_compression", reader.ExtensionStateGeneric)
//
// # Command-Line Interface
//
// A small CLI prints summary information for a glTF or GLB file:
//
//	gltfinfo model.glb
//
// Install it with:
//
//	go install github.com/HereWeG0/cesium-native/cmd/gltfinfo@latest
package cesiumnative
