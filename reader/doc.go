// Package reader parses glTF 2.0 documents, in both their JSON and binary
// (GLB) container forms, into gltf.Model values.
//
// Parsing is tolerant: malformed content is recorded in the Result's
// Errors and Warnings and never aborts sibling content. A model is
// returned whenever the document was usable at all.
//
//	r := reader.New()
//	res, err := r.ReadFile("model.glb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range res.Warnings {
//	    log.Println(w)
//	}
//
// Extension handling is pluggable per extension name: typed handlers
// produce structs such as gltf.KHRDracoMeshCompression, generic capture
// keeps the raw jsonvalue subtree, and disabled names vanish. See
// ExtensionRegistry.
package reader
