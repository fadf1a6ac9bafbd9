package gltf

import (
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

// Property holds the side-channels common to every glTF object type.
type Property struct {
	// Extensions maps extension name to either a typed extension struct
	// pointer (when a typed handler parsed it) or a jsonvalue.Value
	// captured verbatim. Disabled extensions are absent.
	Extensions map[string]any

	// Extras is the object's extras subtree, preserved verbatim. It is
	// never validated or typed.
	Extras jsonvalue.Value

	// Unknown maps properties the reader did not recognize to their raw
	// values. Populated only when unknown-property capture is enabled.
	Unknown map[string]jsonvalue.Value
}

// GenericExtension returns the raw captured value for the named extension.
// The second result is false when the extension is absent or was parsed by
// a typed handler.
func (p *Property) GenericExtension(name string) (jsonvalue.Value, bool) {
	v, ok := p.Extensions[name].(jsonvalue.Value)
	return v, ok
}

// HasExtension reports whether the named extension is present, typed or not.
func (p *Property) HasExtension(name string) bool {
	_, ok := p.Extensions[name]
	return ok
}

// SetExtension stores value under the extension name, allocating the map on
// first use.
func (p *Property) SetExtension(name string, value any) {
	if p.Extensions == nil {
		p.Extensions = make(map[string]any)
	}
	p.Extensions[name] = value
}

// GetExtension returns the first typed extension of type T attached to the
// property, or nil when none is present.
func GetExtension[T any](p *Property) *T {
	for _, v := range p.Extensions {
		if typed, ok := v.(*T); ok {
			return typed
		}
	}
	return nil
}
