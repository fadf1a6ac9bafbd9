package reader

import (
	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

// ExtensionState controls how the reader treats one extension name.
type ExtensionState int

const (
	// ExtensionStateTyped parses the extension with its registered typed
	// handler. This is the default for names that have one.
	ExtensionStateTyped ExtensionState = iota
	// ExtensionStateGeneric captures the extension's subtree verbatim as a
	// jsonvalue.Value, with no validation. This is the default for names
	// without a typed handler.
	ExtensionStateGeneric
	// ExtensionStateDisabled drops the extension entirely; it appears
	// neither under Extensions nor under Unknown.
	ExtensionStateDisabled
)

// String returns the lowercase name of the state.
func (s ExtensionState) String() string {
	switch s {
	case ExtensionStateTyped:
		return "typed"
	case ExtensionStateGeneric:
		return "generic"
	case ExtensionStateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Parent type names used to scope extension registrations. They match the
// gltf struct names.
const (
	ParentModel            = "Model"
	ParentAsset            = "Asset"
	ParentScene            = "Scene"
	ParentNode             = "Node"
	ParentMesh             = "Mesh"
	ParentMeshPrimitive    = "MeshPrimitive"
	ParentAccessor         = "Accessor"
	ParentBuffer           = "Buffer"
	ParentBufferView       = "BufferView"
	ParentImage            = "Image"
	ParentSampler          = "Sampler"
	ParentTexture          = "Texture"
	ParentTextureInfo      = "TextureInfo"
	ParentMaterial         = "Material"
	ParentSkin             = "Skin"
	ParentAnimation        = "Animation"
	ParentCamera           = "Camera"
)

// ExtensionReader parses one extension object into a typed value. Returned
// errors and warnings are merged into the document's diagnostic streams,
// prefixed with the extension's path.
type ExtensionReader func(value jsonvalue.Value) (any, []string, []string)

// typedReader is the internal handler signature; built-in handlers use the
// readContext helpers directly.
type typedReader func(c *readContext, v jsonvalue.Value, path string) any

type extensionKey struct {
	parentType string
	name       string
}

// ExtensionRegistry resolves extension names to handlers and activation
// states, scoped by the parent object type.
//
// The registry is caller-mutable configuration: mutate it only between
// parse calls. Each parse snapshots the registry, so changes made while a
// parse is in flight on another goroutine are unsafe, and changes made
// between calls affect only subsequent calls.
type ExtensionRegistry struct {
	typed  map[extensionKey]typedReader
	scoped map[extensionKey]ExtensionState
	global map[string]ExtensionState
}

// NewExtensionRegistry returns an empty registry: every extension is
// captured generically until handlers or states are registered.
func NewExtensionRegistry() *ExtensionRegistry {
	return &ExtensionRegistry{
		typed:  make(map[extensionKey]typedReader),
		scoped: make(map[extensionKey]ExtensionState),
		global: make(map[string]ExtensionState),
	}
}

// DefaultExtensions returns a registry with typed handlers for the
// extensions this library understands natively.
func DefaultExtensions() *ExtensionRegistry {
	r := NewExtensionRegistry()
	r.registerTyped(ParentMeshPrimitive, gltf.ExtensionNameKHRDracoMeshCompression, readKHRDracoMeshCompression)
	r.registerTyped(ParentBufferView, gltf.ExtensionNameEXTMeshoptCompression, readEXTMeshoptCompression)
	r.registerTyped(ParentTexture, gltf.ExtensionNameKHRTextureBasisU, readKHRTextureBasisU)
	r.registerTyped(ParentTextureInfo, gltf.ExtensionNameKHRTextureTransform, readKHRTextureTransform)
	r.registerTyped(ParentMaterial, gltf.ExtensionNameKHRMaterialsUnlit, readKHRMaterialsUnlit)
	r.registerTyped(ParentModel, gltf.ExtensionNameCesiumRTC, readCesiumRTC)
	return r
}

func (r *ExtensionRegistry) registerTyped(parentType, name string, fn typedReader) {
	r.typed[extensionKey{parentType, name}] = fn
}

// Register installs a typed handler for the extension name on the given
// parent type. Registering a handler makes ExtensionStateTyped the default
// state for that (parent type, name) pair.
func (r *ExtensionRegistry) Register(parentType, name string, fn ExtensionReader) {
	r.registerTyped(parentType, name, func(c *readContext, v jsonvalue.Value, path string) any {
		obj, errs, warns := fn(v)
		for _, e := range errs {
			c.errorf(path, "%s", e)
		}
		for _, w := range warns {
			c.warnf(path, "%s", w)
		}
		return obj
	})
}

// SetExtensionState sets the activation state for an extension name on
// every parent type. It overrides the defaults but not states set with
// SetExtensionStateFor.
func (r *ExtensionRegistry) SetExtensionState(name string, state ExtensionState) {
	r.global[name] = state
}

// SetExtensionStateFor sets the activation state for an extension name on
// one parent type only. Explicit scoped registrations win over everything.
func (r *ExtensionRegistry) SetExtensionStateFor(parentType, name string, state ExtensionState) {
	r.scoped[extensionKey{parentType, name}] = state
}

// stateFor resolves the effective state: scoped registration, then global
// registration, then Typed when a handler exists, then Generic.
func (r *ExtensionRegistry) stateFor(parentType, name string) ExtensionState {
	key := extensionKey{parentType, name}
	if s, ok := r.scoped[key]; ok {
		return s
	}
	if s, ok := r.global[name]; ok {
		return s
	}
	if _, ok := r.typed[key]; ok {
		return ExtensionStateTyped
	}
	return ExtensionStateGeneric
}

// Clone returns an independent copy of the registry. Each parse call works
// on a clone, so configuration changes never affect an in-flight parse.
func (r *ExtensionRegistry) Clone() *ExtensionRegistry {
	out := NewExtensionRegistry()
	for k, v := range r.typed {
		out.typed[k] = v
	}
	for k, v := range r.scoped {
		out.scoped[k] = v
	}
	for k, v := range r.global {
		out.global[k] = v
	}
	return out
}

// readExtensions dispatches every member of an object's "extensions" map
// according to the registry.
func (c *readContext) readExtensions(p *gltf.Property, ext jsonvalue.Value, path, parentType string) {
	for _, m := range ext.Members() {
		switch c.ext.stateFor(parentType, m.Key) {
		case ExtensionStateDisabled:
			continue

		case ExtensionStateTyped:
			if fn, ok := c.ext.typed[extensionKey{parentType, m.Key}]; ok {
				if obj := fn(c, m.Value, path+"/extensions/"+m.Key); obj != nil {
					p.SetExtension(m.Key, obj)
				}
				continue
			}
			// Typed requested without a handler: fall back to capture.
			p.SetExtension(m.Key, m.Value)

		default:
			p.SetExtension(m.Key, m.Value)
		}
	}
}
