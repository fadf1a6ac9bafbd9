package reader

import (
	"fmt"
	"math"

	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

// readContext accumulates diagnostics across one parse. Errors mark
// content that could not be represented; warnings mark content that was
// coerced or skipped. Neither aborts the parse.
type readContext struct {
	capture bool
	ext     *ExtensionRegistry
	log     Logger

	errors   []string
	warnings []string
}

func (c *readContext) errorf(path, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if path != "" {
		msg = path + ": " + msg
	}
	c.errors = append(c.errors, msg)
	c.log.Debug("parse error", "path", path, "message", msg)
}

func (c *readContext) warnf(path, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if path != "" {
		msg = path + ": " + msg
	}
	c.warnings = append(c.warnings, msg)
	c.log.Debug("parse warning", "path", path, "message", msg)
}

// stringField returns obj[key] as a string, or def with a warning when the
// member is present but not a string.
func (c *readContext) stringField(obj jsonvalue.Value, key, path, def string) string {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return def
	}
	s, ok := v.String()
	if !ok {
		c.warnf(path, "expected string for %q; using default", key)
		return def
	}
	return s
}

func (c *readContext) boolField(obj jsonvalue.Value, key, path string, def bool) bool {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return def
	}
	b, ok := v.Bool()
	if !ok {
		c.warnf(path, "expected boolean for %q; using default", key)
		return def
	}
	return b
}

func (c *readContext) float64Field(obj jsonvalue.Value, key, path string, def float64) float64 {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return def
	}
	f, ok := v.Float64()
	if !ok {
		c.warnf(path, "expected number for %q; using default", key)
		return def
	}
	return f
}

// int64Field coerces whole-valued floats to integers. A fractional value
// produces a warning and the default, never a truncated number.
func (c *readContext) int64Field(obj jsonvalue.Value, key, path string, def int64) int64 {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return def
	}
	if !v.IsNumber() {
		c.warnf(path, "expected number for %q; using default", key)
		return def
	}
	i, ok := v.Int64()
	if !ok {
		c.warnf(path, "value for %q has a fractional component or is out of range; using default", key)
		return def
	}
	return i
}

func (c *readContext) int32Field(obj jsonvalue.Value, key, path string, def int32) int32 {
	i := c.int64Field(obj, key, path, int64(def))
	if i < math.MinInt32 || i > math.MaxInt32 {
		c.warnf(path, "value for %q is out of range; using default", key)
		return def
	}
	return int32(i)
}

// indexField reads a cross-reference index, returning -1 when absent.
func (c *readContext) indexField(obj jsonvalue.Value, key, path string) int32 {
	return c.int32Field(obj, key, path, -1)
}

func (c *readContext) float64Slice(obj jsonvalue.Value, key, path string) []float64 {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return nil
	}
	if !v.IsArray() {
		c.warnf(path, "expected array for %q; ignoring", key)
		return nil
	}
	out := make([]float64, 0, v.Len())
	for i, item := range v.Items() {
		f, ok := item.Float64()
		if !ok {
			c.warnf(path, "element %d of %q is not a number; using 0", i, key)
			f = 0
		}
		out = append(out, f)
	}
	return out
}

func (c *readContext) stringSlice(obj jsonvalue.Value, key, path string) []string {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return nil
	}
	if !v.IsArray() {
		c.warnf(path, "expected array for %q; ignoring", key)
		return nil
	}
	out := make([]string, 0, v.Len())
	for i, item := range v.Items() {
		s, ok := item.String()
		if !ok {
			c.warnf(path, "element %d of %q is not a string; skipping", i, key)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (c *readContext) int32Slice(obj jsonvalue.Value, key, path string) []int32 {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return nil
	}
	if !v.IsArray() {
		c.warnf(path, "expected array for %q; ignoring", key)
		return nil
	}
	out := make([]int32, 0, v.Len())
	for i, item := range v.Items() {
		n, ok := item.Int32()
		if !ok {
			c.warnf(path, "element %d of %q is not a valid index; skipping", i, key)
			continue
		}
		out = append(out, n)
	}
	return out
}

// indexMap reads a string-to-index map such as primitive attributes.
func (c *readContext) indexMap(obj jsonvalue.Value, key, path string) map[string]int32 {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return nil
	}
	if !v.IsObject() {
		c.warnf(path, "expected object for %q; ignoring", key)
		return nil
	}
	out := make(map[string]int32, v.Len())
	for _, m := range v.Members() {
		n, ok := m.Value.Int32()
		if !ok {
			c.warnf(path, "attribute %q is not a valid index; skipping", m.Key)
			continue
		}
		out[m.Key] = n
	}
	return out
}

// finishProperty handles the shared tail of every object: extras are kept
// verbatim, extensions are dispatched through the registry, and members
// outside the known set are captured when unknown-property capture is on.
func (c *readContext) finishProperty(p *gltf.Property, obj jsonvalue.Value, path, parentType string, known map[string]bool) {
	if extras, ok := obj.Get("extras"); ok {
		p.Extras = extras
	}
	if ext, ok := obj.Get("extensions"); ok {
		if ext.IsObject() {
			c.readExtensions(p, ext, path, parentType)
		} else {
			c.warnf(path, "expected object for \"extensions\"; ignoring")
		}
	}
	if !c.capture {
		return
	}
	for _, m := range obj.Members() {
		if m.Key == "extras" || m.Key == "extensions" || known[m.Key] {
			continue
		}
		if p.Unknown == nil {
			p.Unknown = make(map[string]jsonvalue.Value)
		}
		p.Unknown[m.Key] = m.Value
	}
}

// readObjectArray reads an indexed array of objects. Malformed elements
// produce an error and a zero-valued placeholder so that later elements
// keep their indices.
func readObjectArray[T any](c *readContext, obj jsonvalue.Value, key, path string, fn func(*readContext, jsonvalue.Value, string) T) []T {
	v, ok := obj.Get(key)
	if !ok || v.IsNull() {
		return nil
	}
	if !v.IsArray() {
		c.warnf(path, "expected array for %q; ignoring", key)
		return nil
	}
	out := make([]T, 0, v.Len())
	for i, item := range v.Items() {
		p := fmt.Sprintf("%s/%s/%d", path, key, i)
		var t T
		if item.IsObject() {
			t = fn(c, item, p)
		} else {
			c.errorf(p, "expected object")
		}
		out = append(out, t)
	}
	return out
}
