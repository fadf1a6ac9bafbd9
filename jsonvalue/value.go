package jsonvalue

import (
	"math"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	// KindNull is the zero Kind; a zero Value is null.
	KindNull Kind = iota
	// KindBool holds true or false.
	KindBool
	// KindNumber holds a numeric scalar.
	KindNumber
	// KindString holds a string scalar.
	KindString
	// KindArray holds an ordered sequence of Values.
	KindArray
	// KindObject holds an ordered mapping from string keys to Values.
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// numRep records how a number scalar was written in the source.
type numRep int

const (
	numFloat numRep = iota
	numInt
	numUint
)

// Member is a single key/value pair of an object Value.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value: null, bool, number, string, array or object.
// The zero Value is null. Values form an owned tree; they are not shared
// between containers and are safe to read concurrently once built.
type Value struct {
	kind Kind

	b   bool
	str string

	// Numbers always populate f; i or u additionally hold the exact
	// integer representation when the source scalar was integral.
	f   float64
	i   int64
	u   uint64
	num numRep

	arr     []Value
	members []Member
}

// NewBool returns a bool Value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewInt returns a number Value with an exact signed integer representation.
func NewInt(i int64) Value {
	return Value{kind: KindNumber, num: numInt, i: i, f: float64(i)}
}

// NewUint returns a number Value with an exact unsigned integer representation.
func NewUint(u uint64) Value {
	return Value{kind: KindNumber, num: numUint, u: u, f: float64(u)}
}

// NewFloat returns a floating-point number Value.
func NewFloat(f float64) Value { return Value{kind: KindNumber, num: numFloat, f: f} }

// NewString returns a string Value.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewArray returns an array Value holding the given items.
func NewArray(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// NewObject returns an object Value holding the given members in order.
func NewObject(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: KindObject, members: members}
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsBool reports whether the value is a bool.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsNumber reports whether the value is a number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// IsObject reports whether the value is an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// Bool returns the bool payload. The second result is false for non-bools.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// BoolOr returns the bool payload, or def for non-bools.
func (v Value) BoolOr(def bool) bool {
	if b, ok := v.Bool(); ok {
		return b
	}
	return def
}

// String returns the string payload. The second result is false for
// non-strings; numbers are never stringified implicitly.
func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// StringOr returns the string payload, or def for non-strings.
func (v Value) StringOr(def string) string {
	if s, ok := v.String(); ok {
		return s
	}
	return def
}

// Float64 returns the numeric payload as a float64. Any number converts;
// the second result is false only for non-numbers.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.f, true
}

// Float64Or returns the numeric payload, or def for non-numbers.
func (v Value) Float64Or(def float64) float64 {
	if f, ok := v.Float64(); ok {
		return f
	}
	return def
}

// 2^63 and 2^64 as float64, exact.
const (
	maxInt64AsFloat  = float64(1 << 63)
	maxUint64AsFloat = float64(1 << 63) * 2
)

// Int64 returns the number as an int64. A mathematically integral value
// coerces exactly, whether written as 4 or 4.0; a fractional or out-of-range
// value does not convert and the second result is false. The value is never
// truncated.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	switch v.num {
	case numInt:
		return v.i, true
	case numUint:
		if v.u > math.MaxInt64 {
			return 0, false
		}
		return int64(v.u), true
	default:
		f := v.f
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f < -maxInt64AsFloat || f >= maxInt64AsFloat {
			return 0, false
		}
		return int64(f), true
	}
}

// Int64Or returns the coerced int64, or def when coercion fails.
func (v Value) Int64Or(def int64) int64 {
	if i, ok := v.Int64(); ok {
		return i
	}
	return def
}

// Uint64 returns the number as a uint64 under the same exact-coercion rule
// as Int64.
func (v Value) Uint64() (uint64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	switch v.num {
	case numInt:
		if v.i < 0 {
			return 0, false
		}
		return uint64(v.i), true
	case numUint:
		return v.u, true
	default:
		f := v.f
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f < 0 || f >= maxUint64AsFloat {
			return 0, false
		}
		return uint64(f), true
	}
}

// Int32 returns the number as an int32, applying the exact-coercion rule
// plus a range check.
func (v Value) Int32() (int32, bool) {
	i, ok := v.Int64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

// Get returns the member value for key on an object. The second result is
// false when the value is not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for i := range v.members {
		if v.members[i].Key == key {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}

// Has reports whether an object value contains key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Members returns the object members in source order, or nil for
// non-objects. The returned slice is shared; callers must not modify it.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// Items returns the array items, or nil for non-arrays. The returned slice
// is shared; callers must not modify it.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Len returns the number of items of an array, the number of members of an
// object, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns item i of an array value. The second result is false when
// the value is not an array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Equal reports deep structural equality. Numbers compare by mathematical
// value, so NewInt(4) equals NewFloat(4.0).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.f == other.f
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != other.members[i].Key ||
				!v.members[i].Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Interface converts the value tree to plain Go values: nil, bool, int64,
// uint64, float64, string, []any and map[string]any. Object member order is
// lost; use MarshalJSON when order matters.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		switch v.num {
		case numInt:
			return v.i
		case numUint:
			return v.u
		default:
			return v.f
		}
	case KindString:
		return v.str
	case KindArray:
		items := make([]any, len(v.arr))
		for i := range v.arr {
			items[i] = v.arr[i].Interface()
		}
		return items
	case KindObject:
		m := make(map[string]any, len(v.members))
		for i := range v.members {
			m[v.members[i].Key] = v.members[i].Value.Interface()
		}
		return m
	default:
		return nil
	}
}

// Numeric is the set of Go numeric types Number can convert to.
type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Number converts v to the numeric type T. The second result is false
// when v is not a number or its mathematical value does not fit in T
// without truncation.
func Number[T Numeric](v Value) (T, bool) {
	var zero T
	if !v.IsNumber() {
		return zero, false
	}
	switch any(zero).(type) {
	case float32:
		f, ok := v.Float64()
		if !ok || math.Abs(f) > math.MaxFloat32 {
			return zero, false
		}
		return T(f), true
	case float64:
		f, ok := v.Float64()
		if !ok {
			return zero, false
		}
		return T(f), true
	case uint, uint8, uint16, uint32, uint64:
		u, ok := v.Uint64()
		if !ok || uint64(T(u)) != u {
			return zero, false
		}
		return T(u), true
	default:
		i, ok := v.Int64()
		if !ok || int64(T(i)) != i {
			return zero, false
		}
		return T(i), true
	}
}
