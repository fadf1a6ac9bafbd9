package jsonvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, KindNull, v.Kind())
	assert.True(t, v.IsNull())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindObject, "object"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestInt64Coercion(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected int64
		ok       bool
	}{
		{"exact int", NewInt(4), 4, true},
		{"negative int", NewInt(-12), -12, true},
		{"whole float", NewFloat(4.0), 4, true},
		{"whole negative float", NewFloat(-3.0), -3, true},
		{"large whole float", NewFloat(5121.0), 5121, true},
		{"fractional float", NewFloat(5121.1), 0, false},
		{"small fraction", NewFloat(0.5), 0, false},
		{"nan", NewFloat(math.NaN()), 0, false},
		{"positive inf", NewFloat(math.Inf(1)), 0, false},
		{"negative inf", NewFloat(math.Inf(-1)), 0, false},
		{"float beyond int64", NewFloat(1e19), 0, false},
		{"uint in range", NewUint(42), 42, true},
		{"uint beyond int64", NewUint(math.MaxUint64), 0, false},
		{"string is not numeric", NewString("4"), 0, false},
		{"bool is not numeric", NewBool(true), 0, false},
		{"null is not numeric", Value{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Int64()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestUint64Coercion(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected uint64
		ok       bool
	}{
		{"exact int", NewInt(7), 7, true},
		{"negative int rejected", NewInt(-1), 0, false},
		{"whole float", NewFloat(3.0), 3, true},
		{"negative float rejected", NewFloat(-3.0), 0, false},
		{"fractional rejected", NewFloat(3.5), 0, false},
		{"max uint64", NewUint(math.MaxUint64), math.MaxUint64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Uint64()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestInt32Range(t *testing.T) {
	_, ok := NewInt(math.MaxInt32 + 1).Int32()
	assert.False(t, ok)

	_, ok = NewInt(math.MinInt32 - 1).Int32()
	assert.False(t, ok)

	got, ok := NewFloat(5121.0).Int32()
	require.True(t, ok)
	assert.Equal(t, int32(5121), got)
}

func TestFloat64AcceptsAnyNumber(t *testing.T) {
	f, ok := NewInt(4).Float64()
	require.True(t, ok)
	assert.Equal(t, 4.0, f)

	f, ok = NewFloat(2.5).Float64()
	require.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = NewString("2.5").Float64()
	assert.False(t, ok)
}

func TestOrDefaults(t *testing.T) {
	assert.Equal(t, int64(9), NewFloat(1.5).Int64Or(9))
	assert.Equal(t, int64(4), NewFloat(4.0).Int64Or(9))
	assert.Equal(t, "fallback", NewInt(1).StringOr("fallback"))
	assert.Equal(t, "text", NewString("text").StringOr("fallback"))
	assert.True(t, NewString("x").BoolOr(true))
	assert.Equal(t, 1.25, Value{}.Float64Or(1.25))
}

func TestObjectAccess(t *testing.T) {
	obj := NewObject(
		Member{Key: "b", Value: NewInt(1)},
		Member{Key: "a", Value: NewString("two")},
	)

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, "two", v.StringOr(""))

	_, ok = obj.Get("missing")
	assert.False(t, ok)
	assert.True(t, obj.Has("b"))
	assert.Equal(t, 2, obj.Len())

	// Member order is source order, not sorted.
	members := obj.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "b", members[0].Key)
	assert.Equal(t, "a", members[1].Key)

	// Get on a non-object is a miss, not a panic.
	_, ok = NewInt(1).Get("a")
	assert.False(t, ok)
}

func TestArrayAccess(t *testing.T) {
	arr := NewArray(NewInt(1), NewInt(2), NewInt(3))
	assert.Equal(t, 3, arr.Len())

	v, ok := arr.Index(1)
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Int64Or(0))

	_, ok = arr.Index(3)
	assert.False(t, ok)
	_, ok = arr.Index(-1)
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"int equals whole float", NewInt(4), NewFloat(4.0), true},
		{"different numbers", NewInt(4), NewInt(5), false},
		{"strings", NewString("x"), NewString("x"), true},
		{"kind mismatch", NewString("4"), NewInt(4), false},
		{"nested arrays", NewArray(NewInt(1), NewArray(NewInt(2))), NewArray(NewInt(1), NewArray(NewInt(2))), true},
		{"array length mismatch", NewArray(NewInt(1)), NewArray(NewInt(1), NewInt(2)), false},
		{
			"objects compare order-sensitively",
			NewObject(Member{Key: "a", Value: NewInt(1)}, Member{Key: "b", Value: NewInt(2)}),
			NewObject(Member{Key: "b", Value: NewInt(2)}, Member{Key: "a", Value: NewInt(1)}),
			false,
		},
		{
			"equal objects",
			NewObject(Member{Key: "a", Value: NewInt(1)}),
			NewObject(Member{Key: "a", Value: NewFloat(1)}),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestInterface(t *testing.T) {
	v := NewObject(
		Member{Key: "n", Value: NewInt(3)},
		Member{Key: "f", Value: NewFloat(1.5)},
		Member{Key: "items", Value: NewArray(NewBool(true), Value{})},
	)

	got := v.Interface()
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(3), m["n"])
	assert.Equal(t, 1.5, m["f"])
	assert.Equal(t, []any{true, nil}, m["items"])
}

func TestNumberGeneric(t *testing.T) {
	if got, ok := Number[int32](NewFloat(4.0)); assert.True(t, ok) {
		assert.Equal(t, int32(4), got)
	}
	if got, ok := Number[uint8](NewInt(255)); assert.True(t, ok) {
		assert.Equal(t, uint8(255), got)
	}
	if got, ok := Number[float64](NewInt(7)); assert.True(t, ok) {
		assert.Equal(t, 7.0, got)
	}

	_, ok := Number[uint8](NewInt(256))
	assert.False(t, ok)
	_, ok = Number[int64](NewFloat(5121.1))
	assert.False(t, ok)
	_, ok = Number[uint16](NewInt(-1))
	assert.False(t, ok)
	_, ok = Number[int32](NewString("12"))
	assert.False(t, ok)
}
