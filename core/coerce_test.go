package core

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coerceInto[T any](t *testing.T, raw string) (T, error) {
	t.Helper()
	var out T
	err := coerce(reflect.ValueOf(&out).Elem(), raw)
	return out, err
}

func TestCoerce_String(t *testing.T) {
	got, err := coerceInto[string](t, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestCoerce_IntWidths(t *testing.T) {
	i, err := coerceInto[int](t, "-42")
	require.NoError(t, err)
	assert.Equal(t, -42, i)

	i8, err := coerceInto[int8](t, "127")
	require.NoError(t, err)
	assert.Equal(t, int8(127), i8)

	// Overflow for the declared width is a coercion failure.
	_, err = coerceInto[int8](t, "128")
	assert.Error(t, err)

	i64, err := coerceInto[int64](t, "9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), i64)
}

func TestCoerce_UintRejectsNegative(t *testing.T) {
	u, err := coerceInto[uint16](t, "65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), u)

	_, err = coerceInto[uint](t, "-1")
	assert.Error(t, err)
}

func TestCoerce_Floats(t *testing.T) {
	f, err := coerceInto[float64](t, "3.25")
	require.NoError(t, err)
	assert.Equal(t, 3.25, f)

	f32, err := coerceInto[float32](t, "0.5")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f32)

	_, err = coerceInto[float64](t, "not-a-float")
	assert.Error(t, err)
}

func TestCoerce_Bool(t *testing.T) {
	b, err := coerceInto[bool](t, "true")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = coerceInto[bool](t, "yes")
	assert.Error(t, err)
}

func TestCoerce_IntRejectsNonDecimal(t *testing.T) {
	// Base-10 only: the parser never guesses radixes from prefixes.
	_, err := coerceInto[int](t, "0x10")
	assert.Error(t, err)
}

func TestSupportedKind(t *testing.T) {
	supported := []reflect.Kind{
		reflect.String, reflect.Bool, reflect.Int, reflect.Int8, reflect.Int64,
		reflect.Uint, reflect.Uint32, reflect.Float32, reflect.Float64,
	}
	for _, k := range supported {
		assert.True(t, supportedKind(k), "kind %s", k)
	}

	unsupported := []reflect.Kind{
		reflect.Slice, reflect.Map, reflect.Struct, reflect.Pointer,
		reflect.Complex128, reflect.Chan, reflect.Interface,
	}
	for _, k := range unsupported {
		assert.False(t, supportedKind(k), "kind %s", k)
	}
}
