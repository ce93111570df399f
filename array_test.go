package simplejson_test

import (
	"testing"

	simplejson "github.com/bspfsystems/simplejson-go"
	sjerrors "github.com/bspfsystems/simplejson-go/errors"
	"github.com/stretchr/testify/require"
)

func TestArrayAddInsertSet(t *testing.T) {
	arr := simplejson.NewArray()
	require.Equal(t, 0, arr.Size())
	require.False(t, arr.IsSet(0))

	arr.AddEntry("b")
	arr.AddEntry("d")
	require.NoError(t, arr.InsertEntry(0, "a"))
	require.NoError(t, arr.InsertEntry(2, "c"))
	require.NoError(t, arr.InsertEntry(4, "e"))
	require.Equal(t, 5, arr.Size())

	var values []any
	for _, v := range arr.All() {
		values = append(values, v)
	}
	require.Equal(t, []any{"a", "b", "c", "d", "e"}, values)

	require.NoError(t, arr.SetEntry(2, "C"))
	require.Equal(t, "C", arr.GetString(2))

	require.NoError(t, arr.UnsetEntry(0))
	require.Equal(t, 4, arr.Size())
	require.Equal(t, "b", arr.GetString(0))
}

func TestArrayBounds(t *testing.T) {
	arr := simplejson.NewArray()
	arr.AddEntry(1)

	testCases := []struct {
		name string
		op   func() error
	}{
		{name: "insert negative", op: func() error { return arr.InsertEntry(-1, "x") }},
		{name: "insert past end", op: func() error { return arr.InsertEntry(2, "x") }},
		{name: "set negative", op: func() error { return arr.SetEntry(-1, "x") }},
		{name: "set at size", op: func() error { return arr.SetEntry(1, "x") }},
		{name: "unset past end", op: func() error { return arr.UnsetEntry(1) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			var boundsErr *sjerrors.IndexOutOfBoundsError
			require.ErrorAs(t, err, &boundsErr)
			require.Equal(t, 1, boundsErr.Size)
		})
	}

	// Nothing changed.
	require.Equal(t, 1, arr.Size())

	v, ok := arr.Get(0)
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = arr.Get(1)
	require.False(t, ok)
}

func TestArrayTypedAccessors(t *testing.T) {
	nested := simplejson.NewObject()

	arr := simplejson.NewArray()
	arr.AddEntry(nil)
	arr.AddEntry(true)
	arr.AddEntry(simplejson.Number("300"))
	arr.AddEntry("text")
	arr.AddEntry(nested)

	require.True(t, arr.IsNull(0))
	require.False(t, arr.IsNull(1))
	require.False(t, arr.IsNull(99))

	require.True(t, arr.IsBoolean(1))
	require.True(t, arr.GetBoolean(1))

	require.False(t, arr.IsInt8(2))
	require.True(t, arr.IsInt16(2))
	require.Equal(t, int16(300), arr.GetInt16(2))
	require.Equal(t, int32(300), arr.GetInt32(2))
	require.Equal(t, 300.0, arr.GetFloat64(2))

	require.True(t, arr.IsString(3))
	require.Equal(t, "text", arr.GetString(3))

	require.True(t, arr.IsObject(4))
	require.Same(t, nested, arr.GetObject(4))
	require.False(t, arr.IsArray(4))

	// Out of bounds or wrong type falls back to the default.
	require.Equal(t, "absent", arr.GetString(99, "absent"))
	require.Equal(t, int8(-1), arr.GetInt8(2, -1))
	require.Nil(t, arr.GetArray(0))
}
