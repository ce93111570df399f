package parser_test

import (
	"errors"
	"math"
	"testing"

	simplejson "github.com/bspfsystems/simplejson-go"
	sjerrors "github.com/bspfsystems/simplejson-go/errors"
	"github.com/bspfsystems/simplejson-go/parser"
	"github.com/stretchr/testify/require"
)

// rawValue serializes itself as pre-rendered JSON text.
type rawValue string

func (r rawValue) SerializeJSON() (string, error) {
	return string(r), nil
}

// failingValue always refuses to serialize.
type failingValue struct{}

func (failingValue) SerializeJSON() (string, error) {
	return "", errors.New("not today")
}

func TestSerialize(t *testing.T) {
	obj := simplejson.NewObject()
	obj.Set("x", true)
	obj.Set("y", nil)
	obj.Set("z", simplejson.Number("1.50"))

	arr := simplejson.NewArray()
	arr.AddEntry("a")
	arr.AddEntry(obj)
	arr.AddEntry(simplejson.NewArray())

	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: "null"},
		{name: "true", value: true, expected: "true"},
		{name: "false", value: false, expected: "false"},
		{name: "string", value: "hello", expected: `"hello"`},
		{name: "number literal preserved", value: simplejson.Number("1.50"), expected: "1.50"},
		{name: "object in insertion order", value: obj, expected: `{"x":true,"y":null,"z":1.50}`},
		{name: "nested array", value: arr, expected: `["a",{"x":true,"y":null,"z":1.50},[]]`},
		{name: "nil object", value: (*simplejson.Object)(nil), expected: "null"},
		{name: "nil array", value: (*simplejson.Array)(nil), expected: "null"},
		{name: "empty object", value: simplejson.NewObject(), expected: "{}"},
		{name: "empty array", value: simplejson.NewArray(), expected: "[]"},
		{name: "int", value: 42, expected: "42"},
		{name: "int64 min", value: int64(math.MinInt64), expected: "-9223372036854775808"},
		{name: "uint64 max", value: uint64(math.MaxUint64), expected: "18446744073709551615"},
		{name: "float", value: 1.5, expected: "1.5"},
		{name: "whole float", value: 100.0, expected: "100"},
		{name: "large float", value: 1e21, expected: "1e+21"},
		{name: "float32", value: float32(0.25), expected: "0.25"},
		{name: "nan", value: math.NaN(), expected: "null"},
		{name: "positive infinity", value: math.Inf(1), expected: "null"},
		{name: "negative infinity", value: math.Inf(-1), expected: "null"},
		{name: "native slice", value: []int{1, 2, 3}, expected: "[1,2,3]"},
		{name: "native nested slice", value: []any{"a", nil, []bool{true}}, expected: `["a",null,[true]]`},
		{name: "native fixed array", value: [2]string{"a", "b"}, expected: `["a","b"]`},
		{name: "byte slice as numbers", value: []byte{1, 2}, expected: "[1,2]"},
		{name: "native map sorted", value: map[string]int{"b": 2, "a": 1}, expected: `{"a":1,"b":2}`},
		{name: "named basic type", value: simplejsonTestLevel(3), expected: "3"},
		{name: "serializable", value: rawValue(`{"pre":"rendered"}`), expected: `{"pre":"rendered"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := parser.Serialize(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.expected, s)
		})
	}
}

type simplejsonTestLevel int

func TestSerializeStringEscapes(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "quote and backslash", value: `a"b\c`, expected: `"a\"b\\c"`},
		{name: "solidus", value: "a/b", expected: `"a\/b"`},
		{name: "short escapes", value: "\b\f\n\r\t", expected: `"\b\f\n\r\t"`},
		{name: "control character", value: "a\x01b", expected: `"a\u0001b"`},
		{name: "delete character", value: "a\x7fb", expected: `"a\u007Fb"`},
		{name: "c1 control", value: "a\u0085b", expected: `"a\u0085b"`},
		{name: "general punctuation", value: "a\u2028b", expected: `"a\u2028b"`},
		{name: "plain multibyte untouched", value: "héllo", expected: `"héllo"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := parser.Serialize(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.expected, s)
		})
	}
}

func TestSerializeErrors(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{name: "struct", value: struct{ A int }{A: 1}},
		{name: "channel", value: make(chan int)},
		{name: "func", value: func() {}},
		{name: "non-string map key", value: map[int]string{1: "a"}},
		{name: "bad nested element", value: []any{1, make(chan int)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Serialize(tc.value)
			var nsErr *sjerrors.NotSerializableError
			require.ErrorAs(t, err, &nsErr)
			require.NotEmpty(t, nsErr.Type)
		})
	}
}

func TestSerializeSerializableError(t *testing.T) {
	_, err := parser.Serialize(failingValue{})
	require.EqualError(t, err, "not today")

	obj := simplejson.NewObject()
	obj.Set("bad", failingValue{})
	_, err = parser.Serialize(obj)
	require.EqualError(t, err, "not today")
}

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,null,"s"],"c":{"d":-0.5e-2}}`,
		`[[],{},""]`,
		`""`,
		"1e21",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			value, err := parser.Deserialize([]byte(input))
			require.NoError(t, err)

			first, err := parser.Serialize(value)
			require.NoError(t, err)

			value, err = parser.Deserialize([]byte(first))
			require.NoError(t, err)

			second, err := parser.Serialize(value)
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}
