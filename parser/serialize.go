package parser

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	simplejson "github.com/bspfsystems/simplejson-go"
	sjerrors "github.com/bspfsystems/simplejson-go/errors"
)

// Serializable is the interface implemented by types that can render
// themselves as JSON text. The serializer inserts the returned text
// verbatim, so it must already be valid JSON.
type Serializable interface {
	SerializeJSON() (string, error)
}

// Serialize renders value as compact JSON text with no added whitespace.
//
// Beyond the simplejson value types, it accepts native Go values with an
// equivalent shape: any integer or float type, maps with string keys
// (emitted in sorted key order), and slices or arrays of any serializable
// element type. NaN and infinite floats have no JSON representation and
// are deliberately rendered as null. Anything else fails with a
// NotSerializableError.
func Serialize(value any) (string, error) {
	var sb strings.Builder
	if err := serializeValue(&sb, value); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func serializeValue(sb *strings.Builder, value any) error {
	switch v := value.(type) {
	case nil:
		sb.WriteString("null")
	case Serializable:
		s, err := v.SerializeJSON()
		if err != nil {
			return err
		}
		sb.WriteString(s)
	case *simplejson.Object:
		if v == nil {
			sb.WriteString("null")
			return nil
		}
		sb.WriteByte('{')
		first := true
		for key, entry := range v.All() {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			writeQuoted(sb, key)
			sb.WriteByte(':')
			if err := serializeValue(sb, entry); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	case *simplejson.Array:
		if v == nil {
			sb.WriteString("null")
			return nil
		}
		sb.WriteByte('[')
		for i, entry := range v.All() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := serializeValue(sb, entry); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case simplejson.Number:
		sb.WriteString(v.String())
	case string:
		writeQuoted(sb, v)
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case float32:
		writeFloat(sb, float64(v), 32)
	case float64:
		writeFloat(sb, v, 64)
	case int:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int8:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		sb.WriteString(strconv.FormatInt(v, 10))
	case uint:
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		sb.WriteString(strconv.FormatUint(v, 10))
	default:
		return serializeReflect(sb, reflect.ValueOf(value))
	}
	return nil
}

// serializeReflect covers the shapes the type switch cannot name
// statically: named basic types, arbitrary slice/array element types, and
// maps with string keys.
func serializeReflect(sb *strings.Builder, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			sb.WriteString("null")
			return nil
		}
		return serializeReflect(sb, v.Elem())
	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.String:
		writeQuoted(sb, v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		writeFloat(sb, v.Float(), 32)
	case reflect.Float64:
		writeFloat(sb, v.Float(), 64)
	case reflect.Slice, reflect.Array:
		sb.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := serializeValue(sb, v.Index(i).Interface()); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return &sjerrors.NotSerializableError{Type: v.Type().String()}
		}
		keys := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			keys = append(keys, key.String())
		}
		slices.Sort(keys)
		sb.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeQuoted(sb, key)
			sb.WriteByte(':')
			entry := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
			if err := serializeValue(sb, entry.Interface()); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		if !v.IsValid() {
			sb.WriteString("null")
			return nil
		}
		return &sjerrors.NotSerializableError{Type: v.Type().String()}
	}
	return nil
}

func writeFloat(sb *strings.Builder, f float64, bitSize int) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		sb.WriteString("null")
		return
	}
	sb.WriteString(strconv.FormatFloat(f, 'g', -1, bitSize))
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	sb.WriteString(escape(s))
	sb.WriteByte('"')
}

// escape renders s with the escapes the deserializer understands: the
// short forms for the common characters, and uppercase \uXXXX for control
// characters, C1 controls, and the general-punctuation block.
func escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '/':
			sb.WriteString(`\/`)
		default:
			if r <= 0x1F || (r >= 0x7F && r <= 0x9F) || (r >= 0x2000 && r <= 0x20FF) {
				sb.WriteString(`\u`)
				hex := strconv.FormatInt(int64(r), 16)
				for range 4 - len(hex) {
					sb.WriteByte('0')
				}
				sb.WriteString(strings.ToUpper(hex))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
