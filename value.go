package simplejson

import (
	"math"
	"strconv"
)

// Conversion helpers shared by the Object and Array accessors. A check
// succeeds when the stored value is representable as the requested kind:
// exact type for bool and string, fit-based for the numeric widths.

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asArray(v any) (*Array, bool) {
	a, ok := v.(*Array)
	return a, ok
}

func asObject(v any) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok
}

// asInt converts v to an integer of the given bit width. Parsed numbers
// qualify when their literal is integral and fits; native Go integers are
// range-checked.
func asInt(v any, bitSize int) (int64, bool) {
	var i int64
	switch n := v.(type) {
	case Number:
		parsed, err := strconv.ParseInt(string(n), 10, bitSize)
		return parsed, err == nil
	case int:
		i = int64(n)
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		i = int64(n)
	case uint8:
		i = int64(n)
	case uint16:
		i = int64(n)
	case uint32:
		i = int64(n)
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		i = int64(n)
	default:
		return 0, false
	}
	if bitSize < 64 {
		limit := int64(1) << (bitSize - 1)
		if i < -limit || i > limit-1 {
			return 0, false
		}
	}
	return i, true
}

// asFloat converts v to a float of the given bit width. float32 widens to
// float64 exactly; the reverse is not offered.
func asFloat(v any, bitSize int) (float64, bool) {
	switch n := v.(type) {
	case Number:
		parsed, err := strconv.ParseFloat(string(n), bitSize)
		return parsed, err == nil
	case float32:
		return float64(n), true
	case float64:
		if bitSize == 64 {
			return n, true
		}
	}
	return 0, false
}

func orDefault[T any](def []T) T {
	if len(def) > 0 {
		return def[0]
	}
	var zero T
	return zero
}
