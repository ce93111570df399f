package simplejson

import (
	"iter"
	"slices"

	sjerrors "github.com/bspfsystems/simplejson-go/errors"
)

// Array is a dense, ordered sequence of JSON values. Indices always cover
// 0..Size()-1; insertion and removal shift the following elements.
//
// Like Object, an Array is a plain, unsynchronized structure.
type Array struct {
	entries []any
}

// NewArray returns a new, empty Array.
func NewArray() *Array {
	return &Array{}
}

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.entries) }

// IsSet reports whether index is within the bounds of the Array.
func (a *Array) IsSet(index int) bool {
	return index >= 0 && index < len(a.entries)
}

// Get returns the value at index and whether the index is in bounds.
func (a *Array) Get(index int) (any, bool) {
	if !a.IsSet(index) {
		return nil, false
	}
	return a.entries[index], true
}

// AddEntry appends value to the end of the Array.
func (a *Array) AddEntry(value any) {
	a.entries = append(a.entries, value)
}

// InsertEntry inserts value at index, shifting subsequent elements up.
// Valid indices are 0..Size() inclusive.
func (a *Array) InsertEntry(index int, value any) error {
	if index < 0 || index > len(a.entries) {
		return &sjerrors.IndexOutOfBoundsError{Index: index, Size: len(a.entries)}
	}
	a.entries = slices.Insert(a.entries, index, value)
	return nil
}

// SetEntry replaces the value at index.
func (a *Array) SetEntry(index int, value any) error {
	if !a.IsSet(index) {
		return &sjerrors.IndexOutOfBoundsError{Index: index, Size: len(a.entries)}
	}
	a.entries[index] = value
	return nil
}

// UnsetEntry removes the value at index, shifting subsequent elements down.
func (a *Array) UnsetEntry(index int) error {
	if !a.IsSet(index) {
		return &sjerrors.IndexOutOfBoundsError{Index: index, Size: len(a.entries)}
	}
	a.entries = slices.Delete(a.entries, index, index+1)
	return nil
}

// All returns an iterator over the elements in index order.
func (a *Array) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, v := range a.entries {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array) at(index int) any {
	if !a.IsSet(index) {
		return nil
	}
	return a.entries[index]
}

// IsNull reports whether index is in bounds and holds null.
func (a *Array) IsNull(index int) bool {
	return a.IsSet(index) && a.entries[index] == nil
}

// IsBoolean reports whether index holds a boolean.
func (a *Array) IsBoolean(index int) bool {
	_, ok := asBool(a.at(index))
	return ok
}

// GetBoolean returns the boolean at index, or the given default (false if
// omitted) when the index is out of bounds or not a boolean.
func (a *Array) GetBoolean(index int, def ...bool) bool {
	if b, ok := asBool(a.at(index)); ok {
		return b
	}
	return orDefault(def)
}

// IsInt8 reports whether index holds a number representable as an int8.
func (a *Array) IsInt8(index int) bool {
	_, ok := asInt(a.at(index), 8)
	return ok
}

// GetInt8 returns the int8 at index, or the default.
func (a *Array) GetInt8(index int, def ...int8) int8 {
	if i, ok := asInt(a.at(index), 8); ok {
		return int8(i)
	}
	return orDefault(def)
}

// IsInt16 reports whether index holds a number representable as an int16.
func (a *Array) IsInt16(index int) bool {
	_, ok := asInt(a.at(index), 16)
	return ok
}

// GetInt16 returns the int16 at index, or the default.
func (a *Array) GetInt16(index int, def ...int16) int16 {
	if i, ok := asInt(a.at(index), 16); ok {
		return int16(i)
	}
	return orDefault(def)
}

// IsInt32 reports whether index holds a number representable as an int32.
func (a *Array) IsInt32(index int) bool {
	_, ok := asInt(a.at(index), 32)
	return ok
}

// GetInt32 returns the int32 at index, or the default.
func (a *Array) GetInt32(index int, def ...int32) int32 {
	if i, ok := asInt(a.at(index), 32); ok {
		return int32(i)
	}
	return orDefault(def)
}

// IsInt64 reports whether index holds a number representable as an int64.
func (a *Array) IsInt64(index int) bool {
	_, ok := asInt(a.at(index), 64)
	return ok
}

// GetInt64 returns the int64 at index, or the default.
func (a *Array) GetInt64(index int, def ...int64) int64 {
	if i, ok := asInt(a.at(index), 64); ok {
		return i
	}
	return orDefault(def)
}

// IsFloat32 reports whether index holds a number representable as a
// float32.
func (a *Array) IsFloat32(index int) bool {
	_, ok := asFloat(a.at(index), 32)
	return ok
}

// GetFloat32 returns the float32 at index, or the default.
func (a *Array) GetFloat32(index int, def ...float32) float32 {
	if f, ok := asFloat(a.at(index), 32); ok {
		return float32(f)
	}
	return orDefault(def)
}

// IsFloat64 reports whether index holds a number representable as a
// float64.
func (a *Array) IsFloat64(index int) bool {
	_, ok := asFloat(a.at(index), 64)
	return ok
}

// GetFloat64 returns the float64 at index, or the default.
func (a *Array) GetFloat64(index int, def ...float64) float64 {
	if f, ok := asFloat(a.at(index), 64); ok {
		return f
	}
	return orDefault(def)
}

// IsString reports whether index holds a string.
func (a *Array) IsString(index int) bool {
	_, ok := asString(a.at(index))
	return ok
}

// GetString returns the string at index, or the default ("" if omitted).
func (a *Array) GetString(index int, def ...string) string {
	if s, ok := asString(a.at(index)); ok {
		return s
	}
	return orDefault(def)
}

// IsArray reports whether index holds a nested Array.
func (a *Array) IsArray(index int) bool {
	_, ok := asArray(a.at(index))
	return ok
}

// GetArray returns the Array at index, or the default (nil if omitted).
func (a *Array) GetArray(index int, def ...*Array) *Array {
	if nested, ok := asArray(a.at(index)); ok {
		return nested
	}
	return orDefault(def)
}

// IsObject reports whether index holds a nested Object.
func (a *Array) IsObject(index int) bool {
	_, ok := asObject(a.at(index))
	return ok
}

// GetObject returns the Object at index, or the default (nil if omitted).
func (a *Array) GetObject(index int, def ...*Object) *Object {
	if obj, ok := asObject(a.at(index)); ok {
		return obj
	}
	return orDefault(def)
}
