package simplejson

import (
	"iter"
	"slices"
)

// Object is an insertion-ordered mapping of string keys to JSON values.
// Keys are unique: setting an existing key replaces its value without
// moving its position, while a new key appends to the end of the order.
//
// An Object is a plain, unsynchronized structure; concurrent mutation is
// the caller's responsibility.
type Object struct {
	keys    []string
	entries map[string]any
}

// NewObject returns a new, empty Object.
func NewObject() *Object {
	return &Object{entries: make(map[string]any)}
}

// Size returns the number of entries.
func (o *Object) Size() int { return len(o.keys) }

// Has reports whether key is present, regardless of its value.
func (o *Object) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Get returns the value stored under key and whether the key is present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Set stores value under key, appending the key to the iteration order if
// it is new.
func (o *Object) Set(key string, value any) {
	if _, ok := o.entries[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = value
}

// Unset removes key and its value. Removing an absent key is a no-op.
func (o *Object) Unset(key string) {
	if _, ok := o.entries[key]; !ok {
		return
	}
	delete(o.entries, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// All returns an iterator over the entries in insertion order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range o.keys {
			if !yield(key, o.entries[key]) {
				return
			}
		}
	}
}

// IsNull reports whether key is present and holds null.
func (o *Object) IsNull(key string) bool {
	v, ok := o.entries[key]
	return ok && v == nil
}

// IsBoolean reports whether key holds a boolean.
func (o *Object) IsBoolean(key string) bool {
	_, ok := asBool(o.entries[key])
	return ok
}

// GetBoolean returns the boolean stored under key, or the given default
// (false if omitted) when the key is absent or not a boolean.
func (o *Object) GetBoolean(key string, def ...bool) bool {
	if b, ok := asBool(o.entries[key]); ok {
		return b
	}
	return orDefault(def)
}

// IsInt8 reports whether key holds a number representable as an int8.
func (o *Object) IsInt8(key string) bool {
	_, ok := asInt(o.entries[key], 8)
	return ok
}

// GetInt8 returns the int8 stored under key, or the default.
func (o *Object) GetInt8(key string, def ...int8) int8 {
	if i, ok := asInt(o.entries[key], 8); ok {
		return int8(i)
	}
	return orDefault(def)
}

// IsInt16 reports whether key holds a number representable as an int16.
func (o *Object) IsInt16(key string) bool {
	_, ok := asInt(o.entries[key], 16)
	return ok
}

// GetInt16 returns the int16 stored under key, or the default.
func (o *Object) GetInt16(key string, def ...int16) int16 {
	if i, ok := asInt(o.entries[key], 16); ok {
		return int16(i)
	}
	return orDefault(def)
}

// IsInt32 reports whether key holds a number representable as an int32.
func (o *Object) IsInt32(key string) bool {
	_, ok := asInt(o.entries[key], 32)
	return ok
}

// GetInt32 returns the int32 stored under key, or the default.
func (o *Object) GetInt32(key string, def ...int32) int32 {
	if i, ok := asInt(o.entries[key], 32); ok {
		return int32(i)
	}
	return orDefault(def)
}

// IsInt64 reports whether key holds a number representable as an int64.
func (o *Object) IsInt64(key string) bool {
	_, ok := asInt(o.entries[key], 64)
	return ok
}

// GetInt64 returns the int64 stored under key, or the default.
func (o *Object) GetInt64(key string, def ...int64) int64 {
	if i, ok := asInt(o.entries[key], 64); ok {
		return i
	}
	return orDefault(def)
}

// IsFloat32 reports whether key holds a number representable as a float32.
func (o *Object) IsFloat32(key string) bool {
	_, ok := asFloat(o.entries[key], 32)
	return ok
}

// GetFloat32 returns the float32 stored under key, or the default.
func (o *Object) GetFloat32(key string, def ...float32) float32 {
	if f, ok := asFloat(o.entries[key], 32); ok {
		return float32(f)
	}
	return orDefault(def)
}

// IsFloat64 reports whether key holds a number representable as a float64.
func (o *Object) IsFloat64(key string) bool {
	_, ok := asFloat(o.entries[key], 64)
	return ok
}

// GetFloat64 returns the float64 stored under key, or the default.
func (o *Object) GetFloat64(key string, def ...float64) float64 {
	if f, ok := asFloat(o.entries[key], 64); ok {
		return f
	}
	return orDefault(def)
}

// IsString reports whether key holds a string.
func (o *Object) IsString(key string) bool {
	_, ok := asString(o.entries[key])
	return ok
}

// GetString returns the string stored under key, or the default ("" if
// omitted).
func (o *Object) GetString(key string, def ...string) string {
	if s, ok := asString(o.entries[key]); ok {
		return s
	}
	return orDefault(def)
}

// IsArray reports whether key holds a nested Array.
func (o *Object) IsArray(key string) bool {
	_, ok := asArray(o.entries[key])
	return ok
}

// GetArray returns the Array stored under key, or the default (nil if
// omitted).
func (o *Object) GetArray(key string, def ...*Array) *Array {
	if a, ok := asArray(o.entries[key]); ok {
		return a
	}
	return orDefault(def)
}

// IsObject reports whether key holds a nested Object.
func (o *Object) IsObject(key string) bool {
	_, ok := asObject(o.entries[key])
	return ok
}

// GetObject returns the Object stored under key, or the default (nil if
// omitted).
func (o *Object) GetObject(key string, def ...*Object) *Object {
	if obj, ok := asObject(o.entries[key]); ok {
		return obj
	}
	return orDefault(def)
}
