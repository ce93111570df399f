/*
Package simplejson provides the value containers for a small, dependency-free
JSON library: an insertion-ordered Object, a dense Array, and a
precision-preserving Number. The companion parser package converts JSON text
to and from trees built of these types.

Parsing and serializing live in the parser subpackage:

	root, err := parser.Deserialize([]byte(`{"a":1,"b":[1,2,3]}`))
	if err != nil {
		// handle error
	}
	obj := root.(*simplejson.Object)
	a := obj.GetInt32("a")      // 1
	b := obj.GetArray("b")      // [1,2,3]

A parsed tree contains only nil, bool, string, Number, *Array, and *Object.
Containers additionally accept native Go values through Set/AddEntry, and the
serializer renders native maps, slices, and numeric types directly.

The typed accessors never fail. A presence check (IsString, IsInt64, ...)
reports whether the value is representable as the requested kind, and the
matching getter returns the caller's default (or the kind's zero value) when
it is not:

	port := obj.GetInt32("port", 8080)

Structural problems are reported only while parsing or serializing, through
the error types in the errors subpackage.

Containers are not safe for concurrent mutation; a tree is owned by whoever
built it until it is shared read-only.
*/
package simplejson
