// Package errors defines the error types reported by the simplejson
// lexer, parser, serializer, and value containers.
//
// All of them are terminal for the call that produced them; the library
// never retries, resynchronizes, or logs. Callers match them with
// errors.As.
package errors

import "fmt"

// LexicalError reports input that could not be matched against any token
// rule: an unrecognized character, a malformed escape sequence, or an
// unterminated string.
type LexicalError struct {
	Msg   string // description of the failure
	Input string // the offending character or text, if any
	Pos   int64  // 0-based character position in the input
}

func (e *LexicalError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("simplejson: %s %q at position %d", e.Msg, e.Input, e.Pos)
	}
	return fmt.Sprintf("simplejson: %s at position %d", e.Msg, e.Pos)
}

// SyntaxError reports a token that is lexically valid but not allowed in
// the current parse state, including a premature end of input.
type SyntaxError struct {
	Token string // textual form of the offending token
	Pos   int64  // 0-based character position of the token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("simplejson: unexpected token %q at position %d", e.Token, e.Pos)
}

// IOError wraps a read failure of the underlying stream.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "simplejson: read failed: " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// NotSerializableError reports a value whose runtime type has no JSON
// representation.
type NotSerializableError struct {
	Type string // name of the offending Go type
}

func (e *NotSerializableError) Error() string {
	return "simplejson: value of type " + e.Type + " is not serializable as JSON"
}

// IndexOutOfBoundsError reports an array index outside the valid range of
// the attempted operation.
type IndexOutOfBoundsError struct {
	Index int
	Size  int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("simplejson: index %d out of bounds for length %d", e.Index, e.Size)
}
