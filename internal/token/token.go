// Package token defines the lexical tokens of JSON text.
package token

// Type is the type of a token.
type Type string

const (
	// DATUM is a scalar value: a string, number, boolean, or null.
	DATUM Type = "DATUM"
	// END marks the end of the input.
	END Type = "END"

	// Structural tokens.
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COLON  Type = ":"
	COMMA  Type = ","
)

// Token represents a single lexical token. Only DATUM tokens carry a
// decoded Value (nil, bool, string, or simplejson.Number); structural
// tokens carry just their literal text.
type Token struct {
	Type    Type
	Literal string
	Value   any
	Pos     int64 // 0-based character position of the token's first character
}

// String returns the token's literal text, or the type name for tokens
// without one.
func (t Token) String() string {
	if t.Literal != "" {
		return t.Literal
	}
	return string(t.Type)
}
