// Package parser converts JSON text into simplejson value trees and back.
//
// Deserialization is driven by an explicit state machine over a token
// stream: a state stack tracks what each open nesting level expects next,
// and a value stack holds the containers under construction. No recursion
// is involved, so nesting depth is bounded by available memory rather than
// by the call stack.
package parser

import (
	"bytes"
	"io"

	simplejson "github.com/bspfsystems/simplejson-go"
	sjerrors "github.com/bspfsystems/simplejson-go/errors"
	"github.com/bspfsystems/simplejson-go/internal/lexer"
	"github.com/bspfsystems/simplejson-go/internal/token"
)

// state identifies what the parser expects next at the current nesting
// level. The object and array states split into expectation sub-states so
// that separator placement is enforced strictly: a comma is only legal
// after a value, and a value is mandatory after a comma.
type state int

const (
	stateInitial    state = iota // expect the root value
	stateObject                  // just opened '{': expect a key or '}'
	stateObjectNext              // after an entry: expect ',' or '}'
	stateObjectKey               // after ',': expect a key
	stateEntry                   // after a key: expect ':'
	stateEntryValue              // after ':': expect the entry's value
	stateArray                   // just opened '[': expect a value or ']'
	stateArrayNext               // after an element: expect ',' or ']'
	stateArrayValue              // after ',': expect a value
	stateDone                    // a complete root value has been produced
)

// Deserialize parses data and returns the root value: nil, bool, string,
// simplejson.Number, *simplejson.Array, or *simplejson.Object.
func Deserialize(data []byte) (any, error) {
	return DeserializeReader(bytes.NewReader(data))
}

// DeserializeReader parses the JSON text read from r.
func DeserializeReader(r io.Reader) (any, error) {
	return parse(lexer.New(r))
}

// DeserializeArray parses data and returns the root as an Array, or nil
// (with no error) when the root is a valid value of another kind.
func DeserializeArray(data []byte) (*simplejson.Array, error) {
	return DeserializeArrayReader(bytes.NewReader(data))
}

// DeserializeArrayReader is the reader form of DeserializeArray.
func DeserializeArrayReader(r io.Reader) (*simplejson.Array, error) {
	value, err := DeserializeReader(r)
	if err != nil {
		return nil, err
	}
	arr, _ := value.(*simplejson.Array)
	return arr, nil
}

// DeserializeObject parses data and returns the root as an Object, or nil
// (with no error) when the root is a valid value of another kind.
func DeserializeObject(data []byte) (*simplejson.Object, error) {
	return DeserializeObjectReader(bytes.NewReader(data))
}

// DeserializeObjectReader is the reader form of DeserializeObject.
func DeserializeObjectReader(r io.Reader) (*simplejson.Object, error) {
	value, err := DeserializeReader(r)
	if err != nil {
		return nil, err
	}
	obj, _ := value.(*simplejson.Object)
	return obj, nil
}

func parse(l *lexer.Lexer) (any, error) {
	var values []any
	states := []state{stateInitial}

	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		if len(states) == 0 {
			// A pop from an empty state stack is structurally invalid.
			// The transitions below keep the stacks balanced, so this is
			// unreachable, but the guard keeps a bug from becoming a
			// panic.
			return nil, syntaxError(tok)
		}
		cur := states[len(states)-1]
		states = states[:len(states)-1]

		switch cur {
		case stateInitial:
			switch tok.Type {
			case token.DATUM:
				values = append(values, tok.Value)
				states = append(states, stateDone)
			case token.LBRACE:
				values = append(values, simplejson.NewObject())
				states = append(states, stateObject)
			case token.LBRACK:
				values = append(values, simplejson.NewArray())
				states = append(states, stateArray)
			default:
				return nil, syntaxError(tok)
			}

		case stateObject, stateObjectKey:
			switch {
			case tok.Type == token.DATUM:
				key, ok := tok.Value.(string)
				if !ok {
					return nil, syntaxError(tok)
				}
				values = append(values, key)
				states = append(states, stateObjectNext, stateEntry)
			case tok.Type == token.RBRACE && cur == stateObject:
				states = closeContainer(&values, states)
			default:
				return nil, syntaxError(tok)
			}

		case stateObjectNext:
			switch tok.Type {
			case token.COMMA:
				states = append(states, stateObjectKey)
			case token.RBRACE:
				states = closeContainer(&values, states)
			default:
				return nil, syntaxError(tok)
			}

		case stateEntry:
			if tok.Type != token.COLON {
				return nil, syntaxError(tok)
			}
			states = append(states, stateEntryValue)

		case stateEntryValue:
			key := values[len(values)-1].(string)
			values = values[:len(values)-1]
			obj := values[len(values)-1].(*simplejson.Object)
			switch tok.Type {
			case token.DATUM:
				obj.Set(key, tok.Value)
			case token.LBRACE:
				child := simplejson.NewObject()
				obj.Set(key, child)
				values = append(values, child)
				states = append(states, stateObject)
			case token.LBRACK:
				child := simplejson.NewArray()
				obj.Set(key, child)
				values = append(values, child)
				states = append(states, stateArray)
			default:
				return nil, syntaxError(tok)
			}

		case stateArray, stateArrayValue:
			switch tok.Type {
			case token.DATUM:
				arr := values[len(values)-1].(*simplejson.Array)
				arr.AddEntry(tok.Value)
				states = append(states, stateArrayNext)
			case token.LBRACE:
				arr := values[len(values)-1].(*simplejson.Array)
				child := simplejson.NewObject()
				arr.AddEntry(child)
				values = append(values, child)
				states = append(states, stateArrayNext, stateObject)
			case token.LBRACK:
				arr := values[len(values)-1].(*simplejson.Array)
				child := simplejson.NewArray()
				arr.AddEntry(child)
				values = append(values, child)
				states = append(states, stateArrayNext, stateArray)
			case token.RBRACK:
				if cur == stateArrayValue {
					return nil, syntaxError(tok)
				}
				states = closeContainer(&values, states)
			default:
				return nil, syntaxError(tok)
			}

		case stateArrayNext:
			switch tok.Type {
			case token.COMMA:
				states = append(states, stateArrayValue)
			case token.RBRACK:
				states = closeContainer(&values, states)
			default:
				return nil, syntaxError(tok)
			}

		case stateDone:
			if tok.Type != token.END {
				return nil, syntaxError(tok)
			}
			return values[0], nil
		}
	}
}

// closeContainer finishes the container on top of the value stack. A
// nested container is popped, leaving the parser in its parent's state;
// the outermost container stays, because it is the result.
func closeContainer(values *[]any, states []state) []state {
	if len(*values) > 1 {
		*values = (*values)[:len(*values)-1]
		return states
	}
	return append(states, stateDone)
}

func syntaxError(tok token.Token) error {
	return &sjerrors.SyntaxError{Token: tok.String(), Pos: tok.Pos}
}
