// Package lexer implements the tokenizer for JSON text.
//
// The lexer reads runes from a buffered stream, so a single token may span
// several underlying reads. It is a hand-written scanner: a switch over the
// current character in the default mode, with a separate accumulation loop
// while inside a string.
package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	simplejson "github.com/bspfsystems/simplejson-go"
	sjerrors "github.com/bspfsystems/simplejson-go/errors"
	"github.com/bspfsystems/simplejson-go/internal/token"
)

const eof = -1

// Lexer holds the state for tokenizing JSON text. A Lexer is owned by a
// single deserialize call and is not reused.
type Lexer struct {
	r      *bufio.Reader
	buf    bytes.Buffer
	ch     rune
	chSize int   // bytes of ch; 1 with ch == utf8.RuneError means bad input
	pos    int64 // 0-based position of ch in characters
	err    error // deferred read error, surfaced on the next token
}

// New creates and returns a new Lexer reading from r.
func New(r io.Reader) *Lexer {
	l := &Lexer{r: bufio.NewReader(r)}
	l.readRune()
	return l
}

// Next scans the input and returns the next token. Once the input is
// exhausted it returns an END token.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	if l.ch == eof && l.err != nil {
		return token.Token{}, &sjerrors.IOError{Err: l.err}
	}
	pos := l.pos
	switch l.ch {
	case '{', '}', '[', ']', ':', ',':
		tok := token.Token{Type: token.Type(l.ch), Literal: string(l.ch), Pos: pos}
		l.advance()
		return tok, nil
	case '"':
		return l.readString(pos)
	case eof:
		return token.Token{Type: token.END, Pos: pos}, nil
	default:
		if l.ch == '-' || isDigit(l.ch) {
			return l.readNumber(pos)
		}
		if isLetter(l.ch) {
			return l.readKeyword(pos)
		}
		return token.Token{}, &sjerrors.LexicalError{Msg: "unexpected character", Input: string(l.ch), Pos: pos}
	}
}

func (l *Lexer) readRune() {
	r, size, err := l.r.ReadRune()
	if err != nil {
		l.ch = eof
		l.chSize = 0
		if err != io.EOF {
			l.err = err
		}
		return
	}
	l.ch = r
	l.chSize = size
}

func (l *Lexer) advance() {
	l.readRune()
	l.pos++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.advance()
	}
}

// readString accumulates the text of a string literal, decoding escapes,
// until the unescaped closing quote. pos is the position of the opening
// quote.
func (l *Lexer) readString(pos int64) (token.Token, error) {
	l.advance() // consume opening quote
	l.buf.Reset()
	for {
		switch {
		case l.ch == '"':
			l.advance() // consume closing quote
			s := l.buf.String()
			return token.Token{Type: token.DATUM, Literal: s, Value: s, Pos: pos}, nil
		case l.ch == eof:
			if l.err != nil {
				return token.Token{}, &sjerrors.IOError{Err: l.err}
			}
			return token.Token{}, &sjerrors.LexicalError{Msg: "unterminated string", Pos: pos}
		case l.ch == '\\':
			if err := l.readEscape(); err != nil {
				return token.Token{}, err
			}
		case l.ch == utf8.RuneError && l.chSize == 1:
			return token.Token{}, &sjerrors.LexicalError{Msg: "invalid UTF-8 in string", Pos: l.pos}
		case l.ch < 0x20:
			return token.Token{}, &sjerrors.LexicalError{Msg: "forbidden control character in string", Input: fmt.Sprintf("U+%04X", l.ch), Pos: l.pos}
		default:
			l.buf.WriteRune(l.ch)
		}
		l.advance()
	}
}

// readEscape decodes one escape sequence into the buffer. It is entered
// with the current character on the backslash and returns with it on the
// last character of the sequence.
func (l *Lexer) readEscape() error {
	pos := l.pos
	l.advance() // consume backslash
	switch l.ch {
	case '"', '\\', '/':
		l.buf.WriteRune(l.ch)
	case 'b':
		l.buf.WriteByte('\b')
	case 'f':
		l.buf.WriteByte('\f')
	case 'n':
		l.buf.WriteByte('\n')
	case 'r':
		l.buf.WriteByte('\r')
	case 't':
		l.buf.WriteByte('\t')
	case 'u':
		return l.readUnicodeEscape(pos)
	default:
		if l.ch == eof && l.err != nil {
			return &sjerrors.IOError{Err: l.err}
		}
		return &sjerrors.LexicalError{Msg: "invalid escape sequence", Input: `\` + string(l.ch), Pos: pos}
	}
	return nil
}

// readUnicodeEscape decodes a \uXXXX sequence, combining a high surrogate
// with an immediately following \uXXXX low surrogate. Units that do not
// form a valid pair become U+FFFD, matching what WriteRune does for
// unpaired surrogates.
func (l *Lexer) readUnicodeEscape(pos int64) error {
	hi, ok := l.readHex(4)
	if !ok {
		return &sjerrors.LexicalError{Msg: "malformed \\u escape", Pos: pos}
	}
	if hi >= 0xD800 && hi < 0xDC00 && l.peekRune() == '\\' && l.peekNextRune() == 'u' {
		l.advance() // consume last hex digit
		l.advance() // consume backslash
		lo, ok := l.readHex(4)
		if !ok {
			return &sjerrors.LexicalError{Msg: "malformed \\u escape", Pos: pos}
		}
		if r := utf16.DecodeRune(hi, lo); r != utf8.RuneError {
			l.buf.WriteRune(r)
			return nil
		}
		l.buf.WriteRune(hi)
		l.buf.WriteRune(lo)
		return nil
	}
	l.buf.WriteRune(hi)
	return nil
}

// readHex reads n hex digits and returns their value. It is entered with
// the current character just before the first digit and returns with it on
// the last digit.
func (l *Lexer) readHex(n int) (rune, bool) {
	var val rune
	for range n {
		l.advance()
		var d rune
		switch {
		case '0' <= l.ch && l.ch <= '9':
			d = l.ch - '0'
		case 'a' <= l.ch && l.ch <= 'f':
			d = l.ch - 'a' + 10
		case 'A' <= l.ch && l.ch <= 'F':
			d = l.ch - 'A' + 10
		default:
			return 0, false
		}
		val = val*16 + d
	}
	return val, true
}

// readNumber scans a number literal: optional sign, integer part without
// leading zeros, optional fraction, optional exponent. The fraction and
// exponent are consumed only when look-ahead confirms they are complete,
// so "1.x" stops after "1" the same way a longest-match scanner would.
func (l *Lexer) readNumber(pos int64) (token.Token, error) {
	l.buf.Reset()
	if l.ch == '-' {
		l.buf.WriteRune(l.ch)
		l.advance()
		if !isDigit(l.ch) {
			if l.ch == eof && l.err != nil {
				return token.Token{}, &sjerrors.IOError{Err: l.err}
			}
			return token.Token{}, &sjerrors.LexicalError{Msg: "malformed number", Input: l.buf.String(), Pos: pos}
		}
	}
	if l.ch == '0' {
		l.buf.WriteRune(l.ch)
		l.advance()
	} else {
		for isDigit(l.ch) {
			l.buf.WriteRune(l.ch)
			l.advance()
		}
	}
	if l.ch == '.' && isDigit(l.peekRune()) {
		l.buf.WriteRune(l.ch)
		l.advance()
		for isDigit(l.ch) {
			l.buf.WriteRune(l.ch)
			l.advance()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekRune()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekNextRune())) {
			l.buf.WriteRune(l.ch)
			l.advance()
			if l.ch == '+' || l.ch == '-' {
				l.buf.WriteRune(l.ch)
				l.advance()
			}
			for isDigit(l.ch) {
				l.buf.WriteRune(l.ch)
				l.advance()
			}
		}
	}
	if l.ch == eof && l.err != nil {
		return token.Token{}, &sjerrors.IOError{Err: l.err}
	}
	lit := l.buf.String()
	return token.Token{Type: token.DATUM, Literal: lit, Value: simplejson.Number(lit), Pos: pos}, nil
}

// readKeyword scans a run of letters and maps it to true, false, or null.
func (l *Lexer) readKeyword(pos int64) (token.Token, error) {
	l.buf.Reset()
	for isLetter(l.ch) {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	if l.ch == eof && l.err != nil {
		return token.Token{}, &sjerrors.IOError{Err: l.err}
	}
	lit := l.buf.String()
	switch lit {
	case "true":
		return token.Token{Type: token.DATUM, Literal: lit, Value: true, Pos: pos}, nil
	case "false":
		return token.Token{Type: token.DATUM, Literal: lit, Value: false, Pos: pos}, nil
	case "null":
		return token.Token{Type: token.DATUM, Literal: lit, Value: nil, Pos: pos}, nil
	default:
		return token.Token{}, &sjerrors.LexicalError{Msg: "invalid literal", Input: lit, Pos: pos}
	}
}

func (l *Lexer) peekRune() rune {
	// Prioritize the returned slice, as Peek can return both bytes and an
	// error.
	b, _ := l.r.Peek(utf8.UTFMax)
	if len(b) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(b)
	return r
}

func (l *Lexer) peekNextRune() rune {
	b, _ := l.r.Peek(utf8.UTFMax * 2)
	if len(b) == 0 {
		return 0
	}
	_, firstRuneSize := utf8.DecodeRune(b)
	if len(b) <= firstRuneSize {
		return 0
	}
	r, _ := utf8.DecodeRune(b[firstRuneSize:])
	return r
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
