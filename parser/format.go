package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/bspfsystems/simplejson-go/internal/lexer"
	"github.com/bspfsystems/simplejson-go/internal/token"
)

// Format pretty-prints JSON text: one entry per line, nested containers
// indented one level deeper than their parent. The formatter works on the
// token stream directly, so it normalizes whitespace and string escapes
// without building a value tree.
func Format(data []byte, opts ...Option) (string, error) {
	return FormatReader(bytes.NewReader(data), opts...)
}

// FormatReader is the reader form of Format.
func FormatReader(r io.Reader, opts ...Option) (string, error) {
	o := newOptions(opts...)
	l := lexer.New(r)

	var sb strings.Builder
	level := 0
	for {
		tok, err := l.Next()
		if err != nil {
			return "", err
		}
		switch tok.Type {
		case token.END:
			return sb.String(), nil
		case token.LBRACE, token.LBRACK:
			sb.WriteString(tok.Literal)
			level++
			writeBreak(&sb, o, level)
		case token.RBRACE, token.RBRACK:
			if level == 0 {
				return "", syntaxError(tok)
			}
			level--
			writeBreak(&sb, o, level)
			sb.WriteString(tok.Literal)
		case token.COLON:
			sb.WriteString(tok.Literal)
		case token.COMMA:
			sb.WriteString(tok.Literal)
			writeBreak(&sb, o, level)
		case token.DATUM:
			if s, ok := tok.Value.(string); ok {
				writeQuoted(&sb, s)
			} else {
				sb.WriteString(tok.Literal)
			}
		}
	}
}

func writeBreak(sb *strings.Builder, o options, level int) {
	sb.WriteString(o.newline)
	for range level {
		sb.WriteString(o.indent)
	}
}
