package parser

// options holds the formatter configuration.
type options struct {
	indent  string
	newline string
}

// Option configures the formatter.
type Option func(*options)

// Indent sets the string repeated once per nesting level. The default is
// a single tab.
func Indent(s string) Option {
	return func(o *options) {
		o.indent = s
	}
}

// Newline sets the line terminator. The default is "\n".
func Newline(s string) Option {
	return func(o *options) {
		o.newline = s
	}
}

func newOptions(opts ...Option) options {
	o := options{
		indent:  "\t",
		newline: "\n",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
