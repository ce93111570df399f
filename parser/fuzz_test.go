package parser_test

import (
	"testing"

	"github.com/bspfsystems/simplejson-go/parser"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		"null",
		"true",
		"-0.5e-2",
		`""`,
		`"he\"llo\n"`,
		"[]",
		"{}",
		"[1,[2,[3]]]",
		`{"a":1,"b":[true,null,"s"],"c":{"d":{}}}`,
		`{"A":"😀"}`,
		"[1,,2]",
		`{"a":}`,
		`"unterminated`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		value, err := parser.Deserialize(data)
		if err != nil {
			// Invalid input must fail cleanly, not panic.
			return
		}

		// Valid input must survive a serialize/deserialize cycle with a
		// stable rendering.
		first, err := parser.Serialize(value)
		require.NoError(t, err)

		reparsed, err := parser.Deserialize([]byte(first))
		require.NoError(t, err)

		second, err := parser.Serialize(reparsed)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func FuzzFormat(f *testing.F) {
	seeds := []string{
		`{"a":1}`,
		"[1,2,3]",
		"{}",
		"null",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Formatting is a token reflow: whatever it accepts once it must
		// accept and reproduce unchanged a second time.
		once, err := parser.Format(data)
		if err != nil {
			return
		}
		twice, err := parser.Format([]byte(once))
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})
}
