package process

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeArgs(t *testing.T) {
	cases := []struct {
		name string
		args string
		want []string
	}{
		{"empty", "", nil},
		{"single", "hello", []string{"hello"}},
		{"collapses whitespace", "one   two\tthree", []string{"one", "two", "three"}},
		{"quoted token with space", `one "two three" four`, []string{"one", "two three", "four"}},
		{"backslash escapes space", `one\ two three`, []string{"one two", "three"}},
		{"backslash escapes quote", `\"quoted\"`, []string{`"quoted"`}},
		{"empty quoted token", `before "" after`, []string{"before", "", "after"}},
		{"leading and trailing whitespace", "  padded  ", []string{"padded"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tokenizeArgs(tc.args))
		})
	}
}
