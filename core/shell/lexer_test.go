package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t  ", nil},
		{"single word", "ls", []string{"ls"}},
		{"words", "echo hello world", []string{"echo", "hello", "world"}},
		{"collapsed whitespace", "  echo \t hi  ", []string{"echo", "hi"}},
		{"operators split by spaces", "cat a.txt | wc -c", []string{"cat", "a.txt", "|", "wc", "-c"}},
		{"quotes stripped", `echo "hello world"`, []string{"echo", "hello world"}},
		{"operators inside quotes stay text", `echo "a | b > c"`, []string{"echo", "a | b > c"}},
		{"quote merges into word", `echo ab"cd ef"gh`, []string{"echo", "abcd efgh"}},
		{"empty quoted token", `echo ""`, []string{"echo", ""}},
		{"adjacent quoted spans", `echo "a""b"`, []string{"echo", "ab"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Lex(tc.line)
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestLex_unterminatedQuote(t *testing.T) {
	for _, line := range []string{`"`, `echo "unterminated`, `echo a"`} {
		t.Run(line, func(t *testing.T) {
			_, err := Lex(line)
			assert.ErrorIs(t, err, ErrUnterminatedQuote)
		})
	}
}
