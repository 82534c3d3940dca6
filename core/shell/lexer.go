package shell

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ErrUnterminatedQuote is reported when a line ends inside a double-quoted
// span.
var ErrUnterminatedQuote = errors.New("syntax error: unterminated quote")

// Lex splits one raw input line into tokens.
//
// Exactly one quoting form is recognized: a double-quoted span merges into
// the current token with the quotes stripped, so operator-looking characters
// inside it are never visible to the classifier. Whitespace outside quotes is
// the only token separator. A blank or whitespace-only line yields no tokens.
func Lex(line string) ([]string, error) {
	var tokens []string
	var b strings.Builder

	inQuote := false
	// pending tracks whether b holds token content, so that an empty
	// quoted span ("") still emits a token.
	pending := false

	flush := func() {
		if pending {
			tokens = append(tokens, b.String())
			b.Reset()
			pending = false
		}
	}

	for _, r := range line {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			} else {
				b.WriteRune(r)
			}
		case r == '"':
			inQuote = true
			pending = true
		case unicode.IsSpace(r):
			flush()
		default:
			b.WriteRune(r)
			pending = true
		}
	}

	if inQuote {
		return nil, ErrUnterminatedQuote
	}
	flush()

	return tokens, nil
}
