package formula

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// EvalError reports a failure to evaluate a filtered formula body. It
// carries the derived class identifier and the offending line number so a
// batch caller can point at the exact declaration that broke.
type EvalError struct {
	Identifier string
	Line       int
	Detail     string
}

// Error implements the error interface for EvalError.
func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating %s, line %d: %s", e.Identifier, e.Line, e.Detail)
}

// EvaluateSource evaluates a filtered formula body against a fresh capture
// environment and returns it as the handle for attribute retrieval. Each
// non-blank line must be a declaration keyword followed by a double-quoted
// string literal; the literal is stored for captured keywords and discarded
// for accepted no-op declarations. This is the only place formula content
// is interpreted at all, and it never reaches beyond literal arguments.
func EvaluateSource(identifier, filtered string) (*Capture, error) {
	capture := NewCapture()

	for i, line := range strings.Split(filtered, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		keyword, rest, err := splitDeclaration(trimmed)
		if err != nil {
			return nil, &EvalError{Identifier: identifier, Line: i + 1, Detail: err.Error()}
		}

		switch {
		case captures(keyword):
			value, err := parseStringLiteral(rest)
			if err != nil {
				return nil, &EvalError{Identifier: identifier, Line: i + 1, Detail: err.Error()}
			}
			capture.Set(keyword, cty.StringVal(value))
		case accepts(keyword):
			// Legitimate declaration with no metadata to record.
		default:
			return nil, &EvalError{Identifier: identifier, Line: i + 1, Detail: fmt.Sprintf("unrecognized declaration %q", keyword)}
		}
	}

	return capture, nil
}

// splitDeclaration separates a declaration line into its keyword and the
// remainder after the separating space.
func splitDeclaration(line string) (keyword, rest string, err error) {
	keyword, rest, found := strings.Cut(line, " ")
	if !found || keyword == "" {
		return "", "", fmt.Errorf("not a declaration: %q", line)
	}
	return keyword, strings.TrimSpace(rest), nil
}

// parseStringLiteral reads one double-quoted string literal with backslash
// escapes. Content after the closing quote is tolerated when it is blank, a
// comment, or a ','-introduced argument tail: only the first positional
// argument carries the metadata value.
func parseStringLiteral(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return "", fmt.Errorf("expected string literal, found %q", s)
	}

	var b strings.Builder
	for i := 1; i < len(s); {
		switch c := s[i]; c {
		case '\\':
			if i+1 >= len(s) {
				return "", fmt.Errorf("unterminated escape in %q", s)
			}
			b.WriteByte(unescape(s[i+1]))
			i += 2
		case '"':
			if err := checkLiteralTail(s[i+1:]); err != nil {
				return "", err
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", fmt.Errorf("unterminated string literal %q", s)
}

// unescape maps an escaped character to its value. Unknown escapes yield
// the character itself, matching the host DSL's double-quoted strings.
func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '0':
		return 0
	}
	return c
}

// checkLiteralTail validates what follows a closing quote. An argument tail
// or trailing comment is ignored; anything else means the line is not the
// simple declaration shape the filter promised.
func checkLiteralTail(tail string) error {
	tail = strings.TrimSpace(tail)
	if tail == "" || strings.HasPrefix(tail, ",") || strings.HasPrefix(tail, "#") {
		return nil
	}
	return fmt.Errorf("unexpected content after string literal: %q", tail)
}
