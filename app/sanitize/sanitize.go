package sanitize

import (
	"strings"
	"unicode/utf8"
)

// MaxLen caps every free-text field before it reaches storage or the
// generative API.
const MaxLen = 500

// Text trims surrounding whitespace and caps the result at MaxLen
// characters, never splitting a multi-byte rune. ok is false for empty
// or whitespace-only input.
func Text(s string) (out string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if utf8.RuneCountInString(s) > MaxLen {
		runes := []rune(s)
		s = string(runes[:MaxLen])
	}
	return s, true
}
