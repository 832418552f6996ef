package heuristics

import (
	"strings"
	"unicode"
)

// foldText lowercases the way the keyword tables expect. U+0130 keeps its
// combining dot, so a dotted capital I never matches a plain "i".
func foldText(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "İ", "i̇"))
}

// countWords splits on Unicode whitespace plus the ASCII information
// separators (U+001C to U+001F).
func countWords(s string) int {
	return len(strings.FieldsFunc(s, isWordSeparator))
}

func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
