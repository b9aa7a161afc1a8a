// Package utils provides shared utilities for text, math, and logging.
package utils

import (
	"regexp"
	"unicode/utf8"
)

var (
	multiNewline = regexp.MustCompile(`\n{3,}`)
	multiSpace   = regexp.MustCompile(`[ \t]{2,}`)
)

// Truncate returns s truncated to at most maxLen bytes, with "..." appended
// if truncated. If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:runeBoundary(s, maxLen)] + "..."
}

// TruncateRaw returns s truncated to at most maxLen bytes without a marker.
func TruncateRaw(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:runeBoundary(s, maxLen)]
}

// runeBoundary backs n up to the start of the rune it falls inside. Legal
// text carries Devanagari and typographic punctuation, so a byte cut can land
// mid-rune and produce invalid UTF-8.
func runeBoundary(s string, n int) int {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}

// CleanWhitespace collapses runs of spaces/tabs and 3+ newlines, so extracted
// page text stays readable without blank-line padding.
func CleanWhitespace(s string) string {
	s = multiSpace.ReplaceAllString(s, " ")
	s = multiNewline.ReplaceAllString(s, "\n\n")
	return s
}
