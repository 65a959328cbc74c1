package dom

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// normalizeWhitespace replaces runs of whitespace with a single space and trims
func normalizeWhitespace(text string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(text), " ")
}

// stripControlChars removes Unicode control characters, keeping
// tabs and line breaks.
func stripControlChars(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r', '\f':
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}

// NormalizeText strips control characters, composes to NFC and collapses
// whitespace. NFC keeps compatibility characters such as ligatures and
// full-width digits intact.
func NormalizeText(text string) string {
	text = stripControlChars(text)
	text = norm.NFC.String(text)
	return normalizeWhitespace(text)
}
