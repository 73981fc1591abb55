package sanitization

import (
	"strings"
)

// htmlEscaper covers the five reserved HTML characters. Every piece of
// user-supplied text interpolated into an HTML mail body goes through it,
// including the free-text message and notes fields.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five reserved HTML characters in s.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// NormalizeField trims surrounding whitespace from a submitted form field.
func NormalizeField(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail lowercases and trims an email address for use in
// rate-limit keys and comparisons.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
