package service

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML entity-escapes the characters that can break out of an HTML
// email body. The single-pass replacer never re-escapes its own output.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeMessageHTML escapes a message body and converts newlines to line
// breaks. Escaping runs first so the inserted break markup survives.
func EscapeMessageHTML(s string) string {
	escaped := EscapeHTML(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br />")
}
