package markdown

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// sanitize escapes every HTML-significant character. It runs before any
// dialect pattern is recognized, so later stages only ever see entities.
func sanitize(s string) string {
	return escaper.Replace(s)
}
