// Package markdown renders review markup to HTML.
//
// The dialect is small and fixed: fenced and inline code, headers, bold,
// italic, strikethrough, links, bullet and numbered lists, block quotes and
// horizontal rules. Rendering is a chain of pure stages applied in a fixed
// order; the order is load-bearing and must not be changed.
package markdown

import "strings"

// stage rewrites the whole document once.
type stage func(string) string

// pipeline lists the rendering stages in application order.
var pipeline = []stage{
	sanitize,
	extractCode,
	transformInline,
	structureBlocks,
	assembleParagraphs,
}

// Render converts review markup to HTML that is safe to insert into a
// container element without further escaping. Empty input returns "".
//
// Render is not idempotent: rendering its own output escapes the tags
// emitted by the first pass.
func Render(source string) string {
	if source == "" {
		return ""
	}
	html := strings.ReplaceAll(source, "\r\n", "\n")
	for _, s := range pipeline {
		html = s(html)
	}
	return html
}
