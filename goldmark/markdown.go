// Package goldmark renders review text for the terminal using goldmark for
// parsing and lipgloss for styling.
package goldmark

import "github.com/fwojciec/readlog"

// Render parses review markup and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width. Code blocks are
// rendered at full width without reflow. Raw HTML is shown as text.
func Render(source string, width int, theme readlog.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
