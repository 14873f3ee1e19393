package markdown

import "regexp"

var (
	fencePattern      = regexp.MustCompile("(?s)```(.*?)```")
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")
)

// extractCode wraps fenced blocks in <pre><code> and inline spans in <code>.
// Fences are matched first so their content is never split by inline span
// delimiters. The emitted regions are not opaque: later stages still rewrite
// markup that happens to appear inside them.
func extractCode(s string) string {
	s = fencePattern.ReplaceAllString(s, "<pre><code>${1}</code></pre>")
	return inlineCodePattern.ReplaceAllString(s, "<code>${1}</code>")
}
