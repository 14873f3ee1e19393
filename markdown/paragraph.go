package markdown

import (
	"regexp"
	"strings"
)

var blankLinePattern = regexp.MustCompile(`\n\s*\n`)

// blockOpeners mark segments that are already block-level HTML.
var blockOpeners = []string{"<h", "<ul>", "<ol>", "<blockquote>", "<hr>", "<pre>"}

// assembleParagraphs splits on blank lines, wraps plain segments in <p> and
// turns every remaining line break into <br>.
func assembleParagraphs(s string) string {
	segments := blankLinePattern.Split(s, -1)
	for i, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg != "" && !isBlock(seg) {
			segments[i] = "<p>" + strings.ReplaceAll(seg, "\n", "<br>") + "</p>"
			continue
		}
		segments[i] = strings.ReplaceAll(seg, "\n", "<br>")
	}
	return strings.ReplaceAll(strings.Join(segments, "\n"), "\n", "<br>")
}

func isBlock(seg string) bool {
	for _, opener := range blockOpeners {
		if strings.HasPrefix(seg, opener) {
			return true
		}
	}
	return false
}
