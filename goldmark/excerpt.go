package goldmark

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Excerpt returns review text as a single line of plain text with markup,
// raw HTML and link targets removed, truncated to width display cells.
// A width of zero or less disables truncation.
func Excerpt(source string, width int) string {
	if source == "" {
		return ""
	}
	src := []byte(source)
	doc := newParser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node.Type() == ast.TypeBlock {
			buf.WriteByte(' ')
		}
		switch n := node.(type) {
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			buf.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(n.Value)
		case *ast.AutoLink:
			buf.Write(n.URL(src))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
		}
		return ast.WalkContinue, nil
	})

	plain := strings.Join(strings.Fields(buf.String()), " ")
	if width <= 0 {
		return plain
	}
	return runewidth.Truncate(plain, width, "…")
}
