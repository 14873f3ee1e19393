package goldmark_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/goldmark"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func stripANSI(s string) string {
	// Matches SGR, cursor movement, and other CSI sequences.
	re := regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	return re.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	// Force ANSI color output so styled elements produce visible escape
	// codes that we can assert against.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := readlog.DefaultTheme()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goldmark.Render("", 80, theme))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("hello world", 80, theme)
		assert.Contains(t, stripANSI(result), "hello world")
	})

	t.Run("heading keeps its level marker and styling", func(t *testing.T) {
		t.Parallel()
		heading := goldmark.Render("### Verdict", 80, theme)
		paragraph := goldmark.Render("Verdict", 80, theme)
		assert.Contains(t, stripANSI(heading), "### Verdict")
		assert.NotEqual(t, heading, paragraph)
	})

	t.Run("emphasis and strikethrough keep content", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("**bold** *italic* ~~gone~~", 80, theme))
		assert.Contains(t, result, "bold")
		assert.Contains(t, result, "italic")
		assert.Contains(t, result, "gone")
		assert.NotContains(t, result, "~~")
		assert.NotContains(t, result, "**")
	})

	t.Run("fenced code block keeps lines behind gutter", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("```go\nx := 1\n```", 80, theme))
		assert.Contains(t, result, "go")
		assert.Contains(t, result, "│ x := 1")
	})

	t.Run("bullet and numbered lists", func(t *testing.T) {
		t.Parallel()
		bullets := stripANSI(goldmark.Render("- one\n- two", 80, theme))
		assert.Contains(t, bullets, "• one")
		assert.Contains(t, bullets, "• two")

		numbered := stripANSI(goldmark.Render("3. three\n4. four", 80, theme))
		assert.Contains(t, numbered, "3. three")
		assert.Contains(t, numbered, "4. four")
	})

	t.Run("block quote has bar", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("> best line", 80, theme))
		assert.Contains(t, result, "│ best line")
	})

	t.Run("thematic break", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("a\n\n---\n\nb", 20, theme))
		assert.Contains(t, result, strings.Repeat("─", 20))
	})

	t.Run("link shows label and target", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("[notes](https://example.com)", 80, theme))
		assert.Contains(t, result, "notes")
		assert.Contains(t, result, "(https://example.com)")
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"
		result := stripANSI(goldmark.Render(long, 30, theme))
		assert.Contains(t, result, "word12")
		assert.Greater(t, len(strings.Split(result, "\n")), 1)
	})

	t.Run("zero width falls back to default", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("hello", 0, theme))
		assert.Contains(t, result, "hello")
	})
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goldmark.Excerpt("", 20))
	})

	t.Run("strips markup and link targets", func(t *testing.T) {
		t.Parallel()
		got := goldmark.Excerpt("# Title\n\n**Bold** and [link](http://x) text\n\n- a\n- b", 0)
		assert.Equal(t, "Title Bold and link text a b", got)
	})

	t.Run("drops raw html", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "x y", goldmark.Excerpt("<b>x</b> y", 0))
		assert.Equal(t, "shown", goldmark.Excerpt("<div>\nhidden\n</div>\n\nshown", 0))
	})

	t.Run("keeps code text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "see code", goldmark.Excerpt("see\n\n```\ncode\n```", 0))
		assert.Equal(t, "see code", goldmark.Excerpt("see\n\n    code", 0))
		assert.Equal(t, "a b c d", goldmark.Excerpt("a\n\n```\nb\nc\n```\n\nd", 0))
	})

	t.Run("truncates to width with ellipsis", func(t *testing.T) {
		t.Parallel()
		got := goldmark.Excerpt("a rather long review of a book", 10)
		assert.True(t, strings.HasSuffix(got, "…"))
		assert.LessOrEqual(t, lipgloss.Width(got), 10)
	})

	t.Run("short text is not truncated", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "short", goldmark.Excerpt("*short*", 10))
	})
}
