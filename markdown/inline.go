package markdown

import (
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	strikePattern = regexp.MustCompile(`~~(.*?)~~`)
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// transformInline applies bold, italic, strikethrough and links, in that
// order. Bold must precede italic or every bold span would read as two
// adjacent italic spans.
func transformInline(s string) string {
	s = boldPattern.ReplaceAllString(s, "<strong>${1}</strong>")
	s = italicize(s)
	s = strikePattern.ReplaceAllString(s, "<s>${1}</s>")
	return linkPattern.ReplaceAllString(s, `<a href="${2}" target="_blank">${1}</a>`)
}

// italicize wraps *text* in <em>. A delimiter touching another '*' never
// counts, and neither does an opening '*' followed by whitespace, which keeps
// "* item" bullets intact for the block stage. Spans do not cross lines.
//
// The scan is linear: a failed candidate resumes at the next '*' or line,
// never re-reading the text in between.
func italicize(s string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); {
		if !opensItalic(s, i) {
			i++
			continue
		}
		end, ok := closeItalic(s, i+1)
		if !ok {
			i = end
			continue
		}
		if b.Len() == 0 {
			b.Grow(len(s) + 16)
		}
		b.WriteString(s[last:i])
		b.WriteString("<em>")
		b.WriteString(s[i+1 : end])
		b.WriteString("</em>")
		last = end + 1
		i = last
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func opensItalic(s string, i int) bool {
	if s[i] != '*' || i+1 >= len(s) {
		return false
	}
	if i > 0 && s[i-1] == '*' {
		return false
	}
	switch s[i+1] {
	case '*', ' ', '\t', '\n':
		return false
	}
	return true
}

// closeItalic finds the delimiter closing a span whose content starts at
// from. On failure it returns the position where scanning should resume.
func closeItalic(s string, from int) (int, bool) {
	for j := from; j < len(s); j++ {
		switch s[j] {
		case '\n':
			return j + 1, false
		case '*':
			if j+1 < len(s) && s[j+1] == '*' {
				return j, false
			}
			return j, true
		}
	}
	return len(s), false
}
