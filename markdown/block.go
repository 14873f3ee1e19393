package markdown

import (
	"regexp"
	"strings"
)

// replacement pairs a line pattern with its template.
type replacement struct {
	pattern *regexp.Regexp
	repl    string
}

// headers are ordered longest marker first; matching "# " before "#### "
// would turn a level four header into <h1>### ...</h1>.
var headers = []replacement{
	{regexp.MustCompile(`(?m)^#### (.*)$`), "<h4>${1}</h4>"},
	{regexp.MustCompile(`(?m)^### (.*)$`), "<h3>${1}</h3>"},
	{regexp.MustCompile(`(?m)^## (.*)$`), "<h2>${1}</h2>"},
	{regexp.MustCompile(`(?m)^# (.*)$`), "<h1>${1}</h1>"},
}

var (
	bulletPattern      = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+(.*)$`)
	numberedPattern    = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+(.*)$`)
	quotePattern       = regexp.MustCompile(`(?m)^[ \t]*&gt;[ \t]?(.*)$`)
	rulePattern        = regexp.MustCompile(`(?m)^[ \t]*-{3,}[ \t]*$`)
	itemSpanPattern    = regexp.MustCompile(`(?s)<li>.*</li>`)
	orderedSpanPattern = regexp.MustCompile(`(?s)(?:<ul>)?<li>.*</li>`)
)

// structureBlocks converts headers, list items, quotes and rules into block
// tags. Every pass is independent and sees the whole document.
func structureBlocks(s string) string {
	for _, h := range headers {
		s = h.pattern.ReplaceAllString(s, h.repl)
	}
	s = wrapUnordered(bulletPattern.ReplaceAllString(s, "<li>${1}</li>"))
	s = wrapOrdered(numberedPattern.ReplaceAllString(s, "<li>${1}</li>"))
	s = quotePattern.ReplaceAllString(s, "<blockquote>${1}</blockquote>")
	return rulePattern.ReplaceAllString(s, "<hr>")
}

// wrapUnordered wraps everything from the first <li> to the last </li> of
// the document in a single <ul>. Separate bullet lists therefore merge into
// one list that also swallows the content between them.
func wrapUnordered(s string) string {
	loc := itemSpanPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + "<ul>" + s[loc[0]:loc[1]] + "</ul>" + s[loc[1]:]
}

// wrapOrdered wraps the maximal item span in <ol> unless the span contains
// <ul>. A span already claimed by wrapUnordered begins with its <ul> opener,
// so bullet-only documents are left alone. When both list kinds appear the
// check usually fires and numbered items stay unwrapped.
func wrapOrdered(s string) string {
	loc := orderedSpanPattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	span := s[loc[0]:loc[1]]
	if strings.Contains(span, "<ul>") {
		return s
	}
	return s[:loc[0]] + "<ol>" + span + "</ol>" + s[loc[1]:]
}
