package markdown

import (
	. "mdgo/internal/selection"
	"regexp"
)

// pass is one structural removal applied to the selected text.
type pass struct {
	name string
	re   *regexp.Regexp
	repl string
}

// clearPasses run in order and the order carries meaning: code fences
// must go before inline code or the fence delimiters get tokenized as
// inline spans, and bold must go before italic or ** is eaten as a
// pair of italics.
var clearPasses = []pass{
	{name: "code fence", re: regexp.MustCompile("(?s)```[^\n`]*\n?(.*?)\n?```"), repl: "$1"},
	{name: "inline code", re: regexp.MustCompile("`([^`]*)`"), repl: "$1"},
	{name: "bold asterisk", re: regexp.MustCompile(`\*\*(.+?)\*\*`), repl: "$1"},
	{name: "bold underscore", re: regexp.MustCompile(`__(.+?)__`), repl: "$1"},
	{name: "italic asterisk", re: regexp.MustCompile(`\*(.+?)\*`), repl: "$1"},
	{name: "italic underscore", re: regexp.MustCompile(`_(.+?)_`), repl: "$1"},
	{name: "strikethrough", re: regexp.MustCompile(`~~(.+?)~~`), repl: "$1"},
	{name: "spoiler", re: regexp.MustCompile(`\|\|(.+?)\|\|`), repl: "$1"},
	{name: "link", re: regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`), repl: "$1"},
	{name: "heading", re: regexp.MustCompile(`(?m)^([ \t]*)#{1,6}[ \t]+`), repl: "$1"},
	{name: "quote", re: regexp.MustCompile(`(?m)^([ \t]*)>[ \t]?`), repl: "$1"},
	{name: "bullet", re: regexp.MustCompile(`(?m)^([ \t]*)[-*+][ \t]+`), repl: "$1"},
	{name: "numbered", re: regexp.MustCompile(`(?m)^([ \t]*)\d+\.[ \t]+`), repl: "$1"},
}

// ClearFormatting strips markdown structure from the selected text
// only; text outside the selection is untouched. A bare caret is a
// no-op.
func ClearFormatting(buffer string, sel Selection) (string, Selection) {
	sel = sel.Clamp(len(buffer))
	if sel.IsEmpty() { return buffer, sel }

	start, end := sel.Normalize()
	text := ReadRange(buffer, start, end)

	for _, p := range clearPasses {
		text = p.re.ReplaceAllString(text, p.repl)
	}

	newBuffer := ReplaceRange(buffer, start, end, text)
	return newBuffer, Range(start, start+len(text))
}
