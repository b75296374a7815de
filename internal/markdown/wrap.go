// Package markdown holds the pure transformation operations. Every
// operation maps (buffer, selection, args) to (buffer, selection) and
// keeps no state between calls.
package markdown

import (
	. "mdgo/internal/selection"
	"strings"
)

// inline markers
const (
	BoldMarker    = "**"
	ItalicMarker  = "*"
	StrikeMarker  = "~~"
	CodeMarker    = "`"
	SpoilerMarker = "||"
)

// Wrap surrounds the selection with prefix/suffix. Reapplying to text
// already wrapped in a symmetric marker removes the marker instead.
// A bare caret gets prefix+placeholder+suffix with the placeholder
// selected for immediate typing.
func Wrap(buffer string, sel Selection, prefix, suffix, placeholder string) (string, Selection) {
	sel = sel.Clamp(len(buffer))
	start, end := sel.Normalize()

	if sel.IsEmpty() {
		insert := prefix + placeholder + suffix
		newBuffer := ReplaceRange(buffer, start, end, insert)
		return newBuffer, Range(start+len(prefix), start+len(prefix)+len(placeholder))
	}

	selected := ReadRange(buffer, start, end)

	// toggle off, symmetric markers only: asymmetric pairs cannot be
	// detected without real markdown parsing. only the immediate
	// neighbor characters are checked, unrelated text equal to the
	// marker right before the selection will toggle off too.
	if prefix == suffix && isWrapped(buffer, start, end, prefix, suffix) {
		newBuffer := ReplaceRange(buffer, start-len(prefix), end+len(suffix), selected)
		return newBuffer, Range(start-len(prefix), end-len(prefix))
	}

	newBuffer := ReplaceRange(buffer, start, end, prefix+selected+suffix)
	return newBuffer, Range(start+len(prefix), end+len(prefix))
}

func isWrapped(buffer string, start, end int, prefix, suffix string) bool {
	if start < len(prefix) { return false }
	if end+len(suffix) > len(buffer) { return false }
	return strings.HasSuffix(buffer[:start], prefix) && strings.HasPrefix(buffer[end:], suffix)
}

// Bold and friends fix the marker and placeholder for Wrap.
func Bold(buffer string, sel Selection) (string, Selection) {
	return Wrap(buffer, sel, BoldMarker, BoldMarker, "bold")
}

func Italic(buffer string, sel Selection) (string, Selection) {
	return Wrap(buffer, sel, ItalicMarker, ItalicMarker, "italic")
}

func Strikethrough(buffer string, sel Selection) (string, Selection) {
	return Wrap(buffer, sel, StrikeMarker, StrikeMarker, "strikethrough")
}

func InlineCode(buffer string, sel Selection) (string, Selection) {
	return Wrap(buffer, sel, CodeMarker, CodeMarker, "code")
}

func Spoiler(buffer string, sel Selection) (string, Selection) {
	return Wrap(buffer, sel, SpoilerMarker, SpoilerMarker, "spoiler")
}

// CodeBlock wraps in fenced markers. The pair is asymmetric so it never
// toggles off; clear formatting removes fences instead.
func CodeBlock(buffer string, sel Selection) (string, Selection) {
	return Wrap(buffer, sel, "```\n", "\n```", "code")
}
