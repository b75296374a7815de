package markdown

import (
	"fmt"
	. "mdgo/internal/selection"
	. "mdgo/internal/utils"
	"regexp"
	"strings"
)

var numberedRe = regexp.MustCompile(`^\d+\.\s`)
var numberedStripRe = regexp.MustCompile(`^([ \t]*)\d+\.\s`)

// PrefixLines prepends prefix to every non-blank line touching the
// selection. With toggleable set and every non-blank line already
// carrying the prefix, the prefix is stripped instead. The returned
// selection spans the whole rewritten block so repeated calls toggle
// over the same lines.
func PrefixLines(buffer string, sel Selection, prefix string, toggleable bool) (string, Selection) {
	sel = sel.Clamp(len(buffer))
	start, end := sel.Normalize()
	lineStart, lineEnd := LineBounds(buffer, start, end)

	block := ReadRange(buffer, lineStart, lineEnd)
	lines := strings.Split(block, "\n")

	marker := strings.TrimSpace(prefix)
	if toggleable && allPrefixed(lines, marker) {
		for i, line := range lines {
			if strings.TrimSpace(line) == "" { continue }
			lines[i] = stripMarker(line, marker)
		}
	} else {
		for i, line := range lines {
			if strings.TrimSpace(line) == "" { continue } // no trailing markers on blank lines
			lines[i] = prefix + line
		}
	}

	newBlock := strings.Join(lines, "\n")
	newBuffer := ReplaceRange(buffer, lineStart, lineEnd, newBlock)
	return newBuffer, Range(lineStart, lineStart+len(newBlock))
}

// allPrefixed reports whether every non-blank line starts with marker,
// ignoring leading whitespace. Mixed blocks always gain prefixes
// rather than being normalized.
func allPrefixed(lines []string, marker string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" { continue }
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), marker) { return false }
	}
	return true
}

// stripMarker removes the marker after any leading whitespace, plus the
// single space the prefix carried, so a toggle round trip restores the
// original line.
func stripMarker(line string, marker string) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]
	rest := strings.TrimPrefix(trimmed, marker)
	rest = strings.TrimPrefix(rest, " ")
	return indent + rest
}

// Quote toggles "> " on the selected lines.
func Quote(buffer string, sel Selection) (string, Selection) {
	return PrefixLines(buffer, sel, "> ", true)
}

// BulletList toggles "- " on the selected lines.
func BulletList(buffer string, sel Selection) (string, Selection) {
	return PrefixLines(buffer, sel, "- ", true)
}

// Heading prefixes the selected lines with level hash marks. Headings
// are not toggled, only added, so repeated calls stack levels the way
// the host asks for them.
func Heading(buffer string, sel Selection, level int) (string, Selection) {
	level = Clamp(level, 1, 6)
	prefix := strings.Repeat("#", level) + " "
	return PrefixLines(buffer, sel, prefix, false)
}

// NumberedList assigns 1-based numbers to the non-blank lines touching
// the selection, skipping blank lines without consuming a number. If
// every line already carries a "n. " token the tokens are stripped. A
// bare caret inserts a literal first item instead.
func NumberedList(buffer string, sel Selection) (string, Selection) {
	sel = sel.Clamp(len(buffer))
	start, end := sel.Normalize()

	if sel.IsEmpty() {
		insert := "1. item"
		newBuffer := ReplaceRange(buffer, start, end, insert)
		return newBuffer, Range(start+3, start+3+len("item"))
	}

	lineStart, lineEnd := LineBounds(buffer, start, end)
	block := ReadRange(buffer, lineStart, lineEnd)
	lines := strings.Split(block, "\n")

	if allNumbered(lines) {
		for i, line := range lines {
			lines[i] = numberedStripRe.ReplaceAllString(line, "$1")
		}
	} else {
		n := 1
		for i, line := range lines {
			if strings.TrimSpace(line) == "" { continue }
			lines[i] = fmt.Sprintf("%d. %s", n, line)
			n++
		}
	}

	newBlock := strings.Join(lines, "\n")
	newBuffer := ReplaceRange(buffer, lineStart, lineEnd, newBlock)
	return newBuffer, Range(lineStart, lineStart+len(newBlock))
}

func allNumbered(lines []string) bool {
	for _, line := range lines {
		if !numberedRe.MatchString(strings.TrimSpace(line)) { return false }
	}
	return true
}
