package markdown

import (
	"fmt"
	. "mdgo/internal/selection"
	. "mdgo/internal/utils"
	"strings"
)

// Table builds a placeholder table replacing the selection. Dimensions
// are clamped to 2..6 columns and 2..10 body rows.
func Table(buffer string, sel Selection, cols, rows int) (string, Selection) {
	cols = Clamp(cols, 2, 6)
	rows = Clamp(rows, 2, 10)

	lines := make([]string, 0, rows+2)

	header := make([]string, cols)
	separator := make([]string, cols)
	for c := 0; c < cols; c++ {
		header[c] = fmt.Sprintf("Header %d", c+1)
		separator[c] = "---"
	}
	lines = append(lines, tableRow(header), tableRow(separator))

	for r := 1; r <= rows; r++ {
		cells := make([]string, cols)
		for c := 0; c < cols; c++ {
			cells[c] = fmt.Sprintf("Cell %d.%d", r, c+1)
		}
		lines = append(lines, tableRow(cells))
	}

	block := strings.Join(lines, "\n")
	sel = sel.Clamp(len(buffer))
	start, end := sel.Normalize()
	newBuffer := ReplaceRange(buffer, start, end, block)
	return newBuffer, Range(start, start+len(block))
}

func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// HorizontalRule inserts "---" padded with blank lines so the rule is
// never glued to adjacent non-blank text. At the end of the buffer the
// rule ends with exactly one newline.
func HorizontalRule(buffer string, sel Selection) (string, Selection) {
	sel = sel.Clamp(len(buffer))
	start, end := sel.Normalize()

	before := buffer[:start]
	after := buffer[end:]

	pre := ""
	if len(before) > 0 {
		switch {
		case strings.HasSuffix(before, "\n\n"):
		case strings.HasSuffix(before, "\n"):
			pre = "\n"
		default:
			pre = "\n\n"
		}
	}

	post := "\n"
	if len(after) > 0 {
		switch {
		case strings.HasPrefix(after, "\n\n"):
			post = ""
		case strings.HasPrefix(after, "\n"):
			post = "\n"
		default:
			post = "\n\n"
		}
	}

	insert := pre + "---" + post
	newBuffer := ReplaceRange(buffer, start, end, insert)
	return newBuffer, Caret(start + len(insert))
}

// Snippet expands a user template, replacing every literal {selection}
// token with the selected text, and selects the inserted span. A
// template without the token ignores the selection content.
func Snippet(buffer string, sel Selection, template string) (string, Selection) {
	sel = sel.Clamp(len(buffer))
	start, end := sel.Normalize()

	selected := ReadRange(buffer, start, end)
	insert := strings.ReplaceAll(template, "{selection}", selected)

	newBuffer := ReplaceRange(buffer, start, end, insert)
	return newBuffer, Range(start, start+len(insert))
}
