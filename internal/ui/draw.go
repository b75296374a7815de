package ui

import (
	"fmt"
	"strings"

	. "mdgo/internal/utils"

	. "github.com/gdamore/tcell"
)

// contentRows is the text area height, one row is kept for status.
func (u *Ui) contentRows() int {
	return Max(1, u.ROWS-1)
}

func (u *Ui) DrawEverything() {
	u.Screen.Clear()

	lines := strings.Split(u.Text, "\n")
	selStart, selEnd := u.Selection().Normalize()
	rows := u.contentRows()

	offset := RowColToOffset(u.Text, u.Y, 0)
	for screenRow := 0; screenRow < rows; screenRow++ {
		row := u.Y + screenRow
		if row >= len(lines) { break }

		col := 0
		for _, char := range lines[row] {
			// keep counting offsets past the right edge so the
			// selection math stays correct on the next lines
			if col < u.COLUMNS {
				style := u.styleAt(row, col)
				if u.Selecting && offset >= selStart && offset < selEnd {
					style = style.Reverse(true)
				}
				u.Screen.SetContent(col, screenRow, char, nil, style)
			}
			offset += len(string(char))
			col++
		}
		offset++ // the newline
	}

	u.DrawStatus()
	u.ShowCursor()
}

func (u *Ui) styleAt(row, col int) Style {
	if row >= len(u.Colors) { return StyleDefault }
	if col >= len(u.Colors[row]) { return StyleDefault }
	return StyleDefault.Foreground(u.Colors[row][col])
}

func (u *Ui) ShowCursor() {
	row, col := OffsetToRowCol(u.Text, u.Caret)
	if row < u.Y || row >= u.Y+u.contentRows() {
		u.Screen.HideCursor()
		return
	}
	u.Screen.ShowCursor(Min(col, u.COLUMNS-1), row-u.Y)
}

func (u *Ui) DrawStatus() {
	name := u.Filename
	if name == "" { name = "[no file]" }
	if u.IsContentChanged { name += " *" }
	if u.IsFileUpdated { name += " [changed on disk]" }

	row, col := OffsetToRowCol(u.Text, u.Caret)
	right := fmt.Sprintf("%d:%d", row+1, col+1)
	if u.status != "" { right = u.status + "  " + right }

	text := FormatText(name, right, Max(1, u.COLUMNS-len(right)-1))
	u.DrawText(u.ROWS-1, 0, text, StyleDefault.Foreground(ColorDimGray))
	u.status = ""
}

func (u *Ui) DrawText(row, col int, text string, style Style) {
	for _, ch := range text {
		if col >= u.COLUMNS { break }
		u.Screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
