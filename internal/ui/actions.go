package ui

import (
	"strconv"
	"strings"

	. "mdgo/internal/logger"
	. "mdgo/internal/selection"
	. "mdgo/internal/utils"

	"github.com/acarl005/stripansi"
	"github.com/atotto/clipboard"
	. "github.com/gdamore/tcell"
)

func (u *Ui) HandleKeyboard(key Key, char rune, modifiers ModMask) {
	switch key {
	case KeyRune:
		u.InsertText(string(char))
	case KeyEnter:
		u.InsertText("\n")
	case KeyTab:
		u.InsertText("\t")
	case KeyBackspace, KeyBackspace2:
		u.OnBackspace()
	case KeyDelete:
		u.OnDelete()

	case KeyLeft:
		u.MoveCaret(PrevOffset(u.Text, u.Caret), modifiers&ModShift != 0)
	case KeyRight:
		u.MoveCaret(NextOffset(u.Text, u.Caret), modifiers&ModShift != 0)
	case KeyUp:
		u.MoveCaretVertically(-1, modifiers&ModShift != 0)
	case KeyDown:
		u.MoveCaretVertically(1, modifiers&ModShift != 0)
	case KeyHome:
		start, _ := LineBounds(u.Text, u.Caret, u.Caret)
		u.MoveCaret(start, modifiers&ModShift != 0)
	case KeyEnd:
		_, end := LineBounds(u.Text, u.Caret, u.Caret)
		u.MoveCaret(end, modifiers&ModShift != 0)

	case KeyEscape:
		if u.Selecting { u.Selecting = false; return }
		if u.IsContentChanged { u.status = "unsaved changes, ctrl+q to quit"; return }
		u.Done = true
	case KeyCtrlQ:
		u.Done = true
	case KeyCtrlS:
		u.Save()

	case KeyCtrlA:
		u.Anchor = 0
		u.Caret = len(u.Text)
		u.Selecting = true

	case KeyCtrlC:
		u.OnCopy()
	case KeyCtrlX:
		u.OnCut()
	case KeyCtrlV:
		u.OnPaste()

	// formatting actions
	case KeyCtrlB:
		u.format(u.Formatter.Bold)
	case KeyCtrlE:
		u.format(u.Formatter.Italic)
	case KeyCtrlD:
		u.format(u.Formatter.Strikethrough)
	case KeyCtrlG:
		u.format(u.Formatter.InlineCode)
	case KeyCtrlF:
		u.format(u.Formatter.CodeBlock)
	case KeyCtrlP:
		u.format(u.Formatter.Spoiler)
	case KeyCtrlO:
		u.format(u.Formatter.Quote)
	case KeyCtrlU:
		u.format(u.Formatter.BulletList)
	case KeyCtrlN:
		u.format(u.Formatter.NumberedList)
	case KeyCtrlY:
		u.format(u.Formatter.Heading)
	case KeyCtrlL:
		u.format(u.Formatter.ClearFormatting)
	case KeyCtrlK:
		u.format(u.Formatter.Link)
	case KeyCtrlR:
		u.format(u.Formatter.HorizontalRule)
	case KeyCtrlT:
		u.OnTable()
	case KeyCtrlW:
		u.OnSnippet()
	}
}

func (u *Ui) format(op func() error) {
	if err := op(); err != nil {
		u.status = err.Error()
		Log.Error("format:", err.Error())
	}
}

func (u *Ui) OnTable() {
	u.Prompt("Table cols rows", "2 2", func(answer *string) {
		if answer == nil { return }
		fields := strings.Fields(*answer)
		cols, rows := 2, 2
		if len(fields) > 0 { cols, _ = strconv.Atoi(fields[0]) }
		if len(fields) > 1 { rows, _ = strconv.Atoi(fields[1]) }
		u.format(func() error { return u.Formatter.Table(cols, rows) })
	})
}

func (u *Ui) OnSnippet() {
	snippets := u.Formatter.Snippets()
	if len(snippets) == 0 { u.status = "no snippets configured"; return }

	labels := make([]string, len(snippets))
	for i, s := range snippets {
		labels[i] = strconv.Itoa(i+1) + ":" + s.Label
	}

	u.Prompt("Snippet "+strings.Join(labels, " "), "1", func(answer *string) {
		if answer == nil { return }
		n, err := strconv.Atoi(strings.TrimSpace(*answer))
		if err != nil { return }
		u.format(func() error { return u.Formatter.Snippet(n - 1) })
	})
}

// MoveCaret moves to offset, extending the selection when extend is
// set and dropping it otherwise.
func (u *Ui) MoveCaret(offset int, extend bool) {
	if extend && !u.Selecting {
		u.Anchor = u.Caret
		u.Selecting = true
	}
	if !extend { u.Selecting = false }
	u.Caret = Clamp(offset, 0, len(u.Text))
	u.Focus()
}

func (u *Ui) MoveCaretVertically(delta int, extend bool) {
	row, col := OffsetToRowCol(u.Text, u.Caret)
	u.MoveCaret(RowColToOffset(u.Text, row+delta, col), extend)
}

// InsertText replaces the selection, or splices at the caret.
func (u *Ui) InsertText(text string) {
	start, end := u.Selection().Normalize()
	u.Text = ReplaceRange(u.Text, start, end, text)
	u.Selecting = false
	u.Caret = start + len(text)
	u.Anchor = u.Caret
	u.IsContentChanged = true
	u.Recolor()
	u.Focus()
}

func (u *Ui) OnBackspace() {
	if u.Selecting && u.Anchor != u.Caret {
		u.deleteSelection()
		return
	}
	if u.Caret == 0 { return }
	prev := PrevOffset(u.Text, u.Caret)
	u.Text = ReplaceRange(u.Text, prev, u.Caret, "")
	u.Caret = prev
	u.Anchor = prev
	u.IsContentChanged = true
	u.Recolor()
	u.Focus()
}

func (u *Ui) OnDelete() {
	if u.Selecting && u.Anchor != u.Caret {
		u.deleteSelection()
		return
	}
	if u.Caret >= len(u.Text) { return }
	u.Text = ReplaceRange(u.Text, u.Caret, NextOffset(u.Text, u.Caret), "")
	u.IsContentChanged = true
	u.Recolor()
}

func (u *Ui) deleteSelection() {
	start, end := u.Selection().Normalize()
	u.Text = ReplaceRange(u.Text, start, end, "")
	u.Selecting = false
	u.Caret = start
	u.Anchor = start
	u.IsContentChanged = true
	u.Recolor()
	u.Focus()
}

func (u *Ui) OnCopy() {
	start, end := u.Selection().Normalize()
	if start == end { return }
	err := clipboard.WriteAll(ReadRange(u.Text, start, end))
	if err != nil { Log.Error("clipboard:", err.Error()) }
}

func (u *Ui) OnCut() {
	start, end := u.Selection().Normalize()
	if start == end { return }
	err := clipboard.WriteAll(ReadRange(u.Text, start, end))
	if err != nil { Log.Error("clipboard:", err.Error()); return }
	u.deleteSelection()
}

func (u *Ui) OnPaste() {
	text, err := clipboard.ReadAll()
	if err != nil { Log.Error("clipboard:", err.Error()); return }
	// terminal copies can drag ansi escapes along
	u.InsertText(stripansi.Strip(text))
}

// Focus scrolls the view so the caret row is visible.
func (u *Ui) Focus() {
	row, _ := OffsetToRowCol(u.Text, u.Caret)
	rows := u.contentRows()
	if row < u.Y { u.Y = row }
	if row >= u.Y+rows { u.Y = row - rows + 1 }
	if u.Y < 0 { u.Y = 0 }
}

func (u *Ui) Recolor() {
	u.Colors = u.Highlighter.Colorize(u.Text)
}
