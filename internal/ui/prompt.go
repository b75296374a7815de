package ui

import (
	. "mdgo/internal/utils"

	. "github.com/gdamore/tcell"
)

// Prompt reads one line in the status row. The event loop is paused
// until the user confirms or cancels, so no other operation can touch
// the buffer while the prompt is open. onResult gets nil on escape.
func (u *Ui) Prompt(message string, defaultValue string, onResult func(answer *string)) {
	input := []rune(defaultValue)
	cursor := len(input)

	for {
		u.DrawPrompt(message, input, cursor)

		switch ev := u.Screen.PollEvent().(type) {
		case *EventResize:
			u.COLUMNS, u.ROWS = u.Screen.Size()

		case *EventKey:
			switch ev.Key() {
			case KeyRune:
				input = InsertTo(input, cursor, ev.Rune())
				cursor++
			case KeyLeft:
				if cursor > 0 { cursor-- }
			case KeyRight:
				if cursor < len(input) { cursor++ }
			case KeyBackspace, KeyBackspace2:
				if cursor > 0 {
					cursor--
					input = Remove(input, cursor)
				}
			case KeyEscape, KeyCtrlQ:
				u.Update = true
				onResult(nil)
				return
			case KeyEnter:
				u.Update = true
				answer := string(input)
				onResult(&answer)
				return
			}
		}
	}
}

func (u *Ui) DrawPrompt(message string, input []rune, cursor int) {
	row := u.ROWS - 1
	for col := 0; col < u.COLUMNS; col++ {
		u.Screen.SetContent(col, row, ' ', nil, StyleDefault)
	}

	prefix := message + ": "
	u.DrawText(row, 0, prefix+string(input), StyleDefault.Bold(true))
	u.Screen.ShowCursor(Min(len(prefix)+cursor, u.COLUMNS-1), row)
	u.Screen.Show()
}
