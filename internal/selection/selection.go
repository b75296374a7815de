package selection

import (
	"strings"
)

// Kind tags a selection as a bare caret or a text range.
type Kind int

const (
	CaretKind Kind = iota
	RangeKind
)

// Selection is a pair of byte offsets into a buffer. A caret is a
// selection with Start == End.
type Selection struct {
	Kind  Kind
	Start int
	End   int
}

func Caret(pos int) Selection {
	return Selection{Kind: CaretKind, Start: pos, End: pos}
}

func Range(start, end int) Selection {
	if start == end { return Caret(start) }
	return Selection{Kind: RangeKind, Start: start, End: end}
}

func (this Selection) IsEmpty() bool {
	return this.Kind == CaretKind || this.Start == this.End
}

// Normalize returns the offsets in start <= end order.
func (this Selection) Normalize() (int, int) {
	if this.Start > this.End { return this.End, this.Start }
	return this.Start, this.End
}

// Clamp fits both offsets into [0, length].
func (this Selection) Clamp(length int) Selection {
	start, end := this.Normalize()
	if start < 0 { start = 0 }
	if start > length { start = length }
	if end < 0 { end = 0 }
	if end > length { end = length }
	return Range(start, end)
}

// ReadRange returns the substring [start, end) of buffer.
func ReadRange(buffer string, start, end int) string {
	sel := Range(start, end).Clamp(len(buffer))
	return buffer[sel.Start:sel.End]
}

// ReplaceRange splices replacement in place of [start, end).
func ReplaceRange(buffer string, start, end int, replacement string) string {
	sel := Range(start, end).Clamp(len(buffer))
	return buffer[:sel.Start] + replacement + buffer[sel.End:]
}

// LineBounds widens [start, end) to full lines: lineStart is one past the
// nearest newline before start (or 0), lineEnd is the nearest newline at
// or after end (or the end of the buffer when there is no trailing one).
func LineBounds(buffer string, start, end int) (int, int) {
	sel := Range(start, end).Clamp(len(buffer))
	start, end = sel.Start, sel.End

	lineStart := strings.LastIndexByte(buffer[:start], '\n') + 1

	lineEnd := len(buffer)
	if i := strings.IndexByte(buffer[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}
	return lineStart, lineEnd
}
