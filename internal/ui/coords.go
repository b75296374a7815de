package ui

import (
	"strings"
	"unicode/utf8"
)

// OffsetToRowCol maps a byte offset to a zero-based line number and
// rune column.
func OffsetToRowCol(buffer string, offset int) (int, int) {
	if offset < 0 { offset = 0 }
	if offset > len(buffer) { offset = len(buffer) }

	before := buffer[:offset]
	row := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col := utf8.RuneCountInString(before[lineStart:])
	return row, col
}

// RowColToOffset maps a line number and rune column back to a byte
// offset, clamping both into the buffer.
func RowColToOffset(buffer string, row, col int) int {
	if row < 0 { row = 0 }

	offset := 0
	for row > 0 {
		i := strings.IndexByte(buffer[offset:], '\n')
		if i < 0 { break }
		offset += i + 1
		row--
	}

	lineEnd := len(buffer)
	if i := strings.IndexByte(buffer[offset:], '\n'); i >= 0 {
		lineEnd = offset + i
	}

	line := buffer[offset:lineEnd]
	for col > 0 && len(line) > 0 {
		_, size := utf8.DecodeRuneInString(line)
		line = line[size:]
		offset += size
		col--
	}
	if col > 0 { return lineEnd }
	return offset
}

// PrevOffset steps one rune back, NextOffset one rune forward.
func PrevOffset(buffer string, offset int) int {
	if offset <= 0 { return 0 }
	_, size := utf8.DecodeLastRuneInString(buffer[:offset])
	return offset - size
}

func NextOffset(buffer string, offset int) int {
	if offset >= len(buffer) { return len(buffer) }
	_, size := utf8.DecodeRuneInString(buffer[offset:])
	return offset + size
}
