package selection

import (
	"testing"
)

func TestLineBounds(t *testing.T) {
	buffer := "one\ntwo\nthree"

	tests := []struct {
		name      string
		start     int
		end       int
		wantStart int
		wantEnd   int
	}{
		{name: "inside first line", start: 1, end: 2, wantStart: 0, wantEnd: 3},
		{name: "inside second line", start: 5, end: 6, wantStart: 4, wantEnd: 7},
		{name: "caret at line start", start: 4, end: 4, wantStart: 4, wantEnd: 7},
		{name: "caret right before newline", start: 3, end: 3, wantStart: 0, wantEnd: 3},
		{name: "spans two lines", start: 2, end: 5, wantStart: 0, wantEnd: 7},
		{name: "caret at buffer end without trailing newline", start: 13, end: 13, wantStart: 8, wantEnd: 13},
		{name: "whole buffer", start: 0, end: 13, wantStart: 0, wantEnd: 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotStart, gotEnd := LineBounds(buffer, tc.start, tc.end)
			if gotStart != tc.wantStart || gotEnd != tc.wantEnd {
				t.Errorf("LineBounds(%d, %d) = %d, %d; want %d, %d",
					tc.start, tc.end, gotStart, gotEnd, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestLineBoundsEmptyBuffer(t *testing.T) {
	gotStart, gotEnd := LineBounds("", 0, 0)
	if gotStart != 0 || gotEnd != 0 {
		t.Errorf("LineBounds on empty buffer = %d, %d; want 0, 0", gotStart, gotEnd)
	}
}

func TestReplaceRange(t *testing.T) {
	tests := []struct {
		name        string
		buffer      string
		start       int
		end         int
		replacement string
		want        string
	}{
		{name: "middle", buffer: "abcdef", start: 2, end: 4, replacement: "XY", want: "abXYef"},
		{name: "insert at caret", buffer: "abc", start: 1, end: 1, replacement: "-", want: "a-bc"},
		{name: "delete", buffer: "abc", start: 0, end: 2, replacement: "", want: "c"},
		{name: "grow", buffer: "ab", start: 1, end: 1, replacement: "12345", want: "a12345b"},
		{name: "offsets beyond buffer are clamped", buffer: "ab", start: 1, end: 99, replacement: "X", want: "aX"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ReplaceRange(tc.buffer, tc.start, tc.end, tc.replacement)
			if got != tc.want {
				t.Errorf("ReplaceRange() = %q, want %q", got, tc.want)
			}
			wantLen := len(tc.want)
			if len(got) != wantLen {
				t.Errorf("length = %d, want %d", len(got), wantLen)
			}
		})
	}
}

func TestReadRange(t *testing.T) {
	if got := ReadRange("hello", 1, 4); got != "ell" {
		t.Errorf("ReadRange() = %q, want %q", got, "ell")
	}
	if got := ReadRange("hello", 2, 2); got != "" {
		t.Errorf("ReadRange() on caret = %q, want empty", got)
	}
}

func TestClampAndNormalize(t *testing.T) {
	sel := Range(7, 2).Clamp(5)
	start, end := sel.Normalize()
	if start != 2 || end != 5 {
		t.Errorf("Clamp(5) = %d, %d; want 2, 5", start, end)
	}

	caret := Caret(9).Clamp(3)
	if !caret.IsEmpty() || caret.Start != 3 {
		t.Errorf("Caret(9).Clamp(3) = %+v; want caret at 3", caret)
	}
}

func TestRangeCollapsesToCaret(t *testing.T) {
	sel := Range(4, 4)
	if sel.Kind != CaretKind || !sel.IsEmpty() {
		t.Errorf("Range(4, 4) = %+v; want caret", sel)
	}
}
