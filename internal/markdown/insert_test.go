package markdown

import (
	. "mdgo/internal/selection"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

func assertBlock(t *testing.T, want, got string) {
	t.Helper()
	if want == got { return }
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	t.Errorf("blocks differ:\n%s", text)
}

func TestTableDefaultShape(t *testing.T) {
	got, sel := Table("", Caret(0), 2, 2)

	want := strings.Join([]string{
		"| Header 1 | Header 2 |",
		"| --- | --- |",
		"| Cell 1.1 | Cell 1.2 |",
		"| Cell 2.1 | Cell 2.2 |",
	}, "\n")
	assertBlock(t, want, got)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		cells := strings.Split(strings.Trim(line, "| "), " | ")
		assert.Len(t, cells, 2)
	}

	assert.Equal(t, got, ReadRange(got, sel.Start, sel.End))
}

func TestTableClampsDimensions(t *testing.T) {
	got, _ := Table("", Caret(0), 100, 0)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2+2) // header + separator + 2 body rows minimum
	assert.Len(t, strings.Split(strings.Trim(lines[0], "| "), " | "), 6)
}

func TestTableReplacesSelection(t *testing.T) {
	got, _ := Table("before MIDDLE after", Range(7, 13), 2, 2)
	assert.True(t, strings.HasPrefix(got, "before | Header 1 |"))
	assert.True(t, strings.HasSuffix(got, "| Cell 2.2 | after"))
}

func TestHorizontalRulePadding(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		at     int
		want   string
	}{
		{name: "caret at end of text", buffer: "abc", at: 3, want: "abc\n\n---\n"},
		{name: "empty buffer", buffer: "", at: 0, want: "---\n"},
		{name: "after single newline", buffer: "abc\n", at: 4, want: "abc\n\n---\n"},
		{name: "after blank line", buffer: "abc\n\n", at: 5, want: "abc\n\n---\n"},
		{name: "before text", buffer: "xyz", at: 0, want: "---\n\nxyz"},
		{name: "between blank lines", buffer: "a\n\n\n\nb", at: 3, want: "a\n\n---\n\nb"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, sel := HorizontalRule(tc.buffer, Caret(tc.at))
			if got != tc.want {
				t.Errorf("HorizontalRule() = %q, want %q", got, tc.want)
			}
			if sel.Start < 0 || sel.End > len(got) {
				t.Errorf("selection %d..%d out of bounds", sel.Start, sel.End)
			}
		})
	}
}

func TestSnippetReplacesToken(t *testing.T) {
	got, sel := Snippet("pick me", Range(5, 7), "<<{selection}>>")
	assert.Equal(t, "pick <<me>>", got)
	assert.Equal(t, "<<me>>", ReadRange(got, sel.Start, sel.End))
}

func TestSnippetEmptySelection(t *testing.T) {
	got, _ := Snippet("ab", Caret(1), "[{selection}]")
	assert.Equal(t, "a[]b", got)
}

func TestSnippetRepeatedToken(t *testing.T) {
	got, _ := Snippet("hi", Range(0, 2), "{selection} and {selection}")
	assert.Equal(t, "hi and hi", got)
}

func TestSnippetWithoutTokenDropsSelection(t *testing.T) {
	got, sel := Snippet("DELETE", Range(0, 6), "static")
	assert.Equal(t, "static", got)
	assert.Equal(t, "static", ReadRange(got, sel.Start, sel.End))
}
