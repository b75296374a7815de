// Package formatter ties the pure markdown operations to a host
// surface. The surface supplies the live buffer and selection, the
// formatter transforms them and commits the result back.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	. "mdgo/internal/config"
	. "mdgo/internal/logger"
	"mdgo/internal/markdown"
	. "mdgo/internal/selection"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrPromptPending rejects an operation issued while a link prompt is
// still open. The buffer snapshot captured for the prompt callback
// would go stale if another commit interleaved.
var ErrPromptPending = errors.New("a prompt is already pending")

var ErrNoSnippet = errors.New("no such snippet")

// Surface is the host side of the engine: read the current buffer and
// selection, and commit a new pair. Commit must notify the host's
// change observer after applying.
type Surface interface {
	Buffer() (string, Selection)
	Commit(buffer string, sel Selection)
}

// Prompter asks the user for a value. onResult is invoked exactly
// once; nil means the prompt was cancelled.
type Prompter interface {
	Prompt(message string, defaultValue string, onResult func(answer *string))
}

type Formatter struct {
	surface  Surface
	prompter Prompter
	conf     Config

	promptPending bool
	dmp           *diffmatchpatch.DiffMatchPatch
}

func New(surface Surface, prompter Prompter, conf Config) *Formatter {
	return &Formatter{
		surface:  surface,
		prompter: prompter,
		conf:     conf,
		dmp:      diffmatchpatch.New(),
	}
}

func (f *Formatter) Config() Config { return f.conf }

// apply runs one pure operation against the live surface.
func (f *Formatter) apply(op func(string, Selection) (string, Selection)) error {
	if f.promptPending { return ErrPromptPending }

	buffer, sel := f.surface.Buffer()
	newBuffer, newSel := op(buffer, sel)
	f.commit(buffer, newBuffer, newSel)
	return nil
}

func (f *Formatter) commit(old, buffer string, sel Selection) {
	sel = sel.Clamp(len(buffer))
	f.surface.Commit(buffer, sel)

	if old != buffer {
		diffs := f.dmp.DiffMain(old, buffer, false)
		Log.Info("commit", summarize(diffs))
	}
}

// summarize renders a diff as +added/-removed fragments for the log.
func summarize(diffs []diffmatchpatch.Diff) string {
	var parts []string
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			parts = append(parts, fmt.Sprintf("+%q", diff.Text))
		case diffmatchpatch.DiffDelete:
			parts = append(parts, fmt.Sprintf("-%q", diff.Text))
		}
	}
	if len(parts) == 0 { return "no change" }
	return strings.Join(parts, " ")
}

func (f *Formatter) Bold() error          { return f.apply(markdown.Bold) }
func (f *Formatter) Italic() error        { return f.apply(markdown.Italic) }
func (f *Formatter) Strikethrough() error { return f.apply(markdown.Strikethrough) }
func (f *Formatter) InlineCode() error    { return f.apply(markdown.InlineCode) }
func (f *Formatter) CodeBlock() error     { return f.apply(markdown.CodeBlock) }
func (f *Formatter) Spoiler() error       { return f.apply(markdown.Spoiler) }
func (f *Formatter) Quote() error         { return f.apply(markdown.Quote) }
func (f *Formatter) BulletList() error    { return f.apply(markdown.BulletList) }
func (f *Formatter) NumberedList() error  { return f.apply(markdown.NumberedList) }

func (f *Formatter) ClearFormatting() error { return f.apply(markdown.ClearFormatting) }

func (f *Formatter) Heading() error {
	level := f.conf.Heading
	return f.apply(func(buffer string, sel Selection) (string, Selection) {
		return markdown.Heading(buffer, sel, level)
	})
}

func (f *Formatter) Table(cols, rows int) error {
	return f.apply(func(buffer string, sel Selection) (string, Selection) {
		return markdown.Table(buffer, sel, cols, rows)
	})
}

func (f *Formatter) HorizontalRule() error { return f.apply(markdown.HorizontalRule) }

// Snippets lists the enabled snippet entries.
func (f *Formatter) Snippets() []Snippet { return f.conf.EnabledSnippets() }

func (f *Formatter) Snippet(index int) error {
	snippets := f.Snippets()
	if index < 0 || index >= len(snippets) { return ErrNoSnippet }
	template := snippets[index].Template
	return f.apply(func(buffer string, sel Selection) (string, Selection) {
		return markdown.Snippet(buffer, sel, template)
	})
}

// Link inserts [text](url) markdown. Which half is prompted for
// depends on the selection: selected urls ask for the display text,
// anything else asks for the url. Cancelling commits nothing.
func (f *Formatter) Link() error {
	if f.promptPending { return ErrPromptPending }

	buffer, sel := f.surface.Buffer()
	sel = sel.Clamp(len(buffer))
	start, end := sel.Normalize()
	selected := ReadRange(buffer, start, end)
	trimmed := strings.TrimSpace(selected)

	f.promptPending = true

	if markdown.IsURL(trimmed) {
		f.prompter.Prompt("Link text", "link text", func(answer *string) {
			f.promptPending = false
			if answer == nil { return } // cancelled, nothing committed

			md := markdown.Link(*answer, trimmed)
			newBuffer := ReplaceRange(buffer, start, end, md)
			f.commit(buffer, newBuffer, Range(start, start+len(md)))
		})
		return nil
	}

	text := selected
	if text == "" { text = "link text" }

	f.prompter.Prompt("Link URL", "https://", func(answer *string) {
		f.promptPending = false
		if answer == nil { return }
		url := strings.TrimSpace(*answer)
		if url == "" { return } // a blank url is treated as cancel

		md := markdown.Link(text, url)
		newBuffer := ReplaceRange(buffer, start, end, md)

		if sel.IsEmpty() {
			// select the display text so the user can overwrite it
			f.commit(buffer, newBuffer, Range(start+1, start+1+len(text)))
		} else {
			f.commit(buffer, newBuffer, Range(start, start+len(md)))
		}
	})
	return nil
}
