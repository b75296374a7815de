package ui

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/gdamore/tcell"
)

// Highlighter colorizes the buffer with the chroma markdown lexer.
type Highlighter struct {
	style *chroma.Style
}

func (h *Highlighter) SetTheme(name string) {
	style := styles.Get(name)
	if style == nil { style = styles.Fallback }
	h.style = style
}

// Colorize returns a color per rune per line. Lines and runes beyond
// the returned slices fall back to the default color.
func (h *Highlighter) Colorize(text string) [][]tcell.Color {
	if h.style == nil { h.SetTheme("") }

	lexer := lexers.Get("markdown")
	if lexer == nil { lexer = lexers.Fallback }

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil { return nil }

	lineColors := [][]tcell.Color{}
	for _, tokens := range chroma.SplitTokensIntoLines(iterator.Tokens()) {
		colors := []tcell.Color{}
		for _, token := range tokens {
			color := h.tokenColor(token.Type)
			for range token.Value {
				colors = append(colors, color)
			}
		}
		lineColors = append(lineColors, colors)
	}
	return lineColors
}

func (h *Highlighter) tokenColor(tokenType chroma.TokenType) tcell.Color {
	entry := h.style.Get(tokenType)
	if !entry.Colour.IsSet() { return tcell.ColorDefault }
	colour := entry.Colour
	return tcell.NewRGBColor(int32(colour.Red()), int32(colour.Green()), int32(colour.Blue()))
}
