package render

import (
	"fmt"

	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/terminal"
)

// Style is the terminal appearance of a kind
type Style struct {
	Fg, Bg terminal.RGB
	Attrs  terminal.Attr
}

// Palette maps element kinds to terminal cells
type Palette struct {
	styles [Invalid]Style
}

// DefaultPalette returns the game colors
func DefaultPalette() *Palette {
	p := &Palette{}
	p.styles[Empty] = Style{Fg: terminal.RGBBlack, Bg: terminal.RGBBlack}
	p.styles[SnakeHead] = Style{Fg: terminal.RGBYellow, Bg: terminal.RGBBlack}
	p.styles[SnakeBody] = Style{Fg: terminal.RGBBlue, Bg: terminal.RGBBlack}
	p.styles[SnakeTail] = Style{Fg: terminal.RGBMagenta, Bg: terminal.RGBBlack}
	p.styles[Apple] = Style{Fg: terminal.RGBRed, Bg: terminal.RGBBlack}
	p.styles[HeaderFill] = Style{Fg: terminal.RGBGray, Bg: terminal.RGBGray}
	p.styles[HeaderText] = Style{Fg: terminal.RGBWhite, Bg: terminal.RGBGray, Attrs: terminal.AttrBold}
	return p
}

// Glyph returns the cell for the first terminal column of e and the cell for any further columns
// Text repeats as blank filler, every other kind repeats its block
func (p *Palette) Glyph(e Element) (first, fill terminal.Cell) {
	if e.Kind >= Invalid {
		panic(fmt.Sprintf("render: no glyph for %v element", e.Kind))
	}
	s := p.styles[e.Kind]
	first = terminal.Cell{Rune: parameter.GlyphBlock, Fg: s.Fg, Bg: s.Bg, Attrs: s.Attrs}
	fill = first
	if e.Kind == HeaderText {
		first.Rune = e.Char
		fill.Rune = parameter.GlyphEmpty
	}
	return first, fill
}
