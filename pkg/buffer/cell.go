// Package buffer provides the cell grid widgets render into and the
// diff computation backends use to avoid rewriting unchanged cells.
package buffer

import "github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"

// Cell is a single character slot in the buffer. Symbol holds the
// glyph to display; it is empty for the continuation columns of wide
// glyphs.
type Cell struct {
	Symbol   string
	Fg       style.Color
	Bg       style.Color
	Modifier style.Modifier
}

// DefaultCell returns a blank cell: a space with reset colors and no
// modifiers.
func DefaultCell() Cell {
	return Cell{Symbol: " ", Fg: style.ColorReset, Bg: style.ColorReset}
}

// NewCell creates a cell with the given symbol and default styling.
func NewCell(symbol string) Cell {
	c := DefaultCell()
	c.Symbol = symbol
	return c
}

// Foreground sets the foreground color.
func (c Cell) Foreground(col style.Color) Cell {
	c.Fg = col
	return c
}

// Background sets the background color.
func (c Cell) Background(col style.Color) Cell {
	c.Bg = col
	return c
}

// WithModifier sets the modifier flags.
func (c Cell) WithModifier(m style.Modifier) Cell {
	c.Modifier = m
	return c
}

// SetStyle merges a style into the cell. Colors are overwritten only
// when the style specifies them; modifiers are unioned.
func (c *Cell) SetStyle(s style.Style) {
	if fg := s.FG(); fg != style.ColorUnset {
		c.Fg = fg
	}
	if bg := s.BG(); bg != style.ColorUnset {
		c.Bg = bg
	}
	c.Modifier |= s.Modifiers()
}

// Reset restores the cell to its default blank state.
func (c *Cell) Reset() {
	*c = DefaultCell()
}
