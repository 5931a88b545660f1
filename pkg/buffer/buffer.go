package buffer

import (
	"github.com/mattn/go-runewidth"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
)

// Buffer is a 2D grid of cells covering a rectangular area. Cells are
// stored in row-major order; the content length always equals
// width times height.
type Buffer struct {
	area    layout.Rect
	content []Cell
}

// New creates a buffer covering the given area, filled with blank
// cells.
func New(area layout.Rect) *Buffer {
	return Filled(area, DefaultCell())
}

// Filled creates a buffer covering the given area with every cell set
// to a copy of the template.
func Filled(area layout.Rect, cell Cell) *Buffer {
	content := make([]Cell, area.Width*area.Height)
	for i := range content {
		content[i] = cell
	}
	return &Buffer{area: area, content: content}
}

// Area returns the rectangle this buffer covers.
func (b *Buffer) Area() layout.Rect {
	return b.area
}

// indexOf maps buffer-local coordinates to a content index, reporting
// false when out of bounds.
func (b *Buffer) indexOf(x, y int) (int, bool) {
	if x < 0 || x >= b.area.Width || y < 0 || y >= b.area.Height {
		return 0, false
	}
	return y*b.area.Width + x, true
}

// Get returns the cell at (x, y). The second return is false when the
// coordinates fall outside the buffer.
func (b *Buffer) Get(x, y int) (Cell, bool) {
	i, ok := b.indexOf(x, y)
	if !ok {
		return Cell{}, false
	}
	return b.content[i], true
}

// GetMut returns a pointer to the cell at (x, y), or nil when the
// coordinates fall outside the buffer.
func (b *Buffer) GetMut(x, y int) *Cell {
	i, ok := b.indexOf(x, y)
	if !ok {
		return nil
	}
	return &b.content[i]
}

// SetString writes text starting at (x, y), merging the style into
// each written cell. The cursor advances by each glyph's display
// width; zero-width characters still advance one column. Continuation
// columns under wide glyphs are set to an empty symbol. Writing stops
// at the right edge. Returns the number of cells touched.
func (b *Buffer) SetString(x, y int, text string, s style.Style) int {
	written := 0
	currentX := x

	for _, r := range text {
		if currentX >= b.area.Width {
			break
		}

		width := runewidth.RuneWidth(r)
		if width < 1 {
			width = 1
		}

		if cell := b.GetMut(currentX, y); cell != nil {
			cell.Symbol = string(r)
			cell.SetStyle(s)
			written++
		}

		for i := 1; i < width; i++ {
			if cell := b.GetMut(currentX+i, y); cell != nil {
				cell.Symbol = ""
				written++
			}
		}

		currentX += width
	}

	return written
}

// SetStyle merges a style into every cell within the intersection of
// area and the buffer.
func (b *Buffer) SetStyle(area layout.Rect, s style.Style) {
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			if cell := b.GetMut(x, y); cell != nil {
				cell.SetStyle(s)
			}
		}
	}
}

// Clear resets every cell to the default blank cell.
func (b *Buffer) Clear() {
	for i := range b.content {
		b.content[i].Reset()
	}
}

// Resize reallocates the buffer for a new area. The overlapping
// top-left sub-rectangle of the old content is preserved; everything
// else is default.
func (b *Buffer) Resize(area layout.Rect) {
	newContent := make([]Cell, area.Width*area.Height)
	for i := range newContent {
		newContent[i] = DefaultCell()
	}

	minHeight := min(b.area.Height, area.Height)
	minWidth := min(b.area.Width, area.Width)
	for y := 0; y < minHeight; y++ {
		for x := 0; x < minWidth; x++ {
			newContent[y*area.Width+x] = b.content[y*b.area.Width+x]
		}
	}

	b.area = area
	b.content = newContent
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	content := make([]Cell, len(b.content))
	copy(content, b.content)
	return &Buffer{area: b.area, content: content}
}

// Update is one cell of a diff: the coordinates and a reference into
// the newer buffer's content.
type Update struct {
	X    int
	Y    int
	Cell *Cell
}

// Diff computes the cells that must be rewritten to turn this buffer's
// content into other's, in row-major order. When the areas differ
// every cell of other is returned, forcing a full repaint.
func (b *Buffer) Diff(other *Buffer) []Update {
	var updates []Update

	if b.area != other.area {
		for y := 0; y < other.area.Height; y++ {
			for x := 0; x < other.area.Width; x++ {
				updates = append(updates, Update{X: x, Y: y, Cell: &other.content[y*other.area.Width+x]})
			}
		}
		return updates
	}

	for y := 0; y < b.area.Height; y++ {
		for x := 0; x < b.area.Width; x++ {
			i := y*b.area.Width + x
			if b.content[i] != other.content[i] {
				updates = append(updates, Update{X: x, Y: y, Cell: &other.content[i]})
			}
		}
	}

	return updates
}

// Merge copies other's cells into this buffer, positioned by the
// difference of the two areas' origins. Offsets are clamped to zero
// and cells landing outside this buffer are dropped.
func (b *Buffer) Merge(other *Buffer) {
	offsetX := max(0, other.area.X-b.area.X)
	offsetY := max(0, other.area.Y-b.area.Y)

	for y := 0; y < other.area.Height; y++ {
		for x := 0; x < other.area.Width; x++ {
			cell, ok := other.Get(x, y)
			if !ok {
				continue
			}
			if target := b.GetMut(offsetX+x, offsetY+y); target != nil {
				*target = cell
			}
		}
	}
}
