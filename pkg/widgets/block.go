package widgets

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/symbols"
)

// Borders is a bitset selecting which sides of a block get a border.
type Borders uint8

// Border flags
const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersNone Borders = 0
	BordersAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// BorderType selects the line style used for borders.
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

type borderSet struct {
	horizontal  string
	vertical    string
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
}

func (t BorderType) set() borderSet {
	switch t {
	case BorderRounded:
		return borderSet{
			horizontal:  symbols.LineHorizontal,
			vertical:    symbols.LineVertical,
			topLeft:     symbols.RoundedTopLeft,
			topRight:    symbols.RoundedTopRight,
			bottomLeft:  symbols.RoundedBottomLeft,
			bottomRight: symbols.RoundedBottomRight,
		}
	case BorderDouble:
		return borderSet{
			horizontal:  symbols.DoubleHorizontal,
			vertical:    symbols.DoubleVertical,
			topLeft:     symbols.DoubleTopLeft,
			topRight:    symbols.DoubleTopRight,
			bottomLeft:  symbols.DoubleBottomLeft,
			bottomRight: symbols.DoubleBottomRight,
		}
	case BorderThick:
		return borderSet{
			horizontal:  symbols.ThickHorizontal,
			vertical:    symbols.ThickVertical,
			topLeft:     symbols.ThickTopLeft,
			topRight:    symbols.ThickTopRight,
			bottomLeft:  symbols.ThickBottomLeft,
			bottomRight: symbols.ThickBottomRight,
		}
	default:
		return borderSet{
			horizontal:  symbols.LineHorizontal,
			vertical:    symbols.LineVertical,
			topLeft:     symbols.LineTopLeft,
			topRight:    symbols.LineTopRight,
			bottomLeft:  symbols.LineBottomLeft,
			bottomRight: symbols.LineBottomRight,
		}
	}
}

// Title is a styled block title drawn into the top border.
type Title struct {
	Content string
	Style   style.Style
}

// NewTitle creates a title with the default style.
func NewTitle(content string) Title {
	return Title{Content: content}
}

// WithStyle sets the title style.
func (t Title) WithStyle(s style.Style) Title {
	t.Style = s
	return t
}

// Block is a bordered container with an optional title. Other widgets
// usually render inside its Inner area.
type Block struct {
	title       *Title
	borders     Borders
	borderType  BorderType
	borderStyle style.Style
	style       style.Style
}

// NewBlock creates a block with no borders and no title.
func NewBlock() Block {
	return Block{}
}

// Title sets the block title.
func (b Block) Title(t Title) Block {
	b.title = &t
	return b
}

// Borders selects which sides get a border.
func (b Block) Borders(borders Borders) Block {
	b.borders = borders
	return b
}

// BorderType sets the line style for borders.
func (b Block) BorderType(t BorderType) Block {
	b.borderType = t
	return b
}

// BorderStyle sets the style applied to border cells.
func (b Block) BorderStyle(s style.Style) Block {
	b.borderStyle = s
	return b
}

// Style sets the style applied to the whole block area.
func (b Block) Style(s style.Style) Block {
	b.style = s
	return b
}

// Inner returns the area inside the block's borders.
func (b Block) Inner(area layout.Rect) layout.Rect {
	inner := area
	if b.borders&BorderLeft != 0 {
		inner.X++
		inner.Width--
	}
	if b.borders&BorderTop != 0 {
		inner.Y++
		inner.Height--
	}
	if b.borders&BorderRight != 0 {
		inner.Width--
	}
	if b.borders&BorderBottom != 0 {
		inner.Height--
	}
	inner.Width = max(0, inner.Width)
	inner.Height = max(0, inner.Height)
	return inner
}

// Render draws the block background, borders, and title.
func (b Block) Render(area layout.Rect, buf *buffer.Buffer) {
	if area.Area() == 0 {
		return
	}

	buf.SetStyle(area, b.style)

	set := b.borderType.set()

	if b.borders&BorderTop != 0 {
		for x := area.Left(); x < area.Right(); x++ {
			if cell := buf.GetMut(x, area.Top()); cell != nil {
				cell.Symbol = set.horizontal
				cell.SetStyle(b.borderStyle)
			}
		}
	}
	if b.borders&BorderBottom != 0 {
		for x := area.Left(); x < area.Right(); x++ {
			if cell := buf.GetMut(x, area.Bottom()-1); cell != nil {
				cell.Symbol = set.horizontal
				cell.SetStyle(b.borderStyle)
			}
		}
	}
	if b.borders&BorderLeft != 0 {
		for y := area.Top(); y < area.Bottom(); y++ {
			if cell := buf.GetMut(area.Left(), y); cell != nil {
				cell.Symbol = set.vertical
				cell.SetStyle(b.borderStyle)
			}
		}
	}
	if b.borders&BorderRight != 0 {
		for y := area.Top(); y < area.Bottom(); y++ {
			if cell := buf.GetMut(area.Right()-1, y); cell != nil {
				cell.Symbol = set.vertical
				cell.SetStyle(b.borderStyle)
			}
		}
	}

	if b.borders&(BorderTop|BorderLeft) == BorderTop|BorderLeft {
		if cell := buf.GetMut(area.Left(), area.Top()); cell != nil {
			cell.Symbol = set.topLeft
		}
	}
	if b.borders&(BorderTop|BorderRight) == BorderTop|BorderRight {
		if cell := buf.GetMut(area.Right()-1, area.Top()); cell != nil {
			cell.Symbol = set.topRight
		}
	}
	if b.borders&(BorderBottom|BorderLeft) == BorderBottom|BorderLeft {
		if cell := buf.GetMut(area.Left(), area.Bottom()-1); cell != nil {
			cell.Symbol = set.bottomLeft
		}
	}
	if b.borders&(BorderBottom|BorderRight) == BorderBottom|BorderRight {
		if cell := buf.GetMut(area.Right()-1, area.Bottom()-1); cell != nil {
			cell.Symbol = set.bottomRight
		}
	}

	if b.title != nil && area.Width > 2 {
		titleX := area.Left()
		maxWidth := area.Width
		if b.borders&BorderTop != 0 || b.borders&BorderLeft != 0 {
			titleX++
			maxWidth -= 2
		}
		content := b.title.Content
		if len([]rune(content)) > maxWidth {
			content = string([]rune(content)[:max(0, maxWidth)])
		}
		buf.SetString(titleX, area.Top(), content, b.title.Style)
	}
}

var _ Widget = Block{}
