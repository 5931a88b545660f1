// Package symbols collects the Unicode characters used to draw
// borders, bars, and other UI elements.
package symbols

// Light line drawing.
const (
	LineVertical       = "│"
	LineHorizontal     = "─"
	LineTopLeft        = "┌"
	LineTopRight       = "┐"
	LineBottomLeft     = "└"
	LineBottomRight    = "┘"
	LineVerticalRight  = "├"
	LineVerticalLeft   = "┤"
	LineHorizontalDown = "┬"
	LineHorizontalUp   = "┴"
	LineCross          = "┼"
)

// Thick line drawing.
const (
	ThickVertical    = "┃"
	ThickHorizontal  = "━"
	ThickTopLeft     = "┏"
	ThickTopRight    = "┓"
	ThickBottomLeft  = "┗"
	ThickBottomRight = "┛"
)

// Double line drawing.
const (
	DoubleVertical    = "║"
	DoubleHorizontal  = "═"
	DoubleTopLeft     = "╔"
	DoubleTopRight    = "╗"
	DoubleBottomLeft  = "╚"
	DoubleBottomRight = "╝"
)

// Rounded corners, shared with the light line set.
const (
	RoundedTopLeft     = "╭"
	RoundedTopRight    = "╮"
	RoundedBottomLeft  = "╰"
	RoundedBottomRight = "╯"
)

// Block elements.
const (
	BlockFull        = "█"
	BlockHalf        = "▌"
	BlockUpperHalf   = "▀"
	BlockLowerHalf   = "▄"
	BlockRightHalf   = "▐"
	BlockLightShade  = "░"
	BlockMediumShade = "▒"
	BlockDarkShade   = "▓"
)

// BarsVertical holds the vertical eighth-bars from empty to full, used
// by sparklines and vertical bar charts.
var BarsVertical = [9]string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// BarsHorizontal holds the left-anchored eighth-bars from empty to
// full, used by gauges and horizontal bar charts.
var BarsHorizontal = [9]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// Scrollbar glyphs.
const (
	ScrollbarTrack      = "│"
	ScrollbarThumb      = "█"
	ScrollbarArrowUp    = "↑"
	ScrollbarArrowDown  = "↓"
	ScrollbarArrowLeft  = "←"
	ScrollbarArrowRight = "→"
	ScrollbarTrackH     = "─"
)

// Miscellaneous.
const (
	Bullet           = "•"
	Ellipsis         = "…"
	VerticalEllipsis = "⋮"
)
