package widgets

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/symbols"
)

// Sparkline renders a data series as a row of eighth-block bars, one
// column per point. When the series is wider than the area only the
// most recent points are shown.
type Sparkline struct {
	block *Block
	data  []uint64
	max   uint64
	style style.Style
}

// NewSparkline creates an empty sparkline.
func NewSparkline() Sparkline {
	return Sparkline{}
}

// Block wraps the sparkline in a block.
func (s Sparkline) Block(b Block) Sparkline {
	s.block = &b
	return s
}

// Data sets the series to display.
func (s Sparkline) Data(data []uint64) Sparkline {
	s.data = data
	return s
}

// Max sets the value mapped to a full-height bar. Zero means the data
// maximum is used.
func (s Sparkline) Max(max uint64) Sparkline {
	s.max = max
	return s
}

// Style sets the bar style.
func (s Sparkline) Style(st style.Style) Sparkline {
	s.style = st
	return s
}

// Render draws the sparkline bottom-up with eighth-block resolution.
func (s Sparkline) Render(area layout.Rect, buf *buffer.Buffer) {
	inner := area
	if s.block != nil {
		s.block.Render(area, buf)
		inner = s.block.Inner(area)
	}
	if inner.Area() == 0 || len(s.data) == 0 {
		return
	}

	data := s.data
	if len(data) > inner.Width {
		data = data[len(data)-inner.Width:]
	}

	maxValue := s.max
	if maxValue == 0 {
		for _, v := range data {
			if v > maxValue {
				maxValue = v
			}
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	for i, v := range data {
		x := inner.X + i
		eighths := int(float64(v) / float64(maxValue) * float64(inner.Height*8))
		if eighths > inner.Height*8 {
			eighths = inner.Height * 8
		}
		for row := 0; row < inner.Height; row++ {
			y := inner.Bottom() - 1 - row
			cell := buf.GetMut(x, y)
			if cell == nil {
				continue
			}
			switch {
			case eighths >= 8:
				cell.Symbol = symbols.BlockFull
				cell.SetStyle(s.style)
				eighths -= 8
			case eighths > 0:
				cell.Symbol = symbols.BarsVertical[eighths]
				cell.SetStyle(s.style)
				eighths = 0
			}
		}
	}
}

var _ Widget = Sparkline{}
