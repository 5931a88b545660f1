package widgets

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/symbols"
)

// Gauge renders a horizontal progress bar with a centered label.
type Gauge struct {
	block      *Block
	ratio      float64
	label      string
	gaugeStyle style.Style
	labelStyle style.Style
}

// NewGauge creates an empty gauge.
func NewGauge() Gauge {
	return Gauge{}
}

// Block wraps the gauge in a block.
func (g Gauge) Block(b Block) Gauge {
	g.block = &b
	return g
}

// Ratio sets the fill ratio, clamped to [0, 1].
func (g Gauge) Ratio(ratio float64) Gauge {
	g.ratio = min(1, max(0, ratio))
	return g
}

// Percent sets the fill ratio from a percentage, clamped to [0, 100].
func (g Gauge) Percent(pct int) Gauge {
	return g.Ratio(float64(pct) / 100)
}

// Label sets the label text. When empty, the percentage is shown.
func (g Gauge) Label(label string) Gauge {
	g.label = label
	return g
}

// GaugeStyle sets the style of the filled portion.
func (g Gauge) GaugeStyle(s style.Style) Gauge {
	g.gaugeStyle = s
	return g
}

// LabelStyle sets the style of the label text.
func (g Gauge) LabelStyle(s style.Style) Gauge {
	g.labelStyle = s
	return g
}

// Render draws the gauge bar with eighth-block resolution.
func (g Gauge) Render(area layout.Rect, buf *buffer.Buffer) {
	inner := area
	if g.block != nil {
		g.block.Render(area, buf)
		inner = g.block.Inner(area)
	}
	if inner.Area() == 0 {
		return
	}

	filledEighths := int(g.ratio*float64(inner.Width*8) + 0.5)
	fullCells := filledEighths / 8
	partial := filledEighths % 8

	for y := inner.Top(); y < inner.Bottom(); y++ {
		for i := 0; i < fullCells && i < inner.Width; i++ {
			if cell := buf.GetMut(inner.X+i, y); cell != nil {
				cell.Symbol = symbols.BlockFull
				cell.SetStyle(g.gaugeStyle)
			}
		}
		if partial > 0 && fullCells < inner.Width {
			if cell := buf.GetMut(inner.X+fullCells, y); cell != nil {
				cell.Symbol = symbols.BarsHorizontal[partial]
				cell.SetStyle(g.gaugeStyle)
			}
		}
	}

	label := g.label
	if label == "" {
		label = fmt.Sprintf("%d%%", int(g.ratio*100+0.5))
	}
	labelWidth := runewidth.StringWidth(label)
	if labelWidth <= inner.Width {
		labelX := inner.X + (inner.Width-labelWidth)/2
		labelY := inner.Y + inner.Height/2
		buf.SetString(labelX, labelY, label, g.labelStyle)
	}
}

var _ Widget = Gauge{}
