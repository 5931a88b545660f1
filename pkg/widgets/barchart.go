package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/symbols"
)

// Bar is a single bar in a chart: a value with an optional label below
// and optional value text above.
type Bar struct {
	value      uint64
	label      string
	style      style.Style
	valueStyle style.Style
	textValue  string
}

// NewBar creates a zero-valued bar.
func NewBar() Bar {
	return Bar{}
}

// Value sets the bar's numeric value.
func (b Bar) Value(v uint64) Bar {
	b.value = v
	return b
}

// Label sets the label drawn under the bar.
func (b Bar) Label(label string) Bar {
	b.label = label
	return b
}

// Style sets the bar's fill style, overriding the chart default.
func (b Bar) Style(s style.Style) Bar {
	b.style = s
	return b
}

// ValueStyle sets the style of the bar's value text.
func (b Bar) ValueStyle(s style.Style) Bar {
	b.valueStyle = s
	return b
}

// TextValue sets a text rendering of the value shown above the bar.
func (b Bar) TextValue(text string) Bar {
	b.textValue = text
	return b
}

// BarChart renders vertical bars scaled against a shared maximum.
type BarChart struct {
	data       []Bar
	barWidth   int
	barGap     int
	maxValue   uint64
	barStyle   style.Style
	valueStyle style.Style
}

// NewBarChart creates an empty chart with 3-wide bars and 1-wide gaps.
func NewBarChart() BarChart {
	return BarChart{barWidth: 3, barGap: 1}
}

// Data sets the bars to display.
func (c BarChart) Data(data []Bar) BarChart {
	c.data = append([]Bar(nil), data...)
	return c
}

// BarWidth sets the width of each bar, minimum 1.
func (c BarChart) BarWidth(width int) BarChart {
	c.barWidth = max(1, width)
	return c
}

// BarGap sets the gap between bars.
func (c BarChart) BarGap(gap int) BarChart {
	c.barGap = gap
	return c
}

// MaxValue fixes the scaling maximum. Zero means the data maximum is
// used.
func (c BarChart) MaxValue(max uint64) BarChart {
	c.maxValue = max
	return c
}

// BarStyle sets the default fill style for bars without their own.
func (c BarChart) BarStyle(s style.Style) BarChart {
	c.barStyle = s
	return c
}

// ValueStyle sets the default style for value text.
func (c BarChart) ValueStyle(s style.Style) BarChart {
	c.valueStyle = s
	return c
}

func (c BarChart) calculateMax() uint64 {
	if c.maxValue > 0 {
		return c.maxValue
	}
	var m uint64 = 1
	for _, b := range c.data {
		if b.value > m {
			m = b.value
		}
	}
	return m
}

// Render clears the area and draws the bars left to right, bottom up,
// with eighth-block resolution at the top of each bar.
func (c BarChart) Render(area layout.Rect, buf *buffer.Buffer) {
	if area.Area() == 0 {
		return
	}

	Clear{}.Render(area, buf)

	maxValue := c.calculateMax()
	currentX := area.X

	for i := range c.data {
		if currentX >= area.Right() {
			break
		}
		c.renderBar(&c.data[i], currentX, area, buf, maxValue)
		currentX += c.barWidth + c.barGap
	}
}

func (c BarChart) renderBar(bar *Bar, x int, area layout.Rect, buf *buffer.Buffer, maxValue uint64) {
	labelHeight := 0
	if bar.label != "" {
		labelHeight = 1
	}
	textHeight := 0
	if bar.textValue != "" {
		textHeight = 1
	}
	available := area.Height - labelHeight - textHeight
	if available <= 0 {
		return
	}

	totalEighths := available * 8
	barEighths := int(float64(bar.value)/float64(maxValue)*float64(totalEighths) + 0.5)
	if barEighths > totalEighths {
		barEighths = totalEighths
	}
	fullCells := barEighths / 8
	remainder := barEighths % 8

	barStyle := c.barStyle
	if bar.style.FG() != style.ColorUnset || bar.style.BG() != style.ColorUnset {
		barStyle = bar.style
	}

	for i := 0; i < fullCells; i++ {
		y := area.Y + available - 1 - i
		c.fillBarRow(x, y, area, buf, symbols.BlockFull, barStyle)
	}
	if remainder > 0 && fullCells < available {
		y := area.Y + available - 1 - fullCells
		c.fillBarRow(x, y, area, buf, symbols.BarsVertical[remainder], barStyle)
	}

	if bar.textValue != "" {
		textWidth := runewidth.StringWidth(bar.textValue)
		if textWidth <= c.barWidth {
			valueStyle := c.valueStyle
			if bar.valueStyle.FG() != style.ColorUnset || bar.valueStyle.BG() != style.ColorUnset {
				valueStyle = bar.valueStyle
			}
			textX := x + (c.barWidth-textWidth)/2
			buf.SetString(textX, area.Y+available, bar.textValue, valueStyle)
		}
	}

	if bar.label != "" {
		labelWidth := runewidth.StringWidth(bar.label)
		if labelWidth <= c.barWidth {
			labelX := x + (c.barWidth-labelWidth)/2
			buf.SetString(labelX, area.Bottom()-1, bar.label, style.New())
		}
	}
}

func (c BarChart) fillBarRow(x, y int, area layout.Rect, buf *buffer.Buffer, symbol string, s style.Style) {
	for dx := 0; dx < c.barWidth; dx++ {
		cellX := x + dx
		if cellX >= area.Right() {
			break
		}
		if cell := buf.GetMut(cellX, y); cell != nil {
			cell.Symbol = symbol
			cell.SetStyle(s)
		}
	}
}

var _ Widget = BarChart{}
