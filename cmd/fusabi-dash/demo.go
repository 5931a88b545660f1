package main

import (
	"fmt"
	"math"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/engine"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/theme"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/widgets"
)

const demoHistory = 120

// demoView renders a synthetic metrics dashboard until a Fusabi program
// takes over the render callback. Each frame advances the series.
type demoView struct {
	theme *theme.Theme
	tick  int
	cpu   []uint64
}

func newDemoView() *demoView {
	return &demoView{theme: theme.DefaultTheme()}
}

// cpuSample produces a smooth 0-100 series with two superimposed waves.
func (v *demoView) cpuSample() uint64 {
	t := float64(v.tick)
	val := 50 + 30*math.Sin(t/8) + 15*math.Sin(t/3)
	return uint64(max(0, min(100, int(val))))
}

func (v *demoView) advance() {
	v.tick++
	v.cpu = append(v.cpu, v.cpuSample())
	if len(v.cpu) > demoHistory {
		v.cpu = v.cpu[len(v.cpu)-demoHistory:]
	}
}

func (v *demoView) render(buf *buffer.Buffer, area layout.Rect, state *engine.DashboardState) {
	v.advance()

	rows := layout.New().
		Constraints(layout.Length(3), layout.Fill(1), layout.Length(1)).
		Split(area)

	v.renderGauge(rows[0], buf)

	cols := layout.New().
		Direction(layout.Horizontal).
		Constraints(layout.Percentage(60), layout.Fill(1)).
		Split(rows[1])
	v.renderSparkline(cols[0], buf)
	v.renderBars(cols[1], buf)

	v.renderFooter(rows[2], buf, state)
}

func (v *demoView) renderGauge(area layout.Rect, buf *buffer.Buffer) {
	current := uint64(0)
	if len(v.cpu) > 0 {
		current = v.cpu[len(v.cpu)-1]
	}
	widgets.NewGauge().
		Block(widgets.NewBlock().
			Borders(widgets.BordersAll).
			BorderType(widgets.BorderRounded).
			BorderStyle(v.theme.Border).
			Title(widgets.NewTitle(" CPU ").WithStyle(v.theme.Title))).
		Percent(int(current)).
		GaugeStyle(v.theme.Gauge).
		LabelStyle(v.theme.GaugeLabel).
		Render(area, buf)
}

func (v *demoView) renderSparkline(area layout.Rect, buf *buffer.Buffer) {
	widgets.NewSparkline().
		Block(widgets.NewBlock().
			Borders(widgets.BordersAll).
			BorderType(widgets.BorderRounded).
			BorderStyle(v.theme.Border).
			Title(widgets.NewTitle(" History ").WithStyle(v.theme.Title))).
		Data(v.cpu).
		Max(100).
		Style(v.theme.Sparkline).
		Render(area, buf)
}

func (v *demoView) renderBars(area layout.Rect, buf *buffer.Buffer) {
	bars := make([]widgets.Bar, 0, 4)
	for i, label := range []string{"api", "db", "cache", "queue"} {
		val := uint64(20 + (v.tick*7+i*23)%80)
		bars = append(bars, widgets.NewBar().
			Value(val).
			Label(label).
			TextValue(fmt.Sprintf("%d", val)))
	}
	block := widgets.NewBlock().
		Borders(widgets.BordersAll).
		BorderType(widgets.BorderRounded).
		BorderStyle(v.theme.Border).
		Title(widgets.NewTitle(" Services ").WithStyle(v.theme.Title))
	block.Render(area, buf)

	widgets.NewBarChart().
		Data(bars).
		BarWidth(5).
		MaxValue(100).
		BarStyle(v.theme.BarChart).
		ValueStyle(v.theme.BarValue).
		Render(block.Inner(area), buf)
}

func (v *demoView) renderFooter(area layout.Rect, buf *buffer.Buffer, state *engine.DashboardState) {
	text := fmt.Sprintf(" demo dashboard · widgets: %d · Ctrl+R reload · Ctrl+C quit", state.WidgetCount())
	widgets.NewParagraph(text).
		Style(v.theme.TextMuted).
		Render(area, buf)
}
