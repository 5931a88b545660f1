package widgets

import (
	"testing"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/symbols"
)

func symbolAt(t *testing.T, buf *buffer.Buffer, x, y int) string {
	t.Helper()
	cell, ok := buf.Get(x, y)
	if !ok {
		t.Fatalf("cell (%d,%d) out of bounds", x, y)
	}
	return cell.Symbol
}

func TestBlockRenderBorders(t *testing.T) {
	area := layout.NewRect(0, 0, 5, 3)
	buf := buffer.New(area)
	NewBlock().Borders(BordersAll).Render(area, buf)

	if got := symbolAt(t, buf, 0, 0); got != symbols.LineTopLeft {
		t.Errorf("top-left = %q", got)
	}
	if got := symbolAt(t, buf, 4, 0); got != symbols.LineTopRight {
		t.Errorf("top-right = %q", got)
	}
	if got := symbolAt(t, buf, 0, 2); got != symbols.LineBottomLeft {
		t.Errorf("bottom-left = %q", got)
	}
	if got := symbolAt(t, buf, 4, 2); got != symbols.LineBottomRight {
		t.Errorf("bottom-right = %q", got)
	}
	if got := symbolAt(t, buf, 2, 0); got != symbols.LineHorizontal {
		t.Errorf("top edge = %q", got)
	}
	if got := symbolAt(t, buf, 0, 1); got != symbols.LineVertical {
		t.Errorf("left edge = %q", got)
	}
	if got := symbolAt(t, buf, 2, 1); got != " " {
		t.Errorf("interior = %q", got)
	}
}

func TestBlockBorderTypes(t *testing.T) {
	area := layout.NewRect(0, 0, 4, 3)
	for _, tc := range []struct {
		borderType BorderType
		topLeft    string
	}{
		{BorderPlain, symbols.LineTopLeft},
		{BorderRounded, symbols.RoundedTopLeft},
		{BorderDouble, symbols.DoubleTopLeft},
		{BorderThick, symbols.ThickTopLeft},
	} {
		buf := buffer.New(area)
		NewBlock().Borders(BordersAll).BorderType(tc.borderType).Render(area, buf)
		if got := symbolAt(t, buf, 0, 0); got != tc.topLeft {
			t.Errorf("type %d top-left = %q, want %q", tc.borderType, got, tc.topLeft)
		}
	}
}

func TestBlockInner(t *testing.T) {
	area := layout.NewRect(0, 0, 10, 6)

	if got := NewBlock().Inner(area); got != area {
		t.Errorf("borderless inner = %+v", got)
	}
	if got := NewBlock().Borders(BordersAll).Inner(area); got != layout.NewRect(1, 1, 8, 4) {
		t.Errorf("full-border inner = %+v", got)
	}
	if got := NewBlock().Borders(BorderTop).Inner(area); got != layout.NewRect(0, 1, 10, 5) {
		t.Errorf("top-border inner = %+v", got)
	}
}

func TestBlockTitle(t *testing.T) {
	area := layout.NewRect(0, 0, 12, 3)
	buf := buffer.New(area)
	NewBlock().
		Borders(BordersAll).
		Title(NewTitle(" Hi ").WithStyle(style.New().Foreground(style.ColorCyan))).
		Render(area, buf)

	if got := symbolAt(t, buf, 2, 0); got != "H" {
		t.Errorf("title glyph = %q", got)
	}
	cell, _ := buf.Get(2, 0)
	if cell.Fg != style.ColorCyan {
		t.Errorf("title fg = %v", cell.Fg)
	}
}

func TestBlockBorderStyle(t *testing.T) {
	area := layout.NewRect(0, 0, 4, 3)
	buf := buffer.New(area)
	NewBlock().
		Borders(BordersAll).
		BorderStyle(style.New().Foreground(style.ColorRed)).
		Render(area, buf)

	cell, _ := buf.Get(0, 1)
	if cell.Fg != style.ColorRed {
		t.Errorf("border fg = %v", cell.Fg)
	}
}

func TestBlockZeroArea(t *testing.T) {
	buf := buffer.New(layout.NewRect(0, 0, 5, 5))
	NewBlock().Borders(BordersAll).Render(layout.Rect{}, buf)
	if got := symbolAt(t, buf, 0, 0); got != " " {
		t.Errorf("cell = %q, want untouched", got)
	}
}
