package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
)

// TestRenderer is a headless Renderer that records everything drawn to
// it. It backs unit tests that need to inspect final screen contents
// without a real terminal.
type TestRenderer struct {
	buf           *buffer.Buffer
	cursorX       int
	cursorY       int
	cursorSet     bool
	cursorVisible bool
	drawErr       error
}

var _ Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer with the given dimensions.
func NewTestRenderer(width, height int) *TestRenderer {
	return &TestRenderer{
		buf: buffer.New(layout.NewRect(0, 0, width, height)),
	}
}

// Draw copies the buffer into the recorded screen state.
func (r *TestRenderer) Draw(buf *buffer.Buffer) error {
	if r.drawErr != nil {
		return r.drawErr
	}
	r.buf = buf.Clone()
	return nil
}

// Flush is a no-op for the test renderer.
func (r *TestRenderer) Flush() error {
	return nil
}

// Size reports the fixed dimensions the renderer was created with.
func (r *TestRenderer) Size() (layout.Rect, error) {
	return r.buf.Area(), nil
}

// Clear resets the recorded screen to default cells.
func (r *TestRenderer) Clear() error {
	r.buf.Clear()
	return nil
}

// ShowCursor toggles the recorded cursor visibility.
func (r *TestRenderer) ShowCursor(visible bool) error {
	r.cursorVisible = visible
	return nil
}

// SetCursor records the cursor position.
func (r *TestRenderer) SetCursor(x, y int) error {
	r.cursorX = x
	r.cursorY = y
	r.cursorSet = true
	return nil
}

// Buffer returns the last drawn screen state.
func (r *TestRenderer) Buffer() *buffer.Buffer {
	return r.buf
}

// Cursor returns the recorded cursor position and whether one was set.
func (r *TestRenderer) Cursor() (x, y int, ok bool) {
	return r.cursorX, r.cursorY, r.cursorSet
}

// CursorVisible reports the recorded cursor visibility.
func (r *TestRenderer) CursorVisible() bool {
	return r.cursorVisible
}

// FailDraws makes subsequent Draw calls return err. Pass nil to restore
// normal behavior.
func (r *TestRenderer) FailDraws(err error) {
	r.drawErr = err
}

// AssertBuffer fails the test if the recorded screen differs from
// expected, printing both for comparison.
func (r *TestRenderer) AssertBuffer(tb testing.TB, expected *buffer.Buffer) {
	tb.Helper()
	if r.buf.Area() != expected.Area() {
		tb.Fatalf("buffer area = %+v, want %+v", r.buf.Area(), expected.Area())
	}
	if len(r.buf.Diff(expected)) == 0 {
		return
	}
	tb.Fatalf("buffer mismatch\ngot:\n%s\nwant:\n%s", r.DebugOutput(), debugOutput(expected))
}

// DebugOutput returns the recorded screen symbols, one row per line.
func (r *TestRenderer) DebugOutput() string {
	return debugOutput(r.buf)
}

func debugOutput(buf *buffer.Buffer) string {
	area := buf.Area()
	var sb strings.Builder
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			cell, ok := buf.Get(x, y)
			if !ok {
				continue
			}
			if cell.Symbol == "" {
				// wide glyph continuation, the head already covers it
				continue
			}
			fmt.Fprint(&sb, cell.Symbol)
		}
		if y < area.Bottom()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
