package render

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/widgets"
)

// Terminal wraps a Renderer with whole-frame drawing. Each Draw call
// builds a fresh buffer sized to the backend, hands it to the caller
// through a Frame, then pushes it out and flushes.
type Terminal struct {
	renderer Renderer
}

// NewTerminal creates a terminal over the given renderer.
func NewTerminal(renderer Renderer) *Terminal {
	return &Terminal{renderer: renderer}
}

// Draw renders one frame via renderFn and presents it.
func (t *Terminal) Draw(renderFn func(*Frame)) (CompletedFrame, error) {
	size, err := t.renderer.Size()
	if err != nil {
		return CompletedFrame{}, err
	}

	buf := buffer.New(size)
	frame := &Frame{buffer: buf, area: size}
	renderFn(frame)

	if err := t.renderer.Draw(buf); err != nil {
		return CompletedFrame{}, err
	}
	if err := t.renderer.Flush(); err != nil {
		return CompletedFrame{}, err
	}
	return CompletedFrame{Area: size}, nil
}

// Size reports the current terminal size.
func (t *Terminal) Size() (layout.Rect, error) {
	return t.renderer.Size()
}

// Clear erases the terminal screen.
func (t *Terminal) Clear() error {
	return t.renderer.Clear()
}

// ShowCursor toggles cursor visibility.
func (t *Terminal) ShowCursor(show bool) error {
	return t.renderer.ShowCursor(show)
}

// Backend returns the underlying renderer.
func (t *Terminal) Backend() Renderer {
	return t.renderer
}

// Frame is the drawing surface for a single Terminal.Draw call.
type Frame struct {
	buffer *buffer.Buffer
	area   layout.Rect
}

// Area returns the drawable area of the frame.
func (f *Frame) Area() layout.Rect {
	return f.area
}

// RenderWidget renders a widget into the given area.
func (f *Frame) RenderWidget(w widgets.Widget, area layout.Rect) {
	w.Render(area, f.buffer)
}

// Buffer exposes the frame's buffer for direct cell access.
func (f *Frame) Buffer() *buffer.Buffer {
	return f.buffer
}

// RenderStatefulWidget renders a stateful widget into the given area.
func RenderStatefulWidget[S any](f *Frame, w widgets.StatefulWidget[S], area layout.Rect, state *S) {
	w.RenderStateful(area, f.buffer, state)
}

// CompletedFrame describes a frame that has been presented.
type CompletedFrame struct {
	Area layout.Rect
}
