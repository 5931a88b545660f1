// Package tcellrender implements the render.Renderer contract on top
// of tcell, with differential drawing against the previously presented
// frame.
package tcellrender

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/engine"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/render"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
)

// Renderer drives a tcell.Screen. Draw stages only the cells that
// changed since the last presented frame; a size change forces a full
// repaint through the diff's area-mismatch fallback.
type Renderer struct {
	screen        tcell.Screen
	prev          *buffer.Buffer
	cursorX       int
	cursorY       int
	cursorVisible bool
}

var _ render.Renderer = (*Renderer)(nil)

// New creates and initializes a renderer on the real terminal.
func New() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, render.BackendError(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, render.BackendError(err, "failed to initialize screen")
	}
	screen.HideCursor()
	return &Renderer{screen: screen}, nil
}

// NewWithScreen wraps an existing screen. The caller is responsible
// for Init.
func NewWithScreen(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// NewSimulation creates a renderer on a tcell simulation screen of the
// given size, for tests.
func NewSimulation(width, height int) (*Renderer, tcell.SimulationScreen, error) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		return nil, nil, render.BackendError(err, "failed to initialize simulation screen")
	}
	screen.SetSize(width, height)
	return &Renderer{screen: screen}, screen, nil
}

// Fini restores the terminal.
func (r *Renderer) Fini() {
	r.screen.Fini()
}

// Draw stages the buffer's changed cells onto the screen.
func (r *Renderer) Draw(buf *buffer.Buffer) error {
	var updates []buffer.Update
	if r.prev != nil {
		updates = r.prev.Diff(buf)
	} else {
		empty := buffer.New(layout.NewRect(0, 0, 0, 0))
		updates = empty.Diff(buf)
	}

	for _, u := range updates {
		if u.Cell.Symbol == "" {
			// wide glyph continuation, tcell covers it from the head rune
			continue
		}
		runes := []rune(u.Cell.Symbol)
		main := runes[0]
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		r.screen.SetContent(u.X, u.Y, main, comb, convertStyle(u.Cell))
	}

	r.prev = buf.Clone()
	return nil
}

// Flush presents staged updates.
func (r *Renderer) Flush() error {
	r.screen.Show()
	return nil
}

// Size reports the screen dimensions.
func (r *Renderer) Size() (layout.Rect, error) {
	w, h := r.screen.Size()
	return layout.NewRect(0, 0, w, h), nil
}

// Clear erases the screen and drops the previous frame so the next
// draw repaints everything.
func (r *Renderer) Clear() error {
	r.screen.Clear()
	r.prev = nil
	return nil
}

// ShowCursor toggles cursor visibility at the last set position.
func (r *Renderer) ShowCursor(visible bool) error {
	r.cursorVisible = visible
	if visible {
		r.screen.ShowCursor(r.cursorX, r.cursorY)
	} else {
		r.screen.HideCursor()
	}
	return nil
}

// SetCursor moves the cursor.
func (r *Renderer) SetCursor(x, y int) error {
	r.cursorX = x
	r.cursorY = y
	if r.cursorVisible {
		r.screen.ShowCursor(x, y)
	}
	return nil
}

// PollEvent blocks for the next input event, converted to the engine's
// event model. Returns nil when the screen shuts down.
func (r *Renderer) PollEvent() engine.Event {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// convertStyle maps a cell's colors and modifiers to a tcell style.
func convertStyle(cell *buffer.Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(convertColor(cell.Fg)).
		Background(convertColor(cell.Bg))

	if cell.Modifier.Contains(style.ModBold) {
		st = st.Bold(true)
	}
	if cell.Modifier.Contains(style.ModDim) {
		st = st.Dim(true)
	}
	if cell.Modifier.Contains(style.ModItalic) {
		st = st.Italic(true)
	}
	if cell.Modifier.Contains(style.ModUnderlined) {
		st = st.Underline(true)
	}
	if cell.Modifier.Contains(style.ModSlowBlink) || cell.Modifier.Contains(style.ModRapidBlink) {
		st = st.Blink(true)
	}
	if cell.Modifier.Contains(style.ModReversed) {
		st = st.Reverse(true)
	}
	if cell.Modifier.Contains(style.ModCrossedOut) {
		st = st.StrikeThrough(true)
	}
	return st
}

// convertColor maps a style color to tcell. Unset and reset both fall
// back to the terminal default.
func convertColor(c style.Color) tcell.Color {
	switch {
	case c.IsRGB():
		r, g, b := c.Components()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	case c.IsPalette():
		return tcell.PaletteColor(int(c.Index()))
	default:
		return tcell.ColorDefault
	}
}

// convertEvent maps tcell events to engine events. Unknown events map
// to nil and are skipped.
func convertEvent(ev tcell.Event) engine.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return engine.ResizeEvent{Width: w, Height: h}
	default:
		return nil
	}
}

func convertKeyEvent(e *tcell.EventKey) engine.Event {
	ctrl := e.Modifiers()&tcell.ModCtrl != 0
	alt := e.Modifiers()&tcell.ModAlt != 0
	shift := e.Modifiers()&tcell.ModShift != 0

	switch k := e.Key(); k {
	case tcell.KeyRune:
		return engine.KeyEvent{Key: engine.KeyRune, Rune: e.Rune(), Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyEnter:
		return engine.KeyEvent{Key: engine.KeyEnter, Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyEscape:
		return engine.KeyEvent{Key: engine.KeyEscape, Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyTab:
		return engine.KeyEvent{Key: engine.KeyTab, Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return engine.KeyEvent{Key: engine.KeyBackspace, Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyUp:
		return engine.KeyEvent{Key: engine.KeyUp, Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyDown:
		return engine.KeyEvent{Key: engine.KeyDown, Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyLeft:
		return engine.KeyEvent{Key: engine.KeyLeft, Ctrl: ctrl, Alt: alt, Shift: shift}
	case tcell.KeyRight:
		return engine.KeyEvent{Key: engine.KeyRight, Ctrl: ctrl, Alt: alt, Shift: shift}
	default:
		// tcell reports Ctrl+letter combos as dedicated key codes
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return engine.KeyEvent{
				Key:   engine.KeyRune,
				Rune:  rune('a' + (k - tcell.KeyCtrlA)),
				Ctrl:  true,
				Alt:   alt,
				Shift: shift,
			}
		}
		return nil
	}
}
