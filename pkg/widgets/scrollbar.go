package widgets

import (
	"math"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/symbols"
)

// ScrollbarOrientation places the scrollbar on one edge of its area.
type ScrollbarOrientation int

const (
	ScrollbarVerticalRight ScrollbarOrientation = iota
	ScrollbarVerticalLeft
	ScrollbarHorizontalTop
	ScrollbarHorizontalBottom
)

func (o ScrollbarOrientation) vertical() bool {
	return o == ScrollbarVerticalRight || o == ScrollbarVerticalLeft
}

// ScrollbarState tracks scroll position and content dimensions between
// frames.
type ScrollbarState struct {
	contentLength  int
	position       int
	viewportLength int
}

// NewScrollbarState creates state for content of the given length.
func NewScrollbarState(contentLength int) *ScrollbarState {
	return &ScrollbarState{contentLength: contentLength}
}

// SetContentLength updates the total content length.
func (s *ScrollbarState) SetContentLength(length int) {
	s.contentLength = length
}

// SetPosition updates the scroll position.
func (s *ScrollbarState) SetPosition(position int) {
	s.position = position
}

// SetViewportLength updates the visible content length.
func (s *ScrollbarState) SetViewportLength(length int) {
	s.viewportLength = length
}

// Position returns the current scroll position.
func (s *ScrollbarState) Position() int {
	return s.position
}

// ScrollDown advances one position, stopping at the end.
func (s *ScrollbarState) ScrollDown() {
	if s.position < s.contentLength-s.viewportLength {
		s.position++
	}
}

// ScrollUp moves back one position, stopping at zero.
func (s *ScrollbarState) ScrollUp() {
	if s.position > 0 {
		s.position--
	}
}

// ScrollToTop jumps to the start.
func (s *ScrollbarState) ScrollToTop() {
	s.position = 0
}

// ScrollToBottom jumps to the last position.
func (s *ScrollbarState) ScrollToBottom() {
	s.position = max(0, s.contentLength-s.viewportLength)
}

// Scrollbar draws a track with a proportional thumb along one edge of
// its area.
type Scrollbar struct {
	orientation ScrollbarOrientation
	beginSymbol string
	endSymbol   string
	thumbSymbol string
	trackSymbol string
	style       style.Style
}

// NewScrollbar creates a vertical right-edge scrollbar with arrow
// endpoints.
func NewScrollbar() Scrollbar {
	return Scrollbar{
		orientation: ScrollbarVerticalRight,
		beginSymbol: symbols.ScrollbarArrowUp,
		endSymbol:   symbols.ScrollbarArrowDown,
		thumbSymbol: symbols.ScrollbarThumb,
		trackSymbol: symbols.ScrollbarTrack,
	}
}

// Orientation sets the scrollbar edge and swaps directional defaults
// to match.
func (sb Scrollbar) Orientation(o ScrollbarOrientation) Scrollbar {
	sb.orientation = o
	if o.vertical() {
		if sb.beginSymbol == symbols.ScrollbarArrowLeft || sb.beginSymbol == symbols.ScrollbarArrowRight {
			sb.beginSymbol = symbols.ScrollbarArrowUp
		}
		if sb.endSymbol == symbols.ScrollbarArrowLeft || sb.endSymbol == symbols.ScrollbarArrowRight {
			sb.endSymbol = symbols.ScrollbarArrowDown
		}
		if sb.trackSymbol == symbols.ScrollbarTrackH {
			sb.trackSymbol = symbols.ScrollbarTrack
		}
	} else {
		if sb.beginSymbol == symbols.ScrollbarArrowUp || sb.beginSymbol == symbols.ScrollbarArrowDown {
			sb.beginSymbol = symbols.ScrollbarArrowLeft
		}
		if sb.endSymbol == symbols.ScrollbarArrowUp || sb.endSymbol == symbols.ScrollbarArrowDown {
			sb.endSymbol = symbols.ScrollbarArrowRight
		}
		if sb.trackSymbol == symbols.ScrollbarTrack {
			sb.trackSymbol = symbols.ScrollbarTrackH
		}
	}
	return sb
}

// Symbols sets the begin, end, thumb, and track glyphs. Empty begin or
// end disables that endpoint.
func (sb Scrollbar) Symbols(begin, end, thumb, track string) Scrollbar {
	sb.beginSymbol = begin
	sb.endSymbol = end
	sb.thumbSymbol = thumb
	sb.trackSymbol = track
	return sb
}

// Style sets the scrollbar style.
func (sb Scrollbar) Style(s style.Style) Scrollbar {
	sb.style = s
	return sb
}

// calculateThumb returns the thumb offset and size within a track.
func (sb Scrollbar) calculateThumb(trackLength int, state *ScrollbarState) (int, int) {
	if state.contentLength == 0 || state.viewportLength >= state.contentLength {
		return 0, trackLength
	}

	thumbSize := int(float64(state.viewportLength) / float64(state.contentLength) * float64(trackLength))
	if thumbSize < 1 {
		thumbSize = 1
	}

	scrollableContent := state.contentLength - state.viewportLength
	scrollableTrack := trackLength - thumbSize

	thumbPos := 0
	if scrollableContent > 0 {
		thumbPos = int(math.Round(float64(state.position) / float64(scrollableContent) * float64(scrollableTrack)))
	}

	return thumbPos, thumbSize
}

// RenderStateful draws the scrollbar for the given state.
func (sb Scrollbar) RenderStateful(area layout.Rect, buf *buffer.Buffer, state *ScrollbarState) {
	if area.Width == 0 || area.Height == 0 {
		return
	}
	if sb.orientation.vertical() {
		sb.renderVertical(area, buf, state)
	} else {
		sb.renderHorizontal(area, buf, state)
	}
}

func (sb Scrollbar) renderVertical(area layout.Rect, buf *buffer.Buffer, state *ScrollbarState) {
	x := area.X
	if sb.orientation == ScrollbarVerticalRight {
		x = area.Right() - 1
	}

	y := area.Y
	available := area.Height

	if sb.beginSymbol != "" && available > 0 {
		buf.SetString(x, y, sb.beginSymbol, sb.style)
		y++
		available--
	}

	endY := -1
	if sb.endSymbol != "" && available > 0 {
		available--
		endY = area.Bottom() - 1
	}

	thumbPos, thumbSize := sb.calculateThumb(available, state)

	for i := 0; i < available; i++ {
		cellY := y + i
		if cellY >= area.Bottom() {
			break
		}
		symbol := sb.trackSymbol
		if i >= thumbPos && i < thumbPos+thumbSize {
			symbol = sb.thumbSymbol
		}
		buf.SetString(x, cellY, symbol, sb.style)
	}

	if endY >= 0 {
		buf.SetString(x, endY, sb.endSymbol, sb.style)
	}
}

func (sb Scrollbar) renderHorizontal(area layout.Rect, buf *buffer.Buffer, state *ScrollbarState) {
	y := area.Y
	if sb.orientation == ScrollbarHorizontalBottom {
		y = area.Bottom() - 1
	}

	x := area.X
	available := area.Width

	if sb.beginSymbol != "" && available > 0 {
		buf.SetString(x, y, sb.beginSymbol, sb.style)
		x++
		available--
	}

	endX := -1
	if sb.endSymbol != "" && available > 0 {
		available--
		endX = area.Right() - 1
	}

	thumbPos, thumbSize := sb.calculateThumb(available, state)

	for i := 0; i < available; i++ {
		cellX := x + i
		if cellX >= area.Right() {
			break
		}
		symbol := sb.trackSymbol
		if i >= thumbPos && i < thumbPos+thumbSize {
			symbol = sb.thumbSymbol
		}
		buf.SetString(cellX, y, symbol, sb.style)
	}

	if endX >= 0 {
		buf.SetString(endX, y, sb.endSymbol, sb.style)
	}
}

var _ StatefulWidget[ScrollbarState] = Scrollbar{}
