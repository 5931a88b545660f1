package widgets

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
)

// Clear resets every cell in its area to the default blank cell. It is
// typically rendered under a popup to erase whatever was painted there
// earlier in the frame.
type Clear struct{}

// Render resets the area.
func (Clear) Render(area layout.Rect, buf *buffer.Buffer) {
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			if cell := buf.GetMut(x, y); cell != nil {
				cell.Reset()
			}
		}
	}
}

var _ Widget = Clear{}
