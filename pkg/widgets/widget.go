// Package widgets provides the built-in widgets that render into a
// cell buffer: blocks, paragraphs, gauges, sparklines, bar charts,
// and scrollbars.
package widgets

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
)

// Widget renders itself into the given area of a buffer.
type Widget interface {
	Render(area layout.Rect, buf *buffer.Buffer)
}

// StatefulWidget renders with external state that survives between
// frames, such as a scroll position.
type StatefulWidget[S any] interface {
	RenderStateful(area layout.Rect, buf *buffer.Buffer, state *S)
}
