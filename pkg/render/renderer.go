// Package render defines the backend abstraction that moves finished
// cell buffers onto a terminal, plus a headless implementation for tests.
package render

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
)

// Renderer is the backend contract. Implementations own the terminal
// handle; callers own the buffer. Draw stages cell updates, Flush makes
// them visible.
type Renderer interface {
	// Draw stages the buffer's cells for display.
	Draw(buf *buffer.Buffer) error

	// Flush makes all staged updates visible.
	Flush() error

	// Size reports the drawable area, origin at (0, 0).
	Size() (layout.Rect, error)

	// Clear erases the display.
	Clear() error

	// ShowCursor toggles cursor visibility.
	ShowCursor(visible bool) error

	// SetCursor moves the cursor.
	SetCursor(x, y int) error
}

// IOError wraps a transport failure between the process and the terminal.
func IOError(err error, msg string) error {
	return errors.Wrap(err, errors.ErrCodeRenderIO, msg)
}

// BackendError wraps a failure inside the terminal backend itself.
func BackendError(err error, msg string) error {
	return errors.Wrap(err, errors.ErrCodeRenderBackend, msg)
}

// SizeMismatchError reports a buffer drawn against a stale terminal size.
func SizeMismatchError(expected, actual layout.Rect) error {
	return errors.New(errors.ErrCodeRenderSize, "buffer size does not match terminal size").
		WithContext("expected", expected).
		WithContext("actual", actual)
}
