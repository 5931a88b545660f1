package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/errors"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/widgets"
)

// Severity ranks how alarming an overlay should look.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return "ERROR"
	}
}

// Color returns the border/title color used for this severity.
func (s Severity) Color() style.Color {
	switch s {
	case SeverityWarning:
		return style.ColorYellow
	case SeverityInfo:
		return style.ColorBlue
	default:
		return style.ColorRed
	}
}

// ErrorMessage is the structured description an overlay displays.
type ErrorMessage struct {
	Title    string
	Message  string
	Source   string
	Line     int
	Column   int
	Severity Severity
	Hints    []string
}

// NewErrorMessage creates a message with Error severity.
func NewErrorMessage(title, message string) ErrorMessage {
	return ErrorMessage{Title: title, Message: message, Severity: SeverityError}
}

// WithSource attaches the file the error came from.
func (m ErrorMessage) WithSource(source string) ErrorMessage {
	m.Source = source
	return m
}

// WithLine attaches a 1-based line number.
func (m ErrorMessage) WithLine(line int) ErrorMessage {
	m.Line = line
	return m
}

// WithColumn attaches a 1-based column number.
func (m ErrorMessage) WithColumn(column int) ErrorMessage {
	m.Column = column
	return m
}

// WithSeverity overrides the default Error severity.
func (m ErrorMessage) WithSeverity(s Severity) ErrorMessage {
	m.Severity = s
	return m
}

// WithHint appends a remediation hint.
func (m ErrorMessage) WithHint(hint string) ErrorMessage {
	m.Hints = append(m.Hints, hint)
	return m
}

// Location formats "source:line:column", degrading to "source:line" or
// "source" when parts are missing. Empty when there is no source.
func (m ErrorMessage) Location() string {
	if m.Source == "" {
		return ""
	}
	if m.Line > 0 && m.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", m.Source, m.Line, m.Column)
	}
	if m.Line > 0 {
		return fmt.Sprintf("%s:%d", m.Source, m.Line)
	}
	return m.Source
}

// MessageFromError maps an engine error to a displayable message with
// remediation hints keyed off the error code.
func MessageFromError(err error) ErrorMessage {
	var msg, path string
	if e, ok := err.(*errors.Error); ok {
		msg = e.Message
		path = e.Path()
	} else {
		msg = err.Error()
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeLoadNotFound:
		return NewErrorMessage("File Not Found", msg).
			WithSource(path).
			WithHint("Check that the file path is correct").
			WithHint("Make sure the file exists in the expected location")
	case errors.ErrCodeLoadRead:
		return NewErrorMessage("Failed to Read File", msg).
			WithSource(path).
			WithHint("Check file permissions").
			WithHint("Ensure the file is not locked by another process")
	case errors.ErrCodeLoadParse:
		return NewErrorMessage("Parse Error", msg).
			WithSource(path).
			WithHint("Check the syntax of your .fsx file").
			WithHint("Look for unclosed brackets, quotes, or other syntax errors")
	case errors.ErrCodeLoadOther:
		return NewErrorMessage("Failed to Load Dashboard", msg).
			WithSource(path).
			WithHint("Try reloading with Ctrl+R")
	case errors.ErrCodeWatchInit, errors.ErrCodeWatchTarget:
		return NewErrorMessage("File Watch Error", msg).
			WithSeverity(SeverityWarning).
			WithHint("Try restarting the application")
	case errors.ErrCodeRenderIO, errors.ErrCodeRenderBackend, errors.ErrCodeRenderSize:
		return NewErrorMessage("Render Error", msg).
			WithSeverity(SeverityWarning).
			WithHint("This may be a temporary issue").
			WithHint("Try resizing the terminal or reloading")
	case errors.ErrCodeInvalidState:
		return NewErrorMessage("Invalid State", msg).
			WithHint("Try reloading the dashboard")
	default:
		return NewErrorMessage("Error", msg)
	}
}

// ErrorOverlay is the dismissible modal that surfaces a failure on top
// of whatever the dashboard last drew.
type ErrorOverlay struct {
	message     ErrorMessage
	shownAt     time.Time
	visible     bool
	autoDismiss time.Duration
}

// NewErrorOverlay creates a visible overlay for the given message.
func NewErrorOverlay(message ErrorMessage) *ErrorOverlay {
	return &ErrorOverlay{
		message: message,
		shownAt: time.Now(),
		visible: true,
	}
}

// WithAutoDismiss makes the overlay hide itself after d has elapsed,
// checked on each Update call.
func (o *ErrorOverlay) WithAutoDismiss(d time.Duration) *ErrorOverlay {
	o.autoDismiss = d
	return o
}

// Message returns the displayed message.
func (o *ErrorOverlay) Message() ErrorMessage {
	return o.message
}

// Visible reports whether the overlay should be drawn.
func (o *ErrorOverlay) Visible() bool {
	return o.visible
}

// Dismiss hides the overlay.
func (o *ErrorOverlay) Dismiss() {
	o.visible = false
}

// Show re-raises the overlay, restarting any auto-dismiss deadline.
func (o *ErrorOverlay) Show() {
	o.visible = true
	o.shownAt = time.Now()
}

// Update applies the auto-dismiss deadline. Called once per frame
// before rendering.
func (o *ErrorOverlay) Update() {
	if o.visible && o.autoDismiss > 0 && time.Since(o.shownAt) >= o.autoDismiss {
		o.visible = false
	}
}

// Render draws the overlay as a centered modal panel. Does nothing
// while hidden.
func (o *ErrorOverlay) Render(area layout.Rect, buf *buffer.Buffer) {
	if !o.visible {
		return
	}

	panel := centeredRect(area, 80, 60)
	if panel.Area() == 0 {
		return
	}

	widgets.Clear{}.Render(panel, buf)

	severityColor := o.message.Severity.Color()
	title := fmt.Sprintf(" %s: %s ", o.message.Severity, o.message.Title)
	block := widgets.NewBlock().
		Title(widgets.NewTitle(title).WithStyle(style.New().Foreground(severityColor).Bold(true))).
		Borders(widgets.BordersAll).
		BorderType(widgets.BorderRounded).
		BorderStyle(style.New().Foreground(severityColor)).
		Style(style.New().Background(style.ColorBlack))
	inner := block.Inner(panel)
	block.Render(panel, buf)

	var sb strings.Builder
	sb.WriteString(o.message.Message)
	if loc := o.message.Location(); loc != "" {
		sb.WriteString("\n\nLocation: ")
		sb.WriteString(loc)
	}
	if len(o.message.Hints) > 0 {
		sb.WriteString("\n\nHints:\n")
		for _, hint := range o.message.Hints {
			sb.WriteString("  * ")
			sb.WriteString(hint)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\nPress Ctrl+D to dismiss, Ctrl+R to reload")

	widgets.NewParagraph(sb.String()).
		Style(style.New().Foreground(style.ColorWhite)).
		Wrap(true).
		Render(inner, buf)
}

// centeredRect returns a rect covering pctX% by pctY% of area, centered
// by integer-halving the margins.
func centeredRect(area layout.Rect, pctX, pctY int) layout.Rect {
	marginX := (area.Width - area.Width*pctX/100) / 2
	marginY := (area.Height - area.Height*pctY/100) / 2
	return layout.NewRect(
		area.X+marginX,
		area.Y+marginY,
		max(0, area.Width-2*marginX),
		max(0, area.Height-2*marginY),
	)
}
