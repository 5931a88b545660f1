package engine

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/widgets"
)

// DashboardState tracks what the next frame needs: a dirty flag plus
// the widgets registered by the render callback.
type DashboardState struct {
	dirty   bool
	widgets []widgets.Widget
}

// NewDashboardState creates clean state with no widgets.
func NewDashboardState() *DashboardState {
	return &DashboardState{}
}

// MarkDirty flags that the next render must repaint.
func (s *DashboardState) MarkDirty() {
	s.dirty = true
}

// ClearDirty resets the repaint flag after a successful draw.
func (s *DashboardState) ClearDirty() {
	s.dirty = false
}

// IsDirty reports whether a repaint is pending.
func (s *DashboardState) IsDirty() bool {
	return s.dirty
}

// RegisterWidget appends a widget to the registry.
func (s *DashboardState) RegisterWidget(w widgets.Widget) {
	s.widgets = append(s.widgets, w)
	s.dirty = true
}

// Widgets returns the registered widgets in registration order.
func (s *DashboardState) Widgets() []widgets.Widget {
	return s.widgets
}

// WidgetCount returns the number of registered widgets.
func (s *DashboardState) WidgetCount() int {
	return len(s.widgets)
}

// Clear drops all widgets and marks the state dirty.
func (s *DashboardState) Clear() {
	s.widgets = nil
	s.dirty = true
}
