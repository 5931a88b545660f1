// Package theme provides a unified visual design system for dashboard
// rendering. Inspired by Dark Elegance: rich blacks, subtle depth, glowing
// accents.
package theme

import (
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
)

// Theme defines the complete visual language for a dashboard.
type Theme struct {
	// Core palette
	Background style.Style // Primary canvas
	Surface    style.Style // Elevated surfaces (panels, cards)
	SurfaceDim style.Style // Recessed areas

	// Text hierarchy
	TextPrimary   style.Style // Main content
	TextSecondary style.Style // Supporting text
	TextMuted     style.Style // Hints, placeholders
	TextInverse   style.Style // Text on accent backgrounds

	// Accent colors
	Accent     style.Style // Primary highlights
	AccentGlow style.Style // Emphasis, active states

	// Semantic colors
	Success style.Style
	Warning style.Style
	Error   style.Style
	Info    style.Style

	// Widget styles
	Gauge       style.Style // Gauge fill
	GaugeLabel  style.Style // Gauge percentage label
	Sparkline   style.Style
	BarChart    style.Style
	BarValue    style.Style
	Scrollbar   style.Style
	ScrollThumb style.Style

	// UI elements
	Border      style.Style
	BorderFocus style.Style
	Title       style.Style

	// Error overlay
	OverlayBackground style.Style
	OverlayText       style.Style
	OverlayHint       style.Style
}

// DefaultTheme returns the Dark Elegance theme.
func DefaultTheme() *Theme {
	return &Theme{
		// Core palette, deep blacks with a subtle blue undertone
		Background: style.New().Background(style.RGB(12, 12, 16)),
		Surface:    style.New().Background(style.RGB(22, 22, 28)),
		SurfaceDim: style.New().Background(style.RGB(8, 8, 10)),

		// Text hierarchy, warm whites
		TextPrimary:   style.New().Foreground(style.RGB(240, 238, 232)),
		TextSecondary: style.New().Foreground(style.RGB(160, 158, 150)),
		TextMuted:     style.New().Foreground(style.RGB(100, 98, 92)),
		TextInverse:   style.New().Foreground(style.RGB(12, 12, 16)),

		// Accent, warm amber
		Accent:     style.New().Foreground(style.RGB(255, 183, 77)),
		AccentGlow: style.New().Foreground(style.RGB(255, 200, 100)).Bold(true),

		// Semantic colors
		Success: style.New().Foreground(style.RGB(134, 239, 172)),
		Warning: style.New().Foreground(style.RGB(255, 138, 101)),
		Error:   style.New().Foreground(style.RGB(255, 110, 90)),
		Info:    style.New().Foreground(style.RGB(77, 182, 172)),

		// Widgets
		Gauge:       style.New().Foreground(style.RGB(77, 182, 172)).Background(style.RGB(22, 22, 28)),
		GaugeLabel:  style.New().Foreground(style.RGB(240, 238, 232)).Bold(true),
		Sparkline:   style.New().Foreground(style.RGB(79, 195, 247)),
		BarChart:    style.New().Foreground(style.RGB(255, 183, 77)),
		BarValue:    style.New().Foreground(style.RGB(12, 12, 16)).Background(style.RGB(255, 183, 77)),
		Scrollbar:   style.New().Foreground(style.RGB(50, 50, 60)),
		ScrollThumb: style.New().Foreground(style.RGB(100, 100, 110)),

		// UI elements
		Border:      style.New().Foreground(style.RGB(50, 50, 60)),
		BorderFocus: style.New().Foreground(style.RGB(255, 183, 77)),
		Title:       style.New().Foreground(style.RGB(255, 183, 77)).Bold(true),

		// Error overlay
		OverlayBackground: style.New().Background(style.RGB(8, 8, 10)),
		OverlayText:       style.New().Foreground(style.RGB(240, 238, 232)),
		OverlayHint:       style.New().Foreground(style.RGB(160, 158, 150)).Italic(true),
	}
}

// Symbols provides consistent iconography.
var Symbols = struct {
	Bullet      string
	BulletEmpty string
	Arrow       string
	Check       string
	Cross       string
	Dot         string

	Spinner      []string
	Progress     string
	ProgressFill string
	Scrollbar    string
	ScrollThumb  string
}{
	Bullet:      "●",
	BulletEmpty: "○",
	Arrow:       "›",
	Check:       "✓",
	Cross:       "✗",
	Dot:         "·",

	Spinner:      []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	Progress:     "░",
	ProgressFill: "█",
	Scrollbar:    "░",
	ScrollThumb:  "█",
}
