// Package style defines terminal colors, text modifiers, and the
// composable Style value used by buffers and widgets.
package style

// Color represents a terminal color. The zero value means "not
// specified": a style carrying it leaves the existing color alone when
// patched onto another style.
type Color int32

const (
	// ColorUnset leaves the underlying color untouched.
	ColorUnset Color = 0
	// ColorReset selects the terminal's configured default color.
	ColorReset Color = -1
)

const (
	colorPalette Color = 1 << 25
	colorRGB     Color = 1 << 24
)

// Palette colors (ANSI 0-15).
const (
	ColorBlack   Color = colorPalette | 0
	ColorRed     Color = colorPalette | 1
	ColorGreen   Color = colorPalette | 2
	ColorYellow  Color = colorPalette | 3
	ColorBlue    Color = colorPalette | 4
	ColorMagenta Color = colorPalette | 5
	ColorCyan    Color = colorPalette | 6
	ColorWhite   Color = colorPalette | 7

	ColorBrightBlack   Color = colorPalette | 8
	ColorBrightRed     Color = colorPalette | 9
	ColorBrightGreen   Color = colorPalette | 10
	ColorBrightYellow  Color = colorPalette | 11
	ColorBrightBlue    Color = colorPalette | 12
	ColorBrightMagenta Color = colorPalette | 13
	ColorBrightCyan    Color = colorPalette | 14
	ColorBrightWhite   Color = colorPalette | 15
)

// Indexed returns the 256-color palette entry n.
func Indexed(n uint8) Color {
	return colorPalette | Color(n)
}

// RGB creates a true color from components.
func RGB(r, g, b uint8) Color {
	return colorRGB | Color(int32(r)<<16|int32(g)<<8|int32(b))
}

// IsRGB returns true if this is a true color (not palette).
func (c Color) IsRGB() bool {
	return c > 0 && c&colorRGB != 0
}

// IsPalette returns true if this is a palette color.
func (c Color) IsPalette() bool {
	return c > 0 && c&colorRGB == 0
}

// Components returns the red, green, blue components of an RGB color.
// Returns 0, 0, 0 for non-RGB colors.
func (c Color) Components() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// Index returns the palette index of a palette color, or 0 otherwise.
func (c Color) Index() uint8 {
	if !c.IsPalette() {
		return 0
	}
	return uint8(c & 0xFF)
}

// Modifier is a bitset of text attributes.
type Modifier uint16

// Modifier flags
const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderlined
	ModSlowBlink
	ModRapidBlink
	ModReversed
	ModHidden
	ModCrossedOut
)

// Contains reports whether every flag in m is set.
func (mod Modifier) Contains(m Modifier) bool {
	return mod&m == m
}

// Style combines optional foreground and background colors with a set
// of text modifiers. Styles are values; the builder methods return a
// modified copy.
type Style struct {
	fg   Color
	bg   Color
	mods Modifier
}

// New returns an empty style that specifies nothing.
func New() Style {
	return Style{}
}

// Default returns a style that resets both colors to the terminal
// defaults.
func Default() Style {
	return Style{fg: ColorReset, bg: ColorReset}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// AddModifier turns the given flags on.
func (s Style) AddModifier(m Modifier) Style {
	s.mods |= m
	return s
}

// RemoveModifier turns the given flags off.
func (s Style) RemoveModifier(m Modifier) Style {
	s.mods &^= m
	return s
}

// Bold enables or disables bold.
func (s Style) Bold(on bool) Style {
	if on {
		return s.AddModifier(ModBold)
	}
	return s.RemoveModifier(ModBold)
}

// Dim enables or disables dim.
func (s Style) Dim(on bool) Style {
	if on {
		return s.AddModifier(ModDim)
	}
	return s.RemoveModifier(ModDim)
}

// Italic enables or disables italic.
func (s Style) Italic(on bool) Style {
	if on {
		return s.AddModifier(ModItalic)
	}
	return s.RemoveModifier(ModItalic)
}

// Underlined enables or disables underline.
func (s Style) Underlined(on bool) Style {
	if on {
		return s.AddModifier(ModUnderlined)
	}
	return s.RemoveModifier(ModUnderlined)
}

// Reversed enables or disables reverse video.
func (s Style) Reversed(on bool) Style {
	if on {
		return s.AddModifier(ModReversed)
	}
	return s.RemoveModifier(ModReversed)
}

// FG returns the foreground color.
func (s Style) FG() Color {
	return s.fg
}

// BG returns the background color.
func (s Style) BG() Color {
	return s.bg
}

// Modifiers returns all modifier flags.
func (s Style) Modifiers() Modifier {
	return s.mods
}

// Patch layers other on top of s. Colors are overwritten only when
// other specifies them; modifiers are unioned.
func (s Style) Patch(other Style) Style {
	if other.fg != ColorUnset {
		s.fg = other.fg
	}
	if other.bg != ColorUnset {
		s.bg = other.bg
	}
	s.mods |= other.mods
	return s
}
