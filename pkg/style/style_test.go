package style

import "testing"

func TestRGBRoundTrip(t *testing.T) {
	c := RGB(12, 200, 7)
	if !c.IsRGB() {
		t.Fatal("expected RGB color")
	}
	r, g, b := c.Components()
	if r != 12 || g != 200 || b != 7 {
		t.Errorf("got %d,%d,%d", r, g, b)
	}
}

func TestIndexedPalette(t *testing.T) {
	c := Indexed(213)
	if !c.IsPalette() {
		t.Fatal("expected palette color")
	}
	if c.Index() != 213 {
		t.Errorf("index = %d, want 213", c.Index())
	}
	if ColorBrightWhite.Index() != 15 {
		t.Errorf("bright white index = %d", ColorBrightWhite.Index())
	}
}

func TestUnsetAndResetAreNeither(t *testing.T) {
	for _, c := range []Color{ColorUnset, ColorReset} {
		if c.IsRGB() || c.IsPalette() {
			t.Errorf("color %d should be neither RGB nor palette", c)
		}
	}
}

func TestBuilderChaining(t *testing.T) {
	s := New().Foreground(ColorRed).Background(ColorBlack).Bold(true).Italic(true).Italic(false)
	if s.FG() != ColorRed || s.BG() != ColorBlack {
		t.Errorf("colors = %v/%v", s.FG(), s.BG())
	}
	if !s.Modifiers().Contains(ModBold) {
		t.Error("bold missing")
	}
	if s.Modifiers().Contains(ModItalic) {
		t.Error("italic should be off")
	}
}

func TestPatchOverwritesOnlySpecified(t *testing.T) {
	base := Default().Foreground(ColorWhite).Background(ColorBlue).AddModifier(ModBold)
	patched := base.Patch(New().Foreground(ColorYellow).AddModifier(ModItalic))

	if patched.FG() != ColorYellow {
		t.Errorf("fg = %v, want yellow", patched.FG())
	}
	if patched.BG() != ColorBlue {
		t.Errorf("bg = %v, want blue (unchanged)", patched.BG())
	}
	if !patched.Modifiers().Contains(ModBold | ModItalic) {
		t.Errorf("modifiers = %b", patched.Modifiers())
	}
}

func TestPatchWithEmptyIsIdentity(t *testing.T) {
	base := New().Foreground(ColorGreen).AddModifier(ModDim)
	if base.Patch(New()) != base {
		t.Error("empty patch changed style")
	}
}
