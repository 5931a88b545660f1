package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/buffer"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/layout"
	"github.com/fusabi-lang/fusabi-tui-runtime/pkg/style"
)

// Paragraph renders multi-line text, optionally inside a block and
// optionally word-wrapped to the available width.
type Paragraph struct {
	text  string
	style style.Style
	block *Block
	wrap  bool
}

// NewParagraph creates a paragraph with the given text.
func NewParagraph(text string) Paragraph {
	return Paragraph{text: text}
}

// Style sets the style merged into every rendered cell.
func (p Paragraph) Style(s style.Style) Paragraph {
	p.style = s
	return p
}

// Block wraps the paragraph in a block; the text renders inside the
// block's inner area.
func (p Paragraph) Block(b Block) Paragraph {
	p.block = &b
	return p
}

// Wrap enables word wrapping at the area width.
func (p Paragraph) Wrap(on bool) Paragraph {
	p.wrap = on
	return p
}

// Render draws the paragraph. Lines past the bottom edge are dropped;
// without wrapping, text past the right edge is clipped.
func (p Paragraph) Render(area layout.Rect, buf *buffer.Buffer) {
	text := area
	if p.block != nil {
		p.block.Render(area, buf)
		text = p.block.Inner(area)
	}
	if text.Area() == 0 {
		return
	}

	lines := strings.Split(p.text, "\n")
	if p.wrap {
		lines = wrapLines(lines, text.Width)
	}

	for i, line := range lines {
		if i >= text.Height {
			break
		}
		buf.SetString(text.X, text.Y+i, line, p.style)
	}
}

// wrapLines breaks each line at word boundaries so no line exceeds the
// given display width. Words longer than the width are split.
func wrapLines(lines []string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range lines {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		var current string
		currentWidth := 0
		for _, word := range strings.Fields(line) {
			wordWidth := runewidth.StringWidth(word)
			for wordWidth > width {
				if current != "" {
					out = append(out, current)
					current, currentWidth = "", 0
				}
				head := runewidth.Truncate(word, width, "")
				out = append(out, head)
				word = word[len(head):]
				wordWidth = runewidth.StringWidth(word)
			}
			switch {
			case current == "":
				current, currentWidth = word, wordWidth
			case currentWidth+1+wordWidth <= width:
				current += " " + word
				currentWidth += 1 + wordWidth
			default:
				out = append(out, current)
				current, currentWidth = word, wordWidth
			}
		}
		out = append(out, current)
	}
	return out
}

var _ Widget = Paragraph{}
