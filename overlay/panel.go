package overlay

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Panel draws debug lines as a left-aligned block on a terminal screen
type Panel struct {
	X, Y  int
	Style tcell.Style
}

// NewPanel creates a panel anchored at the top-left corner
func NewPanel() *Panel {
	return &Panel{Style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)}
}

// Draw writes lines starting at the panel origin, one per row
// Text past the screen edge is clipped; empty lines keep their row as a separator
func (p *Panel) Draw(s tcell.Screen, lines []string) {
	width, height := s.Size()
	for row, line := range lines {
		y := p.Y + row
		if y >= height {
			return
		}
		x := p.X
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x+w > width {
				break
			}
			s.SetContent(x, y, r, nil, p.Style)
			x += w
		}
	}
}

// Width returns the widest line in cells
func Width(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
