package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// CardHeight is the rendered height of one course card, borders included.
	CardHeight = 6
	// TileHeight is the rendered height of the summary tile row.
	TileHeight = 4
	// ChromeHeight counts header + subtitle + tile row + filter bar + status bar.
	ChromeHeight = 1 + 1 + TileHeight + 1 + 1
)

// Layout manages the arrangement of UI components within terminal dimensions.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a layout for the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ListTop returns the first screen row of the course list.
func (l Layout) ListTop() int {
	return ChromeHeight - 1 // everything but the status bar sits above the list
}

// ContentHeight returns the height available for the course list.
func (l Layout) ContentHeight() int {
	h := l.Height - ChromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// ContentWidth returns the width available for the main content area.
func (l Layout) ContentWidth() int {
	if l.Width < 20 {
		return 20
	}
	return l.Width
}

// VisibleCards returns how many whole cards fit in the list area (at least 1).
func (l Layout) VisibleCards() int {
	n := l.ContentHeight() / CardHeight
	if n < 1 {
		n = 1
	}
	return n
}

// CardInnerWidth returns the text width inside a card's border and padding.
func (l Layout) CardInnerWidth() int {
	return l.ContentWidth() - 4
}

// BarWidth returns the width for the per-card progress bar.
func (l Layout) BarWidth() int {
	bar := l.CardInnerWidth() - barOverhead
	if bar < 5 {
		bar = 5
	}
	if bar > 60 {
		bar = 60
	}
	return bar
}

// TileWidth returns the outer width of one summary tile.
func (l Layout) TileWidth() int {
	w := l.ContentWidth()/len(TileOrder) - 1
	if w < 4 {
		w = 4
	}
	return w
}

// barOverhead is the fixed-width part of a card's bar line:
// bar + " " + "100%"(5).
const barOverhead = 6

// Center centers content in the available width.
func (l Layout) Center(content string) string {
	return lipgloss.PlaceHorizontal(l.Width, lipgloss.Center, content)
}

// FullWidth pads a string with spaces to reach exactly the target visual width.
// If the string is already wider, it is returned as-is (no truncation).
func FullWidth(s string, width int) string {
	visLen := lipgloss.Width(s)
	if visLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visLen)
}
