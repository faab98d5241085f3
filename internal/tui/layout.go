package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/gitdeck/internal/theme"
)

const minPaneWidth = 20

// Layout manages screen layout calculations.
type Layout struct {
	width       int
	height      int
	leftPercent int
}

// NewLayout creates a layout whose left pane takes leftPercent of the width.
func NewLayout(leftPercent int) *Layout {
	return &Layout{leftPercent: leftPercent}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *Layout) Width() int  { return l.width }
func (l *Layout) Height() int { return l.height }

// Ready reports whether a window size has arrived.
func (l *Layout) Ready() bool { return l.width > 0 && l.height > 0 }

// LeftWidth returns the left pane width.
func (l *Layout) LeftWidth() int {
	w := l.width * l.leftPercent / 100
	if w < minPaneWidth {
		w = minPaneWidth
	}
	return w
}

// RightWidth returns the right pane width.
func (l *Layout) RightWidth() int {
	w := l.width - l.LeftWidth() - 1 // divider
	if w < 1 {
		w = 1
	}
	return w
}

// ContentHeight returns the body height left after the header, the two
// rules, the two footer lines and any overlay.
func (l *Layout) ContentHeight(overlayHeight int) int {
	h := l.height - 5 - overlayHeight
	if h < 1 {
		h = 1
	}
	return h
}

// Frame assembles a full screen. With right == nil the body spans the
// whole width.
func (l *Layout) Frame(header string, left, right, overlay, footer []string, height int, th theme.Theme) string {
	var b strings.Builder

	b.WriteString(l.renderTopBar(header))
	b.WriteByte('\n')
	b.WriteString(th.DividerText(strings.Repeat("─", l.width)))
	b.WriteByte('\n')

	sep := th.DividerText("│")
	for i := 0; i < height; i++ {
		var lft, rgt string
		if i < len(left) {
			lft = left[i]
		}
		if i < len(right) {
			rgt = right[i]
		}
		if right == nil {
			b.WriteString(padToWidth(lft, l.width))
		} else {
			b.WriteString(padToWidth(lft, l.LeftWidth()))
			b.WriteString(sep)
			b.WriteString(padToWidth(rgt, l.RightWidth()))
		}
		b.WriteByte('\n')
	}

	for _, line := range overlay {
		b.WriteString(padToWidth(line, l.width))
		b.WriteByte('\n')
	}

	b.WriteString(th.DividerText(strings.Repeat("─", l.width)))
	for _, line := range footer {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}

func (l *Layout) renderTopBar(s string) string {
	if lipgloss.Width(s) > l.width {
		return ansi.Truncate(s, l.width, "…")
	}
	return s
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
