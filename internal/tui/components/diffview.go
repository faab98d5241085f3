package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/gitdeck/internal/diffview"
	"github.com/interpretive-systems/gitdeck/internal/theme"
)

const placeholder = "Select a file to view its diff"

// DiffView manages the right pane diff viewer.
type DiffView struct {
	viewport viewport.Model
	curTheme theme.Theme
	text     string
	loaded   bool
	lines    int
}

// NewDiffView creates a new diff viewer.
func NewDiffView(th theme.Theme) *DiffView {
	d := &DiffView{curTheme: th, viewport: viewport.New(0, 0)}
	d.viewport.SetContent(lipgloss.NewStyle().Faint(true).Render(placeholder))
	return d
}

// SetSize updates the viewport dimensions.
func (d *DiffView) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// SetText replaces the diff shown. Unchanged text is not re-rendered.
func (d *DiffView) SetText(text string, loaded bool) {
	if text == d.text && loaded == d.loaded {
		return
	}
	d.text, d.loaded = text, loaded
	if !loaded {
		d.lines = 1
		d.viewport.SetContent(lipgloss.NewStyle().Faint(true).Render(placeholder))
		return
	}
	rendered := d.render(diffview.Parse(text))
	d.lines = len(rendered)
	d.viewport.SetContent(strings.Join(rendered, "\n"))
}

// MaxScroll is the largest useful scroll offset for a pane of height rows.
func (d *DiffView) MaxScroll(height int) int {
	if n := d.lines - height; n > 0 {
		return n
	}
	return 0
}

// SetScroll moves the viewport to line n; the viewport clamps it.
func (d *DiffView) SetScroll(n int) {
	d.viewport.SetYOffset(n)
}

// View returns the viewport view.
func (d *DiffView) View() string {
	return d.viewport.View()
}

func (d *DiffView) render(lines []diffview.Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		switch l.Kind {
		case diffview.KindAdd:
			out = append(out, d.curTheme.AddText(l.Text))
		case diffview.KindDel:
			out = append(out, d.curTheme.DelText(l.Text))
		case diffview.KindHunk:
			out = append(out, d.curTheme.HunkText(l.Text))
		case diffview.KindMeta:
			out = append(out, d.curTheme.MetaText(l.Text))
		default:
			out = append(out, l.Text)
		}
	}
	return out
}
