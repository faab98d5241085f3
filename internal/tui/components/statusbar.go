package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/gitdeck/internal/theme"
)

// StatusBar renders the two footer lines: the last status message and the
// key help for the current context.
type StatusBar struct {
	curTheme theme.Theme
}

// NewStatusBar creates a new status bar.
func NewStatusBar(th theme.Theme) *StatusBar {
	return &StatusBar{curTheme: th}
}

// Render returns exactly two lines, each truncated to width.
func (s *StatusBar) Render(width int, status, help string) []string {
	statusLine := ""
	if status != "" {
		statusLine = s.curTheme.StatusText(status)
	}
	helpLine := lipgloss.NewStyle().Faint(true).Render(help)
	return []string{
		ansi.Truncate(statusLine, width, "…"),
		ansi.Truncate(helpLine, width, "…"),
	}
}
