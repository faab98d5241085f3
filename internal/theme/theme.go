// Package theme defines the colours used by the renderer.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AddColor     string `json:"addColor"`
	DelColor     string `json:"delColor"`
	MetaColor    string `json:"metaColor"`
	HunkColor    string `json:"hunkColor"`
	DividerColor string `json:"dividerColor"`
	AccentColor  string `json:"accentColor"`
	StatusColor  string `json:"statusColor"`
}

func Dark() Theme {
	return Theme{
		AddColor:     "34",
		DelColor:     "196",
		MetaColor:    "63",
		HunkColor:    "39",
		DividerColor: "240",
		AccentColor:  "220",
		StatusColor:  "214",
	}
}

func Light() Theme {
	return Theme{
		AddColor:     "22",
		DelColor:     "9",
		MetaColor:    "27",
		HunkColor:    "25",
		DividerColor: "244",
		AccentColor:  "130",
		StatusColor:  "166",
	}
}

// Get returns the named base theme; anything but "light" is dark.
func Get(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// LoadFromRepo starts from the named base theme and applies any colours set
// in .gitdeck/theme.json at repoRoot.
func LoadFromRepo(repoRoot, base string) Theme {
	t := Get(base)
	b, err := os.ReadFile(filepath.Join(repoRoot, ".gitdeck", "theme.json"))
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	merge(&t.AddColor, u.AddColor)
	merge(&t.DelColor, u.DelColor)
	merge(&t.MetaColor, u.MetaColor)
	merge(&t.HunkColor, u.HunkColor)
	merge(&t.DividerColor, u.DividerColor)
	merge(&t.AccentColor, u.AccentColor)
	merge(&t.StatusColor, u.StatusColor)
	return t
}

func merge(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func (t Theme) AddText(s string) string     { return fg(t.AddColor).Render(s) }
func (t Theme) DelText(s string) string     { return fg(t.DelColor).Render(s) }
func (t Theme) MetaText(s string) string    { return fg(t.MetaColor).Render(s) }
func (t Theme) HunkText(s string) string    { return fg(t.HunkColor).Render(s) }
func (t Theme) DividerText(s string) string { return fg(t.DividerColor).Render(s) }

// AccentText is used for the active tab and the current branch marker.
func (t Theme) AccentText(s string) string {
	return fg(t.AccentColor).Bold(true).Render(s)
}

// StatusText renders the status line.
func (t Theme) StatusText(s string) string {
	return fg(t.StatusColor).Bold(true).Render(s)
}

// SelectedText renders the selected row of a list.
func (t Theme) SelectedText(s string) string {
	return lipgloss.NewStyle().Reverse(true).Render(s)
}
