package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/gitdeck/internal/app"
	"github.com/interpretive-systems/gitdeck/internal/model"
)

// maxBaseRows bounds the base branch picker in the branch dialog.
const maxBaseRows = 5

func (m *Model) View() string {
	if !m.layout.Ready() {
		return "Loading..."
	}
	s := m.state
	overlay := m.overlayLines()
	height := m.layout.ContentHeight(len(overlay))

	var left, right []string
	switch s.View {
	case app.ViewHistory:
		left = m.history.Render(historyRows(s.History.Items), s.History.Selected, height, m.theme)
	case app.ViewBranches:
		left = m.branches.Render(m.branchRows(s.Branches.Items), s.Branches.Selected, height, m.theme)
	default:
		left = m.files.Render(m.fileRows(s.Files.Items), s.Files.Selected, height, m.theme)
		right = m.diffLines(height)
	}

	footer := m.status.Render(m.layout.Width(), s.Status, m.help.ShortHelpView(m.keys.contextHelp(s)))
	frame := m.layout.Frame(m.header(), left, right, overlay, footer, height, m.theme)
	return m.zones.Scan(frame)
}

func (m *Model) header() string {
	s := m.state
	title := lipgloss.NewStyle().Bold(true).Render("gitdeck")
	parts := []string{title, filepath.Base(s.RepoPath), "Branch: " + s.CurrentBranch, ""}

	tabs := make([]string, 0, len(app.Views))
	for i, v := range app.Views {
		label := fmt.Sprintf("[%d] %s", i+1, v)
		if v == s.View {
			label = m.theme.AccentText(label)
		}
		tabs = append(tabs, m.zones.Mark(tabZoneID(v), label))
	}
	return strings.Join(parts, "  ") + strings.Join(tabs, " ")
}

func tabZoneID(v app.View) string {
	return "tab-" + strings.ToLower(v.String())
}

func (m *Model) fileRows(files []model.FileStatus) []string {
	rows := make([]string, len(files))
	for i, f := range files {
		rows[i] = m.statusCode(f.Status) + " " + f.Path
	}
	return rows
}

func (m *Model) statusCode(code string) string {
	switch {
	case code == model.StatusWorktreeNew:
		return m.theme.MetaText(code)
	case strings.ContainsRune(code, 'A'):
		return m.theme.AddText(code)
	case strings.ContainsRune(code, 'D'):
		return m.theme.DelText(code)
	case strings.ContainsRune(code, 'M'):
		return m.theme.AccentText(code)
	}
	return code
}

func historyRows(commits []model.CommitInfo) []string {
	rows := make([]string, len(commits))
	for i, c := range commits {
		rows[i] = fmt.Sprintf("%s %s %s - %s", c.ID, c.Date, c.Author, c.Message)
	}
	return rows
}

func (m *Model) branchRows(branches []model.BranchInfo) []string {
	rows := make([]string, len(branches))
	for i, b := range branches {
		if b.IsCurrent {
			rows[i] = m.theme.AccentText("* " + b.Name)
			continue
		}
		rows[i] = "  " + b.Name
	}
	return rows
}

func (m *Model) diffLines(height int) []string {
	s := m.state
	m.diff.SetSize(m.layout.RightWidth(), height)
	m.diff.SetText(s.DiffText, s.DiffLoaded)
	m.diff.SetScroll(s.DiffScroll)
	return strings.Split(m.diff.View(), "\n")
}

// overlayLines renders the open dialog above the footer.
func (m *Model) overlayLines() []string {
	s := m.state
	if !s.DialogOpen() {
		return nil
	}
	bold := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)
	lines := []string{m.theme.DividerText(strings.Repeat("─", m.layout.Width()))}

	switch d := s.Dialog.(type) {
	case *app.CommitDialog:
		lines = append(lines,
			bold.Render("Commit: enter a message"),
			"> "+d.Message+"█",
		)
		if strings.TrimSpace(d.Message) == "" {
			lines = append(lines, faint.Render("Message cannot be empty"))
		}
	case *app.BranchCreateDialog:
		lines = append(lines, bold.Render("New branch"))
		name := "Name: " + d.Name
		if d.Mode == app.ModeNameEntry {
			name += "█"
		}
		lines = append(lines, name, "Base: "+m.baseName(d))
		if d.Mode == app.ModeBaseSelect {
			lines = append(lines, m.baseRows(d)...)
		}
	case *app.DeleteConfirmDialog:
		lines = append(lines,
			bold.Render("Delete branch "+d.Target+"?"),
			faint.Render("Type y or yes and press enter to confirm"),
			"> "+d.Confirmation+"█",
		)
	}
	return lines
}

func (m *Model) baseName(d *app.BranchCreateDialog) string {
	s := m.state
	if d.BaseSelected >= 0 && d.BaseSelected < s.Branches.Len() {
		return s.Branches.Items[d.BaseSelected].Name
	}
	return s.CurrentBranch
}

// baseRows shows a window of branches around the chosen base.
func (m *Model) baseRows(d *app.BranchCreateDialog) []string {
	items := m.state.Branches.Items
	start := d.BaseSelected - maxBaseRows/2
	if start > len(items)-maxBaseRows {
		start = len(items) - maxBaseRows
	}
	if start < 0 {
		start = 0
	}
	end := start + maxBaseRows
	if end > len(items) {
		end = len(items)
	}
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if i == d.BaseSelected {
			rows = append(rows, m.theme.SelectedText("> "+items[i].Name))
			continue
		}
		rows = append(rows, "  "+items[i].Name)
	}
	return rows
}
