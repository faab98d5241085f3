package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/gitdeck/internal/app"
	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/theme"
)

func newTestModel(t *testing.T) (*Model, *fakeBackend) {
	t.Helper()
	c, s, b := setup(t)
	m := NewModel(s, c, theme.Dark(), config.Default())
	t.Cleanup(m.zones.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return m, b
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestViewBeforeWindowSize(t *testing.T) {
	c, s, _ := setup(t)
	m := NewModel(s, c, theme.Dark(), config.Default())
	defer m.zones.Close()

	require.Equal(t, "Loading...", m.View())
}

func TestViewFiles(t *testing.T) {
	m, _ := newTestModel(t)
	out := plainView(m)

	require.Contains(t, out, "gitdeck")
	require.Contains(t, out, "Branch: main")
	require.Contains(t, out, "[1] Files [2] History [3] Branches")
	require.Contains(t, out, "> M  a.txt")
	require.Contains(t, out, "  ?? b.txt")
	require.Contains(t, out, "diff of a.txt")
	require.Contains(t, out, "s stage")
	require.Len(t, strings.Split(out, "\n"), 20)
}

func TestViewFilesPlaceholderWithoutDiff(t *testing.T) {
	m, b := newTestModel(t)
	b.files = nil
	m.Update(runes("r"))

	out := plainView(m)
	require.Contains(t, out, "No changes")
	require.Contains(t, out, "Select a file to view its diff")
}

func TestViewHistory(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("2"))

	out := plainView(m)
	require.Contains(t, out, "> abc1234 2024-01-02 10:00:00 Ada - second")
	require.Contains(t, out, "  def5678 2024-01-01 10:00:00 Ada - first")
	require.Contains(t, out, "y copy id")
}

func TestViewBranchesMarksCurrent(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("3"))

	out := plainView(m)
	require.Contains(t, out, ">   feature")
	require.Contains(t, out, "  * main")
}

func TestViewCommitOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("c"))
	m.Update(runes("h"))
	m.Update(runes("i"))

	out := plainView(m)
	require.Contains(t, out, "Commit: enter a message")
	require.Contains(t, out, "> hi█")
	require.Contains(t, out, "esc cancel")
	require.Len(t, strings.Split(out, "\n"), 20)
}

func TestViewBranchOverlayShowsBase(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("3"))
	m.Update(runes("n"))
	m.Update(special(tea.KeyTab))
	m.Update(special(tea.KeyUp))

	out := plainView(m)
	require.Contains(t, out, "New branch")
	require.Contains(t, out, "Base: feature")
}

func TestViewDeleteOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("3"))
	m.Update(runes("d"))

	require.Contains(t, plainView(m), "Delete branch feature?")
}

func TestViewShowsStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("a"))

	require.Contains(t, plainView(m), "Staged all files")
}

func TestUpdateClampsDiffScroll(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(special(tea.KeyPgDown))

	require.Zero(t, m.state.DiffScroll)
}

func TestUpdateQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdateTickReschedules(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tickMsg{})

	require.NotNil(t, cmd)
	require.Equal(t, app.ViewFiles, m.state.View)
}

func TestNetworkKeyReenablesMouse(t *testing.T) {
	for _, k := range []string{"P", "p", "S"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newTestModel(t)
			_, cmd := m.Update(runes(k))

			require.NotNil(t, cmd)
			require.Equal(t, tea.EnableMouseCellMotion(), cmd())
		})
	}
}

func TestBranchCreateReenablesMouse(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(runes("3"))
	m.Update(runes("n"))
	m.Update(runes("x"))
	_, cmd := m.Update(special(tea.KeyEnter))

	require.NotNil(t, cmd)
	require.Equal(t, tea.EnableMouseCellMotion(), cmd())
}

func TestLocalKeyLeavesMouseAlone(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("s"))

	require.Nil(t, cmd)
}
