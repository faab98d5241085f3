// Package tui runs the interactive gitdeck session on bubbletea.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/interpretive-systems/gitdeck/internal/app"
	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/logging"
	"github.com/interpretive-systems/gitdeck/internal/theme"
	"github.com/interpretive-systems/gitdeck/internal/tui/components"
)

type tickMsg struct{}

// Model is the bubbletea model. All state lives in state; the controller
// mutates it and View reads it.
type Model struct {
	state *app.State
	ctl   *Controller
	keys  keyMap

	help     help.Model
	zones    *zone.Manager
	theme    theme.Theme
	layout   *Layout
	interval time.Duration

	files    *components.List
	history  *components.List
	branches *components.List
	diff     *components.DiffView
	status   *components.StatusBar
}

// NewModel wires a model around an already loaded state.
func NewModel(s *app.State, ctl *Controller, th theme.Theme, cfg config.Config) *Model {
	return &Model{
		state:    s,
		ctl:      ctl,
		keys:     newKeyMap(),
		help:     help.New(),
		zones:    zone.New(),
		theme:    th,
		layout:   NewLayout(cfg.FilesPanePercent),
		interval: cfg.RedrawInterval,
		files:    components.NewList("No changes"),
		history:  components.NewList("No commits"),
		branches: components.NewList("No branches"),
		diff:     components.NewDiffView(th),
		status:   components.NewStatusBar(th),
	}
}

// Run loads the repository state and blocks until the user quits.
func Run(repoPath string, backend Backend, cfg config.Config, log logging.Logger) error {
	term := &programTerminal{}
	ctl := NewController(backend,
		WithTerminal(term),
		WithLogger(log),
		WithCommitLimit(cfg.CommitLimit),
		WithPageStep(cfg.DiffPageStep),
	)

	s := app.New(repoPath)
	_ = ctl.RefreshAll(s)

	m := NewModel(s, ctl, theme.LoadFromRepo(repoPath, cfg.Theme), cfg)
	defer m.zones.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	term.p = p
	log.Info("session started", "repo", repoPath)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info("session ended")
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
	case tickMsg:
		cmd = m.tick()
	case tea.KeyMsg:
		m.ctl.HandleKey(m.state, msg)
		if m.ctl.takeReleased() {
			cmd = tea.EnableMouseCellMotion
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.clampDiffScroll()
	if m.state.ShouldQuit {
		return m, tea.Quit
	}
	return m, cmd
}

// handleMouse turns a click on a header tab into a view switch; anything
// else goes to the controller.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		for _, v := range app.Views {
			if m.zones.Get(tabZoneID(v)).InBounds(msg) {
				m.ctl.SelectView(m.state, v)
				return
			}
		}
	}
	m.ctl.HandleMouse(m.state, msg)
}

// clampDiffScroll keeps the scroll offset within the rendered diff.
func (m *Model) clampDiffScroll() {
	s := m.state
	m.diff.SetText(s.DiffText, s.DiffLoaded)
	if limit := m.diff.MaxScroll(m.bodyHeight()); s.DiffScroll > limit {
		s.DiffScroll = limit
	}
}

func (m *Model) bodyHeight() int {
	return m.layout.ContentHeight(len(m.overlayLines()))
}
