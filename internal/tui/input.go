package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/gitdeck/internal/app"
)

// HandleKey applies one key press to s. Global keys only apply with no
// dialog open, and an open dialog swallows every other key.
func (c *Controller) HandleKey(s *app.State, msg tea.KeyMsg) {
	if key.Matches(msg, c.keys.Interrupt) {
		s.ShouldQuit = true
		return
	}
	if !s.DialogOpen() && c.handleGlobal(s, msg) {
		return
	}
	if s.DialogOpen() {
		c.handleDialog(s, msg)
		return
	}
	if c.handleNavigation(s, msg) {
		return
	}
	switch s.View {
	case app.ViewFiles:
		c.handleFilesKey(s, msg)
	case app.ViewHistory:
		c.handleHistoryKey(s, msg)
	case app.ViewBranches:
		c.handleBranchesKey(s, msg)
	}
}

// HandleMouse scrolls the diff with the wheel in the Files view.
func (c *Controller) HandleMouse(s *app.State, msg tea.MouseMsg) {
	if s.DialogOpen() || s.View != app.ViewFiles || msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		s.ScrollDiffUp(1)
	case tea.MouseButtonWheelDown:
		s.ScrollDiffDown(1)
	}
}

// SelectView switches to v and refreshes it. Ignored while a dialog is open.
func (c *Controller) SelectView(s *app.State, v app.View) {
	if s.DialogOpen() {
		return
	}
	s.SwitchView(v)
	c.refresh(s, c.RefreshCurrentView)
}

func (c *Controller) handleGlobal(s *app.State, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, c.keys.Quit):
		s.ShouldQuit = true
	case key.Matches(msg, c.keys.Files):
		c.SelectView(s, app.ViewFiles)
	case key.Matches(msg, c.keys.History):
		c.SelectView(s, app.ViewHistory)
	case key.Matches(msg, c.keys.Branches):
		c.SelectView(s, app.ViewBranches)
	case key.Matches(msg, c.keys.Refresh):
		if c.refresh(s, c.RefreshCurrentView) {
			s.SetStatus("Refreshed")
		}
	default:
		return false
	}
	return true
}

func (c *Controller) handleNavigation(s *app.State, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, c.keys.Up):
		c.moved(s, s.PreviousItem())
	case key.Matches(msg, c.keys.Down):
		c.moved(s, s.NextItem())
	case s.View == app.ViewFiles && key.Matches(msg, c.keys.PageUp):
		s.ScrollDiffUp(c.pageStep)
	case s.View == app.ViewFiles && key.Matches(msg, c.keys.PageDown):
		s.ScrollDiffDown(c.pageStep)
	default:
		return false
	}
	return true
}

// moved reloads the diff when the Files selection changed.
func (c *Controller) moved(s *app.State, changed bool) {
	if !changed || s.View != app.ViewFiles {
		return
	}
	s.ResetDiffScroll()
	c.loadDiff(s)
}

func (c *Controller) handleFilesKey(s *app.State, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Stage):
		c.stageSelected(s)
	case key.Matches(msg, c.keys.StageAll):
		c.stageAll(s)
	case key.Matches(msg, c.keys.Commit):
		s.OpenCommitDialog()
	case key.Matches(msg, c.keys.Push):
		c.network(s, "Push", "Pushing...", "Pushed successfully", c.backend.Push)
	case key.Matches(msg, c.keys.Pull):
		c.network(s, "Pull", "Pulling...", "Pulled successfully", c.backend.Pull)
	case key.Matches(msg, c.keys.Sync):
		c.network(s, "Sync", "Syncing...", "Synced successfully", c.backend.Sync)
	case key.Matches(msg, c.keys.Diff):
		c.loadDiff(s)
	}
}

func (c *Controller) handleHistoryKey(s *app.State, msg tea.KeyMsg) {
	if !key.Matches(msg, c.keys.CopyID) {
		return
	}
	commit, ok := s.History.Current()
	if !ok {
		return
	}
	if err := c.copyText(commit.ID); err != nil {
		c.fail(s, "Copy", err)
		return
	}
	s.SetStatus("Copied " + commit.ID)
}

func (c *Controller) handleBranchesKey(s *app.State, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.NewBranch):
		base, _ := s.CurrentBranchIndex()
		s.OpenBranchCreateDialog(base)
	case key.Matches(msg, c.keys.DeleteBranch):
		b, ok := s.Branches.Current()
		if !ok {
			return
		}
		if b.IsCurrent {
			s.SetStatus("Cannot delete the current branch")
			return
		}
		s.OpenDeleteConfirm(b.Name)
	case key.Matches(msg, c.keys.Checkout):
		c.checkoutSelected(s)
	}
}

func (c *Controller) stageSelected(s *app.State) {
	f, ok := s.Files.Current()
	if !ok {
		return
	}
	c.log.Debug("stage", "path", f.Path)
	if err := c.backend.StageFile(f.Path); err != nil {
		c.fail(s, "Stage", err)
		return
	}
	s.SetStatus("Staged: " + f.Path)
	c.refresh(s, c.RefreshFiles)
}

func (c *Controller) stageAll(s *app.State) {
	c.log.Debug("stage all")
	if err := c.backend.StageAll(); err != nil {
		c.fail(s, "Stage all", err)
		return
	}
	s.SetStatus("Staged all files")
	c.refresh(s, c.RefreshFiles)
}

// network runs a remote operation with the terminal handed over to git.
func (c *Controller) network(s *app.State, action, pending, done string, fn func() error) {
	c.log.Debug("network", "action", action)
	s.SetStatus(pending)
	if err := c.withTerminalReleased(fn); err != nil {
		c.fail(s, action, err)
		return
	}
	s.SetStatus(done)
	c.refresh(s, c.RefreshCurrentView)
}

func (c *Controller) checkoutSelected(s *app.State) {
	b, ok := s.Branches.Current()
	if !ok || b.IsCurrent {
		return
	}
	c.log.Debug("checkout", "branch", b.Name)
	if err := c.backend.CheckoutBranch(b.Name); err != nil {
		c.fail(s, "Checkout", err)
		return
	}
	s.SetStatus("Checked out: " + b.Name)
	c.refresh(s, c.RefreshBranches, c.RefreshFiles)
}
