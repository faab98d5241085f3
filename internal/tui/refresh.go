package tui

import (
	"errors"
	"fmt"

	"github.com/interpretive-systems/gitdeck/internal/app"
)

// RefreshFiles reloads the changed files and the diff of the selected one.
func (c *Controller) RefreshFiles(s *app.State) error {
	files, err := c.backend.Status()
	if err != nil {
		return fmt.Errorf("files: %w", err)
	}
	prev, hadPrev := s.Files.Current()
	s.Files.Replace(files)

	cur, ok := s.Files.Current()
	if !ok {
		s.ClearDiff()
		return nil
	}
	if !hadPrev || prev.Path != cur.Path {
		s.ResetDiffScroll()
	}
	c.loadDiff(s)
	return nil
}

// RefreshHistory reloads the commit log.
func (c *Controller) RefreshHistory(s *app.State) error {
	commits, err := c.backend.Commits(c.commitLimit)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	s.History.Replace(commits)
	return nil
}

// RefreshBranches reloads local branches and the current branch name.
func (c *Controller) RefreshBranches(s *app.State) error {
	branches, err := c.backend.Branches()
	if err != nil {
		return fmt.Errorf("branches: %w", err)
	}
	current, err := c.backend.CurrentBranch()
	if err != nil {
		return fmt.Errorf("current branch: %w", err)
	}
	s.Branches.Replace(branches)
	s.CurrentBranch = current
	return nil
}

// RefreshCurrentView reloads whichever list is on screen.
func (c *Controller) RefreshCurrentView(s *app.State) error {
	switch s.View {
	case app.ViewHistory:
		return c.RefreshHistory(s)
	case app.ViewBranches:
		return c.RefreshBranches(s)
	default:
		return c.RefreshFiles(s)
	}
}

// RefreshAll loads every view. Failures are joined and reported in the
// status line; whatever loaded stays loaded.
func (c *Controller) RefreshAll(s *app.State) error {
	err := errors.Join(c.RefreshBranches(s), c.RefreshFiles(s), c.RefreshHistory(s))
	if err != nil {
		c.log.Warn("initial load", "err", err)
		s.SetStatus(fmt.Sprintf("Refresh failed: %v", err))
	}
	return err
}

// refresh runs each refresher in order and reports the first failure.
func (c *Controller) refresh(s *app.State, fns ...func(*app.State) error) bool {
	for _, fn := range fns {
		if err := fn(s); err != nil {
			c.log.Warn("refresh failed", "err", err)
			s.SetStatus(fmt.Sprintf("Refresh failed: %v", err))
			return false
		}
	}
	return true
}

// loadDiff fetches the diff of the selected file. A failure becomes the diff
// text rather than a status message.
func (c *Controller) loadDiff(s *app.State) {
	f, ok := s.Files.Current()
	if !ok {
		s.ClearDiff()
		return
	}
	text, err := c.backend.DiffForFile(f.Path)
	if err != nil {
		c.log.Warn("diff failed", "path", f.Path, "err", err)
		text = fmt.Sprintf("Error getting diff: %v", err)
	}
	s.SetDiff(text)
}
