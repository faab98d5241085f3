package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/gitdeck/internal/app"
)

func (c *Controller) handleDialog(s *app.State, msg tea.KeyMsg) {
	switch d := s.Dialog.(type) {
	case *app.CommitDialog:
		c.handleCommitDialog(s, d, msg)
	case *app.BranchCreateDialog:
		c.handleBranchCreateDialog(s, d, msg)
	case *app.DeleteConfirmDialog:
		c.handleDeleteConfirm(s, d, msg)
	}
}

// editText applies text-entry keys to buf.
func (c *Controller) editText(buf string, msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, c.keys.Backspace):
		return app.Backspace(buf)
	case msg.Type == tea.KeySpace:
		return buf + " "
	case msg.Type == tea.KeyRunes:
		return app.AppendPrintable(buf, msg.Runes)
	}
	return buf
}

func (c *Controller) handleCommitDialog(s *app.State, d *app.CommitDialog, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		s.CloseDialog()
	case key.Matches(msg, c.keys.Confirm):
		if strings.TrimSpace(d.Message) == "" {
			return
		}
		c.log.Debug("commit")
		if err := c.backend.Commit(d.Message); err != nil {
			c.fail(s, "Commit", err)
			return
		}
		s.SetStatus("Committed successfully")
		s.CloseDialog()
		c.refresh(s, c.RefreshFiles)
	default:
		d.Message = c.editText(d.Message, msg)
	}
}

func (c *Controller) handleBranchCreateDialog(s *app.State, d *app.BranchCreateDialog, msg tea.KeyMsg) {
	if d.Mode == app.ModeBaseSelect {
		switch {
		case key.Matches(msg, c.keys.Up):
			d.MoveBase(-1, s.Branches.Len())
		case key.Matches(msg, c.keys.Down):
			d.MoveBase(1, s.Branches.Len())
		case key.Matches(msg, c.keys.Confirm), key.Matches(msg, c.keys.Toggle):
			d.Mode = app.ModeNameEntry
		case key.Matches(msg, c.keys.Cancel):
			s.CloseDialog()
		}
		return
	}

	switch {
	case key.Matches(msg, c.keys.Cancel):
		s.CloseDialog()
	case key.Matches(msg, c.keys.Toggle):
		d.Toggle()
	case key.Matches(msg, c.keys.Confirm):
		c.createBranch(s, d)
	default:
		d.Name = c.editText(d.Name, msg)
	}
}

// createBranch creates the branch locally, then publishes it with the
// terminal released. A failed push still counts as created.
func (c *Controller) createBranch(s *app.State, d *app.BranchCreateDialog) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return
	}
	base := s.CurrentBranch
	if d.BaseSelected >= 0 && d.BaseSelected < s.Branches.Len() {
		base = s.Branches.Items[d.BaseSelected].Name
	}
	c.log.Debug("create branch", "name", name, "base", base)
	if err := c.backend.CreateBranch(name, base); err != nil {
		c.fail(s, "Create branch", err)
		return
	}

	s.SetStatus("Pushing branch to remote...")
	if err := c.withTerminalReleased(func() error { return c.backend.PushBranch(name) }); err != nil {
		c.log.Warn("push branch failed", "name", name, "err", err)
		s.SetStatus("Created branch locally but failed to push: " + err.Error())
	} else {
		s.SetStatus("Created and pushed branch: " + name)
	}
	s.CloseDialog()
	c.refresh(s, c.RefreshBranches)
}

func (c *Controller) handleDeleteConfirm(s *app.State, d *app.DeleteConfirmDialog, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		s.CloseDialog()
	case key.Matches(msg, c.keys.Confirm):
		answer := strings.ToLower(strings.TrimSpace(d.Confirmation))
		if answer != "y" && answer != "yes" {
			s.SetStatus("Delete cancelled")
			s.CloseDialog()
			return
		}
		c.log.Debug("delete branch", "name", d.Target)
		if err := c.backend.DeleteBranch(d.Target); err != nil {
			c.fail(s, "Delete branch", err)
			return
		}
		s.SetStatus("Deleted branch: " + d.Target)
		s.CloseDialog()
		c.refresh(s, c.RefreshBranches)
	default:
		d.Confirmation = c.editText(d.Confirmation, msg)
	}
}
