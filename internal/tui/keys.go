package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/interpretive-systems/gitdeck/internal/app"
)

// keyMap holds every binding the controller recognises.
type keyMap struct {
	Interrupt key.Binding
	Quit      key.Binding
	Files     key.Binding
	History   key.Binding
	Branches  key.Binding
	Refresh   key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Stage    key.Binding
	StageAll key.Binding
	Commit   key.Binding
	Push     key.Binding
	Pull     key.Binding
	Sync     key.Binding
	Diff     key.Binding

	NewBranch    key.Binding
	DeleteBranch key.Binding
	Checkout     key.Binding

	CopyID key.Binding

	Confirm   key.Binding
	Cancel    key.Binding
	Toggle    key.Binding
	Backspace key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		// ctrl+c is never text input; it quits even with a dialog open.
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Files:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "files")),
		History:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "history")),
		Branches:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "branches")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "diff up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "diff down")),

		Stage:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stage")),
		StageAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "stage all")),
		Commit:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "commit")),
		Push:     key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "push")),
		Pull:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pull")),
		Sync:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sync")),
		Diff:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reload diff")),

		NewBranch:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new branch")),
		DeleteBranch: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Checkout:     key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "checkout")),

		CopyID: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy id")),

		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
	}
}

// contextHelp returns the bindings worth showing for the current state.
func (k keyMap) contextHelp(s *app.State) []key.Binding {
	switch d := s.Dialog.(type) {
	case *app.CommitDialog, *app.DeleteConfirmDialog:
		return []key.Binding{k.Confirm, k.Cancel}
	case *app.BranchCreateDialog:
		if d.Mode == app.ModeBaseSelect {
			return []key.Binding{k.Up, k.Down, withHelp(k.Confirm, "enter", "back to name"), k.Cancel}
		}
		return []key.Binding{withHelp(k.Toggle, "tab", "choose base"), withHelp(k.Confirm, "enter", "create"), k.Cancel}
	}

	nav := []key.Binding{k.Up, k.Down}
	global := []key.Binding{k.Refresh, k.Quit}
	switch s.View {
	case app.ViewHistory:
		return join(nav, []key.Binding{k.CopyID}, global)
	case app.ViewBranches:
		return join(nav, []key.Binding{k.Checkout, k.NewBranch, k.DeleteBranch}, global)
	default:
		return join(nav, []key.Binding{k.Stage, k.StageAll, k.Commit, k.Pull, k.Push, k.Sync, k.PageDown}, global)
	}
}

func withHelp(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}

func join(groups ...[]key.Binding) []key.Binding {
	var out []key.Binding
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
