// Package app holds the interactive state of a gitdeck session. State is
// owned by the event loop and mutated only through the controller.
package app

import "github.com/interpretive-systems/gitdeck/internal/model"

// View is one of the three top-level screens.
type View int

const (
	ViewFiles View = iota
	ViewHistory
	ViewBranches
)

func (v View) String() string {
	switch v {
	case ViewHistory:
		return "History"
	case ViewBranches:
		return "Branches"
	default:
		return "Files"
	}
}

// Views lists the screens in header order.
var Views = []View{ViewFiles, ViewHistory, ViewBranches}

// State is everything the renderer needs to draw a frame.
type State struct {
	RepoPath      string
	View          View
	ShouldQuit    bool
	CurrentBranch string

	Files    List[model.FileStatus]
	History  List[model.CommitInfo]
	Branches List[model.BranchInfo]

	// DiffText is meaningful only when DiffLoaded is set.
	DiffText   string
	DiffLoaded bool
	DiffScroll int

	Status string
	Dialog Dialog
}

// New returns the startup state: Files view, empty lists, no dialog.
func New(repoPath string) *State {
	return &State{RepoPath: repoPath, View: ViewFiles}
}

// SwitchView changes the active screen.
func (s *State) SwitchView(v View) { s.View = v }

// NextItem moves the active list's selection down and reports whether it moved.
func (s *State) NextItem() bool {
	switch s.View {
	case ViewHistory:
		return s.History.Next()
	case ViewBranches:
		return s.Branches.Next()
	default:
		return s.Files.Next()
	}
}

// PreviousItem moves the active list's selection up and reports whether it moved.
func (s *State) PreviousItem() bool {
	switch s.View {
	case ViewHistory:
		return s.History.Previous()
	case ViewBranches:
		return s.Branches.Previous()
	default:
		return s.Files.Previous()
	}
}

// ScrollDiffUp scrolls toward the top, stopping at zero.
func (s *State) ScrollDiffUp(n int) {
	s.DiffScroll -= n
	if s.DiffScroll < 0 {
		s.DiffScroll = 0
	}
}

// ScrollDiffDown scrolls toward the bottom. The renderer clamps the far end.
func (s *State) ScrollDiffDown(n int) { s.DiffScroll += n }

func (s *State) ResetDiffScroll() { s.DiffScroll = 0 }

// SetDiff stores diff text for the selected file.
func (s *State) SetDiff(text string) {
	s.DiffText = text
	s.DiffLoaded = true
}

// ClearDiff drops the diff and its scroll position.
func (s *State) ClearDiff() {
	s.DiffText = ""
	s.DiffLoaded = false
	s.DiffScroll = 0
}

func (s *State) SetStatus(text string) { s.Status = text }

// DialogOpen reports whether a modal dialog is capturing input.
func (s *State) DialogOpen() bool { return s.Dialog != nil }

// OpenCommitDialog opens an empty commit dialog.
func (s *State) OpenCommitDialog() {
	s.Dialog = &CommitDialog{}
}

// OpenBranchCreateDialog opens an empty branch-create dialog with base
// pre-selected.
func (s *State) OpenBranchCreateDialog(base int) {
	s.Dialog = &BranchCreateDialog{BaseSelected: base, Mode: ModeNameEntry}
}

// OpenDeleteConfirm opens the delete confirmation bound to target.
func (s *State) OpenDeleteConfirm(target string) {
	s.Dialog = &DeleteConfirmDialog{Target: target}
}

// CloseDialog discards the open dialog and its buffers.
func (s *State) CloseDialog() { s.Dialog = nil }

// CurrentBranchIndex returns the index of the checked-out branch in the
// branches list, or false if none is marked current.
func (s *State) CurrentBranchIndex() (int, bool) {
	for i, b := range s.Branches.Items {
		if b.IsCurrent {
			return i, true
		}
	}
	return 0, false
}
