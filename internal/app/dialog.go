package app

import "unicode"

// Dialog is the modal overlay currently capturing input. A nil Dialog means
// none is open; the concrete types below are the only implementations.
type Dialog interface {
	dialog()
}

// CommitDialog collects a commit message.
type CommitDialog struct {
	Message string
}

// BranchMode is the sub-mode of the branch-create dialog.
type BranchMode int

const (
	ModeNameEntry BranchMode = iota
	ModeBaseSelect
)

func (m BranchMode) String() string {
	if m == ModeBaseSelect {
		return "base-select"
	}
	return "name-entry"
}

// BranchCreateDialog collects a new branch name and the branch it starts from.
// BaseSelected indexes the branches list.
type BranchCreateDialog struct {
	Name         string
	BaseSelected int
	Mode         BranchMode
}

// Toggle flips between name entry and base selection.
func (d *BranchCreateDialog) Toggle() {
	if d.Mode == ModeNameEntry {
		d.Mode = ModeBaseSelect
		return
	}
	d.Mode = ModeNameEntry
}

// MoveBase moves the base selection by delta within [0, n).
func (d *BranchCreateDialog) MoveBase(delta, n int) {
	next := d.BaseSelected + delta
	if next >= n {
		next = n - 1
	}
	if next < 0 {
		next = 0
	}
	d.BaseSelected = next
}

// DeleteConfirmDialog asks before deleting Target.
type DeleteConfirmDialog struct {
	Target       string
	Confirmation string
}

func (*CommitDialog) dialog()        {}
func (*BranchCreateDialog) dialog()  {}
func (*DeleteConfirmDialog) dialog() {}

// AppendPrintable appends the printable runes of rs to buf.
func AppendPrintable(buf string, rs []rune) string {
	out := []rune(buf)
	for _, r := range rs {
		if unicode.IsPrint(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Backspace drops the last rune of buf.
func Backspace(buf string) string {
	rs := []rune(buf)
	if len(rs) == 0 {
		return buf
	}
	return string(rs[:len(rs)-1])
}
