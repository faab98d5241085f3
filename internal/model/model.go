// Package model holds the snapshot types read from the repository.
package model

// Two-character status codes shown next to each changed file.
const (
	StatusIndexNew         = "A "
	StatusIndexModified    = "M "
	StatusIndexDeleted     = "D "
	StatusWorktreeNew      = "??"
	StatusWorktreeModified = " M"
	StatusWorktreeDeleted  = " D"
	StatusUnknown          = "  "
)

// CommitInfo describes one commit in the history view.
type CommitInfo struct {
	ID      string // 7-character short hash
	Author  string
	Date    string // "2006-01-02 15:04:05", UTC
	Message string // first line only
}

// FileStatus is a changed path and its status code.
type FileStatus struct {
	Path   string
	Status string
}

// Untracked reports whether the file is new in the worktree and not yet in the index.
func (f FileStatus) Untracked() bool {
	return f.Status == StatusWorktreeNew
}

// BranchInfo is a local branch. At most one branch per listing is current.
type BranchInfo struct {
	Name      string
	IsCurrent bool
}

// StatusCode maps the index and worktree letters of a porcelain status entry
// to a display code. Index changes win over worktree changes; within each
// side new beats modified beats deleted.
func StatusCode(index, worktree byte) string {
	if index == '?' || worktree == '?' {
		return StatusWorktreeNew
	}
	switch index {
	case 'A':
		return StatusIndexNew
	case 'M':
		return StatusIndexModified
	case 'D':
		return StatusIndexDeleted
	}
	switch worktree {
	case 'M':
		return StatusWorktreeModified
	case 'D':
		return StatusWorktreeDeleted
	}
	return StatusUnknown
}
