// Package gitx is the repository backend. Reads go through go-git; anything
// that writes the index or worktree, or talks to a remote, shells out to git.
package gitx

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/interpretive-systems/gitdeck/internal/model"
)

const (
	DefaultRemote      = "origin"
	DefaultCommitLimit = 100

	dateLayout = "2006-01-02 15:04:05"
	detached   = "HEAD"
)

// Repo is an open working tree.
type Repo struct {
	root   string
	remote string
	run    Runner
}

// Option configures a Repo.
type Option func(*Repo)

// WithRunner replaces the git binary runner.
func WithRunner(r Runner) Option {
	return func(repo *Repo) { repo.run = r }
}

// WithRemote sets the remote used when a branch has no upstream.
func WithRemote(name string) Option {
	return func(repo *Repo) {
		if strings.TrimSpace(name) != "" {
			repo.remote = name
		}
	}
}

// Open discovers the repository containing path, walking up parent
// directories, and returns it rooted at its worktree.
func Open(path string, opts ...Option) (*Repo, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	gr, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %s: %w", path, err)
	}
	wt, err := gr.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	r := &Repo{root: wt.Filesystem.Root(), remote: DefaultRemote, run: OSRunner{}}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// Root returns the worktree root.
func (r *Repo) Root() string { return r.root }

// Remote returns the fallback remote name.
func (r *Repo) Remote() string { return r.remote }

// open reloads the repository. The git binary writes packs and refs behind
// go-git's back, so handles are not kept between calls.
func (r *Repo) open() (*git.Repository, error) {
	gr, err := git.PlainOpenWithOptions(r.root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return gr, nil
}

// CurrentBranch returns the checked-out branch name, or "HEAD" when detached.
// Works on a branch with no commits yet.
func (r *Repo) CurrentBranch() (string, error) {
	gr, err := r.open()
	if err != nil {
		return "", err
	}
	ref, err := gr.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short(), nil
	}
	return detached, nil
}

// Branches lists local branches sorted by name.
func (r *Repo) Branches() ([]model.BranchInfo, error) {
	gr, err := r.open()
	if err != nil {
		return nil, err
	}
	current, err := r.CurrentBranch()
	if err != nil {
		return nil, err
	}
	iter, err := gr.Branches()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	sort.Strings(names)

	out := make([]model.BranchInfo, 0, len(names))
	for _, n := range names {
		out = append(out, model.BranchInfo{Name: n, IsCurrent: n == current})
	}
	return out, nil
}

// Commits returns up to limit commits reachable from HEAD, newest first.
// A branch with no commits yields an empty list.
func (r *Repo) Commits(limit int) ([]model.CommitInfo, error) {
	gr, err := r.open()
	if err != nil {
		return nil, err
	}
	head, err := gr.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	iter, err := gr.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	defer iter.Close()

	var out []model.CommitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(out) >= limit {
			return storer.ErrStop
		}
		out = append(out, model.CommitInfo{
			ID:      c.Hash.String()[:7],
			Author:  c.Author.Name,
			Date:    c.Committer.When.UTC().Format(dateLayout),
			Message: firstLine(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return out, nil
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, "\n")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// CreateBranch creates a local branch named name pointing at base. It does
// not switch to it.
func (r *Repo) CreateBranch(name, base string) error {
	gr, err := r.open()
	if err != nil {
		return err
	}
	if _, err := r.run.Run(r.root, "check-ref-format", "--branch", name); err != nil {
		return fmt.Errorf("invalid branch name %q", name)
	}
	refName := plumbing.NewBranchReferenceName(name)
	if _, err := gr.Reference(refName, false); err == nil {
		return fmt.Errorf("branch %q already exists", name)
	}
	hash, err := gr.ResolveRevision(plumbing.Revision(base))
	if err != nil {
		return fmt.Errorf("resolve %q: %w", base, err)
	}
	if err := gr.Storer.SetReference(plumbing.NewHashReference(refName, *hash)); err != nil {
		return fmt.Errorf("create branch %q: %w", name, err)
	}
	return nil
}

// Status lists changed files, untracked ones expanded to individual paths,
// sorted by path. A staged rename is reported as an added and a deleted path.
func (r *Repo) Status() ([]model.FileStatus, error) {
	out, err := r.run.Run(r.root, "status", "--porcelain=v1", "-z", "--untracked-files=all", "--no-renames")
	if err != nil {
		return nil, err
	}
	return parseStatus(out), nil
}

// parseStatus reads NUL-separated porcelain v1 entries produced without
// rename detection, so every entry is a single path.
func parseStatus(out string) []model.FileStatus {
	entries := strings.Split(out, "\x00")
	files := make([]model.FileStatus, 0, len(entries))
	for _, e := range entries {
		if len(e) < 4 {
			continue
		}
		files = append(files, model.FileStatus{Path: e[3:], Status: model.StatusCode(e[0], e[1])})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// DiffForFile returns the diff text for path. Untracked files are shown as
// all-added; otherwise the worktree diff is preferred over the staged one.
func (r *Repo) DiffForFile(path string) (string, error) {
	if !r.isTracked(path) {
		full := filepath.Join(r.root, filepath.FromSlash(path))
		if data, err := os.ReadFile(full); err == nil {
			return untrackedDiff(path, data), nil
		}
	}
	out, err := r.run.Run(r.root, "diff", "--no-color", "--", path)
	if err != nil {
		return "", err
	}
	if out != "" {
		return out, nil
	}
	out, err = r.run.Run(r.root, "diff", "--no-color", "--cached", "--", path)
	if err != nil {
		return "", err
	}
	if out != "" {
		return out, nil
	}
	return "No changes to display for: " + path, nil
}

func untrackedDiff(path string, data []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New file: %s\n--- /dev/null\n+++ %s\n", path, path)
	if bytes.IndexByte(data, 0) >= 0 {
		b.WriteString("Binary file not shown\n")
		return b.String()
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return b.String()
	}
	for _, line := range strings.Split(content, "\n") {
		b.WriteString("+")
		b.WriteString(strings.TrimSuffix(line, "\r"))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Repo) isTracked(path string) bool {
	_, err := r.run.Run(r.root, "ls-files", "--error-unmatch", "--", path)
	return err == nil
}

// StageFile stages path, including deletions.
func (r *Repo) StageFile(path string) error {
	_, err := r.run.Run(r.root, "add", "-A", "--", path)
	return err
}

// StageAll stages every change in the worktree.
func (r *Repo) StageAll() error {
	_, err := r.run.Run(r.root, "add", "-A")
	return err
}

// Commit records the index with message.
func (r *Repo) Commit(message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("empty commit message")
	}
	_, err := r.run.Run(r.root, "commit", "-m", message)
	return err
}

// CheckoutBranch switches the worktree to branch name.
func (r *Repo) CheckoutBranch(name string) error {
	_, err := r.run.Run(r.root, "checkout", name, "--")
	return err
}

// DeleteBranch deletes a fully merged local branch.
func (r *Repo) DeleteBranch(name string) error {
	_, err := r.run.Run(r.root, "branch", "-d", name)
	return err
}

// Push pushes the current branch. Without an upstream it pushes to the
// configured remote and sets one.
func (r *Repo) Push() error {
	if r.hasUpstream() {
		return r.run.RunAttached(r.root, "push")
	}
	branch, err := r.pushableBranch()
	if err != nil {
		return err
	}
	return r.run.RunAttached(r.root, "push", "-u", r.remote, branch)
}

// Pull fast-forwards the current branch from its upstream, or from the
// same-named branch on the configured remote. Diverged histories fail.
func (r *Repo) Pull() error {
	if r.hasUpstream() {
		return r.run.RunAttached(r.root, "pull", "--ff-only")
	}
	branch, err := r.pushableBranch()
	if err != nil {
		return err
	}
	return r.run.RunAttached(r.root, "pull", "--ff-only", r.remote, branch)
}

// Sync pulls then pushes.
func (r *Repo) Sync() error {
	if err := r.Pull(); err != nil {
		return fmt.Errorf("pull: %w", err)
	}
	if err := r.Push(); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// PushBranch publishes branch name to the configured remote and tracks it.
func (r *Repo) PushBranch(name string) error {
	return r.run.RunAttached(r.root, "push", "-u", r.remote, name)
}

func (r *Repo) hasUpstream() bool {
	_, err := r.run.Run(r.root, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	return err == nil
}

func (r *Repo) pushableBranch() (string, error) {
	branch, err := r.CurrentBranch()
	if err != nil {
		return "", err
	}
	if branch == detached {
		return "", errors.New("HEAD is detached")
	}
	return branch, nil
}
