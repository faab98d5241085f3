package tui

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/interpretive-systems/gitdeck/internal/app"
	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/logging"
	"github.com/interpretive-systems/gitdeck/internal/model"
)

// Backend is the repository the controller drives. Push, Pull, Sync and
// PushBranch may prompt on the terminal.
type Backend interface {
	CurrentBranch() (string, error)
	Branches() ([]model.BranchInfo, error)
	Commits(limit int) ([]model.CommitInfo, error)
	Status() ([]model.FileStatus, error)
	DiffForFile(path string) (string, error)

	StageFile(path string) error
	StageAll() error
	Commit(message string) error
	CreateBranch(name, base string) error
	CheckoutBranch(name string) error
	DeleteBranch(name string) error

	Push() error
	Pull() error
	Sync() error
	PushBranch(name string) error
}

// Controller routes input to state changes and backend calls. It holds no
// state of its own; every method takes the session state explicitly.
type Controller struct {
	backend     Backend
	term        Terminal
	log         logging.Logger
	keys        keyMap
	commitLimit int
	pageStep    int
	copyText    func(string) error

	released bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTerminal sets the terminal released around network calls.
func WithTerminal(t Terminal) Option {
	return func(c *Controller) { c.term = t }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithCommitLimit caps the history view.
func WithCommitLimit(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.commitLimit = n
		}
	}
}

// WithPageStep sets how far page-up/page-down scroll the diff.
func WithPageStep(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageStep = n
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(c *Controller) { c.copyText = fn }
}

// NewController returns a controller for backend.
func NewController(backend Backend, opts ...Option) *Controller {
	c := &Controller{
		backend:     backend,
		log:         logging.Nop(),
		keys:        newKeyMap(),
		commitLimit: config.DefaultCommitLimit,
		pageStep:    config.DefaultDiffPageStep,
		copyText:    clipboard.WriteAll,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// fail records a failed action in the status line.
func (c *Controller) fail(s *app.State, action string, err error) {
	c.log.Warn("action failed", "action", action, "err", err)
	s.SetStatus(fmt.Sprintf("%s failed: %v", action, err))
}
