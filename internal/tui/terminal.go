package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal hands the screen to a subprocess and takes it back.
// *tea.Program satisfies it.
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// withTerminalReleased runs fn with the terminal in cooked mode and the
// alternate screen off, so git can print progress and prompt for
// credentials. The terminal is restored on every exit path, including a
// panic inside fn. No redraw or input handling happens in between because
// fn runs on the event loop.
func (c *Controller) withTerminalReleased(fn func() error) error {
	if c.term == nil {
		return fn()
	}
	if err := c.term.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	c.released = true
	defer func() {
		if err := c.term.RestoreTerminal(); err != nil {
			c.log.Error("restore terminal", "err", err)
		}
	}()
	return fn()
}

// takeReleased reports whether the terminal was handed over since the last
// call. Restoring the terminal leaves mouse reporting off, so the model
// re-enables it when this is set.
func (c *Controller) takeReleased() bool {
	r := c.released
	c.released = false
	return r
}

// programTerminal lets the controller be built before the program exists.
type programTerminal struct {
	p *tea.Program
}

func (t *programTerminal) ReleaseTerminal() error {
	if t.p == nil {
		return nil
	}
	return t.p.ReleaseTerminal()
}

func (t *programTerminal) RestoreTerminal() error {
	if t.p == nil {
		return nil
	}
	return t.p.RestoreTerminal()
}
