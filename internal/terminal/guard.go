// Package terminal restores the controlling terminal when the process dies
// abnormally.
package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

// resetSequence leaves the alternate screen, shows the cursor and turns off
// mouse reporting.
var resetSequence = ansi.ResetButtonEventMouseMode +
	ansi.ResetSgrExtMouseMode +
	ansi.ShowCursor +
	ansi.ResetAltScreenSaveCursorMode

// Guard holds the terminal mode captured at startup.
type Guard struct {
	fd    uintptr
	state *term.State
	out   io.Writer
	exit  func(int)
}

// Capture records the current mode of in. When in is not a terminal the
// guard only writes the reset sequence on Restore.
func Capture(in, out *os.File) *Guard {
	g := &Guard{fd: in.Fd(), out: out, exit: os.Exit}
	if term.IsTerminal(g.fd) {
		if st, err := term.GetState(g.fd); err == nil {
			g.state = st
		}
	}
	return g
}

// Restore puts the terminal back into the captured mode. Safe to call more
// than once.
func (g *Guard) Restore() error {
	if g == nil {
		return nil
	}
	if g.out != nil {
		if _, err := io.WriteString(g.out, resetSequence); err != nil {
			return fmt.Errorf("reset terminal: %w", err)
		}
	}
	if g.state != nil {
		if err := term.Restore(g.fd, g.state); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return nil
}

// Recover must be deferred once at the top of the process. On panic it
// restores the terminal, then reports the panic and exits with status 2.
func (g *Guard) Recover() {
	r := recover()
	if r == nil {
		return
	}
	_ = g.Restore()
	fmt.Fprintf(os.Stderr, "gitdeck: panic: %v\n\n%s", r, debug.Stack())
	g.exit(2)
}
