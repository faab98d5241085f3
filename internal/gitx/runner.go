package gitx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Runner executes git subcommands. Run captures stdout; RunAttached wires the
// subprocess to the real terminal so git can prompt for credentials.
type Runner interface {
	Run(dir string, args ...string) (string, error)
	RunAttached(dir string, args ...string) error
}

// OSRunner runs the git binary found on PATH.
type OSRunner struct {
	// Stdin, Stdout and Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r OSRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", commandError(args, string(exitErr.Stderr), err)
		}
		return "", fmt.Errorf("git %s: %w", subcommand(args), err)
	}
	return string(out), nil
}

// RunAttached runs git with the terminal attached. Stderr is teed so the last
// line git printed can be reported back.
func (r OSRunner) RunAttached(dir string, args ...string) error {
	var errb bytes.Buffer
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = io.MultiWriter(orWriter(r.Stderr, os.Stderr), &errb)
	if err := cmd.Run(); err != nil {
		return commandError(args, lastLine(errb.String()), err)
	}
	return nil
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}

func commandError(args []string, stderr string, err error) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		return fmt.Errorf("git %s: %w", subcommand(args), err)
	}
	return fmt.Errorf("git %s: %s", subcommand(args), redactCredentials(msg))
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

var safeWord = regexp.MustCompile(`^[a-z][a-z-]*$`)

// subcommand keeps the leading plain-word arguments so paths, URLs and commit
// messages never end up in an error string.
func subcommand(args []string) string {
	safe := make([]string, 0, 2)
	for _, a := range args {
		if !safeWord.MatchString(a) || len(safe) == 2 {
			break
		}
		safe = append(safe, a)
	}
	if len(safe) == 0 {
		return "<redacted>"
	}
	return strings.Join(safe, " ")
}

var (
	urlUserinfo = regexp.MustCompile(`(https?://)[^\s/@]+@`)
	secretParam = regexp.MustCompile(`(?i)(token|secret|password|passwd|bearer)=[^\s]+`)
)

func redactCredentials(s string) string {
	s = urlUserinfo.ReplaceAllString(s, "${1}<redacted>@")
	return secretParam.ReplaceAllString(s, "$1=<redacted>")
}

// FakeRunner is a test double that returns preset output keyed by
// "dir:[args]" and records every call.
type FakeRunner struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   []string
}

func (r *FakeRunner) key(dir string, args ...string) string {
	return fmt.Sprintf("%s:%v", dir, args)
}

func (r *FakeRunner) Run(dir string, args ...string) (string, error) {
	key := r.key(dir, args...)
	r.Calls = append(r.Calls, key)
	if err, ok := r.Errors[key]; ok {
		return "", err
	}
	if out, ok := r.Outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("FakeRunner: no output for key %q", key)
}

func (r *FakeRunner) RunAttached(dir string, args ...string) error {
	key := r.key(dir, args...)
	r.Calls = append(r.Calls, key)
	if err, ok := r.Errors[key]; ok {
		return err
	}
	return nil
}
