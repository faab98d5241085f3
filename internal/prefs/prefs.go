// Package prefs reads per-repository overrides from git config.
package prefs

import (
	"strconv"
	"strings"

	"github.com/interpretive-systems/gitdeck/internal/config"
)

// Runner runs a git subcommand in dir and returns its stdout.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

// Prefs represents repository-level overrides. Unset fields are zero.
type Prefs struct {
	CommitLimit      int
	Remote           string
	Theme            string
	FilesPanePercent int
}

const (
	keyCommitLimit      = "gitdeck.commitLimit"
	keyRemote           = "gitdeck.remote"
	keyTheme            = "gitdeck.theme"
	keyFilesPanePercent = "gitdeck.filesPanePercent"
)

// Load reads preferences from the repository's git config.
func Load(run Runner, repoRoot string) Prefs {
	var p Prefs
	if s, ok := get(run, repoRoot, keyCommitLimit); ok {
		p.CommitLimit = parsePositive(s)
	}
	if s, ok := get(run, repoRoot, keyRemote); ok {
		p.Remote = s
	}
	if s, ok := get(run, repoRoot, keyTheme); ok {
		p.Theme = strings.ToLower(s)
	}
	if s, ok := get(run, repoRoot, keyFilesPanePercent); ok {
		p.FilesPanePercent = parsePositive(s)
	}
	return p
}

// Apply overlays the set preferences onto cfg.
func (p Prefs) Apply(cfg *config.Config) {
	cfg.Merge(config.Config{
		CommitLimit:      p.CommitLimit,
		Remote:           p.Remote,
		Theme:            p.Theme,
		FilesPanePercent: p.FilesPanePercent,
	})
}

func get(run Runner, repoRoot, key string) (string, bool) {
	out, err := run.Run(repoRoot, "config", "--get", key)
	if err != nil {
		return "", false
	}
	s := strings.TrimSpace(out)
	return s, s != ""
}

func parsePositive(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
