package cli

import (
	"fmt"
	"os"

	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/gitx"
	"github.com/interpretive-systems/gitdeck/internal/logging"
	"github.com/interpretive-systems/gitdeck/internal/prefs"
	"github.com/interpretive-systems/gitdeck/internal/terminal"
	"github.com/interpretive-systems/gitdeck/internal/tui"
)

// runSession opens the repository containing path and runs the TUI on it.
// Everything that can fail is checked before the terminal changes mode.
func runSession(path string) error {
	guard := terminal.Capture(os.Stdin, os.Stdout)
	defer guard.Recover()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	probe, err := gitx.Open(path)
	if err != nil {
		return err
	}
	prefs.Load(gitx.OSRunner{}, probe.Root()).Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logging.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closer.Close()

	repo, err := gitx.Open(probe.Root(), gitx.WithRemote(cfg.Remote))
	if err != nil {
		return err
	}
	log.Info("opened repository", "root", repo.Root(), "remote", repo.Remote())
	return tui.Run(repo.Root(), repo, cfg, log)
}
