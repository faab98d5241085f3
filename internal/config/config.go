// Package config loads gitdeck's user configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCommitLimit      = 100
	DefaultRemote           = "origin"
	DefaultDiffPageStep     = 10
	DefaultRedrawInterval   = 100 * time.Millisecond
	DefaultFilesPanePercent = 40
	DefaultTheme            = "dark"
)

// Config holds user settings. Zero fields are filled from defaults on load.
type Config struct {
	CommitLimit      int           `yaml:"commit_limit"`
	Remote           string        `yaml:"remote"`
	DiffPageStep     int           `yaml:"diff_page_step"`
	RedrawInterval   time.Duration `yaml:"redraw_interval"`
	FilesPanePercent int           `yaml:"files_pane_percent"`
	Theme            string        `yaml:"theme"`
	LogFile          string        `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CommitLimit:      DefaultCommitLimit,
		Remote:           DefaultRemote,
		DiffPageStep:     DefaultDiffPageStep,
		RedrawInterval:   DefaultRedrawInterval,
		FilesPanePercent: DefaultFilesPanePercent,
		Theme:            DefaultTheme,
	}
}

// Path returns the config file location: $XDG_CONFIG_HOME/gitdeck/config.yaml,
// falling back to ~/.config/gitdeck/config.yaml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "gitdeck", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gitdeck", "config.yaml"), nil
}

// Load reads the config file at the default path. A missing file yields
// the defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFromFile(path)
}

// LoadFromFile reads and parses a YAML config file. A missing file yields
// the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Merge(file)

	if strings.HasPrefix(cfg.LogFile, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("expanding home directory: %w", err)
		}
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge overlays the non-zero fields of o onto c.
func (c *Config) Merge(o Config) {
	if o.CommitLimit != 0 {
		c.CommitLimit = o.CommitLimit
	}
	if o.Remote != "" {
		c.Remote = o.Remote
	}
	if o.DiffPageStep != 0 {
		c.DiffPageStep = o.DiffPageStep
	}
	if o.RedrawInterval != 0 {
		c.RedrawInterval = o.RedrawInterval
	}
	if o.FilesPanePercent != 0 {
		c.FilesPanePercent = o.FilesPanePercent
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.CommitLimit < 1 {
		errs = append(errs, fmt.Errorf("commit_limit must be positive, got %d", c.CommitLimit))
	}
	if strings.TrimSpace(c.Remote) == "" {
		errs = append(errs, errors.New("remote is required"))
	}
	if c.DiffPageStep < 1 {
		errs = append(errs, fmt.Errorf("diff_page_step must be positive, got %d", c.DiffPageStep))
	}
	if c.RedrawInterval < 10*time.Millisecond {
		errs = append(errs, fmt.Errorf("redraw_interval must be at least 10ms, got %s", c.RedrawInterval))
	}
	if c.FilesPanePercent < 10 || c.FilesPanePercent > 90 {
		errs = append(errs, fmt.Errorf("files_pane_percent must be between 10 and 90, got %d", c.FilesPanePercent))
	}
	if c.Theme != "dark" && c.Theme != "light" {
		errs = append(errs, fmt.Errorf("theme must be dark or light, got %q", c.Theme))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
