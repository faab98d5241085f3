package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadFromFile_Overrides(t *testing.T) {
	path := writeConfig(t, `commit_limit: 25
remote: upstream
diff_page_step: 5
redraw_interval: 250ms
theme: light
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CommitLimit != 25 {
		t.Errorf("CommitLimit = %d, want 25", cfg.CommitLimit)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want upstream", cfg.Remote)
	}
	if cfg.DiffPageStep != 5 {
		t.Errorf("DiffPageStep = %d, want 5", cfg.DiffPageStep)
	}
	if cfg.RedrawInterval != 250*time.Millisecond {
		t.Errorf("RedrawInterval = %s, want 250ms", cfg.RedrawInterval)
	}
	if cfg.FilesPanePercent != DefaultFilesPanePercent {
		t.Errorf("FilesPanePercent = %d, want default", cfg.FilesPanePercent)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
}

func TestLoadFromFile_ExpandsHomeInLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, "log_file: ~/gitdeck.log\n")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogFile != filepath.Join(home, "gitdeck.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "commit_limit: [1, 2\n")
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative commit limit", func(c *Config) { c.CommitLimit = -1 }, "commit_limit"},
		{"blank remote", func(c *Config) { c.Remote = " " }, "remote is required"},
		{"zero page step", func(c *Config) { c.DiffPageStep = 0 }, "diff_page_step"},
		{"tiny interval", func(c *Config) { c.RedrawInterval = time.Millisecond }, "redraw_interval"},
		{"pane too wide", func(c *Config) { c.FilesPanePercent = 95 }, "files_pane_percent"},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, "theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_JoinsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.CommitLimit = 0
	cfg.Theme = "neon"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "commit_limit") || !strings.Contains(err.Error(), "theme") {
		t.Fatalf("error = %v, want both problems", err)
	}
}

func TestPath_PrefersXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "gitdeck", "config.yaml") {
		t.Fatalf("Path = %q", got)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
