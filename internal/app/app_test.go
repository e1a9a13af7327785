package app

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/workstyle/internal/assets"
	"github.com/five82/workstyle/internal/config"
)

func quietOptions(t *testing.T) Options {
	t.Helper()
	base := t.TempDir()
	return Options{
		Logger:        slog.New(slog.DiscardHandler),
		UserConfigDir: func() (string, error) { return base, nil },
	}
}

func TestLoad_FirstRunUsesSeededDefaults(t *testing.T) {
	opts := quietOptions(t)

	s, err := Load(opts)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !s.Location.Available() {
		t.Fatalf("Location = %+v, want available", s.Location)
	}
	if len(s.Mappings) != len(assets.DefaultMapping()) {
		t.Fatalf("Mappings has %d rules, want %d", len(s.Mappings), len(assets.DefaultMapping()))
	}
	if s.FallbackIcon != " " {
		t.Fatalf("FallbackIcon = %q, want %q", s.FallbackIcon, " ")
	}
	if got := s.IconFor("Mozilla Firefox"); got != "🌍" {
		t.Fatalf("IconFor(firefox) = %q, want 🌍", got)
	}
	if got := s.IconFor("unknown-window"); got != " " {
		t.Fatalf("IconFor(unknown) = %q, want fallback", got)
	}
}

func TestLoad_UserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ws.toml")
	if err := os.WriteFile(path, []byte("term = \"T\"\n[other]\nfallback_icon = \"?\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	opts := quietOptions(t)
	opts.ConfigPath = path

	s, err := Load(opts)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(s.Mappings) != 1 || s.Mappings[0].Key != "term" {
		t.Fatalf("Mappings = %v, want [term]", s.Mappings)
	}
	if got := s.IconFor("xterm"); got != "T" {
		t.Fatalf("IconFor(xterm) = %q, want T", got)
	}
	if got := s.IconFor("unknown-window"); got != "?" {
		t.Fatalf("IconFor(unknown-window) = %q, want ?", got)
	}
}

func TestLoad_MissingConfigDirDegrades(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		Logger:        slog.New(slog.NewTextHandler(&buf, nil)),
		UserConfigDir: func() (string, error) { return "", errors.New("no home") },
	}

	s, err := Load(opts)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !errors.Is(s.Location.Err, config.ErrMissingConfigDir) {
		t.Fatalf("Location.Err = %v, want ErrMissingConfigDir", s.Location.Err)
	}
	if len(s.Mappings) != len(assets.DefaultMapping()) || s.FallbackIcon != assets.DefaultFallbackIcon() {
		t.Fatalf("Settings = %+v, want defaults", s)
	}
	if strings.Count(buf.String(), "level=WARN") != 1 {
		t.Fatalf("log = %q, want exactly one warning", buf.String())
	}
}

func TestLoad_SeedFailureIsFatal(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	opts := Options{
		Logger:        slog.New(slog.DiscardHandler),
		UserConfigDir: func() (string, error) { return blocker, nil },
	}

	if _, err := Load(opts); err == nil || !strings.Contains(err.Error(), "prepare config file") {
		t.Fatalf("Load error = %v, want prepare config file failure", err)
	}
}
