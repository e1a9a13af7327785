package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/workstyle/internal/assets"
)

const (
	defaultAppName = "workstyle"
	configFileName = "config.toml"
)

// ErrMissingConfigDir is returned when the platform has no user config directory.
var ErrMissingConfigDir = errors.New("missing default config dir")

// Location is the result of locating the user's config file. Err is set when
// no usable location exists; resolvers then fall back to the defaults.
type Location struct {
	Path string
	Err  error
}

// Available reports whether Path can be read.
func (l Location) Available() bool {
	return l.Err == nil && l.Path != ""
}

// Locator computes <user-config-dir>/<app>/config.toml and seeds it on first use.
type Locator struct {
	AppName       string                 // empty uses "workstyle"
	Path          string                 // explicit config file, skips the user config dir
	UserConfigDir func() (string, error) // nil uses os.UserConfigDir
}

// Locate returns the config file location, creating the directory and a file
// seeded with the default configuration when they do not exist yet. Calling it
// again once the file exists writes nothing.
func (l Locator) Locate() Location {
	path, err := l.resolvePath()
	if err != nil {
		return Location{Err: err}
	}
	if err := ensureFile(path); err != nil {
		return Location{Path: path, Err: err}
	}
	return Location{Path: path}
}

func (l Locator) resolvePath() (string, error) {
	if strings.TrimSpace(l.Path) != "" {
		return expandPath(l.Path)
	}

	userConfigDir := l.UserConfigDir
	if userConfigDir == nil {
		userConfigDir = os.UserConfigDir
	}
	base, err := userConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if err == nil {
			err = errors.New("empty directory")
		}
		return "", fmt.Errorf("%w: %v", ErrMissingConfigDir, err)
	}

	app := strings.TrimSpace(l.AppName)
	if app == "" {
		app = defaultAppName
	}
	return filepath.Join(base, app, configFileName), nil
}

func ensureFile(path string) error {
	dir := filepath.Dir(path)
	if !pathExists(dir) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if pathExists(path) {
		return nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("seed config: %w", err)
	}
	if _, err := file.Write(assets.DefaultConfig()); err != nil {
		_ = file.Close()
		return fmt.Errorf("seed config: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("seed config: %w", err)
	}
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
