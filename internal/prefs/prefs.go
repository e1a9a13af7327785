// Package prefs persists preview preferences in prefs.toml next to the
// workstyle config file.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the preferences file name inside the workstyle config dir.
const FileName = "prefs.toml"

// Prefs holds preview preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const defaultTheme = "Dracula"

// Default returns the preferences used when none are stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// PathIn returns the preferences path inside dir.
func PathIn(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads preferences from path. Missing or broken files yield defaults.
func Load(path string) Prefs {
	prefs := Default()
	if strings.TrimSpace(path) == "" {
		return prefs
	}

	file, err := os.Open(path)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Default()
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("prefs path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
