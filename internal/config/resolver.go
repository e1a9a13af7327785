package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/five82/workstyle/internal/assets"
	"github.com/five82/workstyle/internal/document"
	"github.com/five82/workstyle/internal/mapping"
)

var errNoLocation = errors.New("config location unavailable")

// Resolver reads settings from a Location. Its methods never fail: any problem
// with the user file is logged and the embedded defaults are returned.
type Resolver struct {
	Logger *slog.Logger // nil uses slog.Default()
}

// IconMappings returns the user's icon rules in file order, or the default
// rules when the file cannot be used. An empty table is a valid mapping.
func (r Resolver) IconMappings(loc Location) mapping.Mapping {
	m, err := loadMappings(loc)
	if err != nil {
		r.fallback(loc, "icon mappings", err)
		return assets.DefaultMapping()
	}
	return m
}

// Check runs the same pipeline as IconMappings and FallbackIcon without the
// fallback and returns the first problem found.
func (r Resolver) Check(loc Location) error {
	if _, err := loadMappings(loc); err != nil {
		return err
	}
	if _, err := loadFallbackIcon(loc); err != nil {
		return err
	}
	return nil
}

// fallback is the single place where a failed resolution is reported.
func (r Resolver) fallback(loc Location, setting string, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if !loc.Available() {
		logger.Debug("no config location, using defaults", "setting", setting, "error", err)
		return
	}
	logger.Error("invalid configuration file, using defaults",
		"path", loc.Path,
		"setting", setting,
		"error", err,
	)
}

func loadMappings(loc Location) (mapping.Mapping, error) {
	data, err := readConfig(loc)
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	m, err := mapping.Decode(iconRules(doc))
	if err != nil {
		return nil, fmt.Errorf("decode icon mappings: %w", err)
	}
	return m, nil
}

// iconRules drops the [other] settings table so only rules remain.
func iconRules(doc document.Value) document.Value {
	if other, ok := doc.Lookup(assets.OtherSection); ok && other.IsTable() {
		return doc.Without(assets.OtherSection)
	}
	return doc
}

func readConfig(loc Location) ([]byte, error) {
	if !loc.Available() {
		if loc.Err != nil {
			return nil, fmt.Errorf("%w: %w", errNoLocation, loc.Err)
		}
		return nil, errNoLocation
	}

	file, err := os.Open(loc.Path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return data, nil
}
