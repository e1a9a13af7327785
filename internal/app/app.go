package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/five82/workstyle/internal/config"
	"github.com/five82/workstyle/internal/mapping"
)

// Options configure settings resolution.
type Options struct {
	ConfigPath    string                 // empty uses <user config dir>/workstyle/config.toml
	Logger        *slog.Logger           // nil uses slog.Default()
	UserConfigDir func() (string, error) // nil uses os.UserConfigDir
}

// Settings is everything a consumer needs to pick window icons.
type Settings struct {
	Location     config.Location
	Mappings     mapping.Mapping
	FallbackIcon string
}

// IconFor returns the icon for a window name.
func (s Settings) IconFor(name string) string {
	return s.Mappings.Icon(name, s.FallbackIcon)
}

// Locator returns the config locator described by opts.
func (o Options) Locator() config.Locator {
	return config.Locator{Path: o.ConfigPath, UserConfigDir: o.UserConfigDir}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Locate finds or seeds the config file. A missing user config directory is
// logged and returned as an unavailable Location; failing to seed the file is
// a setup error.
func Locate(opts Options) (config.Location, error) {
	loc := opts.Locator().Locate()
	if loc.Err == nil {
		return loc, nil
	}
	if errors.Is(loc.Err, config.ErrMissingConfigDir) {
		opts.logger().Warn("no user config directory, using default icon mappings", "error", loc.Err)
		return loc, nil
	}
	return loc, fmt.Errorf("prepare config file: %w", loc.Err)
}

// Load locates the config file and resolves the icon mappings and fallback
// icon from it. Only setup failures are returned; problems with the file's
// contents degrade to the defaults.
func Load(opts Options) (Settings, error) {
	loc, err := Locate(opts)
	if err != nil {
		return Settings{}, err
	}

	resolver := config.Resolver{Logger: opts.logger()}
	return Settings{
		Location:     loc,
		Mappings:     resolver.IconMappings(loc),
		FallbackIcon: resolver.FallbackIcon(loc),
	}, nil
}
