// Package cli defines the workstyle command tree.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/five82/workstyle/internal/app"
	"github.com/five82/workstyle/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	// userConfigDir replaces os.UserConfigDir in tests.
	userConfigDir func() (string, error)
}

// NewRootCommand builds the workstyle command.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(version, &rootOptions{})
}

func newRootCommand(version string, opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workstyle",
		Short: "Inspect and validate the workstyle icon mapping",
		Long: `workstyle names workspaces after the windows they hold, using an ordered
list of window-name rules from ~/.config/workstyle/config.toml. The first
rule matching a window decides its icon.

These commands show where the config lives, what it resolves to, and whether
it is valid. A broken config never stops workstyle: the built-in defaults
are used instead.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default <user config dir>/workstyle/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newPathCommand(opts),
		newIconsCommand(opts),
		newFallbackCommand(opts),
		newMatchCommand(opts),
		newCheckCommand(opts),
		newPreviewCommand(opts),
	)

	return rootCmd
}

func (o *rootOptions) appOptions(cmd *cobra.Command) (app.Options, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return app.Options{}, err
	}
	format, err := logging.ParseFormat(o.logFormat)
	if err != nil {
		return app.Options{}, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = format
	logCfg.Output = cmd.ErrOrStderr()

	return app.Options{
		ConfigPath:    o.configPath,
		Logger:        logging.New(logCfg),
		UserConfigDir: o.userConfigDir,
	}, nil
}

func (o *rootOptions) load(cmd *cobra.Command) (app.Settings, error) {
	opts, err := o.appOptions(cmd)
	if err != nil {
		return app.Settings{}, err
	}
	return app.Load(opts)
}

func configDir(s app.Settings) string {
	if !s.Location.Available() {
		return ""
	}
	return filepath.Dir(s.Location.Path)
}

func describeLocation(s app.Settings) string {
	if s.Location.Available() {
		return s.Location.Path
	}
	return fmt.Sprintf("built-in defaults (%v)", s.Location.Err)
}
