package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/workstyle/internal/app"
	"github.com/five82/workstyle/internal/config"
	"github.com/five82/workstyle/internal/prefs"
	"github.com/five82/workstyle/internal/ui"
)

func newPathCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path, creating it on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appOpts, err := opts.appOptions(cmd)
			if err != nil {
				return err
			}
			loc, err := app.Locate(appOpts)
			if err != nil {
				return err
			}
			if !loc.Available() {
				return loc.Err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), loc.Path)
			return err
		},
	}
}

func newIconsCommand(opts *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Show the resolved icon rules in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if plain {
				for _, p := range settings.Mappings {
					fmt.Fprintf(out, "%s = %s\n", strconv.Quote(p.Key), strconv.Quote(p.Value))
				}
				return nil
			}

			rows := make([][]string, 0, len(settings.Mappings))
			for i, p := range settings.Mappings {
				rows = append(rows, []string{strconv.Itoa(i + 1), p.Key, p.Value})
			}
			header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
			cell := lipgloss.NewStyle().Padding(0, 1)
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "rule", "icon").
				Rows(rows...).
				StyleFunc(func(row, _ int) lipgloss.Style {
					if row == table.HeaderRow {
						return header
					}
					return cell
				})

			fmt.Fprintln(out, t.Render())
			fmt.Fprintf(out, "fallback icon: %s\nsource: %s\n", strconv.Quote(settings.FallbackIcon), describeLocation(settings))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print rules as TOML lines")
	return cmd
}

func newFallbackCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fallback",
		Short: "Print the icon used when no rule matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.load(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(settings.FallbackIcon))
			return err
		},
	}
}

func newMatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match NAME...",
		Short: "Print the icon and rule chosen for each window name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range args {
				rule := "(fallback)"
				if p, ok := settings.Mappings.Match(name); ok {
					rule = p.Key
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", name, settings.IconFor(name), rule)
			}
			return nil
		},
	}
}

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config file and report the first problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appOpts, err := opts.appOptions(cmd)
			if err != nil {
				return err
			}
			loc, err := app.Locate(appOpts)
			if err != nil {
				return err
			}

			resolver := config.Resolver{Logger: appOpts.Logger}
			if err := resolver.Check(loc); err != nil {
				if loc.Available() {
					return fmt.Errorf("%s: %w", loc.Path, err)
				}
				return err
			}

			rules := resolver.IconMappings(loc)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d rules\n", loc.Path, len(rules))
			return err
		},
	}
}

func newPreviewCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Try window names against the rules interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.load(cmd)
			if err != nil {
				return err
			}

			uiOpts := ui.Options{
				Mappings:     settings.Mappings,
				FallbackIcon: settings.FallbackIcon,
				ConfigPath:   describeLocation(settings),
			}
			if dir := configDir(settings); dir != "" {
				uiOpts.PrefsPath = prefs.PathIn(dir)
				uiOpts.ThemeName = prefs.Load(uiOpts.PrefsPath).Theme
			}
			return ui.Run(uiOpts)
		},
	}
}
