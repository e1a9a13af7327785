package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the preview colors.
type Theme struct {
	Name string

	Surface     string
	SelectionBg string
	Border      string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Icon      lipgloss.Style
	Matched   lipgloss.Style
	NoMatch   lipgloss.Style
	Border    lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	MatchCell lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),
		Matched: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		NoMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		MatchCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SelectionBg)).
			Bold(true).
			Padding(0, 1),
	}
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name, defaulting to Dracula.
func GetTheme(name string) Theme {
	switch name {
	case "Slate":
		return slateTheme()
	default:
		return draculaTheme()
	}
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func draculaTheme() Theme {
	// https://draculatheme.com/spec
	return Theme{
		Name:        "Dracula",
		Surface:     "#282A36",
		SelectionBg: "#44475A",
		Border:      "#44475A",
		Text:        "#F8F8F2",
		Muted:       "#6272A4",
		Accent:      "#BD93F9",
		Success:     "#50FA7B",
		Warning:     "#FFB86C",
	}
}

func slateTheme() Theme {
	// Tailwind slate/sky
	return Theme{
		Name:        "Slate",
		Surface:     "#0f172a", // slate-900
		SelectionBg: "#0284c7", // sky-600
		Border:      "#334155", // slate-700
		Text:        "#f1f5f9", // slate-100
		Muted:       "#94a3b8", // slate-400
		Accent:      "#38bdf8", // sky-400
		Success:     "#22c55e", // green-500
		Warning:     "#f59e0b", // amber-500
	}
}
