package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/workstyle/internal/mapping"
	"github.com/five82/workstyle/internal/prefs"
)

// Options configures the preview.
type Options struct {
	Mappings     mapping.Mapping
	FallbackIcon string
	ConfigPath   string
	ThemeName    string
	PrefsPath    string // empty disables saving the theme
}

// Model is the Bubble Tea model of the icon preview: type a window name and
// see which rule picks its icon.
type Model struct {
	mappings     mapping.Mapping
	fallbackIcon string
	configPath   string
	prefsPath    string

	theme  Theme
	input  textinput.Model
	width  int
	height int
	err    error
}

// New creates the preview model.
func New(opts Options) Model {
	input := textinput.New()
	input.Prompt = "window> "
	input.Placeholder = "type a window name"
	input.ShowSuggestions = true
	input.SetSuggestions(literalKeys(opts.Mappings))
	input.Focus()

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	return Model{
		mappings:     opts.Mappings,
		fallbackIcon: opts.FallbackIcon,
		configPath:   opts.ConfigPath,
		prefsPath:    opts.PrefsPath,
		theme:        GetTheme(themeName),
		input:        input,
	}
}

// Run starts the preview and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+t":
			m.theme = GetTheme(NextTheme(m.theme.Name))
			if m.prefsPath != "" {
				m.err = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Result returns the rule matching the current input and the icon shown.
func (m Model) Result() (mapping.Pair, bool, string) {
	name := m.input.Value()
	if strings.TrimSpace(name) == "" {
		return mapping.Pair{}, false, m.fallbackIcon
	}
	if p, ok := m.mappings.Match(name); ok {
		return p, true, p.Value
	}
	return mapping.Pair{}, false, m.fallbackIcon
}

// View implements tea.Model.
func (m Model) View() string {
	styles := m.theme.Styles()
	pair, matched, icon := m.Result()

	var b strings.Builder
	b.WriteString(styles.Title.Render("workstyle preview"))
	if m.configPath != "" {
		b.WriteString(styles.Muted.Render("  " + m.configPath))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(styles.Icon.Render(icon))
	b.WriteString(" ")
	switch {
	case matched:
		b.WriteString(styles.Matched.Render(fmt.Sprintf("matched rule %q", pair.Key)))
	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(styles.Muted.Render("fallback icon"))
	default:
		b.WriteString(styles.NoMatch.Render("no rule matched, using the fallback icon"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.rulesTable(styles, pair.Key, matched))
	b.WriteString("\n")

	footer := fmt.Sprintf("esc quit · ctrl+t theme %s · tab accept suggestion", themeChoices(m.theme.Name))
	b.WriteString(styles.Muted.Render(footer))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.NoMatch.Render(m.err.Error()))
	}
	return b.String()
}

func (m Model) rulesTable(styles Styles, matchedKey string, matched bool) string {
	matchedRow := -1
	rows := make([][]string, 0, len(m.mappings))
	for i, p := range m.mappings {
		if matched && p.Key == matchedKey && matchedRow < 0 {
			matchedRow = i
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), p.Key, p.Value})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers("#", "rule", "icon").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case row == matchedRow:
				return styles.MatchCell
			default:
				return styles.Cell
			}
		})
	if m.height > 12 {
		t = t.Height(m.height - 10)
	}
	return t.Render()
}

// themeChoices lists the themes with the current one bracketed.
func themeChoices(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			names[i] = "[" + name + "]"
		}
	}
	return strings.Join(names, " ")
}

// literalKeys returns the non-regex rule keys for input suggestions.
func literalKeys(m mapping.Mapping) []string {
	keys := make([]string, 0, len(m))
	for _, k := range m.Keys() {
		if strings.HasPrefix(k, "/") && strings.HasSuffix(k, "/") {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}
