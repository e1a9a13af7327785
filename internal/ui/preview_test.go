package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/workstyle/internal/mapping"
	"github.com/five82/workstyle/internal/prefs"
)

func testModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Mappings: mapping.Mapping{
			{Key: "firefox", Value: "F"},
			{Key: "code", Value: "C"},
			{Key: "/^term$/", Value: "T"},
		},
		FallbackIcon: "?",
		ConfigPath:   "/tmp/config.toml",
		PrefsPath:    prefs.PathIn(t.TempDir()),
	})
}

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func TestPreview_MatchesTypedWindowName(t *testing.T) {
	m := typeText(testModel(t), "Visual Studio Code")

	pair, ok, icon := m.Result()
	if !ok || pair.Key != "code" || icon != "C" {
		t.Fatalf("Result = (%v, %v, %q), want code rule", pair, ok, icon)
	}
	if view := m.View(); !strings.Contains(view, `matched rule "code"`) {
		t.Fatalf("View does not report the matched rule:\n%s", view)
	}
}

func TestPreview_FallbackWhenNothingMatches(t *testing.T) {
	m := typeText(testModel(t), "xterm")

	_, ok, icon := m.Result()
	if ok || icon != "?" {
		t.Fatalf("Result = (%v, %q), want fallback", ok, icon)
	}
	if view := m.View(); !strings.Contains(view, "no rule matched") {
		t.Fatalf("View does not report the fallback:\n%s", view)
	}
}

func TestPreview_EmptyInputShowsFallback(t *testing.T) {
	_, ok, icon := testModel(t).Result()
	if ok || icon != "?" {
		t.Fatalf("Result = (%v, %q), want fallback", ok, icon)
	}
}

func TestPreview_ViewListsRulesInOrder(t *testing.T) {
	view := testModel(t).View()
	first := strings.Index(view, "firefox")
	second := strings.Index(view, "code")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("rules not listed in order:\n%s", view)
	}
}

func TestPreview_ThemeCycleSavesPrefs(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if cmd != nil {
		t.Fatalf("ctrl+t returned a command")
	}
	m = next.(Model)
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	if m.err != nil {
		t.Fatalf("saving prefs failed: %v", m.err)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Slate" {
		t.Fatalf("saved theme = %q, want Slate", got)
	}
}

func TestPreview_FooterListsThemes(t *testing.T) {
	m := testModel(t)
	if view := m.View(); !strings.Contains(view, "[Dracula] Slate") {
		t.Fatalf("footer does not mark Dracula as current:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if view := next.(Model).View(); !strings.Contains(view, "Dracula [Slate]") {
		t.Fatalf("footer does not mark Slate as current:\n%s", view)
	}
}

func TestThemeChoices_UnknownThemeUnmarked(t *testing.T) {
	if got := themeChoices("nope"); got != "Dracula Slate" {
		t.Fatalf("themeChoices(nope) = %q, want %q", got, "Dracula Slate")
	}
}

func TestPreview_EscQuits(t *testing.T) {
	_, cmd := testModel(t).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("esc did not quit")
	}
}

func TestPreview_WindowSize(t *testing.T) {
	next, _ := testModel(t).Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m := next.(Model)
	if m.width != 80 || m.height != 30 {
		t.Fatalf("size = %dx%d, want 80x30", m.width, m.height)
	}
}

func TestLiteralKeys_SkipsRegexRules(t *testing.T) {
	keys := literalKeys(mapping.Mapping{{Key: "a"}, {Key: "/b/"}, {Key: "c"}})
	if strings.Join(keys, ",") != "a,c" {
		t.Fatalf("literalKeys = %v, want [a c]", keys)
	}
}
