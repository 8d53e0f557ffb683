package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

func defaultLoader() (*page.Document, error) {
	return page.Default(), nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(defaultLoader, logger.Discard())
	require.NoError(t, err)
	return m
}

func markupLoader(t *testing.T, markup string) Loader {
	t.Helper()
	_, err := page.Parse(t.Name(), []byte(markup))
	require.NoError(t, err)
	return func() (*page.Document, error) {
		return page.Parse(t.Name(), []byte(markup))
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyPress(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// focusOn tabs forward until match accepts the focused element.
func focusOn(t *testing.T, m Model, match func(*page.Element) bool) Model {
	t.Helper()
	for i := 0; i <= len(m.focus); i++ {
		if f := m.Focused(); f != nil && match(f) {
			return m
		}
		m = press(t, m, "tab")
	}
	t.Fatalf("no focusable element matched")
	return m
}

func byID(id string) func(*page.Element) bool {
	return func(el *page.Element) bool { return el.ID() == id }
}

func element(t *testing.T, m Model, id string) *page.Element {
	t.Helper()
	el, ok := m.Document().ElementByID(id)
	require.True(t, ok, "missing #%s", id)
	return el
}
