package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case timerFiredMsg:
		if m.sched.fire(msg) {
			return m, m.settle()
		}
		return m, nil

	case PageReloadedMsg:
		if msg.Err != nil {
			m.setError("page reload failed: " + msg.Err.Error())
			return m, nil
		}
		cmd := m.open(msg.Doc)
		m.setStatus("page reloaded from disk")
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.Focused()
	if focused != nil && focused.IsInput() {
		return m.handleInputKeys(focused, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Down):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Up):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		if focused == nil {
			return m, nil
		}
		m.log.Debug("click", "element", describe(focused))
		return m, m.dispatched(m.doc.Click(focused))
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload("page reloaded")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// handleInputKeys routes keys while a text input has focus. Printable keys go
// to the input, so only ctrl+c quits from here.
func (m Model) handleInputKeys(focused *page.Element, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload("page reloaded")
	case key.Matches(msg, m.keys.Submit):
		form := focused.Form()
		if form == nil {
			return m, nil
		}
		m.log.Debug("submit", "form", form.ID())
		return m, m.dispatched(m.doc.Submit(form))
	}

	ti, ok := m.inputs[focused]
	if !ok {
		return m, nil
	}
	before := ti.Value()
	updated, cmd := ti.Update(msg)
	*ti = updated
	if updated.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.dispatched(m.doc.Input(focused, updated.Value())))
}

// dispatched finishes an event dispatch. A submission nobody prevented is a
// native form post, which reloads the page.
func (m *Model) dispatched(ev *page.Event) tea.Cmd {
	if ev != nil && ev.Type == page.EventSubmit && !ev.DefaultPrevented() {
		m.log.Info("form submitted without a handler; reloading page")
		return m.reload("form submitted; page reloaded")
	}
	return m.settle()
}

// settle brings the host in line with the page after handlers ran: inputs
// pick up new values, focus skips what was hidden, and new timers start.
func (m *Model) settle() tea.Cmd {
	m.syncInputValues()
	focusCmd := m.refreshFocus()
	return tea.Batch(focusCmd, m.sched.drain())
}

func describe(el *page.Element) string {
	if el.ID() != "" {
		return "#" + el.ID()
	}
	classes := el.Classes()
	if len(classes) > 0 {
		return el.Tag() + "." + classes[0]
	}
	return el.Tag()
}
