// Package tui hosts a page session in the terminal with Bubble Tea. Key
// presses become page events and scheduled callbacks come back as messages,
// so every handler runs on the program's single event loop.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pagelet/internal/behavior"
	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

// Loader produces a fresh copy of the page for every session.
type Loader func() (*page.Document, error)

// Model contains the Bubble Tea state for one page host.
type Model struct {
	load Loader
	log  *logger.Logger
	opts []behavior.Option

	// Session state. Everything here is rebuilt when the page reloads.
	session int
	doc     *page.Document
	ctrl    *behavior.Controller
	report  behavior.Report
	sched   *teaScheduler
	inputs  map[*page.Element]*textinput.Model

	focus  []*page.Element
	cursor int

	keys      keyMap
	help      help.Model
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool

	initCmd tea.Cmd
}

// NewModel loads the first page and starts a session on it.
func NewModel(load Loader, log *logger.Logger, opts ...behavior.Option) (Model, error) {
	doc, err := load()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		load: load,
		log:  log.Component("tui"),
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	m.initCmd = m.open(doc)
	return m, nil
}

// Init starts the Bubble Tea program.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Document returns the page of the current session.
func (m Model) Document() *page.Document { return m.doc }

// Controller returns the controller of the current session.
func (m Model) Controller() *behavior.Controller { return m.ctrl }

// Report returns how the behaviors bound in the current session.
func (m Model) Report() behavior.Report { return m.report }

// Session counts page loads, starting at 1.
func (m Model) Session() int { return m.session }

// Focused returns the element holding keyboard focus, if any.
func (m Model) Focused() *page.Element {
	if m.cursor < 0 || m.cursor >= len(m.focus) {
		return nil
	}
	return m.focus[m.cursor]
}

// Status returns the message shown below the page.
func (m Model) Status() string { return m.status }

// open starts a fresh session on doc. No state carries over from the
// previous session, and its pending timers are ignored when they fire.
func (m *Model) open(doc *page.Document) tea.Cmd {
	m.session++
	m.sched = newTeaScheduler(m.session)
	m.doc = doc
	m.ctrl = behavior.New(m.log, m.sched, m.opts...)
	m.report = m.ctrl.Init(doc)

	m.inputs = make(map[*page.Element]*textinput.Model)
	doc.Walk(func(el *page.Element) bool {
		if el.IsInput() {
			ti := newTextInput(el)
			m.inputs[el] = &ti
		}
		return true
	})

	m.focus = nil
	m.cursor = 0
	m.clearStatus()
	if err := m.report.Err(); err != nil {
		m.setError("some behaviors did not bind: " + err.Error())
	}
	m.log.Debug("session started", "session", m.session, "bound", m.report.Bound())
	return m.refreshFocus()
}

// reload loads the page again, as a browser refresh would.
func (m *Model) reload(reason string) tea.Cmd {
	doc, err := m.load()
	if err != nil {
		m.log.Error(err, "reload failed")
		m.setError("reload failed: " + err.Error())
		return nil
	}
	cmd := m.open(doc)
	m.setStatus(reason)
	return cmd
}

// refreshFocus rebuilds the focus ring from the visible focusable elements,
// keeping the current element focused when it is still reachable.
func (m *Model) refreshFocus() tea.Cmd {
	prev := m.Focused()
	sheet := newStylesheet(m.doc, nil, m.width)

	var focus []*page.Element
	for _, el := range m.doc.Focusable() {
		if sheet.Visible(el) {
			focus = append(focus, el)
		}
	}
	m.focus = focus

	m.cursor = 0
	for i, el := range m.focus {
		if el == prev {
			m.cursor = i
			break
		}
	}
	return m.syncInputFocus()
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if len(m.focus) == 0 {
		return nil
	}
	m.cursor = (m.cursor + delta + len(m.focus)) % len(m.focus)
	return m.syncInputFocus()
}

func (m *Model) syncInputFocus() tea.Cmd {
	focused := m.Focused()
	var cmd tea.Cmd
	for el, ti := range m.inputs {
		if el == focused {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return cmd
}

// syncInputValues copies element values into the text inputs, which picks
// up changes made by behaviors such as a form reset.
func (m *Model) syncInputValues() {
	for el, ti := range m.inputs {
		if ti.Value() != el.Value() {
			ti.SetValue(el.Value())
		}
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func newTextInput(el *page.Element) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 32
	ti.SetValue(el.Value())
	if placeholder, ok := el.Attr("placeholder"); ok {
		ti.Placeholder = placeholder
	}
	if kind, _ := el.Attr("type"); kind == "password" {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}
