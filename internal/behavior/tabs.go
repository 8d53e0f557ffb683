package behavior

import (
	"fmt"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

const (
	TabButtonClass  = "tab-btn"
	TabContentClass = "tab-content"
	TabTargetAttr   = "data-tab"
	ActiveClass     = "active"
)

// Tabs keeps one tab button and its panel active at a time.
type Tabs struct {
	buttons []*page.Element
	targets []string
	panels  []*page.Element
	byID    map[string]*page.Element
	active  int
}

func NewTabs() *Tabs {
	return &Tabs{active: -1}
}

func (t *Tabs) Name() string { return "tabs" }

// Init captures the button-to-panel association declared by each button's
// data-tab attribute. A button whose target has no panel still binds; selecting
// it activates no panel.
func (t *Tabs) Init(doc *page.Document) error {
	b := newBinder(doc, t.Name())
	buttons := b.byClass(TabButtonClass)
	panels := b.byClass(TabContentClass)

	targets := make([]string, len(buttons))
	for i, button := range buttons {
		target, ok := button.Attr(TabTargetAttr)
		if !ok || target == "" {
			b.fail(fmt.Sprintf(".%s[%d]", TabButtonClass, i), "missing %s attribute", TabTargetAttr)
			break
		}
		targets[i] = target
	}
	if b.err != nil {
		return b.err
	}

	byID := make(map[string]*page.Element, len(panels))
	for _, panel := range panels {
		if panel.ID() == "" {
			continue
		}
		if _, exists := byID[panel.ID()]; !exists {
			byID[panel.ID()] = panel
		}
	}

	t.buttons = buttons
	t.targets = targets
	t.panels = panels
	t.byID = byID
	t.active = -1
	for i, button := range buttons {
		if button.HasClass(ActiveClass) {
			t.active = i
			break
		}
	}
	for i, button := range buttons {
		index := i
		button.On(page.EventClick, func(*page.Event) { t.SelectTab(index) })
	}
	return nil
}

// SelectTab activates button i and the panel it targets, after clearing every
// button and panel.
func (t *Tabs) SelectTab(i int) {
	if i < 0 || i >= len(t.buttons) {
		return
	}
	for _, button := range t.buttons {
		button.RemoveClass(ActiveClass)
	}
	for _, panel := range t.panels {
		panel.RemoveClass(ActiveClass)
	}

	t.buttons[i].AddClass(ActiveClass)
	t.active = i
	if panel, ok := t.byID[t.targets[i]]; ok {
		panel.AddClass(ActiveClass)
	}
}

// SelectTabID selects the first button targeting id and reports whether one exists.
func (t *Tabs) SelectTabID(id string) bool {
	for i, target := range t.targets {
		if target == id {
			t.SelectTab(i)
			return true
		}
	}
	return false
}

// Active returns the target ID of the active button, or "" when none is active.
func (t *Tabs) Active() string {
	if t.active < 0 || t.active >= len(t.targets) {
		return ""
	}
	return t.targets[t.active]
}

// Len returns the number of bound tab buttons.
func (t *Tabs) Len() int { return len(t.buttons) }

// Targets returns the declared target of every button in order.
func (t *Tabs) Targets() []string {
	out := make([]string, len(t.targets))
	copy(out, t.targets)
	return out
}
