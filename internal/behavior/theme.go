package behavior

import "github.com/alexisbeaulieu97/pagelet/internal/page"

const (
	ThemeToggleID = "themeToggle"
	DarkModeClass = "dark-mode"

	// LabelToLight is shown while dark mode is on; LabelToDark otherwise.
	LabelToLight = "☀️ Light Mode"
	LabelToDark  = "🌙 Dark Mode"
)

// Theme flips the page root between light and dark.
type Theme struct {
	dark   bool
	root   *page.Element
	toggle *page.Element
}

func NewTheme() *Theme {
	return &Theme{}
}

func (t *Theme) Name() string { return "theme" }

// Init binds the page root and the toggle button. A root that already
// carries the dark class starts the theme in dark mode.
func (t *Theme) Init(doc *page.Document) error {
	b := newBinder(doc, t.Name())
	toggle := b.byID(ThemeToggleID)
	if b.err != nil {
		return b.err
	}
	if doc.Root == nil {
		b.fail("body", "page has no root element")
		return b.err
	}

	t.root = doc.Root
	t.toggle = toggle
	t.dark = doc.Root.HasClass(DarkModeClass)
	toggle.On(page.EventClick, func(*page.Event) { t.Toggle() })
	return nil
}

// Dark reports whether dark mode is on.
func (t *Theme) Dark() bool { return t.dark }

// Toggle flips the theme and relabels the button with the next action.
func (t *Theme) Toggle() {
	t.dark = !t.dark
	if t.root != nil {
		if t.dark {
			t.root.AddClass(DarkModeClass)
		} else {
			t.root.RemoveClass(DarkModeClass)
		}
	}
	if t.toggle != nil {
		t.toggle.SetText(t.Label())
	}
}

// Label is the toggle text for the current state.
func (t *Theme) Label() string {
	if t.dark {
		return LabelToLight
	}
	return LabelToDark
}
