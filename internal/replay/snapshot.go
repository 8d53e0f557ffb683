package replay

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/pagelet/internal/behavior"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
	"github.com/alexisbeaulieu97/pagelet/internal/validation"
)

// FieldSnapshot is the validity state of one form field.
type FieldSnapshot struct {
	Field validation.Field
	State behavior.FieldState
}

// Snapshot is the observable state of a page session.
type Snapshot struct {
	Title   string
	Bound   []string
	Unbound []string

	Counter      int
	CounterText  string
	CounterColor string
	Dark         bool
	ThemeLabel   string
	OpenFAQ      []int
	ActiveTab    string
	Fields       []FieldSnapshot
	Success      bool

	Elapsed time.Duration
	Reloads int
}

// Capture reads the session state from the controller's behaviors. Values
// owned by a behavior that failed to bind are left at their zero value.
func Capture(doc *page.Document, ctrl *behavior.Controller, report behavior.Report) *Snapshot {
	snap := &Snapshot{Title: doc.Title}
	bound := make(map[string]bool)
	for _, res := range report.Results {
		if res.Err == nil {
			bound[res.Name] = true
			snap.Bound = append(snap.Bound, res.Name)
		} else {
			snap.Unbound = append(snap.Unbound, res.Name)
		}
	}

	if bound["counter"] {
		snap.Counter = ctrl.Counter().Value()
		if display, ok := doc.ElementByID(behavior.CounterDisplayID); ok {
			snap.CounterText = display.Text()
			snap.CounterColor = display.Color()
		}
	}
	if bound["theme"] {
		snap.Dark = ctrl.Theme().Dark()
		snap.ThemeLabel = ctrl.Theme().Label()
	}
	if bound["accordion"] {
		acc := ctrl.Accordion()
		for i := 0; i < acc.Len(); i++ {
			if acc.Open(i) {
				snap.OpenFAQ = append(snap.OpenFAQ, i)
			}
		}
	}
	if bound["tabs"] {
		snap.ActiveTab = ctrl.Tabs().Active()
	}
	if bound["form"] {
		form := ctrl.Form()
		for _, field := range validation.Fields {
			snap.Fields = append(snap.Fields, FieldSnapshot{Field: field, State: form.State(field)})
		}
		snap.Success = form.SuccessVisible()
	}
	return snap
}

// Theme names the active colour scheme.
func (s *Snapshot) Theme() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}

// String renders the snapshot as aligned key/value lines.
func (s *Snapshot) String() string {
	var b strings.Builder
	line := func(key, value string) {
		fmt.Fprintf(&b, "%-16s %s\n", key+":", value)
	}

	if s.Title != "" {
		line("page", s.Title)
	}
	line("bound", joinOrNone(s.Bound))
	if len(s.Unbound) > 0 {
		line("unbound", strings.Join(s.Unbound, ", "))
	}

	counter := s.CounterText
	if s.CounterColor != "" {
		counter += " (" + s.CounterColor + ")"
	}
	line("counter", counter)
	line("theme", fmt.Sprintf("%s [%s]", s.Theme(), s.ThemeLabel))

	open := make([]string, len(s.OpenFAQ))
	for i, idx := range s.OpenFAQ {
		open[i] = strconv.Itoa(idx + 1)
	}
	line("faq open", joinOrNone(open))
	line("active tab", s.ActiveTab)

	for _, f := range s.Fields {
		line(string(f.Field), f.State.String())
	}
	if s.Success {
		line("success", "visible")
	} else {
		line("success", "hidden")
	}
	line("elapsed", s.Elapsed.String())
	if s.Reloads > 0 {
		line("reloads", strconv.Itoa(s.Reloads))
	}
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
