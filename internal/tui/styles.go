package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagelet/internal/behavior"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

// Palette is the set of colours one theme renders with.
type Palette struct {
	Name     string
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Button   lipgloss.Color
	Focus    lipgloss.Color
	Positive lipgloss.Color
	Negative lipgloss.Color
}

var (
	lightPalette = Palette{
		Name:     "light",
		Text:     lipgloss.Color("235"),
		Muted:    lipgloss.Color("244"),
		Accent:   lipgloss.Color("99"),
		Border:   lipgloss.Color("250"),
		Button:   lipgloss.Color("254"),
		Focus:    lipgloss.Color("212"),
		Positive: lipgloss.Color("28"),
		Negative: lipgloss.Color("160"),
	}

	darkPalette = Palette{
		Name:     "dark",
		Text:     lipgloss.Color("252"),
		Muted:    lipgloss.Color("245"),
		Accent:   lipgloss.Color("141"),
		Border:   lipgloss.Color("238"),
		Button:   lipgloss.Color("237"),
		Focus:    lipgloss.Color("212"),
		Positive: lipgloss.Color("42"),
		Negative: lipgloss.Color("196"),
	}

	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// stylesheet decides what is visible and how each element looks. It is
// rebuilt for every frame from the document's current classes.
type stylesheet struct {
	palette Palette
	focused *page.Element
	width   int
}

func newStylesheet(doc *page.Document, focused *page.Element, width int) stylesheet {
	palette := lightPalette
	if doc != nil && doc.Root.HasClass(behavior.DarkModeClass) {
		palette = darkPalette
	}
	return stylesheet{palette: palette, focused: focused, width: width}
}

// Visible reports whether el and all of its ancestors are displayed.
func (s stylesheet) Visible(el *page.Element) bool {
	for cur := el; cur != nil; cur = cur.Parent() {
		if !s.displayed(cur) {
			return false
		}
	}
	return true
}

func (s stylesheet) displayed(el *page.Element) bool {
	switch {
	case el.Hidden():
		return false
	case el.HasClass("faq-answer"):
		return el.HasClass(behavior.OpenClass)
	case el.HasClass(behavior.TabContentClass):
		return el.HasClass(behavior.ActiveClass)
	default:
		return true
	}
}

// color maps a colour token set by a behavior to a palette colour.
func (s stylesheet) color(token string) (lipgloss.Color, bool) {
	switch token {
	case "":
		return "", false
	case behavior.ColorPositive:
		return s.palette.Positive, true
	case behavior.ColorNegative:
		return s.palette.Negative, true
	default:
		return lipgloss.Color(token), true
	}
}

func (s stylesheet) text(el *page.Element) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(s.palette.Text)
	switch el.Tag() {
	case "h1":
		style = style.Bold(true).Foreground(s.palette.Accent)
	case "h2", "h3":
		style = style.Bold(true).Foreground(s.palette.Accent).MarginBottom(1)
	case "label":
		style = style.Foreground(s.palette.Muted)
	case "small":
		style = style.Foreground(s.palette.Negative).Italic(true)
	}
	switch {
	case el.HasClass("counter-value"):
		style = style.Bold(true).Padding(0, 1)
	case el.HasClass("success-message"):
		style = style.Bold(true).Foreground(s.palette.Positive).MarginTop(1)
	case el.HasClass("faq-icon"):
		style = style.Foreground(s.palette.Accent).Bold(true)
	}
	if c, ok := s.color(el.Color()); ok {
		style = style.Foreground(c)
	}
	return style
}

func (s stylesheet) button(el *page.Element) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(s.palette.Text).
		Background(s.palette.Button).
		Padding(0, 1)
	if el.HasClass(behavior.ActiveClass) {
		style = style.Foreground(s.palette.Accent).Bold(true).Underline(true)
	}
	if el == s.focused {
		style = style.Reverse(true).Foreground(s.palette.Focus)
	}
	return style
}

func (s stylesheet) block(el *page.Element) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case el.HasClass("card"):
		style = style.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(s.palette.Border).
			Padding(0, 1).
			MarginTop(1)
		if s.width > 4 {
			style = style.Width(s.width - 4)
		}
	case el.HasClass("page-header"):
		style = style.Padding(0, 1)
	case el.HasClass("faq-answer"), el.HasClass(behavior.TabContentClass):
		style = style.PaddingLeft(2).Foreground(s.palette.Muted)
	case el.Tag() == "form":
		style = style.MarginTop(1)
	}
	if el == s.focused {
		style = style.Foreground(s.palette.Focus).Bold(true)
	}
	return style
}

func (s stylesheet) inputBox(focused bool) lipgloss.Style {
	border := s.palette.Border
	if focused {
		border = s.palette.Focus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
