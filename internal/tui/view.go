package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sheet := newStylesheet(m.doc, m.Focused(), m.width)
	sections := []string{m.renderElement(sheet, m.doc.Root)}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErrorStyle
		}
		sections = append(sections, style.MarginTop(1).Render(m.status))
	}
	sections = append(sections, lipgloss.NewStyle().MarginTop(1).Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderElement(sheet stylesheet, el *page.Element) string {
	if !sheet.displayed(el) {
		return ""
	}

	switch el.Tag() {
	case "button":
		return sheet.button(el).Render(el.Text())
	case "input":
		return m.renderInput(sheet, el)
	}

	var parts []string
	if el.Text() != "" {
		parts = append(parts, sheet.text(el).Render(el.Text()))
	}
	for _, child := range el.Children() {
		if out := m.renderElement(sheet, child); out != "" {
			parts = append(parts, out)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	var content string
	if inlineOnly(el) {
		content = lipgloss.JoinHorizontal(lipgloss.Center, interleave(parts, " ")...)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if el == sheet.focused {
		content = "› " + content
	}
	return sheet.block(el).Render(content)
}

func (m Model) renderInput(sheet stylesheet, el *page.Element) string {
	ti, ok := m.inputs[el]
	if !ok {
		return sheet.inputBox(false).Render(el.Value())
	}
	return sheet.inputBox(el == sheet.focused).Render(ti.View())
}

// inlineOnly reports whether every child of el flows on a single line.
func inlineOnly(el *page.Element) bool {
	children := el.Children()
	if len(children) == 0 {
		return false
	}
	for _, child := range children {
		switch child.Tag() {
		case "span", "button":
		default:
			return false
		}
	}
	return true
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}
