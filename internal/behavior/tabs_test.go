package behavior

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

func activeOf(elements []*page.Element) []*page.Element {
	var out []*page.Element
	for _, el := range elements {
		if el.HasClass(ActiveClass) {
			out = append(out, el)
		}
	}
	return out
}

func TestTabsExactlyOneActivePair(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	buttons := s.doc.QueryClass(TabButtonClass)
	panels := s.doc.QueryClass(TabContentClass)
	require.Equal(t, "tab1", s.ctrl.Tabs().Active())

	for _, i := range []int{2, 0, 1, 1} {
		s.doc.Click(buttons[i])

		activeButtons := activeOf(buttons)
		activePanels := activeOf(panels)
		require.Len(t, activeButtons, 1)
		require.Len(t, activePanels, 1)
		require.Same(t, buttons[i], activeButtons[0])

		target, _ := activeButtons[0].Attr(TabTargetAttr)
		require.Equal(t, target, activePanels[0].ID())
		require.Equal(t, target, s.ctrl.Tabs().Active())
	}
}

func TestTabsMissingPanelActivatesNoPanel(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
body:
  tag: body
  children:
    - {tag: button, class: [tab-btn, active], attrs: {data-tab: one}}
    - {tag: button, class: tab-btn, attrs: {data-tab: ghost}}
    - {tag: div, id: one, class: [tab-content, active]}
`)
	tabs := NewTabs()
	require.NoError(t, tabs.Init(doc))

	buttons := doc.QueryClass(TabButtonClass)
	doc.Click(buttons[1])

	require.Equal(t, []*page.Element{buttons[1]}, activeOf(buttons))
	require.Empty(t, activeOf(doc.QueryClass(TabContentClass)))
	require.Equal(t, "ghost", tabs.Active())
}

func TestSelectTabID(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	tabs := s.ctrl.Tabs()

	require.True(t, tabs.SelectTabID("tab3"))
	require.Equal(t, "tab3", tabs.Active())
	panel := s.el(t, "tab3")
	require.True(t, panel.HasClass(ActiveClass))

	require.False(t, tabs.SelectTabID("nope"))
	require.Equal(t, "tab3", tabs.Active())
	require.Equal(t, []string{"tab1", "tab2", "tab3"}, tabs.Targets())
}

func TestTabsInitRequiresDeclaredTarget(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
body:
  tag: body
  children:
    - {tag: button, class: tab-btn}
    - {tag: div, id: one, class: tab-content}
`)
	err := NewTabs().Init(doc)
	require.ErrorContains(t, err, "data-tab")
}
