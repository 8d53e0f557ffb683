package page

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pageerrors "github.com/alexisbeaulieu97/pagelet/pkg/errors"
)

func TestDefaultPageExposesEveryBinding(t *testing.T) {
	t.Parallel()

	doc := Default()
	require.Equal(t, "Interactive Web Page", doc.Title)

	for _, id := range []string{
		"counterValue", "incrementBtn", "decrementBtn", "resetBtn", "doubleBtn",
		"themeToggle",
		"tab1", "tab2", "tab3",
		"validationForm", "name", "email", "password", "confirmPassword",
		"nameError", "emailError", "passwordError", "confirmPasswordError",
		"successMessage",
	} {
		_, ok := doc.ElementByID(id)
		assert.True(t, ok, "missing #%s", id)
	}

	assert.Len(t, doc.QueryClass("faq-question"), 3)
	assert.Len(t, doc.QueryClass("tab-btn"), 3)
	assert.Len(t, doc.QueryClass("tab-content"), 3)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	b := Default()

	counterA, _ := a.ElementByID("counterValue")
	counterB, _ := b.ElementByID("counterValue")
	counterA.SetText("42")
	require.Equal(t, "0", counterB.Text())
}

func TestParseClassListForms(t *testing.T) {
	t.Parallel()

	doc, err := Parse("inline", []byte(`
body:
  tag: body
  children:
    - tag: div
      id: a
      class: "one two"
    - tag: div
      id: b
      class: [three, four]
`))
	require.NoError(t, err)

	a, _ := doc.ElementByID("a")
	b, _ := doc.ElementByID("b")
	require.Equal(t, []string{"one", "two"}, a.Classes())
	require.Equal(t, []string{"three", "four"}, b.Classes())
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	_, err := Parse("dup", []byte(`
body:
  tag: body
  children:
    - {tag: div, id: same}
    - {tag: span, id: same}
`))
	var validationErr *pageerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "body.children[1].id", validationErr.Field)
}

func TestParseRejectsUnknownTag(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad", []byte(`
body:
  tag: body
  children:
    - {tag: marquee}
`))
	var validationErr *pageerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "oneof")
}

func TestParseRejectsMalformedID(t *testing.T) {
	t.Parallel()

	_, err := Parse("bad", []byte(`
body:
  tag: body
  children:
    - {tag: div, id: "has space"}
`))
	var validationErr *pageerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "element_id")
}

func TestParseRequiresBody(t *testing.T) {
	t.Parallel()

	_, err := Parse("empty", []byte(`title: nothing`))
	var validationErr *pageerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "body", validationErr.Field)
}

func TestParseReportsYAMLLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("broken.yaml", []byte("title: x\nbody:\n  tag: [unclosed\n"))
	var parseErr *pageerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "broken.yaml", parseErr.Path)
	require.Positive(t, parseErr.Line)
}

func TestLoadReadsFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Disk\nbody:\n  tag: body\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Disk", doc.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *pageerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestElementClassOperations(t *testing.T) {
	t.Parallel()

	el := NewElement("DIV", "x", "a")
	require.Equal(t, "div", el.Tag())
	require.True(t, el.HasClass("a"))

	el.AddClass("a")
	require.Equal(t, []string{"a"}, el.Classes())

	require.True(t, el.ToggleClass("b"))
	require.False(t, el.ToggleClass("b"))
	el.RemoveClass("a")
	require.Empty(t, el.Classes())
}

func TestElementStructuralNavigation(t *testing.T) {
	t.Parallel()

	question := NewElement("div", "", "faq-question")
	label := NewElement("span", "")
	icon := NewElement("span", "icon")
	question.Append(label, icon)
	answer := NewElement("div", "", "faq-answer")
	item := NewElement("div", "").Append(question, answer)

	require.Same(t, answer, question.NextSibling())
	require.Nil(t, answer.NextSibling())
	require.Same(t, icon, question.LastChild("span"))
	require.Nil(t, question.LastChild("p"))
	require.Nil(t, item.NextSibling())
}

func TestDispatchBubblesAndStops(t *testing.T) {
	t.Parallel()

	inner := NewElement("span", "inner")
	outer := NewElement("div", "outer").Append(inner)
	doc := NewDocument("t", NewElement("body", "").Append(outer))

	var calls []string
	inner.On(EventClick, func(ev *Event) {
		calls = append(calls, "inner:"+ev.CurrentTarget.ID())
	})
	outer.On(EventClick, func(ev *Event) {
		calls = append(calls, "outer:"+ev.Target.ID())
	})

	doc.Dispatch(inner, EventClick)
	require.Equal(t, []string{"inner:inner", "outer:inner"}, calls)

	calls = nil
	inner.On(EventClick, func(ev *Event) { ev.StopPropagation() })
	doc.Dispatch(inner, EventClick)
	require.Equal(t, []string{"inner:inner"}, calls)
}

func TestClickOnSubmitButtonSubmitsForm(t *testing.T) {
	t.Parallel()

	doc := Default()
	form, _ := doc.ElementByID("validationForm")
	button, _ := doc.ElementByID("submitBtn")

	submitted := 0
	form.On(EventSubmit, func(ev *Event) {
		submitted++
		ev.PreventDefault()
	})

	ev := doc.Click(button)
	require.Equal(t, 1, submitted)
	require.Equal(t, EventSubmit, ev.Type)
	require.True(t, ev.DefaultPrevented())
}

func TestInputStoresValueBeforeListenersRun(t *testing.T) {
	t.Parallel()

	doc := Default()
	name, _ := doc.ElementByID("name")

	var seen string
	name.On(EventInput, func(ev *Event) { seen = ev.Target.Value() })
	doc.Input(name, "Ada")
	require.Equal(t, "Ada", seen)
}

func TestResetClearsInputs(t *testing.T) {
	t.Parallel()

	doc := Default()
	form, _ := doc.ElementByID("validationForm")
	for _, id := range []string{"name", "email", "password", "confirmPassword"} {
		el, _ := doc.ElementByID(id)
		el.SetValue("filled")
	}

	form.Reset()

	for _, id := range []string{"name", "email", "password", "confirmPassword"} {
		el, _ := doc.ElementByID(id)
		require.Empty(t, el.Value(), id)
	}
}

func TestFocusableOrder(t *testing.T) {
	t.Parallel()

	doc := Default()
	focusable := doc.Focusable()
	require.NotEmpty(t, focusable)
	require.Equal(t, "themeToggle", focusable[0].ID())

	questions := 0
	for _, el := range focusable {
		if el.HasClass("faq-question") {
			questions++
		}
	}
	require.Equal(t, 3, questions)
}
