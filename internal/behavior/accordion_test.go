package behavior

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

func TestAccordionItemsAreIndependent(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	questions := s.doc.QueryClass(QuestionClass)
	require.Len(t, questions, 3)

	s.doc.Click(questions[0])
	s.doc.Click(questions[2])

	acc := s.ctrl.Accordion()
	require.True(t, acc.Open(0))
	require.False(t, acc.Open(1))
	require.True(t, acc.Open(2))

	for i, question := range questions {
		answer := question.NextSibling()
		marker := question.LastChild("span")
		require.Equal(t, acc.Open(i), answer.HasClass(OpenClass), "item %d", i)
		if acc.Open(i) {
			require.Equal(t, MarkerOpen, marker.Text())
		} else {
			require.Equal(t, MarkerClosed, marker.Text())
		}
	}

	s.doc.Click(questions[0])
	require.False(t, acc.Open(0))
	require.True(t, acc.Open(2))
}

func TestAccordionClickOnMarkerBubblesToQuestion(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	question := s.doc.QueryClass(QuestionClass)[1]
	s.doc.Click(question.LastChild("span"))
	require.True(t, s.ctrl.Accordion().Open(1))
}

func TestAccordionOutOfRangeIsIgnored(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	acc := s.ctrl.Accordion()
	acc.ToggleAnswer(-1)
	acc.ToggleAnswer(acc.Len())
	for i := 0; i < acc.Len(); i++ {
		require.False(t, acc.Open(i))
	}
	require.False(t, acc.Open(99))
}

func TestAccordionInitRejectsMalformedItems(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no questions": "body: {tag: body}\n",
		"no answer": `
body:
  tag: body
  children:
    - tag: div
      class: faq-question
      children:
        - {tag: span, text: "+"}
`,
		"no marker": `
body:
  tag: body
  children:
    - tag: div
      class: faq-question
      children:
        - {tag: p, text: Question}
    - {tag: div, class: faq-answer}
`,
	}
	for name, markup := range cases {
		doc, err := page.Parse(name, []byte(markup))
		require.NoError(t, err, name)
		require.Error(t, NewAccordion().Init(doc), name)
	}
}
