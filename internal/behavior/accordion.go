package behavior

import (
	"fmt"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

const (
	QuestionClass = "faq-question"
	OpenClass     = "open"

	MarkerClosed = "+"
	MarkerOpen   = "-"
)

type accordionItem struct {
	answer *page.Element
	marker *page.Element
	open   bool
}

// Accordion opens and closes FAQ answers. Items never affect each other.
type Accordion struct {
	items []*accordionItem
}

func NewAccordion() *Accordion {
	return &Accordion{}
}

func (a *Accordion) Name() string { return "accordion" }

// Init pairs every question with the element that follows it (the answer)
// and with its trailing span (the marker).
func (a *Accordion) Init(doc *page.Document) error {
	b := newBinder(doc, a.Name())
	questions := b.byClass(QuestionClass)

	items := make([]*accordionItem, 0, len(questions))
	for i, question := range questions {
		ref := fmt.Sprintf(".%s[%d]", QuestionClass, i)
		answer := question.NextSibling()
		if answer == nil {
			b.fail(ref, "question has no answer region after it")
			break
		}
		marker := question.LastChild("span")
		if marker == nil {
			b.fail(ref, "question has no trailing span marker")
			break
		}
		items = append(items, &accordionItem{answer: answer, marker: marker, open: answer.HasClass(OpenClass)})
	}
	if b.err != nil {
		return b.err
	}

	a.items = items
	for i, question := range questions {
		index := i
		question.On(page.EventClick, func(*page.Event) { a.ToggleAnswer(index) })
	}
	return nil
}

// Len returns the number of bound items.
func (a *Accordion) Len() int { return len(a.items) }

// Open reports whether item i is expanded. Out-of-range items are closed.
func (a *Accordion) Open(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	return a.items[i].open
}

// ToggleAnswer flips item i. Out-of-range indexes are ignored.
func (a *Accordion) ToggleAnswer(i int) {
	if i < 0 || i >= len(a.items) {
		return
	}
	item := a.items[i]
	item.open = !item.open
	if item.open {
		item.answer.AddClass(OpenClass)
		item.marker.SetText(MarkerOpen)
	} else {
		item.answer.RemoveClass(OpenClass)
		item.marker.SetText(MarkerClosed)
	}
}
