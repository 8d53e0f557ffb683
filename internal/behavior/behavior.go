// Package behavior implements the page's interactive behaviors and the
// controller that wires them.
//
// Each behavior owns its state and a disjoint set of elements. Init resolves
// every element it needs before it registers a single listener, so a behavior
// that cannot bind leaves the page exactly as it found it. Operations such as
// Counter.Increment or Tabs.SelectTab are plain methods; the listeners
// registered by Init only forward page events to them.
package behavior

import (
	"fmt"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
	pageerrors "github.com/alexisbeaulieu97/pagelet/pkg/errors"
)

// Behavior is one independently initialised unit of page interactivity.
type Behavior interface {
	Name() string
	Init(doc *page.Document) error
}

// binder resolves elements for one behavior and remembers the first failure.
type binder struct {
	doc      *page.Document
	behavior string
	err      error
}

func newBinder(doc *page.Document, behavior string) *binder {
	b := &binder{doc: doc, behavior: behavior}
	if doc == nil {
		b.err = pageerrors.NewBindingError(behavior, "", "no page document")
	}
	return b
}

func (b *binder) byID(id string) *page.Element {
	if b.err != nil {
		return nil
	}
	el, ok := b.doc.ElementByID(id)
	if !ok {
		b.err = pageerrors.NewBindingError(b.behavior, "#"+id, "element not found")
		return nil
	}
	return el
}

func (b *binder) byClass(class string) []*page.Element {
	if b.err != nil {
		return nil
	}
	found := b.doc.QueryClass(class)
	if len(found) == 0 {
		b.err = pageerrors.NewBindingError(b.behavior, "."+class, "no matching elements")
	}
	return found
}

func (b *binder) fail(element, format string, args ...any) {
	if b.err != nil {
		return
	}
	b.err = pageerrors.NewBindingError(b.behavior, element, fmt.Sprintf(format, args...))
}
