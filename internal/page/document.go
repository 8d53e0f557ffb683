package page

// Document is the structural page a controller binds against. The element
// tree is fixed once the document is built; behaviors only change element
// state.
type Document struct {
	Title string
	Root  *Element

	byID map[string]*Element
}

// NewDocument wraps root and indexes its elements by ID. When IDs repeat,
// the first one in document order wins, matching getElementById.
func NewDocument(title string, root *Element) *Document {
	if root == nil {
		root = NewElement("body", "")
	}
	doc := &Document{Title: title, Root: root, byID: make(map[string]*Element)}
	walk(root, func(el *Element) bool {
		if el.id != "" {
			if _, exists := doc.byID[el.id]; !exists {
				doc.byID[el.id] = el
			}
		}
		return true
	})
	return doc
}

// ElementByID returns the element with the given ID.
func (d *Document) ElementByID(id string) (*Element, bool) {
	el, ok := d.byID[id]
	return el, ok
}

// QueryClass returns every element carrying class, in document order.
func (d *Document) QueryClass(class string) []*Element {
	var out []*Element
	d.Walk(func(el *Element) bool {
		if el.HasClass(class) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Walk visits elements in document order until fn returns false.
func (d *Document) Walk(fn func(*Element) bool) {
	walk(d.Root, fn)
}

// Focusable returns the elements keyboard focus can move between.
func (d *Document) Focusable() []*Element {
	var out []*Element
	d.Walk(func(el *Element) bool {
		if el.Focusable() {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Dispatch delivers an event of the given type to target and then to each
// ancestor. Every listener runs to completion before Dispatch returns.
func (d *Document) Dispatch(target *Element, typ EventType) *Event {
	ev := &Event{Type: typ, Target: target}
	for cur := target; cur != nil; cur = cur.parent {
		ev.CurrentTarget = cur
		for _, fn := range cur.listeners[typ] {
			fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	return ev
}

// Click dispatches a click. When nothing prevented it and the target is a
// submit button, its form receives a submit event, which is returned in
// place of the click.
func (d *Document) Click(target *Element) *Event {
	ev := d.Dispatch(target, EventClick)
	if ev.DefaultPrevented() || target == nil || !target.IsSubmit() {
		return ev
	}
	if form := target.Form(); form != nil {
		return d.Submit(form)
	}
	return ev
}

// Input stores value on the target and dispatches an input event.
func (d *Document) Input(target *Element, value string) *Event {
	if target != nil {
		target.SetValue(value)
	}
	return d.Dispatch(target, EventInput)
}

// Submit dispatches a submit event at form. Callers treat an event whose
// default was not prevented as a native submission that reloads the page.
func (d *Document) Submit(form *Element) *Event {
	return d.Dispatch(form, EventSubmit)
}
