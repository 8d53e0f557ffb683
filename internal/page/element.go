package page

import "strings"

// Element is a node in the page tree. Behaviors mutate elements only through
// these methods, which keeps every visible change observable by the renderer.
type Element struct {
	id       string
	tag      string
	text     string
	color    string
	value    string
	hidden   bool
	classes  []string
	attrs    map[string]string
	children []*Element
	parent   *Element

	listeners map[EventType][]Listener
}

// NewElement creates a detached element.
func NewElement(tag, id string, classes ...string) *Element {
	el := &Element{
		id:    id,
		tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
	}
	for _, class := range classes {
		el.AddClass(class)
	}
	return el
}

// Append adds children to the element and returns the element for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.parent = e
		e.children = append(e.children, child)
	}
	return e
}

func (e *Element) ID() string { return e.id }
func (e *Element) Tag() string { return e.tag }
func (e *Element) Text() string { return e.text }
func (e *Element) Color() string { return e.color }
func (e *Element) Value() string { return e.value }
func (e *Element) Parent() *Element { return e.parent }
func (e *Element) Children() []*Element { return e.children }

// Classes returns a copy of the element's class list in insertion order.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// HasClass reports whether class is present.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class if it is not already present.
func (e *Element) AddClass(class string) {
	class = strings.TrimSpace(class)
	if class == "" || e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass removes class if present.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass flips class and reports whether it is present afterwards.
func (e *Element) ToggleClass(class string) bool {
	if e.HasClass(class) {
		e.RemoveClass(class)
		return false
	}
	e.AddClass(class)
	return true
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) { e.text = text }

// SetColor sets the inline colour token. An empty token inherits the theme text colour.
func (e *Element) SetColor(color string) { e.color = color }

// SetValue sets an input's current value.
func (e *Element) SetValue(value string) { e.value = value }

// Show clears the inline display override.
func (e *Element) Show() { e.hidden = false }

// Hide sets the inline display override to none.
func (e *Element) Hide() { e.hidden = true }

// Hidden reports the inline display override. Stylesheet rules may still
// hide an element that is not Hidden.
func (e *Element) Hidden() bool { return e.hidden }

// Attr returns the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets the named attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// IsInput reports whether the element holds a user-editable value.
func (e *Element) IsInput() bool {
	return e.tag == "input" || e.tag == "textarea"
}

// IsSubmit reports whether activating the element submits its form.
func (e *Element) IsSubmit() bool {
	if e.tag != "button" {
		return false
	}
	kind, _ := e.Attr("type")
	return kind == "submit"
}

// Focusable reports whether keyboard focus may land on the element.
func (e *Element) Focusable() bool {
	if e.tag == "button" || e.IsInput() {
		return true
	}
	_, ok := e.Attr("tabindex")
	return ok
}

// NextSibling returns the element that follows e under the same parent.
func (e *Element) NextSibling() *Element {
	if e.parent == nil {
		return nil
	}
	siblings := e.parent.children
	for i, sibling := range siblings {
		if sibling == e && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

// LastChild returns the last child when it has the given tag, or nil.
func (e *Element) LastChild(tag string) *Element {
	if len(e.children) == 0 {
		return nil
	}
	last := e.children[len(e.children)-1]
	if tag != "" && last.tag != strings.ToLower(tag) {
		return nil
	}
	return last
}

// Form returns the nearest enclosing form element.
func (e *Element) Form() *Element {
	for cur := e.parent; cur != nil; cur = cur.parent {
		if cur.tag == "form" {
			return cur
		}
	}
	return nil
}

// Reset clears the value of every input below the element.
func (e *Element) Reset() {
	walk(e, func(el *Element) bool {
		if el.IsInput() {
			el.value = ""
		}
		return true
	})
}

// On registers a listener for the given event type.
func (e *Element) On(typ EventType, fn Listener) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[EventType][]Listener)
	}
	e.listeners[typ] = append(e.listeners[typ], fn)
}

// ListenerCount reports how many listeners are registered for typ.
func (e *Element) ListenerCount(typ EventType) int {
	return len(e.listeners[typ])
}

func walk(el *Element, fn func(*Element) bool) bool {
	if el == nil {
		return true
	}
	if !fn(el) {
		return false
	}
	for _, child := range el.children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}
