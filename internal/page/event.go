package page

// EventType names an abstract input event.
type EventType string

const (
	EventClick  EventType = "click"
	EventInput  EventType = "input"
	EventSubmit EventType = "submit"
)

// Listener reacts to a dispatched event. Listeners run to completion.
type Listener func(ev *Event)

// Event is delivered to listeners on the target and then on each ancestor.
type Event struct {
	Type          EventType
	Target        *Element
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the default action that follows the event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }
