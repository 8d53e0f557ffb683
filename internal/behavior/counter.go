package behavior

import (
	"strconv"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

// Counter element IDs.
const (
	CounterDisplayID   = "counterValue"
	CounterIncrementID = "incrementBtn"
	CounterDecrementID = "decrementBtn"
	CounterResetID     = "resetBtn"
	CounterDoubleID    = "doubleBtn"
)

// Colour tokens written to the counter display.
const (
	ColorPositive = "green"
	ColorNegative = "red"
	ColorDefault  = ""
)

// Counter is an unbounded integer with four button actions.
type Counter struct {
	value   int
	display *page.Element
}

// NewCounter returns a counter at zero.
func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Name() string { return "counter" }

// Init binds the display and the four buttons.
func (c *Counter) Init(doc *page.Document) error {
	b := newBinder(doc, c.Name())
	display := b.byID(CounterDisplayID)
	increment := b.byID(CounterIncrementID)
	decrement := b.byID(CounterDecrementID)
	reset := b.byID(CounterResetID)
	double := b.byID(CounterDoubleID)
	if b.err != nil {
		return b.err
	}

	c.display = display
	increment.On(page.EventClick, func(*page.Event) { c.Increment() })
	decrement.On(page.EventClick, func(*page.Event) { c.Decrement() })
	reset.On(page.EventClick, func(*page.Event) { c.Reset() })
	double.On(page.EventClick, func(*page.Event) { c.Double() })
	return nil
}

// Value returns the current count.
func (c *Counter) Value() int { return c.value }

func (c *Counter) Increment() {
	c.value++
	c.refresh()
}

func (c *Counter) Decrement() {
	c.value--
	c.refresh()
}

func (c *Counter) Reset() {
	c.value = 0
	c.refresh()
}

func (c *Counter) Double() {
	c.value *= 2
	c.refresh()
}

func (c *Counter) refresh() {
	if c.display == nil {
		return
	}
	c.display.SetText(strconv.Itoa(c.value))
	c.display.SetColor(ColorFor(c.value))
}

// ColorFor maps a count to its display colour token.
func ColorFor(value int) string {
	switch {
	case value > 0:
		return ColorPositive
	case value < 0:
		return ColorNegative
	default:
		return ColorDefault
	}
}
