package behavior

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
	"github.com/alexisbeaulieu97/pagelet/internal/schedule"
	pageerrors "github.com/alexisbeaulieu97/pagelet/pkg/errors"
)

// InitResult records the outcome of initialising one behavior.
type InitResult struct {
	Name string
	Err  error
}

// Report lists every behavior's init outcome in wiring order.
type Report struct {
	Results []InitResult
}

// OK reports whether every behavior bound.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return false
		}
	}
	return true
}

// Bound returns the names of behaviors that bound.
func (r Report) Bound() []string {
	var out []string
	for _, res := range r.Results {
		if res.Err == nil {
			out = append(out, res.Name)
		}
	}
	return out
}

// Err joins every init failure, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

// Option customises a Controller.
type Option func(*Controller)

// WithHideDelay overrides how long the form's success message stays visible.
func WithHideDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.form.hideDelay = d
		}
	}
}

// Controller is the PageController: it owns the five behaviors of one page
// session and wires them in a single initialisation pass.
type Controller struct {
	log *logger.Logger

	counter   *Counter
	theme     *Theme
	accordion *Accordion
	tabs      *Tabs
	form      *Form
}

// New builds a controller whose form schedules delayed work on sched.
func New(log *logger.Logger, sched schedule.Scheduler, opts ...Option) *Controller {
	log = log.Component("controller")
	c := &Controller{
		log:       log,
		counter:   NewCounter(),
		theme:     NewTheme(),
		accordion: NewAccordion(),
		tabs:      NewTabs(),
		form:      NewForm(sched, log.WithFields(map[string]any{"behavior": "form"})),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Behaviors returns the behaviors in wiring order.
func (c *Controller) Behaviors() []Behavior {
	return []Behavior{c.counter, c.theme, c.accordion, c.tabs, c.form}
}

// Init binds every behavior to doc. A behavior that fails to bind is logged
// and skipped; the others are still wired.
func (c *Controller) Init(doc *page.Document) Report {
	var report Report
	for _, b := range c.Behaviors() {
		err := initOne(b, doc)
		if err != nil {
			c.log.Error(err, "behavior failed to bind", "behavior", b.Name())
		} else {
			c.log.Debug("behavior bound", "behavior", b.Name())
		}
		report.Results = append(report.Results, InitResult{Name: b.Name(), Err: err})
	}
	return report
}

func initOne(b Behavior, doc *page.Document) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = pageerrors.WrapBindingError(b.Name(), fmt.Errorf("init panicked: %v", r))
		}
	}()
	if err := b.Init(doc); err != nil {
		var bindingErr *pageerrors.BindingError
		if errors.As(err, &bindingErr) {
			return err
		}
		return pageerrors.WrapBindingError(b.Name(), err)
	}
	return nil
}

func (c *Controller) Counter() *Counter { return c.counter }
func (c *Controller) Theme() *Theme { return c.theme }
func (c *Controller) Accordion() *Accordion { return c.accordion }
func (c *Controller) Tabs() *Tabs { return c.tabs }
func (c *Controller) Form() *Form { return c.form }
