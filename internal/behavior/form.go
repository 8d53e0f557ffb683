package behavior

import (
	"time"

	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
	"github.com/alexisbeaulieu97/pagelet/internal/schedule"
	"github.com/alexisbeaulieu97/pagelet/internal/validation"
)

const (
	FormID           = "validationForm"
	SuccessMessageID = "successMessage"

	// SuccessHideDelay is how long the success message stays up after a valid submit.
	SuccessHideDelay = 3000 * time.Millisecond
)

// FieldState is the validity of one form field.
type FieldState int

const (
	Untouched FieldState = iota
	Invalid
	Valid
)

func (s FieldState) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	default:
		return "untouched"
	}
}

// ErrorID returns the ID of the inline error element paired with field.
func ErrorID(field validation.Field) string {
	return string(field) + "Error"
}

// Form validates the registration form live and on submit.
type Form struct {
	sched     schedule.Scheduler
	hideDelay time.Duration
	log       *logger.Logger

	form    *page.Element
	success *page.Element
	inputs  map[validation.Field]*page.Element
	errors  map[validation.Field]*page.Element
	states  map[validation.Field]FieldState
}

// NewForm returns a form behavior that schedules its success hide on sched.
func NewForm(sched schedule.Scheduler, log *logger.Logger) *Form {
	return &Form{
		sched:     sched,
		hideDelay: SuccessHideDelay,
		log:       log,
		states:    make(map[validation.Field]FieldState),
	}
}

func (f *Form) Name() string { return "form" }

// Init binds the form, its four inputs and their error elements, and the
// success message.
func (f *Form) Init(doc *page.Document) error {
	b := newBinder(doc, f.Name())
	form := b.byID(FormID)
	success := b.byID(SuccessMessageID)
	inputs := make(map[validation.Field]*page.Element, len(validation.Fields))
	errors := make(map[validation.Field]*page.Element, len(validation.Fields))
	for _, field := range validation.Fields {
		inputs[field] = b.byID(string(field))
		errors[field] = b.byID(ErrorID(field))
	}
	if b.err != nil {
		return b.err
	}

	f.form = form
	f.success = success
	f.inputs = inputs
	f.errors = errors
	for _, field := range validation.Fields {
		f.states[field] = Untouched
	}

	for _, field := range validation.Fields {
		current := field
		inputs[field].On(page.EventInput, func(*page.Event) { f.InputChanged(current) })
	}
	form.On(page.EventSubmit, func(ev *page.Event) { f.Submit(ev) })
	return nil
}

// State returns the validity state of field.
func (f *Form) State(field validation.Field) FieldState {
	return f.states[field]
}

// SuccessVisible reports whether the success acknowledgment is showing.
func (f *Form) SuccessVisible() bool {
	return f.success != nil && !f.success.Hidden()
}

// InputChanged revalidates field. A password change also revalidates the
// confirmation, which compares against the password.
func (f *Form) InputChanged(field validation.Field) {
	if f.form == nil {
		return
	}
	f.recompute(field, f.registration())
	if field == validation.FieldPassword {
		f.recompute(validation.FieldConfirmPassword, f.registration())
	}
}

// Submit prevents the native submission and validates all four fields. Only
// when every field is valid does it show the success message, clear the form
// and schedule the message to hide. It reports whether the submission passed.
func (f *Form) Submit(ev *page.Event) bool {
	if ev != nil {
		ev.PreventDefault()
	}
	if f.form == nil {
		return false
	}

	reg := f.registration()
	result := validation.Check(reg)
	for _, field := range validation.Fields {
		f.apply(field, result[field])
	}
	if !result.Valid() {
		f.log.Debug("form submission rejected", "invalid", result.Invalid())
		return false
	}

	f.success.Show()
	f.form.Reset()
	for _, field := range validation.Fields {
		f.states[field] = Untouched
	}

	// Earlier hides stay scheduled. Hiding twice is harmless.
	if f.sched != nil {
		success := f.success
		f.sched.AfterFunc(f.hideDelay, success.Hide)
	} else {
		f.log.Warn("no scheduler configured; success message will stay visible")
	}
	f.log.Debug("form submitted")
	return true
}

func (f *Form) registration() validation.Registration {
	return validation.Registration{
		Name:            f.inputs[validation.FieldName].Value(),
		Email:           f.inputs[validation.FieldEmail].Value(),
		Password:        f.inputs[validation.FieldPassword].Value(),
		ConfirmPassword: f.inputs[validation.FieldConfirmPassword].Value(),
	}
}

func (f *Form) recompute(field validation.Field, reg validation.Registration) {
	f.apply(field, validation.CheckField(reg, field))
}

func (f *Form) apply(field validation.Field, valid bool) {
	if valid {
		f.states[field] = Valid
		f.errors[field].Hide()
		return
	}
	f.states[field] = Invalid
	f.errors[field].Show()
}
