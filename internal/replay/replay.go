// Package replay drives a page session headlessly from a scripted list of
// interactions and reports the resulting page state.
package replay

import (
	"fmt"

	"github.com/alexisbeaulieu97/pagelet/internal/behavior"
	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
	"github.com/alexisbeaulieu97/pagelet/internal/schedule"
)

// Loader produces a fresh copy of the page. It is called once at start and
// again whenever a submission goes through unhandled, which reloads the page.
type Loader func() (*page.Document, error)

// Runner plays scripts against fresh page sessions.
type Runner struct {
	load Loader
	log  *logger.Logger
	opts []behavior.Option
}

// NewRunner returns a runner for pages produced by load.
func NewRunner(load Loader, log *logger.Logger, opts ...behavior.Option) *Runner {
	return &Runner{load: load, log: log.Component("replay"), opts: opts}
}

type session struct {
	doc    *page.Document
	ctrl   *behavior.Controller
	report behavior.Report
	clock  *schedule.Manual
}

// Run plays every step of script in order and captures the final state. A
// step that targets a missing element stops the run with an error.
func (r *Runner) Run(script *Script) (*Snapshot, error) {
	clock := schedule.NewManual()
	sess, err := r.open(clock)
	if err != nil {
		return nil, err
	}

	reloads := 0
	for i, step := range script.Steps {
		r.log.Debug("step", "index", i, "action", step.String())
		reloaded, err := r.apply(sess, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		if reloaded {
			reloads++
			r.log.Info("submission not handled; reloading page", "step", i+1)
			if sess, err = r.open(clock); err != nil {
				return nil, fmt.Errorf("step %d: reload: %w", i+1, err)
			}
		}
	}

	snap := Capture(sess.doc, sess.ctrl, sess.report)
	snap.Elapsed = clock.Now()
	snap.Reloads = reloads
	return snap, nil
}

func (r *Runner) open(clock *schedule.Manual) (*session, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	ctrl := behavior.New(r.log, clock, r.opts...)
	return &session{doc: doc, ctrl: ctrl, report: ctrl.Init(doc), clock: clock}, nil
}

// apply performs one step. It reports whether the step ended in a native
// form submission, which reloads the page.
func (r *Runner) apply(sess *session, step Step) (bool, error) {
	kind, err := step.Kind()
	if err != nil {
		return false, err
	}

	switch kind {
	case KindClick:
		el, err := lookup(sess.doc, step.Click)
		if err != nil {
			return false, err
		}
		return submitted(sess.doc.Click(el)), nil

	case KindClickClass:
		matches := sess.doc.QueryClass(step.ClickClass.Class)
		if step.ClickClass.Index >= len(matches) {
			return false, fmt.Errorf(".%s: index %d out of range (%d matches)", step.ClickClass.Class, step.ClickClass.Index, len(matches))
		}
		return submitted(sess.doc.Click(matches[step.ClickClass.Index])), nil

	case KindInput:
		el, err := lookup(sess.doc, step.Input.ID)
		if err != nil {
			return false, err
		}
		if !el.IsInput() {
			return false, fmt.Errorf("#%s is a <%s>, not an input", el.ID(), el.Tag())
		}
		sess.doc.Input(el, step.Input.Value)
		return false, nil

	case KindSubmit:
		el, err := lookup(sess.doc, step.Submit)
		if err != nil {
			return false, err
		}
		if el.Tag() != "form" {
			return false, fmt.Errorf("#%s is a <%s>, not a form", el.ID(), el.Tag())
		}
		return submitted(sess.doc.Submit(el)), nil

	default:
		sess.clock.Advance(*step.Wait)
		return false, nil
	}
}

func lookup(doc *page.Document, id string) (*page.Element, error) {
	el, ok := doc.ElementByID(id)
	if !ok {
		return nil, fmt.Errorf("#%s: element not found", id)
	}
	return el, nil
}

func submitted(ev *page.Event) bool {
	return ev != nil && ev.Type == page.EventSubmit && !ev.DefaultPrevented()
}
