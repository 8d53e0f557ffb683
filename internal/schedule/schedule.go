// Package schedule models delayed actions as cancellable tasks so that
// timer-driven behavior can be exercised on a virtual clock.
package schedule

import (
	"sort"
	"time"
)

// Task is a pending delayed action.
type Task interface {
	// Cancel stops the task if it has not run yet and reports whether it did so.
	Cancel() bool
}

// Scheduler runs fn once after d has elapsed. Implementations must deliver fn
// on the same event loop that handles user input.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// Manual is a Scheduler driven by an explicit virtual clock. Nothing runs
// until Advance is called.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner    *Manual
	due      time.Duration
	seq      int
	fn       func()
	done     bool
	canceled bool
}

// NewManual returns a Manual clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules fn at Now()+d. Negative delays count as zero.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	m.seq++
	task := &manualTask{owner: m, due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, task)
	return task
}

// Now returns the virtual time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of tasks that have neither run nor been cancelled.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

// Advance moves the clock forward by d and runs every task that falls due,
// in due order and then scheduling order. Tasks scheduled by a running task
// are picked up when they fall inside the same window.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		m.remove(next)
		next.done = true
		if next.fn != nil {
			next.fn()
		}
	}
	m.now = target
}

func (m *Manual) nextDue(limit time.Duration) *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if m.tasks[0].due > limit {
		return nil
	}
	return m.tasks[0]
}

func (m *Manual) remove(task *manualTask) {
	for i, t := range m.tasks {
		if t == task {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (t *manualTask) Cancel() bool {
	if t.done || t.canceled {
		return false
	}
	t.canceled = true
	t.owner.remove(t)
	return true
}

var _ Scheduler = (*Manual)(nil)
