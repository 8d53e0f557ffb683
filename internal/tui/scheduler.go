package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pagelet/internal/schedule"
)

// teaScheduler turns delayed callbacks into tea.Tick commands. Callbacks run
// inside Update when their timerFiredMsg arrives, never on a timer goroutine.
type teaScheduler struct {
	session int
	next    uint64
	pending map[uint64]*teaTask
	queued  []tea.Cmd
}

type teaTask struct {
	s    *teaScheduler
	id   uint64
	fn   func()
	done bool
}

func newTeaScheduler(session int) *teaScheduler {
	return &teaScheduler{session: session, pending: make(map[uint64]*teaTask)}
}

// AfterFunc implements schedule.Scheduler.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) schedule.Task {
	if d < 0 {
		d = 0
	}
	s.next++
	task := &teaTask{s: s, id: s.next, fn: fn}
	s.pending[task.id] = task

	msg := timerFiredMsg{session: s.session, id: task.id}
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg { return msg }))
	return task
}

// drain hands the ticks queued since the last call to the runtime.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// fire runs the callback for msg. Ticks from an earlier session, or for a
// cancelled task, are dropped.
func (s *teaScheduler) fire(msg timerFiredMsg) bool {
	if msg.session != s.session {
		return false
	}
	task, ok := s.pending[msg.id]
	if !ok {
		return false
	}
	delete(s.pending, msg.id)
	task.done = true
	task.fn()
	return true
}

func (s *teaScheduler) Pending() int { return len(s.pending) }

func (t *teaTask) Cancel() bool {
	if t.done {
		return false
	}
	t.done = true
	delete(t.s.pending, t.id)
	return true
}
