package behavior

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
	"github.com/alexisbeaulieu97/pagelet/internal/schedule"
)

type session struct {
	doc   *page.Document
	ctrl  *Controller
	clock *schedule.Manual
}

func newSession(t *testing.T) session {
	t.Helper()

	doc := page.Default()
	clock := schedule.NewManual()
	ctrl := New(logger.Discard(), clock)
	report := ctrl.Init(doc)
	require.True(t, report.OK(), "default page should bind: %v", report.Err())
	return session{doc: doc, ctrl: ctrl, clock: clock}
}

func newSessionDoc(t *testing.T, ctrl *Controller) *page.Document {
	t.Helper()

	doc := page.Default()
	report := ctrl.Init(doc)
	require.True(t, report.OK(), "default page should bind: %v", report.Err())
	return doc
}

func (s session) el(t *testing.T, id string) *page.Element {
	t.Helper()
	el, ok := s.doc.ElementByID(id)
	require.True(t, ok, "missing #%s", id)
	return el
}

func (s session) click(t *testing.T, id string) {
	t.Helper()
	s.doc.Click(s.el(t, id))
}

func (s session) input(t *testing.T, id, value string) {
	t.Helper()
	s.doc.Input(s.el(t, id), value)
}

func (s session) submit(t *testing.T) *page.Event {
	t.Helper()
	return s.doc.Click(s.el(t, "submitBtn"))
}

func mustParse(t *testing.T, markup string) *page.Document {
	t.Helper()
	doc, err := page.Parse(t.Name(), []byte(markup))
	require.NoError(t, err)
	return doc
}
