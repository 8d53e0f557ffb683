package tui

import "github.com/alexisbeaulieu97/pagelet/internal/page"

// PageReloadedMsg replaces the page with a freshly loaded document. A
// non-nil Err keeps the current session and reports the failure.
type PageReloadedMsg struct {
	Doc *page.Document
	Err error
}

// timerFiredMsg delivers a scheduled callback back onto the event loop.
type timerFiredMsg struct {
	session int
	id      uint64
}
