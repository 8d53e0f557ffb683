// Package watcher reloads a page document from disk whenever it changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

// ReloadFunc receives the freshly parsed document, or the parse error when
// the file on disk is not a valid page.
type ReloadFunc func(doc *page.Document, err error)

// PageWatcher watches a single page file. It watches the parent directory so
// that editors which save by rename keep triggering reloads.
type PageWatcher struct {
	path     string
	delay    time.Duration
	log      *logger.Logger
	onReload ReloadFunc
	fs       *fsnotify.Watcher

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// New prepares a watcher for path. Bursts of changes closer together than
// delay collapse into a single reload.
func New(path string, delay time.Duration, log *logger.Logger, onReload ReloadFunc) (*PageWatcher, error) {
	if onReload == nil {
		return nil, fmt.Errorf("watch %s: reload callback is nil", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &PageWatcher{
		path:     abs,
		delay:    delay,
		log:      log.Component("watcher"),
		onReload: onReload,
		fs:       fs,
	}, nil
}

// Path returns the absolute path being watched.
func (w *PageWatcher) Path() string { return w.path }

// Run blocks until ctx is cancelled or the underlying watcher is closed.
func (w *PageWatcher) Run(ctx context.Context) error {
	w.log.Debug("watching page", "path", w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				w.log.Debug("page changed", "op", event.Op.String())
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err.Error())
		}
	}
}

// Close stops watching and cancels any pending reload.
func (w *PageWatcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fs.Close()
}

func (w *PageWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *PageWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.reload)
}

func (w *PageWatcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	doc, err := page.Load(w.path)
	if err != nil {
		w.log.Error(err, "reload failed", "path", w.path)
	} else {
		w.log.Info("page reloaded", "path", w.path)
	}
	w.onReload(doc, err)
}
