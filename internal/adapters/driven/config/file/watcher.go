package file

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/smartmirror-cli/internal/debounce"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// reloadDelay collapses the burst of events an editor save produces.
const reloadDelay = 150 * time.Millisecond

// Watcher reloads the config file when it changes on disk and reports
// the new Settings.
type Watcher struct {
	store    *ConfigStore
	lookup   LookupEnv
	onChange func(Settings)
	fsw      *fsnotify.Watcher
	reload   *debounce.Debouncer
	log      logger.Scoped

	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher watches store's directory. onChange runs on the watcher's
// goroutine after each successful reload.
func NewWatcher(store *ConfigStore, lookup LookupEnv, onChange func(Settings)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace the file by rename.
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{
		store:    store,
		lookup:   lookup,
		onChange: onChange,
		fsw:      fsw,
		reload:   debounce.New(nil),
		log:      logger.For("config"),
		done:     make(chan struct{}),
	}, nil
}

// Run handles events until ctx is done or Close is called.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.handleEvent(ev) {
				w.reload.Schedule(reloadDelay, w.apply)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.reload.CancelPending()
		_ = w.fsw.Close()
	})
}

// handleEvent reports whether ev should trigger a reload.
func (w *Watcher) handleEvent(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.store.Path()) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

func (w *Watcher) apply() {
	select {
	case <-w.done:
		return
	default:
	}
	if err := w.store.Load(); err != nil {
		w.log.Warn("reload %s: %v", w.store.Path(), err)
		return
	}
	settings := LoadSettings(w.store, w.lookup)
	w.log.Info("reloaded %s (locale=%s)", w.store.Path(), settings.Locale)
	if w.onChange != nil {
		w.onChange(settings)
	}
}
