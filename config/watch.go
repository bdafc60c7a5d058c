package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/hotkey/shortcut"
)

// DefaultDebounce is how long the watcher waits after the last write before
// reloading, so editors that write in bursts trigger a single reload.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a shortcut file when it changes on disk.
//
// Reloaded groups arrive on Groups; parse failures arrive on Errors and
// leave the previously delivered configuration in effect. The parent
// directory is watched rather than the file itself, so editors that replace
// the file via rename are still observed.
type Watcher struct {
	path     string
	debounce time.Duration

	fw     *fsnotify.Watcher
	groups chan map[string]shortcut.Group
	errs   chan error

	closeOnce sync.Once
	done      chan struct{}
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce overrides the reload debounce interval.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watch starts watching a shortcut file for changes.
func Watch(path string, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		fw:       fw,
		groups:   make(chan map[string]shortcut.Group, 1),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	go w.loop()
	return w, nil
}

// Groups delivers freshly reloaded shortcut groups.
func (w *Watcher) Groups() <-chan map[string]shortcut.Group {
	return w.groups
}

// Errors delivers reload failures.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}

// loop processes file events until Close.
func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				// Drain a tick that fired between selects so the
				// reset interval starts clean.
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.report(err)

		case <-fire:
			timer = nil
			fire = nil
			w.reload()
		}
	}
}

// reload parses the file and delivers the result.
func (w *Watcher) reload() {
	groups, err := Load(w.path)
	if err != nil {
		w.report(err)
		return
	}

	select {
	case w.groups <- groups:
	case <-w.done:
	default:
		// Drop the stale undelivered set and publish the fresh one.
		select {
		case <-w.groups:
		default:
		}
		select {
		case w.groups <- groups:
		case <-w.done:
		default:
		}
	}
}

// report delivers an error without blocking a slow consumer.
func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	case <-w.done:
	default:
	}
}
