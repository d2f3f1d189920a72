package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of file events, such as an editor
// writing a temp file and renaming it.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports changes to a local source.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch watches a local origin: a directory, or the directory holding a
// feed file. It returns nil for remote or empty origins.
func Watch(origin string, debounce time.Duration) (*Watcher, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
		return nil, nil
	}
	info, err := os.Stat(origin)
	if err != nil {
		return nil, fmt.Errorf("watching source: %w", err)
	}

	dir, name := origin, ""
	if !info.IsDir() {
		dir, name = filepath.Dir(origin), filepath.Base(origin)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop(name, debounce)
	return w, nil
}

// Changes delivers one value per settled burst of changes. It is closed
// when the watcher is closed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop(name string, debounce time.Duration) {
	defer close(w.changes)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(ev, name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

func relevant(ev fsnotify.Event, name string) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	if name != "" {
		return base == name
	}
	ext := strings.ToLower(filepath.Ext(base))
	return docExts[ext]
}
