package tui

import "sync"

// WindowSource tracks the terminal size and notifies subscribers when it
// changes. It satisfies layout.ViewportSource.
type WindowSource struct {
	mu       sync.Mutex
	width    int
	height   int
	handlers map[int]func()
	nextID   int
}

// NewWindowSource creates a WindowSource with an initial size. Unknown
// sizes are passed as zero.
func NewWindowSource(width, height int) *WindowSource {
	return &WindowSource{width: width, height: height, handlers: map[int]func(){}}
}

// Width returns the terminal width in cells.
func (w *WindowSource) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// Height returns the terminal height in rows.
func (w *WindowSource) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// Subscribe registers fn to run after each resize.
func (w *WindowSource) Subscribe(fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.handlers[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.handlers, id)
			w.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (w *WindowSource) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.handlers)
}

// Resize records a new size and notifies subscribers. Handlers run
// outside the lock so they may read Width.
func (w *WindowSource) Resize(width, height int) {
	w.mu.Lock()
	w.width = width
	w.height = height
	handlers := make([]func(), 0, len(w.handlers))
	for _, fn := range w.handlers {
		handlers = append(handlers, fn)
	}
	w.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
