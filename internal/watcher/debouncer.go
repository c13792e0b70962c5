package watcher

import (
	"sort"
	"sync"
	"time"
)

// debouncer collects changed paths and fires the handler once per quiet
// period with the accumulated set.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		pending: make(map[string]bool),
	}
}

func (d *debouncer) add(path string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending[path] = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.flush(handler)
	})
}

func (d *debouncer) flush(handler Handler) {
	d.mu.Lock()
	if d.stopped || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	d.pending = make(map[string]bool)
	d.mu.Unlock()

	sort.Strings(paths)
	handler(paths)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
