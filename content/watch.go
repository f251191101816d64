package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of events for the same file, such as an
// editor writing a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// Event is a settled change to a post file.
type Event struct {
	Path string
	Slug string
	Op   fsnotify.Op
}

// Watch reports changes to post files in dir until ctx is cancelled.
// Events for the same file within debounce of each other are merged and
// onChange is called once with the union of their operations.
func Watch(ctx context.Context, dir string, debounce time.Duration, onChange func(Event)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("content: watch %s: %w", dir, err)
	}

	type pendingEvent struct {
		ev   Event
		last time.Time
	}
	pending := make(map[string]*pendingEvent)

	tick := time.NewTicker(debounce / 4)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != Extension {
				continue
			}
			if p, ok := pending[ev.Name]; ok {
				p.ev.Op |= ev.Op
				p.last = time.Now()
				continue
			}
			pending[ev.Name] = &pendingEvent{
				ev: Event{
					Path: ev.Name,
					Slug: slugOf(filepath.Base(ev.Name)),
					Op:   ev.Op,
				},
				last: time.Now(),
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("content: watch %s: %w", dir, err)
		case now := <-tick.C:
			for name, p := range pending {
				if now.Sub(p.last) >= debounce {
					delete(pending, name)
					onChange(p.ev)
				}
			}
		}
	}
}
