// Package watch reruns a callback when files in a directory change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Relevant reports whether ev touches a file directly inside dir whose
// name satisfies match. Dot-files and events from subdirectories are ignored.
func Relevant(ev fsnotify.Event, dir string, match func(name string) bool) bool {
	if ev.Op&relevantOps == 0 {
		return false
	}
	if filepath.Dir(ev.Name) != filepath.Clean(dir) {
		return false
	}
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return match(name)
}

// Run watches dir (not recursively). It calls fn once as soon as the watch is
// registered, so no change made during that first run is lost, and again
// whenever a burst of relevant events has been quiet for the debounce
// interval. A failing fn is logged and watching continues. Run returns nil
// when ctx is cancelled.
func Run(ctx context.Context, dir string, match func(name string) bool, debounce time.Duration, fn func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	slog.Info("file watcher started", "dir", dir, "debounce", debounce)

	if err := fn(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		slog.Error("initial generation failed", "error", err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !Relevant(ev, dir, match) {
				continue
			}
			slog.Debug("asset changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := fn(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Error("regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)
		}
	}
}
