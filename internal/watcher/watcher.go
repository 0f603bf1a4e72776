// Package watcher rebuilds an index whenever its directory changes.
package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/taigrr/htmlindex/internal/types"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 250 * time.Millisecond

// Builder writes an index document into a directory.
type Builder interface {
	Build() (types.BuildResult, error)
	OutputPath() string
}

// Watcher watches one directory and rebuilds its index after changes settle.
type Watcher struct {
	builder  Builder
	dir      string
	output   string
	debounce time.Duration

	// OnBuild is called after every build attempt. Defaults to logging.
	OnBuild func(types.BuildResult, error)
}

// New creates a Watcher for the directory b writes into.
func New(b Builder, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	outPath := b.OutputPath()
	return &Watcher{
		builder:  b,
		dir:      filepath.Dir(outPath),
		output:   filepath.Base(outPath),
		debounce: debounce,
		OnBuild:  logBuild,
	}
}

func logBuild(result types.BuildResult, err error) {
	if err != nil {
		log.Printf("Index build failed: %v", err)
		return
	}
	log.Printf("Wrote %s (%d entries)", result.Path, len(result.Entries))
}

// Run builds once, then rebuilds after each burst of changes until ctx is
// cancelled. Build failures are reported through OnBuild and do not stop
// the watch.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.build()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				fire = time.After(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v", err)

		case <-fire:
			fire = nil
			w.build()
		}
	}
}

func (w *Watcher) build() {
	result, err := w.builder.Build()
	if w.OnBuild != nil {
		w.OnBuild(result, err)
	}
}

// relevant drops events caused by our own writes and pure metadata changes.
// Removing or renaming the output still counts, so a deleted index is rebuilt.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) == w.output {
		return event.Op&(fsnotify.Remove|fsnotify.Rename) != 0
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
