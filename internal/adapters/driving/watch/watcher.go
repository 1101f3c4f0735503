// Package watch ingests documents dropped into a watched directory.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// settleDelay is how long to wait after the last write event before reading
// the file, so partially copied files are not ingested.
const settleDelay = 500 * time.Millisecond

// Watcher ingests supported files created in a directory.
type Watcher struct {
	ingest driving.IngestService
	dir    string

	// OnIngest, when set, is called after each successful ingestion.
	OnIngest func(path string, result *driving.IngestResult)

	// OnError, when set, is called when a file fails to ingest. Watching
	// continues either way.
	OnError func(path string, err error)
}

// New creates a watcher for the given directory.
func New(ingest driving.IngestService, dir string) (*Watcher, error) {
	if ingest == nil {
		return nil, fmt.Errorf("watch: ingest service is required")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch: %s is not a directory", dir)
	}

	return &Watcher{ingest: ingest, dir: dir}, nil
}

// Run watches the directory until the context is cancelled. Files already
// present when watching starts are not ingested; only new arrivals are.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch: adding %s: %w", w.dir, err)
	}

	logger.Info("watching %s", w.dir)

	// pending tracks files with recent write activity and their settle
	// timers, so a file is ingested once after its last write.
	pending := make(map[string]*time.Timer)
	ready := make(chan string)

	defer func() {
		for _, timer := range pending {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !ShouldIngest(event.Name) {
				continue
			}

			path := event.Name
			if timer, exists := pending[path]; exists {
				timer.Reset(settleDelay)
				continue
			}
			pending[path] = time.AfterFunc(settleDelay, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				}
			})

		case path := <-ready:
			delete(pending, path)
			w.ingestFile(ctx, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) ingestFile(ctx context.Context, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		w.reportError(path, fmt.Errorf("reading file: %w", err))
		return
	}

	filename := filepath.Base(path)
	result, err := w.ingest.Ingest(ctx, filename, content, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		w.reportError(path, err)
		return
	}

	logger.Info("ingested %s as %s (%d chunks)", filename, result.DocumentID, result.ChunkCount)
	if w.OnIngest != nil {
		w.OnIngest(path, result)
	}
}

func (w *Watcher) reportError(path string, err error) {
	logger.Warn("ingesting %s: %v", path, err)
	if w.OnError != nil {
		w.OnError(path, err)
	}
}

// ShouldIngest reports whether a path looks like a supported document.
// Hidden files and editor temp files are skipped.
func ShouldIngest(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") || strings.HasSuffix(name, "~") {
		return false
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}
