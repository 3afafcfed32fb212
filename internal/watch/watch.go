// Package watch reruns a step whenever a file is rewritten, used to keep the
// Go table in sync while the Wwise project is being edited.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Debounce is how long Watch waits after the last event before running fn.
// Wwise rewrites the header in several writes.
var Debounce = 250 * time.Millisecond

// Watch runs fn every time path is written or created until ctx is done.
// The parent directory is watched so editors that replace the file are
// followed. Errors from fn are logged and watching continues.
func Watch(ctx context.Context, logger zerolog.Logger, path string, fn func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Info().Str("path", abs).Msg("Watching for changes")

	timer := time.NewTimer(Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug().Str("op", ev.Op.String()).Msg("Change detected")
			timer.Reset(Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("Watcher error")
		case <-timer.C:
			if err := fn(); err != nil {
				logger.Error().Err(err).Str("path", abs).Msg("Regeneration failed")
				continue
			}
			logger.Info().Str("path", abs).Msg("Regenerated")
		}
	}
}
