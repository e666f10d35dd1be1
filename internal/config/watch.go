package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"vibedemo/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDur batches the burst of events editors emit for one save.
const debounceDur = 150 * time.Millisecond

// Watch reloads the config at path whenever it changes and passes the
// result to fn. A reload that fails to load or validate is passed as a
// non-nil error with a nil Config. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file, so saves that
// replace the file by rename are still seen.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	log := logging.Get(logging.CategoryConfig)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Info("watching config", zap.String("path", abs))

	debounceTicker := time.NewTicker(debounceDur / 3)
	defer debounceTicker.Stop()

	var lastEvent time.Time
	pending := false

	for {
		select {
		case <-ctx.Done():
			log.Debug("config watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("config event", zap.String("op", event.Op.String()))
			pending = true
			lastEvent = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", zap.Error(err))

		case <-debounceTicker.C:
			if !pending || time.Since(lastEvent) < debounceDur {
				continue
			}
			pending = false
			cfg, err := Load(path)
			if err != nil {
				log.Warn("config reload failed", zap.Error(err))
				fn(nil, err)
				continue
			}
			log.Info("config reloaded", zap.String("variant", cfg.Variant))
			fn(cfg, nil)
		}
	}
}
