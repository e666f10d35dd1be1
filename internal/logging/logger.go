// Package logging provides config-driven categorized logging for vibedemo.
// Logs are written to a single file so they never interleave with the
// full-screen desktop. When logging is disabled every category is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config resolution
	CategorySession   Category = "session"   // Session lifecycle, reset, timers
	CategoryScript    Category = "script"    // Terminal script engine transitions
	CategoryWindows   Category = "windows"   // Window visibility changes
	CategoryAssistant Category = "assistant" // Assistant prompts and replies
	CategoryMessaging Category = "messaging" // Messaging overlay send flow
	CategoryShare     Category = "share"     // Share link / clipboard
	CategoryInput     Category = "input"     // Key and mouse routing in the desktop
	CategoryConfig    Category = "config"    // Config load, save, watch
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryBoot, CategorySession, CategoryScript, CategoryWindows,
	CategoryAssistant, CategoryMessaging, CategoryShare, CategoryInput,
	CategoryConfig,
}

// IsCategory reports whether name is a known category.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Options mirrors config.LoggingConfig to avoid an import cycle.
type Options struct {
	Enabled bool
	Level   string // debug, info, warn, error
	Format  string // json, console
	File    string

	// Categories optionally disables individual categories. Missing
	// entries are enabled.
	Categories map[string]bool
}

var (
	mu         sync.RWMutex
	root       = zap.NewNop()
	categories map[string]bool
	closeFile  func() error
)

// Initialize builds the process-wide logger from opts. Calling it again
// replaces the previous logger and closes its file.
func Initialize(opts Options) error {
	logger, closer, err := New(opts)
	if err != nil {
		return err
	}

	mu.Lock()
	prevClose := closeFile
	root = logger
	closeFile = closer
	categories = opts.Categories
	mu.Unlock()

	if prevClose != nil {
		_ = prevClose()
	}

	if opts.Enabled {
		Get(CategoryBoot).Info("logging initialized",
			zap.String("file", opts.File),
			zap.String("level", opts.Level),
			zap.String("format", opts.Format))
	}
	return nil
}

// New builds a logger without touching the package state. The returned
// closer releases the log file; it is nil-safe to call when disabled.
func New(opts Options) (*zap.Logger, func() error, error) {
	noop := func() error { return nil }
	if !opts.Enabled {
		return zap.NewNop(), noop, nil
	}
	if opts.File == "" {
		return nil, nil, fmt.Errorf("log file path required")
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "console", "text":
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		_ = file.Close()
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(file), level)
	return zap.New(core), file.Close, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	if s == "warning" {
		s = "warn"
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Get returns the logger for a category. Disabled categories get a
// no-op logger.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if enabled, ok := categories[string(category)]; ok && !enabled {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Close flushes and closes the current log file, reverting to a no-op
// logger.
func Close() error {
	mu.Lock()
	logger := root
	closer := closeFile
	root = zap.NewNop()
	closeFile = nil
	categories = nil
	mu.Unlock()

	_ = logger.Sync()
	if closer != nil {
		return closer()
	}
	return nil
}
