package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reload struct {
	cfg *Config
	err error
}

func startWatch(t *testing.T, path string) (<-chan reload, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan reload, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config, err error) {
			reloads <- reload{cfg, err}
		})
	}()
	// Give fsnotify a moment to register the directory.
	time.Sleep(100 * time.Millisecond)
	return reloads, func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func waitReload(t *testing.T, reloads <-chan reload) reload {
	t.Helper()
	select {
	case r := <-reloads:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
		return reload{}
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	reloads, stop := startWatch(t, path)
	defer stop()

	cfg := DefaultConfig()
	cfg.Variant = "classic"
	require.NoError(t, cfg.Save(path))

	r := waitReload(t, reloads)
	require.NoError(t, r.err)
	assert.Equal(t, "classic", r.cfg.Variant)
}

func TestWatchReportsInvalidReload(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	reloads, stop := startWatch(t, path)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("variant: deluxe\n"), 0644))

	r := waitReload(t, reloads)
	assert.ErrorIs(t, r.err, ErrInvalidConfig)
	assert.Nil(t, r.cfg)
}

func TestWatchIgnoresSiblings(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	reloads, stop := startWatch(t, path)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))

	select {
	case r := <-reloads:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(4 * debounceDur):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "config.yaml"), func(*Config, error) {})
	assert.Error(t, err)
}
