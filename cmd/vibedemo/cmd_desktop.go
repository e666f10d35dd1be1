package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"vibedemo/cmd/vibedemo/desktop"
	"vibedemo/cmd/vibedemo/ui"
	"vibedemo/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runDesktop starts the bubbletea program and, when the config file's
// directory exists, a watcher that stages reloaded scripts.
func runDesktop(ctx context.Context) error {
	script, err := scriptFromConfig()
	if err != nil {
		return err
	}

	model, err := desktop.New(desktop.Options{
		Script: script,
		Styles: ui.NewStyles(ui.ThemeFor(cfg.Theme)),
		Mouse:  cfg.Mouse,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(gctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	g.Go(func() error {
		// The watcher stops when the program does.
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	if _, err := os.Stat(filepath.Dir(configPath)); err == nil {
		g.Go(func() error {
			return config.Watch(gctx, configPath, func(c *config.Config, err error) {
				p.Send(reloadMsg(c, err))
			})
		})
	} else {
		logger.Debug("config watcher disabled", zap.String("path", configPath))
	}

	return g.Wait()
}

func reloadMsg(c *config.Config, err error) desktop.ScriptReloadedMsg {
	if err != nil {
		return desktop.ScriptReloadedMsg{Err: err}
	}
	script, err := c.DemoScript()
	return desktop.ScriptReloadedMsg{Script: script, Err: err}
}
