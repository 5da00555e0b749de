package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/katalvlaran/karnaugh/config"
)

// watch re-runs export each time the file at path changes, and with the
// reloaded configuration each time the config file changes. It returns when
// ctx is cancelled. Failed exports are logged and the loop goes on.
func watch(ctx context.Context, cliCtx *CLIContext, path string, export func(*config.Config) error) error {
	log := cliCtx.Logger
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cli: watcher: %w", err)
	}
	defer w.Close()

	// editors often replace files, so watch the directory
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("cli: watch %s: %w", path, err)
	}

	reloads := make(chan *config.Config, 1)
	if cliCtx.ConfigPath != "" {
		err := config.Watch(cliCtx.ConfigPath,
			func(c *config.Config) {
				select {
				case reloads <- c:
				case <-ctx.Done():
				}
			},
			func(err error) { log.Warn("config reload rejected", zap.Error(err)) },
		)
		if err != nil {
			return err
		}
	}

	cfg := cliCtx.Config
	run := func(reason string) {
		if err := export(cfg); err != nil {
			log.Warn("export failed", zap.String("reason", reason), zap.Error(err))
			return
		}
		log.Info("exported", zap.String("reason", reason), zap.String("file", path))
	}

	log.Info("watching", zap.String("file", path))
	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil
		case c := <-reloads:
			cfg = c
			run("config changed")
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			run(ev.Op.String())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
