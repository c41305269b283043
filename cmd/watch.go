package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Zachdehooge/sicily-map/internal/config"
	"github.com/Zachdehooge/sicily-map/internal/logger"
)

// debounce groups the burst of events a shapefile export produces (.shp,
// .shx, .dbf, .cpg) into one regeneration.
const debounce = 500 * time.Millisecond

// runWatchMode regenerates the map whenever an input file changes.
func runWatchMode(cmd *cobra.Command, cfg *config.Config) error {
	outAbs, err := outputPath(cfg)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dirs := watchedDirs(cfg)
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	cmd.Println(fmt.Sprintf("Watch mode activated. Watching %d directories. Press Ctrl+C to stop.", len(dirs)))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var timer <-chan time.Time

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if isOutput(ev.Name, outAbs) {
				continue
			}
			logger.L().Debug("input changed", "file", ev.Name, "op", ev.Op.String())
			timer = time.After(debounce)
		case <-timer:
			timer = nil
			if fresh, err := loadConfig(cmd); err == nil {
				cfg = fresh
			} else {
				logger.L().Warn("keeping previous config", "error", err)
			}
			if err := generateMapHTML(cmd, cfg); err != nil {
				cmd.PrintErrln(fmt.Errorf("update failed: %w", err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.L().Warn("watcher error", "error", err)
		case <-stop:
			cmd.Println("Watch mode stopped.")
			return nil
		}
	}
}

// outputPath resolves the generated page to an absolute path so events can
// be matched against it.
func outputPath(cfg *config.Config) (string, error) {
	abs, err := filepath.Abs(cfg.Output)
	if err != nil {
		return "", fmt.Errorf("resolving output path %s: %w", cfg.Output, err)
	}
	return abs, nil
}

// isOutput reports whether name is the generated page or one of the
// temporary files it is written through.
func isOutput(name, outAbs string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return filepath.Dir(abs) == filepath.Dir(outAbs) &&
		strings.HasPrefix(filepath.Base(abs), filepath.Base(outAbs))
}

// watchedDirs returns the distinct directories holding the inputs.
func watchedDirs(cfg *config.Config) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range []string{cfg.PlacesPath, cfg.ProvincesPath, cfg.Intro, cfgFile} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		dir, err := filepath.Abs(filepath.Dir(p))
		if err != nil || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}
