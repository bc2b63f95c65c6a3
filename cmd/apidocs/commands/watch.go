package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	RunFlags `embed:""`
	Debounce time.Duration `help:"Quiet period after the last change before re-rendering" default:"300ms"`
}

func (w *WatchCmd) Run(globals *Global, root *CLI) error {
	s, err := root.settings(&w.RunFlags)
	if err != nil {
		return err
	}
	r, err := newRunner(s, root.logger, globals.Stdout)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return derrors.InternalError("failed to create file watcher", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	pattern := s.Options.InputGlob
	base := watchRoot(pattern)
	if err := addDirsRecursive(watcher, base, root.logger); err != nil {
		return err
	}
	root.logger.Info("Watching for changes", logfields.Pattern(pattern), logfields.Path(base))

	ctx := globals.Ctx
	rerun := func() {
		if err := r.run(ctx); err != nil && ctx.Err() == nil {
			root.logger.Error("Regeneration failed", logfields.Error(err))
		}
	}
	rerun()

	w.loop(ctx, watcher, pattern, rerun, root.logger)
	return nil
}

// loop coalesces events into debounced, serial re-runs until ctx ends.
func (w *WatchCmd) loop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, rerun func(), logger *slog.Logger) {
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopped watching")
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevant(watcher, pattern, ev, logger) {
				continue
			}
			logger.Debug("Input change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error", logfields.Error(err))
		case <-fire:
			fire = nil
			rerun()
		}
	}
}

// relevant reports whether ev should trigger a re-run. New directories are
// added to the watch set on the way.
func relevant(watcher *fsnotify.Watcher, pattern string, ev fsnotify.Event, logger *slog.Logger) bool {
	if shouldIgnoreEvent(ev.Name) || ev.Op == fsnotify.Chmod {
		return false
	}
	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name, logger)
			return false
		}
	}
	ok, err := doublestar.PathMatch(filepath.Clean(pattern), filepath.Clean(ev.Name))
	return err == nil && ok
}

// watchRoot returns the static directory prefix of pattern.
func watchRoot(pattern string) string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if base == "" {
		return "."
	}
	return filepath.FromSlash(base)
}

func addDirsRecursive(w *fsnotify.Watcher, root string, logger *slog.Logger) error {
	if _, err := os.Stat(root); err != nil {
		return derrors.FileSystemError("watch", root, err)
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && shouldIgnoreEvent(path) {
				return filepath.SkipDir
			}
			if err := w.Add(path); err != nil {
				logger.Warn("Failed to watch directory", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for hidden, editor swap and OS metadata files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "."), strings.HasPrefix(base, "#"):
		return true
	case strings.HasSuffix(base, "~"), strings.HasSuffix(base, ".swp"), strings.HasSuffix(base, ".swx"):
		return true
	case base == "Thumbs.db":
		return true
	}
	return false
}
