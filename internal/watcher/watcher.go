// Package watcher reloads retrieval inputs when their files change: a
// supplement-directory change triggers a corpus rebuild, a registry override
// change triggers a source reload. Events are debounced so editors that
// write in bursts cause one reload, not five.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 400 * time.Millisecond

// Watcher watches the supplement directory and the sources override file.
// Either path may be empty, in which case that half is disabled.
type Watcher struct {
	supplementDir string
	overridePath  string
	onCorpus      func()
	onSources     func()
	debounce      time.Duration
	logger        *zap.Logger

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	timers   map[string]*time.Timer
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// New creates a watcher. onCorpus fires after supplement files change,
// onSources after the override file changes.
func New(supplementDir, overridePath string, onCorpus, onSources func(), logger *zap.Logger) *Watcher {
	return &Watcher{
		supplementDir: supplementDir,
		overridePath:  overridePath,
		onCorpus:      onCorpus,
		onSources:     onSources,
		debounce:      defaultDebounce,
		logger:        logger,
		timers:        make(map[string]*time.Timer),
		done:          make(chan struct{}),
	}
}

// Start begins watching. It runs until ctx is cancelled or Stop is called.
// Starting with neither path configured is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || (w.supplementDir == "" && w.overridePath == "") {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if w.supplementDir != "" {
		if err := addDirTree(fsw, w.supplementDir); err != nil {
			w.logger.Warn("supplement dir not watchable", zap.String("dir", w.supplementDir), zap.Error(err))
		}
	}
	if w.overridePath != "" {
		// Watch the parent directory: editors replace files on save, and a
		// watch on the old inode dies with it.
		if err := fsw.Add(filepath.Dir(w.overridePath)); err != nil {
			w.logger.Warn("override dir not watchable", zap.String("path", w.overridePath), zap.Error(err))
		}
	}

	w.watcher = fsw
	w.started = true
	go w.run(ctx)
	return nil
}

func addDirTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}

func (w *Watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.logger.Debug("watcher error", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	if w.overridePath != "" && filepath.Clean(ev.Name) == filepath.Clean(w.overridePath) {
		w.logger.Debug("sources override changed", zap.String("path", ev.Name))
		w.schedule("sources", w.onSources)
		return
	}

	if w.supplementDir != "" && isUnder(ev.Name, w.supplementDir) {
		// New subdirectories need their own watch.
		if ev.Op&fsnotify.Create != 0 {
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				_ = addDirTree(w.watcher, ev.Name)
			}
		}
		w.logger.Debug("supplement file changed", zap.String("path", ev.Name))
		w.schedule("corpus", w.onCorpus)
	}
}

func isUnder(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !filepath.IsAbs(rel) && !hasDotDotPrefix(rel))
}

func hasDotDotPrefix(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}

// schedule coalesces bursts of events for the same target into one callback.
func (w *Watcher) schedule(key string, fn func()) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[key]; ok {
		timer.Stop()
	}
	w.timers[key] = time.AfterFunc(w.debounce, fn)
}

// Stop stops the watcher; pending debounce timers are cancelled.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if !w.started {
			return
		}
		close(w.done)
		for _, timer := range w.timers {
			timer.Stop()
		}
		_ = w.watcher.Close()
		w.started = false
	})
}
