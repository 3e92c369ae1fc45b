// Package watch re-runs library checks when content changes on disk.
//
// A watcher observes the library root plus the allowed content
// directories, coalesces bursts of filesystem events, and invokes a
// callback with the changed paths. Only events inside the allowed
// surface trigger the callback: edits to files the access policy would
// deny are ignored rather than reported.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jpl-au/promptlint/internal/sandbox"
)

// DefaultDebounce is the quiet period before the callback fires.
const DefaultDebounce = 200 * time.Millisecond

// Watcher observes a prompt library for content changes.
type Watcher struct {
	root     string
	policy   sandbox.Policy
	fn       func(changed []string)
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	pending map[string]struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before the callback fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watch errors.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for the library rooted at root. The callback
// receives the root-relative paths that changed, sorted.
func New(policy sandbox.Policy, root string, fn func(changed []string), opts ...Option) *Watcher {
	w := &Watcher{
		root:     root,
		policy:   policy,
		fn:       fn,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		pending:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. The watcher stops when ctx is cancelled or
// Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	abs, err := filepath.Abs(w.root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.root, err)
	}
	w.root = abs

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(abs); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", abs, err)
	}
	for _, dir := range w.policy.Dirs() {
		path := filepath.Join(abs, dir)
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			continue
		}
		if err := watchRecursive(watcher, path); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	w.mu.Lock()
	w.watcher = watcher
	w.mu.Unlock()

	go w.loop(ctx, watcher)
	return nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.watcher != nil {
		err := w.watcher.Close()
		w.watcher = nil
		return err
	}
	return nil
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			rel, ok := w.relevant(evt.Name)
			if !ok {
				continue
			}
			if evt.Op&fsnotify.Create != 0 {
				if info, err := os.Lstat(evt.Name); err == nil && info.IsDir() {
					if err := watchRecursive(watcher, evt.Name); err != nil {
						w.logger.Warn("watch new directory", "path", evt.Name, "error", err)
					}
				}
			}
			w.schedule(rel)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// relevant maps an event path to a root-relative path, reporting
// whether it falls inside the allowed surface.
func (w *Watcher) relevant(name string) (string, bool) {
	rel, err := filepath.Rel(w.root, name)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	if dir, _, nested := strings.Cut(rel, "/"); nested {
		return rel, w.policy.AllowsDir(dir)
	}
	return rel, w.policy.AllowsDir(rel) || w.policy.AllowsRootFile(rel)
}

func (w *Watcher) schedule(rel string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[rel] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for rel := range w.pending {
		changed = append(changed, rel)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(changed) == 0 {
		return
	}
	sort.Strings(changed)
	w.fn(changed)
}

// watchRecursive adds dir and every directory below it to the watcher.
// Symbolic links are not followed.
func watchRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
