package preference

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/diogo/mindmate/internal/models"
)

// DefaultDebounce collapses the burst of events a single write produces
const DefaultDebounce = 50 * time.Millisecond

// Watcher reports changes to the stored preference made by other processes
type Watcher struct {
	storage  *FileStorage
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger
	onChange func(dark bool)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewWatcher watches the directory holding storage's file. onChange receives
// the stored value after each change settles.
func NewWatcher(storage *FileStorage, onChange func(dark bool), logger *slog.Logger) (*Watcher, error) {
	dir := filepath.Dir(storage.Path())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// The file itself is replaced on every write, so watch its directory
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Watcher{
		storage:  storage,
		watcher:  w,
		debounce: DefaultDebounce,
		logger:   logger,
		onChange: onChange,
	}, nil
}

// Run processes events until ctx is done or Close is called
func (w *Watcher) Run(ctx context.Context) {
	target := filepath.Clean(w.storage.Path())

	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("preference watcher error", "error", err)
		}
	}
}

// schedule delays the read until events stop arriving
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	value, ok, err := w.storage.Get(models.DarkPreferenceKey)
	if err != nil {
		w.logger.Warn("failed to read changed preference", "error", err)
		return
	}
	w.onChange(ParseValue(value, ok))
}

// Close stops watching
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.watcher.Close()
}
