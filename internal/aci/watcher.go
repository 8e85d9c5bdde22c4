package aci

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oba-ldap/aci/internal/logging"
)

// Watcher errors.
var (
	ErrNoFilePath     = errors.New("aci: file path is required")
	ErrWatcherRunning = errors.New("aci: watcher already running")
	ErrWatcherStopped = errors.New("aci: watcher already stopped")
)

// WatchResult is the outcome of assembling a watched draft file.
type WatchResult struct {
	Path string
	ACI  string
	Err  error
}

// WatcherConfig holds draft watcher configuration.
type WatcherConfig struct {
	FilePath string
	Logger   logging.Logger
	Debounce time.Duration // Default: 200ms
}

// Watcher re-assembles a draft file every time it changes.
type Watcher struct {
	filePath string
	logger   logging.Logger
	debounce time.Duration
	results  chan WatchResult

	mu        sync.Mutex
	running   bool
	started   bool
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewWatcher creates a new draft watcher.
func NewWatcher(cfg *WatcherConfig) (*Watcher, error) {
	if cfg == nil || cfg.FilePath == "" {
		return nil, ErrNoFilePath
	}

	path, err := filepath.Abs(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("aci: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = 200 * time.Millisecond
	}

	return &Watcher{
		filePath:  path,
		logger:    logger.WithFields("file", path),
		debounce:  debounce,
		results:   make(chan WatchResult, 1),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Results delivers one result for the initial state of the file and one
// per settled change. The channel is closed once the watcher stops.
func (w *Watcher) Results() <-chan WatchResult {
	return w.results
}

// Start begins watching. It returns once the watch is established; the
// watcher runs until Stop is called or ctx is cancelled. A Watcher runs at
// most once: Start after the watch has ended returns ErrWatcherStopped.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return ErrWatcherRunning
	}
	if w.started {
		return ErrWatcherStopped
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("aci: failed to create file watcher: %w", err)
	}
	// Editors often replace the file on save, so the directory is watched.
	if err := fsw.Add(filepath.Dir(w.filePath)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("aci: failed to watch %s: %w", w.filePath, err)
	}

	w.running = true
	w.started = true
	go w.watchLoop(ctx, fsw)

	w.logger.Info("draft watcher started", "debounce", w.debounce.String())
	return nil
}

// Stop stops watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.stoppedCh)
	defer close(w.results)
	defer func() { _ = fsw.Close() }()

	if !w.emit(ctx) {
		return
	}

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
			debounceCh = debounceTimer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)

		case <-debounceCh:
			debounceTimer = nil
			debounceCh = nil
			if !w.emit(ctx) {
				return
			}
		}
	}
}

// emit assembles the file and delivers the result. It reports false when
// the watcher was stopped while delivering.
func (w *Watcher) emit(ctx context.Context) bool {
	res := WatchResult{Path: w.filePath}

	d, err := LoadDraftFile(w.filePath)
	if err == nil {
		res.ACI, err = Assemble(d)
	}
	res.Err = err

	if err != nil {
		w.logger.Warn("draft not assembled", "error", err)
	} else {
		w.logger.Debug("draft assembled", "bytes", len(res.ACI))
	}

	select {
	case w.results <- res:
		return true
	case <-ctx.Done():
		return false
	case <-w.stopCh:
		return false
	}
}
