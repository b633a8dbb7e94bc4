package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 250 * time.Millisecond

// notifier turns raw filesystem events into debounced wake-ups for the poll
// loop. It watches the directories that exist at startup; directories
// created later are only covered by the regular poll, which stays
// authoritative.
type notifier struct {
	watcher *fsnotify.Watcher
	logger  *zap.Logger

	// C receives at most one pending wake-up.
	C chan struct{}
}

func newNotifier(target string, logger *zap.Logger) (*notifier, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	n := &notifier{
		watcher: fsw,
		logger:  logger,
		C:       make(chan struct{}, 1),
	}

	if err := n.watch(target); err != nil {
		fsw.Close()
		return nil, err
	}

	go n.loop()

	return n, nil
}

func (n *notifier) watch(target string) error {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		// Watch the parent so a missing or file target still produces
		// create/remove/write events.
		return n.watcher.Add(filepath.Dir(target))
	}

	return filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		return n.watcher.Add(path)
	})
}

func (n *notifier) loop() {
	var timer *time.Timer

	for {
		select {
		case _, ok := <-n.watcher.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, n.signal)
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-n.watcher.Errors:
			if !ok {
				return
			}
			n.logger.Debug("filesystem watch error", zap.Error(err))
		}
	}
}

func (n *notifier) signal() {
	select {
	case n.C <- struct{}{}:
	default:
	}
}

func (n *notifier) Close() error {
	return n.watcher.Close()
}
