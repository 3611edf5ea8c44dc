// Package watch reports changes to a fixed set of files.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches the directories of a set of files and calls OnChange for
// writes, creates and renames of those files. Watching the directory keeps
// the watch alive across editors that save by replacing the file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)
	logger   *zap.Logger
}

// New creates a watcher for files
func New(files []string, onChange func(path string), logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool, len(files)),
		onChange: onChange,
		logger:   logger,
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Debug("watching directory", zap.String("dir", dir))
	}
	return w, nil
}

// Run delivers change notifications until ctx is done, then closes the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}
	w.logger.Debug("file changed", zap.String("path", abs), zap.String("op", event.Op.String()))
	w.onChange(abs)
}
