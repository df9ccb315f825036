//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

type nullMedia struct{}

func (nullMedia) Present() bool { return false }

func (nullMedia) Watch(ctx context.Context, _ func(MediaEvent)) error {
	<-ctx.Done()
	return ctx.Err()
}

// hostMedia treats a filesystem path as a removable medium: the path
// appearing is an insertion and the path going away a removal.
type hostMedia struct {
	path string
}

func (m *hostMedia) Present() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Watch observes the parent directory, since the medium path itself does
// not exist while nothing is inserted.
func (m *hostMedia) Watch(ctx context.Context, fn func(MediaEvent)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("media: watcher: %w", err)
	}
	defer watcher.Close()

	path := filepath.Clean(m.path)
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("media: watch %s: %w", dir, err)
	}

	present := m.Present()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return errors.New("media: watcher closed")
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			now := m.Present()
			if now == present {
				continue
			}
			present = now
			if now {
				fn(MediaInserted)
			} else {
				fn(MediaRemoved)
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return errors.New("media: watcher closed")
			}
			fn(MediaError)
		}
	}
}
