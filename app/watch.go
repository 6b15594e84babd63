package app

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig watches the config file for changes and delivers a signal
// per change on the returned channel. The parent directory is watched
// rather than the file itself, since editors typically replace files on
// save. Close the returned closer to stop watching.
func WatchConfig(path string) (<-chan struct{}, func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	target := filepath.Clean(path)
	ch := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&fsnotify.Write == fsnotify.Write ||
					event.Op&fsnotify.Create == fsnotify.Create ||
					event.Op&fsnotify.Rename == fsnotify.Rename {
					select {
					case ch <- struct{}{}:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config watch: %v", err)
			}
		}
	}()

	return ch, watcher.Close, nil
}
