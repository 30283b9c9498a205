package config

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// WatchTaskManifest watches the task manifest file for changes and calls
// onChange with a freshly reloaded manifest whenever it's rewritten.
// Runs until the returned stop function is called. Reload errors (a
// manifest mid-write, or an invalid edit) are logged and skipped rather
// than propagated, since a transient bad write shouldn't kill the daemon.
func WatchTaskManifest(path string, maxTasks int, onChange func(TaskManifest)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				manifest, err := LoadTaskManifest(path, maxTasks)
				if err != nil {
					log.Printf("config: reloading %s: %v", path, err)
					continue
				}
				onChange(manifest)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config: watch error: %v", werr)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
