package workspace

import (
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Local is a Context rooted at a directory on the local machine. It
// watches the directory with fsnotify and signals Notify when its
// listing changes, so the root resolver can refresh without waiting
// for the next poll tick.
type Local struct {
	baseDir string
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

// NewLocal creates a Local workspace for baseDir. A missing or
// unwatchable directory degrades to poll-only refresh; it is not an
// error.
func NewLocal(baseDir string) *Local {
	l := &Local{
		baseDir: baseDir,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("workspace: watcher unavailable: %v", err)
		return l
	}
	if err := watcher.Add(baseDir); err != nil {
		log.Printf("workspace: cannot watch %s: %v", baseDir, err)
		watcher.Close()
		return l
	}

	l.watcher = watcher
	go l.forward()
	return l
}

func (l *Local) forward() {
	for {
		select {
		case _, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			select {
			case l.changes <- struct{}{}:
			default:
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("workspace: watch error: %v", err)
		case <-l.done:
			return
		}
	}
}

// ActiveLocalDir returns the base directory while it exists.
func (l *Local) ActiveLocalDir() string {
	if info, err := os.Stat(l.baseDir); err == nil && info.IsDir() {
		return l.baseDir
	}
	return ""
}

// ActiveRemoteDir always returns "": no backend is attached to a
// plain local workspace.
func (l *Local) ActiveRemoteDir() string { return "" }

func (l *Local) RemoteCaps() (Capabilities, bool) { return Capabilities{}, false }

func (l *Local) Notify() <-chan struct{} { return l.changes }

// Close stops the watcher.
func (l *Local) Close() {
	close(l.done)
	if l.watcher != nil {
		l.watcher.Close()
	}
}
