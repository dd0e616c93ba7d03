// Package watcher delivers file-change events for a route tree. It is the
// change-notification collaborator of the generator: each event triggers a
// full regeneration pass upstream.
package watcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Event is one file change under the watched root.
type Event struct {
	Path string // path of the changed file as reported by fsnotify
	Op   string // fsnotify op name: CREATE, WRITE, REMOVE, RENAME
}

// Watcher monitors a route directory for changes to recognized source files.
type Watcher struct {
	root     string
	ignore   string // absolute path of the generated output file, never reported
	onChange func(Event)
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// New creates a Watcher over root. Events for ignoreFile are suppressed so
// writing the generated module does not retrigger generation. onChange is
// called from the watcher goroutine for each relevant event.
func New(root, ignoreFile string, onChange func(Event)) *Watcher {
	absIgnore, err := filepath.Abs(ignoreFile)
	if err != nil {
		absIgnore = ignoreFile
	}
	return &Watcher{
		root:     root,
		ignore:   absIgnore,
		onChange: onChange,
		done:     make(chan struct{}),
	}
}

// Start walks the tree, adds every non-ignored directory to the watch set,
// and begins delivering events.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw

	if err := w.addTree(w.root); err != nil {
		fsw.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop terminates the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	if w.fsw != nil {
		w.fsw.Close()
	}
	<-w.done
}

// addTree registers dir and all non-ignored subdirectories.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if !d.IsDir() {
			return nil
		}
		if w.shouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Nothing actionable; the next event triggers a fresh pass anyway.
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	// A new directory extends the watch set; files inside it arrive as
	// their own events.
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			w.addTree(ev.Name)
			return
		}
	}

	if !recognizedSource(ev.Name) {
		return
	}
	if abs, err := filepath.Abs(ev.Name); err == nil && abs == w.ignore {
		return
	}

	w.onChange(Event{Path: ev.Name, Op: ev.Op.String()})
}

// recognizedSource reports whether path has a route-file extension.
func recognizedSource(path string) bool {
	switch filepath.Ext(path) {
	case ".ts", ".js":
		return true
	}
	return false
}

// shouldIgnoreDir filters hidden directories and node_modules out of the
// watch set.
func (w *Watcher) shouldIgnoreDir(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") && path != w.root {
		return true
	}
	return name == "node_modules"
}
