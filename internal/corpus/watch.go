// Package corpus supplies prior inputs to the Splice operators: a source
// of "a random prior input as bytes", read from a directory of files that
// may grow while the fuzz loop runs.
package corpus

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher implements mutengine.PriorInputSource by watching a directory
// for new corpus files and serving a uniformly-chosen one's bytes. It
// maintains an in-memory path list rather than forwarding raw filesystem
// events to a caller.
type Watcher struct {
	w *fsnotify.Watcher

	mu    sync.Mutex
	paths []string

	errC chan error
	done chan struct{}
}

// NewWatcher seeds paths from dir's current contents, then watches dir for
// further Create events to grow the corpus as the fuzz loop discovers new
// interesting inputs (e.g. written by a corpus-out sink elsewhere in the
// fuzz loop, out of scope for this package).
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &Watcher{w: w, errC: make(chan error, 1), done: make(chan struct{})}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.Close()
		return nil, err
	}

	for _, e := range entries {
		if !e.IsDir() {
			watcher.paths = append(watcher.paths, filepath.Join(dir, e.Name()))
		}
	}

	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	go watcher.loop()

	return watcher, nil
}

func (watcher *Watcher) loop() {
	for {
		select {
		case ev, ok := <-watcher.w.Events:
			if !ok {
				return
			}

			if ev.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(ev.Name); err == nil && !fi.IsDir() {
					watcher.mu.Lock()
					watcher.paths = append(watcher.paths, ev.Name)
					watcher.mu.Unlock()
				}
			}

			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				watcher.mu.Lock()
				watcher.paths = removePath(watcher.paths, ev.Name)
				watcher.mu.Unlock()
			}
		case err, ok := <-watcher.w.Errors:
			if !ok {
				return
			}

			select {
			case watcher.errC <- err:
			default:
			}
		case <-watcher.done:
			return
		}
	}
}

func removePath(paths []string, name string) []string {
	out := paths[:0]

	for _, p := range paths {
		if p != name {
			out = append(out, p)
		}
	}

	return out
}

// Errors surfaces fsnotify errors for callers that want to log them; the
// watcher itself never treats one as fatal (a corpus with nothing to
// serve is a soft fall-through for Splice, not an error).
func (watcher *Watcher) Errors() <-chan error { return watcher.errC }

// FetchRandomPrior implements mutengine.PriorInputSource.
func (watcher *Watcher) FetchRandomPrior() ([]byte, bool) {
	watcher.mu.Lock()
	n := len(watcher.paths)

	if n == 0 {
		watcher.mu.Unlock()
		return nil, false
	}

	path := watcher.paths[rand.Intn(n)]
	watcher.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	return data, true
}

// Close stops the watcher's event loop and releases the underlying
// fsnotify handle.
func (watcher *Watcher) Close() error {
	close(watcher.done)
	return watcher.w.Close()
}
