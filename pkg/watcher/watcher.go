package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports changes to a set of files. Bursts of events
// across the whole set collapse into one callback after the debounce
// delay, so saving a model and its material library reloads once.
//
// Parent directories are watched rather than the files themselves;
// editors that save by renaming a temp file over the target would
// otherwise drop the watch.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	files    map[string]bool
	dirs     map[string]bool
	callback func(string)
	timer    *time.Timer
	pending  string
	closed   bool
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}, nil
}

// Watch replaces the watched set. callback receives the path of the
// last file that changed in a burst.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return fmt.Errorf("watcher is closed")
	}

	files = fw.absolute(files)
	dirs := make(map[string]bool)
	for _, file := range files {
		dirs[filepath.Dir(file)] = true
	}

	for dir := range dirs {
		if fw.dirs[dir] {
			continue
		}
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	for dir := range fw.dirs {
		if !dirs[dir] {
			_ = fw.watcher.Remove(dir)
		}
	}

	fw.dirs = dirs
	fw.files = make(map[string]bool, len(files))
	for _, file := range files {
		fw.files[file] = true
	}
	fw.callback = callback
	return nil
}

func (fw *FileWatcher) absolute(files []string) []string {
	result := make([]string, 0, len(files))
	for _, file := range files {
		if abs, err := filepath.Abs(file); err == nil {
			result = append(result, abs)
		}
	}
	return result
}

// Files returns the watched files
func (fw *FileWatcher) Files() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	result := make([]string, 0, len(fw.files))
	for file := range fw.files {
		result = append(result, file)
	}
	return result
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					fw.handleFileChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleFileChange restarts the debounce timer for a watched file
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed || !fw.files[filepath.Clean(filePath)] || fw.callback == nil {
		return
	}

	fw.pending = filepath.Clean(filePath)
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.fire)
}

func (fw *FileWatcher) fire() {
	fw.mu.Lock()
	callback, path := fw.callback, fw.pending
	closed := fw.closed
	fw.timer = nil
	fw.mu.Unlock()

	if !closed && callback != nil {
		callback(path)
	}
}

// Close stops the watcher and drops a pending callback
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	fw.closed = true
	if fw.timer != nil {
		fw.timer.Stop()
		fw.timer = nil
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}

// RemoveAll stops watching every file
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for dir := range fw.dirs {
		if err := fw.watcher.Remove(dir); err != nil {
			return err
		}
	}

	fw.dirs = make(map[string]bool)
	fw.files = make(map[string]bool)
	fw.callback = nil
	if fw.timer != nil {
		fw.timer.Stop()
		fw.timer = nil
	}
	return nil
}
