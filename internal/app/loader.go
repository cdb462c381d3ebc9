package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/philipparndt/objview/pkg/analysis"
	"github.com/philipparndt/objview/pkg/obj"
	"github.com/philipparndt/objview/pkg/watcher"
)

// loadResult is the outcome of one background load
type loadResult struct {
	path    string
	stats   obj.Stats
	err     error
	elapsed time.Duration
}

// backgroundLoader runs one load at a time off the UI thread. Requests
// arriving while a load runs collapse into a single follow-up load of
// the latest path.
type backgroundLoader struct {
	load func(path string) (obj.Stats, error)

	mu        sync.Mutex
	busy      bool
	startTime time.Time
	pending   string
	results   []loadResult
}

func newBackgroundLoader(load func(string) (obj.Stats, error)) *backgroundLoader {
	return &backgroundLoader{load: load}
}

// Request schedules a load of path
func (l *backgroundLoader) Request(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy {
		l.pending = path
		return
	}
	l.start(path)
}

// start must be called with mu held
func (l *backgroundLoader) start(path string) {
	l.busy = true
	l.startTime = time.Now()

	go func() {
		started := time.Now()
		stats, err := l.load(path)
		result := loadResult{path: path, stats: stats, err: err, elapsed: time.Since(started)}

		l.mu.Lock()
		defer l.mu.Unlock()
		l.results = append(l.results, result)
		l.busy = false
		if l.pending != "" {
			next := l.pending
			l.pending = ""
			l.start(next)
		}
	}()
}

// Busy reports whether a load is running and since when
func (l *backgroundLoader) Busy() (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy, l.startTime
}

// Poll returns the finished loads since the last call
func (l *backgroundLoader) Poll() []loadResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	results := l.results
	l.results = nil
	return results
}

// isOBJ reports whether the path has an .obj extension
func isOBJ(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".obj")
}

// openFile starts loading a new model in the background
func (app *App) openFile(path string) {
	if !isOBJ(path) {
		app.setStatus(fmt.Sprintf("Not an OBJ file: %s", filepath.Base(path)), true)
		return
	}
	fmt.Printf("Loading model: %s\n", path)
	app.FileWatch.loader.Request(path)
}

// requestReload reloads the displayed model from disk
func (app *App) requestReload() {
	if source := app.Session.Source(); source != "" {
		fmt.Println("Reloading model...")
		app.FileWatch.loader.Request(source)
	}
}

// applyLoadResults picks up finished loads (must be called on main thread).
// The session already swapped the mesh; this updates the HUD and the
// watched files.
func (app *App) applyLoadResults() {
	for _, result := range app.FileWatch.loader.Poll() {
		if result.err != nil {
			fmt.Printf("Error loading model: %v\n", result.err)
			app.setStatus(fmt.Sprintf("Load failed: %v", result.err), true)
			continue
		}

		fmt.Printf("Model loaded in %.2fs: %d vertices, %d faces, %d triangles\n",
			result.elapsed.Seconds(), result.stats.Vertices, result.stats.Faces, result.stats.Triangles)
		if result.stats.DroppedFaces > 0 {
			fmt.Printf("Warning: %d face(s) reference missing vertices and are not drawn\n", result.stats.DroppedFaces)
		}

		app.setModel(result.path, result.stats)
		app.setStatus(fmt.Sprintf("Loaded %s", filepath.Base(result.path)), false)

		if app.FileWatch.fileWatcher != nil {
			if err := app.watchModel(result.path); err != nil {
				fmt.Printf("Warning: Failed to watch %s: %v\n", result.path, err)
			}
		}
	}
}

// setModel refreshes the HUD data for the mesh now in the session
func (app *App) setModel(path string, stats obj.Stats) {
	mesh := app.Session.Mesh()
	app.Model = ModelData{
		source: path,
		stats:  stats,
		result: analysis.AnalyzeMesh(mesh),
	}
	if mesh != nil {
		app.Model.name = mesh.Name
	}
}

// setupFileWatcher creates the watcher; files are added once a model loads
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(app.Config.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// toggleWatching pauses or resumes auto-reload for the displayed model.
// It returns whether files are watched afterwards.
func (app *App) toggleWatching() (bool, error) {
	fw := app.FileWatch.fileWatcher
	if fw == nil {
		return false, fmt.Errorf("file watching is disabled")
	}

	if len(fw.Files()) > 0 {
		if err := fw.RemoveAll(); err != nil {
			return true, fmt.Errorf("failed to stop watching: %w", err)
		}
		fmt.Println("Auto-reload paused")
		return false, nil
	}

	source := app.Session.Source()
	if source == "" {
		return false, nil
	}
	if err := app.watchModel(source); err != nil {
		return false, err
	}
	return true, nil
}

// watchModel watches the OBJ file and its material libraries
func (app *App) watchModel(path string) error {
	files, err := obj.ResolveDependencies(path)
	if err != nil {
		return fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	callback := func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		app.requestReload()
	}
	if err := app.FileWatch.fileWatcher.Watch(files, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	if len(files) == 1 {
		fmt.Printf("Watching file for changes: %s\n", files[0])
	} else {
		fmt.Printf("Watching %d file(s) for changes:\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}
	return nil
}
