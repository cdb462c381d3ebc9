package app

import (
	"sync"
	"time"

	"github.com/philipparndt/objview/pkg/analysis"
	"github.com/philipparndt/objview/pkg/obj"
	"github.com/philipparndt/objview/pkg/unfold"
	"github.com/philipparndt/objview/pkg/watcher"
)

// ModelData holds what the HUD shows about the displayed mesh
type ModelData struct {
	source string
	name   string
	stats  obj.Stats
	result *analysis.MeasurementResult
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher // nil when watching is disabled
	loader      *backgroundLoader
}

// UnfoldState tracks the background paper-model export
type UnfoldState struct {
	exporter *unfold.Exporter
	timeout  time.Duration

	mu      sync.Mutex
	running bool
	message string
}

// UIState holds UI-related state
type UIState struct {
	showHelp   bool
	status     string
	statusTime time.Time
	statusErr  bool
}
