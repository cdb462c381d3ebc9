// Package app is the interactive raylib window around a viewer session.
package app

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/objview/internal/config"
	"github.com/philipparndt/objview/pkg/unfold"
	"github.com/philipparndt/objview/pkg/viewer"
)

// raylib reports mouse wheel movement in whole notches
const scrollUnitsPerNotch = 1

type App struct {
	Session   *viewer.Session
	Config    config.Config
	Model     ModelData
	FileWatch FileWatchState
	Unfold    UnfoldState
	UI        UIState

	surface *gpuSurface
}

// New creates the application state without opening a window
func New(cfg config.Config) *App {
	session := viewer.NewSession(cfg.ViewerOptions(scrollUnitsPerNotch))

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	app := &App{
		Session: session,
		Config:  cfg,
		UI:      UIState{showHelp: true},
		surface: newGPUSurface(),
	}
	app.FileWatch.loader = newBackgroundLoader(session.LoadMesh)
	app.Unfold.exporter = unfold.NewExporter(cfg.Unfold.Blender, cfg.Unfold.Script, workDir)
	app.Unfold.timeout = cfg.Unfold.Timeout
	return app
}

// Run opens the window and blocks until it is closed. An initial file
// that fails to load is an error; later loads keep the previous mesh.
func Run(sourceFile string, cfg config.Config) error {
	app := New(cfg)

	if sourceFile != "" {
		stats, err := app.Session.LoadMesh(sourceFile)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", sourceFile, err)
		}
		app.setModel(sourceFile, stats)
		fmt.Printf("Loaded %s: %d vertices, %d faces, %d triangles\n", sourceFile, stats.Vertices, stats.Faces, stats.Triangles)
		if stats.DroppedFaces > 0 {
			fmt.Printf("Warning: %d face(s) reference missing vertices and are not drawn\n", stats.DroppedFaces)
		}
	}

	// Initialize window
	flags := uint32(rl.FlagWindowResizable)
	if cfg.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "objview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	app.Session.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())

	if cfg.Watch.Enabled {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
			if sourceFile != "" {
				if err := app.watchModel(sourceFile); err != nil {
					fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
				}
			}
		}
	}

	// Main loop
	for !rl.WindowShouldClose() {
		app.applyLoadResults()
		app.handleInput()

		rl.BeginDrawing()
		app.Session.RenderFrame(app.surface)
		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}
