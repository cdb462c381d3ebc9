package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/philipparndt/objview/pkg/unfold"
)

// startUnfold exports the displayed model as a paper model in the background
func (app *App) startUnfold() {
	source := app.Session.Source()
	if source == "" {
		app.setStatus("Nothing to unfold", true)
		return
	}

	state := &app.Unfold
	state.mu.Lock()
	if state.running {
		state.mu.Unlock()
		return
	}
	state.running = true
	state.message = fmt.Sprintf("Unfolding %s...", filepath.Base(source))
	state.mu.Unlock()

	fmt.Printf("Unfolding %s\n", source)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), state.timeout)
		defer cancel()

		result, err := state.exporter.Export(ctx, source)

		var message string
		switch {
		case errors.Is(err, unfold.ErrToolNotFound):
			message = "Unfold needs Blender in PATH"
		case errors.Is(err, unfold.ErrInvalidInput):
			message = err.Error()
		case err != nil:
			message = "Unfold failed"
		default:
			message = fmt.Sprintf("Saved a %d-page document: %s", result.Pages, filepath.Base(result.PDF))
		}
		if err != nil {
			fmt.Printf("Error unfolding model: %v\n", err)
		} else {
			fmt.Printf("Unfolded to %s (%d pages)\n", result.PDF, result.Pages)
		}

		state.mu.Lock()
		state.running = false
		state.message = message
		state.mu.Unlock()
	}()
}

// unfoldStatus returns the export state for the HUD
func (app *App) unfoldStatus() (bool, string) {
	app.Unfold.mu.Lock()
	defer app.Unfold.mu.Unlock()
	return app.Unfold.running, app.Unfold.message
}
