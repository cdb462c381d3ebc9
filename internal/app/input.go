package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsWindowResized() {
		app.Session.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		app.Session.Navigation.Reset()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.requestReload()
	}
	if rl.IsKeyPressed(rl.KeyU) {
		app.startUnfold()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		watching, err := app.toggleWatching()
		switch {
		case err != nil:
			app.setStatus(err.Error(), true)
		case watching:
			app.setStatus("Auto-reload on", false)
		default:
			app.setStatus("Auto-reload paused", false)
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	// Orbit with the left button; deltas are raw pixels
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Session.PointerPress(float64(mouse.X), float64(mouse.Y))
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.Session.PointerMove(float64(mouse.X), float64(mouse.Y))
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Session.PointerRelease()
	}

	// raylib reports wheel movement in notches
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Session.Scroll(float64(wheel))
	}

	if rl.IsFileDropped() {
		files := rl.LoadDroppedFiles()
		rl.UnloadDroppedFiles()
		for _, file := range files {
			if isOBJ(file) {
				app.openFile(file)
				return
			}
		}
		if len(files) > 0 {
			app.openFile(files[0])
		}
	}
}
