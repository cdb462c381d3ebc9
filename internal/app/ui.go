package app

import (
	"fmt"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/objview/version"
)

// status messages fade out after this long
const statusDuration = 5 * time.Second

var helpLines = []string{
	"Drag: rotate",
	"Wheel: zoom",
	"Home: reset view",
	"R: reload",
	"W: toggle auto-reload",
	"U: unfold to PDF",
	"Drop .obj: open",
	"H: hide help",
}

func (app *App) setStatus(text string, isErr bool) {
	app.UI.status = text
	app.UI.statusTime = time.Now()
	app.UI.statusErr = isErr
}

// watchLine describes the auto-reload state for the HUD
func (app *App) watchLine() string {
	fw := app.FileWatch.fileWatcher
	if fw == nil {
		return "Auto-reload: off"
	}
	files := fw.Files()
	switch len(files) {
	case 0:
		return "Auto-reload: paused"
	case 1:
		return "Auto-reload: watching " + filepath.Base(files[0])
	default:
		return fmt.Sprintf("Auto-reload: watching %d files", len(files))
	}
}

// drawUI draws the heads-up display over the 3D view
func (app *App) drawUI() {
	const (
		fontSize   = int32(16)
		smallFont  = int32(14)
		lineHeight = int32(20)
	)
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())
	accent := rl.NewColor(255, 210, 80, 255)
	muted := rl.NewColor(170, 170, 170, 255)

	// Loading indicator
	if busy, since := app.FileWatch.loader.Busy(); busy {
		elapsed := time.Since(since).Seconds()
		spinnerChars := []string{"|", "/", "-", "\\"}
		spinnerIdx := int(elapsed*10) % len(spinnerChars)
		loadingText := fmt.Sprintf("%s Loading... (%.1fs)", spinnerChars[spinnerIdx], elapsed)

		boxWidth := int32(250)
		boxX := screenWidth - boxWidth - 20
		rl.DrawRectangle(boxX, 20, boxWidth, 40, rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(boxX, 20, boxWidth, 40, accent)
		textWidth := rl.MeasureText(loadingText, fontSize)
		rl.DrawText(loadingText, boxX+(boxWidth-textWidth)/2, 32, fontSize, accent)
	}

	if app.Session.Mesh() == nil {
		hint := "Drop an .obj file onto the window"
		width := rl.MeasureText(hint, 20)
		rl.DrawText(hint, (screenWidth-width)/2, screenHeight/2-10, 20, muted)
	} else {
		y := int32(10)
		name := app.Model.name
		if name == "" {
			name = filepath.Base(app.Model.source)
		}
		rl.DrawText(fmt.Sprintf("Model: %s", name), 10, y, fontSize, accent)
		y += lineHeight

		stats := app.Model.stats
		rl.DrawText(fmt.Sprintf("  Vertices: %d", stats.Vertices), 10, y, smallFont, rl.White)
		y += lineHeight
		rl.DrawText(fmt.Sprintf("  Faces: %d", stats.Faces), 10, y, smallFont, rl.White)
		y += lineHeight
		rl.DrawText(fmt.Sprintf("  Triangles: %d", stats.Triangles), 10, y, smallFont, rl.White)
		y += lineHeight
		if stats.DroppedFaces > 0 {
			rl.DrawText(fmt.Sprintf("  Dropped faces: %d", stats.DroppedFaces), 10, y, smallFont, rl.Orange)
			y += lineHeight
		}
		if result := app.Model.result; result != nil {
			rl.DrawText(fmt.Sprintf("  Surface area: %.3f", result.SurfaceArea), 10, y, smallFont, rl.White)
			y += lineHeight
			rl.DrawText(fmt.Sprintf("  Edges: %d", result.EdgeCount), 10, y, smallFont, rl.White)
			y += lineHeight
		}

		nav := app.Session.Navigation
		y += lineHeight / 2
		rl.DrawText(fmt.Sprintf("Yaw %.0f  Pitch %.0f  Zoom %.2f", nav.Yaw, nav.Pitch, nav.Zoom), 10, y, smallFont, muted)
		y += lineHeight
		rl.DrawText(app.watchLine(), 10, y, smallFont, muted)
	}

	// Status line, bottom-left
	statusY := screenHeight - 30
	if running, message := app.unfoldStatus(); message != "" {
		col := rl.White
		if running {
			col = accent
		}
		rl.DrawText(message, 10, statusY, smallFont, col)
		statusY -= lineHeight
	}
	if app.UI.status != "" && time.Since(app.UI.statusTime) < statusDuration {
		col := rl.Green
		if app.UI.statusErr {
			col = rl.Red
		}
		rl.DrawText(app.UI.status, 10, statusY, smallFont, col)
	}

	// Help, bottom-right
	if app.UI.showHelp {
		y := screenHeight - int32(len(helpLines))*lineHeight - 30
		for _, line := range helpLines {
			width := rl.MeasureText(line, smallFont)
			rl.DrawText(line, screenWidth-width-10, y, smallFont, muted)
			y += lineHeight
		}
	}

	versionText := fmt.Sprintf("objview %s  %d fps", version.GetFullVersion(), rl.GetFPS())
	width := rl.MeasureText(versionText, 10)
	rl.DrawText(versionText, screenWidth-width-10, screenHeight-14, 10, muted)
}
