package viewer

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestModelViewInput(t *testing.T) {
	test.NewTempApp(t)

	opts := DefaultOptions()
	opts.ScrollUnitsPerNotch = FyneScrollUnitsPerNotch
	session := NewSession(opts)
	session.SetMesh(quadMesh(), "quad.obj")

	view := NewModelView(session)
	w := test.NewTempWindow(t, view)
	w.Resize(fyne.NewSize(400, 400))

	test.Drag(w.Canvas(), fyne.NewPos(100, 100), 20, -10)

	nav := session.Navigation
	if nav.Yaw != 20 || nav.Pitch != -10 {
		t.Errorf("expected yaw 20 pitch -10, got %v %v", nav.Yaw, nav.Pitch)
	}
	if nav.Dragging() {
		t.Error("drag should have ended")
	}

	test.Scroll(w.Canvas(), fyne.NewPos(100, 100), 0, FyneScrollUnitsPerNotch)
	if math.Abs(nav.Zoom-(-2.8)) > 1e-9 {
		t.Errorf("one notch should zoom to -2.8, got %v", nav.Zoom)
	}
}

func TestModelViewDraw(t *testing.T) {
	test.NewTempApp(t)

	session := NewSession(DefaultOptions())
	session.SetMesh(quadMesh(), "quad.obj")
	view := NewModelView(session)

	img := view.draw(64, 48)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("expected 64x48 frame, got %v", img.Bounds())
	}
	if session.Projection.Width != 64 || session.Projection.Height != 48 {
		t.Errorf("projection not resized: %+v", session.Projection)
	}

	// frames are copies, the next draw must not change this one
	before := img.At(2, 2)
	session.Renderer.Style.Background.R++
	view.draw(64, 48)
	if img.At(2, 2) != before {
		t.Error("draw should return an independent image")
	}
}
