package viewer

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// FyneScrollUnitsPerNotch is the scroll delta fyne reports for one
// mouse wheel notch on desktop drivers
const FyneScrollUnitsPerNotch = 10

// ModelView is a fyne widget that shows a Session. Frames are drawn in
// software into a canvas.Raster; dragging rotates, scrolling zooms.
type ModelView struct {
	widget.BaseWidget

	session *Session
	raster  *canvas.Raster

	mu sync.Mutex
	fb *Framebuffer
}

// NewModelView creates a widget for the session
func NewModelView(session *Session) *ModelView {
	v := &ModelView{
		session: session,
		fb:      NewFramebuffer(1, 1),
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// Session returns the session shown by the widget
func (v *ModelView) Session() *Session {
	return v.session
}

// Redraw schedules a new frame, e.g. after a mesh was loaded
func (v *ModelView) Redraw() {
	v.raster.Refresh()
}

// draw renders a frame at the raster's pixel size
func (v *ModelView) draw(width, height int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.session.Resize(width, height)
	v.fb.Resize(width, height)
	v.session.RenderFrame(v.fb)

	// the raster keeps the image, hand out a copy
	frame := image.NewRGBA(v.fb.Image().Rect)
	copy(frame.Pix, v.fb.Image().Pix)
	return frame
}

// Dragged implements fyne.Draggable. fyne has no separate press event,
// so the first drag event anchors at the position it started from.
func (v *ModelView) Dragged(event *fyne.DragEvent) {
	scale := v.pixelScale()
	if !v.session.Navigation.Dragging() {
		v.session.PointerPress(
			float64(event.Position.X-event.Dragged.DX)*scale,
			float64(event.Position.Y-event.Dragged.DY)*scale,
		)
	}
	if v.session.PointerMove(float64(event.Position.X)*scale, float64(event.Position.Y)*scale) {
		v.Redraw()
	}
}

// DragEnd implements fyne.Draggable
func (v *ModelView) DragEnd() {
	v.session.PointerRelease()
}

// Scrolled implements fyne.Scrollable
func (v *ModelView) Scrolled(event *fyne.ScrollEvent) {
	if v.session.Scroll(float64(event.Scrolled.DY)) {
		v.Redraw()
	}
}

// pixelScale converts fyne's device independent units to raster pixels
// so drag deltas match the other viewers.
func (v *ModelView) pixelScale() float64 {
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil {
		return float64(c.Scale())
	}
	return 1
}

// CreateRenderer implements fyne.Widget
func (v *ModelView) CreateRenderer() fyne.WidgetRenderer {
	return &modelViewRenderer{view: v, objects: []fyne.CanvasObject{v.raster}}
}

type modelViewRenderer struct {
	view    *ModelView
	objects []fyne.CanvasObject
}

func (r *modelViewRenderer) Layout(size fyne.Size) {
	r.view.raster.Resize(size)
}

func (r *modelViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *modelViewRenderer) Refresh() {
	r.view.raster.Refresh()
}

func (r *modelViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *modelViewRenderer) Destroy() {}
