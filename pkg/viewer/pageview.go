package viewer

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Page preview magnification limits and per-notch factors
const (
	MinPageScale = 0.1
	MaxPageScale = 10.0

	pageZoomIn  = 1.1
	pageZoomOut = 0.9
)

// PageZoom is the magnification of a page preview. Each wheel notch
// multiplies it by 1.1 or 0.9 regardless of the delta's size.
type PageZoom struct {
	Scale float64
}

// NewPageZoom returns a zoom showing the page at its natural size
func NewPageZoom() PageZoom {
	return PageZoom{Scale: 1}
}

// Scroll applies one wheel step and reports whether the scale changed
func (z *PageZoom) Scroll(delta float64) bool {
	if delta == 0 {
		return false
	}
	factor := pageZoomOut
	if delta > 0 {
		factor = pageZoomIn
	}
	scale := min(max(z.Scale*factor, MinPageScale), MaxPageScale)
	if scale == z.Scale {
		return false
	}
	z.Scale = scale
	return true
}

// Reset returns to the natural size
func (z *PageZoom) Reset() {
	z.Scale = 1
}

// PageView shows a rendered document page centered on a light
// background. Scrolling zooms the page around the center of the view.
type PageView struct {
	widget.BaseWidget

	zoom        PageZoom
	image       *canvas.Image
	background  *canvas.Rectangle
	placeholder *canvas.Text
}

// NewPageView creates an empty preview that shows placeholder text
// until a page is set
func NewPageView(placeholder string) *PageView {
	v := &PageView{
		zoom:        NewPageZoom(),
		image:       canvas.NewImageFromImage(nil),
		background:  canvas.NewRectangle(color.RGBA{R: 240, G: 240, B: 240, A: 255}),
		placeholder: canvas.NewText(placeholder, color.RGBA{R: 50, G: 50, B: 50, A: 255}),
	}
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.image.Hide()
	v.ExtendBaseWidget(v)
	return v
}

// SetPage replaces the shown page and resets the zoom. A nil image
// brings back the placeholder.
func (v *PageView) SetPage(img image.Image) {
	v.image.Image = img
	v.zoom.Reset()
	if img == nil {
		v.image.Hide()
		v.placeholder.Show()
	} else {
		v.placeholder.Hide()
		v.image.Show()
	}
	v.Refresh()
}

// Scale returns the current magnification
func (v *PageView) Scale() float64 {
	return v.zoom.Scale
}

// Scrolled implements fyne.Scrollable
func (v *PageView) Scrolled(event *fyne.ScrollEvent) {
	if v.zoom.Scroll(float64(event.Scrolled.DY)) {
		v.Refresh()
	}
}

// pageRect returns where the page is drawn inside a view of the given size
func (v *PageView) pageRect(size fyne.Size) (fyne.Position, fyne.Size) {
	if v.image.Image == nil {
		return fyne.Position{}, fyne.Size{}
	}
	bounds := v.image.Image.Bounds()
	scale := float32(v.zoom.Scale)
	pageSize := fyne.NewSize(float32(bounds.Dx())*scale, float32(bounds.Dy())*scale)
	pos := fyne.NewPos((size.Width-pageSize.Width)/2, (size.Height-pageSize.Height)/2)
	return pos, pageSize
}

// CreateRenderer implements fyne.Widget
func (v *PageView) CreateRenderer() fyne.WidgetRenderer {
	return &pageViewRenderer{
		view:    v,
		objects: []fyne.CanvasObject{v.background, v.image, v.placeholder},
	}
}

type pageViewRenderer struct {
	view    *PageView
	objects []fyne.CanvasObject
}

func (r *pageViewRenderer) Layout(size fyne.Size) {
	r.view.background.Resize(size)
	r.view.placeholder.Move(fyne.NewPos(20, 20))

	pos, pageSize := r.view.pageRect(size)
	r.view.image.Move(pos)
	r.view.image.Resize(pageSize)
}

func (r *pageViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *pageViewRenderer) Refresh() {
	r.Layout(r.view.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *pageViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *pageViewRenderer) Destroy() {}
