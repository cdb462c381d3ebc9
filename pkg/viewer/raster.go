package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/objview/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// lines win against the faces they outline
	lineDepthBias = 2e-4
	// endpoints further out than this many viewports are not drawn
	guardBand = 8
)

// Framebuffer is a software Surface backed by an RGBA image and a
// depth buffer. It needs no GPU and is used for snapshots and the
// fyne widget.
type Framebuffer struct {
	img   *image.RGBA
	depth []float64
	mvp   mgl64.Mat4
}

// NewFramebuffer allocates a framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{mvp: mgl64.Ident4()}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates the buffers when the size changed
func (fb *Framebuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if fb.img != nil && fb.img.Rect.Dx() == width && fb.img.Rect.Dy() == height {
		return
	}
	fb.img = image.NewRGBA(image.Rect(0, 0, width, height))
	fb.depth = make([]float64, width*height)
}

// Image returns the color buffer
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int {
	return fb.img.Rect.Dy()
}

// Clear fills the color buffer and resets depth to infinity
func (fb *Framebuffer) Clear(background color.RGBA) {
	draw.Draw(fb.img, fb.img.Rect, image.NewUniform(background), image.Point{}, draw.Src)
	for i := range fb.depth {
		fb.depth[i] = math.Inf(1)
	}
}

// Begin stores the combined model-view-projection matrix
func (fb *Framebuffer) Begin(frame Frame) {
	fb.mvp = frame.Projection.Mul4(frame.View)
}

// End is a no-op; pixels are written immediately
func (fb *Framebuffer) End() {}

// DrawLine draws a 1 pixel line with depth testing
func (fb *Framebuffer) DrawLine(from, to geometry.Vector3, c color.RGBA) {
	p1, ok1 := fb.project(from)
	p2, ok2 := fb.project(to)
	if !ok1 || !ok2 {
		return
	}
	fb.drawLine(p1, p2, c, 1)
}

// DrawTriangles fills the triangles or draws their edges
func (fb *Framebuffer) DrawTriangles(triangles iter.Seq[geometry.Triangle], mode Mode, c color.RGBA, lineWidth float32) {
	size := max(int(math.Round(float64(lineWidth))), 1)

	for tri := range triangles {
		var p [3]mgl64.Vec3
		visible := true
		for i, v := range tri.Vertices() {
			if p[i], visible = fb.project(v); !visible {
				break
			}
		}
		if !visible {
			continue
		}

		switch mode {
		case Filled:
			fb.fillTriangle(p[0], p[1], p[2], c)
		case Wireframe:
			fb.drawLine(p[0], p[1], c, size)
			fb.drawLine(p[1], p[2], c, size)
			fb.drawLine(p[2], p[0], c, size)
		}
	}
}

// Caption writes a line of text in the bottom-left corner
func (fb *Framebuffer) Caption(text string, c color.RGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(8, fb.Height()-8-face.Descent),
	}
	d.DrawString(text)
}

// project maps a model point to screen x, y and NDC depth. Points
// behind the near plane are rejected instead of clipped.
func (fb *Framebuffer) project(v geometry.Vector3) (mgl64.Vec3, bool) {
	clip := fb.mvp.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	w := clip.W()
	if w <= 1e-9 {
		return mgl64.Vec3{}, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 {
		return mgl64.Vec3{}, false
	}

	width := float64(fb.Width())
	height := float64(fb.Height())
	return mgl64.Vec3{
		(ndc.X() + 1) * 0.5 * width,
		(1 - ndc.Y()) * 0.5 * height,
		ndc.Z(),
	}, true
}

// fillTriangle scanline-fills a screen-space triangle with depth testing
func (fb *Framebuffer) fillTriangle(a, b, c mgl64.Vec3, col color.RGBA) {
	bounds := fb.img.Rect
	width := bounds.Dx()

	minY := math.Max(0, math.Ceil(math.Min(a.Y(), math.Min(b.Y(), c.Y()))))
	maxY := math.Min(float64(bounds.Max.Y-1), math.Floor(math.Max(a.Y(), math.Max(b.Y(), c.Y()))))

	edges := [3][2]mgl64.Vec3{{a, b}, {b, c}, {c, a}}

	for y := int(minY); y <= int(maxY); y++ {
		fy := float64(y)

		xStart, xEnd := math.Inf(1), math.Inf(-1)
		var zStart, zEnd float64
		for _, e := range edges {
			p, q := e[0], e[1]
			if p.Y() == q.Y() || fy < math.Min(p.Y(), q.Y()) || fy > math.Max(p.Y(), q.Y()) {
				continue
			}
			t := (fy - p.Y()) / (q.Y() - p.Y())
			x := p.X() + t*(q.X()-p.X())
			z := p.Z() + t*(q.Z()-p.Z())
			if x < xStart {
				xStart, zStart = x, z
			}
			if x > xEnd {
				xEnd, zEnd = x, z
			}
		}
		if xStart > xEnd {
			continue
		}

		x0 := int(math.Max(0, math.Ceil(xStart)))
		x1 := int(math.Min(float64(bounds.Max.X-1), math.Floor(xEnd)))
		for x := x0; x <= x1; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*width + x
			if z < fb.depth[idx] {
				fb.depth[idx] = z
				fb.img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line with Bresenham's algorithm, interpolating depth
// along the major axis. size is the side of the square brush.
func (fb *Framebuffer) drawLine(p1, p2 mgl64.Vec3, col color.RGBA, size int) {
	w := float64(fb.Width())
	h := float64(fb.Height())
	for _, p := range [2]mgl64.Vec3{p1, p2} {
		if math.Abs(p.X()) > guardBand*w+1 || math.Abs(p.Y()) > guardBand*h+1 {
			return
		}
	}

	x1, y1 := int(math.Round(p1.X())), int(math.Round(p1.Y()))
	x2, y2 := int(math.Round(p2.X())), int(math.Round(p2.Y()))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	err := dx - dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		fb.plot(x1, y1, p1.Z()+t*(p2.Z()-p1.Z()), col, size)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (fb *Framebuffer) plot(x, y int, z float64, col color.RGBA, size int) {
	bounds := fb.img.Rect
	width := bounds.Dx()
	offset := (size - 1) / 2

	for py := y - offset; py < y-offset+size; py++ {
		for px := x - offset; px < x-offset+size; px++ {
			if px < 0 || px >= bounds.Max.X || py < 0 || py >= bounds.Max.Y {
				continue
			}
			idx := py*width + px
			if z <= fb.depth[idx]+lineDepthBias {
				fb.depth[idx] = math.Min(fb.depth[idx], z)
				fb.img.SetRGBA(px, py, col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
