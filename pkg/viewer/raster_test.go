package viewer

import (
	"image/color"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/objview/pkg/geometry"
	"github.com/philipparndt/objview/pkg/obj"
)

func renderQuad(t *testing.T, size int) (*Framebuffer, Style) {
	t.Helper()
	opts := DefaultOptions()
	session := NewSession(opts)
	session.SetMesh(quadMesh(), "quad.obj")
	session.Resize(size, size)

	fb := NewFramebuffer(size, size)
	session.RenderFrame(fb)
	return fb, opts.Style
}

func TestFramebufferShadedAndOutlined(t *testing.T) {
	fb, style := renderQuad(t, 64)
	img := fb.Image()

	if got := img.RGBAAt(2, 2); got != style.Background {
		t.Errorf("corner should be background %v, got %v", style.Background, got)
	}
	if got := img.RGBAAt(20, 20); got != style.Fill {
		t.Errorf("inside of the quad should be fill %v, got %v", style.Fill, got)
	}
	if got := img.RGBAAt(40, 6); got != style.Outline {
		t.Errorf("top edge should be outline %v, got %v", style.Outline, got)
	}
}

func TestFramebufferDepthTest(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	fb.Clear(color.RGBA{A: 255})
	fb.Begin(Frame{
		Projection: mgl64.Perspective(mgl64.DegToRad(45), 1, 0.1, 100),
		View:       mgl64.Translate3D(0, 0, -3),
	})

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	front := geometry.NewTriangle(
		geometry.NewVector3(-1, -1, 0.5),
		geometry.NewVector3(1, -1, 0.5),
		geometry.NewVector3(0, 1, 0.5),
	)
	back := geometry.NewTriangle(
		geometry.NewVector3(-1, -1, -0.5),
		geometry.NewVector3(1, -1, -0.5),
		geometry.NewVector3(0, 1, -0.5),
	)

	fb.DrawTriangles(slices.Values([]geometry.Triangle{front}), Filled, red, 1)
	fb.DrawTriangles(slices.Values([]geometry.Triangle{back}), Filled, blue, 1)

	if got := fb.Image().RGBAAt(16, 18); got != red {
		t.Errorf("front triangle should hide the back one, got %v", got)
	}
}

func TestFramebufferRejectsPointsBehindCamera(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	bg := color.RGBA{A: 255}
	fb.Clear(bg)
	fb.Begin(Frame{
		Projection: mgl64.Perspective(mgl64.DegToRad(45), 1, 0.1, 100),
		View:       mgl64.Ident4(),
	})

	behind := geometry.NewTriangle(
		geometry.NewVector3(-1, -1, 2),
		geometry.NewVector3(1, -1, 2),
		geometry.NewVector3(0, 1, 2),
	)
	fb.DrawTriangles(slices.Values([]geometry.Triangle{behind}), Filled, color.RGBA{R: 255, A: 255}, 1)
	fb.DrawLine(geometry.NewVector3(0, 0, 1), geometry.NewVector3(0, 0, 5), color.RGBA{G: 255, A: 255})

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := fb.Image().RGBAAt(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) should be untouched, got %v", x, y, got)
			}
		}
	}
}

func TestFramebufferZeroSize(t *testing.T) {
	session := NewSession(DefaultOptions())
	session.SetMesh(quadMesh(), "")
	session.Resize(0, 0)

	fb := NewFramebuffer(0, 0)
	session.RenderFrame(fb)

	if fb.Width() != 0 || fb.Height() != 0 {
		t.Errorf("expected empty framebuffer, got %dx%d", fb.Width(), fb.Height())
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	img := fb.Image()

	fb.Resize(10, 10)
	if fb.Image() != img {
		t.Error("same size should keep the buffer")
	}

	fb.Resize(20, 5)
	if fb.Width() != 20 || fb.Height() != 5 {
		t.Errorf("expected 20x5, got %dx%d", fb.Width(), fb.Height())
	}
}

func TestFramebufferCaption(t *testing.T) {
	fb := NewFramebuffer(200, 40)
	bg := color.RGBA{A: 255}
	fb.Clear(bg)
	fb.Caption("12 faces", color.RGBA{R: 255, G: 255, B: 255, A: 255})

	changed := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			if fb.Image().RGBAAt(x, y) != bg {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("caption did not draw any pixel")
	}
}

func TestFramebufferDegenerateMesh(t *testing.T) {
	mesh := obj.NewMesh("")
	mesh.AddVertex(geometry.NewVector3(-1, 0, 0))
	mesh.AddVertex(geometry.NewVector3(0, 0, 0))
	mesh.AddVertex(geometry.NewVector3(1, 0, 0))
	mesh.AddFace(obj.Face{0, 1, 2})

	session := NewSession(DefaultOptions())
	session.SetMesh(mesh, "")
	session.Resize(32, 32)
	session.RenderFrame(NewFramebuffer(32, 32))
}
