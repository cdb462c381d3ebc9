package viewer

import (
	"image/color"
	"iter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/objview/pkg/geometry"
)

// Mode selects how DrawTriangles rasterizes polygons
type Mode int

const (
	Filled Mode = iota
	Wireframe
)

func (m Mode) String() string {
	switch m {
	case Filled:
		return "filled"
	case Wireframe:
		return "wireframe"
	default:
		return "unknown"
	}
}

// Frame carries the transforms for one redraw
type Frame struct {
	Projection mgl64.Mat4
	View       mgl64.Mat4
}

// Surface is a render target. Implementations keep depth testing on
// and face culling off for the whole frame.
type Surface interface {
	// Clear resets color and depth
	Clear(background color.RGBA)
	// Begin loads the projection and view transforms
	Begin(frame Frame)
	DrawLine(from, to geometry.Vector3, c color.RGBA)
	// DrawTriangles draws the stream either solid or as edges of
	// lineWidth. The mode only applies to this call.
	DrawTriangles(triangles iter.Seq[geometry.Triangle], mode Mode, c color.RGBA, lineWidth float32)
	End()
}
