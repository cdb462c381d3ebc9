package viewer

import (
	"github.com/philipparndt/objview/pkg/geometry"
	"github.com/philipparndt/objview/pkg/obj"
)

// Renderer draws a mesh with the two-pass shaded+outlined look
type Renderer struct {
	Style Style
}

// NewRenderer creates a renderer with the given style
func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style}
}

// RenderFrame draws one frame: axes first, then the mesh filled and
// again as black edges from the same triangle stream.
func (r *Renderer) RenderFrame(surface Surface, mesh *obj.Mesh, nav *Navigation, proj Projection) {
	surface.Clear(r.Style.Background)
	surface.Begin(Frame{
		Projection: proj.Matrix(),
		View:       nav.ViewMatrix(),
	})
	defer surface.End()

	r.drawAxes(surface)

	if mesh.IsEmpty() {
		return
	}

	surface.DrawTriangles(mesh.Triangles(), Filled, r.Style.Fill, 1)
	surface.DrawTriangles(mesh.Triangles(), Wireframe, r.Style.Outline, r.Style.OutlineWidth)
}

func (r *Renderer) drawAxes(surface Surface) {
	length := r.Style.AxisLength
	origin := geometry.Vector3{}
	axes := [3]geometry.Vector3{
		geometry.NewVector3(length, 0, 0),
		geometry.NewVector3(0, length, 0),
		geometry.NewVector3(0, 0, length),
	}
	for i, axis := range axes {
		surface.DrawLine(origin, axis, r.Style.Axes[i])
	}
}
