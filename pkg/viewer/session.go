package viewer

import (
	"sync/atomic"

	"github.com/philipparndt/objview/pkg/obj"
)

// loaded pairs a mesh with the file it came from so both are swapped
// together
type loaded struct {
	mesh   *obj.Mesh
	source string
}

// Session is one viewer: the displayed mesh, the camera and the
// renderer. Input and rendering happen on the UI thread; LoadMesh may
// run on any goroutine and replaces the mesh atomically, so a frame
// sees either the old mesh or the new one in full.
type Session struct {
	current atomic.Pointer[loaded]

	Navigation *Navigation
	Projection Projection
	Renderer   *Renderer
}

// NewSession creates a session without a mesh
func NewSession(opts Options) *Session {
	return &Session{
		Navigation: NewNavigation(opts),
		Projection: NewProjection(opts),
		Renderer:   NewRenderer(opts.Style),
	}
}

// LoadMesh loads and normalizes the file and swaps it in. On error the
// previous mesh stays in place.
func (s *Session) LoadMesh(path string) (obj.Stats, error) {
	mesh, err := obj.Load(path)
	if err != nil {
		return obj.Stats{}, err
	}
	// Stats builds the triangle cache, keeping that work off the render path
	stats := mesh.Stats()
	s.current.Store(&loaded{mesh: mesh, source: path})
	return stats, nil
}

// SetMesh swaps in an already loaded mesh
func (s *Session) SetMesh(mesh *obj.Mesh, source string) {
	if mesh == nil {
		s.current.Store(nil)
		return
	}
	mesh.Stats()
	s.current.Store(&loaded{mesh: mesh, source: source})
}

// Mesh returns the displayed mesh, or nil before the first load
func (s *Session) Mesh() *obj.Mesh {
	if cur := s.current.Load(); cur != nil {
		return cur.mesh
	}
	return nil
}

// Source returns the path of the displayed mesh
func (s *Session) Source() string {
	if cur := s.current.Load(); cur != nil {
		return cur.source
	}
	return ""
}

// RenderFrame draws the current mesh onto the surface
func (s *Session) RenderFrame(surface Surface) {
	s.Renderer.RenderFrame(surface, s.Mesh(), s.Navigation, s.Projection)
}

// Resize updates the projection for a new viewport size
func (s *Session) Resize(width, height int) {
	s.Projection.Resize(width, height)
}

// PointerPress starts a rotation drag
func (s *Session) PointerPress(x, y float64) {
	s.Navigation.Press(x, y)
}

// PointerMove rotates while dragging and reports whether to redraw
func (s *Session) PointerMove(x, y float64) bool {
	return s.Navigation.Move(x, y)
}

// PointerRelease ends the drag
func (s *Session) PointerRelease() {
	s.Navigation.Release()
}

// Scroll zooms and reports whether to redraw
func (s *Session) Scroll(delta float64) bool {
	return s.Navigation.Scroll(delta)
}
