package obj

import (
	"iter"
	"sync"

	"github.com/philipparndt/objview/pkg/geometry"
)

// Face is an ordered polygon of zero-based vertex indices
type Face []int

// Mesh is a polygonal mesh as read from an OBJ file.
// Once handed to a renderer a Mesh must not be mutated; a new file
// produces a new Mesh.
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Faces    []Face

	shadeOnce sync.Once
	triangles []geometry.Triangle
	stats     Stats
}

// Stats summarizes what a renderer will draw from a mesh
type Stats struct {
	Vertices     int
	Faces        int
	Triangles    int
	DroppedFaces int // faces referencing a vertex outside the vertex list
	ShortFaces   int // faces with fewer than three indices
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its zero-based index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a face
func (m *Mesh) AddFace(face Face) {
	m.Faces = append(m.Faces, face)
}

// IsEmpty reports whether there is nothing to draw
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Vertices) == 0 || len(m.Faces) == 0
}

// BoundingBox returns the bounds of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundsOf(m.Vertices)
}

// InRange reports whether every index of the face addresses a vertex
func (m *Mesh) InRange(face Face) bool {
	return faceInRange(face, len(m.Vertices))
}

// Triangles returns the fan triangulation of every renderable face
// with flat normals. The stream is computed once per mesh and replayed
// on every call.
func (m *Mesh) Triangles() iter.Seq[geometry.Triangle] {
	m.shade()
	return func(yield func(geometry.Triangle) bool) {
		for _, tri := range m.triangles {
			if !yield(tri) {
				return
			}
		}
	}
}

// Stats returns vertex, face and triangle counts
func (m *Mesh) Stats() Stats {
	m.shade()
	return m.stats
}

func (m *Mesh) shade() {
	m.shadeOnce.Do(func() {
		stats := Stats{Vertices: len(m.Vertices), Faces: len(m.Faces)}
		triangles := make([]geometry.Triangle, 0, len(m.Faces))

		for _, face := range m.Faces {
			switch {
			case len(face) < 3:
				stats.ShortFaces++
				continue
			case !m.InRange(face):
				stats.DroppedFaces++
				continue
			}
			for tri := range FanTriangles(face, m.Vertices) {
				triangles = append(triangles, tri)
			}
		}

		stats.Triangles = len(triangles)
		m.triangles = triangles
		m.stats = stats
	})
}

// invalidate drops cached triangles after the vertices changed
func (m *Mesh) invalidate() {
	m.shadeOnce = sync.Once{}
	m.triangles = nil
	m.stats = Stats{}
}
