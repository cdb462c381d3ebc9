package obj

import (
	"iter"

	"github.com/philipparndt/objview/pkg/geometry"
)

// FanTriangles lazily decomposes a face into the triangles
// (face[0], face[i], face[i+1]) for i in [1, len(face)-2].
// Faces with fewer than three indices, or with any index outside
// vertices, yield nothing. Concave or non-planar faces are only
// approximated by the fan.
func FanTriangles(face Face, vertices []geometry.Vector3) iter.Seq[geometry.Triangle] {
	return func(yield func(geometry.Triangle) bool) {
		if len(face) < 3 || !faceInRange(face, len(vertices)) {
			return
		}
		anchor := vertices[face[0]]
		for i := 1; i < len(face)-1; i++ {
			if !yield(geometry.NewTriangle(anchor, vertices[face[i]], vertices[face[i+1]])) {
				return
			}
		}
	}
}

// FanIndices returns the index triples of the fan decomposition
func FanIndices(face Face) [][3]int {
	if len(face) < 3 {
		return nil
	}
	out := make([][3]int, 0, len(face)-2)
	for i := 1; i < len(face)-1; i++ {
		out = append(out, [3]int{face[0], face[i], face[i+1]})
	}
	return out
}

func faceInRange(face Face, vertexCount int) bool {
	for _, idx := range face {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}
