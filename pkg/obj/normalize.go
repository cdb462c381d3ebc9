package obj

import (
	"math"

	"github.com/philipparndt/objview/pkg/geometry"
)

// Normalize recenters the mesh on the origin and scales it so the
// longest side of its bounding box spans exactly 2 units:
//
//	v' = (v - center) / (extent * 0.5)
//
// The default camera distance of the viewer is tuned to this size.
// Empty meshes are left as they are. When every vertex coincides, or
// the extent is too small or too large to remap into finite values,
// ErrDegenerateGeometry is returned and the mesh is not modified.
func Normalize(m *Mesh) error {
	if len(m.Vertices) == 0 {
		return nil
	}

	bbox := m.BoundingBox()
	extent := bbox.MaxExtent()
	if extent == 0 || math.IsInf(extent, 0) {
		return ErrDegenerateGeometry
	}

	center := bbox.Center()
	half := extent * 0.5
	if half == 0 || !center.IsFinite() {
		return ErrDegenerateGeometry
	}

	remapped := make([]geometry.Vector3, len(m.Vertices))
	for i, v := range m.Vertices {
		d := v.Sub(center)
		d.X /= half
		d.Y /= half
		d.Z /= half
		if !d.IsFinite() {
			return ErrDegenerateGeometry
		}
		remapped[i] = d
	}

	copy(m.Vertices, remapped)
	m.invalidate()
	return nil
}
