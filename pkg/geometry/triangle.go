package geometry

// FallbackNormal is used for triangles whose edges are collinear
var FallbackNormal = Vector3{X: 0, Y: 0, Z: 1}

// Triangle is one shaded triangle of a fan-triangulated face
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle builds a triangle and computes its flat normal
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: FlatNormal(v1, v2, v3),
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// FlatNormal returns normalize((v1-v0) x (v2-v0)). Degenerate triangles
// get FallbackNormal so shading never sees NaN.
func FlatNormal(v0, v1, v2 Vector3) Vector3 {
	cross := v1.Sub(v0).Cross(v2.Sub(v0))
	length := cross.Length()
	if length == 0 {
		return FallbackNormal
	}
	return cross.Mul(1.0 / length)
}

// Vertices returns the corners in winding order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2.0
}

// EdgeLengths returns |V1V2|, |V2V3| and |V3V1|
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}
