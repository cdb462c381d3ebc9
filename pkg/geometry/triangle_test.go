package geometry

import (
	"math"
	"testing"
)

func TestFlatNormalRightAngle(t *testing.T) {
	normal := FlatNormal(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	expected := NewVector3(0, 0, 1)
	if !normal.ApproxEqual(expected, 1e-12) {
		t.Errorf("FlatNormal failed: expected %v, got %v", expected, normal)
	}
	if math.Abs(normal.Length()-1) > 1e-12 {
		t.Errorf("FlatNormal failed: expected unit length, got %v", normal.Length())
	}
}

func TestFlatNormalFollowsWinding(t *testing.T) {
	normal := FlatNormal(
		NewVector3(0, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(1, 0, 0),
	)

	expected := NewVector3(0, 0, -1)
	if !normal.ApproxEqual(expected, 1e-12) {
		t.Errorf("FlatNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestFlatNormalScaledTriangleIsUnit(t *testing.T) {
	normal := FlatNormal(
		NewVector3(0, 0, 0),
		NewVector3(0, 250, 0),
		NewVector3(0, 0, 40),
	)

	expected := NewVector3(1, 0, 0)
	if !normal.ApproxEqual(expected, 1e-12) {
		t.Errorf("FlatNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestFlatNormalDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 Vector3
	}{
		{"collinear", NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(2, 0, 0)},
		{"coincident", NewVector3(1, 1, 1), NewVector3(1, 1, 1), NewVector3(1, 1, 1)},
		{"two equal", NewVector3(0, 0, 0), NewVector3(0, 0, 0), NewVector3(0, 5, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			normal := FlatNormal(tc.v0, tc.v1, tc.v2)
			if normal != FallbackNormal {
				t.Errorf("expected fallback normal %v, got %v", FallbackNormal, normal)
			}
			if !normal.IsFinite() {
				t.Errorf("normal is not finite: %v", normal)
			}
		})
	}
}

func TestNewTriangleComputesNormal(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	if tri.Normal != NewVector3(0, 0, 1) {
		t.Errorf("Normal failed: expected (0,0,1), got %v", tri.Normal)
	}
}

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	if math.Abs(area-6.0) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", 6.0, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()
	expected := [3]float64{3, 5, 4}
	for i := range expected {
		if math.Abs(lengths[i]-expected[i]) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)
	if !center.ApproxEqual(expected, 1e-12) {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
