package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/objview/pkg/geometry"
	"github.com/philipparndt/objview/pkg/obj"
)

// unitSquare is a 1x1 quad in the XY plane plus one out-of-range face
func unitSquare() *obj.Mesh {
	mesh := obj.NewMesh("square")
	mesh.AddVertex(geometry.NewVector3(0, 0, 0))
	mesh.AddVertex(geometry.NewVector3(1, 0, 0))
	mesh.AddVertex(geometry.NewVector3(1, 1, 0))
	mesh.AddVertex(geometry.NewVector3(0, 1, 0))
	mesh.AddFace(obj.Face{0, 1, 2, 3})
	mesh.AddFace(obj.Face{0, 1, 9})
	mesh.AddFace(obj.Face{0, 1})
	return mesh
}

func TestAnalyzeMesh(t *testing.T) {
	result := AnalyzeMesh(unitSquare())

	if result.VertexCount != 4 || result.FaceCount != 3 || result.TriangleCount != 2 {
		t.Errorf("unexpected counts: %+v", result)
	}
	if result.DroppedFaces != 1 || result.ShortFaces != 1 {
		t.Errorf("expected 1 dropped and 1 short face, got %d and %d", result.DroppedFaces, result.ShortFaces)
	}
	if math.Abs(result.SurfaceArea-1) > 1e-9 {
		t.Errorf("expected area 1, got %v", result.SurfaceArea)
	}

	// four sides plus the fan diagonal 0-2
	if result.EdgeCount != 5 {
		t.Errorf("expected 5 unique edges, got %d", result.EdgeCount)
	}
	if math.Abs(result.MinEdgeLength-1) > 1e-9 {
		t.Errorf("expected min edge 1, got %v", result.MinEdgeLength)
	}
	if math.Abs(result.MaxEdgeLength-math.Sqrt2) > 1e-9 {
		t.Errorf("expected max edge sqrt(2), got %v", result.MaxEdgeLength)
	}
	expectedAvg := (4 + math.Sqrt2) / 5
	if math.Abs(result.AvgEdgeLength-expectedAvg) > 1e-9 {
		t.Errorf("expected avg edge %v, got %v", expectedAvg, result.AvgEdgeLength)
	}

	expectedSize := geometry.NewVector3(1, 1, 0)
	if !result.Dimensions.ApproxEqual(expectedSize, 1e-9) {
		t.Errorf("expected dimensions %v, got %v", expectedSize, result.Dimensions)
	}
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	for _, mesh := range []*obj.Mesh{nil, obj.NewMesh("")} {
		result := AnalyzeMesh(mesh)
		if result.EdgeCount != 0 || result.MinEdgeLength != 0 || result.AvgEdgeLength != 0 {
			t.Errorf("empty mesh should have no edges, got %+v", result)
		}
	}
}

func TestFindEdges(t *testing.T) {
	result := AnalyzeMesh(unitSquare())

	longest := FindLongestEdges(result, 1)
	if len(longest) != 1 || longest[0].A != 0 || longest[0].B != 2 {
		t.Errorf("expected diagonal 0-2, got %+v", longest)
	}

	shortest := FindShortestEdges(result, 10)
	if len(shortest) != 5 || shortest[0].Length > shortest[4].Length {
		t.Errorf("unexpected shortest edges %+v", shortest)
	}

	if n := len(FindShortestEdges(result, -1)); n != 0 {
		t.Errorf("negative count should give no edges, got %d", n)
	}

	inRange := FindEdgesByLength(result, 1.1, 2)
	if len(inRange) != 1 {
		t.Errorf("expected one edge between 1.1 and 2, got %d", len(inRange))
	}
}

func TestFormat(t *testing.T) {
	if s := FormatVector(geometry.NewVector3(1, -0.5, 0)); s != "(1.000000, -0.500000, 0.000000)" {
		t.Errorf("unexpected vector format %s", s)
	}
	if s := FormatMeasurement(2, ""); s != "2.000000 units" {
		t.Errorf("unexpected measurement format %s", s)
	}
}
