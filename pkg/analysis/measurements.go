package analysis

import (
	"fmt"
	"slices"

	"github.com/philipparndt/objview/pkg/geometry"
	"github.com/philipparndt/objview/pkg/obj"
)

// EdgeInfo is one unique edge of the triangulated mesh
type EdgeInfo struct {
	A, B   int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	FaceID int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Volume      float64
	SurfaceArea float64

	VertexCount   int
	FaceCount     int
	TriangleCount int
	DroppedFaces  int
	ShortFaces    int

	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// AnalyzeMesh measures a mesh. Edges are those of the fan triangulation,
// the same set the wireframe draws, each counted once however many
// triangles share it. Faces that are dropped at render time are skipped.
func AnalyzeMesh(mesh *obj.Mesh) *MeasurementResult {
	result := &MeasurementResult{AllEdges: make([]EdgeInfo, 0)}
	if mesh == nil {
		return result
	}

	stats := mesh.Stats()
	result.VertexCount = stats.Vertices
	result.FaceCount = stats.Faces
	result.TriangleCount = stats.Triangles
	result.DroppedFaces = stats.DroppedFaces
	result.ShortFaces = stats.ShortFaces

	result.BoundingBox = mesh.BoundingBox()
	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	for tri := range mesh.Triangles() {
		result.SurfaceArea += tri.Area()
	}

	seen := make(map[edgeKey]bool)
	totalLength := 0.0
	for faceID, face := range mesh.Faces {
		if !mesh.InRange(face) {
			continue
		}
		for _, idx := range obj.FanIndices(face) {
			for i := range 3 {
				key := newEdgeKey(idx[i], idx[(i+1)%3])
				if seen[key] {
					continue
				}
				seen[key] = true

				start, end := mesh.Vertices[key.a], mesh.Vertices[key.b]
				edge := EdgeInfo{
					A:      key.a,
					B:      key.b,
					Start:  start,
					End:    end,
					Length: start.Distance(end),
					FaceID: faceID,
				}
				result.AllEdges = append(result.AllEdges, edge)
				totalLength += edge.Length

				if len(result.AllEdges) == 1 || edge.Length < result.MinEdgeLength {
					result.MinEdgeLength = edge.Length
				}
				result.MaxEdgeLength = max(result.MaxEdgeLength, edge.Length)
			}
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) int {
		return compareLength(b, a)
	})
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, compareLength)
}

func compareLength(a, b EdgeInfo) int {
	switch {
	case a.Length < b.Length:
		return -1
	case a.Length > b.Length:
		return 1
	}
	return 0
}

func sortedEdges(result *MeasurementResult, count int, cmp func(a, b EdgeInfo) int) []EdgeInfo {
	edges := slices.Clone(result.AllEdges)
	slices.SortStableFunc(edges, cmp)
	return edges[:min(max(count, 0), len(edges))]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
