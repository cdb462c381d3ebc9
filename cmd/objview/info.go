package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/philipparndt/objview/pkg/analysis"
	"github.com/philipparndt/objview/pkg/obj"
	"github.com/spf13/cobra"
)

var infoRaw bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an OBJ file",
	Long:  "Show counts, dimensions, surface area and edge statistics. Values are for the normalized mesh unless --raw is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoRaw, "raw", false, "Measure the file coordinates instead of the normalized mesh")
}

// loadForAnalysis parses the file and normalizes it unless raw is set
func loadForAnalysis(filename string, raw bool) (*obj.Mesh, error) {
	if raw {
		return obj.Parse(filename)
	}
	return obj.Load(filename)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	mesh, err := loadForAnalysis(filename, infoRaw)
	if err != nil {
		return fmt.Errorf("failed to load OBJ file: %w", err)
	}

	result := analysis.AnalyzeMesh(mesh)
	space := "normalized"
	if infoRaw {
		space = "file coordinates"
	}

	header := titleStyle.Render("OBJ File Information")
	fileRows := [][2]string{row("File", "%s", filename)}
	if mesh.Name != "" {
		fileRows = append([][2]string{row("Name", "%s", mesh.Name)}, fileRows...)
	}

	statRows := [][2]string{
		row("Vertices", "%d", result.VertexCount),
		row("Faces", "%d", result.FaceCount),
		row("Triangles", "%d", result.TriangleCount),
		row("Edges", "%d", result.EdgeCount),
		row("Surface Area", "%.6f square units", result.SurfaceArea),
	}

	boxRows := [][2]string{
		row("Min", "%s", analysis.FormatVector(result.BoundingBox.Min)),
		row("Max", "%s", analysis.FormatVector(result.BoundingBox.Max)),
		row("Center", "%s", analysis.FormatVector(result.BoundingBox.Center())),
		row("Width (X)", "%s", analysis.FormatMeasurement(result.Dimensions.X, "")),
		row("Height (Y)", "%s", analysis.FormatMeasurement(result.Dimensions.Y, "")),
		row("Depth (Z)", "%s", analysis.FormatMeasurement(result.Dimensions.Z, "")),
		row("Diagonal", "%s", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), "")),
	}

	edgeRows := [][2]string{
		row("Minimum", "%s", analysis.FormatMeasurement(result.MinEdgeLength, "")),
		row("Maximum", "%s", analysis.FormatMeasurement(result.MaxEdgeLength, "")),
		row("Average", "%s", analysis.FormatMeasurement(result.AvgEdgeLength, "")),
	}

	parts := []string{
		header,
		section("File", fileRows),
		section("Model Statistics", statRows),
		section(fmt.Sprintf("Bounding Box (%s)", space), boxRows),
		section("Edge Lengths", edgeRows),
	}
	if result.DroppedFaces > 0 || result.ShortFaces > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf(
			"%d face(s) reference missing vertices and %d have fewer than 3 vertices; they are not drawn",
			result.DroppedFaces, result.ShortFaces)))
	}

	fmt.Println(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	return nil
}
