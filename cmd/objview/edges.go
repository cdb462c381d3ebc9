package main

import (
	"fmt"

	"github.com/philipparndt/objview/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
	edgesRaw       bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "List the edges the wireframe draws",
	Long:  "Find and measure edges of the triangulated mesh, including longest, shortest, or edges within a specific length range.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
	edgesCmd.Flags().BoolVar(&edgesRaw, "raw", false, "Measure the file coordinates instead of the normalized mesh")
}

func runEdges(cmd *cobra.Command, args []string) error {
	if edgesCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", edgesCount)
	}

	mesh, err := loadForAnalysis(args[0], edgesRaw)
	if err != nil {
		return fmt.Errorf("failed to load OBJ file: %w", err)
	}

	result := analysis.AnalyzeMesh(mesh)

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		edges = edges[:min(len(edges), edgesCount)]
	default:
		edges = result.AllEdges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
		edges = edges[:min(len(edges), edgesCount)]
	}

	fmt.Println(titleStyle.Render(title))
	fmt.Println(section("Summary", [][2]string{
		row("Total edges", "%d", result.EdgeCount),
		row("Min length", "%s", analysis.FormatMeasurement(result.MinEdgeLength, "")),
		row("Max length", "%s", analysis.FormatMeasurement(result.MaxEdgeLength, "")),
		row("Avg length", "%s", analysis.FormatMeasurement(result.AvgEdgeLength, "")),
	}))
	fmt.Println()

	if len(edges) > 0 {
		fmt.Printf("%-6s %-13s %-35s %-35s %-15s\n", "Index", "Vertices", "Start", "End", "Length")
		for i, edge := range edges {
			fmt.Printf("%-6d %-13s %-35s %-35s %.6f\n",
				i+1,
				fmt.Sprintf("%d-%d", edge.A+1, edge.B+1),
				analysis.FormatVector(edge.Start),
				analysis.FormatVector(edge.End),
				edge.Length)
		}
	}
	return nil
}
