package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/objview/pkg/obj"
	"github.com/philipparndt/objview/pkg/unfold"
	"github.com/spf13/cobra"
)

var (
	unfoldBlender string
	unfoldScript  string
)

var unfoldCmd = &cobra.Command{
	Use:   "unfold [file]",
	Short: "Export a mesh as a printable paper model (PDF)",
	Long: `Run Blender in the background with the unfold script and report the produced
document. The PDF is written next to the OBJ file as <name>_unfold.pdf.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnfold,
}

func init() {
	rootCmd.AddCommand(unfoldCmd)

	unfoldCmd.Flags().StringVar(&unfoldBlender, "blender", "", "Blender executable (default from config)")
	unfoldCmd.Flags().StringVar(&unfoldScript, "script", "", "Unfold script (default from config)")
}

func runUnfold(cmd *cobra.Command, args []string) error {
	filename := args[0]

	// fail early on files the viewer could not show either
	if _, err := obj.Load(filename); err != nil {
		return fmt.Errorf("failed to load OBJ file: %w", err)
	}

	blender := cfg.Unfold.Blender
	if unfoldBlender != "" {
		blender = unfoldBlender
	}
	script := cfg.Unfold.Script
	if unfoldScript != "" {
		script = unfoldScript
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Unfold.Timeout)
	defer cancel()

	fmt.Printf("Unfolding %s...\n", filename)
	result, err := unfold.NewExporter(blender, script, workDir).Export(ctx, filename)
	if err != nil {
		if errors.Is(err, unfold.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, warnStyle.Render(err.Error()))
		}
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Saved a %d-page document", result.Pages)))
	fmt.Println(section("Output", [][2]string{row("PDF", "%s", result.PDF)}))
	return nil
}
