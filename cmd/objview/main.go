package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/objview/internal/config"
	"github.com/philipparndt/objview/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "objview",
	Short: "Interactive viewer for Wavefront OBJ meshes",
	Long: `objview loads a Wavefront OBJ mesh, scales it to fit the view and shows it
as light gray faces with black outlines. Drag to rotate, scroll to zoom.

Without a subcommand the file opens in the GPU window (same as "objview view").`,
	Version: version.GetFullVersion(),
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: runView,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the settings file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
