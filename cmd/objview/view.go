package main

import (
	"github.com/philipparndt/objview/internal/app"
	"github.com/spf13/cobra"
)

var noWatch bool

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a mesh in the GPU window",
	Long:  "Open the raylib window. Files dropped onto the window are loaded in the background; the watched file reloads on change.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	for _, cmd := range []*cobra.Command{rootCmd, viewCmd} {
		cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the file when it changes")
	}
}

func runView(cmd *cobra.Command, args []string) error {
	var file string
	if len(args) > 0 {
		file = args[0]
	}
	if noWatch {
		cfg.Watch.Enabled = false
	}
	cmd.SilenceUsage = true
	return app.Run(file, cfg)
}
