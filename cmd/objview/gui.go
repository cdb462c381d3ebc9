package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/objview/pkg/obj"
	"github.com/philipparndt/objview/pkg/unfold"
	"github.com/philipparndt/objview/pkg/viewer"
	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui [file]",
	Short: "Open a mesh in a desktop window with a file chooser",
	Long: `Open a fyne window that renders the mesh in software next to a preview of its
unfolded paper model. Use the Open button to pick another file and Unfold to export
the PDF and show its first page.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

var guiAutoUnfold bool

func init() {
	rootCmd.AddCommand(guiCmd)

	guiCmd.Flags().BoolVar(&guiAutoUnfold, "unfold", false, "Unfold every model right after it is loaded")
}

type guiApp struct {
	window       fyne.Window
	view         *viewer.ModelView
	pageView     *viewer.PageView
	infoLabel    *widget.Label
	unfoldLabel  *widget.Label
	unfoldButton *widget.Button

	exporter   *unfold.Exporter
	pages      *unfold.PageRenderer
	autoUnfold bool
}

func runGUI(cmd *cobra.Command, args []string) {
	a := fyneapp.New()
	w := a.NewWindow("objview")

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	session := viewer.NewSession(cfg.ViewerOptions(viewer.FyneScrollUnitsPerNotch))
	g := &guiApp{
		window:      w,
		view:        viewer.NewModelView(session),
		pageView:    viewer.NewPageView("Unfolded view appears here"),
		infoLabel:   widget.NewLabel("No model loaded"),
		unfoldLabel: widget.NewLabel(""),
		exporter:    unfold.NewExporter(cfg.Unfold.Blender, cfg.Unfold.Script, workDir),
		pages:       unfold.NewPageRenderer(cfg.Unfold.Rasterizer, cfg.Unfold.PreviewDPI),
		autoUnfold:  guiAutoUnfold,
	}
	g.unfoldLabel.Wrapping = fyne.TextWrapWord

	openButton := widget.NewButton("Open OBJ File", g.showFileDialog)
	resetButton := widget.NewButton("Reset View", func() {
		session.Navigation.Reset()
		g.view.Redraw()
	})
	g.unfoldButton = widget.NewButton("Unfold", g.startUnfold)
	g.unfoldButton.Disable()

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Scroll the page preview to magnify it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		g.infoLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		resetButton,
		g.unfoldButton,
		g.unfoldLabel,
	)
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	views := container.NewHSplit(g.view, g.pageView)
	w.SetContent(container.NewBorder(nil, nil, nil, infoScroll, views))
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	if len(args) > 0 {
		g.loadFile(args[0])
	}

	w.ShowAndRun()
}

func (g *guiApp) showFileDialog() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		g.loadFile(reader.URI().Path())
	}, g.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".obj", ".OBJ"}))
	open.Show()
}

// loadFile loads in the background; the previous mesh stays on screen
// until the new one is ready, and stays if loading fails
func (g *guiApp) loadFile(filename string) {
	g.infoLabel.SetText(fmt.Sprintf("Loading %s...", filepath.Base(filename)))

	go func() {
		stats, err := g.view.Session().LoadMesh(filename)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(fmt.Errorf("failed to load OBJ file: %w", err), g.window)
				g.infoLabel.SetText(g.describe(g.view.Session().Source(), g.currentStats()))
				return
			}
			g.window.SetTitle(fmt.Sprintf("objview - %s", filepath.Base(filename)))
			g.infoLabel.SetText(g.describe(filename, stats))
			g.view.Redraw()
			g.pageView.SetPage(nil)
			g.unfoldLabel.SetText("")
			g.unfoldButton.Enable()
			if g.autoUnfold {
				g.startUnfold()
			}
		})
	}()
}

func (g *guiApp) currentStats() obj.Stats {
	if mesh := g.view.Session().Mesh(); mesh != nil {
		return mesh.Stats()
	}
	return obj.Stats{}
}

func (g *guiApp) describe(source string, stats obj.Stats) string {
	if source == "" {
		return "No model loaded"
	}
	text := fmt.Sprintf("File: %s\nVertices: %d\nFaces: %d\nTriangles: %d",
		filepath.Base(source), stats.Vertices, stats.Faces, stats.Triangles)
	if stats.DroppedFaces > 0 {
		text += fmt.Sprintf("\nDropped faces: %d", stats.DroppedFaces)
	}
	return text
}

// startUnfold exports the displayed model and previews page 1 of the
// document. The button stays disabled while the tools run.
func (g *guiApp) startUnfold() {
	source := g.view.Session().Source()
	if source == "" {
		return
	}

	g.unfoldButton.Disable()
	g.unfoldLabel.SetText(fmt.Sprintf("Unfolding %s...", filepath.Base(source)))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Unfold.Timeout)
		defer cancel()

		result, err := g.exporter.Export(ctx, source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unfold failed: %v\n", err)
			fyne.Do(func() {
				g.unfoldLabel.SetText(fmt.Sprintf("Unfold failed: %v", err))
				g.unfoldButton.Enable()
			})
			return
		}
		fmt.Printf("Saved a %d-page document: %s\n", result.Pages, result.PDF)

		page, err := g.pages.LoadFirstPage(ctx, result.PDF)
		fyne.Do(func() {
			defer g.unfoldButton.Enable()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
				g.unfoldLabel.SetText(fmt.Sprintf("Saved %s (%d pages), preview failed: %v",
					filepath.Base(result.PDF), result.Pages, err))
				return
			}
			g.pageView.SetPage(page)
			g.unfoldLabel.SetText(fmt.Sprintf("Saved %s (%d pages)", filepath.Base(result.PDF), result.Pages))
		})
	}()
}
