package unfold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrRasterizerNotFound means the PDF rasterizer is not installed
var ErrRasterizerNotFound = errors.New("pdf rasterizer not found")

// PageRenderer turns the first page of a document into a PNG with
// poppler's pdftoppm
type PageRenderer struct {
	Command string
	DPI     int
}

// NewPageRenderer creates a renderer for the given pdftoppm executable
func NewPageRenderer(command string, dpi int) *PageRenderer {
	return &PageRenderer{Command: command, DPI: dpi}
}

// PagePNGPath returns where the first page of pdfPath is written in dir
func PagePNGPath(dir, pdfPath string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(dir, base+"_page1.png")
}

// RenderFirstPage rasterizes page 1 of pdfPath into dir and returns the
// PNG path
func (r *PageRenderer) RenderFirstPage(ctx context.Context, pdfPath, dir string) (string, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", pdfPath, err)
	}
	if _, err := exec.LookPath(r.Command); err != nil {
		return "", fmt.Errorf("%w: %s is not in PATH, install poppler-utils", ErrRasterizerNotFound, r.Command)
	}

	out := PagePNGPath(dir, pdfPath)
	cmd := exec.CommandContext(ctx, r.Command,
		"-r", strconv.Itoa(r.DPI),
		"-png", "-f", "1", "-l", "1", "-singlefile",
		pdfPath, strings.TrimSuffix(out, ".png"),
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to render %s: %v", pdfPath, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		return "", errors.New(errMsg.String())
	}

	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("failed to render %s: no page written", pdfPath)
	}
	return out, nil
}

// LoadFirstPage rasterizes page 1 of pdfPath and decodes it
func (r *PageRenderer) LoadFirstPage(ctx context.Context, pdfPath string) (image.Image, error) {
	dir, err := os.MkdirTemp("", "objview-page-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := r.RenderFirstPage(ctx, pdfPath, dir)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page image: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page image: %w", err)
	}
	return img, nil
}
