// Package unfold drives the external paper-model exporter. The
// unfolding itself happens in a Blender script; this package only runs
// it and reads back what it reported.
package unfold

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrToolNotFound means the Blender executable is not installed
	ErrToolNotFound = errors.New("unfold tool not found")
	// ErrInvalidInput means the script rejected the mesh
	ErrInvalidInput = errors.New("mesh cannot be unfolded")
)

const invalidInputPrefix = "ERROR_INVALID_INPUT:"

var savedRegex = regexp.MustCompile(`Saved a (\d+)-page document`)

// Result describes the produced document
type Result struct {
	PDF   string
	Pages int
}

// Exporter runs `<Command> --background --python <Script> -- <obj>`
type Exporter struct {
	Command string
	Script  string
	WorkDir string
}

// NewExporter creates an exporter; a relative script is resolved
// against workDir.
func NewExporter(command, script, workDir string) *Exporter {
	return &Exporter{
		Command: command,
		Script:  script,
		WorkDir: workDir,
	}
}

// PDFPath returns the document the script writes for objPath
func PDFPath(objPath string) string {
	ext := filepath.Ext(objPath)
	if strings.EqualFold(ext, ".obj") {
		objPath = strings.TrimSuffix(objPath, ext)
	}
	return objPath + "_unfold.pdf"
}

// Export unfolds objPath and waits for the tool to finish
func (e *Exporter) Export(ctx context.Context, objPath string) (Result, error) {
	absObj, err := filepath.Abs(objPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve path %s: %w", objPath, err)
	}

	script := e.Script
	if !filepath.IsAbs(script) {
		script = filepath.Join(e.WorkDir, script)
	}

	if _, err := exec.LookPath(e.Command); err != nil {
		return Result{}, fmt.Errorf("%w: %s is not in PATH, install Blender from https://www.blender.org/", ErrToolNotFound, e.Command)
	}

	cmd := exec.CommandContext(ctx, e.Command, "--background", "--python", script, "--", absObj)
	cmd.Dir = e.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	pages, parseErr := parseOutput(stdout.Bytes())
	if parseErr != nil {
		return Result{}, parseErr
	}
	if runErr != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to unfold %s: %v", objPath, runErr))
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		return Result{}, errors.New(errMsg.String())
	}
	if pages < 0 {
		return Result{}, fmt.Errorf("failed to unfold %s: no document reported", objPath)
	}

	return Result{PDF: PDFPath(absObj), Pages: pages}, nil
}

// parseOutput returns the reported page count, -1 if there was none,
// or ErrInvalidInput with the script's reason
func parseOutput(output []byte) (int, error) {
	pages := -1
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if reason, ok := strings.CutPrefix(line, invalidInputPrefix); ok {
			return -1, fmt.Errorf("%w: %s", ErrInvalidInput, strings.TrimSpace(reason))
		}
		if matches := savedRegex.FindStringSubmatch(line); len(matches) > 1 {
			n, err := strconv.Atoi(matches[1])
			if err != nil {
				return -1, fmt.Errorf("invalid page count %q: %w", matches[1], err)
			}
			pages = n
		}
	}
	return pages, nil
}
