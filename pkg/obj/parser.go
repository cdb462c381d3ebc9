package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/objview/pkg/geometry"
)

const maxLineLength = 1 << 20

// Load parses an OBJ file and normalizes it for display.
// On error nothing is returned, so a caller holding a previous mesh
// keeps showing it.
func Load(filename string) (*Mesh, error) {
	mesh, err := Parse(filename)
	if err != nil {
		return nil, err
	}
	if err := Normalize(mesh); err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", filename, err)
	}
	return mesh, nil
}

// Parse reads an OBJ file without normalizing it
func Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w: %w", ErrFileAccess, err)
	}
	defer file.Close()

	mesh, err := Decode(file)
	if err != nil {
		return nil, err
	}
	if mesh.Name == "" {
		mesh.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return mesh, nil
}

// Decode reads position ("v") and face ("f") records from r.
// Every other record kind is skipped. A malformed number in a v or f
// record fails the whole decode with a *ParseError.
func Decode(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	mesh := NewMesh("")

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parsePosition(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Record: "v", Err: err}
			}
			mesh.AddVertex(v)

		case "f":
			face, err := parseFace(fields[1:], len(mesh.Vertices))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Record: "f", Err: err}
			}
			mesh.AddFace(face)

		case "o", "g":
			if mesh.Name == "" && len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w: %w", ErrFileAccess, err)
	}

	return mesh, nil
}

// parsePosition takes the first three coordinates; an optional w is ignored
func parsePosition(tokens []string) (geometry.Vector3, error) {
	if len(tokens) < 3 {
		return geometry.Vector3{}, fmt.Errorf("expected 3 coordinates, got %d", len(tokens))
	}

	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return geometry.Vector3{}, fmt.Errorf("coordinate %q is not finite", tokens[i])
		}
		c[i] = f
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// parseFace keeps the position index of each v/vt/vn token.
// Positive indices are 1-based, negative ones count back from the last
// vertex read so far. Range is not checked here.
func parseFace(tokens []string, vertexCount int) (Face, error) {
	face := make(Face, 0, len(tokens))
	for _, token := range tokens {
		position, _, _ := strings.Cut(token, "/")
		if position == "" {
			return nil, errors.New("missing vertex index in " + strconv.Quote(token))
		}

		idx, err := strconv.Atoi(position)
		if err != nil {
			return nil, err
		}

		if idx < 0 {
			face = append(face, vertexCount+idx)
		} else {
			face = append(face, idx-1)
		}
	}
	return face, nil
}
