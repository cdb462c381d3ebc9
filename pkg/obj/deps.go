package obj

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDependencies returns the absolute path of the OBJ file followed
// by every material library it references through mtllib.
func ResolveDependencies(filename string) ([]string, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", filename, err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w: %w", filename, ErrFileAccess, err)
	}
	defer file.Close()

	dir := filepath.Dir(absPath)
	deps := []string{absPath}
	seen := map[string]bool{absPath: true}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "mtllib" {
			continue
		}
		for _, lib := range fields[1:] {
			path := lib
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, lib)
			}
			path = filepath.Clean(path)
			if !seen[path] {
				seen[path] = true
				deps = append(deps, path)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return deps, nil
}
