package obj

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess is returned when the source file cannot be opened or read
	ErrFileAccess = errors.New("mesh file not accessible")

	// ErrDegenerateGeometry is returned by Normalize when all vertices
	// coincide and there is no extent to scale by
	ErrDegenerateGeometry = errors.New("degenerate geometry: bounding box has zero extent")
)

// ParseError reports a malformed position or face record
type ParseError struct {
	Line   int    // 1-based line number in the source
	Record string // record prefix, "v" or "f"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %q record: %v", e.Line, e.Record, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
