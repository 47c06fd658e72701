package boggle

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCell is matched by a *MalformedCellError.
	ErrMalformedCell = errors.New("boggle: malformed cell")
	// ErrNonUniformGrid is matched by a *NonUniformGridError.
	ErrNonUniformGrid = errors.New("boggle: non-uniform grid")
)

// MalformedCellError reports a board cell that does not hold exactly one character.
type MalformedCellError struct {
	Row, Col int
	Value    string
}

func (e *MalformedCellError) Error() string {
	return fmt.Sprintf("boggle: cell (%d, %d) must contain exactly one character, got %q", e.Row, e.Col, e.Value)
}

// Is lets errors.Is match ErrMalformedCell.
func (e *MalformedCellError) Is(target error) bool {
	return target == ErrMalformedCell
}

// NonUniformGridError reports a row whose length differs from the first row.
type NonUniformGridError struct {
	Row       int
	Want, Got int
}

func (e *NonUniformGridError) Error() string {
	return fmt.Sprintf("boggle: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Is lets errors.Is match ErrNonUniformGrid.
func (e *NonUniformGridError) Is(target error) bool {
	return target == ErrNonUniformGrid
}
