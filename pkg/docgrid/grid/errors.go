package grid

import (
	"errors"
	"fmt"
)

// ErrNoCellAtColumn indicates a queried grid column falls strictly inside
// another cell's span, so no cell starts there.
var ErrNoCellAtColumn = errors.New("no cell starts at grid column")

// ErrColumnOutOfRange indicates a queried grid column exceeds the row's total
// span width.
var ErrColumnOutOfRange = errors.New("grid column out of range")

// ErrNoRowAbove indicates a lookup above the top-most row.
var ErrNoRowAbove = errors.New("no row above top-most row")

// ErrRowOutOfRange indicates a queried row index is outside the table.
var ErrRowOutOfRange = errors.New("row index out of range")

// InvalidSpanError indicates a requested merge region is not a true rectangle
// given the current cell geometry. The table is left unmodified.
type InvalidSpanError struct {
	Reason string
}

func (e *InvalidSpanError) Error() string {
	return "requested span not rectangular: " + e.Reason
}

// IntegrityError indicates the table tree violates a grid invariant, such as
// a continuation marker with no aligned cell above it. It is a
// data-integrity fault, not a usage error.
type IntegrityError struct {
	Row int
	Col int
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("malformed grid at row %d, column %d: %v", e.Row, e.Col, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
