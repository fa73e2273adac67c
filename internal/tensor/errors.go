package tensor

import "fmt"

// ShapeError reports an operation invoked with mismatched or otherwise
// incompatible tensor shapes. It is returned immediately from the call site;
// shape mismatches are programmer errors and are never retried.
type ShapeError struct {
	Op   string // Operation that detected the mismatch (e.g. "MatMul")
	Want string // Description of the expected shape(s)
	Got  string // Description of the shape(s) actually supplied
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

// NewShapeError builds a ShapeError for the given operation.
// Want and got accept anything with a useful %v representation
// (typically Shape values).
func NewShapeError(op string, want, got any) *ShapeError {
	return &ShapeError{
		Op:   op,
		Want: fmt.Sprintf("%v", want),
		Got:  fmt.Sprintf("%v", got),
	}
}
