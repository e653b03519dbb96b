package nn

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be panicked by graph operations.
var (
	ErrNotScalar = Error{"nn: node does not hold a single value"}
	ErrNilNode   = Error{"nn: node is nil"}
	ErrNoParams  = Error{"nn: no parameters were given"}
)

// ShapeError documents operands whose dimensions are incompatible with the operation they were
// given to. Graph constructors panic with a ShapeError rather than returning it; incompatible
// shapes are a bug in the calling model.
type ShapeError struct {
	// Op is the name of the operation that rejected its operands.
	Op string

	// Shapes holds the "RxC" dimensions of each operand, in order.
	Shapes []string
}

func (err ShapeError) Error() string {
	return fmt.Sprintf("nn: incompatible shapes for %s: %v", err.Op, err.Shapes)
}
