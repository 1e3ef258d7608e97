package lib

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a position falls outside the valid bounds
	// of the operation. Inserts accept [0, Len()], accesses [0, Len()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnderflow is returned when an element is requested from an empty container.
	ErrUnderflow = errors.New("underflow")
)

func outOfRange(position, length int) error {
	return errors.Wrapf(ErrOutOfRange, "position %d for size %d", position, length)
}

func underflow(op string) error {
	return errors.Wrapf(ErrUnderflow, "%s on empty container", op)
}
