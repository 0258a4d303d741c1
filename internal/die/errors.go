package die

import "errors"

var (
	// ErrInvalidInput is returned when a face list cannot form a die
	// (empty, NaN values) or a face string cannot be parsed.
	ErrInvalidInput = errors.New("invalid face input")

	// ErrDuplicateFace is returned when a face value appears more than once.
	ErrDuplicateFace = errors.New("duplicate face")

	// ErrInvalidWeight is returned for weights that are not finite non-negative numbers.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrUnknownFace is returned when a weight update targets a face the die does not have.
	ErrUnknownFace = errors.New("unknown face")

	// ErrInvalidCount is returned when a roll count is not a positive integer.
	ErrInvalidCount = errors.New("roll count must be positive")

	// ErrNoWeight is returned when every face has zero weight and nothing can be drawn.
	ErrNoWeight = errors.New("total weight is zero")
)
