package numtheory

import "errors"

var (
	// ErrDivisionByZero indicates a zero divisor was passed to FloorDiv or CeilDiv.
	ErrDivisionByZero = errors.New("numtheory: division by zero")
	// ErrOverflow indicates an int64 result is out of range.
	ErrOverflow = errors.New("numtheory: result overflows int64")
)
