package twogen

import "errors"

// Sentinel errors returned by twogen.
var (
	// ErrNegativeCost indicates a negative cost weight; minimisation is
	// meaningless when a multiplier can lower the cost without limit.
	ErrNegativeCost = errors.New("twogen: cost weights must be non-negative")

	// ErrNegativeBound indicates a Bound built with a negative limit.
	ErrNegativeBound = errors.New("twogen: bound limit must be non-negative")

	// ErrOverflow indicates a value does not fit the requested fixed-width type.
	ErrOverflow = errors.New("twogen: integer overflow")

	// ErrInvalidSolution is returned by Verify when a solution does not satisfy its problem.
	ErrInvalidSolution = errors.New("twogen: solution does not satisfy problem")

	// ErrUnboundedCost indicates the feasible parameter range is open toward
	// decreasing cost. Unreachable with non-negative weights.
	ErrUnboundedCost = errors.New("twogen: cost is unbounded below")
)
