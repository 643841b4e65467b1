package twogen

import (
	"fmt"
	"math/big"
)

// Vector2 is an immutable integer 2-D vector.
type Vector2 struct {
	X, Y int64
}

// IsZero reports whether v is the zero vector.
func (v Vector2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Add returns v + w, or ErrOverflow if a component leaves the int64 range.
func (v Vector2) Add(w Vector2) (Vector2, error) {
	x, okX := addInt64(v.X, w.X)
	y, okY := addInt64(v.Y, w.Y)
	if !okX || !okY {
		return Vector2{}, fmt.Errorf("%v + %v: %w", v, w, ErrOverflow)
	}

	return Vector2{X: x, Y: y}, nil
}

// Shift returns v + (d, d).
func (v Vector2) Shift(d int64) (Vector2, error) {
	return v.Add(Vector2{X: d, Y: d})
}

// String renders v as "(x, y)".
func (v Vector2) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }

// addInt64 adds with overflow detection.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// GeneratorPair holds the two allowed moves. Either may be zero.
type GeneratorPair struct {
	A, B Vector2
}

// CostWeights is the price of one use of A and of B. Both must be ≥ 0.
type CostWeights struct {
	A, B int64
}

// Bound is an optional upper limit applied identically to nA and nB.
// The zero value is unbounded.
type Bound struct {
	limit int64
	set   bool
}

// Unbounded returns the zero Bound.
func Unbounded() Bound { return Bound{} }

// Limit returns a Bound capping both multipliers at n.
// A negative n is rejected by Solve with ErrNegativeBound.
func Limit(n int64) Bound { return Bound{limit: n, set: true} }

// Max returns the limit and whether one is set.
func (b Bound) Max() (int64, bool) { return b.limit, b.set }

// String renders the bound as "≤n" or "unbounded".
func (b Bound) String() string {
	if !b.set {
		return "unbounded"
	}

	return fmt.Sprintf("≤%d", b.limit)
}

// Problem is one solver instance.
type Problem struct {
	Generators GeneratorPair // the two moves A and B
	Target     Vector2       // point to reach exactly
	Costs      CostWeights   // per-use cost of A and B
	Bound      Bound         // optional cap on nA and nB
}

// Validate checks the preconditions Solve relies on.
func (p Problem) Validate() error {
	if p.Costs.A < 0 || p.Costs.B < 0 {
		return fmt.Errorf("costs (%d, %d): %w", p.Costs.A, p.Costs.B, ErrNegativeCost)
	}
	if n, ok := p.Bound.Max(); ok && n < 0 {
		return fmt.Errorf("bound %d: %w", n, ErrNegativeBound)
	}

	return nil
}

// Kind classifies a generator pair by its determinant.
type Kind int

const (
	// NonDegenerate pairs span the plane (det ≠ 0).
	NonDegenerate Kind = iota
	// Degenerate pairs are parallel (det = 0).
	Degenerate
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case NonDegenerate:
		return "non-degenerate"
	case Degenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Infeasibility names why no admissible (nA, nB) exists.
type Infeasibility int

const (
	// Reachable is the Reason of every feasible Solution.
	Reachable Infeasibility = iota
	// OffLine: degenerate pair and the target is not on the generators' line.
	OffLine
	// NonInteger: the exact-division check failed.
	NonInteger
	// OutOfRange: integer solutions exist but none is non-negative and within the bound.
	OutOfRange
)

// String returns the reason name.
func (r Infeasibility) String() string {
	switch r {
	case Reachable:
		return "reachable"
	case OffLine:
		return "off-line target"
	case NonInteger:
		return "non-integer solution"
	case OutOfRange:
		return "negative or out-of-bound multiplier"
	default:
		return fmt.Sprintf("Infeasibility(%d)", int(r))
	}
}

// Solution is the outcome of Solve. When Feasible is false the big.Int
// fields are nil and Reason is set.
type Solution struct {
	Feasible bool
	Reason   Infeasibility
	Kind     Kind
	NA, NB   *big.Int // optimal multipliers
	Cost     *big.Int // costA·NA + costB·NB
}

// CostUint64 returns Cost as a uint64. It fails with ErrOverflow instead of
// truncating, and with ErrInvalidSolution for an infeasible Solution.
func (s Solution) CostUint64() (uint64, error) {
	if !s.Feasible || s.Cost == nil {
		return 0, fmt.Errorf("cost of %s: %w", s.Reason, ErrInvalidSolution)
	}
	if s.Cost.Sign() < 0 || !s.Cost.IsUint64() {
		return 0, fmt.Errorf("cost %s: %w", s.Cost, ErrOverflow)
	}

	return s.Cost.Uint64(), nil
}

// String renders the solution for logs and examples.
func (s Solution) String() string {
	if !s.Feasible {
		return fmt.Sprintf("infeasible (%s)", s.Reason)
	}

	return fmt.Sprintf("nA=%s nB=%s cost=%s", s.NA, s.NB, s.Cost)
}
