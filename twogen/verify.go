package twogen

import (
	"fmt"
	"math/big"
)

// Verify checks that a feasible Solution really solves p:
// NA, NB ≥ 0 and within the bound, NA·A + NB·B == Target and
// costA·NA + costB·NB == Cost. An infeasible Solution carries no witness and
// verifies trivially.
func Verify(p Problem, s Solution) error {
	if !s.Feasible {
		return nil
	}
	if s.NA == nil || s.NB == nil || s.Cost == nil {
		return fmt.Errorf("missing multipliers: %w", ErrInvalidSolution)
	}

	w := widen(p)
	if !w.withinBound(s.NA) || !w.withinBound(s.NB) {
		return fmt.Errorf("nA=%s nB=%s outside [0, %s]: %w", s.NA, s.NB, p.Bound, ErrInvalidSolution)
	}

	x := new(big.Int).Mul(s.NA, w.ax)
	x.Add(x, new(big.Int).Mul(s.NB, w.bx))
	y := new(big.Int).Mul(s.NA, w.ay)
	y.Add(y, new(big.Int).Mul(s.NB, w.by))
	if x.Cmp(w.px) != 0 || y.Cmp(w.py) != 0 {
		return fmt.Errorf("reaches (%s, %s), want %v: %w", x, y, p.Target, ErrInvalidSolution)
	}

	cost := new(big.Int).Mul(w.ca, s.NA)
	cost.Add(cost, new(big.Int).Mul(w.cb, s.NB))
	if cost.Cmp(s.Cost) != 0 {
		return fmt.Errorf("cost %s, want %s: %w", s.Cost, cost, ErrInvalidSolution)
	}

	return nil
}
