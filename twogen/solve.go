package twogen

// Solve returns the cheapest admissible (nA, nB) for p.
//
// Stage 1 validates the costs and bound. Stage 2 classifies the generators by
// their determinant. Stage 3 runs the closed-form solver for that class.
//
// An unreachable target is not an error: the returned Solution has
// Feasible == false and a Reason. The error is non-nil only for invalid input
// (ErrNegativeCost, ErrNegativeBound).
//
// Solve allocates fresh values on every call and is safe for concurrent use.
func Solve(p Problem) (Solution, error) {
	// Stage 1: preconditions.
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	// Stage 2: classify.
	det := Determinant(p.Generators)

	// Stage 3: solve.
	w := widen(p)
	if det.Sign() != 0 {
		return solveNonDegenerate(w, det), nil
	}

	return solveDegenerate(w)
}
