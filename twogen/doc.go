// Package twogen solves the two-generator reachability problem with minimal
// linear cost.
//
// Problem:
//
//	Given step vectors A, B and a target P (all integer 2-D vectors), find
//	non-negative integers nA, nB, optionally bounded above by the same limit,
//	such that
//
//	    nA·A + nB·B = P
//
//	minimising costA·nA + costB·nB.
//
// How it is solved:
//
//   - Classify: det = ax·by − ay·bx, exact integer test.
//   - det ≠ 0 (non-degenerate): Cramer's rule gives the unique rational
//     solution; it is admissible only if both divisions are exact, both
//     multipliers are non-negative and within the bound.
//   - det = 0 (degenerate, A ∥ B): the target must lie on the common line.
//     The system collapses to ua·nA + ub·nB = up along one axis, solved with
//     the extended Euclidean algorithm. Every integer solution is
//     nA(k) = nA0 + k·ub/g, nB(k) = nB0 − k·ua/g. The constraints carve an
//     interval [kmin, kmax] and the cost is affine in k, so the optimum sits
//     at an endpoint chosen by the sign of the slope. No search window.
//
// Guarantees:
//
//   - Exact: all intermediate arithmetic uses math/big; nothing wraps.
//   - Pure: Solve has no state and is safe for concurrent use.
//   - O(1) apart from the O(log) Euclidean step.
//
// Infeasibility is a result, not an error: Solution.Feasible is false and
// Solution.Reason says why (OffLine, NonInteger, OutOfRange). Errors are
// returned only for invalid input:
//
//   - ErrNegativeCost  — a cost weight is negative.
//   - ErrNegativeBound — the bound limit is negative.
//
// Example:
//
//	sol, err := twogen.Solve(twogen.Problem{
//	    Generators: twogen.GeneratorPair{A: twogen.Vector2{X: 94, Y: 34}, B: twogen.Vector2{X: 22, Y: 67}},
//	    Target:     twogen.Vector2{X: 8400, Y: 5400},
//	    Costs:      twogen.CostWeights{A: 3, B: 1},
//	    Bound:      twogen.Limit(100),
//	})
//	// sol.Feasible == true, sol.NA == 80, sol.NB == 40, sol.Cost == 280
package twogen
