package twogen

import (
	"math/big"

	"github.com/katalvlaran/clawmath/numtheory"
)

// solveNonDegenerate applies Cramer's rule to
//
//	| ax bx | |nA|   |px|
//	| ay by | |nB| = |py|
//
// The rational solution always exists and is unique; it is admissible only
// when both numerators are exact multiples of det and both quotients lie in
// [0, limit].
func solveNonDegenerate(w wideProblem, det *big.Int) Solution {
	numA := cross(w.px, w.py, w.bx, w.by) // px·by − py·bx
	numB := cross(w.ax, w.ay, w.px, w.py) // ax·py − ay·px

	if !numtheory.Divides(det, numA) || !numtheory.Divides(det, numB) {
		return infeasible(NonDegenerate, NonInteger)
	}
	nA := new(big.Int).Quo(numA, det)
	nB := new(big.Int).Quo(numB, det)
	if !w.withinBound(nA) || !w.withinBound(nB) {
		return infeasible(NonDegenerate, OutOfRange)
	}

	return w.feasible(NonDegenerate, nA, nB)
}
