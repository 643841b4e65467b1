package twogen

import "math/big"

// Determinant returns ax·by − ay·bx for the pair, computed exactly.
func Determinant(g GeneratorPair) *big.Int {
	return cross(
		big.NewInt(g.A.X), big.NewInt(g.A.Y),
		big.NewInt(g.B.X), big.NewInt(g.B.Y),
	)
}

// Classify reports whether the pair is Degenerate (parallel, det = 0) or
// NonDegenerate. The test is exact; there is no tolerance.
func Classify(g GeneratorPair) Kind {
	if Determinant(g).Sign() == 0 {
		return Degenerate
	}

	return NonDegenerate
}
