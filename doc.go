// Package clawmath finds the cheapest way to reach a lattice point with two
// fixed moves.
//
// What is clawmath?
//
//	Given step vectors A and B, a target P and per-use costs, it finds
//	non-negative integers nA, nB (optionally capped) with nA·A + nB·B = P and
//	minimal costA·nA + costB·nB. Everything is exact and closed-form:
//		• Cramer's rule when A and B span the plane
//		• extended Euclid plus an analytic parameter interval when A ∥ B
//
// Subpackages:
//
//	numtheory/ — extended GCD, signed floor/ceil division, divisibility
//	twogen/    — problem types, classifier, solvers, verifier
//	batch/     — parallel solving and cost totals over many problems
//
// Quick example:
//
//	sol, _ := twogen.Solve(twogen.Problem{
//	    Generators: twogen.GeneratorPair{A: twogen.Vector2{X: 94, Y: 34}, B: twogen.Vector2{X: 22, Y: 67}},
//	    Target:     twogen.Vector2{X: 8400, Y: 5400},
//	    Costs:      twogen.CostWeights{A: 3, B: 1},
//	    Bound:      twogen.Limit(100),
//	})
//	// sol.Cost == 280
//
//	go get github.com/katalvlaran/clawmath
package clawmath
