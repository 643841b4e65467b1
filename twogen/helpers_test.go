package twogen_test

import (
	"github.com/katalvlaran/clawmath/twogen"
)

// outcome is a comparable view of a Solution for cmp.Diff.
type outcome struct {
	Feasible bool
	Reason   twogen.Infeasibility
	NA, NB   string
	Cost     string
}

func summarize(s twogen.Solution) outcome {
	o := outcome{Feasible: s.Feasible, Reason: s.Reason}
	if s.Feasible {
		o.NA, o.NB, o.Cost = s.NA.String(), s.NB.String(), s.Cost.String()
	}

	return o
}

func reached(na, nb, cost string) outcome {
	return outcome{Feasible: true, Reason: twogen.Reachable, NA: na, NB: nb, Cost: cost}
}

func unreached(why twogen.Infeasibility) outcome {
	return outcome{Reason: why}
}

func v(x, y int64) twogen.Vector2 { return twogen.Vector2{X: x, Y: y} }

func pair(a, b twogen.Vector2) twogen.GeneratorPair { return twogen.GeneratorPair{A: a, B: b} }

// clawCosts is the 3:1 pricing used by the reference scenarios.
var clawCosts = twogen.CostWeights{A: 3, B: 1}
