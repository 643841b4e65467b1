package twogen

import "math/big"

// wideProblem is a Problem lifted into math/big so every product and sum
// below is exact.
type wideProblem struct {
	ax, ay, bx, by *big.Int
	px, py         *big.Int
	ca, cb         *big.Int
	limit          *big.Int // nil when unbounded
}

func widen(p Problem) wideProblem {
	w := wideProblem{
		ax: big.NewInt(p.Generators.A.X),
		ay: big.NewInt(p.Generators.A.Y),
		bx: big.NewInt(p.Generators.B.X),
		by: big.NewInt(p.Generators.B.Y),
		px: big.NewInt(p.Target.X),
		py: big.NewInt(p.Target.Y),
		ca: big.NewInt(p.Costs.A),
		cb: big.NewInt(p.Costs.B),
	}
	if n, ok := p.Bound.Max(); ok {
		w.limit = big.NewInt(n)
	}

	return w
}

// cross returns u1·v2 − u2·v1.
func cross(u1, u2, v1, v2 *big.Int) *big.Int {
	l := new(big.Int).Mul(u1, v2)
	return l.Sub(l, new(big.Int).Mul(u2, v1))
}

// withinBound reports 0 ≤ n ≤ limit (limit nil = no upper cap).
func (w wideProblem) withinBound(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}

	return w.limit == nil || n.Cmp(w.limit) <= 0
}

// feasible builds a feasible Solution and prices it.
func (w wideProblem) feasible(kind Kind, nA, nB *big.Int) Solution {
	cost := new(big.Int).Mul(w.ca, nA)
	cost.Add(cost, new(big.Int).Mul(w.cb, nB))

	return Solution{Feasible: true, Reason: Reachable, Kind: kind, NA: nA, NB: nB, Cost: cost}
}

func infeasible(kind Kind, why Infeasibility) Solution {
	return Solution{Kind: kind, Reason: why}
}
