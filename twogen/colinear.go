package twogen

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/clawmath/numtheory"
)

// solveDegenerate handles parallel generators (det = 0).
//
// Stages:
//  1. The target must be collinear with every non-zero generator.
//  2. Two zero generators reach only the zero target.
//  3. Reduce to one axis: x if either generator moves along x, else y.
//     Collinearity makes the other coordinate follow automatically.
//  4. One active generator: a single exact division.
//     Two active generators: Diophantine line plus closed-form optimum.
func solveDegenerate(w wideProblem) (Solution, error) {
	// Stage 1: off-line targets.
	if cross(w.ax, w.ay, w.px, w.py).Sign() != 0 || cross(w.bx, w.by, w.px, w.py).Sign() != 0 {
		return infeasible(Degenerate, OffLine), nil
	}

	// Stage 2: nothing moves.
	aZero := w.ax.Sign() == 0 && w.ay.Sign() == 0
	bZero := w.bx.Sign() == 0 && w.by.Sign() == 0
	if aZero && bZero {
		if w.px.Sign() != 0 || w.py.Sign() != 0 {
			return infeasible(Degenerate, OffLine), nil
		}
		return w.feasible(Degenerate, new(big.Int), new(big.Int)), nil
	}

	// Stage 3: pick the reduction axis.
	ua, ub, up := w.ax, w.bx, w.px
	if ua.Sign() == 0 && ub.Sign() == 0 {
		ua, ub, up = w.ay, w.by, w.py
	}

	// Stage 4: dispatch on the active generators.
	switch {
	case ua.Sign() == 0:
		// A is the zero vector here; using it only adds cost.
		nB, why := w.single(ub, up)
		if why != Reachable {
			return infeasible(Degenerate, why), nil
		}
		return w.feasible(Degenerate, new(big.Int), nB), nil
	case ub.Sign() == 0:
		nA, why := w.single(ua, up)
		if why != Reachable {
			return infeasible(Degenerate, why), nil
		}
		return w.feasible(Degenerate, nA, new(big.Int)), nil
	default:
		return w.line(ua, ub, up)
	}
}

// single solves u·n = up for one admissible n.
func (w wideProblem) single(u, up *big.Int) (*big.Int, Infeasibility) {
	if !numtheory.Divides(u, up) {
		return nil, NonInteger
	}
	n := new(big.Int).Quo(up, u)
	if !w.withinBound(n) {
		return nil, OutOfRange
	}

	return n, Reachable
}

// line solves ua·nA + ub·nB = up with ua, ub ≠ 0 and returns the cheapest
// admissible pair.
//
// With g = gcd(ua, ub) and ua·x0 + ub·y0 = g, every integer solution is
//
//	nA(k) = nA0 + k·t,  nB(k) = nB0 − k·s,  t = ub/g, s = ua/g,
//
// where nA0 = x0·up/g and nB0 = y0·up/g. Each constraint is linear in k and
// shrinks [kmin, kmax]. cost(k) has slope costA·t − costB·s, so the optimum is
// an endpoint.
func (w wideProblem) line(ua, ub, up *big.Int) (Solution, error) {
	g, x0, y0 := numtheory.ExtendedGCD(ua, ub)
	if !numtheory.Divides(g, up) {
		return infeasible(Degenerate, NonInteger), nil
	}
	scale := new(big.Int).Quo(up, g)
	nA0 := new(big.Int).Mul(x0, scale)
	nB0 := new(big.Int).Mul(y0, scale)
	t := new(big.Int).Quo(ub, g)
	s := new(big.Int).Quo(ua, g)
	negT := new(big.Int).Neg(t)
	negS := new(big.Int).Neg(s)

	var iv kInterval
	constraints := []linear{
		{c: nA0, m: t},    // nA ≥ 0
		{c: nB0, m: negS}, // nB ≥ 0
	}
	if w.limit != nil {
		constraints = append(constraints,
			linear{c: new(big.Int).Sub(w.limit, nA0), m: negT}, // nA ≤ limit
			linear{c: new(big.Int).Sub(w.limit, nB0), m: s},    // nB ≤ limit
		)
	}
	for _, cn := range constraints {
		if err := iv.require(cn.c, cn.m); err != nil {
			return Solution{}, err
		}
	}
	if iv.empty() {
		return infeasible(Degenerate, OutOfRange), nil
	}

	slope := new(big.Int).Mul(w.ca, t)
	slope.Sub(slope, new(big.Int).Mul(w.cb, s))
	k, err := iv.cheapest(slope)
	if err != nil {
		return Solution{}, err
	}

	nA := new(big.Int).Add(nA0, new(big.Int).Mul(k, t))
	nB := new(big.Int).Sub(nB0, new(big.Int).Mul(k, s))

	return w.feasible(Degenerate, nA, nB), nil
}

// linear is the constraint c + k·m ≥ 0.
type linear struct {
	c, m *big.Int
}

// kInterval is the admissible range of the line parameter k.
// A nil end is open.
type kInterval struct {
	lo, hi *big.Int
}

// require intersects the interval with {k : c + k·m ≥ 0}, m ≠ 0.
//
//	m > 0: k ≥ ⌈−c/m⌉
//	m < 0: k ≤ ⌊−c/m⌋
func (iv *kInterval) require(c, m *big.Int) error {
	negC := new(big.Int).Neg(c)
	if m.Sign() > 0 {
		lo, err := numtheory.CeilDiv(negC, m)
		if err != nil {
			return err
		}
		if iv.lo == nil || lo.Cmp(iv.lo) > 0 {
			iv.lo = lo
		}
		return nil
	}
	hi, err := numtheory.FloorDiv(negC, m)
	if err != nil {
		return err
	}
	if iv.hi == nil || hi.Cmp(iv.hi) < 0 {
		iv.hi = hi
	}

	return nil
}

func (iv *kInterval) empty() bool {
	return iv.lo != nil && iv.hi != nil && iv.lo.Cmp(iv.hi) > 0
}

// cheapest picks the endpoint minimising an affine cost with the given slope.
// A flat cost prefers kmin.
func (iv *kInterval) cheapest(slope *big.Int) (*big.Int, error) {
	var k *big.Int
	switch {
	case slope.Sign() > 0:
		k = iv.lo
	case slope.Sign() < 0:
		k = iv.hi
	case iv.lo != nil:
		k = iv.lo
	default:
		k = iv.hi
	}
	if k == nil {
		return nil, fmt.Errorf("slope %s over (%v, %v): %w", slope, iv.lo, iv.hi, ErrUnboundedCost)
	}

	return k, nil
}
