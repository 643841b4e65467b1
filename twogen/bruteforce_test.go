package twogen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clawmath/twogen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bruteLimit = 12

// bruteForce enumerates every (nA, nB) in [0, limit]² and returns the cheapest
// cost that reaches the target.
func bruteForce(p twogen.Problem, limit int64) (int64, bool) {
	var (
		best  int64
		found bool
		g     = p.Generators
	)
	for na := int64(0); na <= limit; na++ {
		for nb := int64(0); nb <= limit; nb++ {
			if na*g.A.X+nb*g.B.X != p.Target.X || na*g.A.Y+nb*g.B.Y != p.Target.Y {
				continue
			}
			c := p.Costs.A*na + p.Costs.B*nb
			if !found || c < best {
				best, found = c, true
			}
		}
	}

	return best, found
}

// randomProblem draws a small bounded instance. Roughly a third of the pairs
// are forced parallel and half of the targets are built from real multipliers
// so both feasible and infeasible outcomes are common.
func randomProblem(rng *rand.Rand) twogen.Problem {
	small := func(r int64) int64 { return rng.Int63n(2*r+1) - r }

	var a, b twogen.Vector2
	switch rng.Intn(3) {
	case 0:
		d := v(small(3), small(3))
		ka, kb := small(3), small(3)
		a, b = v(ka*d.X, ka*d.Y), v(kb*d.X, kb*d.Y)
	default:
		a, b = v(small(6), small(6)), v(small(6), small(6))
	}

	var target twogen.Vector2
	if rng.Intn(2) == 0 {
		na, nb := rng.Int63n(bruteLimit+1), rng.Int63n(bruteLimit+1)
		target = v(na*a.X+nb*b.X, na*a.Y+nb*b.Y)
	} else {
		target = v(small(40), small(40))
	}

	return twogen.Problem{
		Generators: pair(a, b),
		Target:     target,
		Costs:      twogen.CostWeights{A: rng.Int63n(6), B: rng.Int63n(6)},
		Bound:      twogen.Limit(bruteLimit),
	}
}

// TestSolve_MatchesBruteForce cross-checks feasibility, optimality and the
// returned witness against exhaustive enumeration.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 5000; i++ {
		p := randomProblem(rng)

		sol, err := twogen.Solve(p)
		require.NoError(t, err, "problem %+v", p)
		want, ok := bruteForce(p, bruteLimit)

		require.Equal(t, ok, sol.Feasible, "feasibility of %+v (reason %s)", p, sol.Reason)
		if !ok {
			continue
		}
		require.NoError(t, twogen.Verify(p, sol), "witness for %+v", p)
		require.Equal(t, want, sol.Cost.Int64(), "optimal cost of %+v", p)
	}
}

// TestSolve_UnboundedNeverWorse checks that lifting the bound keeps every
// bounded answer reachable and never raises the optimum.
func TestSolve_UnboundedNeverWorse(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for i := 0; i < 2000; i++ {
		p := randomProblem(rng)
		bounded, err := twogen.Solve(p)
		require.NoError(t, err)

		p.Bound = twogen.Unbounded()
		free, err := twogen.Solve(p)
		require.NoError(t, err)
		require.NoError(t, twogen.Verify(p, free))

		if bounded.Feasible {
			require.True(t, free.Feasible, "unbounded lost %+v", p)
			assert.LessOrEqual(t, free.Cost.Cmp(bounded.Cost), 0, "unbounded cost above bounded for %+v", p)
		}
	}
}
