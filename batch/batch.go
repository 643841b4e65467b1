package batch

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/clawmath/twogen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result aggregates a batch run.
type Result struct {
	Solutions []twogen.Solution // same order as the input problems
	Solved    int               // number of feasible problems
	Total     *big.Int          // sum of feasible costs
}

// TotalUint64 returns Total as a uint64, or twogen.ErrOverflow.
func (r Result) TotalUint64() (uint64, error) {
	if r.Total == nil || r.Total.Sign() < 0 || !r.Total.IsUint64() {
		return 0, fmt.Errorf("total %v: %w", r.Total, twogen.ErrOverflow)
	}

	return r.Total.Uint64(), nil
}

// SolveAll solves every problem and sums the costs of the feasible ones.
// The first error cancels the remaining work and is returned wrapped with the
// index of its problem.
func SolveAll(ctx context.Context, problems []twogen.Problem, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Stage 1: fan out; each worker writes only its own slot.
	solutions := make([]twogen.Solution, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, p := range problems {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sol, err := o.solveOne(p)
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			solutions[i] = sol
			o.Logger.Debug("solved problem",
				zap.Int("index", i),
				zap.Stringer("kind", sol.Kind),
				zap.Bool("feasible", sol.Feasible),
				zap.Stringer("reason", sol.Reason),
				zap.Stringer("cost", sol.Cost),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Stage 2: sum in input order.
	res := Result{Solutions: solutions, Total: new(big.Int)}
	for _, sol := range solutions {
		if sol.Feasible {
			res.Solved++
			res.Total.Add(res.Total, sol.Cost)
		}
	}
	o.Logger.Debug("batch complete",
		zap.Int("problems", len(problems)),
		zap.Int("solved", res.Solved),
		zap.Stringer("total", res.Total),
	)

	return res, nil
}

func (o Options) solveOne(p twogen.Problem) (twogen.Solution, error) {
	p, err := o.prepare(p)
	if err != nil {
		return twogen.Solution{}, err
	}
	sol, err := twogen.Solve(p)
	if err != nil {
		return twogen.Solution{}, err
	}
	if o.Verify {
		if err := twogen.Verify(p, sol); err != nil {
			return twogen.Solution{}, err
		}
	}

	return sol, nil
}
