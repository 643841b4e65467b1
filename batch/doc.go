// Package batch solves many independent twogen problems in parallel and
// totals the cost of the reachable ones.
//
// Each twogen.Solve call is pure, so instances are fanned out over a bounded
// errgroup with no shared state beyond the result slot each worker owns.
// Results keep the input order.
//
// Options:
//
//   - WithWorkers(n):         at most n concurrent solves (default GOMAXPROCS).
//   - WithTargetOffset(d):    shift every target by (d, d) before solving.
//   - WithBound(b):           replace every problem's bound with b.
//   - WithVerify():           re-check each feasible answer with twogen.Verify.
//   - WithLogger(l):          debug-log every outcome (default: no-op logger).
//
// Errors:
//
//   - twogen.ErrNegativeCost / twogen.ErrNegativeBound from an invalid problem.
//   - twogen.ErrOverflow if an offset pushes a target outside int64.
//   - twogen.ErrInvalidSolution if WithVerify rejects an answer.
//   - ctx.Err() when the context is cancelled.
//
// Every error is wrapped with the index of the offending problem.
//
// Example:
//
//	res, err := batch.SolveAll(ctx, problems, batch.WithTargetOffset(10000000000000), batch.WithBound(twogen.Unbounded()))
//	fmt.Println(res.Solved, res.Total)
package batch
