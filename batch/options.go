package batch

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/clawmath/twogen"
	"go.uber.org/zap"
)

// ErrBadWorkers indicates a worker count below one.
var ErrBadWorkers = errors.New("batch: Workers must be at least 1")

// Options configures SolveAll.
type Options struct {
	Workers       int          // concurrent solves; ≥ 1
	TargetOffset  int64        // added to both target coordinates
	Bound         twogen.Bound // used when OverrideBound is set
	OverrideBound bool         // replace each problem's bound with Bound
	Verify        bool         // re-check feasible answers
	Logger        *zap.Logger  // never nil after DefaultOptions
}

// Option is a functional option for SolveAll.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers, no offset, per-problem bounds,
// no verification and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// WithWorkers caps the number of concurrent solves. Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithTargetOffset shifts every target by (d, d) before solving.
func WithTargetOffset(d int64) Option {
	return func(o *Options) {
		o.TargetOffset = d
	}
}

// WithBound applies b to every problem instead of its own Bound.
func WithBound(b twogen.Bound) Option {
	return func(o *Options) {
		o.Bound = b
		o.OverrideBound = true
	}
}

// WithVerify re-checks every feasible Solution with twogen.Verify.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithLogger sets the logger for per-problem debug output.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// prepare applies the offset and bound override to p.
func (o Options) prepare(p twogen.Problem) (twogen.Problem, error) {
	if o.TargetOffset != 0 {
		t, err := p.Target.Shift(o.TargetOffset)
		if err != nil {
			return twogen.Problem{}, err
		}
		p.Target = t
	}
	if o.OverrideBound {
		p.Bound = o.Bound
	}

	return p, nil
}
