package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// DefaultTrials is the number of resampling trials used when none is set.
const DefaultTrials = 10_000

// ErrEmptyPopulation is matched by every EmptyPopulationError.
var ErrEmptyPopulation = errors.New("empty population")

// ErrInvalidTrials indicates a non-positive trial count.
var ErrInvalidTrials = errors.New("trial count must be positive")

// EmptyPopulationError reports a comparison against a population with no
// outcomes, whose mean is undefined.
type EmptyPopulationError struct {
	LenA, LenB int
}

func (e *EmptyPopulationError) Error() string {
	return fmt.Sprintf("cannot compare populations of sizes %d and %d: %v", e.LenA, e.LenB, ErrEmptyPopulation)
}

func (e *EmptyPopulationError) Is(target error) bool {
	return target == ErrEmptyPopulation
}

// Result is the outcome of a bootstrap estimate.
type Result struct {
	// Observed is |mean(a) - mean(b)| of the populations as given.
	Observed float64
	// Hits counts trials whose resampled difference was at least Observed.
	Hits   int
	Trials int
	PValue float64
	// Seed replays the estimate when passed to WithSeed.
	Seed int64
}

// Estimator runs two-sided bootstrap tests of the hypothesis that two
// populations share the same mean.
type Estimator struct {
	trials int
	seed   int64
	logger *slog.Logger
}

type Option func(*Estimator)

// WithTrials sets the number of resampling trials.
func WithTrials(n int) Option {
	return func(e *Estimator) { e.trials = n }
}

// WithSeed fixes the random seed. Every Estimate restarts the generator from
// it, so identical inputs give identical results. Zero draws a fresh seed
// for each estimate.
func WithSeed(seed int64) Option {
	return func(e *Estimator) { e.seed = seed }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Estimator) { e.logger = l }
}

func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		trials: DefaultTrials,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Estimator) Trials() int {
	return e.trials
}

// Estimate returns the fraction of trials in which two resamples of sizes
// len(a) and len(b), drawn with replacement from the pooled outcomes, differ
// in mean by at least as much as a and b do.
func (e *Estimator) Estimate(a, b Population) (Result, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Result{}, &EmptyPopulationError{LenA: n, LenB: m}
	}
	if e.trials <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidTrials, e.trials)
	}

	seed := e.seed
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return Result{}, err
		}
	}
	rs := NewResampler(seed)

	observed := math.Abs(a.Mean() - b.Mean())

	universe := make(Population, 0, n+m)
	universe = append(universe, a...)
	universe = append(universe, b...)

	resampleA := make(Population, 0, n)
	resampleB := make(Population, 0, m)

	hits := 0
	for t := 0; t < e.trials; t++ {
		resampleA = rs.ResampleInto(resampleA, universe, n)
		resampleB = rs.ResampleInto(resampleB, universe, m)

		if math.Abs(resampleA.Mean()-resampleB.Mean()) >= observed {
			hits++
		}
	}

	res := Result{
		Observed: observed,
		Hits:     hits,
		Trials:   e.trials,
		PValue:   float64(hits) / float64(e.trials),
		Seed:     seed,
	}

	e.logger.Debug("Bootstrap estimate",
		"n", n, "m", m,
		"observed", observed,
		"trials", e.trials,
		"p_value", res.PValue,
		"seed", seed)

	return res, nil
}
