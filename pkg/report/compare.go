// Package report runs zone comparisons and rankings and renders their
// results as tables, console reports and charts.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/bootstrap"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

// DefaultThreshold is the conventional significance level.
const DefaultThreshold = 0.05

// RecordSource provides zone records, see zone.Aggregator.
type RecordSource interface {
	AggregatePair(subject zone.Subject, zoneA, zoneB, grade int) (zone.Record, zone.Record, error)
	Zones(subject zone.Subject, grade int) ([]zone.Record, error)
}

// Estimator estimates the p-value of a difference in means, see
// bootstrap.Estimator.
type Estimator interface {
	Estimate(a, b bootstrap.Population) (bootstrap.Result, error)
}

type Options struct {
	// Threshold defaults to DefaultThreshold.
	Threshold float64
	// Workers bounds the comparisons of a sweep run at once; default 1.
	Workers int
	Logger  *slog.Logger
}

// Driver compares zones pairwise.
type Driver struct {
	records   RecordSource
	estimator Estimator
	threshold float64
	workers   int
	logger    *slog.Logger
}

func NewDriver(records RecordSource, estimator Estimator, opts Options) *Driver {
	d := &Driver{
		records:   records,
		estimator: estimator,
		threshold: opts.Threshold,
		workers:   opts.Workers,
		logger:    opts.Logger,
	}
	if d.threshold <= 0 {
		d.threshold = DefaultThreshold
	}
	if d.workers < 1 {
		d.workers = 1
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

func (d *Driver) Threshold() float64 {
	return d.threshold
}

// Comparison is the estimated p-value for one pair of zones.
type Comparison struct {
	Subject zone.Subject
	Grade   int
	ZoneA   int
	ZoneB   int
	PValue  float64
	Result  bootstrap.Result
}

// Significant reports whether the zones differ at the given threshold.
func (c Comparison) Significant(threshold float64) bool {
	return c.PValue <= threshold
}

// Compare estimates whether zoneA and zoneB differ in readiness.
func (d *Driver) Compare(subject zone.Subject, zoneA, zoneB, grade int) (Comparison, error) {
	recA, recB, err := d.records.AggregatePair(subject, zoneA, zoneB, grade)
	if err != nil {
		return Comparison{}, err
	}

	popA, err := recA.Population()
	if err != nil {
		return Comparison{}, fmt.Errorf("zone %d: %w", zoneA, err)
	}
	popB, err := recB.Population()
	if err != nil {
		return Comparison{}, fmt.Errorf("zone %d: %w", zoneB, err)
	}

	res, err := d.estimator.Estimate(popA, popB)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare zones %d and %d: %w", zoneA, zoneB, err)
	}

	c := Comparison{
		Subject: subject,
		Grade:   recA.Grade,
		ZoneA:   zoneA,
		ZoneB:   zoneB,
		PValue:  res.PValue,
		Result:  res,
	}

	d.logger.Debug("Compared zones",
		"subject", subject,
		"grade", c.Grade,
		"zone_a", zoneA,
		"zone_b", zoneB,
		"p_value", c.PValue,
		"significant", c.Significant(d.threshold))

	return c, nil
}

// Failure records a pair of zones that could not be compared.
type Failure struct {
	ZoneA, ZoneB int
	Err          error
}

// Sweep holds the outcome of comparing every pair of zones.
type Sweep struct {
	Subject     zone.Subject
	Grade       int
	Threshold   float64
	Comparisons []Comparison
	Failures    []Failure
}

// NotSignificant returns the comparisons whose p-value exceeds the
// threshold, i.e. the pairs not significantly different.
func (s *Sweep) NotSignificant() []Comparison {
	var out []Comparison
	for _, c := range s.Comparisons {
		if !c.Significant(s.Threshold) {
			out = append(out, c)
		}
	}
	return out
}

// CompareAll compares every pair of distinct zones. A pair that fails is
// recorded in Failures and the sweep carries on; only an invalid grade or
// cancellation of ctx aborts it. Results are ordered by zone pair.
func (d *Driver) CompareAll(ctx context.Context, subject zone.Subject, grade int) (*Sweep, error) {
	if err := (zone.Query{Subject: subject, Zone: zone.MinZone, Grade: grade}).Validate(); err != nil {
		return nil, err
	}

	sweep := &Sweep{
		Subject:   subject,
		Grade:     grade,
		Threshold: d.threshold,
	}
	if subject.Kindergarten() {
		sweep.Grade = 0
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(d.workers)

	for a := zone.MinZone; a <= zone.MaxZone; a++ {
		for b := a + 1; b <= zone.MaxZone; b++ {
			a, b := a, b // per-iteration copies; go.mod targets go 1.21
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				c, err := d.Compare(subject, a, b, grade)

				mu.Lock()
				defer mu.Unlock()

				if err != nil {
					d.logger.Warn("Comparison failed", "subject", subject, "zone_a", a, "zone_b", b, "error", err)
					sweep.Failures = append(sweep.Failures, Failure{ZoneA: a, ZoneB: b, Err: err})
					return nil
				}
				sweep.Comparisons = append(sweep.Comparisons, c)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(sweep.Comparisons, func(i, j int) bool {
		ci, cj := sweep.Comparisons[i], sweep.Comparisons[j]
		return ci.ZoneA < cj.ZoneA || (ci.ZoneA == cj.ZoneA && ci.ZoneB < cj.ZoneB)
	})
	sort.Slice(sweep.Failures, func(i, j int) bool {
		fi, fj := sweep.Failures[i], sweep.Failures[j]
		return fi.ZoneA < fj.ZoneA || (fi.ZoneA == fj.ZoneA && fi.ZoneB < fj.ZoneB)
	})

	d.logger.Info("Compared all zones",
		"subject", subject,
		"grade", sweep.Grade,
		"comparisons", len(sweep.Comparisons),
		"failures", len(sweep.Failures),
		"not_significant", len(sweep.NotSignificant()))

	return sweep, nil
}
