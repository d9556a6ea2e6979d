// Package bootstrap estimates the significance of a difference in means
// between two finite populations by resampling from their pooled values.
package bootstrap

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Population is a finite sample of outcomes, 1 for ready and 0 otherwise.
// Order carries no meaning.
type Population []float64

// FromPercent builds a population of size outcomes of which
// round(size * readyPct / 100) are ready. Halves round away from zero, so
// 3.5 ready students become 4. The not ready share absorbs the rounding and
// the population always has exactly size outcomes.
func FromPercent(size int, readyPct float64) (Population, error) {
	if size < 0 {
		return nil, fmt.Errorf("population size %d is negative", size)
	}
	if readyPct < 0 || readyPct > 100 || math.IsNaN(readyPct) {
		return nil, fmt.Errorf("ready percentage %v outside [0, 100]", readyPct)
	}

	ready := int(math.Round(float64(size) * readyPct / 100))
	return FromCounts(ready, size-ready), nil
}

// FromCounts builds a population of ready ones followed by notReady zeros.
// Negative counts are treated as zero.
func FromCounts(ready, notReady int) Population {
	ready, notReady = max(ready, 0), max(notReady, 0)

	p := make(Population, ready+notReady)
	for i := 0; i < ready; i++ {
		p[i] = 1
	}
	return p
}

// Mean is the arithmetic mean of p. It is NaN for an empty population.
func (p Population) Mean() float64 {
	s := stats.Sample{Xs: p}
	return s.Mean()
}

// Ones counts the ready outcomes in p.
func (p Population) Ones() int {
	n := 0
	for _, v := range p {
		if v == 1 {
			n++
		}
	}
	return n
}
