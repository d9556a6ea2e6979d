package zone

import (
	"errors"
	"fmt"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/bootstrap"
)

// ErrNoParticipants indicates a record without any participating students,
// for which no proportion is defined.
var ErrNoParticipants = errors.New("no participants")

// Record is the aggregate of one zone (and grade) for a subject.
type Record struct {
	Subject Subject
	Zone    int
	Grade   int
	// Size is the sum of the source rows' own Size cells.
	Size   int
	Layout *Layout
	// Counts is aligned with Layout.Levels.
	Counts []int
	// Rows is the number of source rows folded into the record.
	Rows int
}

func (r Record) Found() bool {
	return r.Rows > 0
}

// Count returns the value of level, or 0 for an unknown level.
func (r Record) Count(level string) int {
	if r.Layout == nil {
		return 0
	}
	if i := r.Layout.index(level); i >= 0 && i < len(r.Counts) {
		return r.Counts[i]
	}
	return 0
}

func (r Record) sum(levels []string) int {
	total := 0
	for _, l := range levels {
		total += r.Count(l)
	}
	return total
}

// Ready is the number (or percentage) of ready students.
func (r Record) Ready() int {
	return r.sum(r.Layout.ReadyLevels)
}

// NotReady is the number (or percentage) of students below readiness.
func (r Record) NotReady() int {
	return r.sum(r.Layout.NotReadyLevels)
}

// Participants is Size without the excluded level, i.e. without students
// who did not take the assessment.
func (r Record) Participants() int {
	if r.Layout.Excluded == "" {
		return r.Size
	}
	return r.Size - r.Count(r.Layout.Excluded)
}

// Proportions returns the share of each level. Counts are divided by
// Participants, percentages by 100.
func (r Record) Proportions() (map[string]float64, error) {
	denom := 100.0
	if !r.Layout.Percent {
		if r.Participants() <= 0 {
			return nil, fmt.Errorf("zone %d: %w", r.Zone, ErrNoParticipants)
		}
		denom = float64(r.Participants())
	}

	shares := make(map[string]float64, len(r.Layout.Levels))
	for _, l := range r.Layout.Levels {
		shares[l] = float64(r.Count(l)) / denom
	}
	return shares, nil
}

// Breakdown splits the record into chart categories normalised to sum to 1.
// Percentage records keep their levels; count records collapse into Ready
// and Not Ready, leaving out students who did not take the assessment.
func (r Record) Breakdown() (categories []string, shares []float64, err error) {
	var values []int
	if r.Layout.Percent {
		categories = append([]string(nil), r.Layout.Levels...)
		for _, l := range categories {
			values = append(values, r.Count(l))
		}
	} else {
		categories = []string{Ready, NotReady}
		values = []int{r.Ready(), r.NotReady()}
	}

	total := 0
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return nil, nil, fmt.Errorf("zone %d: %w", r.Zone, ErrNoParticipants)
	}

	shares = make([]float64, len(values))
	for i, v := range values {
		shares[i] = float64(v) / float64(total)
	}
	return categories, shares, nil
}

// Population builds the record's binary population: from the ready
// percentage of Size for percentage records, from the ready and not ready
// counts otherwise.
func (r Record) Population() (bootstrap.Population, error) {
	if r.Layout.Percent {
		return bootstrap.FromPercent(r.Size, float64(r.Ready()))
	}
	return bootstrap.FromCounts(r.Ready(), r.NotReady()), nil
}
