package report

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

// Summary is the per-zone readiness breakdown handed to the charts.
type Summary struct {
	Title   string
	Subject zone.Subject
	Grade   int
	// Categories are ordered from ready to not ready.
	Categories []string
	Zones      []int
	Sizes      []int
	// Proportions holds one share per zone for every category; the shares
	// of a zone sum to 1.
	Proportions map[string][]float64
	// Mean and Variance (population variance) of the Ready shares.
	Mean     float64
	Variance float64
}

// Readiness returns the Ready share of every zone.
func (s *Summary) Readiness() []float64 {
	return s.Proportions[zone.Ready]
}

// Summarize builds a Summary from one record per zone.
func Summarize(title string, records []zone.Record) (*Summary, error) {
	if len(records) == 0 {
		return nil, errors.New("no zone records to summarize")
	}

	s := &Summary{
		Title:       title,
		Subject:     records[0].Subject,
		Grade:       records[0].Grade,
		Proportions: make(map[string][]float64),
	}

	for _, rec := range records {
		categories, shares, err := rec.Breakdown()
		if err != nil {
			return nil, err
		}
		if s.Categories == nil {
			s.Categories = categories
		}

		for i, c := range categories {
			s.Proportions[c] = append(s.Proportions[c], shares[i])
		}
		s.Zones = append(s.Zones, rec.Zone)
		s.Sizes = append(s.Sizes, rec.Size)
	}

	readiness := stats.Sample{Xs: s.Readiness()}
	s.Mean = readiness.Mean()
	if n := len(readiness.Xs); n > 1 {
		s.Variance = readiness.Variance() * float64(n-1) / float64(n)
	}

	return s, nil
}

// Rankings summarizes the readiness of every zone for subject (and grade,
// for elementary subjects). It needs only the records, no estimator.
func Rankings(records RecordSource, subject zone.Subject, grade int, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	zones, err := records.Zones(subject, grade)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Kindergarten Readiness Levels: %s", subject)
	if !subject.Kindergarten() {
		title = fmt.Sprintf("Elementary %s Levels by Percentage: Grade %d", subject, grade)
	}

	s, err := Summarize(title, zones)
	if err != nil {
		return nil, err
	}

	logger.Info("Ranked zones",
		"subject", subject,
		"grade", s.Grade,
		"mean_readiness", s.Mean,
		"variance", s.Variance)

	return s, nil
}

func (d *Driver) Rankings(subject zone.Subject, grade int) (*Summary, error) {
	return Rankings(d.records, subject, grade, d.logger)
}

// Rank is one line of a readiness ranking.
type Rank struct {
	Position  int
	Zone      int
	Readiness float64
	Size      int
}

// Ranking orders the zones from most to least ready.
func (s *Summary) Ranking() []Rank {
	readiness := s.Readiness()

	ranks := make([]Rank, len(s.Zones))
	for i, z := range s.Zones {
		ranks[i] = Rank{Zone: z, Readiness: readiness[i], Size: s.Sizes[i]}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Readiness > ranks[j].Readiness
	})
	for i := range ranks {
		ranks[i].Position = i + 1
	}
	return ranks
}
