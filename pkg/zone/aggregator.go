// Package zone aggregates survey tables into per-zone readiness records.
package zone

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/stats"
)

const (
	MinZone  = 1
	MaxZone  = 15
	MinGrade = 3
	MaxGrade = 5
)

// TableLoader reads the rows of a source table.
type TableLoader interface {
	Load(source string) ([]stats.Row, error)
}

// Query selects a zone, and for elementary subjects a grade. Grade is
// ignored for kindergarten subjects.
type Query struct {
	Subject Subject
	Zone    int
	Grade   int
}

// Validate checks the zone and grade domains.
func (q Query) Validate() error {
	if err := validateZone(q.Zone); err != nil {
		return err
	}
	if !q.Subject.Kindergarten() {
		return validateGrade(q.Grade)
	}
	return nil
}

func validateZone(zone int) error {
	if zone < MinZone || zone > MaxZone {
		return &OutOfRangeError{Field: "zone", Value: zone, Min: MinZone, Max: MaxZone}
	}
	return nil
}

func validateGrade(grade int) error {
	if grade < MinGrade || grade > MaxGrade {
		return &OutOfRangeError{Field: "grade", Value: grade, Min: MinGrade, Max: MaxGrade}
	}
	return nil
}

// Aggregator turns source tables into zone records. Each source is loaded
// once and reused; an Aggregator is safe for concurrent use.
type Aggregator struct {
	loader    TableLoader
	selectors Selectors
	logger    *slog.Logger

	mu     sync.Mutex
	tables map[string][]stats.Row
}

func NewAggregator(loader TableLoader, selectors Selectors, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		loader:    loader,
		selectors: selectors,
		logger:    logger,
		tables:    make(map[string][]stats.Row),
	}
}

// Aggregate returns the record of a single zone.
func (a *Aggregator) Aggregate(q Query) (Record, error) {
	if err := q.Validate(); err != nil {
		return Record{}, err
	}

	rows, err := a.rows(q.Subject)
	if err != nil {
		return Record{}, err
	}

	return a.fold(rows, q)
}

// AggregatePair returns the records of two zones from a single load of the
// subject's table.
func (a *Aggregator) AggregatePair(subject Subject, zoneA, zoneB, grade int) (Record, Record, error) {
	qa := Query{Subject: subject, Zone: zoneA, Grade: grade}
	qb := Query{Subject: subject, Zone: zoneB, Grade: grade}
	if err := qa.Validate(); err != nil {
		return Record{}, Record{}, err
	}
	if err := qb.Validate(); err != nil {
		return Record{}, Record{}, err
	}

	rows, err := a.rows(subject)
	if err != nil {
		return Record{}, Record{}, err
	}

	ra, err := a.fold(rows, qa)
	if err != nil {
		return Record{}, Record{}, err
	}
	rb, err := a.fold(rows, qb)
	if err != nil {
		return Record{}, Record{}, err
	}
	return ra, rb, nil
}

// Zones returns the records of every zone, in zone order.
func (a *Aggregator) Zones(subject Subject, grade int) ([]Record, error) {
	if err := (Query{Subject: subject, Zone: MinZone, Grade: grade}).Validate(); err != nil {
		return nil, err
	}

	rows, err := a.rows(subject)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, MaxZone-MinZone+1)
	for z := MinZone; z <= MaxZone; z++ {
		rec, err := a.fold(rows, Query{Subject: subject, Zone: z, Grade: grade})
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (a *Aggregator) fold(rows []stats.Row, q Query) (Record, error) {
	grade := q.Grade
	if q.Subject.Kindergarten() {
		grade = 0
	}

	rec, err := Fold(rows, MatchZone(q.Zone, grade), q.Subject.Policy(), q.Subject.Layout())
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", q.Subject, err)
	}
	if !rec.Found() {
		return Record{}, &MissingRecordError{Subject: q.Subject, Zone: q.Zone, Grade: grade}
	}
	if q.Subject.Policy() == PolicySingle && rec.Rows > 1 {
		a.logger.Warn("Duplicate zone rows, keeping the first",
			"subject", q.Subject, "zone", q.Zone, "rows", rec.Rows)
	}

	rec.Subject = q.Subject
	rec.Zone = q.Zone
	rec.Grade = grade
	return rec, nil
}

func (a *Aggregator) rows(subject Subject) ([]stats.Row, error) {
	source, err := a.selectors.Source(subject)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if rows, ok := a.tables[source]; ok {
		return rows, nil
	}

	rows, err := a.loader.Load(source)
	if err != nil {
		return nil, fmt.Errorf("load %s source: %w", subject, err)
	}
	a.logger.Info("Loaded source table", "subject", subject, "source", source, "rows", len(rows))

	a.tables[source] = rows
	return rows, nil
}
