package zone

import (
	"fmt"
	"strconv"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/stats"
)

// Policy decides how matching rows accumulate into a record.
type Policy int

const (
	// PolicySingle keeps the first matching row; one row per zone.
	PolicySingle Policy = iota
	// PolicySum adds the counts of every matching row, e.g. one row per
	// school in the zone.
	PolicySum
)

// Published percentages are rounded per level, so a row may sum to 101.
const percentRounding = 1

// Predicate selects the rows folded into a record.
type Predicate func(row stats.Row) bool

// MatchZone matches rows of zone and, when grade is non-zero, of grade.
func MatchZone(zone, grade int) Predicate {
	return func(row stats.Row) bool {
		if !cellEquals(row, ZoneColumn, zone) {
			return false
		}
		return grade == 0 || cellEquals(row, GradeColumn, grade)
	}
}

func cellEquals(row stats.Row, col string, want int) bool {
	v, err := strconv.Atoi(row.Get(col))
	return err == nil && v == want
}

// Fold accumulates the rows matching match into a record with the given
// layout. Every matching row must satisfy the record invariant on its own.
// The returned record has Rows == 0 when nothing matched.
func Fold(rows []stats.Row, match Predicate, policy Policy, layout *Layout) (Record, error) {
	rec := Record{
		Layout: layout,
		Counts: make([]int, len(layout.Levels)),
	}

	for _, row := range rows {
		if !match(row) {
			continue
		}

		size, counts, err := parseRow(row, layout)
		if err != nil {
			zone, _ := strconv.Atoi(row.Get(ZoneColumn))
			return Record{}, &RecordError{Zone: zone, Err: err}
		}

		rec.Rows++
		if policy == PolicySingle && rec.Rows > 1 {
			continue
		}

		rec.Size += size
		for i, c := range counts {
			rec.Counts[i] += c
		}
	}

	return rec, nil
}

func parseRow(row stats.Row, layout *Layout) (size int, counts []int, err error) {
	size, err = row.Int(SizeColumn)
	if err != nil {
		return 0, nil, err
	}
	if size < 0 {
		return 0, nil, fmt.Errorf("negative %s %d", SizeColumn, size)
	}

	counted := 0
	counts = make([]int, len(layout.Levels))
	for i, level := range layout.Levels {
		c, err := row.Int(level)
		if err != nil {
			return 0, nil, err
		}
		if c < 0 {
			return 0, nil, fmt.Errorf("negative %q count %d", level, c)
		}
		if layout.Percent && c > 100 {
			return 0, nil, fmt.Errorf("%q percentage %d above 100", level, c)
		}
		if level != layout.Excluded {
			counted += c
		}
		counts[i] = c
	}

	if layout.Percent && counted > 100+percentRounding {
		return 0, nil, fmt.Errorf("level percentages sum to %d, above 100", counted)
	}
	if !layout.Percent && counted > size {
		return 0, nil, fmt.Errorf("level counts %d exceed %s %d", counted, SizeColumn, size)
	}

	return size, counts, nil
}
