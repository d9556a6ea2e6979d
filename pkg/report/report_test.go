package report

import (
	"errors"
	"strconv"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/bootstrap"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/stats"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

type tableLoader map[string][]stats.Row

func (l tableLoader) Load(source string) ([]stats.Row, error) {
	rows, ok := l[source]
	if !ok {
		return nil, errors.New("no such source")
	}
	return rows, nil
}

func kinderRow(z, size, ready, middle, notReady int) stats.Row {
	return stats.Row{
		zone.ZoneColumn: strconv.Itoa(z),
		zone.SizeColumn: strconv.Itoa(size),
		zone.Ready:      strconv.Itoa(ready),
		zone.Middle:     strconv.Itoa(middle),
		zone.NotReady:   strconv.Itoa(notReady),
	}
}

func readingRow(z, grade, size int, levels ...int) stats.Row {
	row := stats.Row{
		zone.ZoneColumn:  strconv.Itoa(z),
		zone.GradeColumn: strconv.Itoa(grade),
		zone.SizeColumn:  strconv.Itoa(size),
	}
	for i, l := range zone.ElementaryLayout.Levels {
		row[l] = strconv.Itoa(levels[i])
	}
	return row
}

// interestRows gives zones 1-5 80% readiness and zones 6-15 40%, except
// for the zones in skip.
func interestRows(skip ...int) []stats.Row {
	var rows []stats.Row
	for z := zone.MinZone; z <= zone.MaxZone; z++ {
		skipped := false
		for _, s := range skip {
			skipped = skipped || s == z
		}
		if skipped {
			continue
		}
		if z <= 5 {
			rows = append(rows, kinderRow(z, 100, 80, 10, 10))
		} else {
			rows = append(rows, kinderRow(z, 100, 40, 30, 30))
		}
	}
	return rows
}

func newTestDriver(loader tableLoader, workers int) *Driver {
	agg := zone.NewAggregator(loader, zone.DefaultSelectors(), nil)
	est := bootstrap.NewEstimator(bootstrap.WithTrials(2000), bootstrap.WithSeed(17))
	return NewDriver(agg, est, Options{Workers: workers})
}
