package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/bootstrap"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

func TestCompareKindergarten(t *testing.T) {
	d := newTestDriver(tableLoader{"edi-interest.csv": interestRows()}, 1)

	c, err := d.Compare(zone.Interest, 1, 9, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c.ZoneA)
	assert.Equal(t, 9, c.ZoneB)
	assert.InDelta(t, 0.4, c.Result.Observed, 1e-12)
	assert.Less(t, c.PValue, 0.01)
	assert.True(t, c.Significant(d.Threshold()))

	same, err := d.Compare(zone.Interest, 2, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, same.PValue)
	assert.False(t, same.Significant(d.Threshold()))
}

func TestCompareElementary(t *testing.T) {
	d := newTestDriver(tableLoader{"i-ready-reading.csv": {
		readingRow(3, 3, 60, 10, 20, 10, 10, 5, 5),
		readingRow(3, 3, 50, 10, 10, 10, 10, 5, 5),
		readingRow(9, 3, 110, 10, 15, 30, 30, 20, 5),
	}}, 1)

	c, err := d.Compare(zone.Reading, 3, 9, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Grade)
	assert.InDelta(t, 50.0/100.0-25.0/105.0, c.Result.Observed, 1e-12)
	assert.Less(t, c.PValue, 0.01)
}

func TestCompareErrors(t *testing.T) {
	d := newTestDriver(tableLoader{"edi-interest.csv": append(interestRows(7), kinderRow(7, 0, 0, 0, 0))}, 1)

	_, err := d.Compare(zone.Interest, 1, 7, 0)
	assert.ErrorIs(t, err, bootstrap.ErrEmptyPopulation)

	_, err = d.Compare(zone.Interest, 1, 16, 0)
	var rangeErr *zone.OutOfRangeError
	assert.True(t, errors.As(err, &rangeErr))

	_, err = d.Compare(zone.Math, 1, 2, 3)
	var unknown *zone.UnknownSelectorError
	assert.True(t, errors.As(err, &unknown))
}

func TestCompareAll(t *testing.T) {
	for _, workers := range []int{1, 4} {
		d := newTestDriver(tableLoader{"edi-interest.csv": interestRows()}, workers)

		sweep, err := d.CompareAll(context.Background(), zone.Interest, 0)
		require.NoError(t, err)

		assert.Len(t, sweep.Comparisons, 105)
		assert.Empty(t, sweep.Failures)

		// Pairs within the 80% group and within the 40% group.
		same := sweep.NotSignificant()
		assert.Len(t, same, 10+45)
		for _, c := range same {
			assert.Equal(t, c.ZoneA <= 5, c.ZoneB <= 5, "pair (%d, %d)", c.ZoneA, c.ZoneB)
		}

		first, last := sweep.Comparisons[0], sweep.Comparisons[104]
		assert.Equal(t, [2]int{1, 2}, [2]int{first.ZoneA, first.ZoneB})
		assert.Equal(t, [2]int{14, 15}, [2]int{last.ZoneA, last.ZoneB})
	}
}

func TestCompareAllRecordsFailures(t *testing.T) {
	d := newTestDriver(tableLoader{"edi-interest.csv": interestRows(15)}, 3)

	sweep, err := d.CompareAll(context.Background(), zone.Interest, 0)
	require.NoError(t, err)

	assert.Len(t, sweep.Comparisons, 91)
	require.Len(t, sweep.Failures, 14)
	for i, f := range sweep.Failures {
		assert.Equal(t, i+1, f.ZoneA)
		assert.Equal(t, 15, f.ZoneB)

		var missing *zone.MissingRecordError
		assert.True(t, errors.As(f.Err, &missing))
	}
}

func TestCompareAllInvalidGrade(t *testing.T) {
	loader := tableLoader{"i-ready-reading.csv": {readingRow(3, 3, 60, 10, 20, 10, 10, 5, 5)}}
	d := newTestDriver(loader, 2)

	for _, grade := range []int{0, 2, 6} {
		sweep, err := d.CompareAll(context.Background(), zone.Reading, grade)
		assert.Nil(t, sweep)

		var rangeErr *zone.OutOfRangeError
		require.True(t, errors.As(err, &rangeErr), "grade %d", grade)
		assert.Equal(t, "grade", rangeErr.Field)
		assert.Equal(t, grade, rangeErr.Value)
	}
}

func TestCompareAllCancelled(t *testing.T) {
	d := newTestDriver(tableLoader{"edi-interest.csv": interestRows()}, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.CompareAll(ctx, zone.Interest, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDriverDefaults(t *testing.T) {
	d := NewDriver(zone.NewAggregator(tableLoader{}, zone.Selectors{}, nil), bootstrap.NewEstimator(), Options{})
	assert.Equal(t, DefaultThreshold, d.Threshold())
	assert.Equal(t, 1, d.workers)

	_, err := d.Compare(zone.Interest, 1, 2, 0)
	var unknown *zone.UnknownSelectorError
	assert.True(t, errors.As(err, &unknown))

}
