package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/stats"
)

func TestProportionsExcludeNonParticipants(t *testing.T) {
	rows := []stats.Row{readingRow(5, 3, 100, 20, 54, 10, 4, 2, 10)}

	rec, err := Fold(rows, MatchZone(5, 3), PolicySum, &ElementaryLayout)
	require.NoError(t, err)
	assert.Equal(t, 90, rec.Participants())

	shares, err := rec.Proportions()
	require.NoError(t, err)
	assert.InDelta(t, 54.0/90.0, shares[EarlyOnGrade], 1e-12)
	assert.InDelta(t, 20.0/90.0, shares[MidAboveGrade], 1e-12)
	assert.InDelta(t, 10.0/90.0, shares[DidNotTake], 1e-12)
}

func TestProportionsPercentages(t *testing.T) {
	rec := Record{Zone: 1, Size: 80, Layout: &KindergartenLayout, Counts: []int{37, 33, 30}}

	shares, err := rec.Proportions()
	require.NoError(t, err)
	assert.InDelta(t, 0.37, shares[Ready], 1e-12)
	assert.InDelta(t, 0.30, shares[NotReady], 1e-12)
}

func TestProportionsNoParticipants(t *testing.T) {
	rec := Record{Zone: 12, Size: 10, Layout: &ElementaryLayout, Counts: []int{0, 0, 0, 0, 0, 10}}

	_, err := rec.Proportions()
	assert.ErrorIs(t, err, ErrNoParticipants)

	_, _, err = rec.Breakdown()
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestBreakdown(t *testing.T) {
	t.Run("kindergarten levels normalised", func(t *testing.T) {
		rec := Record{Layout: &KindergartenLayout, Counts: []int{50, 30, 21}}

		categories, shares, err := rec.Breakdown()
		require.NoError(t, err)
		assert.Equal(t, []string{Ready, Middle, NotReady}, categories)
		assert.InDelta(t, 1.0, shares[0]+shares[1]+shares[2], 1e-12)
		assert.InDelta(t, 50.0/101.0, shares[0], 1e-12)
	})

	t.Run("elementary ready split", func(t *testing.T) {
		rec := Record{Size: 100, Layout: &ElementaryLayout, Counts: []int{20, 40, 10, 10, 10, 10}}

		categories, shares, err := rec.Breakdown()
		require.NoError(t, err)
		assert.Equal(t, []string{Ready, NotReady}, categories)
		assert.InDelta(t, 60.0/90.0, shares[0], 1e-12)
		assert.InDelta(t, 30.0/90.0, shares[1], 1e-12)
	})
}

func TestFoldPolicies(t *testing.T) {
	rows := []stats.Row{
		kinderRow(6, 90, 40, 30, 30),
		kinderRow(6, 70, 50, 25, 25),
	}

	single, err := Fold(rows, MatchZone(6, 0), PolicySingle, &KindergartenLayout)
	require.NoError(t, err)
	assert.Equal(t, 2, single.Rows)
	assert.Equal(t, 90, single.Size)
	assert.Equal(t, 40, single.Ready())

	summed, err := Fold(rows, MatchZone(6, 0), PolicySum, &KindergartenLayout)
	require.NoError(t, err)
	assert.Equal(t, 160, summed.Size)

	none, err := Fold(rows, MatchZone(7, 0), PolicySum, &KindergartenLayout)
	require.NoError(t, err)
	assert.False(t, none.Found())
}

func TestMatchZone(t *testing.T) {
	row := stats.Row{ZoneColumn: " 04", GradeColumn: "5"}

	assert.True(t, MatchZone(4, 0)(row))
	assert.True(t, MatchZone(4, 5)(row))
	assert.False(t, MatchZone(4, 3)(row))
	assert.False(t, MatchZone(14, 0)(row))
	assert.False(t, MatchZone(1, 0)(stats.Row{ZoneColumn: "one"}))
}
