package zone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubject(t *testing.T) {
	tests := []struct {
		in   string
		want Subject
	}{
		{"Interest", Interest},
		{"basic literacy", BasicLiteracy},
		{"advanced-literacy", AdvancedLiteracy},
		{"READING", Reading},
		{"math", Math},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSubject(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSubject("Science")
	var unknown *UnknownSelectorError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Science", unknown.Selector)
}

func TestSubjectKinds(t *testing.T) {
	for _, s := range []Subject{AdvancedLiteracy, BasicLiteracy, BasicNumeracy, Interest} {
		assert.True(t, s.Kindergarten(), s)
		assert.Equal(t, PolicySingle, s.Policy())
		assert.True(t, s.Layout().Percent)
	}
	for _, s := range []Subject{Reading, Math} {
		assert.False(t, s.Kindergarten(), s)
		assert.Equal(t, PolicySum, s.Policy())
		assert.Equal(t, DidNotTake, s.Layout().Excluded)
	}
	assert.Equal(t, "basic-numeracy", BasicNumeracy.Slug())
}

func TestSelectorsSource(t *testing.T) {
	sel := DefaultSelectors()

	src, err := sel.Source(Reading)
	require.NoError(t, err)
	assert.Equal(t, "i-ready-reading.csv", src)

	_, err = sel.Source(Math)
	var unknown *UnknownSelectorError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "no source configured", unknown.Reason)

	sel[Math] = "i-ready-math.csv"
	src, err = sel.Source(Math)
	require.NoError(t, err)
	assert.Equal(t, "i-ready-math.csv", src)

	assert.Len(t, sel.Locations(), 6)
}
