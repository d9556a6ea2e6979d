package stats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingColumn indicates a row has no cell for a requested column.
var ErrMissingColumn = errors.New("missing column")

// Row is a single table row keyed by column header.
type Row map[string]string

// Get returns the trimmed cell for col, or "" when the column is absent.
func (r Row) Get(col string) string {
	return mustTrim(r[col])
}

// Int parses the cell for col as a whole number. Thousands separators and a
// trailing percent sign are ignored, and "-" reads as zero.
func (r Row) Int(col string) (int, error) {
	v, ok := r[col]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingColumn, col)
	}

	v = strings.TrimSuffix(strings.ReplaceAll(mustTrim(v), ",", ""), "%")
	if v == "-" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: could not parse '%s' into int", col, v)
	}
	return n, nil
}

func mustTrim(v string) string {
	return strings.Trim(v, " \n\t\r\ufeff")
}
