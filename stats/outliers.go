package stats

import (
	"errors"

	"github.com/sartorproj/gotsviz/timeseries"
)

// Tail fractions trimmed from each end of the value distribution.
const (
	lowerTail = 0.025
	upperTail = 0.975
)

// Bounds holds the value range retained by the outlier filter.
type Bounds struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies within the bounds, inclusive.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// RemoveOutliers returns a new table retaining only the rows whose value
// lies within the 2.5th and 97.5th percentile of the input, inclusive.
// The bounds are computed once over the full input table, which is never
// mutated.
func RemoveOutliers(t *timeseries.Table) (*timeseries.Table, Bounds, error) {
	if t.Len() == 0 {
		return nil, Bounds{}, errors.New("cannot filter an empty table")
	}

	b := Bounds{
		Lower: Quantile(t.Values, lowerTail),
		Upper: Quantile(t.Values, upperTail),
	}

	keep := make([]int, 0, t.Len())
	for i, v := range t.Values {
		if b.Contains(v) {
			keep = append(keep, i)
		}
	}
	return t.Select(keep), b, nil
}
