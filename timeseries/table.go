package timeseries

import (
	"errors"
	"sort"
	"time"
)

// Table represents a date-keyed series of values. Dates and Values are
// parallel slices in file order; dates are not required to be unique or
// chronological.
type Table struct {
	Dates  []time.Time
	Values []float64
	Name   string
}

// New creates a table from explicit dates and values.
func New(dates []time.Time, values []float64) (*Table, error) {
	if len(dates) != len(values) {
		return nil, errors.New("dates and values must have the same length")
	}
	return &Table{
		Dates:  dates,
		Values: values,
	}, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Values)
}

// Year returns the calendar year of row i.
func (t *Table) Year(i int) int {
	return t.Dates[i].Year()
}

// Month returns the calendar month of row i.
func (t *Table) Month(i int) time.Month {
	return t.Dates[i].Month()
}

// Select returns a new table containing the rows at the given indices,
// preserving their order.
func (t *Table) Select(keep []int) *Table {
	dates := make([]time.Time, len(keep))
	values := make([]float64, len(keep))
	for j, i := range keep {
		dates[j] = t.Dates[i]
		values[j] = t.Values[i]
	}
	return &Table{
		Dates:  dates,
		Values: values,
		Name:   t.Name,
	}
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	dates := make([]time.Time, len(t.Dates))
	copy(dates, t.Dates)

	values := make([]float64, len(t.Values))
	copy(values, t.Values)

	return &Table{
		Dates:  dates,
		Values: values,
		Name:   t.Name,
	}
}

// Years returns the distinct years present in the table in ascending order.
func (t *Table) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, d := range t.Dates {
		if !seen[d.Year()] {
			seen[d.Year()] = true
			years = append(years, d.Year())
		}
	}
	sort.Ints(years)
	return years
}

// GroupByYear partitions the values by calendar year. It returns the
// distinct years in ascending order and, aligned with them, the values
// belonging to each year in row order.
func (t *Table) GroupByYear() ([]int, [][]float64) {
	years := t.Years()
	index := make(map[int]int, len(years))
	for i, y := range years {
		index[y] = i
	}

	groups := make([][]float64, len(years))
	for i, d := range t.Dates {
		j := index[d.Year()]
		groups[j] = append(groups[j], t.Values[i])
	}
	return years, groups
}

// GroupByMonth partitions the values by calendar month. Slot 0 holds
// January, slot 11 December; months absent from the data are empty slices.
func (t *Table) GroupByMonth() [12][]float64 {
	var groups [12][]float64
	for i, d := range t.Dates {
		m := int(d.Month()) - 1
		groups[m] = append(groups[m], t.Values[i])
	}
	return groups
}
