package stats

import (
	"testing"
	"time"

	"github.com/sartorproj/gotsviz/timeseries"
)

func dailyTable(t *testing.T, values []float64) *timeseries.Table {
	t.Helper()
	start := time.Date(2016, time.May, 9, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, len(values))
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	table, err := timeseries.New(dates, values)
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}
	return table
}

func TestRemoveOutliersSmallSample(t *testing.T) {
	// Three rows: the range is too small to trigger the 2.5%/97.5% cut,
	// so the filtered table must equal the input exactly.
	table := dailyTable(t, []float64{1201, 2329, 1716})

	cleaned, bounds, err := RemoveOutliers(table)
	if err != nil {
		t.Fatalf("RemoveOutliers failed: %v", err)
	}

	if cleaned.Len() != table.Len() {
		t.Fatalf("Expected all %d rows kept, got %d", table.Len(), cleaned.Len())
	}
	for i := range table.Values {
		if cleaned.Values[i] != table.Values[i] {
			t.Errorf("Value at index %d: expected %f, got %f",
				i, table.Values[i], cleaned.Values[i])
		}
		if !cleaned.Dates[i].Equal(table.Dates[i]) {
			t.Errorf("Date at index %d changed", i)
		}
	}

	if bounds.Lower != 1201 || bounds.Upper != 2329 {
		t.Errorf("Unexpected bounds: %+v", bounds)
	}
}

func TestRemoveOutliersExtremeValue(t *testing.T) {
	// One extreme value in an otherwise uniform distribution is dropped.
	values := make([]float64, 51)
	for i := range values {
		values[i] = 1000
	}
	values[25] = 100000
	table := dailyTable(t, values)

	cleaned, bounds, err := RemoveOutliers(table)
	if err != nil {
		t.Fatalf("RemoveOutliers failed: %v", err)
	}

	if cleaned.Len() != 50 {
		t.Errorf("Expected 50 rows after dropping the extreme, got %d", cleaned.Len())
	}
	for i, v := range cleaned.Values {
		if v != 1000 {
			t.Errorf("Row %d: extreme value survived the filter: %f", i, v)
		}
	}
	if bounds.Upper != 1000 {
		t.Errorf("Expected upper bound 1000, got %f", bounds.Upper)
	}
}

func TestRemoveOutliersProperties(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64((i*37)%100 + 1) // deterministic shuffle of 1..100
	}
	table := dailyTable(t, values)

	cleaned, bounds, err := RemoveOutliers(table)
	if err != nil {
		t.Fatalf("RemoveOutliers failed: %v", err)
	}

	if cleaned.Len() > table.Len() {
		t.Errorf("Filtered table is larger than the input: %d > %d",
			cleaned.Len(), table.Len())
	}

	for i, v := range cleaned.Values {
		if v < bounds.Lower || v > bounds.Upper {
			t.Errorf("Row %d: value %f outside bounds [%f, %f]",
				i, v, bounds.Lower, bounds.Upper)
		}
	}

	// Every in-bounds input row must survive
	kept := 0
	for _, v := range table.Values {
		if bounds.Contains(v) {
			kept++
		}
	}
	if cleaned.Len() != kept {
		t.Errorf("Expected %d in-bounds rows kept, got %d", kept, cleaned.Len())
	}
}

func TestRemoveOutliersDeterministic(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = float64((i*13)%60 + 100)
	}

	first, b1, err := RemoveOutliers(dailyTable(t, values))
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, b2, err := RemoveOutliers(dailyTable(t, values))
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if b1 != b2 {
		t.Errorf("Bounds differ across runs: %+v vs %+v", b1, b2)
	}
	if first.Len() != second.Len() {
		t.Fatalf("Row counts differ across runs: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Values {
		if first.Values[i] != second.Values[i] {
			t.Errorf("Value at index %d differs across runs", i)
		}
	}
}

func TestRemoveOutliersDoesNotMutateInput(t *testing.T) {
	values := make([]float64, 51)
	for i := range values {
		values[i] = 1000
	}
	values[0] = 100000
	table := dailyTable(t, values)

	if _, _, err := RemoveOutliers(table); err != nil {
		t.Fatalf("RemoveOutliers failed: %v", err)
	}

	if table.Len() != 51 || table.Values[0] != 100000 {
		t.Error("RemoveOutliers mutated its input")
	}
}

func TestRemoveOutliersEmpty(t *testing.T) {
	table := &timeseries.Table{}
	if _, _, err := RemoveOutliers(table); err == nil {
		t.Error("Expected an error for an empty table, got nil")
	}
}
