// Package timeseries provides the date-keyed table type and CSV loading.
//
// This package includes the Table type holding parallel date and value
// slices, along with functions for loading tables from CSV files and
// grouping values by calendar fields.
//
// # Loading from CSV
//
// Load a table from a CSV file with "date" and "value" columns:
//
//	table, err := timeseries.Load("fcc-forum-pageviews.csv", nil)
//
// Customize column names or the date format:
//
//	opts := timeseries.DefaultOptions()
//	opts.DateColumn = "day"
//	opts.ValueColumn = "views"
//	opts.DateFormat = "2006/01/02"
//	table, err := timeseries.Load("views.csv", opts)
//
// Loading is strict: a missing file, an unknown column name, a malformed
// date, or a non-numeric value is an error. Duplicate dates are kept as-is.
//
// # Grouping
//
// Partition the values by calendar fields for aggregation:
//
//	years, groups := table.GroupByYear()  // ascending years
//	byMonth := table.GroupByMonth()       // slot 0 = January
//
// # Subsets
//
// Build a subset preserving row order:
//
//	cleaned := table.Select([]int{0, 2, 5})
package timeseries
