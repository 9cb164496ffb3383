// Package stats provides the outlier filter and aggregation for page-view
// tables.
//
// # Outlier Filtering
//
// Trim the top and bottom 2.5% of the value distribution:
//
//	cleaned, bounds, err := stats.RemoveOutliers(table)
//	fmt.Printf("kept %d of %d rows in [%.0f, %.0f]\n",
//	    cleaned.Len(), table.Len(), bounds.Lower, bounds.Upper)
//
// The percentile bounds are computed once over the full input table using
// the empirical quantile convention, and the retained range is inclusive.
//
// # Monthly Aggregation
//
// Average the values per (year, month) for the bar chart:
//
//	grid := stats.MonthlyMeans(cleaned)
//	for yi, year := range grid.Years {
//	    jan := grid.Means[yi][0] // NaN if the year has no January rows
//	    _ = jan
//	    _ = year
//	}
package stats
