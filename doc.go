// Package gotsviz renders the freeCodeCamp forum page-view dataset as a set
// of static charts.
//
// The pipeline reads a daily page-view CSV file, removes statistical outliers
// by trimming values outside the central 95% of the distribution, and renders
// three views of the cleaned data: a line chart of daily views, a clustered
// bar chart of monthly averages per year, and a pair of box plots showing the
// yearly trend and monthly seasonality.
//
// # Quick Start
//
// Load, filter, and render:
//
//	table, _ := timeseries.Load("fcc-forum-pageviews.csv", nil)
//	cleaned, bounds, _ := stats.RemoveOutliers(table)
//	chart.Line(cleaned, "line_plot.png")
//	chart.Bar(stats.MonthlyMeans(cleaned), "bar_plot.png")
//	chart.Box(cleaned, "box_plot.png")
//
// # Packages
//
// The module is organized into the following packages:
//
//   - timeseries: date-keyed table type and CSV loading
//   - stats: quantile computation, outlier filtering, monthly aggregation
//   - chart: line, bar, and box plot rendering
//
// The cmd/pageviews command wires the packages into the complete pipeline.
package gotsviz
