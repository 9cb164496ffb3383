// Package chart renders the cleaned page-view table as PNG images.
//
// Three renderers share the same table and write to distinct files, so a
// caller may invoke them in any order:
//
//	chart.Line(cleaned, "line_plot.png")
//	chart.Bar(stats.MonthlyMeans(cleaned), "bar_plot.png")
//	chart.Box(cleaned, "box_plot.png")
//
// Line draws daily values against their dates. Bar draws the monthly
// averages clustered by year with a twelve-month legend. Box draws two
// Tukey box plots side by side: per-year distributions (trend) and
// per-month distributions in calendar order (seasonality).
//
// Rendering is deterministic: identical input produces identical image
// bytes. Output files are overwritten if present.
package chart
