// Command pageviews renders the freeCodeCamp forum page-view charts.
//
// It reads fcc-forum-pageviews.csv from the working directory, removes
// outliers outside the central 95% of the value distribution, and writes
// line_plot.png, bar_plot.png, and box_plot.png, overwriting any previous
// output. A summary of the monthly averages is printed to stdout.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/sartorproj/gotsviz/chart"
	"github.com/sartorproj/gotsviz/stats"
	"github.com/sartorproj/gotsviz/timeseries"
)

const (
	inputCSV = "fcc-forum-pageviews.csv"
	linePNG  = "line_plot.png"
	barPNG   = "bar_plot.png"
	boxPNG   = "box_plot.png"
)

func main() {
	if err := run(); err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	table, err := timeseries.Load(inputCSV, nil)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	slog.Info("loaded page views", "rows", table.Len())

	cleaned, bounds, err := stats.RemoveOutliers(table)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	slog.Info("filtered outliers",
		"kept", cleaned.Len(),
		"dropped", table.Len()-cleaned.Len(),
		"lower", bounds.Lower,
		"upper", bounds.Upper)

	if err := chart.Line(cleaned, linePNG); err != nil {
		return fmt.Errorf("line plot: %w", err)
	}
	slog.Info("wrote chart", "file", linePNG)

	grid := stats.MonthlyMeans(cleaned)
	if err := chart.Bar(grid, barPNG); err != nil {
		return fmt.Errorf("bar plot: %w", err)
	}
	slog.Info("wrote chart", "file", barPNG)

	if err := chart.Box(cleaned, boxPNG); err != nil {
		return fmt.Errorf("box plot: %w", err)
	}
	slog.Info("wrote chart", "file", boxPNG)

	fmt.Println("\nAverage page views per month:")
	printGrid(os.Stdout, grid)
	return nil
}

// printGrid writes the monthly-average grid as a console table, one row per
// year and one column per calendar month. Months with no data are blank.
func printGrid(w io.Writer, g *stats.Grid) {
	months := []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(append([]string{"Year"}, months...))
	for yi, year := range g.Years {
		row := make([]string, 0, 13)
		row = append(row, strconv.Itoa(year))
		for m := 0; m < 12; m++ {
			v := g.Means[yi][m]
			if math.IsNaN(v) {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', 1, 64))
		}
		tw.Append(row)
	}
	tw.Render()
}
