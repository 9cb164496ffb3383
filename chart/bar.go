package chart

import (
	"errors"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/gotsviz/stats"
)

// Bar renders the monthly-average grid as a clustered bar chart and writes
// a 10x8 inch PNG to path. Each cluster is a year; each cluster holds one
// bar per calendar month. The legend always lists all twelve months in
// calendar order, whether or not a month has data. NaN cells draw as
// zero-height bars.
func Bar(g *stats.Grid, path string) error {
	if len(g.Years) == 0 {
		return errors.New("cannot render an empty grid")
	}

	p := plot.New()
	p.X.Label.Text = "Years"
	p.Y.Label.Text = "Average Page Views"
	p.Legend.Add("Months")
	p.Legend.Top = true
	p.Legend.Left = true

	w := vg.Points(4)
	for m := 0; m < 12; m++ {
		vals := make(plotter.Values, len(g.Years))
		for yi := range g.Years {
			if v := g.Means[yi][m]; !math.IsNaN(v) {
				vals[yi] = v
			}
		}

		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return err
		}
		bars.Color = plotutil.Color(m)
		bars.LineStyle.Width = vg.Length(0)
		// Center the 12-bar cluster on each year's nominal position.
		bars.Offset = (vg.Length(m) - 5.5) * w

		p.Add(bars)
		p.Legend.Add(monthNames[m], bars)
	}

	labels := make([]string, len(g.Years))
	for i, y := range g.Years {
		labels[i] = strconv.Itoa(y)
	}
	p.NominalX(labels...)

	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}
