package chart

import (
	"errors"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sartorproj/gotsviz/timeseries"
)

// Box renders two Tukey box plots side by side in one 20x8 inch PNG: the
// value distribution per year on the left and per calendar month on the
// right. Months are ordered Jan through Dec regardless of the data's span;
// months without data get no box.
func Box(t *timeseries.Table, path string) error {
	if t.Len() == 0 {
		return errors.New("cannot render an empty table")
	}

	boxWidth := vg.Points(30)

	years, yearGroups := t.GroupByYear()
	yearPlot := plot.New()
	yearPlot.Title.Text = "Year-wise Box Plot (Trend)"
	yearPlot.X.Label.Text = "Year"
	yearPlot.Y.Label.Text = "Page Views"
	for i, vals := range yearGroups {
		b, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		yearPlot.Add(b)
	}
	yearLabels := make([]string, len(years))
	for i, y := range years {
		yearLabels[i] = strconv.Itoa(y)
	}
	yearPlot.NominalX(yearLabels...)

	monthGroups := t.GroupByMonth()
	monthPlot := plot.New()
	monthPlot.Title.Text = "Month-wise Box Plot (Seasonality)"
	monthPlot.X.Label.Text = "Month"
	monthPlot.Y.Label.Text = "Page Views"
	for m, vals := range monthGroups {
		if len(vals) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(boxWidth, float64(m), plotter.Values(vals))
		if err != nil {
			return err
		}
		monthPlot.Add(b)
	}
	monthPlot.NominalX(monthAbbrevs[:]...)

	img := vgimg.New(20*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX: vg.Points(15),
	}
	canvases := plot.Align([][]*plot.Plot{{yearPlot, monthPlot}}, tiles, dc)
	yearPlot.Draw(canvases[0][0])
	monthPlot.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
