package chart

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/gotsviz/timeseries"
)

// Line renders the value of each row against its date as a single red line
// and writes a 15x5 inch PNG to path.
func Line(t *timeseries.Table, path string) error {
	if t.Len() == 0 {
		return errors.New("cannot render an empty table")
	}

	p := plot.New()
	p.Title.Text = "Daily freeCodeCamp Forum Page Views 5/2016-12/2019"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Page Views"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}

	xys := make(plotter.XYs, t.Len())
	for i := range xys {
		xys[i].X = float64(t.Dates[i].Unix())
		xys[i].Y = t.Values[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.RGBA{R: 0xff, A: 0xff}
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)

	return p.Save(15*vg.Inch, 5*vg.Inch, path)
}
