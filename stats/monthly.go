package stats

import (
	"math"

	"github.com/sartorproj/gotsviz/timeseries"
)

// Grid holds the mean value per (year, month). Rows follow Years in
// ascending order; columns are calendar months, slot 0 = January. Cells
// with no rows in that (year, month) are NaN, not zero.
type Grid struct {
	Years []int
	Means [][12]float64
}

// MonthlyMeans groups the table by (year, month) and averages the value
// within each group.
func MonthlyMeans(t *timeseries.Table) *Grid {
	years := t.Years()
	index := make(map[int]int, len(years))
	for i, y := range years {
		index[y] = i
	}

	cells := make([][12][]float64, len(years))
	for i, d := range t.Dates {
		yi := index[d.Year()]
		m := int(d.Month()) - 1
		cells[yi][m] = append(cells[yi][m], t.Values[i])
	}

	g := &Grid{
		Years: years,
		Means: make([][12]float64, len(years)),
	}
	for yi := range cells {
		for m := 0; m < 12; m++ {
			if len(cells[yi][m]) == 0 {
				g.Means[yi][m] = math.NaN()
				continue
			}
			g.Means[yi][m] = Mean(cells[yi][m])
		}
	}
	return g
}
