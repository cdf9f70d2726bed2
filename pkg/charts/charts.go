// Package charts renders the rainfall pipeline's PNG plots with gonum/plot.
package charts

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/wdm0006/monsoon/pkg/rainfall"
)

// MonthlyDistribution draws one box per calendar month over all observed
// rainfall values and saves it as a PNG.
func MonthlyDistribution(recs []rainfall.LongRecord, path string, st Style) error {
	byMonth := make(map[int]plotter.Values)
	for _, r := range recs {
		if r.Rainfall != nil {
			byMonth[r.MonthNum] = append(byMonth[r.MonthNum], *r.Rainfall)
		}
	}
	if len(byMonth) == 0 {
		return fmt.Errorf("no observed rainfall to plot")
	}

	p := plot.New()
	p.Title.Text = "Monthly Rainfall Distribution"
	p.Title.TextStyle.Font.Size = st.TitleSize
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Rainfall (mm)"

	for m := 1; m <= 12; m++ {
		vals := byMonth[m]
		if len(vals) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(st.BoxWidth, float64(m-1), vals)
		if err != nil {
			return fmt.Errorf("boxplot month %d: %w", m, err)
		}
		p.Add(box)
	}
	p.NominalX(rainfall.Months...)

	return p.Save(st.Width, st.Height, path)
}

// YearlyTrend draws total rainfall per year (summed over subdivisions and
// months) as a line with point markers.
func YearlyTrend(recs []rainfall.LongRecord, path string, st Style) error {
	totals := make(map[int]float64)
	for _, r := range recs {
		if r.Rainfall != nil {
			totals[r.Year] += *r.Rainfall
		}
	}
	if len(totals) == 0 {
		return fmt.Errorf("no observed rainfall to plot")
	}
	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	pts := make(plotter.XYs, len(years))
	for i, y := range years {
		pts[i].X = float64(y)
		pts[i].Y = totals[y]
	}

	p := plot.New()
	p.Title.Text = "Total Yearly Rainfall"
	p.Title.TextStyle.Font.Size = st.TitleSize
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Total Rainfall (mm)"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("trend line: %w", err)
	}
	line.Color = st.LineColor
	line.Width = st.LineWidth
	points.Color = st.LineColor
	p.Add(line, points, plotter.NewGrid())

	return p.Save(st.Width, st.Height, path)
}

// MonthlyHeatmap draws mean rainfall per (year, month) cell, years on the
// vertical axis and months on the horizontal. Cells with no observations are
// left blank.
func MonthlyHeatmap(recs []rainfall.LongRecord, path string, st Style) error {
	type cell struct{ year, month int }
	sums := make(map[cell]float64)
	counts := make(map[cell]int)
	yearSet := make(map[int]bool)
	for _, r := range recs {
		yearSet[r.Year] = true
		if r.Rainfall == nil {
			continue
		}
		k := cell{r.Year, r.MonthNum}
		sums[k] += *r.Rainfall
		counts[k]++
	}
	if len(sums) == 0 {
		return fmt.Errorf("no observed rainfall to plot")
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	grid := &rainGrid{years: years}
	grid.z = make([][]float64, len(years))
	min, max := math.Inf(1), math.Inf(-1)
	for i, y := range years {
		grid.z[i] = make([]float64, 12)
		for m := 1; m <= 12; m++ {
			k := cell{y, m}
			if counts[k] == 0 {
				grid.z[i][m-1] = math.NaN()
				continue
			}
			v := sums[k] / float64(counts[k])
			grid.z[i][m-1] = v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Monthly Rainfall Heatmap"
	p.Title.TextStyle.Font.Size = st.TitleSize
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Year"

	pal := palette.Heat(st.PaletteLevels, 1)
	hm := plotter.NewHeatMap(grid, pal)
	if !math.IsInf(min, 1) {
		hm.Min, hm.Max = min, max
	}
	p.Add(hm)
	p.NominalX(rainfall.Months...)

	return p.Save(st.Width, st.Height, path)
}

// rainGrid adapts the year-by-month matrix to plotter.GridXYZ.
type rainGrid struct {
	years []int
	z     [][]float64 // [year][month]
}

func (g *rainGrid) Dims() (int, int)   { return 12, len(g.years) }
func (g *rainGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g *rainGrid) X(c int) float64    { return float64(c) }
func (g *rainGrid) Y(r int) float64    { return float64(g.years[r]) }
