package charts

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style carries every rendering choice the chart functions make. Callers
// pass it explicitly; there is no package-level styling state.
type Style struct {
	Width     vg.Length
	Height    vg.Length
	TitleSize vg.Length
	BoxWidth  vg.Length
	LineWidth vg.Length
	LineColor color.RGBA

	// PaletteLevels is the number of color bands in heatmaps.
	PaletteLevels int
}

// DefaultStyle mirrors the proportions of the charts this tool replaces.
func DefaultStyle() Style {
	return Style{
		Width:         14 * vg.Inch,
		Height:        7 * vg.Inch,
		TitleSize:     vg.Points(16),
		BoxWidth:      vg.Points(20),
		LineWidth:     vg.Points(2),
		LineColor:     color.RGBA{R: 70, G: 130, B: 180, A: 255},
		PaletteLevels: 255,
	}
}
