// Package plotmap renders healpix footprint maps to image files for quick
// visual checks of the assembled configuration.
package plotmap

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Liberation fonts register automatically on import
	_ "gonum.org/v1/plot/font/liberation"
)

// SavePNG renders a healpix map as an RA/Dec scatter colored by map value
// and writes it to path. The image format follows the file extension.
func SavePNG(ra, dec, values []float64, title, path string) error {
	if len(ra) != len(values) || len(dec) != len(values) {
		return fmt.Errorf("map length mismatch: ra=%d dec=%d values=%d", len(ra), len(dec), len(values))
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = "RA (deg)"
	p.Y.Label.Text = "Dec (deg)"
	p.X.Min, p.X.Max = 0, 360
	p.Y.Min, p.Y.Max = -90, 90

	pts := make(plotter.XYs, len(ra))
	for i := range ra {
		pts[i].X = ra[i]
		pts[i].Y = dec[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}

	vmax := floats.Max(values)
	if vmax <= 0 {
		vmax = 1
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		frac := values[i] / vmax
		if frac < 0 {
			frac = 0
		}
		c := color.RGBA{R: uint8(255 * frac), G: 40, B: uint8(255 * (1 - frac)), A: 255}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(1.5), Shape: draw.CircleGlyph{}}
	}
	p.Add(sc)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
