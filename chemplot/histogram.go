/*
 * histogram.go, part of redint
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemplot draws histograms of the values of primitive internal coordinates.
package chemplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/rmera/redint"
	v3 "github.com/rmera/redint/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Values returns the values of the primitives, grouped by kind. Bonds are given
//in Angstrom, bends and torsions in degrees. Linear bends are dimensionless.
func Values(prims []redint.Primitive, coords *v3.Matrix) map[redint.Kind][]float64 {
	ret := make(map[redint.Kind][]float64)
	for _, p := range prims {
		v := p.Calculate(coords)
		switch p.Kind() {
		case redint.KindStretch:
			v *= redint.Bohr2Ang
		case redint.KindBend, redint.KindTorsion:
			v *= 180 / math.Pi
		}
		ret[p.Kind()] = append(ret[p.Kind()], v)
	}
	return ret
}

//Label returns the x-axis label for the values of a given kind of primitive.
func Label(k redint.Kind) string {
	switch k {
	case redint.KindStretch:
		return "Bond length (A)"
	case redint.KindBend:
		return "Angle (deg)"
	case redint.KindTorsion:
		return "Dihedral (deg)"
	}
	return "Value"
}

//Histogram returns a plot with a histogram of the values, with the given number of bins.
//key and steps are used to pick the color of the bars.
func Histogram(values []float64, bins int, title, xlabel string, key, steps int) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("chemplot: Histogram: no values to plot")
	}
	if bins < 1 {
		bins = 1
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, fmt.Errorf("chemplot: Histogram: %w", err)
	}
	r, g, b := colors(key, steps)
	h.FillColor = color.RGBA{R: r, G: g, B: b, A: 255}
	p.Add(h)
	p.Add(plotter.NewGrid())
	return p, nil
}

//kinds in the order they are plotted.
var kinds = []redint.Kind{redint.KindStretch, redint.KindBend, redint.KindLinearBend, redint.KindTorsion}

//SaveHistograms writes one PNG histogram for each kind of primitive present in prims,
//named prefix_Kind.png (for instance, prefix_Bend.png). It returns the names of the
//files written.
func SaveHistograms(prims []redint.Primitive, coords *v3.Matrix, bins int, prefix string) ([]string, error) {
	vals := Values(prims, coords)
	names := make([]string, 0, len(vals))
	for i, k := range kinds {
		v, ok := vals[k]
		if !ok {
			continue
		}
		p, err := Histogram(v, bins, fmt.Sprintf("%s (%d)", k, len(v)), Label(k), i, len(kinds))
		if err != nil {
			return names, err
		}
		name := fmt.Sprintf("%s_%s.png", prefix, k)
		if err := p.Save(5*vg.Inch, 4*vg.Inch, name); err != nil {
			return names, fmt.Errorf("chemplot: SaveHistograms: %w", err)
		}
		names = append(names, name)
	}
	return names, nil
}

//WriteHistogram writes the histogram of the values of the primitives of kind k to w,
//in the given format ("png", "svg", "pdf"...).
func WriteHistogram(w io.Writer, prims []redint.Primitive, coords *v3.Matrix, k redint.Kind, bins int, format string) error {
	vals := Values(prims, coords)
	p, err := Histogram(vals[k], bins, k.String(), Label(k), int(k), len(kinds))
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(5*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("chemplot: WriteHistogram: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
