/*
 * plot.go, part of gomagres.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

/*Package magresplot produces png plots of the quantities derived from magres
tensors: histograms and stick spectra, optionally broadened.*/
package magresplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/rmera/gomagres"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is a named set of values, such as the chemical shifts of one species.
type Series struct {
	Name   string
	Values []float64
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func save(p *plot.Plot, plotname string) error {
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("magresplot: saving %s: %w", filename, err)
	}
	return nil
}

// Histogram plots a histogram of values with the given number of bins, and
// saves it to plotname.png.
func Histogram(values []float64, bins int, title, xlabel, plotname string) error {
	if len(values) == 0 {
		return fmt.Errorf("magresplot.Histogram: no values to plot")
	}
	if bins <= 0 {
		bins = 10
	}
	p := basicPlot(title, xlabel, "Count")
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("magresplot.Histogram: %w", err)
	}
	r, g, b := colors(0, 1)
	h.FillColor = color.RGBA{R: r, G: g, B: b, A: 255}
	p.Add(h)
	return save(p, plotname)
}

// Sticks plots each value of each series as a vertical line of height 1,
// with one color per series, and saves it to plotname.png. If inverted is true the
// x axis grows to the left, as is usual for chemical shifts.
func Sticks(series []Series, inverted bool, title, xlabel, plotname string) error {
	if len(series) == 0 {
		return fmt.Errorf("magresplot.Sticks: no series to plot")
	}
	p := basicPlot(title, xlabel, "Intensity")
	for key, s := range series {
		vals := append([]float64(nil), s.Values...)
		sort.Float64s(vals)
		pts := make(plotter.XYs, 0, 3*len(vals))
		for _, v := range vals {
			//sticks are joined along the baseline
			pts = append(pts, plotter.XY{X: v, Y: 0}, plotter.XY{X: v, Y: 1}, plotter.XY{X: v, Y: 0})
		}
		l, err := newLine(pts, key, len(series))
		if err != nil {
			return fmt.Errorf("magresplot.Sticks: %s: %w", s.Name, err)
		}
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	if inverted {
		invert(p)
	}
	return save(p, plotname)
}

// Spectrum plots the Lorentzian broadened spectrum of each series, with
// the given full width at half maximum, and saves it to plotname.png.
func Spectrum(series []Series, fwhm float64, points int, inverted bool, title, xlabel, plotname string) error {
	if len(series) == 0 {
		return fmt.Errorf("magresplot.Spectrum: no series to plot")
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 0) {
		return fmt.Errorf("magresplot.Spectrum: no values to plot")
	}
	lo -= 5 * fwhm
	hi += 5 * fwhm
	p := basicPlot(title, xlabel, "Intensity")
	for key, s := range series {
		l, err := newLine(Broaden(s.Values, fwhm, lo, hi, points), key, len(series))
		if err != nil {
			return fmt.Errorf("magresplot.Spectrum: %s: %w", s.Name, err)
		}
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	if inverted {
		invert(p)
	}
	return save(p, plotname)
}

// Broaden returns the sum of Lorentzian functions of height 1 and the given
// full width at half maximum centered at each value, sampled at points
// equally spaced points between lo and hi.
func Broaden(values []float64, fwhm, lo, hi float64, points int) plotter.XYs {
	if points < 2 {
		points = 2
	}
	hw := fwhm / 2
	step := (hi - lo) / float64(points-1)
	ret := make(plotter.XYs, points)
	for i := range ret {
		x := lo + float64(i)*step
		ret[i].X = x
		for _, v := range values {
			d := (x - v) / hw
			ret[i].Y += 1 / (1 + d*d)
		}
	}
	return ret
}

func newLine(pts plotter.XYs, key, steps int) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	r, g, b := colors(key, steps)
	l.Color = color.RGBA{R: r, G: g, B: b, A: 255}
	l.Width = vg.Points(1.5)
	return l, nil
}

func invert(p *plot.Plot) {
	p.X.Scale = plot.InvertedScale{Normalizer: p.X.Scale}
}

// MSSeries returns one series per species with the isotropic chemical
// shifts of the atoms in A that have a shielding tensor. Series are sorted
// by species.
func MSSeries(A *magres.Atoms) []Series {
	m := make(map[string][]float64)
	for _, ms := range A.MS(magres.KindMS) {
		s := ms.Atom().Species()
		m[s] = append(m[s], ms.Iso())
	}
	return toSeries(m)
}

// CqSeries returns one series per species with the Cq, in MHz, of the EFG
// records of the given kind. Atoms without quadrupolar data are skipped.
func CqSeries(A *magres.Atoms, kind magres.Kind) []Series {
	m := make(map[string][]float64)
	for _, efg := range A.EFG(kind) {
		cq, ok := efg.Cq()
		if !ok {
			continue
		}
		s := efg.Atom().Species()
		m[s] = append(m[s], cq)
	}
	return toSeries(m)
}

func toSeries(m map[string][]float64) []Series {
	ret := make([]Series, 0, len(m))
	for k, v := range m {
		ret = append(ret, Series{Name: k, Values: v})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}

func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors returns a color for the key-th of steps series, going from red to blue.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
