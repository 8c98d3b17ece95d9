/*
 * histo.go, part of gomagres.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

//Package histo bins NMR quantities, such as the chemical shifts of one
//species, into histograms that can be printed as text.
package histo

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram with a name.
type Data struct {
	name       string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// Dividers returns n+1 equally spaced dividers, defining n bins, from lo to hi.
// The last divider is nudged up so hi itself falls in the last bin.
func Dividers(lo, hi float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	d := make([]float64, n+1)
	floats.Span(d, lo, hi)
	d[n] = hi + 1e-9*(hi-lo)
	return d
}

// NewData returns a histogram with the given dividers, filled with
// rawdata, which can be nil. Dividers must be sorted and at least 2.
// rawdata is not modified.
func NewData(name string, dividers []float64, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo.NewData: need at least 2 sorted dividers, got %v", dividers)
	}
	D := &Data{name: name}
	D.dividers = append([]float64(nil), dividers...)
	D.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		D.rehisto(rawdata)
	}
	return D, nil
}

//fills the histogram with rawdata. Values outside of the dividers are omitted.
func (D *Data) rehisto(rawdata []float64) {
	raw := append([]float64(nil), rawdata...)
	sort.Float64s(raw)
	//stat.Histogram panics on values off limits, so we remove them first.
	maxi := sort.SearchFloat64s(raw, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(raw, D.dividers[0])
	raw = raw[mini:maxi]
	D.total = len(raw)
	D.histo = stat.Histogram(nil, D.dividers, raw, nil)
}

// Normalize scales the histogram so it adds up to 1. Does nothing
// on an empty or already normalized histogram.
func (D *Data) Normalize() {
	if D.total <= 0 || D.normalized {
		return
	}
	D.normalized = true
	floats.Scale(1/float64(D.total), D.histo)
}

// String returns one line per bin, with its limits, its contents and
// a bar of # characters, 40 wide for the fullest bin.
func (D *Data) String() string {
	return D.bars(40)
}

func (D *Data) bars(width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d points)\n", D.name, D.total)
	top := floats.Max(D.histo)
	for i, v := range D.histo {
		n := 0
		if top > 0 {
			n = int(float64(width)*v/top + 0.5)
		}
		fmt.Fprintf(&b, "%10.3f %10.3f %8.3f %s\n", D.dividers[i], D.dividers[i+1], v, strings.Repeat("#", n))
	}
	return b.String()
}
