/*
 * plot_test.go, part of gomagres.
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

package magresplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/gomagres"
)

func diag(a, b, c float64) [3][3]float64 {
	return [3][3]float64{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

func testAtoms(Te *testing.T) *magres.Atoms {
	d := new(magres.Data)
	d.Atoms.Atom = []magres.AtomRecord{
		{Species: "H", Label: "H1", Index: 1, Position: [3]float64{0, 0, 0}},
		{Species: "C", Label: "C1", Index: 1, Position: [3]float64{1, 0, 0}},
		{Species: "H", Label: "H2", Index: 1, Position: [3]float64{2, 0, 0}},
		{Species: "O", Label: "O1", Index: 1, Position: [3]float64{3, 0, 0}},
	}
	d.Magres.MS = []magres.MSRecord{
		{Atom: magres.AtomRef{Label: "H1", Index: 1}, Sigma: diag(30, 30, 30)},
		{Atom: magres.AtomRef{Label: "C1", Index: 1}, Sigma: diag(10, 50, 120)},
		{Atom: magres.AtomRef{Label: "H2", Index: 1}, Sigma: diag(27, 27, 27)},
	}
	d.Magres.EFG = []magres.EFGRecord{
		{Atom: magres.AtomRef{Label: "O1", Index: 1}, V: diag(1, 1, -2)},
		{Atom: magres.AtomRef{Label: "C1", Index: 1}, V: diag(1, 1, -2)},
	}
	o := magres.DefaultOptions()
	o.Reference("H", 31)
	A, err := magres.New(d, o)
	if err != nil {
		Te.Fatal(err)
	}
	return A
}

func TestSeries(Te *testing.T) {
	A := testAtoms(Te)
	s := MSSeries(A)
	want := []Series{{"C", []float64{-60}}, {"H", []float64{1, 4}}}
	if diff := cmp.Diff(want, s); diff != "" {
		Te.Errorf("wrong shifts (-want +got):\n%s", diff)
	}
	cq := CqSeries(A, magres.KindEFG)
	if len(cq) != 2 || cq[0].Name != "C" || cq[0].Values[0] != 0 || cq[1].Name != "O" || cq[1].Values[0] == 0 {
		Te.Errorf("wrong Cq series %v", cq)
	}
	if len(CqSeries(A, magres.KindEFGLocal)) != 0 {
		Te.Error("there are no local EFGs")
	}
}

func TestBroaden(Te *testing.T) {
	xy := Broaden([]float64{0}, 2, -10, 10, 21)
	if len(xy) != 21 {
		Te.Fatalf("expected 21 points, got %d", len(xy))
	}
	if xy[10].X != 0 || math.Abs(xy[10].Y-1) > 1e-12 {
		Te.Errorf("peak should be 1 at 0, got %v", xy[10])
	}
	if math.Abs(xy[9].Y-0.5) > 1e-12 || math.Abs(xy[11].Y-0.5) > 1e-12 {
		Te.Errorf("half height should be at one half width: %v %v", xy[9], xy[11])
	}
	two := Broaden([]float64{0, 0}, 2, -10, 10, 21)
	if math.Abs(two[10].Y-2) > 1e-12 {
		Te.Errorf("two coincident peaks should add up, got %f", two[10].Y)
	}
}

func TestPlots(Te *testing.T) {
	dir := Te.TempDir()
	series := MSSeries(testAtoms(Te))
	if err := Histogram([]float64{1, 2, 2, 3, 3, 3, 4}, 4, "Test histogram", "value", filepath.Join(dir, "hist")); err != nil {
		Te.Fatal(err)
	}
	if err := Sticks(series, true, "Test sticks", "shift (ppm)", filepath.Join(dir, "sticks")); err != nil {
		Te.Fatal(err)
	}
	if err := Spectrum(series, 1, 500, false, "Test spectrum", "shift (ppm)", filepath.Join(dir, "spectrum")); err != nil {
		Te.Fatal(err)
	}
	for _, n := range []string{"hist.png", "sticks.png", "spectrum.png"} {
		if fi, err := os.Stat(filepath.Join(dir, n)); err != nil || fi.Size() == 0 {
			Te.Errorf("%s not written: %v", n, err)
		}
	}
	if err := Histogram(nil, 4, "", "", filepath.Join(dir, "empty")); err == nil {
		Te.Error("expected an error for an empty histogram")
	}
	if err := Spectrum([]Series{{Name: "X"}}, 1, 10, false, "", "", filepath.Join(dir, "empty")); err == nil {
		Te.Error("expected an error for a spectrum without values")
	}
}
