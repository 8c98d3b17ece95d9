/*
 * geometric.go, part of gomagres.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package magres

import (
	"math"

	v3 "github.com/rmera/gomagres/v3"
)

// Lattice returns a copy of the lattice vectors, one per row.
func (A *Atoms) Lattice() (*v3.Matrix, error) {
	if A.lattice == nil {
		return nil, newError(ErrMissingLattice, "Lattice", "the structure has no lattice")
	}
	ret := v3.Zeros(3)
	ret.Copy(A.lattice)
	return ret, nil
}

// SetLattice sets the lattice vectors, one per row. L is copied.
func (A *Atoms) SetLattice(L *v3.Matrix) error {
	if L == nil {
		return newError(ErrInvalidInput, "SetLattice", "nil lattice")
	}
	if r, c := L.Dims(); r != 3 || c != 3 {
		return newError(ErrInvalidInput, "SetLattice", "lattice must be 3x3, not %dx%d", r, c)
	}
	A.lattice = v3.Zeros(3)
	A.lattice.Copy(L)
	return nil
}

// LeastMirror returns the periodic image of a closest to b, and its distance to b.
// Only the 27 images obtained by translating a by -1, 0 or 1 lattice vectors along
// each direction are considered, so the result is only the true minimum image when
// the lattice vectors are long compared with the distances of interest.
// Ties go to the first image found, looping over the coefficients of the
// first, second and third lattice vectors, in that order, from -1 to 1.
func (A *Atoms) LeastMirror(a, b *v3.Matrix) (float64, *v3.Matrix, error) {
	if A.lattice == nil {
		return 0, nil, newError(ErrMissingLattice, "LeastMirror", "periodic images requested, but the structure has no lattice")
	}
	dmin := math.Inf(1)
	minp := v3.Zeros(1)
	ap := v3.Zeros(1)
	t := v3.Zeros(1)
	r := v3.Zeros(1)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				t.Translation(A.lattice, [3]float64{float64(i), float64(j), float64(k)})
				ap.Add(a, t)
				r.Sub(ap, b)
				d := r.Dot(r)
				if d < dmin {
					dmin = d
					minp.Copy(ap)
				}
			}
		}
	}
	return math.Sqrt(dmin), minp, nil
}

// Within returns images of all the atoms whose closest periodic image (as
// given by LeastMirror) is at center or less than radius from it. Each image
// is at the position of that closest image. The atoms are in file order.
func (A *Atoms) Within(center *v3.Matrix, radius float64) ([]*Image, error) {
	if A.lattice == nil {
		return nil, newError(ErrMissingLattice, "Within", "periodic images requested, but the structure has no lattice")
	}
	ret := make([]*Image, 0, 10)
	for _, at := range A.atoms {
		d, p, err := A.LeastMirror(at.position, center)
		if err != nil {
			return nil, errDecorate(err, "Within")
		}
		if d <= radius {
			ret = append(ret, &Image{atom: at, position: p})
		}
	}
	return ret, nil
}

// WithinAtom is like Within, using the position of center.
func (A *Atoms) WithinAtom(center Positioner, radius float64) ([]*Image, error) {
	ret, err := A.Within(center.Position(), radius)
	if err != nil {
		return nil, errDecorate(err, "WithinAtom")
	}
	return ret, nil
}
