/*
 * tensor.go, part of gomagres.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this (relative to the size of the tensor) is considered zero.

// Haeberlen holds the principal components of a tensor in the Haeberlen
// convention. Components[2] is the eigenvalue farthest from the isotropic
// value, Components[1] the closest one and Components[0] the remaining one.
type Haeberlen struct {
	Components [3]float64
	Iso        float64
}

// NewHaeberlen diagonalizes the 3x3 tensor t and orders its eigenvalues in
// the Haeberlen convention. t doesn't need to be symmetric, the real parts of
// the eigenvalues are used.
func NewHaeberlen(t mat.Matrix) (Haeberlen, error) {
	var H Haeberlen
	if r, c := t.Dims(); r != 3 || c != 3 {
		return H, newError(ErrInvalidInput, "NewHaeberlen", "tensor must be 3x3, not %dx%d", r, c)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(t, mat.EigenNone); !ok {
		return H, newError(ErrNoData, "NewHaeberlen", "eigendecomposition failed")
	}
	cvals := eig.Values(nil)
	evals := make([]float64, len(cvals))
	for i, v := range cvals {
		evals[i] = real(v)
		H.Iso += evals[i]
	}
	H.Iso /= 3.0
	sort.SliceStable(evals, func(i, j int) bool {
		return math.Abs(evals[i]-H.Iso) < math.Abs(evals[j]-H.Iso)
	})
	H.Components = [3]float64{evals[1], evals[0], evals[2]}
	return H, nil
}

// Aniso returns the anisotropy, h[2]-(h[0]+h[1])/2
func (H Haeberlen) Aniso() float64 {
	h := H.Components
	return h[2] - (h[0]+h[1])/2.0
}

// Eta returns the asymmetry (h[1]-h[0])/(h[2]-iso). It fails with
// ErrUndefinedAsymmetry for an isotropic tensor, where h[2] equals iso
// within a relative tolerance.
func (H Haeberlen) Eta() (float64, error) {
	h := H.Components
	den := h[2] - H.Iso
	scale := math.Max(math.Abs(h[2]), math.Abs(H.Iso))
	if math.Abs(den) <= appzero*scale {
		return 0, newError(ErrUndefinedAsymmetry, "Eta", "tensor is isotropic (iso = %g)", H.Iso)
	}
	return (h[1] - h[0]) / den, nil
}

// Iso returns a third of the trace of t.
func Iso(t mat.Matrix) float64 {
	return (t.At(0, 0) + t.At(1, 1) + t.At(2, 2)) / 3.0
}

// Sym returns the symmetric part of t, (t+t')/2
func Sym(t mat.Matrix) *mat.Dense {
	r, c := t.Dims()
	ret := mat.NewDense(r, c, nil)
	ret.Add(t, t.T())
	ret.Scale(0.5, ret)
	return ret
}

// Asym returns the antisymmetric part of t, (t-t')/2
func Asym(t mat.Matrix) *mat.Dense {
	r, c := t.Dims()
	ret := mat.NewDense(r, c, nil)
	ret.Sub(t, t.T())
	ret.Scale(0.5, ret)
	return ret
}

// tensorDense returns a new Dense with the contents of t.
func tensorDense(t [3][3]float64) *mat.Dense {
	ret := mat.NewDense(3, 3, nil)
	for i := range t {
		ret.SetRow(i, t[i][:])
	}
	return ret
}
