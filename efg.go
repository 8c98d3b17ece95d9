/*
 * efg.go, part of gomagres.
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

package magres

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// EFG is an electric field gradient tensor on one atom. V is in atomic units.
type EFG struct {
	atom      *Atom
	kind      Kind
	v         *mat.Dense
	principal [3]float64 //eigenvalues of the symmetric part, sorted by absolute value
	haeberlen Haeberlen
}

// NewEFG returns the EFG record of the given kind for atom.
func NewEFG(atom *Atom, kind Kind, v [3][3]float64) (*EFG, error) {
	if atom == nil {
		return nil, newError(ErrNotFound, "NewEFG", "nil atom")
	}
	if !kind.IsEFG() {
		return nil, newError(ErrInvalidInput, "NewEFG", "%s is not an EFG kind", kind)
	}
	E := &EFG{atom: atom, kind: kind, v: tensorDense(v)}
	var eig mat.EigenSym
	if ok := eig.Factorize(symDense(E.v), false); !ok {
		return nil, newError(ErrNoData, "NewEFG", "eigendecomposition failed for %s", atom)
	}
	vals := eig.Values(nil)
	sort.Slice(vals, func(i, j int) bool { return math.Abs(vals[i]) < math.Abs(vals[j]) })
	copy(E.principal[:], vals)
	var err error
	E.haeberlen, err = NewHaeberlen(E.v)
	if err != nil {
		return nil, errDecorate(err, "NewEFG")
	}
	return E, nil
}

func (E *EFG) Atom() *Atom { return E.atom }

func (E *EFG) Kind() Kind { return E.kind }

// V returns a copy of the EFG tensor.
func (E *EFG) V() *mat.Dense {
	return mat.DenseCopyOf(E.v)
}

// Vzz returns the principal component of largest magnitude.
func (E *EFG) Vzz() float64 {
	return E.principal[2]
}

// Cq returns the quadrupolar coupling constant in MHz for the current
// isotope of the atom. If there is no conversion factor for that isotope,
// it returns (0, false).
func (E *EFG) Cq() (float64, bool) {
	iso, ok := E.atom.Isotope()
	if !ok {
		return 0, false
	}
	f, ok := E.atom.consts.EFGToCq(E.atom.species, iso)
	if !ok {
		return 0, false
	}
	return f * E.Vzz(), true
}

// EtaQ returns the quadrupolar asymmetry, (Vxx-Vyy)/Vzz with
// |Vzz|>=|Vyy|>=|Vxx|. It fails with ErrUndefinedAsymmetry if Vzz is zero.
func (E *EFG) EtaQ() (float64, error) {
	p := E.principal
	if p[2] == 0 {
		return 0, newError(ErrUndefinedAsymmetry, "EtaQ", "Vzz is zero for %s", E.atom)
	}
	return (p[0] - p[1]) / p[2], nil
}

// Pq returns the quadrupolar product Cq*sqrt(1+eta^2/3) in MHz. The second
// value is false under the same conditions as for Cq. A zero Vzz gives (0, true).
func (E *EFG) Pq() (float64, bool) {
	cq, ok := E.Cq()
	if !ok {
		return 0, false
	}
	eta, err := E.EtaQ()
	if err != nil {
		return 0, true
	}
	return cq * math.Sqrt(1+eta*eta/3), true
}

// Haeberlen returns the principal components of V in the Haeberlen convention.
func (E *EFG) Haeberlen() Haeberlen { return E.haeberlen }

// Aniso returns the anisotropy of V.
func (E *EFG) Aniso() float64 { return E.haeberlen.Aniso() }

// Eta returns the asymmetry of V in the Haeberlen convention.
func (E *EFG) Eta() (float64, error) {
	eta, err := E.haeberlen.Eta()
	if err != nil {
		return 0, errDecorate(err, "EFG.Eta "+E.atom.String())
	}
	return eta, nil
}

// symDense returns the symmetric part of the 3x3 matrix t as a SymDense.
func symDense(t mat.Matrix) *mat.SymDense {
	ret := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			ret.SetSym(i, j, (t.At(i, j)+t.At(j, i))/2)
		}
	}
	return ret
}
