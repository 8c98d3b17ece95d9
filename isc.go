/*
 * isc.go, part of gomagres.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ISC is an indirect spin-spin coupling from Atom1 to Atom2. K is the
// reduced coupling tensor, in 10^19 T^2 J^-1. J, in Hz, depends on the
// isotopes of both atoms, so it is obtained again on each call.
type ISC struct {
	atom1      *Atom
	atom2      *Atom
	kind       Kind
	k          *mat.Dense
	kHaeberlen Haeberlen
}

// NewISC returns the coupling record of the given kind between atom1 and atom2.
func NewISC(atom1, atom2 *Atom, kind Kind, k [3][3]float64) (*ISC, error) {
	if atom1 == nil || atom2 == nil {
		return nil, newError(ErrNotFound, "NewISC", "nil atom")
	}
	if !kind.IsISC() {
		return nil, newError(ErrInvalidInput, "NewISC", "%s is not an ISC kind", kind)
	}
	I := &ISC{atom1: atom1, atom2: atom2, kind: kind, k: tensorDense(k)}
	var err error
	I.kHaeberlen, err = NewHaeberlen(I.k)
	if err != nil {
		return nil, errDecorate(err, "NewISC")
	}
	return I, nil
}

func (I *ISC) Atom1() *Atom { return I.atom1 }

func (I *ISC) Atom2() *Atom { return I.atom2 }

func (I *ISC) Kind() Kind { return I.kind }

// Symbol returns a string like "1H1 -> 13C2".
func (I *ISC) Symbol() string {
	return fmt.Sprintf("%s -> %s", I.atom1, I.atom2)
}

// Dist returns the distance between the two atoms, without periodicity.
func (I *ISC) Dist() float64 {
	return I.atom1.Dist(I.atom2)
}

// K returns a copy of the reduced coupling tensor.
func (I *ISC) K() *mat.Dense { return mat.DenseCopyOf(I.k) }

func (I *ISC) KIso() float64 { return Iso(I.k) }

func (I *ISC) KSym() *mat.Dense { return Sym(I.k) }

func (I *ISC) KAsym() *mat.Dense { return Asym(I.k) }

func (I *ISC) KHaeberlen() Haeberlen { return I.kHaeberlen }

func (I *ISC) KAniso() float64 { return I.kHaeberlen.Aniso() }

func (I *ISC) KEta() (float64, error) {
	eta, err := I.kHaeberlen.Eta()
	if err != nil {
		return 0, errDecorate(err, "KEta "+I.Symbol())
	}
	return eta, nil
}

// factor returns the K to J conversion for the current isotopes of the atoms.
func (I *ISC) factor() (float64, error) {
	iso1, ok1 := I.atom1.Isotope()
	iso2, ok2 := I.atom2.Isotope()
	if !ok1 || !ok2 {
		return 0, newError(ErrNoData, "ISC.J", "unknown isotope in %s", I.Symbol())
	}
	f, ok := I.atom1.consts.KToJ(I.atom1.species, iso1, I.atom2.species, iso2)
	if !ok {
		return 0, newError(ErrNoData, "ISC.J", "no K to J conversion for %s", I.Symbol())
	}
	return f, nil
}

// J returns the coupling tensor in Hz. It fails with ErrNoData if the
// gyromagnetic ratio of either atom is unknown.
func (I *ISC) J() (*mat.Dense, error) {
	f, err := I.factor()
	if err != nil {
		return nil, err
	}
	ret := mat.NewDense(3, 3, nil)
	ret.Scale(f, I.k)
	return ret, nil
}

func (I *ISC) JIso() (float64, error) {
	J, err := I.J()
	if err != nil {
		return 0, errDecorate(err, "JIso")
	}
	return Iso(J), nil
}

func (I *ISC) JSym() (*mat.Dense, error) {
	J, err := I.J()
	if err != nil {
		return nil, errDecorate(err, "JSym")
	}
	return Sym(J), nil
}

func (I *ISC) JAsym() (*mat.Dense, error) {
	J, err := I.J()
	if err != nil {
		return nil, errDecorate(err, "JAsym")
	}
	return Asym(J), nil
}

// JHaeberlen decomposes J itself, not a scaled copy of the K decomposition,
// so the ordering follows the signs of J.
func (I *ISC) JHaeberlen() (Haeberlen, error) {
	J, err := I.J()
	if err != nil {
		return Haeberlen{}, errDecorate(err, "JHaeberlen")
	}
	return NewHaeberlen(J)
}

func (I *ISC) JAniso() (float64, error) {
	H, err := I.JHaeberlen()
	if err != nil {
		return 0, errDecorate(err, "JAniso")
	}
	return H.Aniso(), nil
}

func (I *ISC) JEta() (float64, error) {
	H, err := I.JHaeberlen()
	if err != nil {
		return 0, errDecorate(err, "JEta")
	}
	eta, err := H.Eta()
	if err != nil {
		return 0, errDecorate(err, "JEta "+I.Symbol())
	}
	return eta, nil
}
