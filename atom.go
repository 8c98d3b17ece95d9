/*
 * atom.go, part of gomagres.
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
	"fmt"

	"github.com/rmera/gomagres/isotopes"
	v3 "github.com/rmera/gomagres/v3"
)

// Atom is one site in a magres calculation. Species, label, index and
// position don't change after creation. The isotope can be set, but only
// to one the Constants know for the species.
type Atom struct {
	species  string
	label    string
	index    int
	position *v3.Matrix

	isotope    int
	isotopeSet bool
	consts     Constants

	ms  *MS
	efg [3]*EFG //efg, efg_local, efg_nonlocal
}

// NewAtom returns an atom. index must be positive and position a 1x3 matrix,
// which is copied. If consts is nil, the built-in isotope table is used.
func NewAtom(species, label string, index int, position *v3.Matrix, consts Constants) (*Atom, error) {
	if index <= 0 {
		return nil, newError(ErrInvalidInput, "NewAtom", "atom %s %d: index must be positive", label, index)
	}
	if position == nil {
		return nil, newError(ErrInvalidInput, "NewAtom", "atom %s %d: nil position", label, index)
	}
	if r, c := position.Dims(); r != 1 || c != 3 {
		return nil, newError(ErrInvalidInput, "NewAtom", "atom %s %d: position must be 1x3, not %dx%d", label, index, r, c)
	}
	if consts == nil {
		consts = isotopes.Default()
	}
	A := &Atom{species: species, label: label, index: index, consts: consts}
	A.position = v3.Zeros(1)
	A.position.Copy(position)
	return A, nil
}

func (A *Atom) Species() string { return A.species }

func (A *Atom) Label() string { return A.label }

func (A *Atom) Index() int { return A.index }

// Position returns a copy of the atom's coordinates.
func (A *Atom) Position() *v3.Matrix {
	ret := v3.Zeros(1)
	ret.Copy(A.position)
	return ret
}

// DistanceTo returns the euclidean distance from the atom to p.
// No periodicity is considered.
func (A *Atom) DistanceTo(p *v3.Matrix) float64 {
	return A.position.Distance(p)
}

// Dist returns the euclidean distance to another atom or image.
func (A *Atom) Dist(other Positioner) float64 {
	return A.DistanceTo(other.Position())
}

// Isotope returns the isotope set for the atom or, if none was set, the default
// one for the species. The second value is false if neither exists.
func (A *Atom) Isotope() (int, bool) {
	if A.isotopeSet {
		return A.isotope, true
	}
	return A.consts.DefaultIsotope(A.species)
}

// SetIsotope sets the isotope of the atom. It fails, leaving the atom
// unchanged, if there is no gyromagnetic ratio for that isotope of the
// species.
func (A *Atom) SetIsotope(iso int) error {
	if _, ok := A.consts.Gamma(A.species, iso); !ok {
		return newError(ErrInvalidIsotope, "SetIsotope", "unknown NMR isotope %d%s", iso, A.species)
	}
	A.isotope = iso
	A.isotopeSet = true
	return nil
}

// Gamma returns the gyromagnetic ratio of the atom's isotope in rad s^-1 T^-1.
// false means that there is no data for it.
func (A *Atom) Gamma() (float64, bool) {
	iso, ok := A.Isotope()
	if !ok {
		return 0, false
	}
	return A.consts.Gamma(A.species, iso)
}

// Q returns the quadrupole moment of the atom's isotope in millibarn.
// false means that there is no data for it. Spin 1/2 nuclei return (0, true).
func (A *Atom) Q() (float64, bool) {
	iso, ok := A.Isotope()
	if !ok {
		return 0, false
	}
	return A.consts.Q(A.species, iso)
}

// MS returns the shielding record for the atom, or nil.
func (A *Atom) MS() *MS { return A.ms }

// EFG returns the EFG record of the given kind for the atom, or nil.
func (A *Atom) EFG(kind Kind) *EFG {
	if !kind.IsEFG() {
		return nil
	}
	return A.efg[kind-KindEFG]
}

// String returns something like 17O(O1)1, or 1H2 if label and species are the same.
func (A *Atom) String() string {
	return atomString(A)
}

func atomString(A Positioner) string {
	var isostr string
	if iso, ok := A.Isotope(); ok {
		isostr = fmt.Sprint(iso)
	}
	if A.Species() != A.Label() {
		return fmt.Sprintf("%s%s(%s)%d", isostr, A.Species(), A.Label(), A.Index())
	}
	return fmt.Sprintf("%s%s%d", isostr, A.Species(), A.Index())
}

// Image is a periodic image of an Atom: the same atom at another position.
// It is read-only, and only obtained from Atoms.Within.
type Image struct {
	atom     *Atom
	position *v3.Matrix
}

// Atom returns the atom the image belongs to.
func (I *Image) Atom() *Atom { return I.atom }

func (I *Image) Species() string { return I.atom.species }

func (I *Image) Label() string { return I.atom.label }

func (I *Image) Index() int { return I.atom.index }

func (I *Image) Isotope() (int, bool) { return I.atom.Isotope() }

// Position returns a copy of the position of the image.
func (I *Image) Position() *v3.Matrix {
	ret := v3.Zeros(1)
	ret.Copy(I.position)
	return ret
}

// DistanceTo returns the euclidean distance from the image to p.
func (I *Image) DistanceTo(p *v3.Matrix) float64 {
	return I.position.Distance(p)
}

// Dist returns the euclidean distance from the image to other.
func (I *Image) Dist(other Positioner) float64 {
	return I.DistanceTo(other.Position())
}

func (I *Image) String() string {
	return atomString(I)
}
