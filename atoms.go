/*
 * atoms.go, part of gomagres.
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
	v3 "github.com/rmera/gomagres/v3"
	"go.uber.org/zap"
)

/**Note: Atoms is meant to be built once and then read. Queries can run concurrently,
 * but SetIsotope, Add and BuildIndex must not run at the same time as anything else.**/

// Atoms is the set of atoms of a magres calculation, with the lattice and
// the tensor records linked to them.
type Atoms struct {
	atoms   []*Atom
	lattice *v3.Matrix

	labelIndex   map[string][]*Atom
	speciesIndex map[string][]*Atom

	ms  map[Kind][]*MS
	efg map[Kind][]*EFG
	isc map[Kind][]*ISC

	consts Constants
	logger *zap.Logger
}

func newAtoms(o *Options) *Atoms {
	A := new(Atoms)
	A.labelIndex = make(map[string][]*Atom)
	A.speciesIndex = make(map[string][]*Atom)
	A.ms = make(map[Kind][]*MS)
	A.efg = make(map[Kind][]*EFG)
	A.isc = make(map[Kind][]*ISC)
	A.consts = o.Constants()
	A.logger = o.Logger()
	if A.logger == nil {
		A.logger = zap.NewNop()
	}
	return A
}

// NewAtoms returns a registry with the given atoms, no lattice and
// no tensor records. Two atoms with the same label and index are
// an error.
func NewAtoms(atoms []*Atom, options ...*Options) (*Atoms, error) {
	A := newAtoms(getOptions(options))
	if err := A.Add(atoms...); err != nil {
		return nil, errDecorate(err, "NewAtoms")
	}
	return A, nil
}

// Add appends atoms to the registry and rebuilds the indexes.
// If any of the atoms has the label and index of one already in the
// registry, or of another of the given atoms, nothing is added and
// an error is returned.
func (A *Atoms) Add(atoms ...*Atom) error {
	seen := make(map[atomKey]bool, len(A.atoms)+len(atoms))
	for _, at := range A.atoms {
		seen[atomKey{at.label, at.index}] = true
	}
	for _, at := range atoms {
		if at == nil {
			return newError(ErrInvalidInput, "Add", "nil atom")
		}
		k := atomKey{at.label, at.index}
		if seen[k] {
			return newError(ErrInvalidInput, "Add", "atom %s %d appears twice", at.label, at.index)
		}
		seen[k] = true
	}
	A.atoms = append(A.atoms, atoms...)
	A.BuildIndex()
	return nil
}

// BuildIndex rebuilds the label and species indexes from scratch.
func (A *Atoms) BuildIndex() {
	labels := make(map[string][]*Atom)
	species := make(map[string][]*Atom)
	for _, at := range A.atoms {
		labels[at.label] = append(labels[at.label], at)
		species[at.species] = append(species[at.species], at)
	}
	A.labelIndex = labels
	A.speciesIndex = species
}

// Len returns the number of atoms.
func (A *Atoms) Len() int { return len(A.atoms) }

// Atom returns the ith atom, in file order. Panics if out of range.
func (A *Atoms) Atom(i int) *Atom { return A.atoms[i] }

// All returns a copy of the atom slice.
func (A *Atoms) All() []*Atom {
	ret := make([]*Atom, len(A.atoms))
	copy(ret, A.atoms)
	return ret
}

// Label returns the atoms with the given label, in file order.
func (A *Atoms) Label(label string) ([]*Atom, error) {
	ret, ok := A.labelIndex[label]
	if !ok {
		return nil, newError(ErrNotFound, "Label", "no atoms with label %q", label)
	}
	return append([]*Atom(nil), ret...), nil
}

// Species returns the atoms of the given species, in file order.
func (A *Atoms) Species(species string) ([]*Atom, error) {
	ret, ok := A.speciesIndex[species]
	if !ok {
		return nil, newError(ErrNotFound, "Species", "no atoms of species %q", species)
	}
	return append([]*Atom(nil), ret...), nil
}

// GetLabel returns the nth (starting from 1) atom with the given label.
func (A *Atoms) GetLabel(label string, n int) (*Atom, error) {
	l, ok := A.labelIndex[label]
	if !ok {
		return nil, newError(ErrNotFound, "GetLabel", "no atoms with label %q", label)
	}
	if n < 1 || n > len(l) {
		return nil, newError(ErrNotFound, "GetLabel", "atom %d requested, but there are %d with label %q", n, len(l), label)
	}
	return l[n-1], nil
}

// GetSpecies returns the nth (starting from 1) atom of the given species.
func (A *Atoms) GetSpecies(species string, n int) (*Atom, error) {
	l, ok := A.speciesIndex[species]
	if !ok {
		return nil, newError(ErrNotFound, "GetSpecies", "no atoms of species %q", species)
	}
	if n < 1 || n > len(l) {
		return nil, newError(ErrNotFound, "GetSpecies", "atom %d requested, but there are %d of species %q", n, len(l), species)
	}
	return l[n-1], nil
}

// Has returns whether the calculation kind was present in the input.
func (A *Atoms) Has(kind Kind) bool {
	var ok bool
	switch {
	case kind.IsMS():
		_, ok = A.ms[kind]
	case kind.IsEFG():
		_, ok = A.efg[kind]
	case kind.IsISC():
		_, ok = A.isc[kind]
	}
	return ok
}

// MS returns the shielding records of the given kind, in file order.
func (A *Atoms) MS(kind Kind) []*MS {
	return append([]*MS(nil), A.ms[kind]...)
}

// EFG returns the EFG records of the given kind, in file order.
func (A *Atoms) EFG(kind Kind) []*EFG {
	return append([]*EFG(nil), A.efg[kind]...)
}

// ISC returns the coupling records of the given kind, in file order.
func (A *Atoms) ISC(kind Kind) []*ISC {
	return append([]*ISC(nil), A.isc[kind]...)
}
