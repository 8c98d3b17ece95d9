/*
 * link.go, part of gomagres.
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

	v3 "github.com/rmera/gomagres/v3"
	"go.uber.org/zap"
)

type atomKey struct {
	label string
	index int
}

// New builds the atoms in data, sets the lattice if exactly one was given, and links
// every MS, EFG and ISC record to its atoms. A record that refers to an atom not
// in data is an ErrNotFound error.
func New(data *Data, options ...*Options) (*Atoms, error) {
	if data == nil {
		return nil, newError(ErrInvalidInput, "New", "nil data")
	}
	o := getOptions(options)
	A := newAtoms(o)

	switch len(data.Atoms.Lattice) {
	case 1:
		l := data.Atoms.Lattice[0]
		flat := make([]float64, 0, 9)
		for i := range l {
			flat = append(flat, l[i][:]...)
		}
		lat, err := v3.NewMatrix(flat)
		if err != nil {
			return nil, errDecorate(err, "New")
		}
		A.lattice = lat
	case 0:
	default:
		A.logger.Warn("more than one lattice declared, periodic queries will not be available",
			zap.Int("lattices", len(data.Atoms.Lattice)))
	}

	keys := make(map[atomKey]*Atom, len(data.Atoms.Atom))
	A.atoms = make([]*Atom, 0, len(data.Atoms.Atom))
	for _, r := range data.Atoms.Atom {
		at, err := NewAtom(r.Species, r.Label, r.Index, v3.NewVec(r.Position), A.consts)
		if err != nil {
			return nil, errDecorate(err, "New")
		}
		k := atomKey{r.Label, r.Index}
		if _, ok := keys[k]; ok {
			return nil, newError(ErrInvalidInput, "New", "atom %s %d appears twice", r.Label, r.Index)
		}
		keys[k] = at
		A.atoms = append(A.atoms, at)
	}
	A.BuildIndex()

	if err := A.linkMS(&data.Magres, keys, o); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := A.linkEFG(&data.Magres, keys); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := A.linkISC(&data.Magres, keys); err != nil {
		return nil, errDecorate(err, "New")
	}
	return A, nil
}

func lookup(keys map[atomKey]*Atom, ref AtomRef, kind Kind, rec int) (*Atom, error) {
	at, ok := keys[atomKey{ref.Label, ref.Index}]
	if !ok {
		return nil, newError(ErrNotFound, "lookup", "%s record %d refers to atom %s %d, which is not in the structure", kind, rec, ref.Label, ref.Index)
	}
	return at, nil
}

func (A *Atoms) linkMS(M *MagresBlock, keys map[atomKey]*Atom, o *Options) error {
	if M.MS == nil {
		return nil
	}
	list := make([]*MS, 0, len(M.MS))
	for i, r := range M.MS {
		at, err := lookup(keys, r.Atom, KindMS, i)
		if err != nil {
			return errDecorate(err, "linkMS")
		}
		var ms *MS
		if ref, ok := o.Reference(at.species); ok {
			ms, err = NewMS(at, r.Sigma, ref)
		} else {
			ms, err = NewMS(at, r.Sigma)
		}
		if err != nil {
			return errDecorate(err, "linkMS")
		}
		list = append(list, ms)
		at.ms = ms
	}
	A.ms[KindMS] = list
	A.logger.Debug("linked records", zap.Stringer("kind", KindMS), zap.Int("records", len(list)))
	return nil
}

func (A *Atoms) linkEFG(M *MagresBlock, keys map[atomKey]*Atom) error {
	for _, kind := range EFGKinds {
		recs := M.efg(kind)
		if recs == nil {
			continue
		}
		list := make([]*EFG, 0, len(recs))
		for i, r := range recs {
			at, err := lookup(keys, r.Atom, kind, i)
			if err != nil {
				return errDecorate(err, "linkEFG")
			}
			efg, err := NewEFG(at, kind, r.V)
			if err != nil {
				return errDecorate(err, "linkEFG")
			}
			list = append(list, efg)
			at.efg[kind-KindEFG] = efg
		}
		A.efg[kind] = list
		A.logger.Debug("linked records", zap.Stringer("kind", kind), zap.Int("records", len(list)))
	}
	return nil
}

func (A *Atoms) linkISC(M *MagresBlock, keys map[atomKey]*Atom) error {
	for _, kind := range ISCKinds {
		recs := M.isc(kind)
		if recs == nil {
			continue
		}
		list := make([]*ISC, 0, len(recs))
		for i, r := range recs {
			at1, err := lookup(keys, r.Atom1, kind, i)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("linkISC: atom1 of record %d", i))
			}
			at2, err := lookup(keys, r.Atom2, kind, i)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("linkISC: atom2 of record %d", i))
			}
			isc, err := NewISC(at1, at2, kind, r.K)
			if err != nil {
				return errDecorate(err, "linkISC")
			}
			list = append(list, isc)
		}
		A.isc[kind] = list
		A.logger.Debug("linked records", zap.Stringer("kind", kind), zap.Int("records", len(list)))
	}
	return nil
}
