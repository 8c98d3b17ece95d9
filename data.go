/*
 * data.go, part of gomagres.
 *
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
 *
 */

package magres

//The parsed contents of a magres file. Parsing the text format itself is left
//to other programs, these types only mirror the tree they produce.

// Data is a parsed magres file.
type Data struct {
	Atoms  AtomsBlock  `json:"atoms"`
	Magres MagresBlock `json:"magres"`
}

// AtomsBlock is the [atoms] block. Each lattice is a set of three
// lattice vectors, one per row.
type AtomsBlock struct {
	Lattice [][3][3]float64 `json:"lattice,omitempty"`
	Atom    []AtomRecord    `json:"atom"`
}

type AtomRecord struct {
	Species  string     `json:"species"`
	Label    string     `json:"label"`
	Index    int        `json:"index"`
	Position [3]float64 `json:"position"`
}

// AtomRef points to an atom by its (label, index) pair.
type AtomRef struct {
	Label string `json:"label"`
	Index int    `json:"index"`
}

// MagresBlock is the [magres] block. A nil slice means that the
// calculation kind was not present.
type MagresBlock struct {
	MS          []MSRecord  `json:"ms"`
	EFG         []EFGRecord `json:"efg"`
	EFGLocal    []EFGRecord `json:"efg_local"`
	EFGNonlocal []EFGRecord `json:"efg_nonlocal"`
	ISC         []ISCRecord `json:"isc"`
	ISCSpin     []ISCRecord `json:"isc_spin"`
	ISCFC       []ISCRecord `json:"isc_fc"`
	ISCOrbitalP []ISCRecord `json:"isc_orbital_p"`
	ISCOrbitalD []ISCRecord `json:"isc_orbital_d"`
}

type MSRecord struct {
	Atom  AtomRef       `json:"atom"`
	Sigma [3][3]float64 `json:"sigma"`
}

type EFGRecord struct {
	Atom AtomRef       `json:"atom"`
	V    [3][3]float64 `json:"V"`
}

type ISCRecord struct {
	Atom1 AtomRef       `json:"atom1"`
	Atom2 AtomRef       `json:"atom2"`
	K     [3][3]float64 `json:"K"`
}

// efg returns the records for an EFG kind.
func (M *MagresBlock) efg(k Kind) []EFGRecord {
	switch k {
	case KindEFG:
		return M.EFG
	case KindEFGLocal:
		return M.EFGLocal
	case KindEFGNonlocal:
		return M.EFGNonlocal
	}
	return nil
}

// isc returns the records for an ISC kind.
func (M *MagresBlock) isc(k Kind) []ISCRecord {
	switch k {
	case KindISC:
		return M.ISC
	case KindISCSpin:
		return M.ISCSpin
	case KindISCFC:
		return M.ISCFC
	case KindISCOrbitalP:
		return M.ISCOrbitalP
	case KindISCOrbitalD:
		return M.ISCOrbitalD
	}
	return nil
}
