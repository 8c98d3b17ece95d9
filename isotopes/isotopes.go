/*
 * isotopes.go, part of gomagres.
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

// Package isotopes provides the nuclear data needed to turn calculated
// NMR tensors into observables: gyromagnetic ratios, quadrupole moments and
// default isotopes, plus the conversion factors between reduced and
// observable couplings.
//
// A Table answers "unknown" (a false second return value) for anything it
// doesn't hold. A genuine zero, like the quadrupole moment of a spin-1/2
// nucleus, is returned with true.
package isotopes

import (
	"fmt"
	"math"
	"sort"
)

// Nucleus holds the data for one isotope of one element.
type Nucleus struct {
	Species string
	Isotope int     //mass number
	Spin    float64 //nuclear spin quantum number
	Gamma   float64 //gyromagnetic ratio in rad s^-1 T^-1
	Q       float64 //quadrupole moment in millibarn, 0 for I=1/2
}

type key struct {
	species string
	isotope int
}

// Table is an in-memory isotope database. The zero value is not usable,
// use NewTable or Default.
type Table struct {
	nuclei   map[key]Nucleus
	defaults map[string]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{nuclei: make(map[key]Nucleus), defaults: make(map[string]int)}
}

// Add adds, or replaces, a nucleus in the table. If def is given and true,
// the isotope becomes the default one for its species.
func (T *Table) Add(n Nucleus, def ...bool) error {
	if n.Species == "" || n.Isotope <= 0 {
		return fmt.Errorf("isotopes: invalid nucleus %d%s", n.Isotope, n.Species)
	}
	T.nuclei[key{n.Species, n.Isotope}] = n
	if len(def) > 0 && def[0] {
		T.defaults[n.Species] = n.Isotope
	}
	return nil
}

// Nucleus returns the data for the given isotope, and whether it was found.
func (T *Table) Nucleus(species string, isotope int) (Nucleus, bool) {
	n, ok := T.nuclei[key{species, isotope}]
	return n, ok
}

// Isotopes returns the mass numbers known for species, in ascending order.
func (T *Table) Isotopes(species string) []int {
	ret := make([]int, 0, 2)
	for k := range T.nuclei {
		if k.species == species {
			ret = append(ret, k.isotope)
		}
	}
	sort.Ints(ret)
	return ret
}

// DefaultIsotope returns the isotope used for species when none has
// been set explicitly.
func (T *Table) DefaultIsotope(species string) (int, bool) {
	i, ok := T.defaults[species]
	return i, ok
}

// Gamma returns the gyromagnetic ratio, in rad s^-1 T^-1.
func (T *Table) Gamma(species string, isotope int) (float64, bool) {
	n, ok := T.nuclei[key{species, isotope}]
	if !ok {
		return 0, false
	}
	return n.Gamma, true
}

// Q returns the quadrupole moment in millibarn. Spin-1/2 nuclei
// give (0, true).
func (T *Table) Q(species string, isotope int) (float64, bool) {
	n, ok := T.nuclei[key{species, isotope}]
	if !ok {
		return 0, false
	}
	return n.Q, true
}

// KToJ returns the factor that converts a reduced coupling tensor K, in
// units of 10^19 T^2 J^-1, between the two given nuclei into the coupling
// J in Hz.
func (T *Table) KToJ(species1 string, isotope1 int, species2 string, isotope2 int) (float64, bool) {
	g1, ok1 := T.Gamma(species1, isotope1)
	g2, ok2 := T.Gamma(species2, isotope2)
	if !ok1 || !ok2 {
		return 0, false
	}
	return KUnit * Planck * g1 * g2 / (4 * math.Pi * math.Pi), true
}

// EFGToCq returns the factor that converts a principal component of an EFG
// tensor, in atomic units, into a quadrupolar coupling constant in MHz.
// The second return value is false if the quadrupole moment of the nucleus
// is unknown.
func (T *Table) EFGToCq(species string, isotope int) (float64, bool) {
	q, ok := T.Q(species, isotope)
	if !ok {
		return 0, false
	}
	return EFGAU * q * Millibarn * ElementaryCharge / Planck / MHz, true
}
