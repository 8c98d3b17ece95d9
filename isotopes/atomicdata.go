/*
 * atomicdata.go, part of gomagres.
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

package isotopes

//Gyromagnetic ratios in 10^7 rad s^-1 T^-1 from the IUPAC 2001 recommendations
//(Harris et al., DOI:10.1351/pac200173111795). Quadrupole moments in millibarn
//from Pyykko, 2008 (DOI:10.1080/00268970802018367).
//Note that just the nuclei commonly found in solid-state NMR work are present.
var builtin = []Nucleus{
	{"H", 1, 0.5, 26.7522128, 0},
	{"H", 2, 1, 4.10662791, 2.860},
	{"Li", 6, 1, 3.9371709, -0.808},
	{"Li", 7, 1.5, 10.3977013, -40.1},
	{"Be", 9, 1.5, -3.759666, 52.88},
	{"B", 10, 3, 2.8746786, 84.59},
	{"B", 11, 1.5, 8.5847044, 40.59},
	{"C", 13, 0.5, 6.728284, 0},
	{"N", 14, 1, 1.9337792, 20.44},
	{"N", 15, 0.5, -2.71261804, 0},
	{"O", 17, 2.5, -3.62808, -25.58},
	{"F", 19, 0.5, 25.18148, 0},
	{"Na", 23, 1.5, 7.0808493, 104},
	{"Mg", 25, 2.5, -1.63887, 199.4},
	{"Al", 27, 2.5, 6.9762715, 146.6},
	{"Si", 29, 0.5, -5.3190, 0},
	{"P", 31, 0.5, 10.8394, 0},
	{"S", 33, 1.5, 2.055685, -67.8},
	{"Cl", 35, 1.5, 2.624198, -81.65},
	{"Cl", 37, 1.5, 2.184368, -64.35},
	{"K", 39, 1.5, 1.2500608, 58.5},
	{"Ca", 43, 3.5, -1.803069, -40.8},
	{"V", 51, 3.5, 7.0455117, -52},
	{"Cu", 63, 1.5, 7.1117890, -220},
	{"Cu", 65, 1.5, 7.60435, -204},
	{"Zn", 67, 2.5, 1.676688, 150},
	{"Ga", 71, 1.5, 8.181171, 107},
	{"Se", 77, 0.5, 5.1253857, 0},
	{"Br", 79, 1.5, 6.725616, 313},
	{"Br", 81, 1.5, 7.249776, 262},
	{"Rb", 87, 1.5, 8.786400, 133.5},
	{"Y", 89, 0.5, -1.3162791, 0},
	{"Nb", 93, 4.5, 6.5674, -320},
	{"Cd", 113, 0.5, -5.9609155, 0},
	{"Sn", 119, 0.5, -10.0317, 0},
	{"I", 127, 2.5, 5.389573, -696},
	{"Cs", 133, 3.5, 3.5332539, -3.43},
	{"Pt", 195, 0.5, 5.8385, 0},
	{"Pb", 207, 0.5, 5.58046, 0},
}

//The isotope assumed for each element when none is given.
//It is the NMR-active isotope most often studied, not always the most abundant one.
var builtinDefaults = map[string]int{
	"H":  1,
	"Li": 7,
	"Be": 9,
	"B":  11,
	"C":  13,
	"N":  14,
	"O":  17,
	"F":  19,
	"Na": 23,
	"Mg": 25,
	"Al": 27,
	"Si": 29,
	"P":  31,
	"S":  33,
	"Cl": 35,
	"K":  39,
	"Ca": 43,
	"V":  51,
	"Cu": 63,
	"Zn": 67,
	"Ga": 71,
	"Se": 77,
	"Br": 79,
	"Rb": 87,
	"Y":  89,
	"Nb": 93,
	"Cd": 113,
	"Sn": 119,
	"I":  127,
	"Cs": 133,
	"Pt": 195,
	"Pb": 207,
}

var defaultTable = newBuiltin()

func newBuiltin() *Table {
	T := NewTable()
	for _, n := range builtin {
		n.Gamma *= 1e7
		T.nuclei[key{n.Species, n.Isotope}] = n
	}
	for s, i := range builtinDefaults {
		T.defaults[s] = i
	}
	return T
}

// Default returns the built-in table. It is shared, and should be treated
// as read-only. Use Clone to get a table that can be extended.
func Default() *Table {
	return defaultTable
}

// Clone returns a deep copy of the table.
func (T *Table) Clone() *Table {
	R := NewTable()
	for k, v := range T.nuclei {
		R.nuclei[k] = v
	}
	for k, v := range T.defaults {
		R.defaults[k] = v
	}
	return R
}
