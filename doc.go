/*
 * doc.go, part of gomagres.
 *
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
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package magres is the main package of the gomagres library. It provides the atoms of a
solid-state NMR calculation in a periodic cell, together with the tensors computed for them.


	**gomagres Capabilities**

    Builds the atoms, lattice and tensor records from the parsed tree of a magres
	file (see the magresjson package for reading that tree from JSON).

    Finds atoms by label or species, and the periodic images of atoms within a
	given distance of a point, using the minimum-image convention over the
	first shell of neighbouring cells.

    Magnetic shielding: isotropic shielding and chemical shift (with an optional
	reference), anisotropy and asymmetry in the Haeberlen convention.

    Electric field gradients: Vzz, quadrupolar coupling constant Cq, asymmetry
	and quadrupolar product, for the isotope set on each atom.

    Indirect spin-spin couplings: the reduced coupling K and the coupling J in Hz,
	with their isotropic, symmetric and antisymmetric parts, anisotropy and asymmetry.

Nuclear data come from a Constants implementation. The isotopes package provides
a built-in table. Where there is no data, functions return a false boolean or an
error with the ErrNoData kind, never a made-up zero.

Coordinates and lattices use the v3.Matrix type, based on gonum's Dense. Each row
of a v3.Matrix is one point in space, or one lattice vector.*/
package magres
