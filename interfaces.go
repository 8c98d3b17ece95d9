/*
 * interfaces.go, part of gomagres.
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

package magres

import v3 "github.com/rmera/gomagres/v3"

// Constants is the source of nuclear data. isotopes.Table implements it.
// A false second return value means "no data", which is not the same as a
// zero value.
type Constants interface {

	//DefaultIsotope returns the isotope assumed for a species.
	DefaultIsotope(species string) (int, bool)

	//Gamma returns the gyromagnetic ratio in rad s^-1 T^-1.
	Gamma(species string, isotope int) (float64, bool)

	//Q returns the quadrupole moment in millibarn.
	Q(species string, isotope int) (float64, bool)

	//KToJ returns the factor to go from a reduced coupling K to J (Hz) between two nuclei.
	KToJ(species1 string, isotope1 int, species2 string, isotope2 int) (float64, bool)

	//EFGToCq returns the factor to go from an EFG component (au) to Cq (MHz).
	EFGToCq(species string, isotope int) (float64, bool)
}

// Positioner is the read-only view shared by Atom and Image.
type Positioner interface {
	Species() string
	Label() string
	Index() int

	//Isotope returns the resolved isotope, and false if it is unknown.
	Isotope() (int, bool)

	//Position returns a copy of the cartesian coordinates, as a 1x3 matrix.
	Position() *v3.Matrix

	//DistanceTo returns the plain euclidean distance to the point p.
	DistanceTo(p *v3.Matrix) float64

	//Dist returns the plain euclidean distance to another Positioner.
	Dist(other Positioner) float64
}

// Errorer is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Errorer interface {
	Error() string
	Decorate(string) []string
}
