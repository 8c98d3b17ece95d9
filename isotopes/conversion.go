/*
 * conversion.go, part of gomagres.
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

package isotopes

//This provides useful conversion factors and other constants

// Physical constants, SI (CODATA 2018)
const (
	Planck           = 6.62607015e-34  //J s
	ElementaryCharge = 1.602176634e-19 //C
	EFGAU            = 9.7173624292e21 //V m^-2 per atomic unit of EFG
)

// Conversions
const (
	Millibarn = 1e-31 //m^2
	MHz       = 1e6
	KUnit     = 1e19 //magres files give K in 10^19 T^2 J^-1
)
