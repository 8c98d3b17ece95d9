/*
 * doc.go, part of gomagres.
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

//Package magresjson reads and writes the parsed tree of a magres file as JSON.
//Files ending in .gz are gzip-compressed, and files ending in .zst are
//compressed with z-standard. The JSON keys are the tags of the magres format,
//for instance:
//
//	{"atoms": {"lattice": [[[10,0,0],[0,10,0],[0,0,10]]],
//	           "atom": [{"species": "H", "label": "H1", "index": 1, "position": [0,0,0]}]},
//	 "magres": {"ms": [{"atom": {"label": "H1", "index": 1}, "sigma": [[30,0,0],[0,30,0],[0,0,30]]}],
//	            "efg": null}}
//
//A missing or null key means that the calculation kind is absent, while an
//empty list means it was present with no records.
package magresjson
