/*
 * kind.go, part of gomagres.
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

// Kind is a calculation type found in the magres block of a file.
type Kind int

const (
	KindMS Kind = iota
	KindEFG
	KindEFGLocal
	KindEFGNonlocal
	KindISC
	KindISCSpin
	KindISCFC
	KindISCOrbitalP
	KindISCOrbitalD
)

var kindNames = [...]string{"ms", "efg", "efg_local", "efg_nonlocal", "isc", "isc_spin", "isc_fc", "isc_orbital_p", "isc_orbital_d"}

// MSKinds, EFGKinds and ISCKinds list the kinds of each record family, in the order
// they are linked.
var (
	MSKinds  = []Kind{KindMS}
	EFGKinds = []Kind{KindEFG, KindEFGLocal, KindEFGNonlocal}
	ISCKinds = []Kind{KindISC, KindISCSpin, KindISCFC, KindISCOrbitalP, KindISCOrbitalD}
)

// String returns the tag used for the kind in magres files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the Kind for a magres tag such as "efg_local".
func ParseKind(s string) (Kind, error) {
	for i, v := range kindNames {
		if v == s {
			return Kind(i), nil
		}
	}
	return -1, newError(ErrNotFound, "ParseKind", "unknown calculation kind %q", s)
}

// IsMS, IsEFG and IsISC tell the record family of a kind.
func (k Kind) IsMS() bool  { return k == KindMS }
func (k Kind) IsEFG() bool { return k >= KindEFG && k <= KindEFGNonlocal }
func (k Kind) IsISC() bool { return k >= KindISC && k <= KindISCOrbitalD }
