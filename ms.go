/*
 * ms.go, part of gomagres.
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

import "gonum.org/v1/gonum/mat"

// MS is a magnetic shielding tensor on one atom.
type MS struct {
	atom         *Atom
	sigma        *mat.Dense
	reference    float64
	hasReference bool
	haeberlen    Haeberlen
}

// NewMS returns the shielding record for atom. A reference shielding
// is used if given.
func NewMS(atom *Atom, sigma [3][3]float64, reference ...float64) (*MS, error) {
	if atom == nil {
		return nil, newError(ErrNotFound, "NewMS", "nil atom")
	}
	M := &MS{atom: atom, sigma: tensorDense(sigma)}
	if len(reference) > 0 {
		M.reference = reference[0]
		M.hasReference = true
	}
	var err error
	M.haeberlen, err = NewHaeberlen(M.sigma)
	if err != nil {
		return nil, errDecorate(err, "NewMS")
	}
	return M, nil
}

func (M *MS) Atom() *Atom { return M.atom }

// Sigma returns a copy of the shielding tensor, in ppm.
func (M *MS) Sigma() *mat.Dense {
	return mat.DenseCopyOf(M.sigma)
}

// Reference returns the reference shielding, and false if none was given.
func (M *MS) Reference() (float64, bool) {
	return M.reference, M.hasReference
}

// SigmaIso returns the isotropic shielding, trace(sigma)/3.
func (M *MS) SigmaIso() float64 {
	return Iso(M.sigma)
}

// Iso returns the isotropic chemical shift, reference-trace(sigma)/3. Without
// a reference, 0 is used.
func (M *MS) Iso() float64 {
	return M.reference - M.SigmaIso()
}

// Haeberlen returns the principal components of sigma in the Haeberlen convention.
func (M *MS) Haeberlen() Haeberlen { return M.haeberlen }

// Aniso returns the shielding anisotropy.
func (M *MS) Aniso() float64 { return M.haeberlen.Aniso() }

// Eta returns the shielding asymmetry. See Haeberlen.Eta.
func (M *MS) Eta() (float64, error) {
	eta, err := M.haeberlen.Eta()
	if err != nil {
		return 0, errDecorate(err, "MS.Eta "+M.atom.String())
	}
	return eta, nil
}
