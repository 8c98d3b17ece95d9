/*
 * gonum.go, part of gomagres.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//gonum.go contains what is needed for handling the gonum/mat types.

//All the *Vec functions will operate/produce row vectors.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space.
// Within the package it is understood that a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space. The name of some funcitions in
// the library reflect this.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, &Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// NewVec returns a 1x3 Matrix with the given coordinates. The array
// is copied.
func NewVec(v [3]float64) *Matrix {
	return &Matrix{mat.NewDense(1, 3, []float64{v[0], v[1], v[2]})}
}

// Errors

// Error is the error type of the package. It keeps the chain of functions
// it went through, as added with Decorate.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("%s (%s)", err.message, strings.Join(err.deco, " <- "))
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("gomagres/v3: A Matrix should have 3 columns")
	ErrShape        = PanicMsg("gomagres/v3: Dimension mismatch")
)
