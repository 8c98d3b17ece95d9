/*
 * errors.go, part of gomagres.
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

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Use errors.Is to check which one an *Error carries.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidIsotope     = errors.New("invalid isotope")
	ErrMissingLattice     = errors.New("no lattice")
	ErrUndefinedAsymmetry = errors.New("undefined asymmetry")
	ErrNoData             = errors.New("no data")
	ErrInvalidInput       = errors.New("invalid input")
)

// Error is the error type of the package. It implements Errorer. The kind is
// one of the Err* variables above, and is what Unwrap returns.
type Error struct {
	message string
	kind    error
	deco    []string
}

func newError(kind error, caller string, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

// Error returns the message, followed by the kind and the chain of functions
// that decorated the error.
func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", err.kind, err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds dec to the decoration slice of the error, and returns the
// resulting slice. An empty dec only returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap returns the kind of the error.
func (err *Error) Unwrap() error { return err.kind }

// errDecorate decorates err with the caller's name if err is an Errorer,
// and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Errorer); ok {
		err2.Decorate(caller)
	}
	return err
}
