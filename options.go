/*
 * options.go, part of gomagres
 *
 * Copyright 2020 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package magres

import (
	"github.com/rmera/gomagres/isotopes"
	"go.uber.org/zap"
)

// Options controls how a registry is built from a Data.
type Options struct {
	constants  Constants
	logger     *zap.Logger
	references map[string]float64
}

// DefaultOptions returns an Options with the built-in isotope table,
// no references and a no-op logger.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.constants = isotopes.Default()
	ret.logger = zap.NewNop()
	ret.references = make(map[string]float64)
	return ret
}

// Constants returns the source of nuclear data, and sets it,
// if a non-nil value is given.
func (r *Options) Constants(c ...Constants) Constants {
	ret := r.constants
	if len(c) > 0 && c[0] != nil {
		r.constants = c[0]
	}
	return ret
}

// Logger returns the logger used while linking, and sets it, if
// a non-nil value is given.
func (r *Options) Logger(l ...*zap.Logger) *zap.Logger {
	ret := r.logger
	if len(l) > 0 && l[0] != nil {
		r.logger = l[0]
	}
	return ret
}

// Reference returns the reference shielding for species, and whether there is
// one. If ref is given, it is set as the reference for the species, and
// given to the MS records of atoms of that species when they are linked.
func (r *Options) Reference(species string, ref ...float64) (float64, bool) {
	ret, ok := r.references[species]
	if len(ref) > 0 {
		if r.references == nil {
			r.references = make(map[string]float64)
		}
		r.references[species] = ref[0]
	}
	return ret, ok
}

func getOptions(options []*Options) *Options {
	if len(options) > 0 && options[0] != nil {
		return options[0]
	}
	return DefaultOptions()
}
