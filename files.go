/*
 * files.go, part of gomagres.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2 of the License, or
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package magres

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindAll returns the paths of all the entries under dir, recursively, whose
// names contain ".magres". That includes compressed or JSON versions such as
// "x.magres.json.zst". A directory whose name matches is returned as a single
// entry, and not searched. Paths are in lexical order.
func FindAll(dir string) ([]string, error) {
	ret := make([]string, 0, 10)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir || !strings.Contains(d.Name(), ".magres") {
			return nil
		}
		ret = append(ret, path)
		if d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, newError(ErrNotFound, "FindAll", "walking %s: %s", dir, err)
	}
	return ret, nil
}
