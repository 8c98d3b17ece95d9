/*
 * json_test.go, part of gomagres.
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

package magresjson

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/gomagres"
)

const sample = `{
 "atoms": {
  "units": [["lattice", "Angstrom"], ["atom", "Angstrom"]],
  "lattice": [[[10, 0, 0], [0, 10, 0], [0, 0, 10]]],
  "atom": [
   {"species": "C", "label": "C1", "index": 1, "position": [0, 0, 0]},
   {"species": "C", "label": "C1", "index": 2, "position": [9, 0, 0]},
   {"species": "O", "label": "O1", "index": 1, "position": [5, 5, 5]}
  ]
 },
 "magres": {
  "ms": [
   {"atom": {"label": "C1", "index": 1}, "sigma": [[10, 0, 0], [0, 50, 0], [0, 0, 120]]},
   {"atom": {"label": "C1", "index": 2}, "sigma": [[20, 0, 0], [0, 60, 0], [0, 0, 130]]}
  ],
  "efg": [
   {"atom": {"label": "O1", "index": 1}, "V": [[1, 0, 0], [0, 1, 0], [0, 0, -2]]}
  ],
  "efg_local": [],
  "isc": [
   {"atom1": {"label": "C1", "index": 1}, "atom2": {"label": "C1", "index": 2}, "K": [[1, 0, 0], [0, 2, 0], [0, 0, 3]]}
  ]
 }
}`

func TestRead(Te *testing.T) {
	data, err := Read(strings.NewReader(sample))
	if err != nil {
		Te.Fatal(err)
	}
	if len(data.Atoms.Atom) != 3 || len(data.Atoms.Lattice) != 1 {
		Te.Fatalf("wrong atoms block %+v", data.Atoms)
	}
	if data.Magres.EFGLocal == nil || len(data.Magres.EFGLocal) != 0 {
		Te.Error("efg_local is present but empty")
	}
	if data.Magres.EFGNonlocal != nil || data.Magres.ISCFC != nil {
		Te.Error("efg_nonlocal and isc_fc are absent")
	}
	if data.Magres.ISC[0].K[2][2] != 3 {
		Te.Errorf("wrong K %v", data.Magres.ISC[0].K)
	}
	A, err := magres.New(data)
	if err != nil {
		Te.Fatal(err)
	}
	if !A.Has(magres.KindEFGLocal) || A.Has(magres.KindEFGNonlocal) {
		Te.Error("wrong kinds present")
	}
	d := A.ISC(magres.KindISC)[0].Dist()
	dmin, _, err := A.LeastMirror(A.Atom(1).Position(), A.Atom(0).Position())
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Plain and periodic distances:", d, dmin)
	if math.Abs(dmin-1) > 1e-9 {
		Te.Errorf("periodic distance should be 1, got %f", dmin)
	}
	if _, err := Read(strings.NewReader(`{"atoms": [`)); err == nil {
		Te.Error("expected an error for broken JSON")
	}
}

func TestFiles(Te *testing.T) {
	data, err := Read(strings.NewReader(sample))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, n := range []string{"test.magres.json", "test.magres.json.gz", "test.magres.json.zst"} {
		name := filepath.Join(dir, n)
		if err := WriteFile(name, data); err != nil {
			Te.Fatal(err)
		}
		data2, err := ReadFile(name)
		if err != nil {
			Te.Fatal(err)
		}
		if diff := cmp.Diff(data, data2); diff != "" {
			Te.Errorf("%s: data changed on write and read (-want +got):\n%s", n, diff)
		}
		A, err := Load(name)
		if err != nil {
			Te.Fatal(err)
		}
		if A.Len() != 3 {
			Te.Errorf("%s: expected 3 atoms, got %d", n, A.Len())
		}
	}
	raw, err := os.ReadFile(filepath.Join(dir, "test.magres.json.gz"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		Te.Error("gz file is not gzip-compressed")
	}
	if _, err := ReadFile(filepath.Join(dir, "nothere.json")); !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("expected a not-exist error, got %v", err)
	}
	list, err := magres.FindAll(dir)
	if err != nil || len(list) != 3 {
		Te.Errorf("expected 3 magres files, got %v %v", list, err)
	}
}

func TestLoadUnresolved(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "bad.magres.json")
	bad := strings.Replace(sample, `"atom2": {"label": "C1", "index": 2}`, `"atom2": {"label": "C1", "index": 5}`, 1)
	if err := os.WriteFile(name, []byte(bad), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err := Load(name)
	if !errors.Is(err, magres.ErrNotFound) {
		Te.Errorf("expected ErrNotFound, got %v", err)
	}
	fmt.Println(err)
}

func TestCompressionOf(Te *testing.T) {
	cases := map[string]Compression{"a.json": None, "a.JSON.GZ": Gzip, "x.magres.zst": Zstd, "y.zstd": Zstd, "z.magres": None}
	for n, c := range cases {
		if got := CompressionOf(n); got != c {
			Te.Errorf("%s: expected %d, got %d", n, c, got)
		}
	}
}
