/*
 * main_test.go, part of gomagres.
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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gomagres"
	"github.com/rmera/gomagres/magresjson"
	"go.uber.org/zap"
)

func diag(a, b, c float64) [3][3]float64 {
	return [3][3]float64{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// writeTestFile writes a small structure to dir and returns its name.
func writeTestFile(Te *testing.T, dir string) string {
	d := new(magres.Data)
	d.Atoms.Lattice = [][3][3]float64{diag(10, 10, 10)}
	d.Atoms.Atom = []magres.AtomRecord{
		{Species: "H", Label: "H1", Index: 1, Position: [3]float64{0.5, 0.5, 0.5}},
		{Species: "C", Label: "C1", Index: 1, Position: [3]float64{9.5, 0.5, 0.5}},
		{Species: "O", Label: "O1", Index: 1, Position: [3]float64{5, 5, 5}},
	}
	d.Magres.MS = []magres.MSRecord{
		{Atom: magres.AtomRef{Label: "H1", Index: 1}, Sigma: diag(30, 31, 32)},
		{Atom: magres.AtomRef{Label: "C1", Index: 1}, Sigma: diag(10, 50, 120)},
		{Atom: magres.AtomRef{Label: "O1", Index: 1}, Sigma: diag(200, 250, 260)},
	}
	d.Magres.EFG = []magres.EFGRecord{
		{Atom: magres.AtomRef{Label: "O1", Index: 1}, V: diag(1, 1, -2)},
	}
	d.Magres.ISC = []magres.ISCRecord{
		{Atom1: magres.AtomRef{Label: "H1", Index: 1}, Atom2: magres.AtomRef{Label: "C1", Index: 1}, K: diag(40, 45, 50)},
	}
	name := filepath.Join(dir, "test.magres.json.zst")
	if err := magresjson.WriteFile(name, d); err != nil {
		Te.Fatal(err)
	}
	return name
}

func run(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfig(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "conf.yaml")
	conf := "references:\n  H: 31.0\n  C: 170\nisotopes:\n  H: 2\n  N: 15\n"
	if err := os.WriteFile(name, []byte(conf), 0o644); err != nil {
		Te.Fatal(err)
	}
	c, err := LoadConfig(name)
	if err != nil {
		Te.Fatal(err)
	}
	if c.References["C"] != 170 || c.Isotopes["H"] != 2 {
		Te.Errorf("wrong config %+v", c)
	}
	A, err := load(writeTestFile(Te, dir), c, zap.NewNop())
	if err != nil {
		Te.Fatal(err)
	}
	h, _ := A.GetSpecies("H", 1)
	if iso, _ := h.Isotope(); iso != 2 {
		Te.Errorf("H isotope should be 2, got %d", iso)
	}
	if ref, ok := h.MS().Reference(); !ok || ref != 31 {
		Te.Errorf("H reference should be 31, got %f", ref)
	}
	c.Isotopes["O"] = 18
	if err := c.ApplyIsotopes(A); !errors.Is(err, magres.ErrInvalidIsotope) {
		Te.Errorf("expected ErrInvalidIsotope, got %v", err)
	}
	if err := os.WriteFile(name, []byte("references: [1, 2"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadConfig(name); err == nil {
		Te.Error("expected an error for broken YAML")
	}
	if c, err := LoadConfig(""); err != nil || len(c.References) != 0 {
		Te.Errorf("empty path should give an empty config: %v %v", c, err)
	}
}

func TestCommands(Te *testing.T) {
	dir := Te.TempDir()
	name := writeTestFile(Te, dir)
	out, err := run("atoms", name)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, "17O(O1)1") || strings.Count(out, "lattice") != 3 {
		Te.Errorf("wrong atoms output:\n%s", out)
	}
	out, err = run("within", name, "H1", "1", "1.5")
	if err != nil {
		Te.Fatal(err)
	}
	//C1 is 1 away through the periodic boundary
	if !strings.Contains(out, "13C(C1)1") || strings.Contains(out, "O1") || !strings.Contains(out, "-0.50000") {
		Te.Errorf("wrong within output:\n%s", out)
	}
	out, err = run("ms", name)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(out)
	if strings.Count(out, "\n") != 4 {
		Te.Errorf("expected a header and 3 atoms:\n%s", out)
	}
	out, err = run("efg", name)
	if err != nil || !strings.Contains(out, "-2.0000") {
		Te.Errorf("wrong efg output %v:\n%s", err, out)
	}
	if _, err := run("efg", "--kind", "efg_local", name); err == nil {
		Te.Error("there are no local EFGs")
	}
	if _, err := run("efg", "--kind", "isc", name); err == nil {
		Te.Error("isc is not an EFG kind")
	}
	out, err = run("isc", name)
	if err != nil || !strings.Contains(out, "1H(H1)1 -> 13C(C1)1") {
		Te.Errorf("wrong isc output %v:\n%s", err, out)
	}
	out, err = run("summary", name)
	if err != nil || !strings.Contains(out, "3 atoms") || !strings.Contains(out, "Cq (MHz)") {
		Te.Errorf("wrong summary %v:\n%s", err, out)
	}
	out, err = run("summary", "--bins", "4", name)
	if err != nil || !strings.Contains(out, "(1 points)") || !strings.Contains(out, "#") {
		Te.Errorf("wrong summary histograms %v:\n%s", err, out)
	}
	out, err = run("summary", "--bins", "4", "--normalize", name)
	if err != nil || !strings.Contains(out, "1.000 #") {
		Te.Errorf("wrong normalized histograms %v:\n%s", err, out)
	}
	png := filepath.Join(dir, "shifts")
	if _, err := run("plot", "--type", "spectrum", "-o", png, name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(png + ".png"); err != nil {
		Te.Error(err)
	}
	if _, err := run("plot", "--what", "nothing", name); err == nil {
		Te.Error("expected an error for an unknown quantity")
	}
	out, err = run("find", dir)
	if err != nil || strings.TrimSpace(out) != name {
		Te.Errorf("wrong find output %v:\n%s", err, out)
	}
	conf := filepath.Join(dir, "conf.yaml")
	if err := os.WriteFile(conf, []byte("references:\n  C: 170\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	out, err = run("ms", "--config", conf, name)
	if err != nil || !strings.Contains(out, "110.0000") {
		Te.Errorf("the C reference should give a shift of 110 %v:\n%s", err, out)
	}
}
