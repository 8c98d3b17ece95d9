/*
 * v3_test.go, part of gomagres.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	fmt.Println(A)
	_, err = NewMatrix([]float64{1, 2})
	if err == nil {
		Te.Error("a slice of length 2 should not give a matrix")
	}
	var e *Error
	if !errors.As(err, &e) {
		Te.Fatalf("expected a *v3.Error, got %v", err)
	}
	e.Decorate("caller")
	if msg := err.Error(); !strings.Contains(msg, "NewMatrix") || !strings.Contains(msg, "caller") {
		Te.Errorf("decoration was lost: %s", msg)
	}
}

func TestDistance(Te *testing.T) {
	a := NewVec([3]float64{0, 0, 0})
	b := NewVec([3]float64{3, 4, 0})
	if d := a.Distance(b); math.Abs(d-5) > 1e-12 {
		Te.Errorf("expected distance 5, got %f", d)
	}
	if d := a.Dot(b); d != 0 {
		Te.Errorf("expected dot product 0, got %f", d)
	}
	if d := b.Dot(b); d != 25 {
		Te.Errorf("expected dot product 25, got %f", d)
	}
}

func TestTranslation(Te *testing.T) {
	L, _ := NewMatrix([]float64{10, 0, 0, 1, 10, 0, 0, 0, 10})
	T := Zeros(1)
	T.Translation(L, [3]float64{1, -1, 1})
	if T.Vec(0) != [3]float64{9, -10, 10} {
		Te.Errorf("wrong translation %v", T)
	}
	C := mat.NewDense(1, 3, nil)
	C.Mul(mat.NewDense(1, 3, []float64{1, -1, 1}), L)
	if !mat.Equal(C, T) {
		Te.Errorf("Translation and Mul disagree: %v %v", C, T)
	}
}
