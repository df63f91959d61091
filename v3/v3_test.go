/*
 * v3_test.go, part of moldoc.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("Wrong element: %v", A.At(1, 2))
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("A slice not divisible by 3 should be rejected")
	}
}

func TestVecViewRow(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	v := A.VecView(1)
	if v.At(0, 0) != 4 || v.At(0, 2) != 6 {
		Te.Errorf("Wrong view: %v %v", v.At(0, 0), v.At(0, 2))
	}
	//views are views: changes reflect in the original
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("VecView should be a view, not a copy")
	}
	r := A.Row(nil, 0)
	if len(r) != 3 || r[1] != 2 {
		Te.Errorf("Wrong row: %v", r)
	}
}

func TestSubNorm(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0})
	B, _ := NewMatrix([]float64{3, 0, 4})
	D := Zeros(1)
	D.Sub(B, A)
	if math.Abs(D.Norm(2)-5) > 1e-12 {
		Te.Errorf("Wrong distance: %v", D.Norm(2))
	}
}

func TestCopy(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	B := Zeros(2)
	B.Copy(A)
	A.Set(0, 0, 9)
	if B.At(0, 0) != 1 {
		Te.Error("Copy should not alias the source")
	}
}
