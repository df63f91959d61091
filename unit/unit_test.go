/*
 * unit_test.go, part of moldoc.
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

package unit

import (
	"fmt"
	"math"
	"testing"
)

//A quantity of magnitude 1.0 in some unit, taken to the canonical unit
//and back, has to reproduce the same physical quantity.
func TestRoundTrip(Te *testing.T) {
	fmt.Println("Unit round-trip test!")
	for _, u := range []*Unit{Bohr, Nanometer, Picosecond, Hartree, KJMol, EV} {
		q := Scalar(1.0, u)
		c := q.Canon()
		if c.Unit() != Canonical(u.Dim()) {
			Te.Errorf("Canon of %s ended in %s", u, c.Unit())
		}
		back, err := c.In(u)
		if err != nil {
			Te.Error(err)
		}
		v, err := back.Float()
		if err != nil {
			Te.Error(err)
		}
		if math.Abs(v-1.0) > 1e-12 {
			Te.Errorf("Round trip through %s gives %v", u, v)
		}
	}
}

func TestConversionValues(Te *testing.T) {
	//1 nm = 10 A
	v, err := Scalar(1.0, Nanometer).Canon().Float()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(v-10) > 1e-12 {
		Te.Errorf("1 nm should be 10 angstrom, got %v", v)
	}
	//1 hartree = 627.509 kcal/mol
	v, err = Scalar(1.0, Hartree).Canon().Float()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(v-627.509) > 1e-9 {
		Te.Errorf("1 hartree should be 627.509 kcal/mol, got %v", v)
	}
}

func TestDimensionMismatch(Te *testing.T) {
	q := Scalar(1.0, Angstrom)
	if _, err := q.In(Femtosecond); err == nil {
		Te.Error("Converting a length to a time should fail")
	}
}

func TestValueShapes(Te *testing.T) {
	if _, ok := Scalar(2.5, AMU).Value().(float64); !ok {
		Te.Error("A scalar should yield a float64")
	}
	vec := Vector([]float64{1, 2, 3}, AMU)
	if v, ok := vec.Value().([]float64); !ok || len(v) != 3 {
		Te.Error("A flat array should yield a []float64")
	}
	arr, err := Array(2, 3, []float64{1, 2, 3, 4, 5, 6}, Angstrom)
	if err != nil {
		Te.Fatal(err)
	}
	nested, ok := arr.Value().([][]float64)
	if !ok || len(nested) != 2 || nested[1][0] != 4 {
		Te.Errorf("A 2x3 array should yield a nested list: %v", arr.Value())
	}
	//the returned slices must not alias the quantity
	nested[0][0] = 42
	if again := arr.Value().([][]float64); again[0][0] == 42 {
		Te.Error("Value should not share memory with the quantity")
	}
	if _, err := Array(2, 3, []float64{1, 2, 3}, Angstrom); err == nil {
		Te.Error("A short data slice should be rejected")
	}
	if _, err := arr.Float(); err == nil {
		Te.Error("Float on an array should fail")
	}
}
