/*
 * unit.go, part of moldoc.
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
 *
 * Moldoc is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package unit implements physical quantities (scalars or arrays tagged with
a unit) and their conversion to the default unit system of moldoc:
angstrom, amu, femtosecond, elementary charge and kcal/mol. Only the
dimensions and units actually used by the library are covered.

*/
package unit

import "fmt"

//Dim is a physical dimension.
type Dim int

const (
	Dimensionless Dim = iota
	Length
	Mass
	Time
	Charge
	Energy
	Momentum
)

//Unit is a named physical unit: a dimension plus the multiplicative factor
//that takes a value in this unit to the default unit of the dimension.
type Unit struct {
	name   string
	dim    Dim
	factor float64
}

func (U *Unit) String() string { return U.name }

//Dim returns the physical dimension of the unit.
func (U *Unit) Dim() Dim { return U.dim }

//The units known to moldoc. The conversion factors for bohr, hartree,
//kJ/mol and eV are the usual ones (see, e.g., the CODATA recommended
//values).
var (
	Unitless    = &Unit{"dimensionless", Dimensionless, 1}
	Angstrom    = &Unit{"angstrom", Length, 1}
	Bohr        = &Unit{"bohr", Length, 1 / 1.889725989}
	Nanometer   = &Unit{"nanometer", Length, 10}
	AMU         = &Unit{"amu", Mass, 1}
	Femtosecond = &Unit{"femtosecond", Time, 1}
	Picosecond  = &Unit{"picosecond", Time, 1000}
	E           = &Unit{"e", Charge, 1}
	KcalMol     = &Unit{"kcal/mol", Energy, 1}
	KJMol       = &Unit{"kJ/mol", Energy, 1 / 4.184}
	Hartree     = &Unit{"hartree", Energy, 627.509}
	EV          = &Unit{"eV", Energy, 23.060548}
	AMUAngFs    = &Unit{"amu*angstrom/femtosecond", Momentum, 1}
)

var canonical = map[Dim]*Unit{
	Dimensionless: Unitless,
	Length:        Angstrom,
	Mass:          AMU,
	Time:          Femtosecond,
	Charge:        E,
	Energy:        KcalMol,
	Momentum:      AMUAngFs,
}

//Canonical returns the default unit for the dimension d.
func Canonical(d Dim) *Unit {
	return canonical[d]
}

//Quantity is a scalar, a flat array, or a rows x cols array of numbers
//tagged with a unit.
type Quantity struct {
	vals []float64
	rows int //0 for a scalar
	cols int //0 for a scalar or a flat array
	unit *Unit
}

//Scalar returns a scalar quantity of value v in the unit u.
func Scalar(v float64, u *Unit) *Quantity {
	return &Quantity{[]float64{v}, 0, 0, u}
}

//Vector returns a flat array quantity with the values in v, in the unit u.
//The values are copied.
func Vector(v []float64, u *Unit) *Quantity {
	vals := make([]float64, len(v))
	copy(vals, v)
	return &Quantity{vals, len(v), 0, u}
}

//Array returns a rows x cols array quantity from the row-major data, in
//the unit u. The values are copied. It returns an error if the data
//doesn't have rows*cols elements.
func Array(rows, cols int, data []float64, u *Unit) (*Quantity, error) {
	if len(data) != rows*cols {
		return nil, Error{fmt.Sprintf("%d values given for a %dx%d array", len(data), rows, cols), []string{"Array"}}
	}
	vals := make([]float64, len(data))
	copy(vals, data)
	return &Quantity{vals, rows, cols, u}, nil
}

//Unit returns the unit of the quantity.
func (Q *Quantity) Unit() *Unit { return Q.unit }

//Dim returns the physical dimension of the quantity.
func (Q *Quantity) Dim() Dim { return Q.unit.dim }

//In returns the quantity converted to the unit u. It returns an error if
//u is of a different dimension.
func (Q *Quantity) In(u *Unit) (*Quantity, error) {
	if u.dim != Q.unit.dim {
		return nil, Error{fmt.Sprintf("Can't convert %s to %s", Q.unit.name, u.name), []string{"In"}}
	}
	f := Q.unit.factor / u.factor
	vals := make([]float64, len(Q.vals))
	for i, v := range Q.vals {
		vals[i] = v * f
	}
	return &Quantity{vals, Q.rows, Q.cols, u}, nil
}

//Canon returns the quantity converted to the default unit of its dimension.
func (Q *Quantity) Canon() *Quantity {
	ret, err := Q.In(Canonical(Q.unit.dim))
	if err != nil {
		panic(err.Error()) //the canonical unit always has the right dimension, so this can't happen.
	}
	return ret
}

//Float returns the value of a scalar quantity. It returns an error if the
//quantity is not a scalar.
func (Q *Quantity) Float() (float64, error) {
	if Q.rows != 0 || Q.cols != 0 {
		return 0, Error{"Quantity is not a scalar", []string{"Float"}}
	}
	return Q.vals[0], nil
}

//Floats returns a copy of the values of the quantity as a flat slice.
func (Q *Quantity) Floats() []float64 {
	ret := make([]float64, len(Q.vals))
	copy(ret, Q.vals)
	return ret
}

//Value returns the bare magnitude of the quantity: a float64 for a
//scalar, a []float64 for a flat array, or a [][]float64 for a rows x cols
//array. The returned slices share no memory with the quantity.
func (Q *Quantity) Value() interface{} {
	if Q.rows == 0 && Q.cols == 0 {
		return Q.vals[0]
	}
	if Q.cols == 0 {
		return Q.Floats()
	}
	ret := make([][]float64, Q.rows)
	for i := 0; i < Q.rows; i++ {
		row := make([]float64, Q.cols)
		copy(row, Q.vals[i*Q.cols:(i+1)*Q.cols])
		ret[i] = row
	}
	return ret
}

//Error is the concrete error type for the unit package.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
