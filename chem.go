/*
 * chem.go, part of moldoc.
 *
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
 *
 * Moldoc is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"fmt"

	v3 "github.com/rmera/moldoc/v3"
)

/**Note: Several funcitons here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the funciton on a nil object or trying to access out-of bounds
 * fields**/

//Atom contains the static information for one atom. The coordinates and
//momenta, which change between states, are kept in matrices outside the atom.
type Atom struct {
	Name    string  //PDB-style atom name
	Id      int     //the PDB-style sequence number
	Index   int     //the zero-based position of the atom in its topology
	Molname string  //the 3-letter code of the residue owning the atom
	Molid   int     //the sequence number of the residue owning the atom
	Chain   string  //the name of the chain owning the atom
	Mass    float64 //in amu
	Charge  float64 //the formal charge, in e
	Symbol  string
	Z       int //the atomic number
	Bonds   []*Bond
}

//Atom methods

//Copy returns a copy of the Atom object. The bonds are not copied, as
//they refer to other atoms, so the copy has no bonds.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.Id = A.Id
	Newat.Index = A.Index
	Newat.Molname = A.Molname
	Newat.Molid = A.Molid
	Newat.Chain = A.Chain
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	Newat.Symbol = A.Symbol
	Newat.Z = A.Z
	return Newat
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates, momenta and computed properties)
type Topology struct {
	Atoms    []*Atom
	charge   int
	unpaired int
}

//NewTopology returns a topology with charge charge, unpaired unpaired electrons,
//and the atoms in ats. It doesn't check for consistency or correct charge
//or unpaired electrons.
func NewTopology(charge, unpaired int, ats []*Atom) *Topology {
	top := new(Topology)
	if ats == nil {
		ats = make([]*Atom, 0, 10)
	}
	top.Atoms = ats
	top.charge = charge
	top.unpaired = unpaired
	return top
}

/*Topology methods*/

//Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

//Unpaired gets the number of unpaired electrons in the topology
func (T *Topology) Unpaired() int {
	return T.unpaired
}

//Multi returns the multiplicity of the topology
func (T *Topology) Multi() int {
	return T.unpaired + 1
}

//SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetUnpaired sets the number of unpaired electrons in the topology to i
func (T *Topology) SetUnpaired(i int) {
	T.unpaired = i
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//SetAtom sets the (i+1)th Atom of the topology to at.
//Panics if out of range
func (T *Topology) SetAtom(i int, at *Atom) {
	if i >= T.Len() {
		panic("Topology: Tried to set Atom out of bounds")
	}
	T.Atoms[i] = at
}

//AddAtom appends an atom at the end of the topology
func (T *Topology) AddAtom(at *Atom) {
	T.Atoms = append(T.Atoms, at)
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//FillIndexes sets the Index field of each atom to its
//current position in the topology.
func (T *Topology) FillIndexes() {
	for key := range T.Atoms {
		T.Atoms[key].Index = key
	}
}

//CopyAtoms returns a copy of the topology. The atoms of the copy carry
//no bonds.
func (T *Topology) CopyAtoms() *Topology {
	Top := new(Topology)
	Top.Atoms = make([]*Atom, T.Len())
	for key, val := range T.Atoms {
		Top.Atoms[key] = val.Copy()
	}
	Top.charge = T.charge
	Top.unpaired = T.unpaired
	return Top
}

//Masses returns a slice with the masses of all atoms, in amu. For atoms
//with no mass set it falls back to the standard mass for the atom's element.
//It returns an error if a mass is missing and can not be obtained.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		thisatom := T.Atom(i)
		if thisatom.Mass == 0 {
			thisatom.Mass = symbolMass[thisatom.Symbol]
		}
		if thisatom.Mass == 0 {
			return nil, CError{fmt.Sprintf("Not all the masses have been obtained: %d %v", i, thisatom), []string{"Masses"}}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

/**Residue and chain grouping**/

//Residue is one residue of a topology: its 3-letter code, its sequence
//number, the chain it belongs to and the indexes of its member atoms.
type Residue struct {
	Name  string //the 3-letter code
	Id    int    //the sequence number
	Chain string
	Atoms []int //indexes into the atom slice of the topology
}

//Chain is one chain of a topology: its name and the positions, in the
//residue slice returned along with it by Groups, of its member residues.
type Chain struct {
	Name     string
	Residues []int
}

//Groups returns the residues of the topology, and the chains grouping them.
//Atoms are assigned to the same residue while their Molid and Chain
//fields don't change, so atoms of a residue are expected to be contiguous,
//as they are in a PDB. The indexes in each Chain refer to the returned
//residue slice.
func (T *Topology) Groups() ([]*Residue, []*Chain) {
	residues := make([]*Residue, 0, 10)
	var cur *Residue
	for i, at := range T.Atoms {
		if cur == nil || at.Molid != cur.Id || at.Chain != cur.Chain {
			cur = &Residue{Name: at.Molname, Id: at.Molid, Chain: at.Chain, Atoms: make([]int, 0, 10)}
			residues = append(residues, cur)
		}
		cur.Atoms = append(cur.Atoms, i)
	}
	chains := make([]*Chain, 0, 5)
	bychain := make(map[string]*Chain)
	for i, res := range residues {
		ch, ok := bychain[res.Chain]
		if !ok {
			ch = &Chain{Name: res.Chain, Residues: make([]int, 0, 10)}
			bychain[res.Chain] = ch
			chains = append(chains, ch)
		}
		ch.Residues = append(ch.Residues, i)
	}
	return residues, chains
}

/**Type EnergyModel**/

//EnergyModel describes the computational method used to obtain the
//calculated properties of a state, and the parameters given to it.
type EnergyModel struct {
	Name   string
	Params map[string]interface{}
}

//CopyParams returns a copy of the parameter map of the model. Changes to
//the returned map do not affect the model. The values themselves are not
//deep-copied.
func (Q *EnergyModel) CopyParams() map[string]interface{} {
	params := make(map[string]interface{}, len(Q.Params))
	for k, v := range Q.Params {
		params[k] = v
	}
	return params
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in one state: a topology
//plus the current coordinates, momenta, and the properties computed for
//this state, with the model that computed them.
type Molecule struct {
	*Topology
	Name    string
	Coords  *v3.Matrix             //in A. Can be nil.
	Momenta *v3.Matrix             //in amu*A/fs. Can be nil.
	Data    map[string]interface{} //computed properties for the current state. Can be nil.
	Model   *EnergyModel           //the method that computed Data. Can be nil.
}

//NewMolecule makes a molecule named name from the given topology and
//coordinates. Momenta, properties and the energy model can be set on the
//returned molecule directly. It returns an error if the topology is nil
//or the coordinates, when given, don't match the number of atoms.
func NewMolecule(name string, top *Topology, coords *v3.Matrix) (*Molecule, error) {
	if top == nil {
		return nil, CError{"Supplied a nil Topology", []string{"NewMolecule"}}
	}
	mol := new(Molecule)
	mol.Topology = top
	mol.Name = name
	mol.Coords = coords
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Corrupted checks that the coordinates and momenta of the molecule, when
//present, have one vector per atom.
func (M *Molecule) Corrupted() error {
	if M.Coords != nil && M.Coords.NVecs() != M.Len() {
		return CError{fmt.Sprintf("Number of coordinates (%d) does not match the number of atoms (%d)", M.Coords.NVecs(), M.Len()), []string{"Molecule.Corrupted"}}
	}
	if M.Momenta != nil && M.Momenta.NVecs() != M.Len() {
		return CError{fmt.Sprintf("Number of momenta (%d) does not match the number of atoms (%d)", M.Momenta.NVecs(), M.Len()), []string{"Molecule.Corrupted"}}
	}
	return nil
}
