/*
 * chem_test.go, part of moldoc.
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

package chem

import (
	"fmt"
	"testing"

	v3 "github.com/rmera/moldoc/v3"
)

func TestTopology(Te *testing.T) {
	fmt.Println("Topology test!")
	ats := []*Atom{
		{Name: "O", Symbol: "O", Id: 1},
		{Name: "H1", Symbol: "H", Id: 2},
		{Name: "H2", Symbol: "H", Id: 3},
	}
	top := NewTopology(-1, 0, ats)
	if top.Len() != 3 || top.Charge() != -1 || top.Multi() != 1 {
		Te.Error("Wrong topology accessors")
	}
	top.FillIndexes()
	if top.Atom(2).Index != 2 {
		Te.Error("FillIndexes didn't fill the indexes")
	}
	masses, err := top.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	//no masses were set, so they come from the element table
	if masses[0] != 16.00 || masses[1] != 1.008 {
		Te.Errorf("Wrong masses: %v", masses)
	}
	top.AddAtom(&Atom{Name: "X", Symbol: "Xx"})
	if _, err := top.Masses(); err == nil {
		Te.Error("An unknown element with no mass should make Masses fail")
	}
}

func TestGroups(Te *testing.T) {
	ats := []*Atom{
		{Name: "N", Molname: "ALA", Molid: 1, Chain: "A"},
		{Name: "CA", Molname: "ALA", Molid: 1, Chain: "A"},
		{Name: "N", Molname: "GLY", Molid: 2, Chain: "A"},
		{Name: "O", Molname: "HOH", Molid: 1, Chain: "B"},
	}
	top := NewTopology(0, 0, ats)
	residues, chains := top.Groups()
	if len(residues) != 3 {
		Te.Fatalf("Expected 3 residues, got %d", len(residues))
	}
	if residues[0].Name != "ALA" || len(residues[0].Atoms) != 2 {
		Te.Errorf("Wrong first residue: %v", residues[0])
	}
	if residues[2].Chain != "B" || residues[2].Atoms[0] != 3 {
		Te.Errorf("Wrong last residue: %v", residues[2])
	}
	if len(chains) != 2 || chains[0].Name != "A" || len(chains[0].Residues) != 2 {
		Te.Errorf("Wrong chains: %v", chains)
	}
	if chains[1].Residues[0] != 2 {
		Te.Errorf("Chain B should contain the third residue: %v", chains[1].Residues)
	}
}

func TestGroupsSingleResidue(Te *testing.T) {
	//atoms with no residue info all land in one residue
	top := NewTopology(0, 0, []*Atom{{Name: "H"}, {Name: "H"}})
	residues, chains := top.Groups()
	if len(residues) != 1 || len(chains) != 1 {
		Te.Errorf("Expected a single residue and chain, got %d %d", len(residues), len(chains))
	}
}

func TestMolecule(Te *testing.T) {
	top := NewTopology(0, 0, []*Atom{{Name: "H", Symbol: "H"}, {Name: "H", Symbol: "H"}})
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 0.74})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule("H2", top, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Corrupted() != nil {
		Te.Error("A fresh molecule shouldn't be corrupted")
	}
	if _, err := NewMolecule("bad", top, v3.Zeros(5)); err == nil {
		Te.Error("Mismatched coordinates should be rejected")
	}
	if _, err := NewMolecule("worse", nil, nil); err == nil {
		Te.Error("A nil topology should be rejected")
	}
	mol.Momenta = v3.Zeros(5)
	if mol.Corrupted() == nil {
		Te.Error("Mismatched momenta should corrupt the molecule")
	}
}

func TestAtomCopy(Te *testing.T) {
	at := &Atom{Name: "CA", Symbol: "C", Id: 2, Molname: "ALA", Molid: 1, Chain: "A", Mass: 12.01, Charge: 0, Z: 6}
	at.Bonds = append(at.Bonds, &Bond{Index: 0})
	c := at.Copy()
	if c.Name != at.Name || c.Molid != at.Molid || c.Z != at.Z {
		Te.Error("Copy lost atom data")
	}
	if c.Bonds != nil {
		Te.Error("Copy should not carry the bonds")
	}
	c.Name = "CB"
	if at.Name != "CA" {
		Te.Error("Copy should not alias the original")
	}
}

func TestEnergyModel(Te *testing.T) {
	m := &EnergyModel{Name: "b3lyp", Params: map[string]interface{}{"basis": "def2-SVP"}}
	p := m.CopyParams()
	p["basis"] = "def2-TZVP"
	if m.Params["basis"] != "def2-SVP" {
		Te.Error("CopyParams should not alias the model's map")
	}
}
