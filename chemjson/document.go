/*
 * document.go, part of moldoc.
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

package chemjson

//Document is a ready-to-serialize snapshot of a molecule or trajectory.
//It holds no references into the source objects.
type Document struct {
	Name       string      `json:"name"`
	Provenance interface{} `json:"provenance,omitempty"` //caller-supplied, opaque
	Topology   *Topology   `json:"topology"`
	States     []*State    `json:"states"` //one state per frame; length 1 for a single molecule
}

//Topology is the static, structural part of the document.
type Topology struct {
	AtomArray *AtomArray `json:"atomArray"`
	BondArray *BondArray `json:"bondArray"`
	Groups    *Groups    `json:"groups,omitempty"` //only when there is more than one residue
	Charge    float64    `json:"charge"`           //total formal charge, in e. A bare number, not a Quantity.
}

//AtomArray holds the per-atom data as parallel arrays.
type AtomArray struct {
	Names           []string  `json:"names"`
	AtomicNumbers   []int     `json:"atomicNumbers"`
	FormalCharges   []float64 `json:"formalCharges"` //in e. Bare numbers, not a Quantity.
	SequenceNumbers []int     `json:"sequenceNumbers"`
	Masses          *Quantity `json:"masses"`
}

//BondArray holds the per-bond data as parallel arrays. WibergOrders is a
//reserved slot: it always has the same length as LewisOrders, and every
//element is null, as moldoc never computes Wiberg bond orders.
type BondArray struct {
	AtomIndices  [][2]int   `json:"atomIndices"`
	LewisOrders  []float64  `json:"lewisOrders"`
	WibergOrders []*float64 `json:"wibergOrders"`
}

//Groups holds the residue and chain structure of the molecule.
type Groups struct {
	ResidueArray *ResidueArray `json:"residueArray"`
	ChainArray   *ChainArray   `json:"chainArray"`
}

//ResidueArray holds the per-residue data as parallel arrays. AtomIndices
//partitions the atom set: every atom index appears in exactly one residue.
type ResidueArray struct {
	ResidueCodes    []string `json:"residueCodes"`
	SequenceNumbers []int    `json:"sequenceNumbers"`
	AtomIndices     [][]int  `json:"atomIndices"`
}

//ChainArray holds the per-chain data as parallel arrays. The residue
//indices refer to the positions in the residueArray of the same document.
type ChainArray struct {
	ChainNames     []string `json:"chainNames"`
	ResidueIndices [][]int  `json:"residueIndices"`
}

//State is a snapshot of the dynamical variables of the molecule at one
//instant or trajectory frame. Fields that were not supplied are omitted.
type State struct {
	Positions   *Quantity              `json:"positions,omitempty"`
	Momenta     *Quantity              `json:"momenta,omitempty"`
	Time        *Quantity              `json:"time,omitempty"`
	Step        *int                   `json:"step,omitempty"`
	Description string                 `json:"description,omitempty"`
	Calculated  map[string]interface{} `json:"calculated,omitempty"`
}

//Quantity is the document encoding of a physical quantity: the bare
//magnitude (a number, a list, or a nested list) after conversion to the
//moldoc default unit system, plus the name of the unit it is now in.
type Quantity struct {
	Val   interface{} `json:"val"`
	Units string      `json:"units"`
}
