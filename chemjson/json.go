/*
 * json.go, part of moldoc.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"strings"

	chem "github.com/rmera/moldoc"
	"github.com/rmera/moldoc/unit"
	v3 "github.com/rmera/moldoc/v3"
)

//Convert builds a Document from a molecule: its name, the caller-supplied
//provenance (kept opaque; give nil for none), its topology, and a single
//state with the molecule's current coordinates, momenta and computed
//properties. The molecule must have a name and at least one atom;
//otherwise the whole conversion fails, there is no partial output.
func Convert(mol *chem.Molecule, provenance interface{}) (*Document, *Error) {
	const funcname = "Convert"
	if err := checkMolecule(mol, funcname); err != nil {
		return nil, err
	}
	top, err := makeTopology(mol.Topology)
	if err != nil {
		return nil, err
	}
	st := makeState(mol.Coords, mol.Momenta, chem.NewFrame(nil, nil), mol.Data, mol.Model)
	doc := &Document{Name: mol.Name, Provenance: provenance, Topology: top}
	doc.States = []*State{st}
	return doc, nil
}

//ConvertTraj builds a Document from a trajectory: name, provenance and
//topology come from the trajectory's molecule, exactly as in Convert, but
//there is one state per frame, each built from that frame's coordinates
//and momenta plus the trajectory-level properties, which are shared by
//all states. The trajectory is rewound first, so previous reads don't
//hide frames.
func ConvertTraj(traj *chem.Trajectory, provenance interface{}) (*Document, *Error) {
	const funcname = "ConvertTraj"
	if traj == nil {
		return nil, NewError("input", funcname, fmt.Errorf("nil trajectory"))
	}
	mol := traj.Molecule()
	if err := checkMolecule(mol, funcname); err != nil {
		return nil, err
	}
	top, err := makeTopology(mol.Topology)
	if err != nil {
		return nil, err
	}
	doc := &Document{Name: mol.Name, Provenance: provenance, Topology: top}
	doc.States = make([]*State, 0, traj.NFrames())
	traj.Rewind()
	for {
		frame, err2 := traj.NextFrame()
		if err2 != nil {
			if _, ok := err2.(chem.LastFrameError); ok {
				break
			}
			return nil, NewError("state", funcname, err2)
		}
		st := makeState(frame.Coords, frame.Momenta, frame, mol.Data, mol.Model)
		doc.States = append(doc.States, st)
	}
	return doc, nil
}

//checkMolecule rejects inputs missing the required attributes. This is
//the whole of the validation done by the package.
func checkMolecule(mol *chem.Molecule, funcname string) *Error {
	if mol == nil {
		return NewError("input", funcname, fmt.Errorf("nil molecule"))
	}
	if mol.Name == "" {
		return NewError("input", funcname, fmt.Errorf("molecule has no name"))
	}
	if mol.Topology == nil || mol.Len() == 0 {
		return NewError("input", funcname, fmt.Errorf("molecule has no atoms"))
	}
	return nil
}

//makeTopology builds the static part of the document from a topology.
func makeTopology(T *chem.Topology) (*Topology, *Error) {
	const funcname = "makeTopology"
	T.FillIndexes()
	n := T.Len()
	atoms := &AtomArray{
		Names:           make([]string, 0, n),
		AtomicNumbers:   make([]int, 0, n),
		FormalCharges:   make([]float64, 0, n),
		SequenceNumbers: make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		at := T.Atom(i)
		z := at.Z
		if z == 0 {
			z = chem.SymbolZ(at.Symbol)
		}
		atoms.Names = append(atoms.Names, at.Name)
		atoms.AtomicNumbers = append(atoms.AtomicNumbers, z)
		atoms.FormalCharges = append(atoms.FormalCharges, at.Charge) //in e, bare numbers
		atoms.SequenceNumbers = append(atoms.SequenceNumbers, at.Id)
	}
	masses, err := T.Masses()
	if err != nil {
		return nil, NewError("topology", funcname, err)
	}
	atoms.Masses = encodeQuantity(unit.Vector(masses, unit.AMU))

	blist := T.BondList()
	bonds := &BondArray{
		AtomIndices:  make([][2]int, 0, len(blist)),
		LewisOrders:  make([]float64, 0, len(blist)),
		WibergOrders: make([]*float64, len(blist)), //all nil: a reserved slot, never computed here
	}
	for _, b := range blist {
		bonds.AtomIndices = append(bonds.AtomIndices, [2]int{b.At1.Index, b.At2.Index})
		bonds.LewisOrders = append(bonds.LewisOrders, b.Order)
	}

	top := &Topology{AtomArray: atoms, BondArray: bonds, Charge: float64(T.Charge())}
	residues, chains := T.Groups()
	if len(residues) > 1 {
		top.Groups = makeGroups(residues, chains)
	}
	return top, nil
}

//makeGroups builds the residue and chain arrays of the document.
func makeGroups(residues []*chem.Residue, chains []*chem.Chain) *Groups {
	ra := &ResidueArray{
		ResidueCodes:    make([]string, 0, len(residues)),
		SequenceNumbers: make([]int, 0, len(residues)),
		AtomIndices:     make([][]int, 0, len(residues)),
	}
	for _, res := range residues {
		ats := make([]int, len(res.Atoms))
		copy(ats, res.Atoms)
		ra.ResidueCodes = append(ra.ResidueCodes, res.Name)
		ra.SequenceNumbers = append(ra.SequenceNumbers, res.Id)
		ra.AtomIndices = append(ra.AtomIndices, ats)
	}
	ca := &ChainArray{
		ChainNames:     make([]string, 0, len(chains)),
		ResidueIndices: make([][]int, 0, len(chains)),
	}
	for _, ch := range chains {
		res := make([]int, len(ch.Residues))
		copy(res, ch.Residues)
		ca.ChainNames = append(ca.ChainNames, ch.Name)
		ca.ResidueIndices = append(ca.ResidueIndices, res)
	}
	return &Groups{ResidueArray: ra, ChainArray: ca}
}

//makeState builds one state of the document. Every input can be absent
//(nil matrices, a frame with nothing recorded, an empty properties map)
//and absent inputs simply don't appear in the state. The calculated
//section exists only when a non-empty properties map is given; entries of
//the map may shadow the energy_model and parameters keys, the last write
//wins.
func makeState(coords, momenta *v3.Matrix, frame *chem.Frame, properties map[string]interface{}, model *chem.EnergyModel) *State {
	st := new(State)
	if coords != nil {
		st.Positions = encodeMatrix(coords, unit.Angstrom)
	}
	if momenta != nil {
		st.Momenta = encodeMatrix(momenta, unit.AMUAngFs)
	}
	if frame.HasTime() {
		st.Time = encodeQuantity(unit.Scalar(frame.Time, unit.Femtosecond))
	}
	if frame.HasStep() {
		step := frame.Step
		st.Step = &step
	}
	if frame.Description != "" {
		st.Description = frame.Description
	}
	if len(properties) > 0 {
		calc := make(map[string]interface{}, len(properties)+2)
		if model != nil {
			calc["energy_model"] = model.Name
			calc["parameters"] = model.CopyParams()
		}
		for k, v := range properties {
			calc[k] = v
		}
		st.Calculated = calc
	}
	return st
}

//encodeMatrix encodes an Nx3 matrix given in the unit u as a document
//Quantity, a nested list in the default unit for u's dimension.
func encodeMatrix(m *v3.Matrix, u *unit.Unit) *Quantity {
	n := m.NVecs()
	data := make([]float64, 0, 3*n)
	buf := make([]float64, 3)
	for i := 0; i < n; i++ {
		data = append(data, m.Row(buf, i)...)
	}
	q, err := unit.Array(n, 3, data, u)
	if err != nil {
		panic(err.Error()) //data is built right here with n*3 elements, so this can't happen.
	}
	return encodeQuantity(q)
}

//encodeQuantity converts a quantity to the default unit of its dimension
//and encodes it for the document.
func encodeQuantity(q *unit.Quantity) *Quantity {
	c := q.Canon()
	return &Quantity{Val: c.Value(), Units: c.Unit().String()}
}

//An easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput       bool //If error, was it in checking the input molecule or trajectory?
	InTopology    bool //Was it in building the topology?
	InState       bool //Was it in building a state?
	InPostProcess bool //was it in preparing or writing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "input":
		jerr.InInput = true
	case "topology":
		jerr.InTopology = true
	case "state":
		jerr.InState = true
	default:
		jerr.InPostProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}
