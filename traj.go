/*
 * traj.go, part of moldoc.
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

package chem

import (
	"fmt"
	"math"

	v3 "github.com/rmera/moldoc/v3"
)

//Frame is one snapshot of the dynamical variables of a molecule. Any of its
//fields can be absent: nil matrices, a NaN time and a negative step mean
//"not recorded", and NewFrame sets them so.
type Frame struct {
	Coords      *v3.Matrix //in A
	Momenta     *v3.Matrix //in amu*A/fs
	Time        float64    //in fs
	Step        int
	Description string
}

//NewFrame returns a frame with the given coordinates and momenta (either
//can be nil) and no time, step or description recorded.
func NewFrame(coords, momenta *v3.Matrix) *Frame {
	return &Frame{Coords: coords, Momenta: momenta, Time: math.NaN(), Step: -1}
}

//HasTime returns whether a time was recorded for the frame.
func (F *Frame) HasTime() bool {
	return !math.IsNaN(F.Time)
}

//HasStep returns whether a simulation step was recorded for the frame.
func (F *Frame) HasStep() bool {
	return F.Step >= 0
}

//Trajectory is an ordered sequence of frames for one molecule, kept
//in memory. It can be read frame by frame, like the file-backed
//trajectories of other chemistry libraries, and rewound at will.
//It fullfills the Traj interface.
type Trajectory struct {
	mol      *Molecule
	frames   []*Frame
	current  int
	readable bool
}

//NewTrajectory makes a trajectory for mol from the given frames. It
//returns an error if the molecule is nil or any frame's coordinates or
//momenta don't have one vector per atom of the molecule.
func NewTrajectory(mol *Molecule, frames ...*Frame) (*Trajectory, error) {
	if mol == nil {
		return nil, CError{"Supplied a nil Molecule", []string{"NewTrajectory"}}
	}
	for i, f := range frames {
		if f == nil {
			return nil, CError{fmt.Sprintf("Frame %d is nil", i), []string{"NewTrajectory"}}
		}
		if f.Coords != nil && f.Coords.NVecs() != mol.Len() {
			return nil, CError{fmt.Sprintf("Frame %d has %d coordinates but the molecule has %d atoms", i, f.Coords.NVecs(), mol.Len()), []string{"NewTrajectory"}}
		}
		if f.Momenta != nil && f.Momenta.NVecs() != mol.Len() {
			return nil, CError{fmt.Sprintf("Frame %d has %d momenta but the molecule has %d atoms", i, f.Momenta.NVecs(), mol.Len()), []string{"NewTrajectory"}}
		}
	}
	T := new(Trajectory)
	T.mol = mol
	T.frames = frames
	T.readable = true
	return T, nil
}

//Molecule returns the molecule whose states the trajectory contains.
func (T *Trajectory) Molecule() *Molecule {
	return T.mol
}

//Readable returns true if the trajectory is ready to be read.
func (T *Trajectory) Readable() bool {
	if T == nil {
		return false
	}
	return T.readable
}

//Len returns the number of atoms per frame.
func (T *Trajectory) Len() int {
	return T.mol.Len()
}

//NFrames returns the number of frames in the trajectory.
func (T *Trajectory) NFrames() int {
	return len(T.frames)
}

//Frame returns the ith frame of the trajectory, without moving the
//reading position. Panics if out of range.
func (T *Trajectory) Frame(i int) *Frame {
	if i < 0 || i >= len(T.frames) {
		panic(fmt.Sprintf("Frame requested (%d) out of range", i))
	}
	return T.frames[i]
}

//Current returns the number of the next frame to be read.
func (T *Trajectory) Current() int {
	if T == nil {
		return -1
	}
	return T.current
}

//Rewind moves the reading position back to the first frame.
func (T *Trajectory) Rewind() {
	T.current = 0
}

//NextFrame returns the next frame of the trajectory and advances the
//reading position. After the last frame it returns an error implementing
//LastFrameError.
func (T *Trajectory) NextFrame() (*Frame, error) {
	if !T.Readable() {
		return nil, CError{TrajUnIni, []string{"NextFrame"}}
	}
	if T.current >= len(T.frames) {
		return nil, newlastFrameError("NextFrame")
	}
	f := T.frames[T.current]
	T.current++
	return f, nil
}

//Next reads the next frame and copies its coordinates into output, or
//discards the frame if output is nil. If given, the box slice is left
//untouched, as in-memory trajectories carry no box vectors.
func (T *Trajectory) Next(output *v3.Matrix, box ...[]float64) error {
	f, err := T.NextFrame()
	if err != nil {
		return err
	}
	if output == nil {
		return nil
	}
	if f.Coords == nil {
		return CError{"Frame has no coordinates", []string{"Next"}}
	}
	if output.NVecs() != f.Coords.NVecs() {
		return CError{NotEnoughSpace, []string{"Next"}}
	}
	output.Copy(f.Coords)
	return nil
}

const (
	TrajUnIni      = "Traj object uninitialized to read"
	NotEnoughSpace = "Not enough space in passed blocks"
)

//lastFrameError implements LastFrameError
type lastFrameError struct {
	deco []string
}

func newlastFrameError(caller string) *lastFrameError {
	e := new(lastFrameError)
	e.deco = []string{caller}
	return e
}

//NormalLastFrameTermination does nothing. It's only there to distinguish
//the harmless last-frame "error" from the real ones.
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return "" }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "memory" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
