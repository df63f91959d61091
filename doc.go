/*
 * doc.go, part of moldoc.
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

/*Package chem is the main package of the moldoc library. It provides atom, bond,
topology and molecule structures, in-memory trajectories, atomic data tables and
simple distance-based bond perception.



	**moldoc Capabilities**


    Represents molecules as a topology (atoms, bonds, residues, chains, net charge)
	plus per-state dynamical data (coordinates, momenta, computed properties).

    Holds trajectories as ordered, restartable, in-memory sequences of frames.

    Assigns bonds from coordinates with a simple distance criterium.

    Converts molecules and trajectories into a JSON-ready document via the
	chemjson subpackage, normalizing all physical quantities to a default
	unit system (see the unit subpackage).

moldoc does not read or write files. The document produced by chemjson is an
in-memory structure that the caller may feed to any JSON encoder or stream.
*/
package chem
