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

package chemjson

//Package chemjson converts moldoc molecules and trajectories into a
//JSON-ready Document: a nested structure whose leaves are plain numbers,
//strings and lists, with all physical quantities normalized to the moldoc
//default unit system. Its planned use is the communication of moldoc
//programs with other, independent programs which can be written in
//languages other than Go, as long as those languages implement a
//way of unserializing JSON data.
//chemjson does not read documents back, validate them, or touch files;
//the caller owns persistence. Send and SendCompressed only write to
//streams the caller supplies, for instance, UNIX pipes.
