/*
 * doc.go, part of redint.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

/*Package redint detects a redundant set of primitive internal coordinates
(bonds, bends, linear bends and dihedrals) for a molecular geometry, for use
in geometry optimizations.


	**Capabilities**


    Assigns bonds from interatomic distances and covalent radii.

    Finds the fragments of the system, and connects them with interfragment
	bonds, so the whole set of coordinates describes the relative position
	of all fragments.

    Detects hydrogen bonds from distance and angle criteria.

    Builds bends from pairs of bonds, reclassifying (close to) linear ones as
	linear bends, and proper dihedrals from bends and bonds. Improper
	dihedrals are used when no proper one can be built.

    Filters primitives by their weight, and lets the user force primitives.

    Reads (possibly compressed) XYZ files.


All lengths are in bohr. Coordinates are kept in a v3.Matrix, a gonum mat.Dense
where each row is an atom. Most functions take a zap logger which receives the
diagnostics, nothing is written anywhere unless a logger is given.

A typical use:

	atoms, frames, err := redint.XYZRead("water.xyz")
	info, err := redint.SetupRedundant(atoms, frames[0], redint.DefaultOptions())
	prims := redint.Primitives(info, false, nil)

*/
package redint
