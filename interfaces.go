/*
 * interfaces.go, part of redint.
 *
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
 *
 */

package redint

import v3 "github.com/rmera/redint/v3"

//Radii is an element-keyed lookup of atomic radii, in bohr.
//Symbols are case-insensitive. Unknown elements return a LookupError,
//never a default value.
type Radii interface {
	//Covalent returns the covalent radius of the element.
	Covalent(symbol string) (float64, error)

	//VdW returns the van der Waals radius of the element.
	VdW(symbol string) (float64, error)
}

//Primitive is a primitive internal coordinate: a scalar geometric quantity
//(bond length, bend angle, linear bend or dihedral) defined over an ordered
//tuple of atom indexes.
type Primitive interface {
	//Kind returns the category of the primitive.
	Kind() Kind

	//Indices returns a copy of the atom indexes defining the primitive.
	Indices() []int

	//Periodic is true for coordinates with a 2Pi period (torsions).
	Periodic() bool

	//Calculate returns the value of the primitive for the given coordinates.
	//Lengths are in the units of coords, angles in radians.
	Calculate(coords *v3.Matrix) float64

	//Weight returns the Lindh-like weight of the primitive, where f is the damping
	//factor applied to the angular terms.
	Weight(radii Radii, atoms []string, coords *v3.Matrix, f float64) (float64, error)

	//Valid tells whether the primitive is well defined for the given coordinates.
	//thresholds are in degrees, their meaning depends on the Kind.
	Valid(coords *v3.Matrix, thresholds ...float64) bool

	String() string
}

//Errors

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the given "decoration" (usually the name of the calling function) and returns the resulting slice. An empty string just returns the current slice.
}
