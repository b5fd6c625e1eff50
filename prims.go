/*
 * prims.go, part of redint.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

import (
	"fmt"
	"math"

	v3 "github.com/rmera/redint/v3"
	"gonum.org/v1/gonum/floats"
)

//Kind is the category of a primitive internal coordinate.
type Kind int

const (
	KindStretch Kind = iota
	KindBend
	KindLinearBend
	KindTorsion
)

func (K Kind) String() string {
	switch K {
	case KindStretch:
		return "Stretch"
	case KindBend:
		return "Bend"
	case KindLinearBend:
		return "LinearBend"
	case KindTorsion:
		return "Torsion"
	}
	return fmt.Sprintf("Kind(%d)", int(K))
}

//NIndices returns the number of atoms needed to define a primitive of the kind.
func (K Kind) NIndices() int {
	switch K {
	case KindStretch:
		return 2
	case KindBend, KindLinearBend:
		return 3
	case KindTorsion:
		return 4
	}
	return 0
}

//Index tuples

//Pair holds the indexes of a bond.
type Pair [2]int

//Triple holds the indexes of a bend, the central atom in the middle.
type Triple [3]int

//Quad holds the indexes of a dihedral.
type Quad [4]int

//Sorted returns the pair with the smaller index first.
func (P Pair) Sorted() Pair {
	if P[0] > P[1] {
		return Pair{P[1], P[0]}
	}
	return P
}

//Other returns the index in the pair that is not i, and whether i is in the pair at all.
func (P Pair) Other(i int) (int, bool) {
	switch i {
	case P[0]:
		return P[1], true
	case P[1]:
		return P[0], true
	}
	return -1, false
}

//Reversed returns the dihedral with the order of its atoms reversed.
func (Q Quad) Reversed() Quad {
	return Quad{Q[3], Q[2], Q[1], Q[0]}
}

//canonical returns whichever of Q and its reverse is lexicographically smaller.
//A dihedral and its reverse are the same coordinate.
func (Q Quad) canonical() Quad {
	r := Q.Reversed()
	for i := range Q {
		if Q[i] != r[i] {
			if Q[i] < r[i] {
				return Q
			}
			return r
		}
	}
	return Q
}

//Rho is the exponentially decaying bond-strength term used in the weights:
//exp(1-d/(rcov_i+rcov_j)).
func Rho(radii Radii, atoms []string, coords *v3.Matrix, i, j int) (float64, error) {
	ri, err := radii.Covalent(atoms[i])
	if err != nil {
		return 0, errDecorate(err, "Rho")
	}
	rj, err := radii.Covalent(atoms[j])
	if err != nil {
		return 0, errDecorate(err, "Rho")
	}
	d := coords.Distance(i, j)
	return math.Exp(-(d/(ri+rj) - 1)), nil
}

func damped(f, rad float64) float64 {
	return f + (1-f)*math.Sin(rad)
}

//Stretch is a bond length.
type Stretch struct {
	Inds Pair
}

func (S *Stretch) Kind() Kind       { return KindStretch }
func (S *Stretch) Indices() []int   { return []int{S.Inds[0], S.Inds[1]} }
func (S *Stretch) Periodic() bool   { return false }
func (S *Stretch) String() string   { return fmt.Sprintf("Stretch%v", S.Inds) }
func (S *Stretch) Valid(coords *v3.Matrix, thresholds ...float64) bool {
	return coords.Distance(S.Inds[0], S.Inds[1]) > 0
}

//Calculate returns the distance between the two atoms.
func (S *Stretch) Calculate(coords *v3.Matrix) float64 {
	return coords.Distance(S.Inds[0], S.Inds[1])
}

//Weight is Rho for the bond.
func (S *Stretch) Weight(radii Radii, atoms []string, coords *v3.Matrix, f float64) (float64, error) {
	return Rho(radii, atoms, coords, S.Inds[0], S.Inds[1])
}

//Bend is a regular angle between 3 atoms, with the vertex in the middle.
type Bend struct {
	Inds Triple
}

func (B *Bend) Kind() Kind     { return KindBend }
func (B *Bend) Indices() []int { return []int{B.Inds[0], B.Inds[1], B.Inds[2]} }
func (B *Bend) Periodic() bool { return false }
func (B *Bend) String() string { return fmt.Sprintf("Bend%v", B.Inds) }

//Calculate returns the angle in radians.
func (B *Bend) Calculate(coords *v3.Matrix) float64 {
	return coords.Angle(B.Inds[0], B.Inds[1], B.Inds[2])
}

//Valid requires the angle to be within thresholds[0] and thresholds[1] degrees
//(0 and 180 if not given). Zero-length arms are never valid.
func (B *Bend) Valid(coords *v3.Matrix, thresholds ...float64) bool {
	min, max := 0.0, 180.0
	if len(thresholds) > 0 {
		min = thresholds[0]
	}
	if len(thresholds) > 1 {
		max = thresholds[1]
	}
	return bendValid(coords, B.Inds, min, max)
}

//Weight is the geometric mean of the Rhos of the two bonds, damped by the sine of the angle.
func (B *Bend) Weight(radii Radii, atoms []string, coords *v3.Matrix, f float64) (float64, error) {
	return bendWeight(radii, atoms, coords, B.Inds, f)
}

func bendWeight(radii Radii, atoms []string, coords *v3.Matrix, inds Triple, f float64) (float64, error) {
	m, o, n := inds[0], inds[1], inds[2]
	rmo, err := Rho(radii, atoms, coords, m, o)
	if err != nil {
		return 0, errDecorate(err, "bendWeight")
	}
	ron, err := Rho(radii, atoms, coords, o, n)
	if err != nil {
		return 0, errDecorate(err, "bendWeight")
	}
	rad := coords.Angle(m, o, n)
	return math.Sqrt(rmo*ron) * damped(f, rad), nil
}

func bendValid(coords *v3.Matrix, inds Triple, minDeg, maxDeg float64) bool {
	deg := coords.Angle(inds[0], inds[1], inds[2]) * rad2deg
	if math.IsNaN(deg) {
		return false
	}
	return minDeg <= deg && deg <= maxDeg
}

//LinearBend is a bend close to 180 degrees. Its value is the projection of the
//bending on a direction orthogonal to the first arm, or, for the complement, on
//the direction orthogonal to both the first arm and the first direction.
type LinearBend struct {
	Inds       Triple
	Complement bool
}

func (L *LinearBend) Kind() Kind     { return KindLinearBend }
func (L *LinearBend) Indices() []int { return []int{L.Inds[0], L.Inds[1], L.Inds[2]} }
func (L *LinearBend) Periodic() bool { return false }
func (L *LinearBend) String() string {
	if L.Complement {
		return fmt.Sprintf("LinearBend%v(complement)", L.Inds)
	}
	return fmt.Sprintf("LinearBend%v", L.Inds)
}

//Valid requires both arms to have non-zero length.
func (L *LinearBend) Valid(coords *v3.Matrix, thresholds ...float64) bool {
	return !math.IsNaN(coords.Angle(L.Inds[0], L.Inds[1], L.Inds[2]))
}

//Weight is the same as for a regular bend.
func (L *LinearBend) Weight(radii Radii, atoms []string, coords *v3.Matrix, f float64) (float64, error) {
	return bendWeight(radii, atoms, coords, L.Inds, f)
}

//orthogonal returns the unit direction w, orthogonal to the unit vector u and
//to the cartesian axis least parallel to u. For the complement, u x w is returned.
func (L *LinearBend) orthogonal(u []float64) []float64 {
	axis := make([]float64, 3)
	min := math.Inf(1)
	mini := 0
	for i, v := range u {
		if math.Abs(v) < min {
			min = math.Abs(v)
			mini = i
		}
	}
	axis[mini] = 1
	w := v3.Unit(v3.Cross(u, axis, nil))
	if L.Complement {
		w = v3.Unit(v3.Cross(u, w, nil))
	}
	return w
}

//Calculate returns w.(u x v), where u and v are the unit arms of the bend.
//It is zero for a perfectly linear arrangement.
func (L *LinearBend) Calculate(coords *v3.Matrix) float64 {
	m, o, n := L.Inds[0], L.Inds[1], L.Inds[2]
	u := v3.Unit(coords.Diff(m, o, nil))
	v := v3.Unit(coords.Diff(n, o, nil))
	w := L.orthogonal(u)
	return floats.Dot(w, v3.Cross(u, v, nil))
}

//Torsion is a dihedral angle. Improper is set for the out-of-plane
//dihedrals generated when no proper one could be found.
type Torsion struct {
	Inds     Quad
	Improper bool
}

func (T *Torsion) Kind() Kind     { return KindTorsion }
func (T *Torsion) Indices() []int { return []int{T.Inds[0], T.Inds[1], T.Inds[2], T.Inds[3]} }
func (T *Torsion) Periodic() bool { return true }
func (T *Torsion) String() string {
	if T.Improper {
		return fmt.Sprintf("Torsion%v(improper)", T.Inds)
	}
	return fmt.Sprintf("Torsion%v", T.Inds)
}

//Calculate returns the dihedral angle in radians, in the (-Pi, Pi] range.
func (T *Torsion) Calculate(coords *v3.Matrix) float64 {
	return coords.Dihedral(T.Inds[0], T.Inds[1], T.Inds[2], T.Inds[3])
}

//Valid requires both bends in the dihedral to be below thresholds[0] degrees
//(175 if not given).
func (T *Torsion) Valid(coords *v3.Matrix, thresholds ...float64) bool {
	max := 175.0
	if len(thresholds) > 0 {
		max = thresholds[0]
	}
	return dihedralValid(coords, T.Inds, max)
}

//Weight is the geometric mean of the Rhos of the three bonds, damped by the
//sines of both bends.
func (T *Torsion) Weight(radii Radii, atoms []string, coords *v3.Matrix, f float64) (float64, error) {
	m, o, p, n := T.Inds[0], T.Inds[1], T.Inds[2], T.Inds[3]
	rhos := 1.0
	for _, b := range []Pair{{m, o}, {o, p}, {p, n}} {
		r, err := Rho(radii, atoms, coords, b[0], b[1])
		if err != nil {
			return 0, errDecorate(err, "Torsion.Weight")
		}
		rhos *= r
	}
	mop := coords.Angle(m, o, p)
	opn := coords.Angle(o, p, n)
	return math.Cbrt(rhos) * damped(f, mop) * damped(f, opn), nil
}

func dihedralValid(coords *v3.Matrix, inds Quad, maxDeg float64) bool {
	for _, b := range []Triple{{inds[0], inds[1], inds[2]}, {inds[1], inds[2], inds[3]}} {
		deg := coords.Angle(b[0], b[1], b[2]) * rad2deg
		if math.IsNaN(deg) || deg >= maxDeg {
			return false
		}
	}
	return true
}

//NewPrimitive builds the primitive of kind K over the given indexes.
//Returns a ConfigError if the number of indexes doesn't match the kind.
func NewPrimitive(K Kind, indices []int, complement ...bool) (Primitive, error) {
	if len(indices) != K.NIndices() {
		return nil, newConfigError("NewPrimitive", "%s needs %d indexes, got %d", K, K.NIndices(), len(indices))
	}
	switch K {
	case KindStretch:
		return &Stretch{Inds: Pair{indices[0], indices[1]}}, nil
	case KindBend:
		return &Bend{Inds: Triple{indices[0], indices[1], indices[2]}}, nil
	case KindLinearBend:
		c := len(complement) > 0 && complement[0]
		return &LinearBend{Inds: Triple{indices[0], indices[1], indices[2]}, Complement: c}, nil
	case KindTorsion:
		return &Torsion{Inds: Quad{indices[0], indices[1], indices[2], indices[3]}}, nil
	}
	return nil, newConfigError("NewPrimitive", "unknown primitive kind %d", int(K))
}
