/*
 * gocoords.go, part of redint.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//NVecs returns the number of vecs in F. A nil or empty Matrix has 0 vecs.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil {
		return 0
	}
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Diff puts in dst (which must have 3 elements, and is allocated if nil) the vector
//going from vector j to vector i of F, that is, F[i]-F[j], and returns it.
func (F *Matrix) Diff(i, j int, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, cols)
	}
	return floats.SubTo(dst, F.Vec(i), F.Vec(j))
}

//Distance returns the euclidean distance between the vectors i and j of F.
func (F *Matrix) Distance(i, j int) float64 {
	return floats.Distance(F.Vec(i), F.Vec(j), 2)
}

//Angle returns the angle, in radians, between the vectors going from vector
//j to i and from vector j to k (i.e. j is the vertex). If any of the two
//vectors has zero length the result is NaN.
func (F *Matrix) Angle(i, j, k int) float64 {
	u := F.Diff(i, j, nil)
	v := F.Diff(k, j, nil)
	return VecAngle(u, v)
}

//VecAngle takes 2 vectors and calculates the angle in radians between them.
//Returns NaN if one of them has zero length.
func VecAngle(v1, v2 []float64) float64 {
	normproduct := floats.Norm(v1, 2) * floats.Norm(v2, 2)
	if normproduct <= appzero {
		return math.NaN()
	}
	argument := floats.Dot(v1, v2) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	return math.Acos(argument)
}

//Cross puts in dst (allocated if nil) the cross product of the 3-vectors a and b, and returns it.
func Cross(a, b, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, cols)
	}
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	dst[0], dst[1], dst[2] = x, y, z
	return dst
}

//Unit normalizes v in place and returns it. A zero vector is returned unchanged.
func Unit(v []float64) []float64 {
	n := floats.Norm(v, 2)
	if n <= appzero {
		return v
	}
	floats.Scale(1/n, v)
	return v
}

//Dihedral returns the signed dihedral angle, in radians, defined by the vectors
//i, j, k and l of F. The result is in the (-Pi,Pi] range.
func (F *Matrix) Dihedral(i, j, k, l int) float64 {
	b1 := F.Diff(j, i, nil)
	b2 := F.Diff(k, j, nil)
	b3 := F.Diff(l, k, nil)
	n1 := Cross(b1, b2, nil)
	n2 := Cross(b2, b3, nil)
	x := floats.Dot(n1, n2)
	y := floats.Norm(b2, 2) * floats.Dot(b1, n2)
	return math.Atan2(y, x)
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	if r == 0 {
		return "[ ]"
	}
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	for i := 0; i < r; i++ {
		row := F.Vec(i)
		if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[1] = strings.TrimPrefix(v[1], " ")
	return strings.Join(v, "")
}
