/*
 * options.go, part of redint.
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
	"runtime"

	"go.uber.org/zap"
)

//Options contains the parameters for the detection of primitive internal coordinates.
//All the methods return the current value of the parameter, and set it to a new value if
//one is given.
type Options struct {
	factor         float64 //bonds are assigned when d <= factor*(rcov1+rcov2)
	definePrims    [][]int //bonds, bends and dihedrals forced by the user
	minDeg         float64
	maxDeg         float64
	complementDeg  float64 //reserved
	dihedralMaxDeg float64 //collinearity guard for dihedrals
	lbMinDeg       float64 //a negative value means that linear bends are not detected
	lbMaxBonds     int
	minWeight      float64 //a negative value means no weight filtering
	makeComplement bool
	maxAux         float64 //in bohr
	auxFactor      float64
	cpus           int
	radii          Radii
	logger         *zap.Logger
}

//DefaultOptions returns the standard parameters: bond factor 1.3, bends between 15 and 180 degrees,
//dihedrals rejected when any of their bends goes over 175 degrees, no linear bends, no weight
//filtering, and a logger that discards everything.
func DefaultOptions() *Options {
	r := new(Options)
	r.factor = 1.3
	r.minDeg = 15
	r.maxDeg = 180
	r.complementDeg = 175
	r.dihedralMaxDeg = 175
	r.lbMinDeg = -1
	r.lbMaxBonds = 4
	r.minWeight = -1
	r.maxAux = 3.78 //about 2 A
	r.auxFactor = 1.3
	r.cpus = runtime.NumCPU()
	r.radii = DefaultRadii()
	r.logger = zap.NewNop()
	return r
}

//Factor returns the scaling factor for the sum of covalent radii used to assign bonds.
func (O *Options) Factor(f ...float64) float64 {
	if len(f) > 0 {
		O.factor = f[0]
	}
	return O.factor
}

//DefinePrims returns the primitives forced by the user. Each element must contain 2, 3
//or 4 atom indexes, for a bond, a bend or a dihedral, respectively.
//Forced primitives are not screened by distance or angle.
func (O *Options) DefinePrims(prims ...[]int) [][]int {
	if len(prims) > 0 {
		O.definePrims = prims
	}
	return O.definePrims
}

//MinDeg returns the smallest bend angle, in degrees, that is accepted.
func (O *Options) MinDeg(d ...float64) float64 {
	if len(d) > 0 {
		O.minDeg = d[0]
	}
	return O.minDeg
}

//MaxDeg returns the largest bend angle, in degrees, that is accepted.
func (O *Options) MaxDeg(d ...float64) float64 {
	if len(d) > 0 {
		O.maxDeg = d[0]
	}
	return O.maxDeg
}

//ComplementDeg is kept for compatibility. It is not used for detection.
func (O *Options) ComplementDeg(d ...float64) float64 {
	if len(d) > 0 {
		O.complementDeg = d[0]
	}
	return O.complementDeg
}

//DihedralMaxDeg returns the largest bend angle (in degrees) allowed within a dihedral.
//Dihedrals with 3 consecutive atoms closer to collinear than this are skipped.
func (O *Options) DihedralMaxDeg(d ...float64) float64 {
	if len(d) > 0 {
		O.dihedralMaxDeg = d[0]
	}
	return O.dihedralMaxDeg
}

//LBMinDeg returns the smallest angle, in degrees, for a bend to be considered linear.
//Setting it to a non-negative value enables linear bend detection.
func (O *Options) LBMinDeg(d ...float64) float64 {
	if len(d) > 0 {
		O.lbMinDeg = d[0]
	}
	return O.lbMinDeg
}

//LinearBends returns whether linear bend detection is enabled.
func (O *Options) LinearBends() bool {
	return O.lbMinDeg >= 0
}

//LBMaxBonds returns the maximum number of bonds the central atom of a linear bend can have.
func (O *Options) LBMaxBonds(n ...int) int {
	if len(n) > 0 {
		O.lbMaxBonds = n[0]
	}
	return O.lbMaxBonds
}

//MinWeight returns the smallest primitive weight accepted. Setting it to a non-negative
//value enables the weight filtering of bonds, bends and dihedrals.
func (O *Options) MinWeight(w ...float64) float64 {
	if len(w) > 0 {
		O.minWeight = w[0]
	}
	return O.minWeight
}

//WeightFiltering returns whether primitives are filtered by weight.
func (O *Options) WeightFiltering() bool {
	return O.minWeight >= 0
}

//MakeComplement returns whether each linear bend generates a second primitive
//for the orthogonal bending direction.
func (O *Options) MakeComplement(b ...bool) bool {
	if len(b) > 0 {
		O.makeComplement = b[0]
	}
	return O.makeComplement
}

//MaxAux returns the distance (in bohr) below which any interfragment atom pair
//becomes an auxiliary interfragment bond.
func (O *Options) MaxAux(d ...float64) float64 {
	if len(d) > 0 {
		O.maxAux = d[0]
	}
	return O.maxAux
}

//AuxFactor returns the factor applied to the minimum interfragment distance. Pairs closer
//than the scaled distance become auxiliary interfragment bonds.
func (O *Options) AuxFactor(f ...float64) float64 {
	if len(f) > 0 {
		O.auxFactor = f[0]
	}
	return O.auxFactor
}

//Cpus returns the number of gorutines to be used,
//and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//Radii returns the element data used, and sets it, if given.
func (O *Options) Radii(r ...Radii) Radii {
	if len(r) > 0 && r[0] != nil {
		O.radii = r[0]
	}
	return O.radii
}

//Logger returns the logger that receives the diagnostics, and sets it, if given.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	if O.logger == nil {
		return zap.NewNop()
	}
	return O.logger
}

//Check returns a ConfigError if the options are inconsistent.
func (O *Options) Check() error {
	switch {
	case O.factor <= 0:
		return newConfigError("Options.Check", "bond factor must be positive, got %g", O.factor)
	case O.minDeg < 0 || O.maxDeg > 180 || O.minDeg > O.maxDeg:
		return newConfigError("Options.Check", "invalid bend window [%g, %g]", O.minDeg, O.maxDeg)
	case O.dihedralMaxDeg <= 0 || O.dihedralMaxDeg > 180:
		return newConfigError("Options.Check", "invalid dihedral collinearity threshold %g", O.dihedralMaxDeg)
	case O.lbMaxBonds < 0:
		return newConfigError("Options.Check", "negative maximum number of bonds for linear bends: %d", O.lbMaxBonds)
	case O.maxAux < 0 || O.auxFactor < 0:
		return newConfigError("Options.Check", "negative auxiliary bond parameters %g, %g", O.maxAux, O.auxFactor)
	case O.cpus < 1:
		return newConfigError("Options.Check", "the number of CPUs must be at least 1, got %d", O.cpus)
	case O.radii == nil:
		return newConfigError("Options.Check", "no element data given")
	}
	for i, v := range O.definePrims {
		if len(v) < 2 || len(v) > 4 {
			return newConfigError("Options.Check", "defined primitive %d has %d indexes, it should have 2, 3 or 4", i, len(v))
		}
	}
	return nil
}
