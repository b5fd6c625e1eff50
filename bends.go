/*
 * bends.go, part of redint.
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
	v3 "github.com/rmera/redint/v3"
	"go.uber.org/zap"
)

//Bends returns all the bends formed by two bonds sharing one atom, with the shared
//atom in the middle and the smaller terminal index first. Bends with angles outside
//[minDeg, maxDeg] or with a zero-length bond are skipped.
//The bends are sorted by central atom, then by terminals.
func Bends(coords *v3.Matrix, bonds []Pair, minDeg, maxDeg float64, logger *zap.Logger) []Triple {
	if logger == nil {
		logger = zap.NewNop()
	}
	adj := adjacency(coords.NVecs(), bonds)
	bends := make([]Triple, 0, len(bonds))
	for pivot, neigh := range adj {
		for i, a := range neigh {
			for _, c := range neigh[i+1:] {
				b := Triple{a, pivot, c}
				if !bendValid(coords, b, minDeg, maxDeg) {
					logger.Debug("Bend is not valid", zap.Ints("bend", b[:]), zap.Float64("degrees", coords.Angle(a, pivot, c)*rad2deg))
					continue
				}
				bends = append(bends, b)
			}
		}
	}
	return bends
}

//LinearBends returns the bends with an angle of at least minDeg degrees and a central
//atom with no more than maxBonds bonds in the condensed bond matrix cbm for n atoms.
func LinearBends(coords *v3.Matrix, n int, cbm []bool, bends []Triple, minDeg float64, maxBonds int, logger *zap.Logger) []Triple {
	if logger == nil {
		logger = zap.NewNop()
	}
	lbends := make([]Triple, 0, 1)
	for _, b := range bends {
		deg := coords.Angle(b[0], b[1], b[2]) * rad2deg
		nbonds := BondCount(cbm, n, b[1])
		if deg >= minDeg && nbonds <= maxBonds {
			logger.Info("Bend is (close to) linear, creating linear bend", zap.Ints("bend", b[:]), zap.Float64("degrees", deg))
			lbends = append(lbends, b)
		}
	}
	return lbends
}

//removeTriples returns the elements of from that are not in remove.
func removeTriples(from, remove []Triple) []Triple {
	if len(remove) == 0 {
		return from
	}
	rm := make(map[Triple]bool, len(remove))
	for _, v := range remove {
		rm[v] = true
	}
	ret := make([]Triple, 0, len(from))
	for _, v := range from {
		if !rm[v] {
			ret = append(ret, v)
		}
	}
	return ret
}
