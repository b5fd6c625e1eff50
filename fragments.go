/*
 * fragments.go, part of redint.
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
	"math"

	"github.com/rmera/redint/chemgraph"
	"go.uber.org/zap"
)

//Fragments returns the sets of atoms connected through bonds. Atoms without bonds
//are returned as one-atom fragments. Each fragment is sorted, and the fragments
//are sorted by their smallest index.
//It returns a ConfigError if a bond references an atom outside 0..n-1.
func Fragments(n int, bonds []Pair) ([][]int, error) {
	for _, v := range bonds {
		if v[0] < 0 || v[1] < 0 || v[0] >= n || v[1] >= n {
			return nil, newConfigError("Fragments", "bond %v references atoms outside 0-%d", v, n-1)
		}
	}
	return chemgraph.NewTopology(n, edges(bonds)).Components(), nil
}

//ConnectFragments returns, for each pair of fragments, the bond between the two closest atoms,
//and the auxiliary bonds. Auxiliary bonds are all other pairs closer than maxAux, and those
//closer than auxFactor times the smallest distance between the fragments.
//cdm is the condensed distance matrix for the n atoms. For equal distances, the first pair
//in the order frag1 x frag2 is taken as the closest.
func ConnectFragments(cdm []float64, n int, fragments [][]int, maxAux, auxFactor float64, logger *zap.Logger) (interfrag, aux []Pair) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fragments) < 2 {
		return nil, nil
	}
	logger.Info("Generating interfragment bonds", zap.Int("fragments", len(fragments)))
	d := func(p Pair) float64 { return cdm[CondensedIndex(n, p[0], p[1])] }
	for i, frag1 := range fragments {
		for _, frag2 := range fragments[i+1:] {
			logger.Debug("Connecting fragments", zap.Int("atoms1", len(frag1)), zap.Int("atoms2", len(frag2)))
			inds := make([]Pair, 0, len(frag1)*len(frag2))
			for _, a := range frag1 {
				for _, b := range frag2 {
					inds = append(inds, Pair{a, b})
				}
			}
			min := math.Inf(1)
			var minpair Pair
			for _, p := range inds {
				if dist := d(p); dist < min {
					min = dist
					minpair = p
				}
			}
			if math.IsInf(min, 1) {
				logger.Warn("No finite distance between fragments, they are not connected", zap.Ints("fragment1", frag1), zap.Ints("fragment2", frag2))
				continue
			}
			interfrag = append(interfrag, minpair)
			logger.Info("Minimum distance interfragment bond", zap.Ints("bond", minpair[:]), zap.Float64("distance", min))
			belowMax := make(map[Pair]bool)
			for _, p := range inds {
				if p != minpair && d(p) < maxAux {
					belowMax[p] = true
					aux = append(aux, p)
					logger.Debug("Auxiliary interfragment bond below maximum distance", zap.Ints("bond", p[:]), zap.Float64("distance", d(p)))
				}
			}
			scaled := auxFactor * min
			for _, p := range inds {
				if p != minpair && !belowMax[p] && d(p) < scaled {
					aux = append(aux, p)
					logger.Debug("Auxiliary interfragment bond below scaled minimum distance", zap.Ints("bond", p[:]), zap.Float64("distance", d(p)))
				}
			}
		}
	}
	return interfrag, aux
}
