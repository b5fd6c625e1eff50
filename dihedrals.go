/*
 * dihedrals.go, part of redint.
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
	"sort"

	v3 "github.com/rmera/redint/v3"
	"go.uber.org/zap"
)

//dihedralSet collects dihedrals, keeping only the first of a dihedral and its reverse.
type dihedralSet struct {
	coords   *v3.Matrix
	maxDeg   float64
	logger   *zap.Logger
	seen     map[Quad]bool
	accepted []Quad
}

func (D *dihedralSet) add(q Quad) bool {
	c := q.canonical()
	if D.seen[c] {
		return false
	}
	if !dihedralValid(D.coords, q, D.maxDeg) {
		D.logger.Debug("Skipping dihedral, some of the atoms are (close to) linear", zap.Ints("dihedral", q[:]))
		return false
	}
	D.seen[c] = true
	D.accepted = append(D.accepted, q)
	return true
}

//bendsByAtom returns, for each atom, the indexes in bends of the bends that contain it.
func bendsByAtom(n int, bends []Triple) [][]int {
	ret := make([][]int, n)
	for i, b := range bends {
	atoms:
		for j, a := range b {
			for _, prev := range b[:j] {
				if prev == a {
					continue atoms
				}
			}
			ret[a] = append(ret[a], i)
		}
	}
	return ret
}

//mergeSorted returns the sorted union of two sorted slices, without repetitions.
func mergeSorted(a, b []int) []int {
	ret := make([]int, 0, len(a)+len(b))
	ret = append(ret, a...)
	ret = append(ret, b...)
	sort.Ints(ret)
	out := ret[:0]
	for i, v := range ret {
		if i == 0 || v != ret[i-1] {
			out = append(out, v)
		}
	}
	return out
}

//Dihedrals returns the proper dihedrals that can be formed by a bond and a bend sharing one
//terminal atom of the bend. If the bend is (close to) linear, the dihedral is built through the
//neighbours of the bend's far terminal instead, skipping the central atom of the bend.
//A bond sharing the central atom of a bend gives an improper dihedral. Improper dihedrals
//are only used when no proper dihedral is found for 4 or more atoms, in which case they are
//also returned as the second value.
//Dihedrals with 3 consecutive atoms with an angle of maxDeg degrees or more are skipped.
//A dihedral and its reverse are the same, only the first one found is kept.
func Dihedrals(coords *v3.Matrix, n int, bonds []Pair, bends []Triple, maxDeg float64, logger *zap.Logger) (dihedrals, impropers []Quad) {
	if logger == nil {
		logger = zap.NewNop()
	}
	set := &dihedralSet{coords: coords, maxDeg: maxDeg, logger: logger, seen: make(map[Quad]bool)}
	adj := adjacency(n, bonds)
	byAtom := bendsByAtom(n, bends)
	uniq := newPairSet(len(bonds))
	for _, b := range bonds {
		uniq.Add(b)
	}
	candidates := make([]Quad, 0)
	for _, bond := range uniq.Pairs() {
		for _, bi := range mergeSorted(byAtom[bond[0]], byAtom[bond[1]]) {
			bend := bends[bi]
			shared, terminal, ok := sharedAtom(bond, bend)
			if !ok {
				continue
			}
			central := bend[1]
			if shared == central {
				q := Quad{bend[0], bend[1], bend[2], terminal}
				if dihedralValid(coords, q, maxDeg) {
					candidates = append(candidates, q)
				} else {
					logger.Debug("Skipping improper dihedral, some of the atoms are (close to) linear", zap.Ints("dihedral", q[:]))
				}
				continue
			}
			far := bend[0]
			if far == shared {
				far = bend[2]
			}
			if coords.Angle(bend[0], bend[1], bend[2])*rad2deg >= maxDeg {
				for _, btb := range adj[far] {
					if btb == central || btb == terminal || btb == shared {
						continue
					}
					set.add(Quad{terminal, shared, far, btb})
				}
			} else if shared == bend[0] {
				set.add(Quad{terminal, bend[0], bend[1], bend[2]})
			} else {
				set.add(Quad{bend[0], bend[1], bend[2], terminal})
			}
		}
	}
	if n >= 4 && len(set.accepted) == 0 {
		for _, q := range candidates {
			if set.add(q) {
				impropers = append(impropers, q)
			}
		}
		logger.Info("No proper dihedrals found, using improper ones. Permutational symmetry not considered in generation of improper dihedrals", zap.Int("impropers", len(impropers)))
	}
	return set.accepted, impropers
}

//sharedAtom returns the atom that bond and bend have in common, and the other atom in the bond.
//ok is false unless they share exactly one atom.
func sharedAtom(bond Pair, bend Triple) (shared, other int, ok bool) {
	in := func(a int) bool { return a == bend[0] || a == bend[1] || a == bend[2] }
	for _, a := range bond {
		if b, _ := bond.Other(a); in(a) && !in(b) {
			return a, b, true
		}
	}
	return -1, -1, false
}
