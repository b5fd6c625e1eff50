/*
 * bonds.go, part of redint.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"sync"

	"github.com/rmera/redint/chemgraph"
	v3 "github.com/rmera/redint/v3"
)

const rad2deg = 180 / math.Pi

//CondensedIndex returns the position of the pair i,j (i!=j) in a condensed
//matrix for n atoms. The order of i and j doesn't matter.
func CondensedIndex(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return n*i - i*(i+1)/2 + j - i - 1
}

//CondensedLen returns the length of a condensed matrix for n atoms.
func CondensedLen(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

//DistanceMatrix returns the condensed matrix of all interatomic distances in coords.
//The rows are split among cpus gorutines. Each distance is computed
//exactly as in the serial case, so the result doesn't depend on cpus.
func DistanceMatrix(coords *v3.Matrix, cpus ...int) []float64 {
	n := coords.NVecs()
	cdm := make([]float64, CondensedLen(n))
	if n < 2 {
		return cdm
	}
	workers := 1
	if len(cpus) > 0 && cpus[0] > 1 {
		workers = cpus[0]
	}
	if workers > n-1 {
		workers = n - 1
	}
	rows := make(chan int, n)
	for i := 0; i < n-1; i++ {
		rows <- i
	}
	close(rows)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				//each gorutine writes to its own part of the slice.
				for j := i + 1; j < n; j++ {
					cdm[CondensedIndex(n, i, j)] = coords.Distance(i, j)
				}
			}
		}()
	}
	wg.Wait()
	return cdm
}

//BondSets assigns a bond to every pair of atoms closer than factor times the sum of their
//covalent radii. It returns the bonds, in lexicographic order, the condensed distance matrix and
//the condensed bond matrix. It returns a LookupError if some covalent radius is missing,
//and a ConfigError if atoms and coords don't match.
func BondSets(atoms []string, coords *v3.Matrix, factor float64, radii Radii, cpus ...int) ([]Pair, []float64, []bool, error) {
	n := len(atoms)
	if coords.NVecs() != n {
		return nil, nil, nil, newConfigError("BondSets", "%d atoms but %d coordinates", n, coords.NVecs())
	}
	cov, err := covalentRadii(radii, atoms)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "BondSets")
	}
	cdm := DistanceMatrix(coords, cpus...)
	cbm := make([]bool, len(cdm))
	bonds := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			k := CondensedIndex(n, i, j)
			if cdm[k] <= factor*(cov[i]+cov[j]) {
				cbm[k] = true
				bonds = append(bonds, Pair{i, j})
			}
		}
	}
	return bonds, cdm, cbm, nil
}

//BondCount returns the number of bonds atom i has in the condensed bond matrix cbm.
func BondCount(cbm []bool, n, i int) int {
	c := 0
	for j := 0; j < n; j++ {
		if j != i && cbm[CondensedIndex(n, i, j)] {
			c++
		}
	}
	return c
}

//pairSet is a set of unordered atom pairs that remembers the insertion order.
type pairSet struct {
	seen  map[Pair]bool
	pairs []Pair
}

func newPairSet(capacity int) *pairSet {
	return &pairSet{seen: make(map[Pair]bool, capacity), pairs: make([]Pair, 0, capacity)}
}

//Add adds the pair, unless it (or its reverse) is already there. Self pairs are ignored.
//It returns true if the pair was added.
func (P *pairSet) Add(p Pair) bool {
	s := p.Sorted()
	if s[0] == s[1] || P.seen[s] {
		return false
	}
	P.seen[s] = true
	P.pairs = append(P.pairs, p)
	return true
}

func (P *pairSet) Has(p Pair) bool {
	return P.seen[p.Sorted()]
}

//Pairs returns the pairs in insertion order.
func (P *pairSet) Pairs() []Pair {
	return P.pairs
}

//edges returns the bonds as node pairs for a chemgraph.Topology.
func edges(bonds []Pair) [][2]int {
	ret := make([][2]int, len(bonds))
	for i, v := range bonds {
		ret[i] = [2]int(v)
	}
	return ret
}

//adjacency returns, for each atom, its bonded neighbours in ascending order.
func adjacency(n int, bonds []Pair) [][]int {
	top := chemgraph.NewTopology(n, edges(bonds))
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = top.Neighbors(i)
	}
	return adj
}
