package redint

import (
	"errors"
	"testing"

	v3 "github.com/rmera/redint/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondensedIndex(Te *testing.T) {
	n := 5
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(Te, k, CondensedIndex(n, i, j))
			assert.Equal(Te, k, CondensedIndex(n, j, i))
			k++
		}
	}
	assert.Equal(Te, k, CondensedLen(n))
	assert.Equal(Te, 0, CondensedLen(1))
}

func TestDistanceMatrixParallel(Te *testing.T) {
	coords := geom(Te, twoWaters)
	serial := DistanceMatrix(coords)
	for _, cpus := range []int{2, 3, 16} {
		assert.Equal(Te, serial, DistanceMatrix(coords, cpus), "cpus=%d", cpus)
	}
	assert.InDelta(Te, 6*Ang2Bohr, serial[CondensedIndex(6, 0, 3)], 1e-10)
	assert.Empty(Te, DistanceMatrix(v3.Zeros(1)))
}

func TestBondSetsWater(Te *testing.T) {
	bonds, cdm, cbm, err := BondSets(waterAtoms, geom(Te, water), 1.3, DefaultRadii())
	require.NoError(Te, err)
	assert.Equal(Te, []Pair{{0, 1}, {0, 2}}, bonds)
	assert.Len(Te, cdm, 3)
	assert.Equal(Te, []bool{true, true, false}, cbm)
	assert.Equal(Te, 2, BondCount(cbm, 3, 0))
	assert.Equal(Te, 1, BondCount(cbm, 3, 2))
}

func TestBondSetsSymmetry(Te *testing.T) {
	coords := geom(Te, dimer)
	n := len(twoWaterAtoms)
	bonds, _, cbm, err := BondSets(twoWaterAtoms, coords, 1.3, DefaultRadii())
	require.NoError(Te, err)
	for _, b := range bonds {
		assert.NotEqual(Te, b[0], b[1], "self bond")
		assert.True(Te, cbm[CondensedIndex(n, b[0], b[1])])
		assert.True(Te, cbm[CondensedIndex(n, b[1], b[0])])
	}
	adj := adjacency(n, bonds)
	for i, neigh := range adj {
		for _, j := range neigh {
			assert.Contains(Te, adj[j], i, "bond %d-%d is not symmetric", i, j)
		}
	}
}

func TestBondSetsMonotonic(Te *testing.T) {
	coords := geom(Te, dimer)
	var prev []Pair
	for _, f := range []float64{0.8, 1.0, 1.3, 1.6, 2.0, 3.0} {
		bonds, _, _, err := BondSets(twoWaterAtoms, coords, f, DefaultRadii())
		require.NoError(Te, err)
		for _, b := range prev {
			assert.Contains(Te, bonds, b, "bond %v lost when going to factor %g", b, f)
		}
		assert.GreaterOrEqual(Te, len(bonds), len(prev))
		prev = bonds
	}
}

func TestBondSetsErrors(Te *testing.T) {
	_, _, _, err := BondSets([]string{"O", "Xx", "H"}, geom(Te, water), 1.3, DefaultRadii())
	require.Error(Te, err)
	var lerr *LookupError
	require.True(Te, errors.As(err, &lerr))
	assert.Equal(Te, "Xx", lerr.Symbol)
	assert.Contains(Te, lerr.Decorate(""), "BondSets")

	_, _, _, err = BondSets([]string{"O", "H"}, geom(Te, water), 1.3, DefaultRadii())
	var cerr *ConfigError
	assert.True(Te, errors.As(err, &cerr))

	bonds, cdm, cbm, err := BondSets(nil, v3.Zeros(0), 1.3, DefaultRadii())
	require.NoError(Te, err)
	assert.Empty(Te, bonds)
	assert.Empty(Te, cdm)
	assert.Empty(Te, cbm)
}

func TestRadiiCase(Te *testing.T) {
	r := DefaultRadii()
	for _, s := range []string{"cl", "CL", "Cl", " cl "} {
		v, err := r.Covalent(s)
		require.NoError(Te, err)
		assert.InDelta(Te, 1.02*Ang2Bohr, v, 1e-10)
	}
	_, err := r.VdW("Q")
	var lerr *LookupError
	assert.ErrorAs(Te, err, &lerr)
	assert.Equal(Te, "vdw", lerr.Table)
}

func TestAdjacency(Te *testing.T) {
	//repeated and reversed bonds, and an isolated atom.
	adj := adjacency(5, []Pair{{2, 1}, {0, 1}, {1, 2}, {3, 1}})
	assert.Equal(Te, [][]int{{1}, {0, 2, 3}, {1}, {1}, {}}, adj)
}
