package redint

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//isPartition checks that frags contains every index in 0..n-1 exactly once.
func isPartition(Te *testing.T, frags [][]int, n int) {
	Te.Helper()
	seen := make([]int, n)
	for _, f := range frags {
		require.NotEmpty(Te, f)
		for _, a := range f {
			require.True(Te, a >= 0 && a < n, "atom %d out of range", a)
			seen[a]++
		}
	}
	for i, v := range seen {
		assert.Equal(Te, 1, v, "atom %d appears %d times", i, v)
	}
}

func TestFragmentsPartition(Te *testing.T) {
	cases := []struct {
		atoms  []string
		coords []float64
		nfrags int
	}{
		{waterAtoms, water, 1},
		{twoWaterAtoms, twoWaters, 2},
		{twoWaterAtoms, dimer, 2},
		{h2o2Atoms, h2o2, 1},
		{[]string{"O", "H", "H", "O"}, append(append([]float64{}, water...), 0, 4, 0), 2},
	}
	for _, c := range cases {
		bonds, _, _, err := BondSets(c.atoms, geom(Te, c.coords), 1.3, DefaultRadii())
		require.NoError(Te, err)
		frags, err := Fragments(len(c.atoms), bonds)
		require.NoError(Te, err)
		isPartition(Te, frags, len(c.atoms))
		assert.Len(Te, frags, c.nfrags)
	}
}

func TestFragmentsSingletons(Te *testing.T) {
	frags, err := Fragments(5, []Pair{{3, 1}})
	require.NoError(Te, err)
	assert.Equal(Te, [][]int{{0}, {1, 3}, {2}, {4}}, frags)

	_, err = Fragments(2, []Pair{{0, 2}})
	var cerr *ConfigError
	assert.True(Te, errors.As(err, &cerr))
}

func TestConnectTwoFragments(Te *testing.T) {
	coords := geom(Te, twoWaters)
	n := coords.NVecs()
	cdm := DistanceMatrix(coords)
	frags := [][]int{{0, 1, 2}, {3, 4, 5}}
	logger, logs := observed()
	interfrag, aux := ConnectFragments(cdm, n, frags, 3.78, 1.3, logger)
	assert.Equal(Te, []Pair{{1, 5}}, interfrag)
	assert.Equal(Te, []Pair{{0, 5}, {1, 3}}, aux)
	assert.Equal(Te, 1, logs.FilterMessage("Minimum distance interfragment bond").Len())

	//a large absolute cutoff takes every other pair.
	_, aux = ConnectFragments(cdm, n, frags, 100, 1.3, nil)
	assert.Len(Te, aux, 8)
	assert.NotContains(Te, aux, Pair{1, 5})
}

func TestConnectIsolatedAtom(Te *testing.T) {
	atoms := []string{"O", "H", "H", "O"}
	coords := geom(Te, append(append([]float64{}, water...), 0, 4, 0))
	bonds, cdm, _, err := BondSets(atoms, coords, 1.3, DefaultRadii())
	require.NoError(Te, err)
	frags, err := Fragments(4, bonds)
	require.NoError(Te, err)
	assert.Equal(Te, [][]int{{0, 1, 2}, {3}}, frags)
	interfrag, aux := ConnectFragments(cdm, 4, frags, 3.78, 1.3, nil)
	//1 and 2 are at the same distance from 3, the first one is taken.
	assert.Equal(Te, []Pair{{1, 3}}, interfrag)
	assert.Equal(Te, []Pair{{0, 3}, {2, 3}}, aux)
}

func TestConnectSingleFragment(Te *testing.T) {
	cdm := DistanceMatrix(geom(Te, water))
	interfrag, aux := ConnectFragments(cdm, 3, [][]int{{0, 1, 2}}, 3.78, 1.3, nil)
	assert.Empty(Te, interfrag)
	assert.Empty(Te, aux)
}

func TestConnectUndefinedDistances(Te *testing.T) {
	//NaN coordinates give NaN distances, no pair can be the closest one.
	nan := math.NaN()
	cdm := []float64{nan, nan, 1}
	logger, logs := observed()
	inter, aux := ConnectFragments(cdm, 3, [][]int{{0}, {1, 2}}, 3.78, 1.3, logger)
	assert.Empty(Te, inter)
	assert.Empty(Te, aux)
	assert.Equal(Te, 1, logs.FilterMessageSnippet("No finite distance").Len())
}
