package redint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBendsWater(Te *testing.T) {
	coords := geom(Te, water)
	bonds := []Pair{{0, 1}, {2, 0}}
	assert.Equal(Te, []Triple{{1, 0, 2}}, Bends(coords, bonds, 15, 180, nil))
	//repeated bonds don't give repeated bends.
	assert.Equal(Te, []Triple{{1, 0, 2}}, Bends(coords, append(bonds, Pair{1, 0}), 15, 180, nil))

	logger, logs := observed()
	assert.Empty(Te, Bends(coords, bonds, 110, 180, logger))
	assert.Equal(Te, 1, logs.FilterMessage("Bend is not valid").Len())
	assert.Empty(Te, Bends(coords, bonds, 15, 100, nil))
}

func TestBendsDegenerate(Te *testing.T) {
	//atom 1 sits on top of atom 0
	coords := geom(Te, []float64{0, 0, 0, 0, 0, 0, 1, 0, 0})
	assert.Empty(Te, Bends(coords, []Pair{{0, 1}, {0, 2}}, 0, 180, nil))
}

func TestLinearChain(Te *testing.T) {
	coords := geom(Te, co2)
	bonds, _, cbm, err := BondSets(co2Atoms, coords, 1.3, DefaultRadii())
	require.NoError(Te, err)
	bends := Bends(coords, bonds, 15, 180, nil)
	require.Equal(Te, []Triple{{0, 1, 2}}, bends)

	lb := LinearBends(coords, 3, cbm, bends, 175, 4, nil)
	assert.Equal(Te, []Triple{{0, 1, 2}}, lb)
	assert.Empty(Te, removeTriples(bends, lb))

	//the central atom has too many bonds
	assert.Empty(Te, LinearBends(coords, 3, cbm, bends, 175, 1, nil))
	//not linear enough
	assert.Empty(Te, LinearBends(coords, 3, cbm, bends, 179.9, 4, nil))
}

func TestLinearChainSetup(Te *testing.T) {
	O := DefaultOptions()
	info, err := SetupRedundant(co2Atoms, geom(Te, co2), O)
	require.NoError(Te, err)
	assert.Equal(Te, []Triple{{0, 1, 2}}, info.Bends)
	assert.Empty(Te, info.LinearBends)

	O.LBMinDeg(175)
	O.MakeComplement(true)
	info, err = SetupRedundant(co2Atoms, geom(Te, co2), O)
	require.NoError(Te, err)
	assert.Empty(Te, info.Bends)
	assert.Equal(Te, []Triple{{0, 1, 2}}, info.LinearBends)
	prims := Primitives(info, O.MakeComplement(), nil)
	require.Len(Te, prims, 4)
	assert.Equal(Te, KindLinearBend, prims[2].Kind())
	assert.False(Te, prims[2].(*LinearBend).Complement)
	assert.True(Te, prims[3].(*LinearBend).Complement)
}
