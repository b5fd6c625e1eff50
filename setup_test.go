package redint

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	v3 "github.com/rmera/redint/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWater(Te *testing.T) {
	info, err := SetupRedundant(waterAtoms, geom(Te, water), nil)
	require.NoError(Te, err)
	assert.Equal(Te, []Pair{{0, 1}, {0, 2}}, info.Bonds)
	assert.Equal(Te, [][]int{{0, 1, 2}}, info.Fragments)
	assert.Empty(Te, info.InterfragBonds)
	assert.Equal(Te, []Triple{{1, 0, 2}}, info.Bends)
	assert.Empty(Te, info.Dihedrals)
	prims := Primitives(info, false, nil)
	require.Len(Te, prims, 3)
	assert.Equal(Te, KindStretch, prims[0].Kind())
	assert.Equal(Te, KindBend, prims[2].Kind())
	listing := PrimitiveListing(prims)
	assert.Equal(Te, 3, strings.Count(listing, "\n"))
	assert.Contains(Te, listing, "\t002:    Bend[1 0 2]")
}

func TestSetupTwoFragments(Te *testing.T) {
	logger, logs := observed()
	O := DefaultOptions()
	O.Logger(logger)
	info, err := SetupRedundant(twoWaterAtoms, geom(Te, twoWaters), O)
	require.NoError(Te, err)
	assert.Len(Te, info.Fragments, 2)
	isPartition(Te, info.Fragments, 6)
	assert.Equal(Te, []Pair{{1, 5}}, info.InterfragBonds)
	assert.Equal(Te, []Pair{{0, 5}, {1, 3}}, info.AuxInterfragBonds)
	assert.Equal(Te, []Pair{{0, 1}, {0, 2}, {3, 4}, {3, 5}, {1, 5}, {0, 5}, {1, 3}}, info.AllBonds())
	//the interfragment bond gives bends between the fragments
	assert.Contains(Te, info.Bends, Triple{0, 1, 5})
	assert.Contains(Te, info.Bends, Triple{1, 5, 3})
	//but the auxiliary ones don't
	for _, b := range info.Bends {
		assert.NotEqual(Te, Triple{0, 5, 3}, b)
	}
	noReversed(Te, info.Dihedrals)
	assert.Positive(Te, logs.FilterMessage("Detecting primitive internals").Len())
}

func TestSetupHydrogenBond(Te *testing.T) {
	info, err := SetupRedundant(twoWaterAtoms, geom(Te, dimer), nil)
	require.NoError(Te, err)
	assert.Equal(Te, []Pair{{1, 3}}, info.HydrogenBonds)
	assert.NotContains(Te, info.Bonds, Pair{1, 3})
	//H-bond and interfragment bond are the same pair, it is only used once.
	assert.Equal(Te, []Pair{{1, 3}}, info.InterfragBonds)
	n := 0
	for _, b := range info.AllBonds() {
		if b.Sorted() == (Pair{1, 3}) {
			n++
		}
	}
	assert.Equal(Te, 1, n)
	assert.Contains(Te, info.Bends, Triple{0, 1, 3})
}

func TestSetupImproper(Te *testing.T) {
	info, err := SetupRedundant(formaldehydeAtoms, geom(Te, formaldehyde), nil)
	require.NoError(Te, err)
	require.NotEmpty(Te, info.Dihedrals)
	assert.Equal(Te, info.Dihedrals, info.Impropers)
	prims := Primitives(info, false, nil)
	ntors := 0
	for _, p := range prims {
		if t, ok := p.(*Torsion); ok {
			ntors++
			assert.True(Te, t.Improper)
			assert.Len(Te, t.Indices(), 4)
		}
	}
	assert.Equal(Te, len(info.Dihedrals), ntors)
}

func TestSetupDeterministic(Te *testing.T) {
	for _, c := range []struct {
		atoms  []string
		coords []float64
	}{
		{twoWaterAtoms, twoWaters},
		{twoWaterAtoms, dimer},
		{h2o2Atoms, h2o2},
		{formaldehydeAtoms, formaldehyde},
	} {
		O := DefaultOptions()
		O.Cpus(3)
		first, err := SetupRedundant(c.atoms, geom(Te, c.coords), O)
		require.NoError(Te, err)
		O.Cpus(1)
		second, err := SetupRedundant(c.atoms, geom(Te, c.coords), O)
		require.NoError(Te, err)
		assert.Equal(Te, first, second)
		noReversed(Te, first.Dihedrals)
		isPartition(Te, first.Fragments, len(c.atoms))
	}
}

func TestSetupDefinePrims(Te *testing.T) {
	O := DefaultOptions()
	O.DefinePrims([]int{1, 2}, []int{1, 0, 2}, []int{1, 0, 2, 1})
	info, err := SetupRedundant(waterAtoms, geom(Te, water), O)
	require.NoError(Te, err)
	assert.Contains(Te, info.Bonds, Pair{1, 2})
	//the defined bend is already there in the other direction
	assert.Equal(Te, 1, countTriple(info.Bends, Triple{1, 0, 2})+countTriple(info.Bends, Triple{2, 0, 1}))
	assert.Contains(Te, info.Dihedrals, Quad{1, 0, 2, 1})

	O.DefinePrims([]int{0, 3})
	_, err = SetupRedundant(waterAtoms, geom(Te, water), O)
	var cerr *ConfigError
	assert.True(Te, errors.As(err, &cerr))

	O.DefinePrims([]int{0, 1, 2, 0, 1})
	_, err = SetupRedundant(waterAtoms, geom(Te, water), O)
	assert.True(Te, errors.As(err, &cerr))
}

func countTriple(l []Triple, t Triple) int {
	n := 0
	for _, v := range l {
		if v == t {
			n++
		}
	}
	return n
}

func TestSetupMinWeight(Te *testing.T) {
	O := DefaultOptions()
	O.MinWeight(0.5)
	info, err := SetupRedundant(waterAtoms, geom(Te, water), O)
	require.NoError(Te, err)
	assert.Len(Te, info.Bonds, 2)
	assert.Len(Te, info.Bends, 1)

	//nothing survives, so every atom is its own fragment and
	//interfragment bonds take over.
	O.MinWeight(2)
	info, err = SetupRedundant(waterAtoms, geom(Te, water), O)
	require.NoError(Te, err)
	assert.Empty(Te, info.Bonds)
	assert.Equal(Te, [][]int{{0}, {1}, {2}}, info.Fragments)
	assert.Equal(Te, []Pair{{0, 1}, {0, 2}, {1, 2}}, info.InterfragBonds)
	assert.Empty(Te, info.Bends)
}

func TestSetupErrors(Te *testing.T) {
	_, err := SetupRedundant([]string{"O", "H"}, geom(Te, water), nil)
	var cerr *ConfigError
	assert.True(Te, errors.As(err, &cerr))

	_, err = SetupRedundant([]string{"O", "H", "Qq"}, geom(Te, water), nil)
	var lerr *LookupError
	require.True(Te, errors.As(err, &lerr))
	assert.Equal(Te, "Qq", lerr.Symbol)

	O := DefaultOptions()
	O.Factor(-1)
	_, err = SetupRedundant(waterAtoms, geom(Te, water), O)
	assert.True(Te, errors.As(err, &cerr))

	info, err := SetupRedundant(nil, v3.Zeros(0), nil)
	require.NoError(Te, err)
	assert.Empty(Te, info.Bonds)
	assert.Empty(Te, info.Fragments)
	info, err = SetupRedundant([]string{"C"}, geom(Te, []float64{0, 0, 0}), nil)
	require.NoError(Te, err)
	assert.Equal(Te, [][]int{{0}}, info.Fragments)
	assert.Empty(Te, info.AllBonds())
}

func TestSetupBatch(Te *testing.T) {
	frames := []*v3.Matrix{geom(Te, twoWaters), geom(Te, dimer), geom(Te, twoWaters)}
	O := DefaultOptions()
	O.Cpus(2)
	infos, err := SetupRedundantBatch(context.Background(), twoWaterAtoms, frames, O)
	require.NoError(Te, err)
	require.Len(Te, infos, 3)
	for i, f := range frames {
		single, err := SetupRedundant(twoWaterAtoms, f, O)
		require.NoError(Te, err)
		assert.Equal(Te, single, infos[i], "frame %d", i)
	}
	assert.Equal(Te, []Pair{{1, 3}}, infos[1].HydrogenBonds)

	frames = append(frames, geom(Te, water))
	_, err = SetupRedundantBatch(context.Background(), twoWaterAtoms, frames, O)
	var cerr *ConfigError
	require.True(Te, errors.As(err, &cerr))
	assert.Contains(Te, err.Error(), "frame 3")
}

func TestSetupBatchBadOptions(Te *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, err := SetupRedundantBatch(context.Background(), waterAtoms, []*v3.Matrix{geom(Te, water)}, new(Options))
		done <- err
	}()
	select {
	case err := <-done:
		var cerr *ConfigError
		assert.True(Te, errors.As(err, &cerr), "got %v", err)
	case <-time.After(5 * time.Second):
		Te.Fatal("SetupRedundantBatch did not return with zero-value options")
	}
	O := DefaultOptions()
	O.Cpus(1)
	O.Factor(-1)
	_, err := SetupRedundantBatch(context.Background(), waterAtoms, []*v3.Matrix{geom(Te, water)}, O)
	assert.Error(Te, err)
}

func TestFrameOptions(Te *testing.T) {
	O := DefaultOptions()
	O.Cpus(8)
	assert.Same(Te, O, frameOptions(O, 1))
	inner := frameOptions(O, 3)
	assert.Equal(Te, 1, inner.Cpus())
	assert.Equal(Te, 8, O.Cpus())
	assert.Equal(Te, O.Factor(), inner.Factor())
}

func TestCoordInfoJSON(Te *testing.T) {
	info, err := SetupRedundant(waterAtoms, geom(Te, water), nil)
	require.NoError(Te, err)
	b, err := json.Marshal(info)
	require.NoError(Te, err)
	var m map[string]interface{}
	require.NoError(Te, json.Unmarshal(b, &m))
	assert.Equal(Te, []interface{}{[]interface{}{0.0, 1.0}, []interface{}{0.0, 2.0}}, m["bonds"])
	assert.Equal(Te, []interface{}{}, m["dihedrals"])
	assert.NotContains(Te, m, "cdm")
}
