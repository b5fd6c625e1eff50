package redint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultOptions(Te *testing.T) {
	O := DefaultOptions()
	assert.NoError(Te, O.Check())
	assert.Equal(Te, 1.3, O.Factor())
	assert.Equal(Te, 15.0, O.MinDeg())
	assert.Equal(Te, 180.0, O.MaxDeg())
	assert.Equal(Te, 175.0, O.ComplementDeg())
	assert.Equal(Te, 175.0, O.DihedralMaxDeg())
	assert.False(Te, O.LinearBends())
	assert.Equal(Te, 4, O.LBMaxBonds())
	assert.False(Te, O.WeightFiltering())
	assert.False(Te, O.MakeComplement())
	assert.Equal(Te, 3.78, O.MaxAux())
	assert.Equal(Te, 1.3, O.AuxFactor())
	assert.Positive(Te, O.Cpus())
	assert.NotNil(Te, O.Radii())
	assert.NotNil(Te, O.Logger())
	assert.Empty(Te, O.DefinePrims())
}

func TestOptionsSetters(Te *testing.T) {
	O := DefaultOptions()
	assert.Equal(Te, 170.0, O.LBMinDeg(170))
	assert.True(Te, O.LinearBends())
	assert.Equal(Te, 0.3, O.MinWeight(0.3))
	assert.True(Te, O.WeightFiltering())
	assert.Equal(Te, 4, O.Cpus(4))
	assert.Equal(Te, 4, O.Cpus(0), "non-positive values are ignored")
	l := zap.NewExample()
	assert.Same(Te, l, O.Logger(l))
	assert.Same(Te, l, O.Logger(nil))
	r := &TableRadii{}
	assert.Same(Te, r, O.Radii(r))
}

func TestOptionsCheck(Te *testing.T) {
	bad := []func(*Options){
		func(O *Options) { O.Factor(0) },
		func(O *Options) { O.MinDeg(100); O.MaxDeg(90) },
		func(O *Options) { O.MaxDeg(190) },
		func(O *Options) { O.DihedralMaxDeg(0) },
		func(O *Options) { O.LBMaxBonds(-1) },
		func(O *Options) { O.MaxAux(-1) },
		func(O *Options) { O.DefinePrims([]int{1}) },
	}
	for i, f := range bad {
		O := DefaultOptions()
		f(O)
		err := O.Check()
		var cerr *ConfigError
		assert.True(Te, errors.As(err, &cerr), "case %d", i)
	}
	//zero-value options
	O := new(Options)
	assert.Error(Te, O.Check())
	O.factor = 1.3
	O.maxDeg = 180
	O.dihedralMaxDeg = 175
	err := O.Check()
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "CPUs")
	assert.NotNil(Te, O.Logger())
}
