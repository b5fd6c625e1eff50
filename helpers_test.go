package redint

import (
	"testing"

	v3 "github.com/rmera/redint/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

//geometries used in several tests, in Angstrom.
var (
	waterAtoms = []string{"O", "H", "H"}
	water      = []float64{
		0, 0, 0,
		0.757, 0.586, 0,
		-0.757, 0.586, 0,
	}

	//two waters 6 A apart.
	twoWaterAtoms = []string{"O", "H", "H", "O", "H", "H"}
	twoWaters     = []float64{
		0, 0, 0,
		0.757, 0.586, 0,
		-0.757, 0.586, 0,
		6, 0, 0,
		6.757, 0.586, 0,
		5.243, 0.586, 0,
	}

	//a hydrogen-bonded water dimer. H1 points to O3.
	dimer = []float64{
		0, 0, 0,
		0.96, 0, 0,
		-0.24, 0.93, 0,
		2.9, 0.05, 0,
		3.2, 0.9, 0,
		3.2, -0.45, 0.78,
	}

	h2o2Atoms = []string{"O", "O", "H", "H"}
	h2o2      = []float64{
		0, 0.734, -0.053,
		0, -0.734, -0.053,
		0.839, 0.880, 0.422,
		-0.839, -0.880, 0.422,
	}

	formaldehydeAtoms = []string{"C", "O", "H", "H"}
	formaldehyde      = []float64{
		0, 0, 0,
		1.21, 0, 0,
		-0.55, 0.94, 0,
		-0.55, -0.94, 0,
	}

	co2Atoms = []string{"O", "C", "O"}
	co2      = []float64{ //slightly bent, about 179 degrees
		-1.16, 0, 0,
		0, 0, 0,
		1.16, 0.02, 0,
	}
)

//geom returns a matrix in bohr from coordinates in Angstrom.
func geom(Te *testing.T, ang []float64) *v3.Matrix {
	Te.Helper()
	b := make([]float64, len(ang))
	for i, v := range ang {
		b[i] = v * Ang2Bohr
	}
	m, err := v3.NewMatrix(b)
	require.NoError(Te, err)
	return m
}

//observed returns a logger that records everything, and the records.
func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}
