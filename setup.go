/*
 * setup.go, part of redint.
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
	"context"
	"encoding/json"
	"fmt"
	"strings"

	v3 "github.com/rmera/redint/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//damping factor for the angular terms of the weights.
const weightDamping = 0.12

//CoordInfo contains the primitive internal coordinates detected for a geometry,
//together with the intermediate results used to build them.
type CoordInfo struct {
	Bonds             []Pair
	HydrogenBonds     []Pair
	InterfragBonds    []Pair
	AuxInterfragBonds []Pair
	Bends             []Triple
	LinearBends       []Triple
	Dihedrals         []Quad
	Impropers         []Quad //the dihedrals in Dihedrals that are improper
	Fragments         [][]int
	CDM               []float64
	CBM               []bool
}

//AllBonds returns the bonds, hydrogen bonds, interfragment bonds and auxiliary
//interfragment bonds, in that order, without repetitions.
func (C *CoordInfo) AllBonds() []Pair {
	set := newPairSet(len(C.Bonds) + len(C.HydrogenBonds) + len(C.InterfragBonds) + len(C.AuxInterfragBonds))
	for _, l := range [][]Pair{C.Bonds, C.HydrogenBonds, C.InterfragBonds, C.AuxInterfragBonds} {
		for _, b := range l {
			set.Add(b)
		}
	}
	return set.Pairs()
}

//IsImproper returns true if the dihedral q (or its reverse) came from the improper fallback.
func (C *CoordInfo) IsImproper(q Quad) bool {
	c := q.canonical()
	for _, v := range C.Impropers {
		if v.canonical() == c {
			return true
		}
	}
	return false
}

//MarshalJSON leaves out the condensed matrices, which can be recomputed from the coordinates.
func (C *CoordInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Bonds             []Pair   `json:"bonds"`
		HydrogenBonds     []Pair   `json:"hydrogen_bonds"`
		InterfragBonds    []Pair   `json:"interfrag_bonds"`
		AuxInterfragBonds []Pair   `json:"aux_interfrag_bonds"`
		Bends             []Triple `json:"bends"`
		LinearBends       []Triple `json:"linear_bends"`
		Dihedrals         []Quad   `json:"dihedrals"`
		Impropers         []Quad   `json:"impropers"`
		Fragments         [][]int  `json:"fragments"`
	}{
		nonNil(C.Bonds), nonNil(C.HydrogenBonds), nonNil(C.InterfragBonds), nonNil(C.AuxInterfragBonds),
		nonNil(C.Bends), nonNil(C.LinearBends), nonNil(C.Dihedrals), nonNil(C.Impropers), nonNil(C.Fragments),
	})
}

//nonNil is used so empty lists are written as [] and not null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

//sortByPrimType splits the user-defined primitives in bonds, bends and dihedrals,
//checking that all the indexes are valid for n atoms.
func sortByPrimType(prims [][]int, n int) ([]Pair, []Triple, []Quad, error) {
	var bonds []Pair
	var bends []Triple
	var dihedrals []Quad
	for i, p := range prims {
		for _, v := range p {
			if v < 0 || v >= n {
				return nil, nil, nil, newConfigError("sortByPrimType", "defined primitive %d (%v) references atoms outside 0-%d", i, p, n-1)
			}
		}
		switch len(p) {
		case 2:
			bonds = append(bonds, Pair{p[0], p[1]})
		case 3:
			bends = append(bends, Triple{p[0], p[1], p[2]})
		case 4:
			dihedrals = append(dihedrals, Quad{p[0], p[1], p[2], p[3]})
		default:
			return nil, nil, nil, newConfigError("sortByPrimType", "defined primitive %d has %d indexes, it should have 2, 3 or 4", i, len(p))
		}
	}
	return bonds, bends, dihedrals, nil
}

//weightFilter returns the elements of inds for which the weight of the primitive made by
//mk is at least min.
func weightFilter[T any](inds []T, mk func(T) Primitive, min float64, atoms []string, coords *v3.Matrix, radii Radii) ([]T, error) {
	ret := make([]T, 0, len(inds))
	for _, v := range inds {
		w, err := mk(v).Weight(radii, atoms, coords, weightDamping)
		if err != nil {
			return nil, errDecorate(err, "weightFilter")
		}
		if w >= min {
			ret = append(ret, v)
		}
	}
	return ret, nil
}

//SetupRedundant detects the bonds, bends, linear bends and dihedrals for the molecule with
//the given atoms and coordinates (in bohr), using the parameters in O (DefaultOptions() if nil).
//It returns a ConfigError if the input is malformed, and a LookupError if some element
//data is missing. The result depends only on the input, so concurrent calls are safe as long
//as O is not modified meanwhile.
func SetupRedundant(atoms []string, coords *v3.Matrix, O *Options) (*CoordInfo, error) {
	if O == nil {
		O = DefaultOptions()
	}
	if err := O.Check(); err != nil {
		return nil, errDecorate(err, "SetupRedundant")
	}
	logger := O.Logger()
	radii := O.Radii()
	n := len(atoms)
	if coords.NVecs() != n {
		return nil, newConfigError("SetupRedundant", "%d atoms but %d coordinates", n, coords.NVecs())
	}
	logger.Info("Detecting primitive internals", zap.Int("atoms", n))
	defBonds, defBends, defDihedrals, err := sortByPrimType(O.DefinePrims(), n)
	if err != nil {
		return nil, errDecorate(err, "SetupRedundant")
	}
	filter := O.WeightFiltering()

	//Bonds
	found, cdm, cbm, err := BondSets(atoms, coords, O.Factor(), radii, O.Cpus())
	if err != nil {
		return nil, errDecorate(err, "SetupRedundant")
	}
	bset := newPairSet(len(found) + len(defBonds))
	for _, l := range [][]Pair{found, defBonds} {
		for _, b := range l {
			bset.Add(b)
		}
	}
	bonds := bset.Pairs()
	if filter {
		bonds, err = weightFilter(bonds, func(p Pair) Primitive { return &Stretch{Inds: p} }, O.MinWeight(), atoms, coords, radii)
		if err != nil {
			return nil, errDecorate(err, "SetupRedundant")
		}
	}

	//Fragments
	fragments, err := Fragments(n, bonds)
	if err != nil {
		return nil, errDecorate(err, "SetupRedundant")
	}
	interfrag, aux := ConnectFragments(cdm, n, fragments, O.MaxAux(), O.AuxFactor(), logger)

	hbonds, err := HydrogenBonds(atoms, coords, bonds, radii, logger)
	if err != nil {
		return nil, errDecorate(err, "SetupRedundant")
	}
	//auxiliary interfragment bonds are not used for bends and dihedrals.
	seeds := newPairSet(len(bonds) + len(hbonds) + len(interfrag))
	for _, l := range [][]Pair{bonds, hbonds, interfrag} {
		for _, b := range l {
			seeds.Add(b)
		}
	}

	//Bends
	bends := Bends(coords, seeds.Pairs(), O.MinDeg(), O.MaxDeg(), logger)
	bends = appendNewBends(bends, defBends)
	if filter {
		bends, err = weightFilter(bends, func(t Triple) Primitive { return &Bend{Inds: t} }, O.MinWeight(), atoms, coords, radii)
		if err != nil {
			return nil, errDecorate(err, "SetupRedundant")
		}
	}
	var lbends []Triple
	if O.LinearBends() {
		lbends = LinearBends(coords, n, cbm, bends, O.LBMinDeg(), O.LBMaxBonds(), logger)
		bends = removeTriples(bends, lbends)
	}

	//Dihedrals
	dihedrals, impropers := Dihedrals(coords, n, seeds.Pairs(), bends, O.DihedralMaxDeg(), logger)
	dihedrals = appendNewDihedrals(dihedrals, defDihedrals)
	if filter {
		dihedrals, err = weightFilter(dihedrals, func(q Quad) Primitive { return &Torsion{Inds: q} }, O.MinWeight(), atoms, coords, radii)
		if err != nil {
			return nil, errDecorate(err, "SetupRedundant")
		}
		impropers = keepQuads(impropers, dihedrals)
	}
	return &CoordInfo{
		Bonds:             bonds,
		HydrogenBonds:     hbonds,
		InterfragBonds:    interfrag,
		AuxInterfragBonds: aux,
		Bends:             bends,
		LinearBends:       lbends,
		Dihedrals:         dihedrals,
		Impropers:         impropers,
		Fragments:         fragments,
		CDM:               cdm,
		CBM:               cbm,
	}, nil
}

//appendNewBends adds the bends in def that are not yet in bends, in either direction.
func appendNewBends(bends, def []Triple) []Triple {
	seen := make(map[Triple]bool, len(bends))
	for _, b := range bends {
		seen[b] = true
	}
	for _, b := range def {
		if seen[b] || seen[Triple{b[2], b[1], b[0]}] {
			continue
		}
		seen[b] = true
		bends = append(bends, b)
	}
	return bends
}

//appendNewDihedrals adds the dihedrals in def that are not yet in dihedrals, in either direction.
func appendNewDihedrals(dihedrals, def []Quad) []Quad {
	seen := make(map[Quad]bool, len(dihedrals))
	for _, d := range dihedrals {
		seen[d.canonical()] = true
	}
	for _, d := range def {
		if seen[d.canonical()] {
			continue
		}
		seen[d.canonical()] = true
		dihedrals = append(dihedrals, d)
	}
	return dihedrals
}

//keepQuads returns the elements of from that are also in in.
func keepQuads(from, in []Quad) []Quad {
	if len(from) == 0 {
		return from
	}
	keep := make(map[Quad]bool, len(in))
	for _, v := range in {
		keep[v] = true
	}
	ret := make([]Quad, 0, len(from))
	for _, v := range from {
		if keep[v] {
			ret = append(ret, v)
		}
	}
	return ret
}

//SetupRedundantBatch runs SetupRedundant for each set of coordinates in frames, all of them
//with the same atoms. Up to O.Cpus() geometries are processed concurrently, each of them
//in a single goroutine. The results are
//in the same order as frames. If some geometry fails, the error for the first failing frame
//found is returned.
func SetupRedundantBatch(ctx context.Context, atoms []string, frames []*v3.Matrix, O *Options) ([]*CoordInfo, error) {
	if O == nil {
		O = DefaultOptions()
	}
	if err := O.Check(); err != nil {
		return nil, errDecorate(err, "SetupRedundantBatch")
	}
	ret := make([]*CoordInfo, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(O.Cpus())
	inner := frameOptions(O, len(frames))
	for i, coords := range frames {
		i, coords := i, coords
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := SetupRedundant(atoms, coords, inner)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("SetupRedundantBatch (frame %d)", i))
			}
			ret[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

//frameOptions returns the options used for each of nframes geometries processed together.
//With more than one frame, the CPUs go to the frames and each geometry uses one.
func frameOptions(O *Options, nframes int) *Options {
	if nframes < 2 {
		return O
	}
	inner := *O
	inner.cpus = 1
	return &inner
}

//Primitives builds the primitive internal coordinates for the bonds, bends, linear bends and
//dihedrals in info, in that order. If makeComplement is true, each linear bend gives a second
//primitive for the orthogonal direction.
func Primitives(info *CoordInfo, makeComplement bool, logger *zap.Logger) []Primitive {
	if logger == nil {
		logger = zap.NewNop()
	}
	bonds := info.AllBonds()
	prims := make([]Primitive, 0, len(bonds)+len(info.Bends)+2*len(info.LinearBends)+len(info.Dihedrals))
	for _, b := range bonds {
		prims = append(prims, &Stretch{Inds: b})
	}
	for _, b := range info.Bends {
		prims = append(prims, &Bend{Inds: b})
	}
	for _, b := range info.LinearBends {
		prims = append(prims, &LinearBend{Inds: b})
		if makeComplement {
			prims = append(prims, &LinearBend{Inds: b, Complement: true})
		}
	}
	for _, d := range info.Dihedrals {
		prims = append(prims, &Torsion{Inds: d, Improper: info.IsImproper(d)})
	}
	logger.Info("Defined primitives", zap.Int("primitives", len(prims)))
	logger.Debug("Primitive list\n" + PrimitiveListing(prims))
	return prims
}

//PrimitiveListing returns a human-readable, numbered list of the primitives.
func PrimitiveListing(prims []Primitive) string {
	var b strings.Builder
	for i, p := range prims {
		fmt.Fprintf(&b, "\t%03d: %14s\n", i, p.String())
	}
	return b.String()
}
