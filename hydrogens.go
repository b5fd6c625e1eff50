/*
 * hydrogens.go, part of redint.
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

	v3 "github.com/rmera/redint/v3"
	"go.uber.org/zap"
)

//elements that can be donors or acceptors of hydrogen bonds.
var hbondElements = map[string]bool{"N": true, "O": true, "F": true, "P": true, "S": true, "Cl": true}

//IsHBondElement returns true if the element can take part in a hydrogen bond as donor or acceptor.
func IsHBondElement(symbol string) bool {
	return hbondElements[CanonicalSymbol(symbol)]
}

//HydrogenBonds returns the hydrogen bonds H-Y, where H is bonded to an electronegative
//atom X, and Y is another electronegative atom not bonded to H. The H-Y distance must
//be larger than the sum of their covalent radii, and smaller than 0.9 times the sum
//of their van der Waals radii, and the X-H-Y angle must be larger than 90 degrees.
//The bonds are returned with the hydrogen first, sorted by H, then X, then Y.
func HydrogenBonds(atoms []string, coords *v3.Matrix, bonds []Pair, radii Radii, logger *zap.Logger) ([]Pair, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if coords.NVecs() != len(atoms) {
		return nil, newConfigError("HydrogenBonds", "%d atoms but %d coordinates", len(atoms), coords.NVecs())
	}
	bonded := newPairSet(len(bonds))
	for _, b := range bonds {
		bonded.Add(b)
	}
	hs := make([]int, 0, len(atoms)/2)
	xs := make([]int, 0, len(atoms)/2)
	for i, a := range atoms {
		switch s := CanonicalSymbol(a); {
		case s == "H":
			hs = append(hs, i)
		case IsHBondElement(s):
			xs = append(xs, i)
		}
	}
	if len(hs) == 0 || len(xs) < 2 {
		return nil, nil
	}
	rh, err := radii.Covalent("H")
	if err != nil {
		return nil, errDecorate(err, "HydrogenBonds")
	}
	vh, err := radii.VdW("H")
	if err != nil {
		return nil, errDecorate(err, "HydrogenBonds")
	}
	found := newPairSet(2)
	for _, h := range hs {
		for _, x := range xs {
			if !bonded.Has(Pair{h, x}) {
				continue
			}
			for _, y := range xs {
				if y == x || bonded.Has(Pair{h, y}) {
					continue
				}
				ry, err := radii.Covalent(atoms[y])
				if err != nil {
					return nil, errDecorate(err, "HydrogenBonds")
				}
				vy, err := radii.VdW(atoms[y])
				if err != nil {
					return nil, errDecorate(err, "HydrogenBonds")
				}
				d := coords.Distance(h, y)
				angle := coords.Angle(x, h, y)
				if rh+ry < d && d < 0.9*(vh+vy) && angle > math.Pi/2 {
					if found.Add(Pair{h, y}) {
						logger.Info("Detected hydrogen bond", zap.Int("hydrogen", h), zap.Int("acceptor", y), zap.String("acceptor_element", atoms[y]), zap.Float64("distance", d))
					}
				}
			}
		}
	}
	return found.Pairs(), nil
}
