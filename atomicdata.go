/*
 * atomicdata.go, part of redint.
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

import "strings"

//Bohr2Ang converts lengths in bohr to Angstrom, Ang2Bohr does the opposite.
const (
	Bohr2Ang = 0.52917721092
	Ang2Bohr = 1 / Bohr2Ang
)

//A map for assigning covalent radii (in A) to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//sp3 radius for C, high spin radii for Mn, Fe and Co.
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76,
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Ar": 1.06,
	"K":  2.03,
	"Ca": 1.76,
	"Sc": 1.70,
	"Ti": 1.60,
	"V":  1.53,
	"Cr": 1.39,
	"Mn": 1.61,
	"Fe": 1.52,
	"Co": 1.50,
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Ga": 1.22,
	"Ge": 1.20,
	"As": 1.19,
	"Se": 1.20,
	"Br": 1.20,
	"Kr": 1.16,
	"Rb": 2.20,
	"Sr": 1.95,
	"Y":  1.90,
	"Zr": 1.75,
	"Nb": 1.64,
	"Mo": 1.54,
	"Tc": 1.47,
	"Ru": 1.46,
	"Rh": 1.42,
	"Pd": 1.39,
	"Ag": 1.45,
	"Cd": 1.44,
	"In": 1.42,
	"Sn": 1.39,
	"Sb": 1.39,
	"Te": 1.38,
	"I":  1.39,
	"Xe": 1.40,
	"Cs": 2.44,
	"Ba": 2.15,
	"Pt": 1.36,
	"Au": 1.36,
	"Hg": 1.32,
	"Tl": 1.45,
	"Pb": 1.46,
	"Bi": 1.48,
}

//A map for assigning van der Waals radii (in A) to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that not every element with a covalent radius has one.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"He": 1.40,
	"Li": 1.81,
	"Be": 1.53,
	"B":  1.92,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"Ne": 1.54,
	"Na": 2.27,
	"Mg": 1.73,
	"Al": 1.84,
	"Si": 2.10,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"Ar": 1.88,
	"K":  2.75,
	"Ca": 2.31,
	"Cr": 1.97,
	"Mn": 1.96,
	"Fe": 1.96,
	"Co": 1.95,
	"Ni": 1.63,
	"Cu": 2.00,
	"Zn": 2.02,
	"Ga": 1.87,
	"Ge": 2.11,
	"As": 1.85,
	"Se": 1.90,
	"Br": 1.83,
	"Kr": 2.02,
	"Rb": 3.03,
	"Sr": 2.49,
	"Pd": 1.63,
	"Ag": 1.72,
	"Cd": 1.58,
	"In": 1.93,
	"Sn": 2.17,
	"Sb": 2.06,
	"Te": 2.06,
	"I":  1.98,
	"Xe": 2.16,
	"Cs": 3.43,
	"Ba": 2.68,
	"Pt": 1.75,
	"Au": 1.66,
	"Hg": 1.55,
	"Tl": 1.96,
	"Pb": 2.02,
	"Bi": 2.07,
}

//CanonicalSymbol returns the symbol with the first letter in upper case
//and the rest in lower case, so "CL", "cl" and "Cl" all become "Cl".
func CanonicalSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//TableRadii is a Radii backed by two maps with values in Angstrom.
//Values are returned in bohr.
type TableRadii struct {
	Cov map[string]float64
	Vdw map[string]float64
}

//DefaultRadii returns the built-in radii tables.
func DefaultRadii() *TableRadii {
	return &TableRadii{Cov: symbolCovrad, Vdw: symbolVdwrad}
}

//Covalent returns the covalent radius of symbol, in bohr.
func (T *TableRadii) Covalent(symbol string) (float64, error) {
	r, ok := T.Cov[CanonicalSymbol(symbol)]
	if !ok || r <= 0 {
		return 0, &LookupError{Symbol: symbol, Table: "covalent", deco: []string{"Covalent"}}
	}
	return r * Ang2Bohr, nil
}

//VdW returns the van der Waals radius of symbol, in bohr.
func (T *TableRadii) VdW(symbol string) (float64, error) {
	r, ok := T.Vdw[CanonicalSymbol(symbol)]
	if !ok || r <= 0 {
		return 0, &LookupError{Symbol: symbol, Table: "vdw", deco: []string{"VdW"}}
	}
	return r * Ang2Bohr, nil
}

//covalentRadii returns the covalent radii for all the atoms, in bohr.
func covalentRadii(radii Radii, atoms []string) ([]float64, error) {
	ret := make([]float64, len(atoms))
	for i, v := range atoms {
		r, err := radii.Covalent(v)
		if err != nil {
			return nil, errDecorate(err, "covalentRadii")
		}
		ret[i] = r
	}
	return ret, nil
}
