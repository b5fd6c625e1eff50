/*
 * files.go, part of redint.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/redint/v3"
)

//XYZRead reads the XYZ file xyzname, which can contain several frames.
//Files ending in .gz or .zst are decompressed on the fly.
//The coordinates in the file are in Angstrom, and are returned in bohr.
func XYZRead(xyzname string) ([]string, []*v3.Matrix, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, nil, newFileError(xyzname, "XYZRead", "can't open file: %s", err.Error())
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch lower := strings.ToLower(xyzname); {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, newFileError(xyzname, "XYZRead", "can't open gzip stream: %s", err.Error())
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(lower, ".zst"):
		zs, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, newFileError(xyzname, "XYZRead", "can't open zstd stream: %s", err.Error())
		}
		defer zs.Close()
		r = zs
	}
	atoms, frames, err := XYZReadFrom(r, xyzname)
	if err != nil {
		return nil, nil, errDecorate(err, "XYZRead")
	}
	return atoms, frames, nil
}

//XYZReadFrom reads one or more XYZ frames from r. name is only used in error messages.
//All frames must contain the same atoms, in the same order.
//The coordinates in r are in Angstrom, and are returned in bohr.
func XYZReadFrom(r io.Reader, name string) ([]string, []*v3.Matrix, error) {
	xyz := bufio.NewScanner(r)
	lineno := 0
	next := func() (string, bool) {
		ok := xyz.Scan()
		lineno++
		return xyz.Text(), ok
	}
	var atoms []string
	var frames []*v3.Matrix
	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue //trailing empty lines
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || natoms < 0 {
			return nil, nil, newFileError(name, "XYZReadFrom", "line %d: expected the number of atoms, got %q", lineno, line)
		}
		if atoms != nil && natoms != len(atoms) {
			return nil, nil, newFileError(name, "XYZReadFrom", "frame %d has %d atoms, previous frames have %d", len(frames), natoms, len(atoms))
		}
		if _, ok := next(); !ok { //comment line
			return nil, nil, newFileError(name, "XYZReadFrom", "frame %d is truncated", len(frames))
		}
		fatoms := make([]string, natoms)
		m := v3.Zeros(natoms)
		for i := 0; i < natoms; i++ {
			line, ok := next()
			if !ok {
				return nil, nil, newFileError(name, "XYZReadFrom", "frame %d is truncated", len(frames))
			}
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, nil, newFileError(name, "XYZReadFrom", "line %d is ill formed", lineno)
			}
			fatoms[i] = CanonicalSymbol(fields[0])
			for j := 0; j < 3; j++ {
				c, err := strconv.ParseFloat(fields[j+1], 64)
				if err != nil {
					return nil, nil, newFileError(name, "XYZReadFrom", "line %d: can't parse coordinate %q", lineno, fields[j+1])
				}
				m.Set(i, j, c*Ang2Bohr)
			}
		}
		if atoms == nil {
			atoms = fatoms
		} else {
			for i, v := range fatoms {
				if v != atoms[i] {
					return nil, nil, newFileError(name, "XYZReadFrom", "atom %d is %s in frame %d but %s in the first frame", i, v, len(frames), atoms[i])
				}
			}
		}
		frames = append(frames, m)
	}
	if err := xyz.Err(); err != nil {
		return nil, nil, newFileError(name, "XYZReadFrom", "reading failed: %s", err.Error())
	}
	if len(frames) == 0 {
		return nil, nil, newFileError(name, "XYZReadFrom", "no frames found")
	}
	return atoms, frames, nil
}
