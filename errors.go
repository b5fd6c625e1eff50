/*
 * errors.go, part of redint.
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
	"fmt"
	"strings"
)

//ConfigError signals structurally invalid input: mismatched shapes,
//out-of-range indexes or impossible options. These are always fatal.
type ConfigError struct {
	msg  string
	deco []string
}

func newConfigError(caller string, format string, a ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("redint: configuration error: %s (%s)", err.msg, strings.Join(err.deco, " <- "))
}

//Decorate adds the dec string to the decoration slice and returns it.
func (err *ConfigError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//LookupError signals that some element data (covalent or van der Waals radius)
//is not available for a symbol.
type LookupError struct {
	Symbol string
	Table  string //"covalent" or "vdw"
	deco   []string
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("redint: no %s radius for element %q (%s)", err.Table, err.Symbol, strings.Join(err.deco, " <- "))
}

//Decorate adds the dec string to the decoration slice and returns it.
func (err *LookupError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate decorates the error with the caller's name before returning it,
//if the error implements Error. Other errors are wrapped.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return fmt.Errorf("%s: %w", caller, err)
}

//FileError is returned when a geometry file can't be read or parsed.
type FileError struct {
	msg      string
	filename string
	deco     []string
}

func newFileError(filename, caller, format string, a ...interface{}) *FileError {
	return &FileError{msg: fmt.Sprintf(format, a...), filename: filename, deco: []string{caller}}
}

func (err *FileError) Error() string {
	return fmt.Sprintf("redint: %s: %s (%s)", err.filename, err.msg, strings.Join(err.deco, " <- "))
}

//FileName returns the name of the file that caused the error.
func (err *FileError) FileName() string { return err.filename }

//Decorate adds the dec string to the decoration slice and returns it.
func (err *FileError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
