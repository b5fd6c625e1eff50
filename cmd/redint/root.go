/*
 * root.go, part of redint.
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

package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/rmera/redint"
	"github.com/rmera/redint/chemplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

type detectOptions struct {
	json       bool
	plotPrefix string
	bins       int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "redint",
		Short:         "Redundant internal coordinates for molecular geometries",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (yaml, toml or json)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")
	cmd.AddCommand(newDetectCommand(opts))
	return cmd
}

func newDetectCommand(ropts *rootOptions) *cobra.Command {
	opts := &detectOptions{}
	d := redint.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "detect FILE",
		Short: "Detect bonds, bends, linear bends and dihedrals for every frame in an XYZ file",
		Long: "Detect bonds, bends, linear bends and dihedrals for every frame in an XYZ file.\n" +
			"Coordinates are read in Angstrom. Files ending in .gz or .zst are decompressed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, ropts, opts, args[0])
		},
	}
	f := cmd.Flags()
	f.Float64("factor", d.Factor(), "scaling factor for the sum of covalent radii")
	f.Float64("min-deg", d.MinDeg(), "smallest bend angle accepted, in degrees")
	f.Float64("max-deg", d.MaxDeg(), "largest bend angle accepted, in degrees")
	f.Float64("lb-min-deg", d.LBMinDeg(), "smallest angle for linear bends, in degrees (negative disables them)")
	f.Int("lb-max-bonds", d.LBMaxBonds(), "maximum number of bonds for the central atom of a linear bend")
	f.Float64("min-weight", d.MinWeight(), "smallest primitive weight accepted (negative disables the filter)")
	f.Bool("complement", d.MakeComplement(), "add the complement of each linear bend")
	f.Int("cpus", runtime.NumCPU(), "number of CPUs: geometries are processed in parallel, or the distance matrix when there is only one")
	f.BoolVar(&opts.json, "json", false, "print the results as JSON")
	f.StringVar(&opts.plotPrefix, "plot", "", "write histograms of the primitive values for the first frame, as PREFIX_Kind.png")
	f.IntVar(&opts.bins, "bins", 20, "number of bins for the histograms")
	return cmd
}

func runDetect(cmd *cobra.Command, ropts *rootOptions, opts *detectOptions, filename string) error {
	cfg, err := loadConfig(ropts.configPath, cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	O, err := cfg.Options(logger)
	if err != nil {
		return err
	}
	atoms, frames, err := redint.XYZRead(filename)
	if err != nil {
		return err
	}
	logger.Info("Read geometries", zap.String("file", filename), zap.Int("frames", len(frames)), zap.Int("atoms", len(atoms)))
	infos, err := redint.SetupRedundantBatch(cmd.Context(), atoms, frames, O)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(infos); err != nil {
			return err
		}
	} else {
		for i, info := range infos {
			prims := redint.Primitives(info, O.MakeComplement(), logger)
			fmt.Fprintf(out, "Frame %d: %d fragments, %d primitives\n", i, len(info.Fragments), len(prims))
			fmt.Fprint(out, redint.PrimitiveListing(prims))
		}
	}
	if opts.plotPrefix != "" && len(infos) > 0 {
		prims := redint.Primitives(infos[0], O.MakeComplement(), logger)
		names, err := chemplot.SaveHistograms(prims, frames[0], opts.bins, opts.plotPrefix)
		if err != nil {
			return err
		}
		for _, n := range names {
			logger.Info("Wrote histogram", zap.String("file", n))
		}
	}
	return nil
}
