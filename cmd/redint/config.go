/*
 * config.go, part of redint.
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
	"fmt"
	"strings"

	"github.com/rmera/redint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "REDINT"

//Config holds the detection parameters, as read from a config file,
//REDINT_* environment variables and command line flags, in increasing
//order of priority.
type Config struct {
	Factor         float64 `mapstructure:"factor"`
	MinDeg         float64 `mapstructure:"min_deg"`
	MaxDeg         float64 `mapstructure:"max_deg"`
	ComplementDeg  float64 `mapstructure:"complement_deg"`
	DihedralMaxDeg float64 `mapstructure:"dihedral_max_deg"`
	LBMinDeg       float64 `mapstructure:"lb_min_deg"` //negative to disable linear bends
	LBMaxBonds     int     `mapstructure:"lb_max_bonds"`
	MinWeight      float64 `mapstructure:"min_weight"` //negative to disable
	MakeComplement bool    `mapstructure:"make_complement"`
	MaxAux         float64 `mapstructure:"max_aux"`
	AuxFactor      float64 `mapstructure:"aux_factor"`
	Cpus           int     `mapstructure:"cpus"`
	DefinePrims    [][]int `mapstructure:"define_prims"`
	LogLevel       string  `mapstructure:"log_level"`
	LogFormat      string  `mapstructure:"log_format"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	d := redint.DefaultOptions()
	v.SetDefault("factor", d.Factor())
	v.SetDefault("min_deg", d.MinDeg())
	v.SetDefault("max_deg", d.MaxDeg())
	v.SetDefault("complement_deg", d.ComplementDeg())
	v.SetDefault("dihedral_max_deg", d.DihedralMaxDeg())
	v.SetDefault("lb_min_deg", d.LBMinDeg())
	v.SetDefault("lb_max_bonds", d.LBMaxBonds())
	v.SetDefault("min_weight", d.MinWeight())
	v.SetDefault("make_complement", d.MakeComplement())
	v.SetDefault("max_aux", d.MaxAux())
	v.SetDefault("aux_factor", d.AuxFactor())
	v.SetDefault("cpus", d.Cpus())
	v.SetDefault("define_prims", [][]int{})
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	return v
}

//flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"factor":       "factor",
	"min-deg":      "min_deg",
	"max-deg":      "max_deg",
	"lb-min-deg":   "lb_min_deg",
	"lb-max-bonds": "lb_max_bonds",
	"min-weight":   "min_weight",
	"complement":   "make_complement",
	"cpus":         "cpus",
	"log-level":    "log_level",
	"log-format":   "log_format",
}

//loadConfig reads the configuration from configPath (if not empty), the environment and
//the flags of cmd that were set.
func loadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}
	if cmd != nil {
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: can't bind flag %s: %w", flag, err)
				}
			}
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

//Options returns the detection options for the configuration, and checks them.
func (C *Config) Options(logger *zap.Logger) (*redint.Options, error) {
	O := redint.DefaultOptions()
	O.Factor(C.Factor)
	O.MinDeg(C.MinDeg)
	O.MaxDeg(C.MaxDeg)
	O.ComplementDeg(C.ComplementDeg)
	O.DihedralMaxDeg(C.DihedralMaxDeg)
	O.LBMinDeg(C.LBMinDeg)
	O.LBMaxBonds(C.LBMaxBonds)
	O.MinWeight(C.MinWeight)
	O.MakeComplement(C.MakeComplement)
	O.MaxAux(C.MaxAux)
	O.AuxFactor(C.AuxFactor)
	O.Cpus(C.Cpus)
	if len(C.DefinePrims) > 0 {
		O.DefinePrims(C.DefinePrims...)
	}
	O.Logger(logger)
	if err := O.Check(); err != nil {
		return nil, err
	}
	return O, nil
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

//newLogger builds a zap logger writing to stderr, so it doesn't mix with the results.
func newLogger(level, format string) (*zap.Logger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if format == "console" {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      format == "console",
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	z, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}
	return z, nil
}
