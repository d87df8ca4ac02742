// seehuhn.de/go/mesearch - motion estimation search patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mesearch/internal/config"
)

// patternFlags describes a single search stage on the command line, or
// names a schedule file.
type patternFlags struct {
	configPath  string
	pattern     string
	window      string
	center      string
	stride      int
	exponent    int
	maxExponent int
}

func (f *patternFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML schedule of search stages (overrides the pattern flags)")
	fl.StringVarP(&f.pattern, "pattern", "p", config.PatternHexagon, "Pattern kind: rood, raster or hexagon")
	fl.StringVarP(&f.window, "window", "w", "", "Search window as top,right,bottom,left (default -16,16,16,-16)")
	fl.StringVar(&f.center, "center", "0,0", "Pattern center as x,y")
	fl.IntVar(&f.stride, "stride", 1, "Grid spacing of the raster pattern")
	fl.IntVarP(&f.exponent, "exponent", "s", 2, "Step exponent of the hexagon pattern")
	fl.IntVar(&f.maxExponent, "max-exponent", -1, "Repeat the hexagon for all exponents up to this value")
}

// schedule returns the validated schedule described by the flags.
func (f *patternFlags) schedule() (*config.Config, error) {
	if f.configPath != "" {
		return config.Load(f.configPath)
	}

	cfg := &config.Config{Window: config.DefaultWindow}
	if f.window != "" {
		v, err := parseInts(f.window, 4)
		if err != nil {
			return nil, fmt.Errorf("invalid --window: %w", err)
		}
		cfg.Window = config.Window{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
	}

	stage := config.Stage{
		Name:     f.pattern,
		Pattern:  f.pattern,
		Stride:   f.stride,
		Exponent: f.exponent,
	}
	if f.pattern != config.PatternRaster {
		c, err := parseInts(f.center, 2)
		if err != nil {
			return nil, fmt.Errorf("invalid --center: %w", err)
		}
		stage.Center = c
	}
	if f.maxExponent >= 0 {
		stage.MaxExponent = &f.maxExponent
	}
	cfg.Stages = []config.Stage{stage}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var errWrongCount = errors.New("wrong number of values")

// parseInts parses a comma-separated list of exactly n integers.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: expected %d, got %d", errWrongCount, n, len(parts))
	}
	res := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
