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
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mesearch/diagram"
)

var errUnknownFormat = errors.New("output file must end in .png or .pdf")

// newPlotCmd creates the plot command.
func newPlotCmd(opts *rootOptions) *cobra.Command {
	var flags patternFlags
	var output string
	var stage int
	var scale int

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw a search pattern as PNG or PDF",
		Long: `Draw the search window, the pattern center and the candidate points of
one search stage.  The output format is chosen by the file extension.`,
		Example: `  mesearch plot --pattern hexagon --exponent 4 -o hexagon.pdf
  mesearch plot --config schedule.yaml --stage 2 -o stage2.png`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ext := strings.ToLower(filepath.Ext(output))
			if ext != ".png" && ext != ".pdf" {
				return fmt.Errorf("%w: %q", errUnknownFormat, output)
			}

			cfg, err := flags.schedule()
			if err != nil {
				return err
			}
			steps := cfg.Steps()
			if stage < 0 || stage >= len(steps) {
				return fmt.Errorf("stage %d out of range, schedule has %d steps", stage, len(steps))
			}
			step := steps[stage]
			step.Pattern.Produce()
			scene := diagram.FromPattern(step.Pattern)

			opts.log().Debug("drawing pattern",
				"stage", step.Name,
				"window", scene.Window.String(),
				"points", len(scene.Points),
				"output", output)

			if ext == ".pdf" {
				return diagram.WritePDF(output, scene, float64(scale))
			}
			return writePNG(output, scene, scale)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.png or .pdf)")
	cmd.Flags().IntVar(&stage, "stage", 0, "Index of the schedule step to draw")
	cmd.Flags().IntVar(&scale, "scale", 16, "Output units per pixel of the search window")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func writePNG(fname string, scene *diagram.Scene, scale int) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return diagram.WritePNG(f, scene, scale)
}
