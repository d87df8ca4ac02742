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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type stepOutput struct {
	Name   string   `json:"name"`
	Points [][2]int `json:"points"`
}

// newPointsCmd creates the points command.
func newPointsCmd(opts *rootOptions) *cobra.Command {
	var flags patternFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the points of a search pattern",
		Long: `Print the candidate points of a search pattern, or of every stage of
a schedule, in the order a search visits them.`,
		Example: `  mesearch points --pattern hexagon --exponent 3 --window=-10,10,10,-10
  mesearch points --config schedule.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.schedule()
			if err != nil {
				return err
			}
			logger := opts.log()

			var out []stepOutput
			for _, step := range cfg.Steps() {
				p := step.Pattern
				p.Produce()
				logger.Debug("produced points", "stage", step.Name, "points", p.NumPoints())

				res := stepOutput{Name: step.Name, Points: make([][2]int, 0, p.NumPoints())}
				for pt := range p.All() {
					res.Points = append(res.Points, [2]int{pt.X, pt.Y})
				}
				out = append(out, res)
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			for _, res := range out {
				if _, err := fmt.Fprintf(w, "# %s: %d points\n", res.Name, len(res.Points)); err != nil {
					return err
				}
				for _, pt := range res.Points {
					if _, err := fmt.Fprintf(w, "%d %d\n", pt[0], pt[1]); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output points as JSON")

	return cmd
}
