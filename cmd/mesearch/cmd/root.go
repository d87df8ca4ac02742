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

// Package cmd provides the commands of the mesearch CLI.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// rootOptions holds the state shared by all subcommands.
type rootOptions struct {
	debug  bool
	logger *slog.Logger
}

// NewRootCmd creates the root command of the mesearch CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mesearch",
		Short: "Inspect motion estimation search patterns",
		Long: `mesearch generates the candidate points of the rood, raster and
rotating hexagon search patterns used in block motion estimation.

Patterns can be given on the command line or as a YAML schedule of
search stages.`,
		Version:       Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
	}

	cmd.SetVersionTemplate("mesearch version {{.Version}}\n")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newPointsCmd(opts))
	cmd.AddCommand(newPlotCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// log returns the configured logger, or a logger which discards
// everything if the root command did not run.
func (o *rootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.logger
}
