// Copyright (c) 2026 The go-cuebin Authors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-cuebin.
//
// go-cuebin is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-cuebin is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-cuebin.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cuebin "github.com/cuetools/go-cuebin"
)

var splitOutput string

// splitCmd plans cutting a single-bin dump into one bin per track.
var splitCmd = &cobra.Command{
	Use:   "split [cue_sheet]",
	Short: "Plan splitting a merged dump into per-track bins",
	Long: `Plan splitting the single-bin dump described by a cue sheet into one
bin per track.

The rewritten cue sheet goes to stdout or the -o file, and each track's byte
range within the source bin prints to stderr. A zero length on the final
track means the source size was unknown and the track runs to end of stream.

Example:
  cuebin split "Game.cue"
  cuebin split -o split.cue "Game.cue"`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		plan, err := cuebin.SplitFile(afero.NewOsFs(), args[0], cfg)
		if err != nil {
			return fmt.Errorf("split: %w", err)
		}

		fmt.Fprintf(os.Stderr, "source bin: %s\n", plan.Source)
		for _, tr := range plan.Tracks {
			fmt.Fprintf(os.Stderr, "  track %02d -> %s: offset %d, %d bytes\n",
				tr.Number, tr.Path, tr.Offset, tr.Length)
		}

		return writeCueText(plan.CueText, splitOutput)
	},
}

func init() {
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "",
		"write the split cue sheet to a file instead of stdout")
	rootCmd.AddCommand(splitCmd)
}
