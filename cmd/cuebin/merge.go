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

var mergeOutput string

// mergeCmd plans collapsing a multi-bin dump into a single stream.
var mergeCmd = &cobra.Command{
	Use:   "merge [cue_sheet]",
	Short: "Plan merging a dump's track files into one bin",
	Long: `Plan merging the dump described by a cue sheet into a single bin.

The rewritten cue sheet goes to stdout or the -o file, and the byte ranges to
concatenate print to stderr in stream order. No bin data is copied; the plan
is the output.

Example:
  cuebin merge "Game.cue"
  cuebin merge -o merged.cue "Game.cue"`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		plan, err := cuebin.MergeFile(afero.NewOsFs(), args[0], cfg)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}

		fmt.Fprintf(os.Stderr, "merged bin: %s\n", plan.BinName)
		for _, r := range plan.Files {
			fmt.Fprintf(os.Stderr, "  %s: %d bytes\n", r.Path, r.Length)
		}

		return writeCueText(plan.CueText, mergeOutput)
	},
}

// writeCueText sends generated cue text to stdout or the given file.
func writeCueText(text, output string) error {
	if output == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil { //nolint:gosec // cue sheets are world-readable
		return fmt.Errorf("write cue sheet: %w", err)
	}
	return nil
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "",
		"write the merged cue sheet to a file instead of stdout")
	rootCmd.AddCommand(mergeCmd)
}
