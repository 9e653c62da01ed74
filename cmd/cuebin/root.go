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
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cuebin "github.com/cuetools/go-cuebin"
)

var configPath string

// rootCmd is the base command when cuebin is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "cuebin",
	Short: "Convert and verify optical disc dump track layouts",
	Long: `cuebin works with cue/bin disc dumps: it plans conversions between
merged (single bin) and split (one bin per track) layouts, reads CHD
containers, and verifies dumps against DAT catalogues.

Examples:
  cuebin merge "Game.cue"
  cuebin split -o split.cue "Game.cue"
  cuebin verify --dat psx.dat "Game (Track 1).bin" "Game (Track 2).bin"
  cuebin info "Game.chd"

Use 'cuebin [command] --help' for more information about a command.`,
	SilenceUsage: true,
}

// execute runs the root command, exiting non-zero on error.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configured (or default) YAML config file.
func loadConfig() (cuebin.Config, error) {
	return cuebin.LoadConfig(afero.NewOsFs(), configPath)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "cuebin.yaml",
		"path to the YAML config file (missing file uses defaults)")
}
