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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cuebin "github.com/cuetools/go-cuebin"
	"github.com/cuetools/go-cuebin/dat"
	"github.com/cuetools/go-cuebin/match"
)

var verifyDatPath string

// verifyCmd identifies a dump against a DAT catalogue.
var verifyCmd = &cobra.Command{
	Use:   "verify --dat [datfile] [files...]",
	Short: "Verify dump files against a DAT catalogue",
	Long: `Verify a group of dump files against a DAT catalogue.

The files form one logical disc: list every track file of a dump, or a single
image. A single .chd input verifies by the raw SHA1 its header records. The
catalogue may be a plain or gzip-compressed Logiqx XML datafile.

Exit status is 0 for a match, 1 otherwise.

Examples:
  cuebin verify --dat psx.dat "Game (Track 1).bin" "Game (Track 2).bin"
  cuebin verify --dat psx.dat.gz "Game.chd"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fsys := afero.NewOsFs()
		cat, err := dat.LoadFile(fsys, verifyDatPath)
		if err != nil {
			return fmt.Errorf("load catalogue: %w", err)
		}

		var verdict match.Verdict
		if len(args) == 1 && strings.EqualFold(filepath.Ext(args[0]), ".chd") {
			verdict, err = cuebin.VerifyCHD(fsys, args[0], cat, cfg)
		} else {
			verdict, err = cuebin.Verify(fsys, args, cat, cfg)
		}
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}

		switch verdict.Status {
		case match.StatusNone:
			fmt.Println("no match")
			return errors.New("no catalogue entry matched")
		case match.StatusMatch, match.StatusPartial:
			fmt.Printf("%s: %s (%s)\n", verdict.Status, verdict.Game.Name, verdict.Reason)
		}

		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDatPath, "dat", "",
		"path to the DAT catalogue (required)")
	_ = verifyCmd.MarkFlagRequired("dat")
	rootCmd.AddCommand(verifyCmd)
}
