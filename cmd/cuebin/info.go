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
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cuebin "github.com/cuetools/go-cuebin"
	"github.com/cuetools/go-cuebin/archive"
	"github.com/cuetools/go-cuebin/chd"
	"github.com/cuetools/go-cuebin/cue"
)

// infoCmd prints what cuebin can tell about an input file.
var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show the geometry and identity data of a dump file",
	Long: `Show what cuebin can read from an input file.

Cue sheets print their track geometry. CHD containers print header fields,
embedded SHA1s, track metadata and the reconstructed cue sheet. Archives
print their file listing.

Examples:
  cuebin info "Game.cue"
  cuebin info "Game.chd"
  cuebin info "Game.zip"`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		fsys := afero.NewOsFs()
		path := args[0]

		kind, err := cuebin.DetectKind(fsys, path)
		if err != nil {
			return fmt.Errorf("detect input: %w", err)
		}

		switch kind {
		case cuebin.KindCue:
			return infoCue(fsys, path)
		case cuebin.KindCHD:
			return infoCHD(fsys, path)
		case cuebin.KindArchive:
			return infoArchive(path)
		case cuebin.KindImage:
			info, err := fsys.Stat(path)
			if err != nil {
				return fmt.Errorf("stat image: %w", err)
			}
			fmt.Printf("raw image: %s, %d bytes\n", path, info.Size())
			return nil
		}

		return nil
	},
}

func infoCue(fsys afero.Fs, path string) error {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read cue sheet: %w", err)
	}

	sheet, err := cue.Parse(cue.DecodeText(raw), filepath.Dir(path), 0)
	if err != nil {
		return fmt.Errorf("parse cue sheet: %w", err)
	}

	fmt.Printf("cue sheet: %s\n", path)
	fmt.Printf("blocksize: %d\n", sheet.Blocksize)
	for _, file := range sheet.Files {
		fmt.Printf("file %q\n", file.Path)
		for _, track := range file.Tracks {
			fmt.Printf("  track %02d %s\n", track.Number, track.Type)
			for _, idx := range track.Indexes {
				fmt.Printf("    index %02d %s (sector %d)\n", idx.ID, idx.Stamp, idx.Sectors)
			}
		}
	}

	return nil
}

func infoCHD(fsys afero.Fs, path string) error {
	img, err := chd.Open(fsys, path)
	if err != nil {
		return fmt.Errorf("open chd: %w", err)
	}
	defer func() { _ = img.Close() }()

	header := img.Header()
	fmt.Printf("chd container: %s\n", path)
	fmt.Printf("version: %d\n", header.Version)
	fmt.Printf("logical bytes: %d\n", header.LogicalBytes)
	fmt.Printf("hunk bytes: %d\n", header.HunkBytes)
	fmt.Printf("hunks: %d\n", header.NumHunks())
	fmt.Printf("unit bytes: %d\n", header.UnitBytes)
	fmt.Printf("raw sha1: %s\n", img.RawSHA1())
	fmt.Printf("sha1: %s\n", img.SHA1())

	for _, track := range img.Tracks() {
		fmt.Printf("track %02d %s: %d frames, pregap %d\n",
			track.Number, track.Type, track.Frames, track.Pregap)
	}

	basename := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sheet, err := img.CueSheet(basename)
	if err != nil {
		fmt.Printf("no cue sheet: %v\n", err)
		return nil
	}
	fmt.Printf("reconstructed cue sheet:\n%s", sheet)

	return nil
}

func infoArchive(path string) error {
	arc, err := archive.Open(path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = arc.Close() }()

	files, err := arc.List()
	if err != nil {
		return fmt.Errorf("list archive: %w", err)
	}

	fmt.Printf("archive: %s, %d files\n", path, len(files))
	for _, file := range files {
		fmt.Printf("  %s (%d bytes)\n", file.Name, file.Size)
	}

	if disc, err := archive.DetectDiscFile(arc); err == nil {
		fmt.Printf("disc file: %s\n", disc)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
