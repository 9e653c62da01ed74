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

package cuebin_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	cuebin "github.com/cuetools/go-cuebin"
	"github.com/cuetools/go-cuebin/cue"
)

const sectorBytes = 2352

// writeDump populates fsys with a cue sheet and zero-filled bin files sized
// in whole sectors.
func writeDump(t *testing.T, fsys afero.Fs, dir, cueName, cueText string, binSectors map[string]int) string {
	t.Helper()

	cuePath := filepath.Join(dir, cueName)
	if err := afero.WriteFile(fsys, cuePath, []byte(cueText), 0o644); err != nil {
		t.Fatalf("write cue sheet: %v", err)
	}

	for name, sectors := range binSectors {
		data := make([]byte, sectors*sectorBytes)
		if err := afero.WriteFile(fsys, filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write bin file: %v", err)
		}
	}

	return cuePath
}

func TestMergeFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	cueText := "FILE \"Game (Track 1).bin\" BINARY\n" +
		"  TRACK 01 MODE1/2352\n" +
		"    INDEX 01 00:00:00\n" +
		"FILE \"Game (Track 2).bin\" BINARY\n" +
		"  TRACK 02 AUDIO\n" +
		"    INDEX 01 00:00:00\n"
	cuePath := writeDump(t, fsys, "/dumps", "Game.cue", cueText, map[string]int{
		"Game (Track 1).bin": 10,
		"Game (Track 2).bin": 5,
	})

	plan, err := cuebin.MergeFile(fsys, cuePath, cuebin.DefaultConfig())
	if err != nil {
		t.Fatalf("merge file: %v", err)
	}

	if plan.BinName != "Game.bin" {
		t.Errorf("got bin name %q, want %q", plan.BinName, "Game.bin")
	}
	if len(plan.Files) != 2 {
		t.Fatalf("got %d file ranges, want 2", len(plan.Files))
	}
	if plan.Files[1].Offset != 0 || plan.Files[1].Length != 5*sectorBytes {
		t.Errorf("unexpected second range: %+v", plan.Files[1])
	}

	// The second track's index shifts by the first file's 10 sectors.
	if !strings.Contains(plan.CueText, "INDEX 01 00:00:10") {
		t.Errorf("merged cue missing shifted index:\n%s", plan.CueText)
	}
}

func TestSplitFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	cueText := "FILE \"Game.bin\" BINARY\n" +
		"  TRACK 01 MODE1/2352\n" +
		"    INDEX 01 00:00:00\n" +
		"  TRACK 02 AUDIO\n" +
		"    INDEX 01 00:00:10\n"
	cuePath := writeDump(t, fsys, "/dumps", "Game.cue", cueText, map[string]int{
		"Game.bin": 15,
	})

	plan, err := cuebin.SplitFile(fsys, cuePath, cuebin.DefaultConfig())
	if err != nil {
		t.Fatalf("split file: %v", err)
	}

	if len(plan.Tracks) != 2 {
		t.Fatalf("got %d track ranges, want 2", len(plan.Tracks))
	}
	if plan.Tracks[0].Offset != 0 || plan.Tracks[0].Length != 10*sectorBytes {
		t.Errorf("unexpected track 1 range: %+v", plan.Tracks[0])
	}
	if plan.Tracks[1].Offset != 10*sectorBytes || plan.Tracks[1].Length != 5*sectorBytes {
		t.Errorf("unexpected track 2 range: %+v", plan.Tracks[1])
	}

	if !strings.Contains(plan.CueText, "FILE \"Game (Track 2).bin\" BINARY") {
		t.Errorf("split cue missing per-track file:\n%s", plan.CueText)
	}
}

func TestSplitFileRejectsMultiFileSheet(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	cueText := "FILE \"a.bin\" BINARY\n" +
		"  TRACK 01 AUDIO\n" +
		"    INDEX 01 00:00:00\n" +
		"FILE \"b.bin\" BINARY\n" +
		"  TRACK 02 AUDIO\n" +
		"    INDEX 01 00:00:00\n"
	cuePath := writeDump(t, fsys, "/dumps", "Game.cue", cueText, map[string]int{
		"a.bin": 2,
		"b.bin": 2,
	})

	_, err := cuebin.SplitFile(fsys, cuePath, cuebin.DefaultConfig())
	if err == nil {
		t.Fatal("expected error for multi-file sheet")
	}

	var opErr cue.InvalidOperationError
	if !errors.As(err, &opErr) {
		t.Errorf("expected InvalidOperationError, got %T", err)
	}
}

func TestMergeFileMissingCue(t *testing.T) {
	t.Parallel()

	_, err := cuebin.MergeFile(afero.NewMemMapFs(), "/dumps/absent.cue", cuebin.DefaultConfig())
	if err == nil {
		t.Error("expected error for missing cue sheet")
	}
}

func TestMergeFileMissingBin(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	cueText := "FILE \"Game.bin\" BINARY\n" +
		"  TRACK 01 MODE1/2352\n" +
		"    INDEX 01 00:00:00\n"
	cuePath := writeDump(t, fsys, "/dumps", "Game.cue", cueText, nil)

	_, err := cuebin.MergeFile(fsys, cuePath, cuebin.DefaultConfig())
	if err == nil {
		t.Error("expected error when a bin file is missing")
	}
}
