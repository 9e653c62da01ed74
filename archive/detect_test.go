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

package archive_test

import (
	"errors"
	"testing"

	"github.com/cuetools/go-cuebin/archive"
)

func TestIsDiscFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     bool
	}{
		{"game.cue", true},
		{"GAME.CUE", true},
		{"game.chd", true},
		{"game.bin", true},
		{"game.iso", true},
		{"game.img", true},

		{"game.gba", false},
		{"readme.txt", false},
		{"game.zip", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()

			got := archive.IsDiscFile(tt.filename)
			if got != tt.want {
				t.Errorf("IsDiscFile(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectDiscFile_PrefersCueSheet(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	files := map[string][]byte{
		"Game (Track 1).bin": make([]byte, 100),
		"Game (Track 2).bin": make([]byte, 100),
		"Game.cue":           []byte("FILE \"Game (Track 1).bin\" BINARY\n"),
		"readme.txt":         []byte("readme"),
	}
	zipPath := createTestZIP(t, tmpDir, "dump.zip", files)

	arc, err := archive.Open(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = arc.Close() }()

	discPath, err := archive.DetectDiscFile(arc)
	if err != nil {
		t.Fatalf("detect disc file: %v", err)
	}

	if discPath != "Game.cue" {
		t.Errorf("got %q, want %q", discPath, "Game.cue")
	}
}

func TestDetectDiscFile_FallsBackToImage(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	files := map[string][]byte{
		"Game.iso":   make([]byte, 100),
		"readme.txt": []byte("readme"),
	}
	zipPath := createTestZIP(t, tmpDir, "image.zip", files)

	arc, err := archive.Open(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = arc.Close() }()

	discPath, err := archive.DetectDiscFile(arc)
	if err != nil {
		t.Fatalf("detect disc file: %v", err)
	}

	if discPath != "Game.iso" {
		t.Errorf("got %q, want %q", discPath, "Game.iso")
	}
}

func TestDetectDiscFile_NoDiscFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	files := map[string][]byte{
		"readme.txt": []byte("readme"),
		"notes.doc":  []byte("notes"),
	}
	zipPath := createTestZIP(t, tmpDir, "nodiscs.zip", files)

	arc, err := archive.Open(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = arc.Close() }()

	_, err = archive.DetectDiscFile(arc)
	if err == nil {
		t.Error("expected error for archive with no disc files")
	}

	var noDiscsErr archive.NoDiscFilesError
	if !errors.As(err, &noDiscsErr) {
		t.Errorf("expected NoDiscFilesError, got %T", err)
	}
}
