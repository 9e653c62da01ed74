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
	"testing"

	"github.com/spf13/afero"

	cuebin "github.com/cuetools/go-cuebin"
)

func TestDetectKindFromExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    cuebin.Kind
		wantErr bool
	}{
		{path: "game.cue", want: cuebin.KindCue},
		{path: "GAME.CUE", want: cuebin.KindCue},
		{path: "game.chd", want: cuebin.KindCHD},
		{path: "game.bin", want: cuebin.KindImage},
		{path: "game.iso", want: cuebin.KindImage},
		{path: "game.img", want: cuebin.KindImage},
		{path: "game.zip", want: cuebin.KindArchive},
		{path: "game.7z", want: cuebin.KindArchive},
		{path: "game.rar", want: cuebin.KindArchive},
		{path: "game.iso.xz", want: cuebin.KindArchive},
		{path: "readme.txt", wantErr: true},
		{path: "game", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := cuebin.DetectKindFromExtension(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var unknownErr cuebin.UnknownInputError
				if !errors.As(err, &unknownErr) {
					t.Errorf("expected UnknownInputError, got %T", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got kind %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectKindByMagic(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()

	files := map[string][]byte{
		"/dumps/mystery.dump":  append([]byte("MComprHD"), make([]byte, 16)...),
		"/dumps/packed.dump":   {'P', 'K', 0x03, 0x04, 0, 0},
		"/dumps/seven.dump":    {'7', 'z', 0xbc, 0xaf, 0x27, 0x1c},
		"/dumps/rarred.dump":   []byte("Rar!\x1a\x07\x00"),
		"/dumps/squeezed.dump": []byte("\xfd7zXZ\x00\x00"),
		"/dumps/noise.dump":    []byte("not a known header"),
	}
	for path, data := range files {
		if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	tests := []struct {
		path    string
		want    cuebin.Kind
		wantErr bool
	}{
		{path: "/dumps/mystery.dump", want: cuebin.KindCHD},
		{path: "/dumps/packed.dump", want: cuebin.KindArchive},
		{path: "/dumps/seven.dump", want: cuebin.KindArchive},
		{path: "/dumps/rarred.dump", want: cuebin.KindArchive},
		{path: "/dumps/squeezed.dump", want: cuebin.KindArchive},
		{path: "/dumps/noise.dump", wantErr: true},
		{path: "/dumps/missing.dump", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := cuebin.DetectKind(fsys, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got kind %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectKindPrefersExtension(t *testing.T) {
	t.Parallel()

	// Extension wins without any filesystem access.
	got, err := cuebin.DetectKind(afero.NewMemMapFs(), "/nowhere/game.cue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cuebin.KindCue {
		t.Errorf("got kind %q, want %q", got, cuebin.KindCue)
	}
}
