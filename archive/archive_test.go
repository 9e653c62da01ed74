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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cuetools/go-cuebin/archive"
	"github.com/klauspost/compress/zip"
	"github.com/ulikunitz/xz"
)

// createTestZIP creates a ZIP archive in tmpDir with the given files.
//
//nolint:gosec // Test helper creates files in test temp directory
func createTestZIP(t *testing.T, tmpDir, name string, files map[string][]byte) string {
	t.Helper()

	zipPath := filepath.Join(tmpDir, name)
	file, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("create zip file: %v", err)
	}
	defer func() { _ = file.Close() }()

	writer := zip.NewWriter(file)

	for filename, content := range files {
		fileWriter, err := writer.Create(filename)
		if err != nil {
			t.Fatalf("create file in zip: %v", err)
		}
		if _, err := fileWriter.Write(content); err != nil {
			t.Fatalf("write file content: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}

	return zipPath
}

// createTestXZ compresses content into tmpDir/name.
//
//nolint:gosec // Test helper creates files in test temp directory
func createTestXZ(t *testing.T, tmpDir, name string, content []byte) string {
	t.Helper()

	xzPath := filepath.Join(tmpDir, name)
	file, err := os.Create(xzPath)
	if err != nil {
		t.Fatalf("create xz file: %v", err)
	}
	defer func() { _ = file.Close() }()

	writer, err := xz.NewWriter(file)
	if err != nil {
		t.Fatalf("create xz writer: %v", err)
	}
	if _, err := writer.Write(content); err != nil {
		t.Fatalf("write xz content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close xz writer: %v", err)
	}

	return xzPath
}

func TestOpen(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	zipPath := createTestZIP(t, tmpDir, "test.zip", map[string][]byte{
		"test.bin": []byte("test content"),
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "ZIP archive",
			path:    zipPath,
			wantErr: false,
		},
		{
			name:    "non-existent file",
			path:    filepath.Join(tmpDir, "nonexistent.zip"),
			wantErr: true,
		},
		{
			name:    "unsupported format",
			path:    filepath.Join(tmpDir, "test.tar"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			arc, err := archive.Open(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = arc.Close()
		})
	}
}

func TestIsArchiveExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want bool
	}{
		{".zip", true},
		{".ZIP", true},
		{".7z", true},
		{".rar", true},
		{".xz", true},
		{".tar", false},
		{".bin", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			if got := archive.IsArchiveExtension(tt.ext); got != tt.want {
				t.Errorf("IsArchiveExtension(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestZIPListAndOpen(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	content := []byte("raw sector data")
	zipPath := createTestZIP(t, tmpDir, "dump.zip", map[string][]byte{
		"Game (Track 1).bin": content,
		"Game.cue":           []byte("FILE \"Game (Track 1).bin\" BINARY\n"),
	})

	arc, err := archive.Open(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = arc.Close() }()

	files, err := arc.List()
	if err != nil {
		t.Fatalf("list archive: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}

	reader, size, err := arc.Open("Game (Track 1).bin")
	if err != nil {
		t.Fatalf("open file in archive: %v", err)
	}
	defer func() { _ = reader.Close() }()

	if size != int64(len(content)) {
		t.Errorf("got size %d, want %d", size, len(content))
	}

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read file content: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("got content %q, want %q", got, content)
	}

	// Entry lookup is case-insensitive.
	insensitive, _, err := arc.Open("game (track 1).BIN")
	if err != nil {
		t.Fatalf("case-insensitive open: %v", err)
	}
	_ = insensitive.Close()
}

func TestZIPFileNotFound(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	zipPath := createTestZIP(t, tmpDir, "dump.zip", map[string][]byte{
		"Game.cue": []byte("cue"),
	})

	arc, err := archive.Open(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = arc.Close() }()

	_, _, err = arc.Open("missing.bin")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var notFound archive.FileNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected FileNotFoundError, got %T", err)
	}
}

func TestXZRoundTrip(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	content := []byte("compressed disc image payload")
	xzPath := createTestXZ(t, tmpDir, "Game.iso.xz", content)

	arc, err := archive.Open(xzPath)
	if err != nil {
		t.Fatalf("open xz archive: %v", err)
	}
	defer func() { _ = arc.Close() }()

	files, err := arc.List()
	if err != nil {
		t.Fatalf("list xz archive: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Name != "Game.iso" {
		t.Errorf("got entry name %q, want %q", files[0].Name, "Game.iso")
	}

	reader, _, err := arc.Open("Game.iso")
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer func() { _ = reader.Close() }()

	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("got content %q, want %q", got, content)
	}

	_, _, err = arc.Open("other.iso")
	var notFound archive.FileNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected FileNotFoundError for wrong entry, got %v", err)
	}
}
