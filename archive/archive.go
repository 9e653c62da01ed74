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

// Package archive lists and extracts disc dumps packed in archives.
// It supports ZIP, 7z, RAR and single-file XZ inputs, presenting each as a
// flat file listing so the conversion pipeline can treat archived and bare
// dumps the same way.
package archive

import (
	"io"
	"path/filepath"
	"strings"
)

// FileInfo describes one file within an archive.
type FileInfo struct {
	Name string // path within the archive
	Size int64  // uncompressed size; 0 when the container does not record it
}

// Archive provides read access to files within an archive.
type Archive interface {
	// List returns all files in the archive, directories excluded.
	List() ([]FileInfo, error)

	// Open opens a file within the archive for sequential reading.
	// Returns the reader and the uncompressed size when known.
	Open(internalPath string) (io.ReadCloser, int64, error)

	// Close releases the archive.
	Close() error
}

// Open opens an archive based on its file extension.
func Open(path string) (Archive, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".zip":
		return OpenZIP(path)
	case ".7z":
		return OpenSevenZip(path)
	case ".rar":
		return OpenRAR(path)
	case ".xz":
		return OpenXZ(path)
	default:
		return nil, FormatError{Format: ext}
	}
}

// IsArchiveExtension reports whether ext names a supported archive format.
func IsArchiveExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".zip", ".7z", ".rar", ".xz":
		return true
	default:
		return false
	}
}
