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

package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// XZArchive presents a single xz-compressed file as a one-entry archive.
// The entry is named after the archive with the .xz suffix dropped; the xz
// container does not record the uncompressed size, so List reports 0.
type XZArchive struct {
	file *os.File
	path string
}

// OpenXZ opens an xz-compressed file for reading.
func OpenXZ(path string) (*XZArchive, error) {
	file, err := os.Open(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("open xz file: %w", err)
	}

	return &XZArchive{file: file, path: path}, nil
}

// entryName is the inner filename: the archive basename minus ".xz".
func (xa *XZArchive) entryName() string {
	return strings.TrimSuffix(filepath.Base(xa.path), filepath.Ext(xa.path))
}

// List returns the single decompressed entry.
func (xa *XZArchive) List() ([]FileInfo, error) {
	return []FileInfo{{Name: xa.entryName()}}, nil
}

// Open opens the decompressed stream. Only the single entry exists.
func (xa *XZArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	if !strings.EqualFold(filepath.ToSlash(internalPath), xa.entryName()) {
		return nil, 0, FileNotFoundError{Archive: xa.path, InternalPath: internalPath}
	}

	if _, err := xa.file.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("seek xz file: %w", err)
	}
	reader, err := xz.NewReader(xa.file)
	if err != nil {
		return nil, 0, fmt.Errorf("create xz reader: %w", err)
	}

	return io.NopCloser(reader), 0, nil
}

// Close closes the underlying file.
func (xa *XZArchive) Close() error {
	return xa.file.Close() //nolint:wrapcheck // close passthrough
}
