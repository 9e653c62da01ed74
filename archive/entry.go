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
	"path/filepath"
	"strings"
)

// entry adapts one archive member for the shared list and open paths. The
// random-access formats (zip, 7z) enumerate into entries; the sequential
// formats (rar, xz) keep their own scan logic.
type entry struct {
	open func() (io.ReadCloser, error)
	name string
	size int64
}

// listEntries flattens entries into the listing the Archive interface hands
// out.
func listEntries(entries []entry) []FileInfo {
	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		files = append(files, FileInfo{Name: e.name, Size: e.size})
	}
	return files
}

// openEntry finds internalPath among entries, matching case-insensitively
// on slash-normalized names.
func openEntry(archivePath, internalPath string, entries []entry) (io.ReadCloser, int64, error) {
	internalPath = filepath.ToSlash(internalPath)
	for _, e := range entries {
		if !strings.EqualFold(e.name, internalPath) {
			continue
		}
		rc, err := e.open()
		if err != nil {
			return nil, 0, fmt.Errorf("open archive entry: %w", err)
		}
		return rc, e.size, nil
	}
	return nil, 0, FileNotFoundError{Archive: archivePath, InternalPath: internalPath}
}
