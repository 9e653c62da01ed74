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
	"path/filepath"
	"strings"
)

// discExtensions are file extensions that indicate optical disc dump files.
var discExtensions = map[string]bool{
	".cue": true,
	".chd": true,
	".bin": true,
	".iso": true,
	".img": true,
}

// IsDiscFile checks if a filename has a recognized disc dump extension.
func IsDiscFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return discExtensions[ext]
}

// DetectDiscFile finds the entry most useful for identifying a disc dump
// inside an archive. Cue sheets are preferred since they describe the whole
// dump; CHD containers come next, then raw track or image data.
func DetectDiscFile(arc Archive) (string, error) {
	files, err := arc.List()
	if err != nil {
		return "", fmt.Errorf("list archive files: %w", err)
	}

	byExt := func(ext string) string {
		for _, file := range files {
			if strings.EqualFold(filepath.Ext(file.Name), ext) {
				return file.Name
			}
		}
		return ""
	}

	for _, ext := range []string{".cue", ".chd", ".iso", ".img", ".bin"} {
		if name := byExt(ext); name != "" {
			return name, nil
		}
	}

	return "", NoDiscFilesError{}
}
