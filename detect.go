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

package cuebin

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/cuetools/go-cuebin/archive"
)

// Kind classifies a pipeline input.
type Kind string

// Input kinds the pipeline handles.
const (
	KindCue     Kind = "cue"
	KindCHD     Kind = "chd"
	KindImage   Kind = "image"
	KindArchive Kind = "archive"
)

// UnknownInputError indicates a path whose format could not be determined.
type UnknownInputError struct {
	Path string
}

func (e UnknownInputError) Error() string {
	return fmt.Sprintf("unrecognized input format: %s", e.Path)
}

// Extension to kind mapping for unambiguous extensions.
var extToKind = map[string]Kind{
	".cue": KindCue,
	".chd": KindCHD,
	".bin": KindImage,
	".iso": KindImage,
	".img": KindImage,
}

// Magic prefixes for header-based detection.
var (
	magicCHD      = []byte("MComprHD")
	magicZIP      = []byte("PK\x03\x04")
	magicSevenZip = []byte("7z\xbc\xaf\x27\x1c")
	magicRAR      = []byte("Rar!\x1a\x07")
	magicXZ       = []byte("\xfd7zXZ\x00")
)

// DetectKindFromExtension classifies a path by extension alone, without
// touching the filesystem.
func DetectKindFromExtension(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if kind, ok := extToKind[ext]; ok {
		return kind, nil
	}
	if archive.IsArchiveExtension(ext) {
		return KindArchive, nil
	}

	return "", UnknownInputError{Path: path}
}

// DetectKind classifies a path by extension, falling back to header magic
// when the extension is unknown. CHD containers are recognized by magic even
// under a wrong extension since their header is self-describing.
func DetectKind(fsys afero.Fs, path string) (Kind, error) {
	if kind, err := DetectKindFromExtension(path); err == nil {
		return kind, nil
	}

	file, err := fsys.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	header := make([]byte, 8)
	n, _ := file.Read(header)
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, magicCHD):
		return KindCHD, nil
	case bytes.HasPrefix(header, magicZIP),
		bytes.HasPrefix(header, magicSevenZip),
		bytes.HasPrefix(header, magicRAR),
		bytes.HasPrefix(header, magicXZ):
		return KindArchive, nil
	}

	return "", UnknownInputError{Path: path}
}
