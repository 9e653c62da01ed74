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

package chd

import "errors"

// Allocation limits to prevent runaway reads from malformed CHD files.
const (
	// MaxMetadataLen is the maximum metadata entry size (16MB, matches the
	// format's 24-bit length field).
	MaxMetadataLen = 16 * 1024 * 1024

	// MaxMetadataEntries caps the metadata chain length.
	MaxMetadataEntries = 1000

	// MaxTracks caps the track count from binary CD metadata.
	MaxTracks = 200
)

// Common errors for CHD parsing.
var (
	// ErrInvalidMagic indicates the file does not start with "MComprHD".
	ErrInvalidMagic = errors.New("invalid CHD magic: expected MComprHD")

	// ErrInvalidHeader indicates the header structure is invalid.
	ErrInvalidHeader = errors.New("invalid CHD header")

	// ErrUnsupportedVersion indicates a CHD version other than 3, 4 or 5.
	ErrUnsupportedVersion = errors.New("unsupported CHD version")

	// ErrInvalidMetadata indicates a malformed metadata entry or chain.
	ErrInvalidMetadata = errors.New("invalid metadata format")

	// ErrNoTracks indicates no CD track metadata was found.
	ErrNoTracks = errors.New("no track metadata found")
)
