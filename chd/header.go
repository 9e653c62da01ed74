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

import (
	"encoding/binary"
	"fmt"
	"io"
)

// CHD format magic word.
var chdMagic = [8]byte{'M', 'C', 'o', 'm', 'p', 'r', 'H', 'D'}

// Header sizes for the supported CHD versions.
const (
	headerSizeV3 = 120
	headerSizeV4 = 108
	headerSizeV5 = 124
)

// Header holds the parsed fields of a CHD file header. The layout follows
// the V5 format; V3/V4 files fill the version-specific fields instead.
type Header struct {
	Magic        [8]byte   // "MComprHD"
	HeaderSize   uint32    // header length in bytes
	Version      uint32    // 3, 4 or 5
	Compressors  [4]uint32 // V5 codec tags, zero means uncompressed
	LogicalBytes uint64    // total uncompressed size
	MapOffset    uint64    // offset to the hunk map
	MetaOffset   uint64    // offset to the first metadata entry
	HunkBytes    uint32    // bytes per hunk
	UnitBytes    uint32    // bytes per unit (physical sector size)
	RawSHA1      [20]byte  // SHA1 of the raw data
	SHA1         [20]byte  // SHA1 of raw data plus metadata
	ParentSHA1   [20]byte  // parent SHA1 for delta CHDs

	// V3/V4 only
	Flags       uint32
	Compression uint32
	TotalHunks  uint32
}

// parseHeader reads a CHD header from the start of the reader.
func parseHeader(reader io.ReaderAt) (*Header, error) {
	prefix := make([]byte, 16)
	if _, err := reader.ReadAt(prefix, 0); err != nil {
		return nil, fmt.Errorf("read header prefix: %w", err)
	}

	var header Header
	copy(header.Magic[:], prefix[:8])
	if header.Magic != chdMagic {
		return nil, ErrInvalidMagic
	}

	header.HeaderSize = binary.BigEndian.Uint32(prefix[8:12])
	header.Version = binary.BigEndian.Uint32(prefix[12:16])

	var wantSize uint32
	switch header.Version {
	case 5:
		wantSize = headerSizeV5
	case 4:
		wantSize = headerSizeV4
	case 3:
		wantSize = headerSizeV3
	default:
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, header.Version)
	}
	if header.HeaderSize < wantSize {
		return nil, fmt.Errorf("%w: header size %d too small for V%d",
			ErrInvalidHeader, header.HeaderSize, header.Version)
	}

	// Re-read the whole header so field offsets below match the file layout.
	buf := make([]byte, wantSize)
	if _, err := reader.ReadAt(buf, 0); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	switch header.Version {
	case 5:
		parseHeaderV5(&header, buf)
	case 4:
		parseHeaderV4(&header, buf)
	case 3:
		parseHeaderV3(&header, buf)
	}

	return &header, nil
}

// parseHeaderV5 decodes the 124-byte V5 layout. Offsets are absolute file
// offsets: compressors at 0x10, logical bytes at 0x20, map offset at 0x28,
// meta offset at 0x30, hunk/unit bytes at 0x38/0x3C, then the three SHA1s.
func parseHeaderV5(header *Header, buf []byte) {
	for i := range header.Compressors {
		header.Compressors[i] = binary.BigEndian.Uint32(buf[0x10+4*i : 0x14+4*i])
	}
	header.LogicalBytes = binary.BigEndian.Uint64(buf[0x20:0x28])
	header.MapOffset = binary.BigEndian.Uint64(buf[0x28:0x30])
	header.MetaOffset = binary.BigEndian.Uint64(buf[0x30:0x38])
	header.HunkBytes = binary.BigEndian.Uint32(buf[0x38:0x3C])
	header.UnitBytes = binary.BigEndian.Uint32(buf[0x3C:0x40])
	copy(header.RawSHA1[:], buf[0x40:0x54])
	copy(header.SHA1[:], buf[0x54:0x68])
	copy(header.ParentSHA1[:], buf[0x68:0x7C])
}

// parseHeaderV4 decodes the 108-byte V4 layout: flags at 0x10, compression
// at 0x14, total hunks at 0x18, logical bytes at 0x1C, meta offset at 0x24,
// hunk bytes at 0x2C, then SHA1, parent SHA1 and raw SHA1.
func parseHeaderV4(header *Header, buf []byte) {
	header.Flags = binary.BigEndian.Uint32(buf[0x10:0x14])
	header.Compression = binary.BigEndian.Uint32(buf[0x14:0x18])
	header.TotalHunks = binary.BigEndian.Uint32(buf[0x18:0x1C])
	header.LogicalBytes = binary.BigEndian.Uint64(buf[0x1C:0x24])
	header.MetaOffset = binary.BigEndian.Uint64(buf[0x24:0x2C])
	header.HunkBytes = binary.BigEndian.Uint32(buf[0x2C:0x30])
	copy(header.SHA1[:], buf[0x30:0x44])
	copy(header.ParentSHA1[:], buf[0x44:0x58])
	copy(header.RawSHA1[:], buf[0x58:0x6C])

	// V4 has no unit size field; CD images use 2448-byte physical sectors.
	header.UnitBytes = 2448
	header.MapOffset = uint64(header.HeaderSize)
}

// parseHeaderV3 decodes the 120-byte V3 layout: flags at 0x10, compression
// at 0x14, total hunks at 0x18, logical bytes at 0x1C, meta offset at 0x24,
// MD5 pair skipped, hunk bytes at 0x4C, SHA1 at 0x50, parent SHA1 at 0x64.
func parseHeaderV3(header *Header, buf []byte) {
	header.Flags = binary.BigEndian.Uint32(buf[0x10:0x14])
	header.Compression = binary.BigEndian.Uint32(buf[0x14:0x18])
	header.TotalHunks = binary.BigEndian.Uint32(buf[0x18:0x1C])
	header.LogicalBytes = binary.BigEndian.Uint64(buf[0x1C:0x24])
	header.MetaOffset = binary.BigEndian.Uint64(buf[0x24:0x2C])
	header.HunkBytes = binary.BigEndian.Uint32(buf[0x4C:0x50])
	copy(header.SHA1[:], buf[0x50:0x64])
	copy(header.ParentSHA1[:], buf[0x64:0x78])

	header.UnitBytes = 2448
	header.MapOffset = uint64(header.HeaderSize)
}

// NumHunks returns the total number of hunks in the CHD file.
func (h *Header) NumHunks() uint32 {
	if h.TotalHunks > 0 {
		return h.TotalHunks
	}
	if h.HunkBytes == 0 {
		return 0
	}
	//nolint:gosec // Result bounded by file size for valid CHD files
	return uint32((h.LogicalBytes + uint64(h.HunkBytes) - 1) / uint64(h.HunkBytes))
}

// IsCompressed reports whether the CHD uses compression.
func (h *Header) IsCompressed() bool {
	if h.Version == 5 {
		return h.Compressors[0] != 0
	}
	return h.Compression != 0
}
