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

// Package chd reads CHD (Compressed Hunks of Data) disc image headers and
// CD track metadata. It does not decompress hunk data; it exposes enough of
// the container to reconstruct a cue sheet and to verify the embedded SHA1
// checksums against a catalogue.
package chd

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/cuetools/go-cuebin/cue"
)

// Image is a parsed CHD container.
type Image struct {
	closer io.Closer
	header *Header
	tracks []Track
}

// Open opens and parses a CHD file from the filesystem.
func Open(fsys afero.Fs, path string) (*Image, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CHD file: %w", err)
	}

	img, err := Parse(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	img.closer = file

	return img, nil
}

// Parse reads the CHD header and track metadata from reader.
func Parse(reader io.ReaderAt) (*Image, error) {
	header, err := parseHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	img := &Image{header: header}

	if header.MetaOffset > 0 {
		entries, err := readMetadata(reader, header.MetaOffset)
		if err != nil {
			return nil, fmt.Errorf("read metadata: %w", err)
		}
		tracks, err := tracksFromMetadata(entries)
		if err != nil {
			return nil, err
		}
		img.tracks = tracks
	}

	return img, nil
}

// Close releases the underlying file when the image was opened with Open.
func (img *Image) Close() error {
	if img.closer == nil {
		return nil
	}
	return img.closer.Close() //nolint:wrapcheck // close passthrough
}

// Header returns the parsed CHD header.
func (img *Image) Header() *Header {
	return img.header
}

// Tracks returns the CD tracks described by the metadata chain.
func (img *Image) Tracks() []Track {
	return img.tracks
}

// Size returns the total uncompressed size of the image data.
func (img *Image) Size() int64 {
	return int64(img.header.LogicalBytes) //nolint:gosec // Bounded by file size
}

// RawSHA1 returns the hex SHA1 of the raw image data, the checksum that
// catalogues record for the uncompressed dump.
func (img *Image) RawSHA1() string {
	return hex.EncodeToString(img.header.RawSHA1[:])
}

// SHA1 returns the hex SHA1 over raw data plus metadata.
func (img *Image) SHA1() string {
	return hex.EncodeToString(img.header.SHA1[:])
}

// CueSheet reconstructs a cue sheet for the image as a single merged bin
// named after basename. Tracks with a pregap get an INDEX 00 at the track
// start and INDEX 01 after the pregap.
func (img *Image) CueSheet(basename string) (string, error) {
	if len(img.tracks) == 0 {
		return "", ErrNoTracks
	}

	file := cue.BinFile{Path: basename + ".bin"}
	for _, track := range img.tracks {
		cueTrack := cue.Track{
			Number: uint(track.Number), //nolint:gosec // Track numbers are small positives
			Type:   track.CueType(),
		}

		start := uint64(track.StartFrame) //nolint:gosec // Frame counts are non-negative
		if track.Pregap > 0 {
			cueTrack.Indexes = append(cueTrack.Indexes, cue.TrackIndex{
				ID:      0,
				Sectors: start,
				Stamp:   cue.SectorsToStamp(start),
			})
			start += uint64(track.Pregap) //nolint:gosec // Pregap checked positive
		}
		cueTrack.Indexes = append(cueTrack.Indexes, cue.TrackIndex{
			ID:      1,
			Sectors: start,
			Stamp:   cue.SectorsToStamp(start),
		})

		file.Tracks = append(file.Tracks, cueTrack)
	}

	return cue.GenerateMerged([]cue.BinFile{file}, basename), nil
}
