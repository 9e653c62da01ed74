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
	"strconv"
	"strings"
)

// Metadata tag constants (4-byte big-endian ASCII tags).
const (
	// MetaTagCHT2 is the CD track v2 metadata tag ("CHT2").
	MetaTagCHT2 = 0x43485432

	// MetaTagCHTR is the CD track v1 metadata tag ("CHTR").
	MetaTagCHTR = 0x43485452

	// MetaTagCHCD is the binary CD metadata tag ("CHCD").
	MetaTagCHCD = 0x43484344
)

// Track describes one CD track from CHD metadata. Frame counts are in CD
// frames (75 per second), matching cue sheet sector units.
type Track struct {
	Type       string
	SubType    string
	Number     int
	Frames     int
	Pregap     int
	Postgap    int
	StartFrame int
}

// metadataEntry is a raw entry from the CHD metadata chain.
type metadataEntry struct {
	Data []byte
	Next uint64
	Tag  uint32
}

// readMetadata walks the metadata chain starting at offset.
func readMetadata(reader io.ReaderAt, offset uint64) ([]metadataEntry, error) {
	var entries []metadataEntry
	visited := make(map[uint64]bool)

	for offset != 0 {
		if visited[offset] {
			return entries, fmt.Errorf("%w: circular metadata chain at offset %d", ErrInvalidMetadata, offset)
		}
		visited[offset] = true

		if len(entries) >= MaxMetadataEntries {
			return entries, fmt.Errorf("%w: too many metadata entries (%d)", ErrInvalidMetadata, len(entries))
		}

		entry, err := readMetadataEntry(reader, offset)
		if err != nil {
			return entries, fmt.Errorf("read metadata at %d: %w", offset, err)
		}

		entries = append(entries, entry)
		offset = entry.Next
	}

	return entries, nil
}

// readMetadataEntry reads one metadata entry. The on-disk layout is a 4-byte
// tag, 1 flag byte, a 3-byte big-endian length, an 8-byte next offset, then
// the payload.
func readMetadataEntry(reader io.ReaderAt, offset uint64) (metadataEntry, error) {
	headerBuf := make([]byte, 16)
	//nolint:gosec // Offset comes from the metadata chain within the file
	if _, err := reader.ReadAt(headerBuf, int64(offset)); err != nil {
		return metadataEntry{}, fmt.Errorf("read metadata header: %w", err)
	}

	entry := metadataEntry{
		Tag:  binary.BigEndian.Uint32(headerBuf[0:4]),
		Next: binary.BigEndian.Uint64(headerBuf[8:16]),
	}

	length := uint32(headerBuf[5])<<16 | uint32(headerBuf[6])<<8 | uint32(headerBuf[7])
	if length > MaxMetadataLen {
		return metadataEntry{}, fmt.Errorf("%w: metadata entry too large (%d > %d)",
			ErrInvalidMetadata, length, MaxMetadataLen)
	}
	if length > 0 {
		entry.Data = make([]byte, length)
		//nolint:gosec // Offset comes from the metadata chain within the file
		if _, err := reader.ReadAt(entry.Data, int64(offset)+16); err != nil {
			return metadataEntry{}, fmt.Errorf("read metadata data: %w", err)
		}
	}

	return entry, nil
}

// tracksFromMetadata extracts CD track descriptions from the metadata chain
// and assigns cumulative start frames.
func tracksFromMetadata(entries []metadataEntry) ([]Track, error) {
	var tracks []Track

	for _, entry := range entries {
		switch entry.Tag {
		case MetaTagCHT2, MetaTagCHTR:
			track, err := parseTrackText(entry.Data)
			if err != nil {
				return nil, fmt.Errorf("parse track metadata: %w", err)
			}
			tracks = append(tracks, track)

		case MetaTagCHCD:
			parsed, err := parseTrackBinary(entry.Data)
			if err != nil {
				return nil, fmt.Errorf("parse CHCD metadata: %w", err)
			}
			tracks = append(tracks, parsed...)
		}
	}

	startFrame := 0
	for i := range tracks {
		tracks[i].StartFrame = startFrame
		startFrame += tracks[i].Pregap + tracks[i].Frames + tracks[i].Postgap
	}

	return tracks, nil
}

// parseTrackText parses CHT2/CHTR metadata, which is an ASCII string of
// key:value pairs, e.g.
// "TRACK:1 TYPE:MODE2_RAW SUBTYPE:NONE FRAMES:1234 PREGAP:150 POSTGAP:0".
func parseTrackText(data []byte) (Track, error) {
	var track Track

	str := strings.TrimRight(string(data), "\x00 \t\r\n")
	for _, field := range strings.Fields(str) {
		key, value, found := strings.Cut(field, ":")
		if !found {
			continue
		}

		var dst *int
		switch strings.ToUpper(key) {
		case "TRACK":
			dst = &track.Number
		case "TYPE":
			track.Type = value
			continue
		case "SUBTYPE":
			track.SubType = value
			continue
		case "FRAMES":
			dst = &track.Frames
		case "PREGAP":
			dst = &track.Pregap
		case "POSTGAP":
			dst = &track.Postgap
		default:
			continue
		}

		num, err := strconv.Atoi(value)
		if err != nil {
			return track, fmt.Errorf("invalid %s value %q: %w", key, value, err)
		}
		*dst = num
	}

	if track.Number == 0 {
		return track, fmt.Errorf("%w: missing TRACK field", ErrInvalidMetadata)
	}

	return track, nil
}

// parseTrackBinary parses CHCD metadata: a 4-byte track count followed by
// 24-byte entries of type, subtype, data size, sub size, frames and padding.
func parseTrackBinary(data []byte) ([]Track, error) {
	if len(data) < 4 {
		return nil, ErrInvalidMetadata
	}

	numTracks := binary.BigEndian.Uint32(data[0:4])
	if numTracks > MaxTracks {
		return nil, fmt.Errorf("%w: too many tracks (%d > %d)", ErrInvalidMetadata, numTracks, MaxTracks)
	}
	if len(data) < int(4+numTracks*24) {
		return nil, ErrInvalidMetadata
	}

	tracks := make([]Track, numTracks)
	for i := uint32(0); i < numTracks; i++ {
		offset := 4 + int(i)*24
		tracks[i] = Track{
			Number:  int(i + 1),
			Type:    binaryTrackType(binary.BigEndian.Uint32(data[offset : offset+4])),
			SubType: binarySubType(binary.BigEndian.Uint32(data[offset+4 : offset+8])),
			Frames:  int(binary.BigEndian.Uint32(data[offset+16 : offset+20])),
		}
	}

	return tracks, nil
}

// binaryTrackType maps a CHCD numeric track type to its MAME name.
func binaryTrackType(trackType uint32) string {
	switch trackType {
	case 0:
		return "MODE1"
	case 1:
		return "MODE1_RAW"
	case 2:
		return "MODE2"
	case 3:
		return "MODE2_FORM_MIX"
	case 4:
		return "MODE2_RAW"
	case 5:
		return "AUDIO"
	default:
		return "UNKNOWN"
	}
}

// binarySubType maps a CHCD numeric subchannel type to its MAME name.
func binarySubType(subType uint32) string {
	switch subType {
	case 0:
		return "RW"
	case 1:
		return "RW_RAW"
	default:
		return "NONE"
	}
}

// CueType returns the cue sheet track type token for this track's MAME
// metadata type. Types that already use cue notation pass through.
func (t *Track) CueType() string {
	upper := strings.ToUpper(t.Type)
	if strings.Contains(upper, "/") {
		return upper
	}

	switch upper {
	case "AUDIO":
		return "AUDIO"
	case "MODE1", "MODE2_FORM1":
		return "MODE1/2048"
	case "MODE1_RAW":
		return "MODE1/2352"
	case "MODE2", "MODE2_FORM_MIX":
		return "MODE2/2336"
	case "MODE2_RAW":
		return "MODE2/2352"
	default:
		return "MODE1/2352"
	}
}

// IsDataTrack reports whether this is a data track rather than audio.
func (t *Track) IsDataTrack() bool {
	return !strings.EqualFold(t.Type, "AUDIO")
}
