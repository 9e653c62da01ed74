// Package cue implements the CUE/BIN track-geometry engine: parsing cue
// sheets into FILE/TRACK/INDEX structures, converting between CD timestamps
// and sector counts, laying out multi-file dumps as one merged stream, and
// slicing a merged stream back into per-track files.
//
// All operations here are pure with respect to track data: they compute cue
// text and byte ranges, and leave the physical copying of bytes to the
// caller.
package cue

import "fmt"

// TrackIndex is one INDEX point within a track. ID 01 marks the start of
// playable data; ID 00, when present, marks the start of the pregap.
type TrackIndex struct {
	Stamp   string // MM:SS:FF as written in the sheet
	ID      uint
	Sectors uint64 // offset in sectors, relative to the owning file
}

// Track is one playable unit within a disc image.
type Track struct {
	Type        string // TRACK type token, e.g. "AUDIO" or "MODE1/2352"
	Indexes     []TrackIndex
	Number      uint
	SectorCount uint64 // derived, see Sheet.BackfillSectorCounts
	HasCount    bool
}

// StartSector returns the file-relative offset of the track's first index
// point. It panics on a track with no indexes; parsed tracks always carry at
// least one before geometry code touches them.
func (t *Track) StartSector() uint64 {
	return t.Indexes[0].Sectors
}

// BinFile is one FILE statement together with the tracks declared under it.
type BinFile struct {
	Path      string
	Tracks    []Track
	SizeBytes uint64
}

// Sheet is a fully parsed cue sheet. Blocksize is the sector size locked in
// during parsing and governs all sector arithmetic over the sheet.
type Sheet struct {
	Files     []BinFile
	Blocksize Blocksize
}

// BackfillSectorCounts derives per-track sector counts for a single-file
// sheet by walking the tracks in reverse: each track spans from its first
// index point to the next track's first index point, and the last track runs
// to the end of the file.
//
// The caller must populate Files[0].SizeBytes first; a zero size skips the
// derivation entirely (counts stay undefined). Multi-file sheets are left
// untouched, since their geometry is per-file and needs no inference.
func (s *Sheet) BackfillSectorCounts() error {
	if len(s.Files) != 1 {
		return nil
	}

	f := &s.Files[0]
	if f.SizeBytes == 0 {
		return nil
	}
	if f.SizeBytes%uint64(s.Blocksize) != 0 {
		return IntegrityError{
			Path:   f.Path,
			Reason: fmt.Sprintf("file size %d is not divisible by blocksize %d", f.SizeBytes, s.Blocksize),
		}
	}

	next := f.SizeBytes / uint64(s.Blocksize)
	for i := len(f.Tracks) - 1; i >= 0; i-- {
		t := &f.Tracks[i]
		if len(t.Indexes) == 0 {
			return StructuralError{Reason: fmt.Sprintf("track %d has no index points", t.Number)}
		}
		start := t.StartSector()
		if start > next {
			return IntegrityError{
				Path:   f.Path,
				Reason: fmt.Sprintf("track %d starts at sector %d, beyond the %d sectors that remain", t.Number, start, next),
			}
		}
		t.SectorCount = next - start
		t.HasCount = true
		next = start
	}

	return nil
}
