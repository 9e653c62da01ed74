package cue

import (
	"bufio"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// maxLineBytes caps a single cue line. Sheets are small; anything beyond
// this is not a cue sheet.
const maxLineBytes = 1024 * 1024

// lineKind tags a classified cue statement.
type lineKind int

const (
	lineIgnored lineKind = iota
	lineFile
	lineTrack
	lineIndex
)

// statement is one classified cue line, before any geometry runs.
type statement struct {
	path      string // lineFile
	trackType string // lineTrack
	stamp     string // lineIndex
	kind      lineKind
	number    uint // track number or index id
}

// Keyword matching is case-insensitive. Real-world sheets written by hand or
// by older rippers use lowercase keywords, and they carry the same geometry.
var (
	filePattern  = regexp.MustCompile(`(?i)^FILE\s+"([^"]*)"\s+BINARY$`)
	trackPattern = regexp.MustCompile(`(?i)^TRACK\s+(\d+)\s+(\S+)$`)
	indexPattern = regexp.MustCompile(`(?i)^INDEX\s+(\d+)\s+(\S+)$`)
)

// classify turns one trimmed line into a tagged statement. Everything that is
// not a FILE/TRACK/INDEX statement (REM, CATALOG, PREGAP, CDTEXTFILE, blank
// lines) carries no geometry and classifies as ignored.
func classify(line string) statement {
	if m := filePattern.FindStringSubmatch(line); m != nil {
		return statement{kind: lineFile, path: m[1]}
	}
	if m := trackPattern.FindStringSubmatch(line); m != nil {
		n, _ := strconv.ParseUint(m[1], 10, 32)
		return statement{kind: lineTrack, number: uint(n), trackType: m[2]}
	}
	if m := indexPattern.FindStringSubmatch(line); m != nil {
		n, _ := strconv.ParseUint(m[1], 10, 32)
		return statement{kind: lineIndex, number: uint(n), stamp: m[2]}
	}
	return statement{kind: lineIgnored}
}

// Parse parses cue-sheet text into an ordered list of bin file descriptors.
//
// basePath, when non-empty, prefixes bare filenames from FILE statements.
// blocksize seeds the sector arithmetic; pass 0 for the 2352 default. The
// first track whose type resolves away from the default locks the sheet's
// blocksize for the remainder of the parse (sheets do not mix sector sizes
// across tracks in practice).
//
// A TRACK before any FILE, or an INDEX before any TRACK, is dropped rather
// than rejected. An empty sheet, or one with no FILE statements at all,
// fails with a StructuralError.
func Parse(text, basePath string, blocksize Blocksize) (*Sheet, error) {
	if blocksize == 0 {
		blocksize = DefaultBlocksize
	}
	sheet := &Sheet{Blocksize: blocksize}

	// A caller-supplied non-default blocksize wins over anything the track
	// types would resolve to.
	locked := blocksize != DefaultBlocksize

	scanner := bufio.NewScanner(strings.NewReader(text))
	// REM payloads can exceed the scanner's 64KB default token limit.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for scanner.Scan() {
		stmt := classify(strings.TrimSpace(scanner.Text()))

		switch stmt.kind {
		case lineFile:
			path := stmt.path
			if basePath != "" {
				path = filepath.Join(basePath, path)
			}
			sheet.Files = append(sheet.Files, BinFile{Path: path})

		case lineTrack:
			if len(sheet.Files) == 0 {
				continue
			}
			if bs := ResolveBlocksize(stmt.trackType); !locked && bs != DefaultBlocksize {
				sheet.Blocksize = bs
				locked = true
			}
			f := &sheet.Files[len(sheet.Files)-1]
			f.Tracks = append(f.Tracks, Track{Number: stmt.number, Type: stmt.trackType})

		case lineIndex:
			track := currentTrack(sheet)
			if track == nil {
				continue
			}
			sectors, err := StampToSectors(stmt.stamp)
			if err != nil {
				return nil, err
			}
			track.Indexes = append(track.Indexes, TrackIndex{
				ID:      stmt.number,
				Stamp:   stmt.stamp,
				Sectors: sectors,
			})

		case lineIgnored:
		}
	}

	// A scan failure means statements were dropped mid-sheet; treating the
	// partial geometry as complete would corrupt every derived byte range.
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan cue sheet: %w", err)
	}

	if len(sheet.Files) == 0 {
		return nil, StructuralError{Reason: "no bin files found - is the sheet empty?"}
	}

	return sheet, nil
}

// currentTrack returns the track statements currently accumulate into, or
// nil when no track is open.
func currentTrack(sheet *Sheet) *Track {
	if len(sheet.Files) == 0 {
		return nil
	}
	f := &sheet.Files[len(sheet.Files)-1]
	if len(f.Tracks) == 0 {
		return nil
	}
	return &f.Tracks[len(f.Tracks)-1]
}
