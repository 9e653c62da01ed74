package cue

import (
	"fmt"
	"strings"
)

// The generators emit only FILE, TRACK, PREGAP, INDEX and POSTGAP
// statements, the command set downstream CHD tooling accepts. REM, CATALOG
// and CDTEXTFILE carry no geometry and are dropped even when present on
// input.

// GenerateMerged emits the cue sheet for a merged stream: a single FILE
// statement followed by every track from every input file, in input order,
// keeping original track numbers and index ids. Index sector offsets must
// already be cumulative across the stream; the merger rewrites them before
// calling this.
func GenerateMerged(files []BinFile, basename string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FILE %q BINARY\n", basename+".bin")
	for _, f := range files {
		for _, t := range f.Tracks {
			writeTrack(&b, t, 0)
		}
	}
	return b.String()
}

// GenerateSplit emits one FILE block per track for a single-file sheet. Each
// track's indexes shift to zero-base by a common delta (the track's first
// index point), so an INDEX 00 pregap marker keeps its relative spacing to
// INDEX 01 instead of being re-zeroed independently.
func GenerateSplit(file BinFile, basename string) string {
	var b strings.Builder
	for _, t := range file.Tracks {
		fmt.Fprintf(&b, "FILE %q BINARY\n", SplitTrackName(basename, t.Number))
		delta := uint64(0)
		if len(t.Indexes) > 0 {
			delta = t.Indexes[0].Sectors
		}
		writeTrack(&b, t, delta)
	}
	return b.String()
}

// SplitTrackName returns the bin filename the split form uses for one track.
func SplitTrackName(basename string, number uint) string {
	return fmt.Sprintf("%s (Track %d).bin", basename, number)
}

func writeTrack(b *strings.Builder, t Track, delta uint64) {
	fmt.Fprintf(b, "  TRACK %02d %s\n", t.Number, t.Type)
	for _, idx := range t.Indexes {
		fmt.Fprintf(b, "    INDEX %02d %s\n", idx.ID, SectorsToStamp(idx.Sectors-delta))
	}
}
