package cue

import "fmt"

// TrackRange is the byte range of one track within the merged source binary,
// and the filename the split form assigns to it. A zero Length on the final
// track means "to end of stream": the source size was not known.
type TrackRange struct {
	Path   string
	Number uint
	Offset uint64
	Length uint64
}

// SplitPlan describes how one merged binary slices into per-track files,
// together with the split-form cue text covering them.
type SplitPlan struct {
	CueText string
	Source  string
	Tracks  []TrackRange
	Sheet   *Sheet
}

// Split parses cueText, which must resolve to exactly one bin file, and
// computes the byte range of every track: from its first index point to the
// next track's first index point, with the last track running to end of
// stream. Multi-file input fails with an InvalidOperationError; splitting is
// only meaningful when starting from an already-merged stream.
func Split(cueText, basename, basePath string, blocksize Blocksize, sizeOf SizeFunc) (*SplitPlan, error) {
	sheet, err := Parse(cueText, basePath, blocksize)
	if err != nil {
		return nil, err
	}
	if len(sheet.Files) != 1 {
		return nil, InvalidOperationError{Op: "split", Reason: "split requires exactly one input file"}
	}

	f := &sheet.Files[0]
	if sizeOf != nil {
		if f.SizeBytes, err = sizeOf(f.Path); err != nil {
			return nil, fmt.Errorf("size of %q: %w", f.Path, err)
		}
	}
	if err := sheet.BackfillSectorCounts(); err != nil {
		return nil, err
	}

	bs := uint64(sheet.Blocksize)
	plan := &SplitPlan{
		Source: f.Path,
		Sheet:  sheet,
		Tracks: make([]TrackRange, 0, len(f.Tracks)),
	}

	for i := range f.Tracks {
		t := &f.Tracks[i]
		if len(t.Indexes) == 0 {
			return nil, StructuralError{Reason: fmt.Sprintf("track %d has no index points", t.Number)}
		}
		start := t.StartSector() * bs

		var length uint64
		switch {
		case i+1 < len(f.Tracks):
			next := f.Tracks[i+1].StartSector() * bs
			if next < start {
				return nil, IntegrityError{
					Path:   f.Path,
					Reason: fmt.Sprintf("track %d starts before track %d", f.Tracks[i+1].Number, t.Number),
				}
			}
			length = next - start
		case f.SizeBytes > 0:
			length = f.SizeBytes - start
		}

		plan.Tracks = append(plan.Tracks, TrackRange{
			Path:   SplitTrackName(basename, t.Number),
			Number: t.Number,
			Offset: start,
			Length: length,
		})
	}

	plan.CueText = GenerateSplit(*f, basename)
	return plan, nil
}
