package cue

import "fmt"

// SizeFunc reports the byte size of a track file. The merge and split
// operations use it instead of touching the filesystem themselves; wrap an
// os.Stat, an afero.Fs or a fixture map as needed. A nil SizeFunc leaves
// sizes at zero, which disables the derivations that need them.
type SizeFunc func(path string) (uint64, error)

// FileRange identifies a contiguous byte range of one source file.
type FileRange struct {
	Path   string
	Offset uint64
	Length uint64
}

// MergePlan describes a merged stream: the cue text for it, plus the ordered
// source ranges whose byte-concatenation forms the merged binary. Writing
// those bytes is the caller's job; the plan and the cue text are guaranteed
// index-consistent as long as the ranges are written in order.
type MergePlan struct {
	CueText string
	BinName string
	Files   []FileRange
	Sheet   *Sheet
}

// Merge parses cueText and lays its tracks out as one merged stream. The
// cumulative sector offset of each file's tracks is the floor-divided sector
// total of every file before it, and every index timestamp is rewritten to
// its cumulative offset.
//
// A single-input merge is a legal no-op that still re-derives geometry: it
// runs the sector-count back-fill, and tolerates an unknown (zero) file size
// by leaving the counts undefined.
func Merge(cueText, basename, basePath string, blocksize Blocksize, sizeOf SizeFunc) (*MergePlan, error) {
	sheet, err := Parse(cueText, basePath, blocksize)
	if err != nil {
		return nil, err
	}

	for i := range sheet.Files {
		f := &sheet.Files[i]
		if sizeOf == nil {
			continue
		}
		if f.SizeBytes, err = sizeOf(f.Path); err != nil {
			return nil, fmt.Errorf("size of %q: %w", f.Path, err)
		}
	}

	if err := sheet.BackfillSectorCounts(); err != nil {
		return nil, err
	}

	plan := &MergePlan{
		BinName: basename + ".bin",
		Sheet:   sheet,
		Files:   make([]FileRange, 0, len(sheet.Files)),
	}

	var cumulative uint64
	for i := range sheet.Files {
		f := &sheet.Files[i]
		for ti := range f.Tracks {
			for ii := range f.Tracks[ti].Indexes {
				idx := &f.Tracks[ti].Indexes[ii]
				idx.Sectors += cumulative
				idx.Stamp = SectorsToStamp(idx.Sectors)
			}
		}
		plan.Files = append(plan.Files, FileRange{Path: f.Path, Length: f.SizeBytes})
		cumulative += f.SizeBytes / uint64(sheet.Blocksize)
	}

	plan.CueText = GenerateMerged(sheet.Files, basename)
	return plan, nil
}
