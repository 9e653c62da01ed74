package cue

import "testing"

func TestGenerateMerged(t *testing.T) {
	t.Parallel()

	files := []BinFile{
		{
			Path: "a.bin",
			Tracks: []Track{{
				Number: 1, Type: "MODE1/2352",
				Indexes: []TrackIndex{{ID: 1, Sectors: 0}},
			}},
		},
		{
			Path: "b.bin",
			Tracks: []Track{{
				Number: 2, Type: "AUDIO",
				Indexes: []TrackIndex{{ID: 0, Sectors: 4500}, {ID: 1, Sectors: 4650}},
			}},
		},
	}

	want := `FILE "Game.bin" BINARY
  TRACK 01 MODE1/2352
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    INDEX 00 01:00:00
    INDEX 01 01:02:00
`
	if got := GenerateMerged(files, "Game"); got != want {
		t.Errorf("GenerateMerged() =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerateSplit(t *testing.T) {
	t.Parallel()

	file := BinFile{
		Path: "Game.bin",
		Tracks: []Track{
			{
				Number: 1, Type: "MODE1/2352",
				Indexes: []TrackIndex{{ID: 1, Sectors: 0}},
			},
			{
				Number: 2, Type: "AUDIO",
				// INDEX 00 pregap two seconds before INDEX 01; both shift
				// by the same delta so the spacing survives.
				Indexes: []TrackIndex{{ID: 0, Sectors: 3000}, {ID: 1, Sectors: 3150}},
			},
		},
	}

	want := `FILE "Game (Track 1).bin" BINARY
  TRACK 01 MODE1/2352
    INDEX 01 00:00:00
FILE "Game (Track 2).bin" BINARY
  TRACK 02 AUDIO
    INDEX 00 00:00:00
    INDEX 01 00:02:00
`
	if got := GenerateSplit(file, "Game"); got != want {
		t.Errorf("GenerateSplit() =\n%s\nwant\n%s", got, want)
	}
}

// Parsing a sheet, regenerating it in merged form and parsing the result
// must preserve the (track number, track type) pairs.
func TestParseGenerateIdempotence(t *testing.T) {
	t.Parallel()

	original, err := Parse(multiFileSheet, "", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	regenerated, err := Parse(GenerateMerged(original.Files, "Game"), "", 0)
	if err != nil {
		t.Fatalf("Parse(regenerated) error = %v", err)
	}

	var origTracks, regenTracks []Track
	for _, f := range original.Files {
		origTracks = append(origTracks, f.Tracks...)
	}
	for _, f := range regenerated.Files {
		regenTracks = append(regenTracks, f.Tracks...)
	}

	if len(origTracks) != len(regenTracks) {
		t.Fatalf("track count changed: %d -> %d", len(origTracks), len(regenTracks))
	}
	for i := range origTracks {
		if origTracks[i].Number != regenTracks[i].Number || origTracks[i].Type != regenTracks[i].Type {
			t.Errorf("track %d: (%d, %q) -> (%d, %q)", i,
				origTracks[i].Number, origTracks[i].Type,
				regenTracks[i].Number, regenTracks[i].Type)
		}
	}
}
