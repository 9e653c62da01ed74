package cue

// Blocksize is the byte size of one sector for a given track type.
type Blocksize uint

// Known sector sizes.
const (
	BlocksizeRaw   Blocksize = 2352 // audio and raw MODE1/MODE2 sectors
	BlocksizeCDG   Blocksize = 2448 // raw sector plus CD+G subchannel
	BlocksizeMode1 Blocksize = 2048 // MODE1 cooked data
	BlocksizeMode2 Blocksize = 2336 // MODE2 without sync/header

	// DefaultBlocksize is assumed until a track type says otherwise.
	DefaultBlocksize = BlocksizeRaw
)

// ResolveBlocksize maps a TRACK type token to its sector size. The match is
// case-sensitive on the token. Unrecognized types fall back to 2352 rather
// than failing; hand-edited sheets carry odd type strings and must not block
// processing.
func ResolveBlocksize(trackType string) Blocksize {
	switch trackType {
	case "AUDIO", "MODE1/2352", "MODE2/2352", "CDI/2352":
		return BlocksizeRaw
	case "CDG":
		return BlocksizeCDG
	case "MODE1/2048":
		return BlocksizeMode1
	case "MODE2/2336", "CDI/2336":
		return BlocksizeMode2
	default:
		return BlocksizeRaw
	}
}
