package cue

import (
	"fmt"
	"regexp"
	"strconv"
)

// CD timing: 75 frames (sectors) per second, 60 seconds per minute.
const (
	FramesPerSecond = 75
	FramesPerMinute = FramesPerSecond * 60
)

var stampPattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})$`)

// SectorsToStamp renders a sector count as a CD timestamp "MM:SS:FF". There
// is no upper bound: discs longer than 99 minutes render with however many
// minute digits they need, but every field is at least two digits wide.
func SectorsToStamp(sectors uint64) string {
	minutes := sectors / FramesPerMinute
	seconds := (sectors / FramesPerSecond) % 60
	frames := sectors % FramesPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, frames)
}

// StampToSectors parses a "MM:SS:FF" timestamp into an absolute sector
// count. Anything but three colon-separated one-or-two digit fields fails
// with a FormatError naming the input.
func StampToSectors(stamp string) (uint64, error) {
	m := stampPattern.FindStringSubmatch(stamp)
	if m == nil {
		return 0, FormatError{Input: stamp, Reason: "timestamp must match MM:SS:FF"}
	}

	minutes, _ := strconv.ParseUint(m[1], 10, 32)
	seconds, _ := strconv.ParseUint(m[2], 10, 32)
	frames, _ := strconv.ParseUint(m[3], 10, 32)

	return minutes*FramesPerMinute + seconds*FramesPerSecond + frames, nil
}
