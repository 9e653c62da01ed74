package cue

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// DecodeText returns raw cue-sheet bytes as UTF-8 text. Sheets in the wild
// are frequently Shift-JIS (Japanese rips) or Latin-1 (older Windows
// tooling); bytes that are not valid UTF-8 go through those decoders in that
// order. Latin-1 is the terminal fallback since every byte sequence decodes
// under it.
func DecodeText(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}

	if out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw); err == nil && !bytes.ContainsRune(out, utf8.RuneError) {
		return string(out)
	}

	out, _, _ := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	return string(out)
}
