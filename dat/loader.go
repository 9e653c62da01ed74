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

package dat

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
)

// Logiqx datafile shape. Only the fields the catalogue needs are mapped;
// everything else in the XML is skipped by the decoder.
type xmlDatafile struct {
	XMLName xml.Name  `xml:"datafile"`
	Header  xmlHeader `xml:"header"`
	Games   []xmlGame `xml:"game"`
}

type xmlHeader struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
}

type xmlGame struct {
	Name        string   `xml:"name,attr"`
	Description string   `xml:"description"`
	Category    string   `xml:"category"`
	ROMs        []xmlROM `xml:"rom"`
}

type xmlROM struct {
	Name string `xml:"name,attr"`
	CRC  string `xml:"crc,attr"`
	MD5  string `xml:"md5,attr"`
	SHA1 string `xml:"sha1,attr"`
	Size uint64 `xml:"size,attr"`
}

// Load reads a Logiqx DAT from r and builds the catalogue. Gzip-compressed
// DATs are detected by magic and decompressed transparently.
func Load(r io.Reader) (*Catalogue, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, gzErr := gzip.NewReader(br)
		if gzErr != nil {
			return nil, fmt.Errorf("open gzip dat: %w", gzErr)
		}
		defer func() { _ = gz.Close() }()
		return decode(gz)
	}

	return decode(br)
}

// LoadFile opens and loads a DAT from the given filesystem.
func LoadFile(fs afero.Fs, path string) (*Catalogue, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dat: %w", err)
	}
	defer func() { _ = f.Close() }()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dat %q: %w", path, err)
	}
	return cat, nil
}

func decode(r io.Reader) (*Catalogue, error) {
	var doc xmlDatafile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode datafile: %w", err)
	}

	cat := &Catalogue{
		System: doc.Header.Name,
		bySHA1: make(map[string][]*ROM),
	}
	if cat.System == "" {
		cat.System = doc.Header.Description
	}

	for _, g := range doc.Games {
		game := &Game{
			Name:        g.Name,
			Description: g.Description,
			Category:    g.Category,
			ROMs:        make([]*ROM, 0, len(g.ROMs)),
		}
		for _, r := range g.ROMs {
			game.ROMs = append(game.ROMs, &ROM{
				Name: r.Name,
				Size: r.Size,
				CRC:  r.CRC,
				MD5:  r.MD5,
				SHA1: r.SHA1,
			})
		}
		cat.addGame(game)
	}

	return cat, nil
}
