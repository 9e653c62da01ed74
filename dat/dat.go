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

// Package dat loads reference catalogues (Logiqx "datafile" DATs, as
// published by preservation projects) into an in-memory, read-only shape
// with a content-hash index. A catalogue is loaded once per process and
// never mutated afterwards, so lookups need no locking.
package dat

import "strings"

// ROM is one catalogued dump file within a game: a name, its exact size,
// and content hashes. SHA1 is always present in practice; CRC and MD5 are
// optional extras some DATs carry.
type ROM struct {
	Game *Game
	Name string
	SHA1 string // lowercase hex
	CRC  string
	MD5  string
	Size uint64
}

// Game is one catalogued title with its constituent ROM entries.
type Game struct {
	Name        string
	Description string
	Category    string
	ROMs        []*ROM
}

// BinSize sums the sizes of the game's track-data entries (names ending in
// .bin), the figure the size-based matching tiers compare against.
func (g *Game) BinSize() uint64 {
	var total uint64
	for _, rom := range g.ROMs {
		if strings.HasSuffix(strings.ToLower(rom.Name), ".bin") {
			total += rom.Size
		}
	}
	return total
}

// Catalogue is a loaded DAT: the cataloged system's name, its games in file
// order, and a sha1 index for O(1) expected-time hash lookup.
type Catalogue struct {
	bySHA1 map[string][]*ROM
	System string
	Games  []*Game
}

// LookupSHA1 returns every catalogued entry with the given sha1, or nil.
// Multiple entries may share a hash across different games' identically
// duplicated dumps, so the result is a list, never assumed singular.
func (c *Catalogue) LookupSHA1(sha1hex string) []*ROM {
	return c.bySHA1[strings.ToLower(sha1hex)]
}

// addGame wires a game into the catalogue and indexes its ROM hashes.
func (c *Catalogue) addGame(game *Game) {
	c.Games = append(c.Games, game)
	for _, rom := range game.ROMs {
		rom.Game = game
		if rom.SHA1 == "" {
			continue
		}
		rom.SHA1 = strings.ToLower(rom.SHA1)
		c.bySHA1[rom.SHA1] = append(c.bySHA1[rom.SHA1], rom)
	}
}
