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

// Package match identifies candidate file sets against a loaded catalogue.
//
// Identification runs three graduated tiers, strongest evidence first:
// exact content-hash matches, exact aggregate track-size matches, and a
// closest-size heuristic under a configurable tolerance. Each tier's verdict
// stays distinguishable so "definitely this game" is never confused with
// "probably this game". Real-world dumps frequently lack hashes consistent
// with the reference catalogue, so the weaker tiers trade certainty for
// recall in a controlled, auditable way.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cuetools/go-cuebin/dat"
)

// Status is the identification outcome for a candidate set.
type Status int

const (
	// StatusNone means no catalogue entry came close enough to report.
	StatusNone Status = iota

	// StatusMatch means the evidence points at exactly one game.
	StatusMatch

	// StatusPartial means the evidence is ambiguous or heuristic: a likely
	// game is reported but must not be treated as verified.
	StatusPartial
)

func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusPartial:
		return "partial"
	default:
		return "none"
	}
}

// Candidate is one file under identification.
type Candidate struct {
	Path string
	SHA1 string
	Size uint64
}

// Verdict is the matcher's answer. Game is nil when Status is StatusNone.
// Reason records which tier produced the verdict, for audit output.
type Verdict struct {
	Game   *dat.Game
	Reason string
	Status Status
}

// DefaultSizeTolerance is the closest-size cutoff in bytes. The value is a
// tunable with no principled derivation; override it through Options when a
// deployment needs something else.
const DefaultSizeTolerance = 1000

// Options tunes the heuristic tiers.
type Options struct {
	// SizeTolerance bounds the closest-size tier; 0 means the default.
	SizeTolerance uint64
}

// ErrNoCandidates is returned for a structurally invalid call with an empty
// candidate list. Absence of a match is never an error; it is StatusNone.
var ErrNoCandidates = errors.New("match: empty candidate list")

// Identify determines which catalogued game a candidate file set most
// likely is. The first tier that yields any candidate games decides the
// verdict; a single game means a match, several mean partial.
func Identify(candidates []Candidate, cat *dat.Catalogue, opts Options) (Verdict, error) {
	if len(candidates) == 0 {
		return Verdict{}, ErrNoCandidates
	}
	tolerance := opts.SizeTolerance
	if tolerance == 0 {
		tolerance = DefaultSizeTolerance
	}

	if v, ok := byHash(candidates, cat); ok {
		return v, nil
	}

	binTotal := candidateBinSize(candidates)
	if v, ok := byExactSize(binTotal, cat); ok {
		return v, nil
	}

	return byClosestSize(binTotal, cat, tolerance), nil
}

// byHash collects the distinct games referenced by any candidate's sha1.
func byHash(candidates []Candidate, cat *dat.Catalogue) (Verdict, bool) {
	seen := make(map[*dat.Game]bool)
	var games []*dat.Game
	for _, c := range candidates {
		for _, rom := range cat.LookupSHA1(c.SHA1) {
			if !seen[rom.Game] {
				seen[rom.Game] = true
				games = append(games, rom.Game)
			}
		}
	}

	switch {
	case len(games) == 1:
		return Verdict{Status: StatusMatch, Game: games[0], Reason: "match via content hash"}, true
	case len(games) > 1:
		// The file set spans games: ambiguous, report the first seen.
		return Verdict{Status: StatusPartial, Game: games[0], Reason: "match via content hash"}, true
	default:
		return Verdict{}, false
	}
}

// byExactSize collects games whose aggregate track size equals the
// candidates' aggregate exactly.
func byExactSize(binTotal uint64, cat *dat.Catalogue) (Verdict, bool) {
	if binTotal == 0 {
		return Verdict{}, false
	}

	var games []*dat.Game
	for _, game := range cat.Games {
		if game.BinSize() == binTotal {
			games = append(games, game)
		}
	}

	switch {
	case len(games) == 1:
		return Verdict{Status: StatusMatch, Game: games[0], Reason: "match via combined track size"}, true
	case len(games) > 1:
		return Verdict{Status: StatusPartial, Game: games[0], Reason: "match via combined track size"}, true
	default:
		return Verdict{}, false
	}
}

// byClosestSize picks the game with the smallest absolute size delta. Ties
// break to the first game in catalogue order; that is a stated rule, not an
// accident of map iteration. Deltas at or beyond the tolerance yield
// StatusNone.
func byClosestSize(binTotal uint64, cat *dat.Catalogue, tolerance uint64) Verdict {
	if binTotal == 0 {
		return Verdict{Status: StatusNone, Reason: "no track data among candidates"}
	}

	var best *dat.Game
	var bestDelta uint64
	for _, game := range cat.Games {
		delta := absDiff(game.BinSize(), binTotal)
		if best == nil || delta < bestDelta {
			best = game
			bestDelta = delta
		}
	}

	if best == nil || bestDelta >= tolerance {
		return Verdict{Status: StatusNone, Reason: "no catalogue entry within size tolerance"}
	}

	pct := float64(bestDelta) * 100 / float64(binTotal)
	return Verdict{
		Status: StatusPartial,
		Game:   best,
		Reason: fmt.Sprintf("closest combined track size: off by %d bytes (%.4f%%)", bestDelta, pct),
	}
}

// candidateBinSize sums the sizes of candidates carrying track data.
func candidateBinSize(candidates []Candidate) uint64 {
	var total uint64
	for _, c := range candidates {
		if strings.HasSuffix(strings.ToLower(c.Path), ".bin") {
			total += c.Size
		}
	}
	return total
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
