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

// Package cuebin converts optical disc dump track layouts between merged
// and split forms and verifies dumps against reference catalogues. It ties
// together the cue geometry engine (package cue), the DAT catalogue model
// (package dat) and the matcher (package match) into a file-level pipeline.
package cuebin

import (
	"github.com/cuetools/go-cuebin/dat"
	"github.com/cuetools/go-cuebin/match"
)

// Verdict is an alias for match.Verdict for convenience.
type Verdict = match.Verdict

// Status is an alias for match.Status for convenience.
type Status = match.Status

// Catalogue is an alias for dat.Catalogue for convenience.
type Catalogue = dat.Catalogue

// Re-export verdict statuses for convenience.
const (
	StatusNone    = match.StatusNone
	StatusMatch   = match.StatusMatch
	StatusPartial = match.StatusPartial
)
