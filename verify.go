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

package cuebin

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/cuetools/go-cuebin/chd"
	"github.com/cuetools/go-cuebin/dat"
	"github.com/cuetools/go-cuebin/internal/hashio"
	"github.com/cuetools/go-cuebin/match"
)

// Verify hashes a group of dump files and identifies them against the
// catalogue. The group is one logical disc: every track file of a dump, or
// a single image. Files hash concurrently, bounded by cfg.HashWorkers;
// candidate order follows paths so the matcher's tie-break stays stable.
func Verify(fsys afero.Fs, paths []string, cat *dat.Catalogue, cfg Config) (match.Verdict, error) {
	if len(paths) == 0 {
		return match.Verdict{}, match.ErrNoCandidates
	}

	workers := cfg.HashWorkers
	if workers <= 0 {
		workers = DefaultConfig().HashWorkers
	}

	candidates := make([]match.Candidate, len(paths))
	errs := make([]error, len(paths))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			candidates[i], errs[i] = hashCandidate(fsys, path)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return match.Verdict{}, err
		}
	}

	verdict, err := match.Identify(candidates, cat, match.Options{SizeTolerance: cfg.SizeTolerance})
	if err != nil {
		return match.Verdict{}, fmt.Errorf("identify group: %w", err)
	}

	return verdict, nil
}

// VerifyCHD checks a CHD container against the catalogue using the raw data
// SHA1 its header records, without decompressing any hunk data.
func VerifyCHD(fsys afero.Fs, path string, cat *dat.Catalogue, cfg Config) (match.Verdict, error) {
	img, err := chd.Open(fsys, path)
	if err != nil {
		return match.Verdict{}, fmt.Errorf("open chd %s: %w", path, err)
	}
	defer func() { _ = img.Close() }()

	candidate := match.Candidate{
		Path: path,
		SHA1: img.RawSHA1(),
		Size: uint64(img.Size()), //nolint:gosec // Logical size is non-negative
	}

	verdict, err := match.Identify([]match.Candidate{candidate}, cat, match.Options{SizeTolerance: cfg.SizeTolerance})
	if err != nil {
		return match.Verdict{}, fmt.Errorf("identify chd: %w", err)
	}

	return verdict, nil
}

// hashCandidate hashes one file. FLAC-backed audio tracks decode to raw PCM
// first so their digests line up with the catalogue's .bin entries.
func hashCandidate(fsys afero.Fs, path string) (match.Candidate, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return match.Candidate{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var digest hashio.Digest
	if strings.EqualFold(filepath.Ext(path), ".flac") {
		digest, err = hashio.HashFLAC(file)
	} else {
		digest, err = hashio.HashReader(file)
	}
	if err != nil {
		return match.Candidate{}, fmt.Errorf("hash %s: %w", path, err)
	}

	return match.Candidate{Path: path, SHA1: digest.SHA1, Size: digest.Size}, nil
}
