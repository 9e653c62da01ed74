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

	"github.com/spf13/afero"

	"github.com/cuetools/go-cuebin/cue"
)

// The converters plan, they do not move bytes. Each returns the rewritten
// cue text plus the ordered byte ranges a caller copies to realize the new
// layout.

// MergeFile plans collapsing the dump described by the cue sheet at path
// into a single bin stream. The returned plan's file ranges are in stream
// order; concatenating them yields the merged bin.
func MergeFile(fsys afero.Fs, path string, cfg Config) (*cue.MergePlan, error) {
	text, basename, baseDir, err := loadSheet(fsys, path)
	if err != nil {
		return nil, err
	}

	plan, err := cue.Merge(text, basename, baseDir, cue.Blocksize(cfg.Blocksize), statSize(fsys))
	if err != nil {
		return nil, fmt.Errorf("merge %s: %w", path, err)
	}

	return plan, nil
}

// SplitFile plans cutting the single-bin dump described by the cue sheet at
// path into one bin per track.
func SplitFile(fsys afero.Fs, path string, cfg Config) (*cue.SplitPlan, error) {
	text, basename, baseDir, err := loadSheet(fsys, path)
	if err != nil {
		return nil, err
	}

	plan, err := cue.Split(text, basename, baseDir, cue.Blocksize(cfg.Blocksize), statSize(fsys))
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", path, err)
	}

	return plan, nil
}

// loadSheet reads and decodes a cue sheet, returning its text, the basename
// for generated artifacts and the directory bin paths resolve against.
func loadSheet(fsys afero.Fs, path string) (text, basename, baseDir string, err error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", "", "", fmt.Errorf("read cue sheet: %w", err)
	}

	text = cue.DecodeText(raw)
	basename = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	baseDir = filepath.Dir(path)

	return text, basename, baseDir, nil
}

// statSize adapts fsys into the size lookup the planners take.
func statSize(fsys afero.Fs) cue.SizeFunc {
	return func(path string) (uint64, error) {
		info, err := fsys.Stat(path)
		if err != nil {
			return 0, fmt.Errorf("stat bin file: %w", err)
		}
		return uint64(info.Size()), nil //nolint:gosec // Sizes are non-negative
	}
}
