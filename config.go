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
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/cuetools/go-cuebin/cue"
	"github.com/cuetools/go-cuebin/match"
)

// Config holds the pipeline tunables.
type Config struct {
	// SizeTolerance bounds the matcher's closest-size tier, in bytes.
	SizeTolerance uint64 `yaml:"size_tolerance"`

	// HashWorkers caps concurrent file hashing during verification.
	HashWorkers int `yaml:"hash_workers"`

	// Blocksize overrides the sector size for sheets whose track types do
	// not pin one down. Zero keeps the per-sheet resolution.
	Blocksize uint `yaml:"blocksize"`
}

// DefaultConfig returns the built-in tunables.
func DefaultConfig() Config {
	return Config{
		SizeTolerance: match.DefaultSizeTolerance,
		HashWorkers:   4,
		Blocksize:     uint(cue.DefaultBlocksize),
	}
}

// LoadConfig reads a YAML config file, filling omitted fields with defaults.
// A missing file is not an error; it yields the defaults.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.SizeTolerance == 0 {
		cfg.SizeTolerance = match.DefaultSizeTolerance
	}
	if cfg.HashWorkers <= 0 {
		cfg.HashWorkers = DefaultConfig().HashWorkers
	}
	if cfg.Blocksize == 0 {
		cfg.Blocksize = uint(cue.DefaultBlocksize)
	}

	return cfg, nil
}
