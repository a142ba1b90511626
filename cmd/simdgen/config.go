// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xyproto/env/v2"

	"github.com/fea-lib/simdgen/simd"
)

const (
	defaultInput  = "tests_data/intelintrinsicsguide.js"
	cacheFilename = "intelinstrinsicsguide_cache.xml"
)

// Config holds the settings of one generator run. Defaults come from the
// environment, flags override them.
type Config struct {
	Input     string // dataset file (JSON wrapped XML)
	Cache     string // XML cache file; empty means next to Input
	OutputDir string // where headers are written
	Tiers     string // comma separated tier list, see simd.ParseTiers

	Strict       bool // missing descriptors are fatal
	NoCache      bool // neither read nor write the cache
	RefreshCache bool // rebuild the cache even if it exists
	HostOnly     bool // only emit tiers the host CPU supports
	Check        bool // compare against existing headers instead of writing

	LogFormat string // "text" or "json"
	Verbose   bool
}

// DefaultConfig returns the configuration described by SIMDGEN_*
// environment variables.
func DefaultConfig() Config {
	return Config{
		Input:     env.Str("SIMDGEN_INPUT", defaultInput),
		Cache:     env.Str("SIMDGEN_CACHE"),
		OutputDir: env.Str("SIMDGEN_OUTPUT", "."),
		Tiers:     env.Str("SIMDGEN_TIERS", "default"),
		Strict:    env.Bool("SIMDGEN_STRICT"),
		LogFormat: env.Str("SIMDGEN_LOG_FORMAT", "text"),
	}
}

// Validate checks the configuration and returns the selected tiers.
func (c Config) Validate() ([]simd.Tier, error) {
	if c.Input == "" {
		return nil, errors.New("input file is required")
	}
	if c.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	if c.NoCache && c.RefreshCache {
		return nil, errors.New("--no-cache and --refresh-cache are mutually exclusive")
	}
	tiers, err := simd.ParseTiers(c.Tiers)
	if err != nil {
		return nil, fmt.Errorf("tiers: %w", err)
	}
	return tiers, nil
}

// CachePath returns the cache file location.
func (c Config) CachePath() string {
	if c.Cache != "" {
		return c.Cache
	}
	return filepath.Join(filepath.Dir(c.Input), cacheFilename)
}
