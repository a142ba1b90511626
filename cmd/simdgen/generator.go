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
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
	"github.com/fea-lib/simdgen/simd"
)

// Generator orchestrates the header generation process.
type Generator struct {
	Config      Config
	Descriptors *DescriptorTable // defaults to the builtin table
	Logger      *slog.Logger
	Out         io.Writer // check mode diffs, defaults to stdout
}

// Tiers returns the tiers this run emits.
func (g *Generator) Tiers() ([]simd.Tier, error) {
	tiers, err := g.Config.Validate()
	if err != nil {
		return nil, err
	}
	if !g.Config.HostOnly {
		return tiers, nil
	}

	supported := lo.Filter(tiers, func(t simd.Tier, _ int) bool { return simd.HostSupports(t) })
	if len(supported) < len(tiers) {
		g.logger().Info("host limits tiers", "host", simd.HostTier(), "kept", len(supported), "requested", len(tiers))
	}
	return supported, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		g.Logger = discardLogger()
	}
	return g.Logger
}

// Build runs every stage up to emission and returns the sorted wrappers of
// each emitted tier. Enabled tiers without any wrapper are present with an
// empty list so their header still anchors the include chain.
func (g *Generator) Build() (ir.Registry, error) {
	log := g.logger()

	tiers, err := g.Tiers()
	if err != nil {
		return nil, err
	}
	reg := make(ir.Registry, len(tiers))
	if len(tiers) == 0 {
		log.Warn("no simd tier to emit")
		return reg, nil
	}

	table := g.Descriptors
	if table == nil {
		if table, err = BuiltinDescriptors(); err != nil {
			return nil, err
		}
	}

	// 1. Load the dataset
	loader := &Loader{
		Input:   g.Config.Input,
		Cache:   g.Config.CachePath(),
		NoCache: g.Config.NoCache,
		Refresh: g.Config.RefreshCache,
		Logger:  log,
	}
	doc, err := loader.Load()
	if err != nil {
		return nil, err
	}
	log.Info("XML loaded", "input", g.Config.Input)

	// 2. Extract the intrinsics of the enabled tiers
	shells, err := Extract(doc, simd.NewCPUIDSet(tiers), log)
	if err != nil {
		return nil, err
	}
	log.Info("intrinsics extracted", "count", shells.Len())

	// 3. Resolve descriptors
	expanded, err := Expand(shells, table, g.Config.Strict, log)
	if err != nil {
		return nil, err
	}

	// 4. Sort
	if err := SortRegistry(expanded); err != nil {
		return nil, err
	}

	for _, t := range tiers {
		reg[t] = expanded[t]
		if reg[t] == nil {
			reg[t] = []ir.IntrinInfo{}
		}
	}
	log.Info("wrappers generated", "count", reg.Len(), "tiers", len(tiers))
	return reg, nil
}

// Run executes the generation pipeline.
func (g *Generator) Run() error {
	reg, err := g.Build()
	if err != nil {
		return err
	}

	if g.Config.Check {
		return g.check(reg)
	}
	if err := os.MkdirAll(g.Config.OutputDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}
	return WriteHeaders(g.Config.OutputDir, reg, g.logger())
}

// check compares every rendered header with the file on disk and prints a
// unified diff for each stale one.
func (g *Generator) check(reg ir.Registry) error {
	out := g.Out
	if out == nil {
		out = os.Stdout
	}

	var stale []string
	for _, tier := range reg.Tiers() {
		want, err := RenderHeader(tier, reg[tier])
		if err != nil {
			return err
		}

		path := filepath.Join(g.Config.OutputDir, tier.Filename())
		have, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check '%s': %w", path, err)
		}
		if bytes.Equal(have, want) {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(have)),
			B:        difflib.SplitLines(string(want)),
			FromFile: path,
			ToFile:   path + " (generated)",
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("diff '%s': %w", path, err)
		}
		fmt.Fprint(out, diff)
		stale = append(stale, path)
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %v", ErrStaleHeader, stale)
	}
	g.logger().Info("headers up to date", "count", len(reg))
	return nil
}
