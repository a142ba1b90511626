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

// Package simd describes the x86 SIMD instruction-set tiers targeted by the
// fea wrapper headers, the register wrapper naming scheme shared with the
// generated code, and detection of the tier supported by the running host.
package simd

import (
	"fmt"
	"strings"
)

// Tier is one instruction-set level. Tiers are ordered: every tier is a
// superset of the one before it.
type Tier int

const (
	// TierMMX is the 64-bit MMX instruction set.
	TierMMX Tier = iota

	// TierSSE adds 128-bit single precision registers.
	TierSSE

	// TierSSE2 adds 128-bit double precision and integer registers.
	TierSSE2

	TierSSE3
	TierSSSE3
	TierSSE41
	TierSSE42

	// TierAVX adds 256-bit registers.
	TierAVX
	TierAVX2

	// TierAVX512F adds 512-bit registers.
	TierAVX512F

	// TierCount is the number of tiers. It doubles as "no SIMD support".
	TierCount
)

type tierInfo struct {
	api   string // "sse2"
	cpuid string // Intrinsics Guide CPUID tag
}

var tierTable = [TierCount]tierInfo{
	TierMMX:     {api: "mmx", cpuid: "MMX"},
	TierSSE:     {api: "sse", cpuid: "SSE"},
	TierSSE2:    {api: "sse2", cpuid: "SSE2"},
	TierSSE3:    {api: "sse3", cpuid: "SSE3"},
	TierSSSE3:   {api: "ssse3", cpuid: "SSSE3"},
	TierSSE41:   {api: "sse41", cpuid: "SSE4.1"},
	TierSSE42:   {api: "sse42", cpuid: "SSE4.2"},
	TierAVX:     {api: "avx", cpuid: "AVX"},
	TierAVX2:    {api: "avx2", cpuid: "AVX2"},
	TierAVX512F: {api: "avx512f", cpuid: "AVX512F"},
}

// String returns the API name of the tier, e.g. "sse41".
func (t Tier) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return tierTable[t].api
}

// Valid reports whether t names an actual tier.
func (t Tier) Valid() bool {
	return t >= TierMMX && t < TierCount
}

// CPUID returns the Intrinsics Guide CPUID tag of the tier, e.g. "SSE4.1".
func (t Tier) CPUID() string {
	if !t.Valid() {
		return ""
	}
	return tierTable[t].cpuid
}

// Filename returns the name of the generated header for the tier.
func (t Tier) Filename() string {
	return "simd_api_" + t.String() + ".hpp"
}

// EnumString returns the C++ spelling of the tier in fea's simd_ver enum.
func (t Tier) EnumString() string {
	return "fea::simd_ver::" + t.String()
}

// Prev returns the tier immediately below t. The second result is false
// for TierMMX, which has no predecessor.
func (t Tier) Prev() (Tier, bool) {
	if !t.Valid() || t == TierMMX {
		return TierCount, false
	}
	return t - 1, true
}

// AllTiers returns every tier in ascending order.
func AllTiers() []Tier {
	tiers := make([]Tier, 0, TierCount)
	for t := TierMMX; t < TierCount; t++ {
		tiers = append(tiers, t)
	}
	return tiers
}

// DefaultTiers returns the tiers for which wrapper types exist today.
// Later tiers are understood by the generator but need register types
// that fea does not provide yet.
func DefaultTiers() []Tier {
	return []Tier{TierMMX, TierSSE, TierSSE2, TierSSE3}
}

// ParseTier parses an API name ("sse2") or a CPUID tag ("SSE4.1").
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	for t := TierMMX; t < TierCount; t++ {
		if strings.EqualFold(s, tierTable[t].api) || s == tierTable[t].cpuid {
			return t, nil
		}
	}
	return TierCount, fmt.Errorf("unknown simd tier %q", s)
}

// ParseTiers parses a comma separated list of tiers. "all" selects every
// tier and "default" the DefaultTiers set. Every tier inherits from the one
// below it, so the selection is closed downward: "mmx,sse3" yields MMX
// through SSE3. The result is ascending and free of duplicates.
func ParseTiers(s string) ([]Tier, error) {
	var set [TierCount]bool
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "all":
			for _, t := range AllTiers() {
				set[t] = true
			}
			continue
		case "default":
			for _, t := range DefaultTiers() {
				set[t] = true
			}
			continue
		}
		t, err := ParseTier(part)
		if err != nil {
			return nil, err
		}
		set[t] = true
	}

	top := TierCount
	for t := TierMMX; t < TierCount; t++ {
		if set[t] {
			top = t
		}
	}
	if top == TierCount {
		return nil, fmt.Errorf("no simd tier in %q", s)
	}
	return AllTiers()[:top+1], nil
}

// CPUIDSet maps Intrinsics Guide CPUID tags to the tiers they enable.
type CPUIDSet map[string]Tier

// NewCPUIDSet returns the CPUID lookup for the given enabled tiers.
func NewCPUIDSet(tiers []Tier) CPUIDSet {
	set := make(CPUIDSet, len(tiers))
	for _, t := range tiers {
		if t.Valid() {
			set[t.CPUID()] = t
		}
	}
	return set
}

// Lookup returns the tier of a CPUID tag, if it is enabled.
func (s CPUIDSet) Lookup(cpuid string) (Tier, bool) {
	t, ok := s[cpuid]
	return t, ok
}
