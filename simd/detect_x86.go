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

//go:build amd64 || 386

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		hostTier = TierCount
		return
	}
	hostTier = detectX86()
}

// detectX86 walks the tiers upward and stops at the first missing feature.
// x/sys/cpu does not report MMX or SSE; both predate SSE2, which every
// amd64 CPU has.
func detectX86() Tier {
	features := []struct {
		tier Tier
		has  bool
	}{
		{TierSSE2, cpu.X86.HasSSE2},
		{TierSSE3, cpu.X86.HasSSE3},
		{TierSSSE3, cpu.X86.HasSSSE3},
		{TierSSE41, cpu.X86.HasSSE41},
		{TierSSE42, cpu.X86.HasSSE42},
		{TierAVX, cpu.X86.HasAVX},
		{TierAVX2, cpu.X86.HasAVX2},
		{TierAVX512F, cpu.X86.HasAVX512F},
	}

	best := TierSSE
	for _, f := range features {
		if !f.has {
			break
		}
		best = f.tier
	}
	return best
}
