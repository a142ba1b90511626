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

package simd

import (
	"os"
	"strconv"
)

// hostTier is the highest tier supported by this machine.
// Set by init() in detect_*.go files.
var hostTier = TierCount

// HostTier returns the highest tier the running CPU supports, or
// TierCount when it supports none (non-x86 hosts, or FEA_NO_SIMD set).
func HostTier() Tier {
	return hostTier
}

// HostSupports reports whether the running CPU can execute code of tier t.
func HostSupports(t Tier) bool {
	return hostTier != TierCount && t.Valid() && t <= hostTier
}

// NoSimdEnv checks if the FEA_NO_SIMD environment variable is set.
// When set, the host is treated as having no SIMD support at all.
func NoSimdEnv() bool {
	val := os.Getenv("FEA_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
