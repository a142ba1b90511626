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
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
	"github.com/fea-lib/simdgen/simd"
)

// laneKey is the sortable form of a lane type spelling such as "u16_t".
type laneKey struct {
	kind byte
	bits int
}

// parseLaneKey recognizes "<letter><digits>_t" once register prefixes are
// removed. Anything else, "bool" or "int*", is not a lane type.
func parseLaneKey(t string) (laneKey, bool) {
	t = simd.StripRegisterPrefix(t)
	idx := strings.Index(t, "_t")
	if idx < 2 {
		return laneKey{}, false
	}
	bits, err := strconv.Atoi(t[1:idx])
	if err != nil || t[0] < 'a' || t[0] > 'z' {
		return laneKey{}, false
	}
	return laneKey{kind: t[0], bits: bits}, true
}

func validLaneKind(k byte) bool {
	return k == 'f' || k == 'i' || k == 'u'
}

// compareTypes orders float lanes before signed before unsigned, then
// narrow before wide. Non lane types compare as strings.
func compareTypes(a, b string) int {
	ka, okA := parseLaneKey(a)
	kb, okB := parseLaneKey(b)
	if !okA || !okB {
		return strings.Compare(simd.StripRegisterPrefix(a), simd.StripRegisterPrefix(b))
	}
	if ka.kind != kb.kind {
		return cmp.Compare(ka.kind, kb.kind)
	}
	return cmp.Compare(ka.bits, kb.bits)
}

// compareSignatures orders two overloads of one function: the first
// differing parameter decides when the return types match, the return
// type otherwise.
func compareSignatures(a, b ir.IntrinInfo) int {
	if a.Return.Type == b.Return.Type {
		for i := range min(len(a.Params), len(b.Params)) {
			pa, pb := a.Params[i].Type, b.Params[i].Type
			if pa == pb {
				continue
			}
			return compareTypes(pa, pb)
		}
	}
	return compareTypes(a.Return.Type, b.Return.Type)
}

func compareInfos(a, b ir.IntrinInfo) int {
	if c := strings.Compare(a.Func, b.Func); c != 0 {
		return c
	}
	if c := compareSignatures(a, b); c != 0 {
		return c
	}
	if c := strings.Compare(a.Intrinsic, b.Intrinsic); c != 0 {
		return c
	}
	return strings.Compare(a.SignatureKey(), b.SignatureKey())
}

// validateSortKeys rejects lane spellings the comparator cannot order.
func validateSortKeys(infos []ir.IntrinInfo) error {
	check := func(in ir.IntrinInfo, t string) error {
		if k, ok := parseLaneKey(t); ok && !validLaneKind(k.kind) {
			return fmt.Errorf("%w: %q in %s", ErrSortKey, t, in.Intrinsic)
		}
		return nil
	}
	for _, in := range infos {
		if err := check(in, in.Return.Type); err != nil {
			return err
		}
		for _, p := range in.Params {
			if err := check(in, p.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// SortIntrinsics sorts one tier's wrappers in place.
func SortIntrinsics(infos []ir.IntrinInfo) error {
	if err := validateSortKeys(infos); err != nil {
		return err
	}
	slices.SortStableFunc(infos, compareInfos)
	return nil
}

// SortRegistry sorts every tier of reg.
func SortRegistry(reg ir.Registry) error {
	for _, tier := range reg.Tiers() {
		if err := SortIntrinsics(reg[tier]); err != nil {
			return fmt.Errorf("tier %s: %w", tier, err)
		}
	}
	return nil
}
