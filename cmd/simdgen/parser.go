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
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
	"github.com/fea-lib/simdgen/simd"
)

// columnLimit is the width descriptions are wrapped to.
const columnLimit = 79

// Extract walks the intrinsics document and returns one unresolved
// IntrinInfo per supported intrinsic, grouped by tier.
//
// Non-SIMD intrinsics, half-precision intrinsics and intrinsics needing a
// tier outside cpuids are skipped.
func Extract(doc *etree.Document, cpuids simd.CPUIDSet, logger *slog.Logger) (ir.Registry, error) {
	if logger == nil {
		logger = discardLogger()
	}
	if err := checkRoot(doc); err != nil {
		return nil, err
	}

	reg := make(ir.Registry)
	for _, node := range doc.Root().SelectElements("intrinsic") {
		if !supportedNode(node, cpuids) {
			continue
		}

		info, err := extractIntrinsic(node, cpuids)
		if err != nil {
			return nil, err
		}
		reg.Add(info.Tier, info)
		logger.Debug("found intrinsic", "name", info.Intrinsic, "cpuid", info.CPUID, "tier", info.Tier)
	}
	return reg, nil
}

// supportedNode applies the extraction filters.
func supportedNode(node *etree.Element, cpuids simd.CPUIDSet) bool {
	tags := node.SelectElements("CPUID")
	if len(tags) == 0 {
		return false
	}

	// There are no half-precision register types.
	if strings.HasSuffix(node.SelectAttrValue("name", ""), "_ph") {
		return false
	}

	if tech := node.SelectAttr("tech"); tech != nil {
		if _, ok := cpuids.Lookup(tech.Value); !ok {
			return false
		}
	}

	for _, tag := range tags {
		if _, ok := cpuids.Lookup(strings.TrimSpace(tag.Text())); !ok {
			return false
		}
	}
	return true
}

// extractIntrinsic converts one <intrinsic> element. Every CPUID tag must be
// in cpuids; the intrinsic belongs to the highest tier among them.
func extractIntrinsic(node *etree.Element, cpuids simd.CPUIDSet) (ir.IntrinInfo, error) {
	name := node.SelectAttrValue("name", "")

	tags := node.SelectElements("CPUID")
	if len(tags) == 0 {
		return ir.IntrinInfo{}, fmt.Errorf("%w: %s has no CPUID", ErrUnsupportedCPUID, name)
	}

	info := ir.IntrinInfo{
		Intrinsic:   name,
		Description: cleanDescription(childText(node, "description")),
		Operation:   cleanOperation(childText(node, "operation")),
		Instruction: cleanInstruction(node),
		Return:      ir.NewArgInfo("void", ""),
	}
	for i, tag := range tags {
		cpuid := strings.TrimSpace(tag.Text())
		tier, ok := cpuids.Lookup(cpuid)
		if !ok {
			return ir.IntrinInfo{}, fmt.Errorf("%w: %s requires %q", ErrUnsupportedCPUID, name, cpuid)
		}
		if i == 0 || tier > info.Tier {
			info.CPUID = cpuid
			info.Tier = tier
		}
	}

	if ret := node.SelectElement("return"); ret != nil {
		info.Return = ir.NewArgInfo(ret.SelectAttrValue("type", "void"), ret.SelectAttrValue("varname", ""))
	}

	for _, p := range node.SelectElements("parameter") {
		typ := p.SelectAttrValue("type", "")
		varname := p.SelectAttrValue("varname", "")
		// <parameter type="void"/> marks an empty parameter list.
		if typ == "void" && varname == "" {
			continue
		}
		info.Params = append(info.Params, ir.NewArgInfo(typ, varname))
	}
	return info, nil
}

func childText(node *etree.Element, tag string) string {
	child := node.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.Text()
}

// cleanDescription joins continuation lines and wraps every line at
// columnLimit without splitting words. The result ends with a newline.
func cleanDescription(desc string) string {
	if desc == "" {
		return ""
	}
	desc = strings.ReplaceAll(desc, "\n\t", " ")

	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(desc, "\n"), "\n") {
		wrapLine(&sb, line, columnLimit)
	}
	return sb.String()
}

// wrapLine writes line to sb greedily filled up to limit columns. A word
// longer than limit gets a line of its own.
func wrapLine(sb *strings.Builder, line string, limit int) {
	if len(line) <= limit {
		sb.WriteString(line)
		sb.WriteByte('\n')
		return
	}

	col := 0
	for _, word := range strings.Fields(line) {
		switch {
		case col == 0:
		case col+1+len(word) <= limit:
			sb.WriteByte(' ')
			col++
		default:
			sb.WriteByte('\n')
			col = 0
		}
		sb.WriteString(word)
		col += len(word)
	}
	sb.WriteByte('\n')
}

// cleanOperation drops the leading newline and the trailing "\n\t" the
// Intrinsics Guide puts around pseudocode.
func cleanOperation(op string) string {
	if op == "" {
		return ""
	}
	op = strings.TrimPrefix(op, "\n")
	op = strings.TrimSuffix(op, "\n\t")
	if !strings.HasSuffix(op, "\n") {
		op += "\n"
	}
	return op
}

// cleanInstruction returns the lower-cased mnemonic and operand form of the
// first instruction, or SEQUENCE for multi-instruction intrinsics.
func cleanInstruction(node *etree.Element) string {
	if node.SelectAttrValue("sequence", "") == "TRUE" {
		return "SEQUENCE\n"
	}

	inst := node.SelectElement("instruction")
	if inst == nil {
		return ""
	}
	name := strings.ToLower(inst.SelectAttrValue("name", ""))
	form := strings.ToLower(inst.SelectAttrValue("form", ""))
	if form == "" {
		return name + "\n"
	}
	return name + " " + form + "\n"
}
