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

	"github.com/samber/lo"

	"github.com/fea-lib/simdgen/cmd/simdgen/ir"
	"github.com/fea-lib/simdgen/simd"
)

// ApplyDescriptor resolves an extracted intrinsic into its wrapper
// signatures. A skip descriptor yields no wrapper, an Overloads descriptor
// yields one wrapper per integer element and any other descriptor yields
// exactly one.
//
// The shell is not modified. Errors are *DescriptorError.
func ApplyDescriptor(shell ir.IntrinInfo, desc ir.Descriptor) ([]ir.IntrinInfo, error) {
	if desc.Skipped() {
		return nil, nil
	}
	if err := validateDescriptor(shell, desc); err != nil {
		return nil, err
	}

	descs := expandOverloads(desc)
	out := make([]ir.IntrinInfo, 0, len(descs))
	seen := make(map[string]bool, len(descs))
	for _, dd := range descs {
		info, err := resolveIntrinsic(shell, dd)
		if err != nil {
			return nil, err
		}
		key := info.SignatureKey()
		if seen[key] {
			return nil, descriptorErrorf(shell.Intrinsic, "overloads collide on %s", key)
		}
		seen[key] = true
		out = append(out, info)
	}
	return out, nil
}

// Expand resolves every extracted intrinsic of reg against table.
//
// An intrinsic without a descriptor is logged and dropped, unless strict is
// set in which case it aborts the expansion.
func Expand(reg ir.Registry, table *DescriptorTable, strict bool, logger *slog.Logger) (ir.Registry, error) {
	if logger == nil {
		logger = discardLogger()
	}

	out := make(ir.Registry, len(reg))
	for _, tier := range reg.Tiers() {
		for _, shell := range reg[tier] {
			desc, ok := table.Lookup(shell.Intrinsic)
			if !ok {
				if strict {
					return nil, descriptorErrorf(shell.Intrinsic, "no descriptor")
				}
				logger.Warn("intrinsic has no descriptor, skipped", "name", shell.Intrinsic, "tier", tier)
				continue
			}

			infos, err := ApplyDescriptor(shell, desc)
			if err != nil {
				return nil, err
			}
			if len(infos) > 0 {
				out.Add(tier, infos...)
			}
		}
	}
	return out, nil
}

func slotName(shell ir.IntrinInfo, i int) string {
	if i == 0 {
		return "return"
	}
	return fmt.Sprintf("parameter %d (%s)", i-1, shell.Params[i-1].Name)
}

// validateDescriptor checks the shape of desc against the intrinsic before
// any resolution happens.
func validateDescriptor(shell ir.IntrinInfo, desc ir.Descriptor) error {
	if len(desc.Params) != len(shell.Params) {
		return descriptorErrorf(shell.Intrinsic, "%d parameter slots for %d parameters",
			len(desc.Params), len(shell.Params))
	}

	slots := desc.Slots()
	moves := 0
	for i, opts := range slots {
		name := slotName(shell, i)

		if n := lo.Count(opts, ir.Overloads); n > 1 {
			return descriptorErrorf(shell.Intrinsic, "%s: %d overloads markers", name, n)
		}
		moves += lo.Count(opts, ir.ToLastParam)

		if !lo.ContainsBy(opts, determinesType) {
			return descriptorErrorf(shell.Intrinsic, "%s: no type option in %v", name, opts)
		}
		if lo.Contains(opts, ir.Cast) && lo.Contains(opts, ir.RegToCpp) {
			return descriptorErrorf(shell.Intrinsic, "%s: cast and reg_to_cpp both set a cast", name)
		}
		if i == 0 && lo.Contains(opts, ir.Template) {
			return descriptorErrorf(shell.Intrinsic, "return value cannot be a template parameter")
		}
		if lo.Contains(opts, ir.Template) && lo.Contains(opts, ir.ToLastParam) {
			return descriptorErrorf(shell.Intrinsic, "%s: template parameters cannot be relocated", name)
		}
	}
	if moves > 1 {
		return descriptorErrorf(shell.Intrinsic, "%d to_last_param markers, at most one allowed", moves)
	}
	return nil
}

func determinesType(opt ir.TypeOption) bool {
	switch opt {
	case ir.Keep, ir.KeepType, ir.Bool, ir.Overloads:
		return true
	}
	_, ok := opt.Element()
	return ok
}

// expandOverloads replaces the Overloads markers by each integer element in
// turn. Every marked slot receives the same element.
func expandOverloads(desc ir.Descriptor) []ir.Descriptor {
	if !lo.SomeBy(desc.Slots(), func(opts []ir.TypeOption) bool { return lo.Contains(opts, ir.Overloads) }) {
		return []ir.Descriptor{desc}
	}

	out := make([]ir.Descriptor, 0, len(simd.IntegerElements))
	for _, elem := range simd.IntegerElements {
		c := desc.Clone()
		replaceOverloads(c.Return, elem)
		for _, opts := range c.Params {
			replaceOverloads(opts, elem)
		}
		out = append(out, c)
	}
	return out
}

func replaceOverloads(opts []ir.TypeOption, elem simd.Element) {
	for i, opt := range opts {
		if opt == ir.Overloads {
			opts[i] = ir.ElementOption(elem)
		}
	}
}

// resolveIntrinsic applies a fan-out free descriptor.
func resolveIntrinsic(shell ir.IntrinInfo, desc ir.Descriptor) (ir.IntrinInfo, error) {
	info := shell.Clone()
	info.Func = desc.Func
	info.M32Bits = desc.M32Bits
	info.Commented = desc.Commented

	for i, opts := range desc.Params {
		arg, err := resolveArg(shell.Intrinsic, slotName(shell, i+1), info.Params[i], opts)
		if err != nil {
			return ir.IntrinInfo{}, err
		}
		info.Params[i] = arg
	}
	ret, err := resolveArg(shell.Intrinsic, slotName(shell, 0), info.Return, desc.Return)
	if err != nil {
		return ir.IntrinInfo{}, err
	}
	info.Return = ret

	if lo.Contains(desc.Return, ir.ToLastParam) {
		if ret.Type == "void" {
			return ir.IntrinInfo{}, descriptorErrorf(shell.Intrinsic, "cannot relocate a void return")
		}
		if !hasIndirection(desc.Return) {
			ret.Type += "&"
		}
		if ret.Name == "" {
			ret.Name = "dst"
		}
		ret.Output = true
		info.Params = append(info.Params, ret)
		info.Return = ir.NewArgInfo("void", "")
		return info, nil
	}

	for i, opts := range desc.Params {
		if !lo.Contains(opts, ir.ToLastParam) {
			continue
		}
		moved := info.Params[i]
		moved.OriginalIndex = i
		info.Params = append(info.Params[:i], info.Params[i+1:]...)
		info.Params = append(info.Params, moved)
		break
	}
	return info, nil
}

func hasIndirection(opts []ir.TypeOption) bool {
	return lo.ContainsBy(opts, func(opt ir.TypeOption) bool {
		switch opt {
		case ir.Ptr, ir.ConstPtr, ir.Ref, ir.ConstRef:
			return true
		}
		return false
	})
}

// resolveArg applies the options of one slot, in order, to arg.
func resolveArg(intrinsic, slot string, arg ir.ArgInfo, opts []ir.TypeOption) (ir.ArgInfo, error) {
	raw := arg.RawType
	base := cleanType(raw)
	regToCpp := lo.Contains(opts, ir.RegToCpp)

	var typ, suffix string
	kept := false
	for _, opt := range opts {
		switch opt {
		case ir.Keep:
			typ, kept = raw, true
		case ir.KeepType:
			typ, kept = base, true
		case ir.Ptr:
			suffix = "*"
		case ir.ConstPtr:
			suffix = " const*"
		case ir.Ref:
			suffix = "&"
		case ir.ConstRef:
			suffix = " const&"
		case ir.Bool:
			typ = "bool"
		case ir.Cast, ir.RegToCpp:
			arg.Cast = "(" + raw + ")"
		case ir.TakeAddress:
			arg.TakeAddress = true
		case ir.Template:
			arg.Template = true
		case ir.ToLastParam:
			// Applied once every slot is resolved.
		case ir.Overloads:
			return arg, descriptorErrorf(intrinsic, "%s: unexpanded overloads marker", slot)
		default:
			elem, ok := opt.Element()
			if !ok {
				return arg, descriptorErrorf(intrinsic, "%s: unknown option %v", slot, opt)
			}
			switch {
			case simd.IsRawRegister(base) && !regToCpp:
				name, err := simd.RegisterTypeName(base, elem)
				if err != nil {
					return arg, descriptorErrorf(intrinsic, "%s: %v", slot, err)
				}
				typ = name
			case regToCpp && !simd.IsRawRegister(base):
				return arg, descriptorErrorf(intrinsic, "%s: reg_to_cpp on non-register type %q", slot, raw)
			default:
				typ = elem.Native()
			}
		}
	}

	if typ == "" {
		return arg, descriptorErrorf(intrinsic, "%s: no type option in %v", slot, opts)
	}
	if strings.HasPrefix(typ, "__m") && !kept {
		return arg, descriptorErrorf(intrinsic, "%s: unresolved register type %q", slot, typ)
	}
	arg.Type = typ + suffix
	return arg, nil
}

// cleanType strips const qualifiers, pointers and references from a C type,
// "const __m128i*" -> "__m128i".
func cleanType(t string) string {
	t = strings.NewReplacer("*", " ", "&", " ").Replace(t)
	words := lo.Filter(strings.Fields(t), func(w string, _ int) bool { return w != "const" })
	return strings.Join(words, " ")
}
