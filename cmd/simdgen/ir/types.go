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

// Package ir holds the intermediate representation of simdgen: the
// per-intrinsic recipes (descriptors), the intrinsics extracted from the
// Intrinsics Guide and the wrapper signatures derived from them.
package ir

import (
	"slices"
	"strings"

	"github.com/fea-lib/simdgen/simd"
)

// TypeOption is one atomic transformation applied to the return slot or to
// one parameter slot of an intrinsic. A slot is described by an ordered
// list of options which compose, e.g. {I32, Ptr} gives "int*".
type TypeOption int

const (
	// Keep uses the raw type unmodified.
	Keep TypeOption = iota

	// KeepType uses the raw type stripped of const, pointer, reference and
	// whitespace.
	KeepType

	Ptr
	ConstPtr
	Ref
	ConstRef

	// Bool replaces the type by bool, for comparisons returning 0 or 1.
	Bool

	// Element narrowing. On a register type these select the fea wrapper
	// type (m128_i32_t), on scalars the native C++ type.
	F32
	F64
	I8
	U8
	I16
	U16
	I32
	U32
	I64
	U64

	// ToLastParam moves the slot to the end of the parameter list. On the
	// return slot the result becomes an output reference parameter.
	ToLastParam

	// Template turns the parameter into a template parameter.
	Template

	// RegToCpp narrows a register to a native scalar type and casts it back
	// at the call site.
	RegToCpp

	// TakeAddress passes &arg to the intrinsic.
	TakeAddress

	// Cast passes (raw_type)arg to the intrinsic.
	Cast

	// Overloads fans the descriptor out into one copy per integer element.
	Overloads

	typeOptionCount
)

var typeOptionNames = [typeOptionCount]string{
	Keep:        "keep",
	KeepType:    "keep_type",
	Ptr:         "ptr",
	ConstPtr:    "const_ptr",
	Ref:         "ref",
	ConstRef:    "const_ref",
	Bool:        "bool_",
	F32:         "f32",
	F64:         "f64",
	I8:          "i8",
	U8:          "u8",
	I16:         "i16",
	U16:         "u16",
	I32:         "i32",
	U32:         "u32",
	I64:         "i64",
	U64:         "u64",
	ToLastParam: "to_last_param",
	Template:    "template_",
	RegToCpp:    "reg_to_cpp",
	TakeAddress: "take_address",
	Cast:        "cast",
	Overloads:   "overloads",
}

// String returns the descriptor spelling of the option.
func (o TypeOption) String() string {
	if o < 0 || o >= typeOptionCount {
		return "unknown"
	}
	return typeOptionNames[o]
}

// Element returns the lane type selected by a narrowing option.
func (o TypeOption) Element() (simd.Element, bool) {
	switch o {
	case F32:
		return simd.F32, true
	case F64:
		return simd.F64, true
	case I8:
		return simd.I8, true
	case U8:
		return simd.U8, true
	case I16:
		return simd.I16, true
	case U16:
		return simd.U16, true
	case I32:
		return simd.I32, true
	case U32:
		return simd.U32, true
	case I64:
		return simd.I64, true
	case U64:
		return simd.U64, true
	}
	return 0, false
}

// ElementOption is the inverse of TypeOption.Element.
func ElementOption(e simd.Element) TypeOption {
	return F32 + TypeOption(e)
}

// Descriptor is the hand-written recipe turning one raw intrinsic into one
// or more wrapper signatures.
type Descriptor struct {
	Intrinsic string         // exact raw name, e.g. "_mm_add_pi16"
	Func      string         // wrapper name; empty skips the intrinsic
	Return    []TypeOption   // return slot
	Params    [][]TypeOption // one slot per parameter, in order
	M32Bits   bool           // only available on 32-bit targets
	Commented bool           // not callable with current toolchains
}

// Skipped reports whether the descriptor opts the intrinsic out.
func (d Descriptor) Skipped() bool {
	return d.Func == ""
}

// Slots returns the return slot followed by every parameter slot.
func (d Descriptor) Slots() [][]TypeOption {
	slots := make([][]TypeOption, 0, len(d.Params)+1)
	slots = append(slots, d.Return)
	return append(slots, d.Params...)
}

// Clone deep-copies the option lists.
func (d Descriptor) Clone() Descriptor {
	d.Return = slices.Clone(d.Return)
	params := make([][]TypeOption, len(d.Params))
	for i, p := range d.Params {
		params[i] = slices.Clone(p)
	}
	d.Params = params
	return d
}

// ArgInfo is one parameter, or the return value, of an intrinsic.
type ArgInfo struct {
	RawType string // type as declared in the Intrinsics Guide
	Name    string // variable name as declared in the Intrinsics Guide

	// Filled in by the descriptor applier.
	Type          string // resolved wrapper type
	Cast          string // "(__m64)" style prefix applied at the call site
	OriginalIndex int    // position before relocation, -1 if not relocated
	Template      bool
	Output        bool
	TakeAddress   bool
}

// NewArgInfo returns an unresolved argument.
func NewArgInfo(rawType, name string) ArgInfo {
	return ArgInfo{
		RawType:       rawType,
		Name:          name,
		Type:          rawType,
		OriginalIndex: -1,
	}
}

// Relocated reports whether the parameter was moved by ToLastParam.
func (a ArgInfo) Relocated() bool {
	return a.OriginalIndex >= 0
}

// Signature returns the declaration spelling, "m128_f32_t a".
func (a ArgInfo) Signature() string {
	return a.Type + " " + a.Name
}

// Passed returns how the argument is handed to the raw intrinsic. fea
// register wrappers store the compiler register in their xmm member.
func (a ArgInfo) Passed() string {
	if a.Cast != "" || a.TakeAddress {
		s := a.Cast
		if a.TakeAddress {
			s += "&"
		}
		return s + a.Name
	}

	base, suffix := splitTypeSuffix(a.Type)
	if _, ok := simd.ParseRegisterType(base); !ok {
		return a.Name
	}
	if strings.HasSuffix(suffix, "*") {
		return "&" + a.Name + "->xmm"
	}
	return a.Name + ".xmm"
}

// splitTypeSuffix splits "m128_f32_t const*" into "m128_f32_t" and
// " const*".
func splitTypeSuffix(t string) (string, string) {
	i := strings.IndexAny(t, " *&")
	if i < 0 {
		return t, ""
	}
	return t[:i], t[i:]
}

// IntrinInfo is one intrinsic, first as extracted from the Intrinsics Guide
// and then as one resolved wrapper signature.
type IntrinInfo struct {
	CPUID       string
	Tier        simd.Tier
	Intrinsic   string
	Func        string
	Description string
	Operation   string
	Instruction string
	Return      ArgInfo
	Params      []ArgInfo

	// From the descriptor.
	M32Bits   bool
	Commented bool
}

// Clone deep-copies the parameter list.
func (in IntrinInfo) Clone() IntrinInfo {
	in.Params = slices.Clone(in.Params)
	return in
}

// Output returns the parameter receiving the intrinsic's result, if any.
func (in IntrinInfo) Output() (ArgInfo, bool) {
	for _, p := range in.Params {
		if p.Output {
			return p, true
		}
	}
	return ArgInfo{}, false
}

// SignatureKey returns the resolved return and parameter types, e.g.
// "m64_i16_t(m64_i16_t,m64_i16_t)". Overloads of one function must have
// distinct keys.
func (in IntrinInfo) SignatureKey() string {
	var sb strings.Builder
	sb.WriteString(in.Return.Type)
	sb.WriteByte('(')
	for i, p := range in.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		if p.Template {
			sb.WriteString("template ")
		}
		sb.WriteString(p.Type)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Registry groups resolved intrinsics by tier.
type Registry map[simd.Tier][]IntrinInfo

// Add appends infos to the tier.
func (r Registry) Add(tier simd.Tier, infos ...IntrinInfo) {
	r[tier] = append(r[tier], infos...)
}

// Tiers returns the tiers present in the registry, ascending.
func (r Registry) Tiers() []simd.Tier {
	tiers := make([]simd.Tier, 0, len(r))
	for t := range r {
		tiers = append(tiers, t)
	}
	slices.Sort(tiers)
	return tiers
}

// Len returns the number of intrinsics across all tiers.
func (r Registry) Len() int {
	n := 0
	for _, infos := range r {
		n += len(infos)
	}
	return n
}
